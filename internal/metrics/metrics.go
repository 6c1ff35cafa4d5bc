// Package metrics provides Prometheus metrics for the catalogue API.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route pattern, method and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "menucatalog",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// RequestDuration measures HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "menucatalog",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// ProductsCreatedTotal counts products created through the API or the seeder.
	ProductsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "menucatalog",
			Name:      "products_created_total",
			Help:      "Total number of products created",
		},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(route, method string, status int, duration float64) {
	RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(route, method).Observe(duration)
}

// RecordProductCreated records a successful product insert.
func RecordProductCreated() {
	ProductsCreatedTotal.Inc()
}
