package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError logs the failure and writes the status code with an empty body.
// Clients correlate failures through the X-Correlation-ID response header.
func writeError(w http.ResponseWriter, status int, message string, err error, logger zerolog.Logger) {
	event := logger.Error()
	if status < http.StatusInternalServerError {
		event = logger.Warn()
	}
	event.Err(err).Str("reason", message).Int("status", status).Msg("handler error")
	w.WriteHeader(status)
}
