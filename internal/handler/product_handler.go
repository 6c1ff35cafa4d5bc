package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"menu-catalog/internal/model"
	"menu-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Register mounts the product routes on r.
// Static segments take precedence over {id} in chi, so /featured and /search never reach GetByID.
func (h *ProductHandler) Register(r chi.Router) {
	r.Get("/products", h.ListAll)
	r.Post("/products", h.Create)
	r.Get("/products/featured", h.ListFeatured)
	r.Get("/products/search", h.Search)
	r.Get("/products/category/{category}", h.ListByCategory)
	r.Get("/products/{id}", h.GetByID)
}

// ListFeatured handles GET /api/products/featured requests.
func (h *ProductHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListFeatured(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve featured products", err, h.logger)
		return
	}

	h.logger.Debug().Int("count", len(products)).Msg("featured products retrieved")
	writeJSON(w, http.StatusOK, products)
}

// ListAll handles GET /api/products requests.
func (h *ProductHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", err, h.logger)
		return
	}

	h.logger.Debug().Int("count", len(products)).Msg("products retrieved")
	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "product ID must be an integer", err, h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if model.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "product not found", err, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve product", err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ProductDTO
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err, h.logger)
		return
	}

	created, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create product", err, h.logger)
		return
	}

	h.logger.Info().Int64("product_id", *created.ID).Msg("product created")
	writeJSON(w, http.StatusOK, created)
}

// ListByCategory handles GET /api/products/category/{category} requests.
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := h.service.ListByCategory(r.Context(), category)
	if err != nil {
		if model.IsInvalidInput(err) {
			writeError(w, http.StatusBadRequest, "invalid category", err, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve products by category", err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Search handles GET /api/products/search?name= requests.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.SearchByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to search products", err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}
