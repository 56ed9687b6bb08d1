package handler

import (
	"net/http"

	"retail-analytics/internal/model"
	"retail-analytics/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles the product analysis endpoint.
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

// Get handles GET /api/products requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}

	view, err := h.service.Summary(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to compute product view", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
