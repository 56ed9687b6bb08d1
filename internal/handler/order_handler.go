package handler

import (
	"net/http"

	"retail-analytics/internal/model"
	"retail-analytics/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles the order analysis endpoint.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Get handles GET /api/orders requests.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}

	view, err := h.service.Summary(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to compute order view", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
