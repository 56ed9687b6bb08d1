package handler

import (
	"net/http"

	"retail-analytics/internal/model"
	"retail-analytics/internal/service"

	"github.com/rs/zerolog"
)

// CustomerHandler handles the customer analysis endpoint.
type CustomerHandler struct {
	service service.CustomerService
	logger  zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(service service.CustomerService, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger.With().Str("handler", "customer").Logger(),
	}
}

// Get handles GET /api/customers requests.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}

	view, err := h.service.Summary(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to compute customer view", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
