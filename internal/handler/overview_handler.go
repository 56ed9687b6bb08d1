package handler

import (
	"net/http"

	"retail-analytics/internal/model"
	"retail-analytics/internal/service"

	"github.com/rs/zerolog"
)

// OverviewHandler handles the business overview endpoint.
type OverviewHandler struct {
	service service.OverviewService
	logger  zerolog.Logger
}

// NewOverviewHandler creates a new overview handler.
func NewOverviewHandler(service service.OverviewService, logger zerolog.Logger) *OverviewHandler {
	return &OverviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "overview").Logger(),
	}
}

// Get handles GET /api/overview requests.
func (h *OverviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}

	view, err := h.service.Summary(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to compute overview", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
