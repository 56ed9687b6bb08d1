package handler

import (
	"net/http"

	"retail-analytics/internal/model"
	"retail-analytics/internal/service"

	"github.com/rs/zerolog"
)

// ReviewHandler handles the review analysis endpoint.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// Get handles GET /api/reviews requests.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}

	view, err := h.service.Summary(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to compute review view", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
