package router

import (
	"net/http"

	"retail-analytics/internal/handler"
	"retail-analytics/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	overviewHandler *handler.OverviewHandler,
	productHandler *handler.ProductHandler,
	customerHandler *handler.CustomerHandler,
	orderHandler *handler.OrderHandler,
	reviewHandler *handler.ReviewHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/overview", overviewHandler.Get)
	mux.HandleFunc("/api/products", productHandler.Get)
	mux.HandleFunc("/api/customers", customerHandler.Get)
	mux.HandleFunc("/api/orders", orderHandler.Get)
	mux.HandleFunc("/api/reviews", reviewHandler.Get)

	// Apply middleware in order: Recovery -> Logging -> CORS -> RequestID -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.RequestID(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
