package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retail-analytics/internal/config"
	"retail-analytics/internal/database"
	"retail-analytics/internal/handler"
	"retail-analytics/internal/repository"
	"retail-analytics/internal/router"
	"retail-analytics/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting retail analytics API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to the document store
	client, db, err := database.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from document store")
		}
	}()

	// Initialize repositories
	productRepo := repository.NewProductRepository(db, logger)
	customerRepo := repository.NewCustomerRepository(db, logger)
	orderRepo := repository.NewOrderRepository(db, logger)
	reviewRepo := repository.NewReviewRepository(db, logger)

	// Initialize services
	overviewService := service.NewOverviewService(productRepo, customerRepo, orderRepo, reviewRepo, logger)
	productService := service.NewProductService(productRepo, logger)
	customerService := service.NewCustomerService(customerRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, logger)

	// Initialize HTTP handlers
	overviewHandler := handler.NewOverviewHandler(overviewService, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	customerHandler := handler.NewCustomerHandler(customerService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	reviewHandler := handler.NewReviewHandler(reviewService, logger)

	// Initialize router
	mux := router.New(overviewHandler, productHandler, customerHandler, orderHandler, reviewHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
