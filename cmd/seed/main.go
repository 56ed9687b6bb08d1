package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"retail-analytics/internal/config"
	"retail-analytics/internal/database"
	"retail-analytics/internal/generator"
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
	logger.Info().
		Int("products", cfg.Seed.Products).
		Int("customers", cfg.Seed.Customers).
		Int("orders", cfg.Seed.Orders).
		Int("reviews", cfg.Seed.Reviews).
		Msg("starting sample-data upload")

	ctx := context.Background()

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

	// Generate the dataset
	gen := generator.New(time.Now().UnixNano())
	dataset := gen.Generate(cfg.Seed)

	logger.Info().
		Int("products", len(dataset.Products)).
		Int("customers", len(dataset.Customers)).
		Int("orders", len(dataset.Orders)).
		Int("reviews", len(dataset.Reviews)).
		Msg("dataset generated")

	// Upload, replacing existing collection contents
	seeder := generator.NewSeeder(db, cfg.Seed.BatchSize, logger)
	if err := seeder.Seed(ctx, dataset); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	logger.Info().Msg("sample-data upload completed")

	return nil
}
