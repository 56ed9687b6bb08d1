package database

import (
	"context"
	"fmt"
	"time"

	"retail-analytics/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a client against the Cosmos DB (MongoDB API) instance and
// returns the retail database handle. Connectivity is verified with a ping
// so misconfiguration surfaces at startup rather than on the first query.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	timeout := time.Duration(cfg.ConnectTimeout) * time.Second

	opts := options.Client().
		ApplyURI(cfg.ConnectionString).
		SetServerSelectionTimeout(timeout)

	logger.Info().
		Str("database", cfg.Database).
		Dur("timeout", timeout).
		Msg("connecting to document store")

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	logger.Info().Msg("document store connection established")

	return client, client.Database(cfg.Database), nil
}
