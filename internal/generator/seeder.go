package generator

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"retail-analytics/internal/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	maxInsertRetries = 5
	baseRetryDelay   = 2 * time.Second
)

// Seeder uploads a generated dataset into the document store, one
// collection at a time. Prior collection contents are dropped first.
type Seeder struct {
	db        *mongo.Database
	batchSize int
	logger    zerolog.Logger
}

// NewSeeder creates a seeder writing to the given database.
func NewSeeder(db *mongo.Database, batchSize int, logger zerolog.Logger) *Seeder {
	if batchSize < 1 {
		batchSize = 50
	}
	return &Seeder{
		db:        db,
		batchSize: batchSize,
		logger:    logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed replaces the contents of all four collections with the dataset.
// Any non-rate-limit error aborts the run.
func (s *Seeder) Seed(ctx context.Context, ds *Dataset) error {
	if err := s.upload(ctx, repository.CollectionProducts, asDocuments(ds.Products)); err != nil {
		return err
	}
	if err := s.upload(ctx, repository.CollectionCustomers, asDocuments(ds.Customers)); err != nil {
		return err
	}
	if err := s.upload(ctx, repository.CollectionOrders, asDocuments(ds.Orders)); err != nil {
		return err
	}
	if err := s.upload(ctx, repository.CollectionReviews, asDocuments(ds.Reviews)); err != nil {
		return err
	}
	return nil
}

// upload drops the collection and bulk-inserts the documents in batches,
// then verifies the resulting document count.
func (s *Seeder) upload(ctx context.Context, name string, docs []interface{}) error {
	collection := s.db.Collection(name)

	if err := collection.Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop collection %s: %w", name, err)
	}

	inserted := 0
	for start := 0; start < len(docs); start += s.batchSize {
		end := start + s.batchSize
		if end > len(docs) {
			end = len(docs)
		}

		if err := s.insertBatch(ctx, collection, docs[start:end]); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", name, err)
		}
		inserted += end - start

		s.logger.Debug().
			Str("collection", name).
			Int("inserted", inserted).
			Int("total", len(docs)).
			Msg("batch inserted")
	}

	count, err := collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to verify %s: %w", name, err)
	}

	s.logger.Info().
		Str("collection", name).
		Int("generated", len(docs)).
		Int64("stored", count).
		Msg("collection seeded")

	return nil
}

// insertBatch performs an unordered InsertMany, retrying with exponential
// backoff and jitter when the store reports rate limiting (Cosmos DB
// request-rate errors). Other errors propagate immediately.
func (s *Seeder) insertBatch(ctx context.Context, collection *mongo.Collection, batch []interface{}) error {
	opts := options.InsertMany().SetOrdered(false)

	for attempt := 0; ; attempt++ {
		_, err := collection.InsertMany(ctx, batch, opts)
		if err == nil {
			return nil
		}

		if !isRateLimited(err) || attempt >= maxInsertRetries {
			return err
		}

		delay := time.Duration(1<<attempt)*baseRetryDelay +
			time.Duration(rand.Int63n(int64(500*time.Millisecond)))

		s.logger.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("rate limited, backing off")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

// isRateLimited reports whether the error is a Cosmos DB request-rate
// error. The MongoDB API surfaces these as code 16500 with messages
// mentioning request rates or HTTP 429.
func isRateLimited(err error) bool {
	msg := err.Error()
	for _, marker := range []string{"16500", "RequestRateTooLarge", "TooManyRequests", "RetryAfterMs"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// asDocuments converts a typed slice into the driver's insert payload.
func asDocuments[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	return docs
}
