package repository

import (
	"context"
	"fmt"

	"retail-analytics/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// customerRepository implements CustomerRepository against the document store.
type customerRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewCustomerRepository creates a new document-store-backed customer repository.
func NewCustomerRepository(db *mongo.Database, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		collection: db.Collection(CollectionCustomers),
		logger:     logger.With().Str("repository", "customer").Logger(),
	}
}

// FetchAll retrieves every customer document.
func (r *customerRepository) FetchAll(ctx context.Context) ([]model.Customer, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 0}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []model.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode customer documents")
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}

	return customers, nil
}

// Count returns the number of customer documents.
func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count customers")
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}
