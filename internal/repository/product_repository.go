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

// productRepository implements ProductRepository against the document store.
type productRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewProductRepository creates a new document-store-backed product repository.
func NewProductRepository(db *mongo.Database, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		collection: db.Collection(CollectionProducts),
		logger:     logger.With().Str("repository", "product").Logger(),
	}
}

// FetchAll retrieves every product document.
func (r *productRepository) FetchAll(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 0}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode product documents")
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// Count returns the number of product documents.
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// CategoryStats computes per-category aggregates server-side.
func (r *productRepository) CategoryStats(ctx context.Context) ([]model.CategoryStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "total_products", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg_price", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "avg_rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "total_stock", Value: bson.D{{Key: "$sum", Value: "$stock_quantity"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "total_products", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to aggregate category stats")
		return nil, fmt.Errorf("failed to aggregate category stats: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []model.CategoryStats
	if err := cursor.All(ctx, &stats); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode category stats")
		return nil, fmt.Errorf("failed to decode category stats: %w", err)
	}

	return stats, nil
}
