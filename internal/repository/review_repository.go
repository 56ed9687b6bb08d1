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

// reviewRepository implements ReviewRepository against the document store.
type reviewRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewReviewRepository creates a new document-store-backed review repository.
func NewReviewRepository(db *mongo.Database, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		collection: db.Collection(CollectionReviews),
		logger:     logger.With().Str("repository", "review").Logger(),
	}
}

// FetchAll retrieves every review document.
func (r *reviewRepository) FetchAll(ctx context.Context) ([]model.Review, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 0}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query reviews")
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []model.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode review documents")
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}

// Count returns the number of review documents.
func (r *reviewRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count reviews")
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}

// TopProducts computes per-product rating aggregates server-side.
func (r *reviewRepository) TopProducts(ctx context.Context, minReviews, limit int) ([]model.ProductRating, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$product_id"},
			{Key: "product_name", Value: bson.D{{Key: "$first", Value: "$product_name"}}},
			{Key: "avg_rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "review_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "review_count", Value: bson.D{{Key: "$gte", Value: minReviews}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "avg_rating", Value: -1},
			{Key: "review_count", Value: -1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to aggregate top products")
		return nil, fmt.Errorf("failed to aggregate top products: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []model.ProductRating
	if err := cursor.All(ctx, &ratings); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode product ratings")
		return nil, fmt.Errorf("failed to decode product ratings: %w", err)
	}

	return ratings, nil
}
