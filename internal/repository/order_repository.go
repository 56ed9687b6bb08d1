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

// orderRepository implements OrderRepository against the document store.
type orderRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewOrderRepository creates a new document-store-backed order repository.
func NewOrderRepository(db *mongo.Database, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		collection: db.Collection(CollectionOrders),
		logger:     logger.With().Str("repository", "order").Logger(),
	}
}

// FetchAll retrieves every order document.
func (r *orderRepository) FetchAll(ctx context.Context) ([]model.Order, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 0}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode order documents")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

// Count returns the number of order documents.
func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count orders")
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// SalesByState computes per-state order aggregates server-side.
func (r *orderRepository) SalesByState(ctx context.Context) ([]model.StateSales, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$customer_state"},
			{Key: "total_orders", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_revenue", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
			{Key: "avg_order_value", Value: bson.D{{Key: "$avg", Value: "$total_amount"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "total_revenue", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to aggregate sales by state")
		return nil, fmt.Errorf("failed to aggregate sales by state: %w", err)
	}
	defer cursor.Close(ctx)

	var sales []model.StateSales
	if err := cursor.All(ctx, &sales); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode state sales")
		return nil, fmt.Errorf("failed to decode state sales: %w", err)
	}

	return sales, nil
}
