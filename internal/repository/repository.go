package repository

import (
	"context"

	"retail-analytics/internal/model"
)

// Collection names in the retail database.
const (
	CollectionProducts  = "products"
	CollectionCustomers = "customers"
	CollectionOrders    = "orders"
	CollectionReviews   = "reviews"
)

// ProductRepository defines read access to the products collection.
type ProductRepository interface {
	// FetchAll retrieves every product document.
	FetchAll(ctx context.Context) ([]model.Product, error)

	// Count returns the number of product documents.
	Count(ctx context.Context) (int64, error)

	// CategoryStats computes per-category aggregates server-side.
	CategoryStats(ctx context.Context) ([]model.CategoryStats, error)
}

// CustomerRepository defines read access to the customers collection.
type CustomerRepository interface {
	// FetchAll retrieves every customer document.
	FetchAll(ctx context.Context) ([]model.Customer, error)

	// Count returns the number of customer documents.
	Count(ctx context.Context) (int64, error)
}

// OrderRepository defines read access to the orders collection.
type OrderRepository interface {
	// FetchAll retrieves every order document.
	FetchAll(ctx context.Context) ([]model.Order, error)

	// Count returns the number of order documents.
	Count(ctx context.Context) (int64, error)

	// SalesByState computes per-state order aggregates server-side,
	// sorted by total revenue descending.
	SalesByState(ctx context.Context) ([]model.StateSales, error)
}

// ReviewRepository defines read access to the reviews collection.
type ReviewRepository interface {
	// FetchAll retrieves every review document.
	FetchAll(ctx context.Context) ([]model.Review, error)

	// Count returns the number of review documents.
	Count(ctx context.Context) (int64, error)

	// TopProducts computes per-product rating aggregates server-side,
	// keeping products with at least minReviews reviews and returning at
	// most limit entries sorted by average rating then review count.
	TopProducts(ctx context.Context, minReviews, limit int) ([]model.ProductRating, error)
}
