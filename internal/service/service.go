package service

import (
	"context"

	"retail-analytics/internal/model"
)

// OverviewService computes the cross-collection business overview.
type OverviewService interface {
	// Summary loads all four collections and computes the overview.
	Summary(ctx context.Context) (*model.OverviewView, error)
}

// ProductService computes the product analysis view.
type ProductService interface {
	// Summary loads the products collection and computes the view.
	Summary(ctx context.Context) (*model.ProductsView, error)
}

// CustomerService computes the customer analysis view.
type CustomerService interface {
	// Summary loads the customers collection and computes the view.
	Summary(ctx context.Context) (*model.CustomersView, error)
}

// OrderService computes the order analysis view.
type OrderService interface {
	// Summary loads the orders collection and computes the view.
	Summary(ctx context.Context) (*model.OrdersView, error)
}

// ReviewService computes the review analysis view.
type ReviewService interface {
	// Summary loads the reviews collection and computes the view.
	Summary(ctx context.Context) (*model.ReviewsView, error)
}
