package service

import (
	"context"
	"fmt"

	"retail-analytics/internal/model"
	"retail-analytics/internal/repository"

	"github.com/rs/zerolog"
)

// overviewService implements OverviewService.
type overviewService struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	reviewRepo   repository.ReviewRepository
	logger       zerolog.Logger
}

// NewOverviewService creates a new overview service.
func NewOverviewService(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	reviewRepo repository.ReviewRepository,
	logger zerolog.Logger,
) OverviewService {
	return &overviewService{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		reviewRepo:   reviewRepo,
		logger:       logger.With().Str("service", "overview").Logger(),
	}
}

// Summary loads all four collections and computes the overview.
func (s *overviewService) Summary(ctx context.Context) (*model.OverviewView, error) {
	products, err := s.productRepo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	customers, err := s.customerRepo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	orders, err := s.orderRepo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	reviews, err := s.reviewRepo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	revenueByState, err := s.orderRepo.SalesByState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales by state: %w", err)
	}
	if len(revenueByState) > topStates {
		revenueByState = revenueByState[:topStates]
	}

	categoryStats, err := s.productRepo.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category stats: %w", err)
	}

	categories := make([]string, len(products))
	for i, p := range products {
		categories[i] = p.Category
	}

	states := make([]string, len(customers))
	for i, c := range customers {
		states[i] = c.State
	}

	statuses := make([]string, len(orders))
	payments := make([]string, len(orders))
	var totalRevenue float64
	for i, o := range orders {
		statuses[i] = o.Status
		payments[i] = o.PaymentMethod
		totalRevenue += o.TotalAmount
	}

	ratings := make([]float64, len(reviews))
	for i, r := range reviews {
		ratings[i] = float64(r.Rating)
	}

	view := &model.OverviewView{
		TotalProducts:      len(products),
		ProductCategories:  distinct(categories),
		TotalCustomers:     len(customers),
		UniqueStates:       distinct(states),
		TotalOrders:        len(orders),
		TotalRevenue:       totalRevenue,
		TotalReviews:       len(reviews),
		AvgRating:          mean(ratings),
		RevenueByState:     revenueByState,
		ProductsByCategory: categoryStats,
		OrdersByStatus:     countByLabel(statuses),
		PaymentMethods:     countByLabel(payments),
	}

	s.logger.Debug().
		Int("products", view.TotalProducts).
		Int("customers", view.TotalCustomers).
		Int("orders", view.TotalOrders).
		Int("reviews", view.TotalReviews).
		Msg("computed overview")

	return view, nil
}
