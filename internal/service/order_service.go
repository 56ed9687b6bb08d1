package service

import (
	"context"
	"fmt"
	"sort"

	"retail-analytics/internal/model"
	"retail-analytics/internal/repository"

	"github.com/rs/zerolog"
)

// StatusCompleted is the terminal order status surfaced as its own metric.
const StatusCompleted = "Completed"

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Summary loads the orders collection and computes the view.
func (s *orderService) Summary(ctx context.Context) (*model.OrdersView, error) {
	orders, err := s.orderRepo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	revenueByState, err := s.orderRepo.SalesByState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales by state: %w", err)
	}
	if len(revenueByState) > topStates {
		revenueByState = revenueByState[:topStates]
	}

	amounts := make([]float64, len(orders))
	statuses := make([]string, len(orders))
	completed := 0
	for i, o := range orders {
		amounts[i] = o.TotalAmount
		statuses[i] = o.Status
		if o.Status == StatusCompleted {
			completed++
		}
	}

	recent := make([]model.Order, len(orders))
	copy(recent, orders)
	sort.Slice(recent, func(i, j int) bool { return recent[i].ID > recent[j].ID })

	var totalRevenue float64
	for _, a := range amounts {
		totalRevenue += a
	}

	view := &model.OrdersView{
		TotalOrders:         len(orders),
		TotalRevenue:        totalRevenue,
		AvgOrderValue:       mean(amounts),
		CompletedOrders:     completed,
		RevenueByState:      revenueByState,
		StatusBreakdown:     countByLabel(statuses),
		OrderValueHistogram: histogram(amounts, orderBins),
		RecentOrders:        recent,
	}

	s.logger.Debug().
		Int("count", view.TotalOrders).
		Float64("revenue", view.TotalRevenue).
		Msg("computed order view")

	return view, nil
}
