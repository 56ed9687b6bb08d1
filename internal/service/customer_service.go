package service

import (
	"context"
	"fmt"

	"retail-analytics/internal/model"
	"retail-analytics/internal/repository"

	"github.com/rs/zerolog"
)

// customerService implements CustomerService.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

// Summary loads the customers collection and computes the view.
func (s *customerService) Summary(ctx context.Context) (*model.CustomersView, error) {
	customers, err := s.customerRepo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	cities := make([]string, len(customers))
	states := make([]string, len(customers))
	tiers := make([]string, len(customers))
	for i, c := range customers {
		cities[i] = c.City
		states[i] = c.State
		tiers[i] = c.LoyaltyTier
	}

	tierCounts := countByLabel(tiers)
	topTier := ""
	if len(tierCounts) > 0 {
		topTier = tierCounts[0].Label
	}

	view := &model.CustomersView{
		TotalCustomers:   len(customers),
		UniqueCities:     distinct(cities),
		UniqueStates:     distinct(states),
		TopLoyaltyTier:   topTier,
		CustomersByState: topN(countByLabel(states), topStates),
		LoyaltyTiers:     tierCounts,
		TopCities:        topN(countByLabel(cities), topCities),
		Directory:        customers,
	}

	s.logger.Debug().Int("count", view.TotalCustomers).Msg("computed customer view")

	return view, nil
}
