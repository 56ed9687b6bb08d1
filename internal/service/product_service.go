package service

import (
	"context"
	"fmt"
	"sort"

	"retail-analytics/internal/model"
	"retail-analytics/internal/repository"

	"github.com/rs/zerolog"
)

// Presentation limits shared by the view services.
const (
	topStates     = 10
	topCities     = 10
	priceBins     = 30
	orderBins     = 30
	voteBins      = 20
	topRatedLimit = 15
	minTopReviews = 2
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Summary loads the products collection and computes the view.
func (s *productService) Summary(ctx context.Context) (*model.ProductsView, error) {
	products, err := s.productRepo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	categoryStats, err := s.productRepo.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category stats: %w", err)
	}

	prices := make([]float64, len(products))
	ratings := make([]float64, len(products))
	totalStock := 0
	for i, p := range products {
		prices[i] = p.Price
		ratings[i] = p.Rating
		totalStock += p.StockQuantity
	}

	catalog := make([]model.Product, len(products))
	copy(catalog, products)
	sort.Slice(catalog, func(i, j int) bool { return catalog[i].Price > catalog[j].Price })

	view := &model.ProductsView{
		TotalProducts:  len(products),
		AvgPrice:       mean(prices),
		TotalStock:     totalStock,
		AvgRating:      mean(ratings),
		CategoryStats:  categoryStats,
		PriceHistogram: histogram(prices, priceBins),
		Catalog:        catalog,
	}

	s.logger.Debug().Int("count", view.TotalProducts).Msg("computed product view")

	return view, nil
}
