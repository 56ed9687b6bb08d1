package service

import (
	"context"
	"errors"
	"testing"

	"retail-analytics/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_Summary(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	products := []model.Product{
		{ID: "P0001", Name: "Books Product 1", Category: "Books", Price: 15.00, StockQuantity: 40, Rating: 4.2},
		{ID: "P0002", Name: "Electronics Product 2", Category: "Electronics", Price: 299.99, StockQuantity: 10, Rating: 3.8},
		{ID: "P0003", Name: "Toys Product 3", Category: "Toys", Price: 45.50, StockQuantity: 120, Rating: 4.6},
	}
	categoryStats := []model.CategoryStats{
		{Category: "Books", TotalProducts: 1, AvgPrice: 15.00, AvgRating: 4.2, TotalStock: 40},
	}

	t.Run("Aggregates consistent with inputs", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FetchAll", ctx).Return(products, nil)
		repo.On("CategoryStats", ctx).Return(categoryStats, nil)

		svc := NewProductService(repo, logger)
		view, err := svc.Summary(ctx)
		require.NoError(t, err)

		assert.Equal(t, 3, view.TotalProducts)
		assert.InDelta(t, (15.00+299.99+45.50)/3, view.AvgPrice, 0.001)
		assert.Equal(t, 170, view.TotalStock)
		assert.InDelta(t, (4.2+3.8+4.6)/3, view.AvgRating, 0.001)
		assert.Equal(t, categoryStats, view.CategoryStats)

		// Catalog is sorted by price descending
		require.Len(t, view.Catalog, 3)
		assert.Equal(t, "P0002", view.Catalog[0].ID)
		assert.Equal(t, "P0003", view.Catalog[1].ID)
		assert.Equal(t, "P0001", view.Catalog[2].ID)

		// Histogram counts cover every product
		total := 0
		for _, b := range view.PriceHistogram {
			total += b.Count
		}
		assert.Equal(t, 3, total)

		repo.AssertExpectations(t)
	})

	t.Run("Input order is not mutated", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FetchAll", ctx).Return(products, nil)
		repo.On("CategoryStats", ctx).Return(categoryStats, nil)

		svc := NewProductService(repo, logger)
		_, err := svc.Summary(ctx)
		require.NoError(t, err)

		assert.Equal(t, "P0001", products[0].ID)
	})

	t.Run("Repository error propagates", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("FetchAll", ctx).Return(nil, errors.New("database error"))

		svc := NewProductService(repo, logger)
		view, err := svc.Summary(ctx)

		require.Error(t, err)
		assert.Nil(t, view)
	})
}
