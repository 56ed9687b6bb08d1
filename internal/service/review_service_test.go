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

func TestReviewService_Summary(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	reviews := []model.Review{
		{ID: "R00001", Rating: 5, HelpfulVotes: 10},
		{ID: "R00002", Rating: 2, HelpfulVotes: 0},
		{ID: "R00003", Rating: 4, HelpfulVotes: 5},
		{ID: "R00004", Rating: 5, HelpfulVotes: 25},
	}
	topProducts := []model.ProductRating{
		{ProductID: "P0001", ProductName: "Books Product 1", AvgRating: 4.5, ReviewCount: 2},
	}

	t.Run("Aggregates consistent with inputs", func(t *testing.T) {
		repo := new(MockReviewRepository)
		repo.On("FetchAll", ctx).Return(reviews, nil)
		repo.On("TopProducts", ctx, minTopReviews, topRatedLimit).Return(topProducts, nil)

		svc := NewReviewService(repo, logger)
		view, err := svc.Summary(ctx)
		require.NoError(t, err)

		assert.Equal(t, 4, view.TotalReviews)
		assert.InDelta(t, 4.0, view.AvgRating, 0.001)
		assert.Equal(t, 3, view.PositiveReviews)
		assert.InDelta(t, 10.0, view.AvgHelpfulVotes, 0.001)

		assert.Equal(t, []model.RatingCount{
			{Rating: 2, Count: 1},
			{Rating: 4, Count: 1},
			{Rating: 5, Count: 2},
		}, view.RatingDistribution)

		assert.Equal(t, topProducts, view.TopProducts)

		// Recent reviews sorted by review ID descending
		require.Len(t, view.RecentReviews, 4)
		assert.Equal(t, "R00004", view.RecentReviews[0].ID)

		repo.AssertExpectations(t)
	})

	t.Run("Distribution counts sum to total", func(t *testing.T) {
		repo := new(MockReviewRepository)
		repo.On("FetchAll", ctx).Return(reviews, nil)
		repo.On("TopProducts", ctx, minTopReviews, topRatedLimit).Return(topProducts, nil)

		svc := NewReviewService(repo, logger)
		view, err := svc.Summary(ctx)
		require.NoError(t, err)

		total := 0
		for _, rc := range view.RatingDistribution {
			total += rc.Count
		}
		assert.Equal(t, view.TotalReviews, total)
	})

	t.Run("Repository error propagates", func(t *testing.T) {
		repo := new(MockReviewRepository)
		repo.On("FetchAll", ctx).Return(nil, errors.New("database error"))

		svc := NewReviewService(repo, logger)
		view, err := svc.Summary(ctx)

		require.Error(t, err)
		assert.Nil(t, view)
	})
}
