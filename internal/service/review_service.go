package service

import (
	"context"
	"fmt"
	"sort"

	"retail-analytics/internal/model"
	"retail-analytics/internal/repository"

	"github.com/rs/zerolog"
)

// positiveRatingFloor is the lowest rating counted as a positive review.
const positiveRatingFloor = 4

// reviewService implements ReviewService.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		logger:     logger.With().Str("service", "review").Logger(),
	}
}

// Summary loads the reviews collection and computes the view.
func (s *reviewService) Summary(ctx context.Context) (*model.ReviewsView, error) {
	reviews, err := s.reviewRepo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	topProducts, err := s.reviewRepo.TopProducts(ctx, minTopReviews, topRatedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top products: %w", err)
	}

	ratings := make([]float64, len(reviews))
	votes := make([]float64, len(reviews))
	ratingCounts := make(map[int]int)
	positive := 0
	for i, r := range reviews {
		ratings[i] = float64(r.Rating)
		votes[i] = float64(r.HelpfulVotes)
		ratingCounts[r.Rating]++
		if r.Rating >= positiveRatingFloor {
			positive++
		}
	}

	distribution := make([]model.RatingCount, 0, len(ratingCounts))
	for rating, count := range ratingCounts {
		distribution = append(distribution, model.RatingCount{Rating: rating, Count: count})
	}
	sort.Slice(distribution, func(i, j int) bool { return distribution[i].Rating < distribution[j].Rating })

	recent := make([]model.Review, len(reviews))
	copy(recent, reviews)
	sort.Slice(recent, func(i, j int) bool { return recent[i].ID > recent[j].ID })

	view := &model.ReviewsView{
		TotalReviews:       len(reviews),
		AvgRating:          mean(ratings),
		PositiveReviews:    positive,
		AvgHelpfulVotes:    mean(votes),
		RatingDistribution: distribution,
		TopProducts:        topProducts,
		HelpfulVotes:       histogram(votes, voteBins),
		RecentReviews:      recent,
	}

	s.logger.Debug().Int("count", view.TotalReviews).Msg("computed review view")

	return view, nil
}
