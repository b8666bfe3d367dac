package service

import (
	"context"

	"github.com/sweethomebakery/backend/internal/models"
)

// ReviewStore is the slice of the store that the review service needs
type ReviewStore interface {
	ListReviews(ctx context.Context, limit, offset int64) ([]models.Review, int64, error)
	CreateReview(ctx context.Context, sub models.ReviewSubmission) (*models.Review, error)
}

// ReviewService handles review reads and submissions
type ReviewService struct {
	store ReviewStore
}

// NewReviewService creates a new review service
func NewReviewService(store ReviewStore) *ReviewService {
	return &ReviewService{
		store: store,
	}
}

// ListReviews returns a page of approved reviews and the total approved count
func (s *ReviewService) ListReviews(ctx context.Context, limit, offset int64) ([]models.Review, int64, error) {
	return s.store.ListReviews(ctx, limit, offset)
}

// CreateReview persists a submission already validated at the boundary
func (s *ReviewService) CreateReview(ctx context.Context, sub models.ReviewSubmission) (*models.Review, error) {
	return s.store.CreateReview(ctx, sub)
}
