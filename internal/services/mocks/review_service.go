package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type ReviewService struct {
	mock.Mock
}

func (m *ReviewService) ListReviews(ctx context.Context, productID int64) ([]*models.Review, error) {
	args := m.Called(ctx, productID)
	r0, _ := args.Get(0).([]*models.Review)

	return r0, args.Error(1)
}

func (m *ReviewService) GetReview(ctx context.Context, productID int64, id int64) (*models.Review, error) {
	args := m.Called(ctx, productID, id)
	r0, _ := args.Get(0).(*models.Review)

	return r0, args.Error(1)
}

func (m *ReviewService) CreateReview(ctx context.Context, productID int64, req *models.ReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, productID, req)
	r0, _ := args.Get(0).(*models.Review)

	return r0, args.Error(1)
}

func (m *ReviewService) UpdateReview(ctx context.Context, productID int64, id int64, req *models.ReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, productID, id, req)
	r0, _ := args.Get(0).(*models.Review)

	return r0, args.Error(1)
}

func (m *ReviewService) DeleteReview(ctx context.Context, productID int64, id int64) error {
	args := m.Called(ctx, productID, id)

	return args.Error(0)
}
