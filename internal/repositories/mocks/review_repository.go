package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) ListReviews(ctx context.Context, productID int64) ([]*models.Review, error) {
	args := m.Called(ctx, productID)
	r0, _ := args.Get(0).([]*models.Review)

	return r0, args.Error(1)
}

func (m *ReviewRepository) GetReview(ctx context.Context, productID int64, id int64) (*models.Review, error) {
	args := m.Called(ctx, productID, id)
	r0, _ := args.Get(0).(*models.Review)

	return r0, args.Error(1)
}

func (m *ReviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *ReviewRepository) UpdateReview(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *ReviewRepository) DeleteReview(ctx context.Context, productID int64, id int64) error {
	args := m.Called(ctx, productID, id)

	return args.Error(0)
}
