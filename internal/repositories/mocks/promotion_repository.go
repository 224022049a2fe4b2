package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type PromotionRepository struct {
	mock.Mock
}

func (m *PromotionRepository) ListPromotions(ctx context.Context) ([]*models.Promotion, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).([]*models.Promotion)

	return r0, args.Error(1)
}

func (m *PromotionRepository) CreatePromotion(ctx context.Context, promotion *models.Promotion) error {
	args := m.Called(ctx, promotion)

	return args.Error(0)
}
