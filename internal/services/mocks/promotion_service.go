package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type PromotionService struct {
	mock.Mock
}

func (m *PromotionService) ListPromotions(ctx context.Context) ([]*models.Promotion, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).([]*models.Promotion)

	return r0, args.Error(1)
}

func (m *PromotionService) CreatePromotion(ctx context.Context, req *models.CreatePromotionRequest) (*models.Promotion, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*models.Promotion)

	return r0, args.Error(1)
}
