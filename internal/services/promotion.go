package service

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
)

type PromotionService interface {
	ListPromotions(ctx context.Context) ([]*models.Promotion, error)
	CreatePromotion(ctx context.Context, req *models.CreatePromotionRequest) (*models.Promotion, error)
}

type promotionService struct {
	repo repository.PromotionRepository
}

func NewPromotionService(repo repository.PromotionRepository) PromotionService {
	return &promotionService{repo: repo}
}

func (s *promotionService) ListPromotions(ctx context.Context) ([]*models.Promotion, error) {
	promotions, err := s.repo.ListPromotions(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch promotions").WithError(err)
	}

	return promotions, nil
}

func (s *promotionService) CreatePromotion(ctx context.Context, req *models.CreatePromotionRequest) (*models.Promotion, error) {
	promotion := &models.Promotion{
		Description: req.Description,
		Discount:    req.Discount,
	}

	if err := s.repo.CreatePromotion(ctx, promotion); err != nil {
		return nil, errors.DatabaseError("Failed to create promotion").WithError(err)
	}

	return promotion, nil
}
