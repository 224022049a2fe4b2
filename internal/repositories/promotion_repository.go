package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/jmoiron/sqlx"
)

type PromotionRepository interface {
	ListPromotions(ctx context.Context) ([]*models.Promotion, error)
	CreatePromotion(ctx context.Context, promotion *models.Promotion) error
}

type promotionRepository struct {
	DB *sqlx.DB
}

func NewPromotionRepo(db *sqlx.DB) PromotionRepository {
	return &promotionRepository{DB: db}
}

func (r *promotionRepository) ListPromotions(ctx context.Context) ([]*models.Promotion, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	promotions := []*models.Promotion{}
	if err := r.DB.SelectContext(dbCtx, &promotions, `SELECT id, description, discount FROM promotions ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	return promotions, nil
}

func (r *promotionRepository) CreatePromotion(ctx context.Context, promotion *models.Promotion) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO promotions (description, discount) VALUES ($1, $2) RETURNING id`

	if err := r.DB.QueryRowxContext(dbCtx, query, promotion.Description, promotion.Discount).Scan(&promotion.ID); err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}

	return nil
}
