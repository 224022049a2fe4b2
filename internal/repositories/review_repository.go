package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/jmoiron/sqlx"
)

type ReviewRepository interface {
	ListReviews(ctx context.Context, productID int64) ([]*models.Review, error)
	GetReview(ctx context.Context, productID, id int64) (*models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) error
	UpdateReview(ctx context.Context, review *models.Review) error
	DeleteReview(ctx context.Context, productID, id int64) error
}

type reviewRepository struct {
	DB *sqlx.DB
}

func NewReviewRepo(db *sqlx.DB) ReviewRepository {
	return &reviewRepository{DB: db}
}

func (r *reviewRepository) ListReviews(ctx context.Context, productID int64) ([]*models.Review, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, product_id, name, description, date
		FROM reviews
		WHERE product_id = $1
		ORDER BY id`

	reviews := []*models.Review{}
	if err := r.DB.SelectContext(dbCtx, &reviews, query, productID); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) GetReview(ctx context.Context, productID, id int64) (*models.Review, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, product_id, name, description, date
		FROM reviews
		WHERE id = $1 AND product_id = $2`

	var review models.Review
	if err := r.DB.GetContext(dbCtx, &review, query, id, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return &review, nil
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO reviews (product_id, name, description, date)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, date`

	err := r.DB.QueryRowxContext(dbCtx, query, review.ProductID, review.Name, review.Description).Scan(&review.ID, &review.Date)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", translateError(err))
	}

	return nil
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review *models.Review) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE reviews SET name = $1, description = $2, date = NOW()
		WHERE id = $3 AND product_id = $4
		RETURNING date`

	err := r.DB.QueryRowxContext(dbCtx, query, review.Name, review.Description, review.ID, review.ProductID).Scan(&review.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		return fmt.Errorf("failed to update review: %w", err)
	}

	return nil
}

func (r *reviewRepository) DeleteReview(ctx context.Context, productID, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM reviews WHERE id = $1 AND product_id = $2`, id, productID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return expectAffected(result)
}
