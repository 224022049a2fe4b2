package service

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type ReviewService interface {
	ListReviews(ctx context.Context, productID int64) ([]*models.Review, error)
	GetReview(ctx context.Context, productID, id int64) (*models.Review, error)
	CreateReview(ctx context.Context, productID int64, req *models.ReviewRequest) (*models.Review, error)
	UpdateReview(ctx context.Context, productID, id int64, req *models.ReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, productID, id int64) error
}

type reviewService struct {
	repo        repository.ReviewRepository
	productRepo repository.ProductRepository
	policy      *bluemonday.Policy
}

func NewReviewService(repo repository.ReviewRepository, productRepo repository.ProductRepository) ReviewService {
	return &reviewService{repo: repo, productRepo: productRepo, policy: bluemonday.StrictPolicy()}
}

func (s *reviewService) ListReviews(ctx context.Context, productID int64) ([]*models.Review, error) {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.ListReviews(ctx, productID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch reviews").WithError(err)
	}

	return reviews, nil
}

func (s *reviewService) GetReview(ctx context.Context, productID, id int64) (*models.Review, error) {
	review, err := s.repo.GetReview(ctx, productID, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Review not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch review").WithError(err)
	}

	return review, nil
}

func (s *reviewService) CreateReview(ctx context.Context, productID int64, req *models.ReviewRequest) (*models.Review, error) {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	review := &models.Review{ProductID: productID}
	if err := s.apply(review, req); err != nil {
		return nil, err
	}

	if err := s.repo.CreateReview(ctx, review); err != nil {
		return nil, errors.DatabaseError("Failed to create review").WithError(err)
	}

	return review, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, productID, id int64, req *models.ReviewRequest) (*models.Review, error) {
	review, err := s.GetReview(ctx, productID, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(review, req); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateReview(ctx, review); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Review not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update review").WithError(err)
	}

	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, productID, id int64) error {
	if err := s.repo.DeleteReview(ctx, productID, id); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Review not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete review").WithError(err)
	}

	return nil
}

func (s *reviewService) ensureProduct(ctx context.Context, productID int64) error {
	exists, err := s.productRepo.ProductExists(ctx, productID)
	if err != nil {
		return errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if !exists {
		return errors.NotFoundError("Product not found")
	}

	return nil
}

// apply stores the sanitised request text on review.
func (s *reviewService) apply(review *models.Review, req *models.ReviewRequest) error {
	name := strings.TrimSpace(s.policy.Sanitize(req.Name))
	if name == "" {
		return errors.AddValidationError("name", "This field may not be blank.")
	}

	description := strings.TrimSpace(s.policy.Sanitize(req.Description))
	if description == "" {
		return errors.AddValidationError("description", "This field may not be blank.")
	}

	review.Name = name
	review.Description = description

	return nil
}
