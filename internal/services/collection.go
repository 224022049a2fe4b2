package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
)

type CollectionService interface {
	ListCollections(ctx context.Context) ([]*models.Collection, error)
	GetCollectionByID(ctx context.Context, id int64) (*models.Collection, error)
	CreateCollection(ctx context.Context, req *models.CollectionRequest) (*models.Collection, error)
	UpdateCollection(ctx context.Context, id int64, req *models.CollectionRequest) (*models.Collection, error)
	DeleteCollection(ctx context.Context, id int64) error
}

type collectionService struct {
	repo  repository.CollectionRepository
	cache cache.Cache
}

func NewCollectionService(repo repository.CollectionRepository, cache cache.Cache) CollectionService {
	return &collectionService{repo: repo, cache: cache}
}

// ListCollections serves the list from the cache when present.
func (s *collectionService) ListCollections(ctx context.Context) ([]*models.Collection, error) {
	var collections []*models.Collection

	found, err := s.cache.Get(ctx, cache.CollectionListKey, &collections)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to read collections from cache", slog.String("error", err.Error()))
	}

	if found {
		return collections, nil
	}

	collections, err = s.repo.ListCollections(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch collections").WithError(err)
	}

	if err := s.cache.Set(ctx, cache.CollectionListKey, collections, 0); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to cache collections", slog.String("error", err.Error()))
	}

	return collections, nil
}

func (s *collectionService) GetCollectionByID(ctx context.Context, id int64) (*models.Collection, error) {
	collection, err := s.repo.GetCollectionByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Collection not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch collection").WithError(err)
	}

	return collection, nil
}

func (s *collectionService) CreateCollection(ctx context.Context, req *models.CollectionRequest) (*models.Collection, error) {
	collection := &models.Collection{
		Title:             req.Title,
		FeaturedProductID: req.FeaturedProductID,
	}

	if err := s.repo.CreateCollection(ctx, collection); err != nil {
		return nil, collectionWriteError(err, req, "Failed to create collection")
	}

	s.invalidate(ctx)

	return collection, nil
}

func (s *collectionService) UpdateCollection(ctx context.Context, id int64, req *models.CollectionRequest) (*models.Collection, error) {
	collection, err := s.GetCollectionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	collection.Title = req.Title
	collection.FeaturedProductID = req.FeaturedProductID

	if err := s.repo.UpdateCollection(ctx, collection); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Collection not found").WithError(err)
		}

		return nil, collectionWriteError(err, req, "Failed to update collection")
	}

	s.invalidate(ctx)

	return collection, nil
}

// DeleteCollection refuses while any product still belongs to the collection.
func (s *collectionService) DeleteCollection(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCollection(ctx, id); err != nil {
		switch {
		case stdErrors.Is(err, repository.ErrReferenced):
			return errors.ConflictError("Cannot delete Collection because it contains some products").WithError(err)
		case stdErrors.Is(err, repository.ErrNotFound):
			return errors.NotFoundError("Collection not found").WithError(err)
		default:
			return errors.DatabaseError("Failed to delete collection").WithError(err)
		}
	}

	s.invalidate(ctx)

	return nil
}

func (s *collectionService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.CollectionListKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to invalidate collections cache", slog.String("error", err.Error()))
	}
}

func collectionWriteError(err error, req *models.CollectionRequest, message string) error {
	if stdErrors.Is(err, repository.ErrProductNotFound) && req.FeaturedProductID != nil {
		return errors.AddValidationError("featured_product_id", invalidPK(*req.FeaturedProductID)).WithError(err)
	}

	return errors.DatabaseError(message).WithError(err)
}

func invalidPK(id int64) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}
