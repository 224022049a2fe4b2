package service

import (
	"context"
	stdErrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/lib/pq"
	"github.com/mozillazg/go-slugify"
	"github.com/shopspring/decimal"
)

// unit_price is numeric(6,2)
var maxUnitPrice = decimal.RequireFromString("9999.99")

type ProductService interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, error)
	ReplaceProduct(ctx context.Context, id int64, req *models.ProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

func NewProductService(repo repository.ProductRepository, cache cache.Cache) ProductService {
	return &productService{repo: repo, cache: cache}
}

// page means "page number requested"
// pageSize means "number of products to be displayed per page"
func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {
	if !repository.ValidProductOrdering(filter.Ordering) {
		return nil, 0, errors.AddValidationError("ordering", "Select a valid ordering: price, -price, last_updated or -last_updated.")
	}

	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

// GetProductByID reads through the product:{id} cache entry.
func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	key := cache.ProductKey(id)

	var cached models.Product

	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to read product from cache", slog.String("key", key), slog.String("error", err.Error()))
	}

	if found {
		return &cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := s.cache.Set(ctx, key, product, 0); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to cache product", slog.String("key", key), slog.String("error", err.Error()))
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, error) {
	if err := validatePrice(*req.Price); err != nil {
		return nil, err
	}

	product := &models.Product{
		Title:        req.Title,
		Slug:         slugOrTitle(req.Slug, req.Title),
		Description:  req.Description,
		UnitPrice:    *req.Price,
		Inventory:    *req.Inventory,
		CollectionID: req.Collection,
		Promotions:   pq.Int64Array(req.Promotions),
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, productWriteError(err, product, "Failed to create product")
	}

	if product.Promotions == nil {
		product.Promotions = pq.Int64Array{}
	}

	s.invalidate(ctx, product.ID)

	return product, nil
}

// ReplaceProduct overwrites every field; promotions are kept when the request omits them.
func (s *productService) ReplaceProduct(ctx context.Context, id int64, req *models.ProductRequest) (*models.Product, error) {
	if err := validatePrice(*req.Price); err != nil {
		return nil, err
	}

	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Title = req.Title
	product.Slug = slugOrTitle(req.Slug, req.Title)
	product.Description = req.Description
	product.UnitPrice = *req.Price
	product.Inventory = *req.Inventory
	product.CollectionID = req.Collection

	return s.save(ctx, product, req.Promotions)
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
	}

	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		product.Title = *req.Title
	}

	if req.Slug != nil {
		product.Slug = slugOrTitle(*req.Slug, product.Title)
	}

	if req.Description != nil {
		product.Description = req.Description
	}

	if req.Price != nil {
		product.UnitPrice = *req.Price
	}

	if req.Inventory != nil {
		product.Inventory = *req.Inventory
	}

	if req.Collection != nil {
		product.CollectionID = *req.Collection
	}

	return s.save(ctx, product, req.Promotions)
}

// DeleteProduct refuses while any order item refers to the product.
func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		switch {
		case stdErrors.Is(err, repository.ErrReferenced):
			return errors.ConflictError("Cannot delete product because it is associated with an order item").WithError(err)
		case stdErrors.Is(err, repository.ErrNotFound):
			return errors.NotFoundError("Product not found").WithError(err)
		default:
			return errors.DatabaseError("Failed to delete product").WithError(err)
		}
	}

	s.invalidate(ctx, id)

	return nil
}

// load bypasses the cache so writes start from the stored row.
func (s *productService) load(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

func (s *productService) save(ctx context.Context, product *models.Product, promotions []int64) (*models.Product, error) {
	if err := s.repo.UpdateProduct(ctx, product, promotions); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, productWriteError(err, product, "Failed to update product")
	}

	s.invalidate(ctx, product.ID)

	return product, nil
}

func (s *productService) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, cache.ProductKey(id), cache.CollectionListKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to invalidate product cache", slog.Int64("productId", id), slog.String("error", err.Error()))
	}
}

func productWriteError(err error, product *models.Product, message string) error {
	switch {
	case stdErrors.Is(err, repository.ErrCollectionNotFound):
		return errors.AddValidationError("collection", invalidPK(product.CollectionID)).WithError(err)
	case stdErrors.Is(err, repository.ErrPromotionNotFound):
		return errors.AddValidationError("promotions", "One or more promotions do not exist.").WithError(err)
	default:
		return errors.DatabaseError(message).WithError(err)
	}
}

func validatePrice(price decimal.Decimal) error {
	switch {
	case price.IsNegative():
		return errors.AddValidationError("price", "Ensure this value is greater than or equal to 0.")
	case !price.Equal(price.Round(2)):
		return errors.AddValidationError("price", "Ensure that there are no more than 2 decimal places.")
	case price.GreaterThan(maxUnitPrice):
		return errors.AddValidationError("price", "Ensure that there are no more than 6 digits in total.")
	}

	return nil
}

func slugOrTitle(slug, title string) string {
	if slug != "" {
		return slug
	}

	return slugify.Slugify(title)
}
