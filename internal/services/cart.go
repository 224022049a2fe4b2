package service

import (
	"context"
	stdErrors "errors"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
)

type CartService interface {
	CreateCart(ctx context.Context) (*models.Cart, error)
	GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	DeleteCart(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error)
	GetItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*models.CartItem, error)
	AddItem(ctx context.Context, cartID uuid.UUID, req *models.AddCartItemRequest) (*models.CartItem, error)
	UpdateItem(ctx context.Context, cartID uuid.UUID, itemID int64, req *models.UpdateCartItemRequest) (*models.CartItem, error)
	DeleteItem(ctx context.Context, cartID uuid.UUID, itemID int64) error
}

type cartService struct {
	repo repository.CartRepository
}

func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) CreateCart(ctx context.Context) (*models.Cart, error) {
	cart, err := s.repo.CreateCart(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	cart, err := s.repo.GetCart(ctx, id)
	if err != nil {
		return nil, cartError(err, "Failed to fetch cart")
	}

	return cart, nil
}

func (s *cartService) DeleteCart(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteCart(ctx, id); err != nil {
		return cartError(err, "Failed to delete cart")
	}

	return nil
}

func (s *cartService) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	if err := s.ensureCart(ctx, cartID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListItems(ctx, cartID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch cart items").WithError(err)
	}

	return items, nil
}

func (s *cartService) GetItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*models.CartItem, error) {
	item, err := s.repo.GetItem(ctx, cartID, itemID)
	if err != nil {
		return nil, cartItemError(err, "Failed to fetch cart item")
	}

	return item, nil
}

// AddItem merges into the existing line for the same product.
func (s *cartService) AddItem(ctx context.Context, cartID uuid.UUID, req *models.AddCartItemRequest) (*models.CartItem, error) {
	item, err := s.repo.AddItem(ctx, cartID, req.ProductID, req.Quantity)
	if err != nil {
		if stdErrors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.AddValidationError("product_id", "No product with given ID was found.").WithError(err)
		}

		if stdErrors.Is(err, repository.ErrOutOfRange) {
			return nil, errors.AddValidationError("quantity", "Ensure this value is less than or equal to 32767.").WithError(err)
		}

		return nil, cartError(err, "Failed to add item to cart")
	}

	metrics.RecordCartItemsAdded(req.Quantity)

	return item, nil
}

func (s *cartService) UpdateItem(ctx context.Context, cartID uuid.UUID, itemID int64, req *models.UpdateCartItemRequest) (*models.CartItem, error) {
	item, err := s.repo.UpdateItemQuantity(ctx, cartID, itemID, req.Quantity)
	if err != nil {
		return nil, cartItemError(err, "Failed to update cart item")
	}

	return item, nil
}

func (s *cartService) DeleteItem(ctx context.Context, cartID uuid.UUID, itemID int64) error {
	if err := s.repo.DeleteItem(ctx, cartID, itemID); err != nil {
		return cartItemError(err, "Failed to delete cart item")
	}

	return nil
}

func (s *cartService) ensureCart(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.CartExists(ctx, id)
	if err != nil {
		return errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if !exists {
		return errors.NotFoundError("Cart not found")
	}

	return nil
}

func cartError(err error, message string) error {
	if stdErrors.Is(err, repository.ErrCartNotFound) {
		return errors.NotFoundError("Cart not found").WithError(err)
	}

	return errors.DatabaseError(message).WithError(err)
}

func cartItemError(err error, message string) error {
	if stdErrors.Is(err, repository.ErrNotFound) {
		return errors.NotFoundError("Cart item not found").WithError(err)
	}

	return errors.DatabaseError(message).WithError(err)
}
