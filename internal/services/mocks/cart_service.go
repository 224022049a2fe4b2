package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) CreateCart(ctx context.Context) (*models.Cart, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(*models.Cart)

	return r0, args.Error(1)
}

func (m *CartService) GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Cart)

	return r0, args.Error(1)
}

func (m *CartService) DeleteCart(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *CartService) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	args := m.Called(ctx, cartID)
	r0, _ := args.Get(0).([]models.CartItem)

	return r0, args.Error(1)
}

func (m *CartService) GetItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*models.CartItem, error) {
	args := m.Called(ctx, cartID, itemID)
	r0, _ := args.Get(0).(*models.CartItem)

	return r0, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, cartID uuid.UUID, req *models.AddCartItemRequest) (*models.CartItem, error) {
	args := m.Called(ctx, cartID, req)
	r0, _ := args.Get(0).(*models.CartItem)

	return r0, args.Error(1)
}

func (m *CartService) UpdateItem(ctx context.Context, cartID uuid.UUID, itemID int64, req *models.UpdateCartItemRequest) (*models.CartItem, error) {
	args := m.Called(ctx, cartID, itemID, req)
	r0, _ := args.Get(0).(*models.CartItem)

	return r0, args.Error(1)
}

func (m *CartService) DeleteItem(ctx context.Context, cartID uuid.UUID, itemID int64) error {
	args := m.Called(ctx, cartID, itemID)

	return args.Error(0)
}
