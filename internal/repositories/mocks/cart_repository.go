package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) CreateCart(ctx context.Context) (*models.Cart, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).(*models.Cart)

	return r0, args.Error(1)
}

func (m *CartRepository) GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Cart)

	return r0, args.Error(1)
}

func (m *CartRepository) CartExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(bool)

	return r0, args.Error(1)
}

func (m *CartRepository) DeleteCart(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *CartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	args := m.Called(ctx, cartID)
	r0, _ := args.Get(0).([]models.CartItem)

	return r0, args.Error(1)
}

func (m *CartRepository) GetItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*models.CartItem, error) {
	args := m.Called(ctx, cartID, itemID)
	r0, _ := args.Get(0).(*models.CartItem)

	return r0, args.Error(1)
}

func (m *CartRepository) AddItem(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (*models.CartItem, error) {
	args := m.Called(ctx, cartID, productID, quantity)
	r0, _ := args.Get(0).(*models.CartItem)

	return r0, args.Error(1)
}

func (m *CartRepository) UpdateItemQuantity(ctx context.Context, cartID uuid.UUID, itemID int64, quantity int) (*models.CartItem, error) {
	args := m.Called(ctx, cartID, itemID, quantity)
	r0, _ := args.Get(0).(*models.CartItem)

	return r0, args.Error(1)
}

func (m *CartRepository) DeleteItem(ctx context.Context, cartID uuid.UUID, itemID int64) error {
	args := m.Called(ctx, cartID, itemID)

	return args.Error(0)
}
