package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateFromCart(ctx context.Context, cartID uuid.UUID, customerID int64) (*models.Order, error) {
	args := m.Called(ctx, cartID, customerID)
	r0, _ := args.Get(0).(*models.Order)

	return r0, args.Error(1)
}

func (m *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Order)

	return r0, args.Error(1)
}

func (m *OrderRepository) ListOrders(ctx context.Context, customerID *int64, page int, pageSize int) ([]*models.Order, int, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	r0, _ := args.Get(0).([]*models.Order)
	r1, _ := args.Get(1).(int)

	return r0, r1, args.Error(2)
}

func (m *OrderRepository) UpdatePaymentStatus(ctx context.Context, id int64, status models.PaymentStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *OrderRepository) SetPaymentIntent(ctx context.Context, id int64, paymentIntentID string) error {
	args := m.Called(ctx, id, paymentIntentID)

	return args.Error(0)
}

func (m *OrderRepository) UpdatePaymentStatusByIntent(ctx context.Context, paymentIntentID string, status models.PaymentStatus) (int64, error) {
	args := m.Called(ctx, paymentIntentID, status)
	r0, _ := args.Get(0).(int64)

	return r0, args.Error(1)
}

func (m *OrderRepository) DeleteOrder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
