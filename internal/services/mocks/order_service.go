package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/access"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type OrderService struct {
	mock.Mock
}

func (m *OrderService) CreateOrder(ctx context.Context, identity access.Identity, req *models.CreateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, identity, req)
	r0, _ := args.Get(0).(*models.Order)

	return r0, args.Error(1)
}

func (m *OrderService) GetOrderByID(ctx context.Context, identity access.Identity, id int64) (*models.Order, error) {
	args := m.Called(ctx, identity, id)
	r0, _ := args.Get(0).(*models.Order)

	return r0, args.Error(1)
}

func (m *OrderService) ListOrders(ctx context.Context, identity access.Identity, page int, pageSize int) ([]*models.Order, int, error) {
	args := m.Called(ctx, identity, page, pageSize)
	r0, _ := args.Get(0).([]*models.Order)
	r1, _ := args.Get(1).(int)

	return r0, r1, args.Error(2)
}

func (m *OrderService) UpdatePaymentStatus(ctx context.Context, id int64, req *models.UpdateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, id, req)
	r0, _ := args.Get(0).(*models.Order)

	return r0, args.Error(1)
}

func (m *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
