package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {
	args := m.Called(ctx, filter)
	r0, _ := args.Get(0).([]*models.Product)
	r1, _ := args.Get(1).(int)

	return r0, r1, args.Error(2)
}

func (m *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Product)

	return r0, args.Error(1)
}

func (m *ProductRepository) ProductExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(bool)

	return r0, args.Error(1)
}

func (m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product, promotions []int64) error {
	args := m.Called(ctx, product, promotions)

	return args.Error(0)
}

func (m *ProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
