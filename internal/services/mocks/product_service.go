package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductService struct {
	mock.Mock
}

func (m *ProductService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {
	args := m.Called(ctx, filter)
	r0, _ := args.Get(0).([]*models.Product)
	r1, _ := args.Get(1).(int)

	return r0, r1, args.Error(2)
}

func (m *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Product)

	return r0, args.Error(1)
}

func (m *ProductService) CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*models.Product)

	return r0, args.Error(1)
}

func (m *ProductService) ReplaceProduct(ctx context.Context, id int64, req *models.ProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)
	r0, _ := args.Get(0).(*models.Product)

	return r0, args.Error(1)
}

func (m *ProductService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)
	r0, _ := args.Get(0).(*models.Product)

	return r0, args.Error(1)
}

func (m *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
