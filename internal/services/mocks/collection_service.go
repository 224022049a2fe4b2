package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CollectionService struct {
	mock.Mock
}

func (m *CollectionService) ListCollections(ctx context.Context) ([]*models.Collection, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).([]*models.Collection)

	return r0, args.Error(1)
}

func (m *CollectionService) GetCollectionByID(ctx context.Context, id int64) (*models.Collection, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Collection)

	return r0, args.Error(1)
}

func (m *CollectionService) CreateCollection(ctx context.Context, req *models.CollectionRequest) (*models.Collection, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*models.Collection)

	return r0, args.Error(1)
}

func (m *CollectionService) UpdateCollection(ctx context.Context, id int64, req *models.CollectionRequest) (*models.Collection, error) {
	args := m.Called(ctx, id, req)
	r0, _ := args.Get(0).(*models.Collection)

	return r0, args.Error(1)
}

func (m *CollectionService) DeleteCollection(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
