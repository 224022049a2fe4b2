package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CollectionRepository struct {
	mock.Mock
}

func (m *CollectionRepository) ListCollections(ctx context.Context) ([]*models.Collection, error) {
	args := m.Called(ctx)
	r0, _ := args.Get(0).([]*models.Collection)

	return r0, args.Error(1)
}

func (m *CollectionRepository) GetCollectionByID(ctx context.Context, id int64) (*models.Collection, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Collection)

	return r0, args.Error(1)
}

func (m *CollectionRepository) CreateCollection(ctx context.Context, collection *models.Collection) error {
	args := m.Called(ctx, collection)

	return args.Error(0)
}

func (m *CollectionRepository) UpdateCollection(ctx context.Context, collection *models.Collection) error {
	args := m.Called(ctx, collection)

	return args.Error(0)
}

func (m *CollectionRepository) DeleteCollection(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
