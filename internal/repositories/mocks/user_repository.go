package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUserWithCustomer(ctx context.Context, user *models.User) (*models.Customer, error) {
	args := m.Called(ctx, user)
	r0, _ := args.Get(0).(*models.Customer)

	return r0, args.Error(1)
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	r0, _ := args.Get(0).(*models.User)

	return r0, args.Error(1)
}

func (m *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.User)

	return r0, args.Error(1)
}
