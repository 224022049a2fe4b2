package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CustomerService struct {
	mock.Mock
}

func (m *CustomerService) ListCustomers(ctx context.Context, page int, pageSize int) ([]*models.Customer, int, error) {
	args := m.Called(ctx, page, pageSize)
	r0, _ := args.Get(0).([]*models.Customer)
	r1, _ := args.Get(1).(int)

	return r0, r1, args.Error(2)
}

func (m *CustomerService) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Customer)

	return r0, args.Error(1)
}

func (m *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	args := m.Called(ctx, req)
	r0, _ := args.Get(0).(*models.Customer)

	return r0, args.Error(1)
}

func (m *CustomerService) UpdateCustomer(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	args := m.Called(ctx, id, req)
	r0, _ := args.Get(0).(*models.Customer)

	return r0, args.Error(1)
}

func (m *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *CustomerService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Customer, error) {
	args := m.Called(ctx, userID)
	r0, _ := args.Get(0).(*models.Customer)

	return r0, args.Error(1)
}

func (m *CustomerService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.Customer, error) {
	args := m.Called(ctx, userID, req)
	r0, _ := args.Get(0).(*models.Customer)

	return r0, args.Error(1)
}

func (m *CustomerService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {
	args := m.Called(ctx, userID)
	r0, _ := args.Get(0).([]*models.Address)

	return r0, args.Error(1)
}

func (m *CustomerService) CreateAddress(ctx context.Context, userID uuid.UUID, req *models.AddressRequest) (*models.Address, error) {
	args := m.Called(ctx, userID, req)
	r0, _ := args.Get(0).(*models.Address)

	return r0, args.Error(1)
}

func (m *CustomerService) DeleteAddress(ctx context.Context, userID uuid.UUID, id int64) error {
	args := m.Called(ctx, userID, id)

	return args.Error(0)
}
