package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) ListCustomers(ctx context.Context, page int, pageSize int) ([]*models.Customer, int, error) {
	args := m.Called(ctx, page, pageSize)
	r0, _ := args.Get(0).([]*models.Customer)
	r1, _ := args.Get(1).(int)

	return r0, r1, args.Error(2)
}

func (m *CustomerRepository) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*models.Customer)

	return r0, args.Error(1)
}

func (m *CustomerRepository) GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (*models.Customer, error) {
	args := m.Called(ctx, userID)
	r0, _ := args.Get(0).(*models.Customer)

	return r0, args.Error(1)
}

func (m *CustomerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)

	return args.Error(0)
}

func (m *CustomerRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)

	return args.Error(0)
}

func (m *CustomerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *CustomerRepository) ListAddresses(ctx context.Context, customerID int64) ([]*models.Address, error) {
	args := m.Called(ctx, customerID)
	r0, _ := args.Get(0).([]*models.Address)

	return r0, args.Error(1)
}

func (m *CustomerRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	args := m.Called(ctx, address)

	return args.Error(0)
}

func (m *CustomerRepository) DeleteAddress(ctx context.Context, customerID int64, id int64) error {
	args := m.Called(ctx, customerID, id)

	return args.Error(0)
}
