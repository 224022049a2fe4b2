package service

import (
	"context"
	stdErrors "errors"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
)

type CustomerService interface {
	ListCustomers(ctx context.Context, page, pageSize int) ([]*models.Customer, int, error)
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Customer, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.Customer, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*models.Address, error)
	CreateAddress(ctx context.Context, userID uuid.UUID, req *models.AddressRequest) (*models.Address, error)
	DeleteAddress(ctx context.Context, userID uuid.UUID, id int64) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) ListCustomers(ctx context.Context, page, pageSize int) ([]*models.Customer, int, error) {
	customers, total, err := s.repo.ListCustomers(ctx, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch customers").WithError(err)
	}

	return customers, total, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, customerError(err, "Failed to fetch customer")
	}

	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	membership := req.Membership
	if membership == "" {
		membership = models.MembershipBronze
	}

	customer := &models.Customer{
		UserID:     req.UserID,
		Phone:      req.Phone,
		BirthDate:  req.BirthDate,
		Membership: membership,
	}

	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		switch {
		case stdErrors.Is(err, repository.ErrDuplicate):
			return nil, errors.DuplicateEntryError("Customer already exists for this user").WithError(err)
		case stdErrors.Is(err, repository.ErrUserNotFound):
			return nil, errors.AddValidationError("user_id", "No user with the given ID was found.").WithError(err)
		default:
			return nil, errors.DatabaseError("Failed to create customer").WithError(err)
		}
	}

	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Phone = req.Phone
	customer.BirthDate = req.BirthDate
	customer.Membership = req.Membership

	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		return nil, customerError(err, "Failed to update customer")
	}

	return customer, nil
}

// DeleteCustomer refuses while the customer has orders.
func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		if stdErrors.Is(err, repository.ErrReferenced) {
			return errors.ConflictError("Cannot delete customer because they have placed orders").WithError(err)
		}

		return customerError(err, "Failed to delete customer")
	}

	return nil
}

func (s *customerService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Customer, error) {
	customer, err := s.repo.GetCustomerByUserID(ctx, userID)
	if err != nil {
		return nil, customerError(err, "Failed to fetch customer profile")
	}

	return customer, nil
}

// UpdateProfile changes contact details only; membership is managed by staff.
func (s *customerService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.Customer, error) {
	customer, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	customer.Phone = req.Phone
	customer.BirthDate = req.BirthDate

	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		return nil, customerError(err, "Failed to update customer profile")
	}

	return customer, nil
}

func (s *customerService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*models.Address, error) {
	customer, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	addresses, err := s.repo.ListAddresses(ctx, customer.ID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch addresses").WithError(err)
	}

	return addresses, nil
}

func (s *customerService) CreateAddress(ctx context.Context, userID uuid.UUID, req *models.AddressRequest) (*models.Address, error) {
	customer, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	address := &models.Address{
		CustomerID: customer.ID,
		Street:     req.Street,
		City:       req.City,
	}

	if err := s.repo.CreateAddress(ctx, address); err != nil {
		return nil, errors.DatabaseError("Failed to create address").WithError(err)
	}

	return address, nil
}

func (s *customerService) DeleteAddress(ctx context.Context, userID uuid.UUID, id int64) error {
	customer, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteAddress(ctx, customer.ID, id); err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundError("Address not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete address").WithError(err)
	}

	return nil
}

func customerError(err error, message string) error {
	if stdErrors.Is(err, repository.ErrNotFound) {
		return errors.NotFoundError("Customer not found").WithError(err)
	}

	return errors.DatabaseError(message).WithError(err)
}
