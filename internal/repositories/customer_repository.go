package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CustomerRepository interface {
	ListCustomers(ctx context.Context, page, pageSize int) ([]*models.Customer, int, error)
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
	ListAddresses(ctx context.Context, customerID int64) ([]*models.Address, error)
	CreateAddress(ctx context.Context, address *models.Address) error
	DeleteAddress(ctx context.Context, customerID, id int64) error
}

type customerRepository struct {
	DB *sqlx.DB
}

func NewCustomerRepo(db *sqlx.DB) CustomerRepository {
	return &customerRepository{DB: db}
}

func (r *customerRepository) ListCustomers(ctx context.Context, page, pageSize int) ([]*models.Customer, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.GetContext(dbCtx, &total, `SELECT COUNT(*) FROM customers`); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	query := `
		SELECT id, user_id, phone, birth_date, membership
		FROM customers
		ORDER BY id
		LIMIT $1 OFFSET $2`

	customers := []*models.Customer{}
	if err := r.DB.SelectContext(dbCtx, &customers, query, pageSize, (page-1)*pageSize); err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, total, nil
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	return r.getCustomer(ctx, `WHERE id = $1`, id)
}

func (r *customerRepository) GetCustomerByUserID(ctx context.Context, userID uuid.UUID) (*models.Customer, error) {
	return r.getCustomer(ctx, `WHERE user_id = $1`, userID)
}

func (r *customerRepository) getCustomer(ctx context.Context, where string, arg any) (*models.Customer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, phone, birth_date, membership
		FROM customers
		` + where

	var customer models.Customer
	if err := r.DB.GetContext(dbCtx, &customer, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO customers (user_id, phone, birth_date, membership)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.DB.QueryRowxContext(dbCtx, query, customer.UserID, customer.Phone, customer.BirthDate, customer.Membership).Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", translateError(err))
	}

	return nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE customers SET phone = $1, birth_date = $2, membership = $3 WHERE id = $4`

	result, err := r.DB.ExecContext(dbCtx, query, customer.Phone, customer.BirthDate, customer.Membership, customer.ID)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return expectAffected(result)
}

// DeleteCustomer fails with ErrReferenced while the customer has orders.
func (r *customerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", translateDeleteError(err))
	}

	return expectAffected(result)
}

func (r *customerRepository) ListAddresses(ctx context.Context, customerID int64) ([]*models.Address, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	addresses := []*models.Address{}

	query := `SELECT id, customer_id, street, city FROM addresses WHERE customer_id = $1 ORDER BY id`
	if err := r.DB.SelectContext(dbCtx, &addresses, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	return addresses, nil
}

func (r *customerRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO addresses (customer_id, street, city) VALUES ($1, $2, $3) RETURNING id`

	if err := r.DB.QueryRowxContext(dbCtx, query, address.CustomerID, address.Street, address.City).Scan(&address.ID); err != nil {
		return fmt.Errorf("failed to create address: %w", translateError(err))
	}

	return nil
}

func (r *customerRepository) DeleteAddress(ctx context.Context, customerID, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM addresses WHERE id = $1 AND customer_id = $2`, id, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	return expectAffected(result)
}
