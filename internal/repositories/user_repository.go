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

type UserRepository interface {
	CreateUserWithCustomer(ctx context.Context, user *models.User) (*models.Customer, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userRepository struct {
	DB *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) UserRepository {
	return &userRepository{DB: db}
}

// CreateUserWithCustomer signs the user up together with a Bronze customer
// profile, so every user has exactly one customer.
func (r *userRepository) CreateUserWithCustomer(ctx context.Context, user *models.User) (*models.Customer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTxx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	userQuery := `
		INSERT INTO users (email, username, password, first_name, last_name, is_staff, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
		RETURNING id, created_at`

	err = tx.QueryRowxContext(dbCtx, userQuery, user.Email, user.Username, user.Password, user.FirstName, user.LastName).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", translateError(err))
	}

	customer := &models.Customer{UserID: user.ID, Membership: models.MembershipBronze}

	customerQuery := `
		INSERT INTO customers (user_id, phone, membership)
		VALUES ($1, '', $2)
		RETURNING id`

	if err := tx.QueryRowxContext(dbCtx, customerQuery, customer.UserID, customer.Membership).Scan(&customer.ID); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", translateError(err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit signup: %w", err)
	}

	return customer, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUser(ctx, `WHERE email = $1`, email)
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUser(ctx, `WHERE id = $1`, id)
}

func (r *userRepository) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, email, username, password, first_name, last_name, is_staff, created_at
		FROM users
		` + where

	var user models.User
	if err := r.DB.GetContext(dbCtx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
