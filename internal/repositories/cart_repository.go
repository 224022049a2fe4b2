package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type CartRepository interface {
	CreateCart(ctx context.Context) (*models.Cart, error)
	GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	CartExists(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteCart(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error)
	GetItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*models.CartItem, error)
	AddItem(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (*models.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID uuid.UUID, itemID int64, quantity int) (*models.CartItem, error)
	DeleteItem(ctx context.Context, cartID uuid.UUID, itemID int64) error
}

type cartRepository struct {
	DB *sqlx.DB
}

func NewCartRepo(db *sqlx.DB) CartRepository {
	return &cartRepository{DB: db}
}

// flat row of a cart item joined with its product
type cartItemRow struct {
	ID        int64           `db:"id"`
	CartID    uuid.UUID       `db:"cart_id"`
	Quantity  int             `db:"quantity"`
	ProductID int64           `db:"product_id"`
	Title     string          `db:"title"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

func (row cartItemRow) toModel() models.CartItem {
	return models.CartItem{
		ID:       row.ID,
		CartID:   row.CartID,
		Quantity: row.Quantity,
		Product: models.SimpleProduct{
			ID:        row.ProductID,
			Title:     row.Title,
			UnitPrice: row.UnitPrice,
		},
	}
}

const cartItemSelect = `
	SELECT ci.id, ci.cart_id, ci.quantity, p.id AS product_id, p.title, p.unit_price
	FROM cart_items ci
	JOIN products p ON p.id = ci.product_id`

func (r *cartRepository) CreateCart(ctx context.Context) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cart := &models.Cart{ID: uuid.New(), Items: []models.CartItem{}}

	query := `INSERT INTO carts (id, created_at) VALUES ($1, NOW()) RETURNING created_at`

	if err := r.DB.QueryRowxContext(dbCtx, query, cart.ID).Scan(&cart.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) GetCart(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var createdAt time.Time
	if err := r.DB.GetContext(dbCtx, &createdAt, `SELECT created_at FROM carts WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCartNotFound
		}

		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	items, err := r.selectItems(dbCtx, id)
	if err != nil {
		return nil, err
	}

	return &models.Cart{ID: id, CreatedAt: createdAt, Items: items}, nil
}

func (r *cartRepository) CartExists(ctx context.Context, id uuid.UUID) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool
	if err := r.DB.GetContext(dbCtx, &exists, `SELECT EXISTS(SELECT 1 FROM carts WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("failed to check cart: %w", err)
	}

	return exists, nil
}

// DeleteCart removes the cart; its items cascade.
func (r *cartRepository) DeleteCart(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	if err := expectAffected(result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrCartNotFound
		}

		return err
	}

	return nil
}

func (r *cartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.selectItems(dbCtx, cartID)
}

func (r *cartRepository) selectItems(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	query := cartItemSelect + `
	WHERE ci.cart_id = $1
	ORDER BY ci.id`

	var rows []cartItemRow
	if err := r.DB.SelectContext(ctx, &rows, query, cartID); err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	items := make([]models.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}

	return items, nil
}

func (r *cartRepository) GetItem(ctx context.Context, cartID uuid.UUID, itemID int64) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := cartItemSelect + `
	WHERE ci.id = $1 AND ci.cart_id = $2`

	var row cartItemRow
	if err := r.DB.GetContext(dbCtx, &row, query, itemID, cartID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	item := row.toModel()

	return &item, nil
}

// AddItem inserts the (cart, product) line or, when it already exists,
// increments its quantity. The single statement keeps concurrent adds of
// the same product from creating two lines or losing an increment.
func (r *cartRepository) AddItem(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
	WITH upserted AS (
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, cart_id, product_id, quantity
	)
	SELECT u.id, u.cart_id, u.quantity, p.id AS product_id, p.title, p.unit_price
	FROM upserted u
	JOIN products p ON p.id = u.product_id`

	var row cartItemRow
	if err := r.DB.GetContext(dbCtx, &row, query, cartID, productID, quantity); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", translateError(err))
	}

	item := row.toModel()

	return &item, nil
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, cartID uuid.UUID, itemID int64, quantity int) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
	WITH updated AS (
		UPDATE cart_items SET quantity = $1
		WHERE id = $2 AND cart_id = $3
		RETURNING id, cart_id, product_id, quantity
	)
	SELECT u.id, u.cart_id, u.quantity, p.id AS product_id, p.title, p.unit_price
	FROM updated u
	JOIN products p ON p.id = u.product_id`

	var row cartItemRow
	if err := r.DB.GetContext(dbCtx, &row, query, quantity, itemID, cartID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	item := row.toModel()

	return &item, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, cartID uuid.UUID, itemID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`, itemID, cartID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	return expectAffected(result)
}
