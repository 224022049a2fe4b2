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
	"github.com/lib/pq"
)

type OrderRepository interface {
	CreateFromCart(ctx context.Context, cartID uuid.UUID, customerID int64) (*models.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	ListOrders(ctx context.Context, customerID *int64, page, pageSize int) ([]*models.Order, int, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status models.PaymentStatus) error
	SetPaymentIntent(ctx context.Context, id int64, paymentIntentID string) error
	UpdatePaymentStatusByIntent(ctx context.Context, paymentIntentID string, status models.PaymentStatus) (int64, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type orderRepository struct {
	DB *sqlx.DB
}

func NewOrderRepo(db *sqlx.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderSelect = `
	SELECT o.id, o.customer_id, o.placed_at, o.payment_status, o.payment_intent_id, c.user_id
	FROM orders o
	JOIN customers c ON c.id = o.customer_id`

// CreateFromCart converts the cart into an order in one transaction: the
// cart row is locked, each item is copied with the product's current unit
// price, and the cart is deleted. Returns ErrCartNotFound or ErrCartEmpty
// without writing anything.
func (r *orderRepository) CreateFromCart(ctx context.Context, cartID uuid.UUID, customerID int64) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTxx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var lockedID uuid.UUID
	if err := tx.GetContext(dbCtx, &lockedID, `SELECT id FROM carts WHERE id = $1 FOR UPDATE`, cartID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCartNotFound
		}

		return nil, fmt.Errorf("failed to lock cart: %w", err)
	}

	itemsQuery := `
		SELECT ci.product_id, ci.quantity, p.unit_price
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id`

	var items []models.OrderItem
	if err := tx.SelectContext(dbCtx, &items, itemsQuery, cartID); err != nil {
		return nil, fmt.Errorf("failed to read cart items: %w", err)
	}

	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &models.Order{
		CustomerID:    customerID,
		PaymentStatus: models.PaymentStatusPending,
	}

	orderQuery := `
		INSERT INTO orders (customer_id, placed_at, payment_status)
		VALUES ($1, NOW(), $2)
		RETURNING id, placed_at`

	if err := tx.QueryRowxContext(dbCtx, orderQuery, customerID, order.PaymentStatus).Scan(&order.ID, &order.PlacedAt); err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", translateError(err))
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	for i := range items {
		items[i].OrderID = order.ID

		if err := tx.QueryRowxContext(dbCtx, itemQuery, order.ID, items[i].ProductID, items[i].Quantity, items[i].UnitPrice).Scan(&items[i].ID); err != nil {
			return nil, fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if _, err := tx.ExecContext(dbCtx, `DELETE FROM carts WHERE id = $1`, cartID); err != nil {
		return nil, fmt.Errorf("failed to delete cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	order.Items = items

	return order, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var order models.Order
	if err := r.DB.GetContext(dbCtx, &order, orderSelect+`
	WHERE o.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if err := r.attachItems(dbCtx, []*models.Order{&order}); err != nil {
		return nil, err
	}

	return &order, nil
}

// ListOrders pages through every order, or only customerID's when set.
func (r *orderRepository) ListOrders(ctx context.Context, customerID *int64, page, pageSize int) ([]*models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where := ""
	args := []any{}

	if customerID != nil {
		where = "\n\tWHERE o.customer_id = $1"
		args = append(args, *customerID)
	}

	var total int
	if err := r.DB.GetContext(dbCtx, &total, `SELECT COUNT(*) FROM orders o`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := orderSelect + where + fmt.Sprintf(`
	ORDER BY o.placed_at DESC, o.id DESC
	LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	orders := []*models.Order{}
	if err := r.DB.SelectContext(dbCtx, &orders, query, append(args, pageSize, (page-1)*pageSize)...); err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	if err := r.attachItems(dbCtx, orders); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// attachItems loads the items of all given orders with one query.
func (r *orderRepository) attachItems(ctx context.Context, orders []*models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	byID := make(map[int64]*models.Order, len(orders))

	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
		o.Items = []models.OrderItem{}
	}

	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id`

	var items []models.OrderItem
	if err := r.DB.SelectContext(ctx, &items, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to get order items: %w", err)
	}

	for _, item := range items {
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	return nil
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id int64, status models.PaymentStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE orders SET payment_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	return expectAffected(result)
}

func (r *orderRepository) SetPaymentIntent(ctx context.Context, id int64, paymentIntentID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE orders SET payment_intent_id = $1 WHERE id = $2`, paymentIntentID, id)
	if err != nil {
		return fmt.Errorf("failed to store payment intent: %w", err)
	}

	return expectAffected(result)
}

// UpdatePaymentStatusByIntent returns the id of the order carrying the intent.
func (r *orderRepository) UpdatePaymentStatusByIntent(ctx context.Context, paymentIntentID string, status models.PaymentStatus) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var id int64

	query := `UPDATE orders SET payment_status = $1 WHERE payment_intent_id = $2 RETURNING id`
	if err := r.DB.GetContext(dbCtx, &id, query, status, paymentIntentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}

		return 0, fmt.Errorf("failed to update payment status: %w", err)
	}

	return id, nil
}

// DeleteOrder removes the order and its items in one transaction.
func (r *orderRepository) DeleteOrder(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTxx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(dbCtx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	result, err := tx.ExecContext(dbCtx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if err := expectAffected(result); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order deletion: %w", err)
	}

	return nil
}
