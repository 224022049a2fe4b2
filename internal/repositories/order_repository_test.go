package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orderColumns     = []string{"id", "customer_id", "placed_at", "payment_status", "payment_intent_id", "user_id"}
	orderItemColumns = []string{"id", "order_id", "product_id", "quantity", "unit_price"}
)

func TestCreateFromCart(t *testing.T) {
	ctx := t.Context()
	cartID := uuid.New()
	now := time.Now().UTC()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM carts WHERE id = \$1 FOR UPDATE`).
			WithArgs(cartID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(cartID.String()))
		mock.ExpectQuery(`SELECT ci.product_id, ci.quantity, p.unit_price FROM cart_items ci`).
			WithArgs(cartID).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price"}).
				AddRow(5, 2, "10.00").
				AddRow(6, 1, "5.50"))
		mock.ExpectQuery(`INSERT INTO orders \(customer_id, placed_at, payment_status\)`).
			WithArgs(int64(7), models.PaymentStatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id", "placed_at"}).AddRow(42, now))
		mock.ExpectQuery(`INSERT INTO order_items \(order_id, product_id, quantity, unit_price\)`).
			WithArgs(int64(42), int64(5), 2, decimal.RequireFromString("10.00")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WithArgs(int64(42), int64(6), 1, decimal.RequireFromString("5.50")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
		mock.ExpectExec(`DELETE FROM carts WHERE id = \$1`).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		order, err := repo.CreateFromCart(ctx, cartID, 7)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(42), order.ID)
		assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
		require.Len(t, order.Items, 2)
		assert.Equal(t, int64(101), order.Items[1].ID)
		assert.Equal(t, int64(42), order.Items[1].OrderID)
		assert.True(t, decimal.RequireFromString("25.50").Equal(order.Total()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Cart Not Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).
			WithArgs(cartID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		order, err := repo.CreateFromCart(ctx, cartID, 7)

		require.ErrorIs(t, err, repository.ErrCartNotFound)
		assert.Nil(t, order)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Cart Empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).
			WithArgs(cartID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(cartID.String()))
		mock.ExpectQuery(`FROM cart_items ci`).
			WithArgs(cartID).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price"}))
		mock.ExpectRollback()

		order, err := repo.CreateFromCart(ctx, cartID, 7)

		require.ErrorIs(t, err, repository.ErrCartEmpty)
		assert.Nil(t, order)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Item Insert Fails Rolls Back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(cartID.String()))
		mock.ExpectQuery(`FROM cart_items ci`).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price"}).AddRow(5, 2, "10.00"))
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "placed_at"}).AddRow(42, now))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		order, err := repo.CreateFromCart(ctx, cartID, 7)

		require.Error(t, err)
		assert.Nil(t, order)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetOrderByID(t *testing.T) {
	ctx := t.Context()
	userID := uuid.New()
	now := time.Now().UTC()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectQuery(`FROM orders o JOIN customers c ON c.id = o.customer_id WHERE o.id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(42, 7, now, "C", "pi_123", userID.String()))
		mock.ExpectQuery(`FROM order_items WHERE order_id = ANY\(\$1\) ORDER BY id`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(orderItemColumns).AddRow(100, 42, 5, 2, "10.00"))

		order, err := repo.GetOrderByID(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusComplete, order.PaymentStatus)
		assert.Equal(t, userID, order.UserID)
		require.NotNil(t, order.PaymentIntentID)
		assert.Equal(t, "pi_123", *order.PaymentIntentID)
		require.Len(t, order.Items, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectQuery(`WHERE o.id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(orderColumns))

		order, err := repo.GetOrderByID(ctx, 42)

		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, order)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListOrders(t *testing.T) {
	ctx := t.Context()
	userID := uuid.New()
	now := time.Now().UTC()

	t.Run("Scoped To Customer", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)
		customerID := int64(7)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders o WHERE o.customer_id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectQuery(`WHERE o.customer_id = \$1 ORDER BY o.placed_at DESC, o.id DESC LIMIT \$2 OFFSET \$3`).
			WithArgs(int64(7), 10, 0).
			WillReturnRows(sqlmock.NewRows(orderColumns).
				AddRow(43, 7, now, "P", nil, userID.String()).
				AddRow(42, 7, now.Add(-time.Hour), "C", nil, userID.String()))
		mock.ExpectQuery(`WHERE order_id = ANY\(\$1\)`).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(orderItemColumns).
				AddRow(100, 42, 5, 2, "10.00").
				AddRow(101, 43, 6, 1, "5.50").
				AddRow(102, 43, 5, 1, "10.00"))

		// Act
		orders, total, err := repo.ListOrders(ctx, &customerID, 1, 10)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, orders, 2)
		assert.Len(t, orders[0].Items, 2)
		assert.Len(t, orders[1].Items, 1)
		assert.Nil(t, orders[0].PaymentIntentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("All Orders, Empty Page", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM orders o$`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`ORDER BY o.placed_at DESC, o.id DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(10, 10).
			WillReturnRows(sqlmock.NewRows(orderColumns))

		orders, total, err := repo.ListOrders(ctx, nil, 2, 10)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderPaymentUpdates(t *testing.T) {
	ctx := t.Context()

	t.Run("UpdatePaymentStatus - Not Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectExec(`UPDATE orders SET payment_status = \$1 WHERE id = \$2`).
			WithArgs(models.PaymentStatusFailed, int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePaymentStatus(ctx, 42, models.PaymentStatusFailed)

		require.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SetPaymentIntent", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectExec(`UPDATE orders SET payment_intent_id = \$1 WHERE id = \$2`).
			WithArgs("pi_123", int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SetPaymentIntent(ctx, 42, "pi_123"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdatePaymentStatusByIntent", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectQuery(`UPDATE orders SET payment_status = \$1 WHERE payment_intent_id = \$2 RETURNING id`).
			WithArgs(models.PaymentStatusComplete, "pi_123").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectQuery(`WHERE payment_intent_id = \$2`).
			WithArgs(models.PaymentStatusComplete, "pi_unknown").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		id, err := repo.UpdatePaymentStatusByIntent(ctx, "pi_123", models.PaymentStatusComplete)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)

		_, err = repo.UpdatePaymentStatusByIntent(ctx, "pi_unknown", models.PaymentStatusComplete)
		require.ErrorIs(t, err, repository.ErrNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteOrder(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM order_items WHERE order_id = \$1`).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM orders WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.DeleteOrder(ctx, 42))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found Rolls Back", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM order_items`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM orders`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		require.ErrorIs(t, repo.DeleteOrder(ctx, 42), repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
