package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	t.Run("Marshal", func(t *testing.T) {
		data, err := json.Marshal(models.NewDate(1990, time.May, 1))

		require.NoError(t, err)
		assert.JSONEq(t, `"1990-05-01"`, string(data))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		var req models.UpdateProfileRequest

		err := json.Unmarshal([]byte(`{"phone":"555","birth_date":"1990-05-01"}`), &req)

		require.NoError(t, err)
		require.NotNil(t, req.BirthDate)
		assert.Equal(t, 1990, req.BirthDate.Year())
		assert.Equal(t, time.May, req.BirthDate.Month())
	})

	t.Run("Unmarshal rejects other layouts", func(t *testing.T) {
		var d models.Date

		err := json.Unmarshal([]byte(`"01/05/1990"`), &d)

		require.Error(t, err)
	})

	t.Run("Scan", func(t *testing.T) {
		var d models.Date

		require.NoError(t, d.Scan([]byte("2001-02-03")))
		assert.Equal(t, 3, d.Day())

		require.Error(t, d.Scan(42))
	})
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Bronze", models.MembershipBronze.Label())
	assert.Equal(t, "Silver", models.MembershipSilver.Label())
	assert.Equal(t, "Gold", models.MembershipGold.Label())
	assert.Equal(t, "Pending", models.PaymentStatusPending.Label())
	assert.Equal(t, "Complete", models.PaymentStatusComplete.Label())
	assert.Equal(t, "Failed", models.PaymentStatusFailed.Label())
	assert.Empty(t, models.PaymentStatus("X").Label())
}

func TestNewProductResponse(t *testing.T) {
	product := &models.Product{
		ID:           7,
		Title:        "Coffee",
		UnitPrice:    decimal.RequireFromString("10.00"),
		Inventory:    3,
		CollectionID: 2,
		Promotions:   pq.Int64Array{1, 4},
	}

	resp := models.NewProductResponse(product)

	assert.Equal(t, "Low", resp.InventoryStatus)
	assert.True(t, decimal.RequireFromString("11.00").Equal(resp.PriceWithTax))
	assert.Equal(t, int64(2), resp.Collection)
	assert.Equal(t, []int64{1, 4}, resp.Promotions)

	t.Run("No promotions renders an empty list", func(t *testing.T) {
		product.Promotions = nil

		data, err := json.Marshal(models.NewProductResponse(product))

		require.NoError(t, err)
		assert.Contains(t, string(data), `"promotions":[]`)
	})
}

func TestNewCartResponse(t *testing.T) {
	cart := &models.Cart{
		ID: uuid.New(),
		Items: []models.CartItem{
			{ID: 1, Product: models.SimpleProduct{ID: 1, Title: "A", UnitPrice: decimal.RequireFromString("10.00")}, Quantity: 2},
			{ID: 2, Product: models.SimpleProduct{ID: 2, Title: "B", UnitPrice: decimal.RequireFromString("5.00")}, Quantity: 1},
		},
	}

	resp := models.NewCartResponse(cart)

	require.Len(t, resp.Items, 2)
	assert.True(t, decimal.RequireFromString("20.00").Equal(resp.Items[0].TotalPrice))
	assert.True(t, decimal.RequireFromString("25.00").Equal(resp.TotalPrice))

	t.Run("Empty cart", func(t *testing.T) {
		data, err := json.Marshal(models.NewCartResponse(&models.Cart{ID: uuid.New()}))

		require.NoError(t, err)
		assert.Contains(t, string(data), `"items":[]`)
		assert.Contains(t, string(data), `"total_price":"0"`)
	})
}

func TestNewOrderResponse(t *testing.T) {
	order := &models.Order{
		ID:            3,
		CustomerID:    9,
		PaymentStatus: models.PaymentStatusPending,
		Items: []models.OrderItem{
			{ID: 1, ProductID: 5, Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")},
		},
	}

	resp := models.NewOrderResponse(order)

	assert.Equal(t, "Pending", resp.PaymentStatusLabel)
	assert.Equal(t, int64(9), resp.Customer)
	assert.True(t, decimal.RequireFromString("7.50").Equal(resp.Items[0].TotalPrice))
	assert.True(t, decimal.RequireFromString("7.50").Equal(resp.TotalPrice))
}

func TestNewPaginatedResponse(t *testing.T) {
	tests := []struct {
		total, pageSize, wantPages int
	}{
		{0, 10, 0},
		{10, 10, 1},
		{41, 20, 3},
		{5, 0, 0},
	}

	for _, tc := range tests {
		page := models.NewPaginatedResponse([]int{}, tc.total, 1, tc.pageSize)

		assert.Equal(t, tc.wantPages, page.TotalPages, "total=%d pageSize=%d", tc.total, tc.pageSize)
		assert.Equal(t, tc.total, page.Total)
	}
}
