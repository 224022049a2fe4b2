package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/access"
	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOrderTest() (*mocks.OrderService, *handlers.OrderHandler) {
	mockService := new(mocks.OrderService)
	return mockService, handlers.NewOrderHandler(mockService)
}

func sampleOrder() *models.Order {
	return &models.Order{
		ID:            21,
		CustomerID:    8,
		PlacedAt:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		PaymentStatus: models.PaymentStatusPending,
		Items: []models.OrderItem{
			{ID: 1, OrderID: 21, ProductID: 3, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	userID := uuid.New()
	identity := access.Identity{UserID: userID, Authenticated: true}
	cartID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService, handler := setupOrderTest()
		mockService.On("CreateOrder", mock.Anything, identity, &models.CreateOrderRequest{CartUUID: cartID.String()}).
			Return(sampleOrder(), nil).Once()

		body := map[string]any{"cart_uuid": cartID.String()}
		rr := httptest.NewRecorder()

		// Act
		handler.CreateOrder()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/orders", jsonBody(t, body), userID, nil))

		// Assert
		require.Equal(t, http.StatusCreated, rr.Code)

		order := decodeData[models.OrderResponse](t, rr)
		assert.Equal(t, int64(8), order.Customer)
		assert.Equal(t, "Pending", order.PaymentStatusLabel)
		assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("20")))
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Malformed Cart UUID", func(t *testing.T) {
		mockService, handler := setupOrderTest()

		body := map[string]any{"cart_uuid": "abc"}
		rr := httptest.NewRecorder()
		handler.CreateOrder()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/orders", jsonBody(t, body), userID, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, []string{"cart_uuid: Must be a valid UUID."}, decodeError(t, rr).Details)
		mockService.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		mockService, handler := setupOrderTest()
		mockService.On("CreateOrder", mock.Anything, identity, mock.Anything).
			Return(nil, appErrors.AddValidationError("cart_uuid", "The cart is empty.")).Once()

		body := map[string]any{"cart_uuid": cartID.String()}
		rr := httptest.NewRecorder()
		handler.CreateOrder()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/orders", jsonBody(t, body), userID, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, []string{"cart_uuid: The cart is empty."}, decodeError(t, rr).Details)
	})
}

func TestGetOrder(t *testing.T) {
	userID := uuid.New()

	t.Run("Forbidden For Another Customer", func(t *testing.T) {
		mockService, handler := setupOrderTest()
		mockService.On("GetOrderByID", mock.Anything, access.Identity{UserID: userID, Authenticated: true}, int64(21)).
			Return(nil, appErrors.ForbiddenError("You do not have permission to access this order")).Once()

		rr := httptest.NewRecorder()
		handler.GetOrder()(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders/21", nil, userID, map[string]string{"id": "21"}))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Staff Identity Passed Through", func(t *testing.T) {
		mockService, handler := setupOrderTest()
		mockService.On("GetOrderByID", mock.Anything, access.Identity{UserID: userID, Authenticated: true, IsStaff: true}, int64(21)).
			Return(sampleOrder(), nil).Once()

		rr := httptest.NewRecorder()
		handler.GetOrder()(rr, testutils.CreateStaffTestRequest(http.MethodGet, "/api/v1/orders/21", nil, userID, map[string]string{"id": "21"}))

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestListOrders(t *testing.T) {
	userID := uuid.New()
	mockService, handler := setupOrderTest()
	mockService.On("ListOrders", mock.Anything, access.Identity{UserID: userID, Authenticated: true}, 3, 20).
		Return([]*models.Order{sampleOrder()}, 41, nil).Once()

	rr := httptest.NewRecorder()
	handler.ListOrders()(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders?page=3&pageSize=20", nil, userID, nil))

	require.Equal(t, http.StatusOK, rr.Code)

	page := decodeData[struct {
		Data     []models.OrderResponse `json:"data"`
		Total    int                    `json:"total"`
		PageSize int                    `json:"pageSize"`
	}](t, rr)
	assert.Equal(t, 41, page.Total)
	assert.Equal(t, 20, page.PageSize)
	assert.Len(t, page.Data, 1)
}

func TestUpdateAndDeleteOrder(t *testing.T) {
	staffID := uuid.New()
	path := map[string]string{"id": "21"}

	t.Run("Update", func(t *testing.T) {
		mockService, handler := setupOrderTest()
		updated := sampleOrder()
		updated.PaymentStatus = models.PaymentStatusComplete
		mockService.On("UpdatePaymentStatus", mock.Anything, int64(21), &models.UpdateOrderRequest{PaymentStatus: models.PaymentStatusComplete}).
			Return(updated, nil).Once()

		body := map[string]any{"payment_status": "C"}
		rr := httptest.NewRecorder()
		handler.UpdateOrder()(rr, testutils.CreateStaffTestRequest(http.MethodPatch, "/api/v1/orders/21", jsonBody(t, body), staffID, path))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Complete", decodeData[models.OrderResponse](t, rr).PaymentStatusLabel)
	})

	t.Run("Update - Unknown Status", func(t *testing.T) {
		mockService, handler := setupOrderTest()

		body := map[string]any{"payment_status": "X"}
		rr := httptest.NewRecorder()
		handler.UpdateOrder()(rr, testutils.CreateStaffTestRequest(http.MethodPatch, "/api/v1/orders/21", jsonBody(t, body), staffID, path))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Delete", func(t *testing.T) {
		mockService, handler := setupOrderTest()
		mockService.On("DeleteOrder", mock.Anything, int64(21)).Return(nil).Once()

		rr := httptest.NewRecorder()
		handler.DeleteOrder()(rr, testutils.CreateStaffTestRequest(http.MethodDelete, "/api/v1/orders/21", nil, staffID, path))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
