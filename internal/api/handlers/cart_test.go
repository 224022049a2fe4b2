package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

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

func setupCartTest() (*mocks.CartService, *handlers.CartHandler) {
	mockService := new(mocks.CartService)
	return mockService, handlers.NewCartHandler(mockService)
}

func TestCreateCart(t *testing.T) {
	t.Run("Success - Empty Cart", func(t *testing.T) {
		mockService, handler := setupCartTest()
		cartID := uuid.New()
		mockService.On("CreateCart", mock.Anything).Return(&models.Cart{ID: cartID}, nil).Once()

		rr := httptest.NewRecorder()
		handler.CreateCart()(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/carts", nil, nil))

		require.Equal(t, http.StatusCreated, rr.Code)

		cart := decodeData[models.CartResponse](t, rr)
		assert.Equal(t, cartID, cart.ID)
		assert.Empty(t, cart.Items)
		assert.True(t, cart.TotalPrice.IsZero())
	})
}

func TestGetCart(t *testing.T) {
	cartID := uuid.New()
	path := map[string]string{"id": cartID.String()}

	t.Run("Success - Totals Computed", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCartTest()
		cart := &models.Cart{
			ID: cartID,
			Items: []models.CartItem{
				{ID: 1, Quantity: 2, Product: models.SimpleProduct{ID: 3, Title: "Coffee", UnitPrice: decimal.RequireFromString("4.25")}},
				{ID: 2, Quantity: 1, Product: models.SimpleProduct{ID: 4, Title: "Tea", UnitPrice: decimal.RequireFromString("3.00")}},
			},
		}
		mockService.On("GetCart", mock.Anything, cartID).Return(cart, nil).Once()

		rr := httptest.NewRecorder()

		// Act
		handler.GetCart()(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/carts/"+cartID.String(), nil, path))

		// Assert
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeData[models.CartResponse](t, rr)
		require.Len(t, resp.Items, 2)
		assert.True(t, resp.Items[0].TotalPrice.Equal(decimal.RequireFromString("8.50")))
		assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("11.50")))
	})

	t.Run("Failure - Malformed ID", func(t *testing.T) {
		mockService, handler := setupCartTest()

		rr := httptest.NewRecorder()
		handler.GetCart()(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/carts/nope", nil, map[string]string{"id": "nope"}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mockService, handler := setupCartTest()
		mockService.On("GetCart", mock.Anything, cartID).Return(nil, appErrors.NotFoundError("Cart not found")).Once()

		rr := httptest.NewRecorder()
		handler.GetCart()(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/carts/"+cartID.String(), nil, path))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Cart not found", decodeError(t, rr).Message)
	})
}

func TestAddCartItem(t *testing.T) {
	cartID := uuid.New()
	path := map[string]string{"id": cartID.String()}

	t.Run("Success", func(t *testing.T) {
		mockService, handler := setupCartTest()
		item := &models.CartItem{ID: 9, CartID: cartID, Quantity: 3, Product: models.SimpleProduct{ID: 3, UnitPrice: decimal.RequireFromString("2.00")}}
		mockService.On("AddItem", mock.Anything, cartID, &models.AddCartItemRequest{ProductID: 3, Quantity: 3}).Return(item, nil).Once()

		body := map[string]any{"product_id": 3, "quantity": 3}
		rr := httptest.NewRecorder()
		handler.AddItem()(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/carts/"+cartID.String()+"/items", jsonBody(t, body), path))

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.True(t, decodeData[models.CartItemResponse](t, rr).TotalPrice.Equal(decimal.RequireFromString("6")))
	})

	t.Run("Failure - Zero Quantity", func(t *testing.T) {
		mockService, handler := setupCartTest()

		body := map[string]any{"product_id": 3, "quantity": 0}
		rr := httptest.NewRecorder()
		handler.AddItem()(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/carts/"+cartID.String()+"/items", jsonBody(t, body), path))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unknown Product", func(t *testing.T) {
		mockService, handler := setupCartTest()
		mockService.On("AddItem", mock.Anything, cartID, mock.Anything).
			Return(nil, appErrors.AddValidationError("product_id", "No product with given ID was found.")).Once()

		body := map[string]any{"product_id": 99, "quantity": 1}
		rr := httptest.NewRecorder()
		handler.AddItem()(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/carts/"+cartID.String()+"/items", jsonBody(t, body), path))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, []string{"product_id: No product with given ID was found."}, decodeError(t, rr).Details)
	})

	t.Run("Failure - Merged Quantity Too Large", func(t *testing.T) {
		mockService, handler := setupCartTest()
		mockService.On("AddItem", mock.Anything, cartID, &models.AddCartItemRequest{ProductID: 3, Quantity: 32767}).
			Return(nil, appErrors.AddValidationError("quantity", "Ensure this value is less than or equal to 32767.")).Once()

		body := map[string]any{"product_id": 3, "quantity": 32767}
		rr := httptest.NewRecorder()
		handler.AddItem()(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/carts/"+cartID.String()+"/items", jsonBody(t, body), path))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, []string{"quantity: Ensure this value is less than or equal to 32767."}, decodeError(t, rr).Details)
	})
}

func TestUpdateAndDeleteCartItem(t *testing.T) {
	cartID := uuid.New()
	path := map[string]string{"id": cartID.String(), "itemId": "9"}

	t.Run("Update", func(t *testing.T) {
		mockService, handler := setupCartTest()
		mockService.On("UpdateItem", mock.Anything, cartID, int64(9), &models.UpdateCartItemRequest{Quantity: 4}).
			Return(&models.CartItem{ID: 9, Quantity: 4}, nil).Once()

		rr := httptest.NewRecorder()
		handler.UpdateItem()(rr, testutils.CreateTestRequestWithoutContext(http.MethodPatch, "/", jsonBody(t, map[string]any{"quantity": 4}), path))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 4, decodeData[models.CartItemResponse](t, rr).Quantity)
	})

	t.Run("Delete", func(t *testing.T) {
		mockService, handler := setupCartTest()
		mockService.On("DeleteItem", mock.Anything, cartID, int64(9)).Return(nil).Once()

		rr := httptest.NewRecorder()
		handler.DeleteItem()(rr, testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/", nil, path))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Delete Cart", func(t *testing.T) {
		mockService, handler := setupCartTest()
		mockService.On("DeleteCart", mock.Anything, cartID).Return(nil).Once()

		rr := httptest.NewRecorder()
		handler.DeleteCart()(rr, testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/", nil, map[string]string{"id": cartID.String()}))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
