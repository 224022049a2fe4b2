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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCustomerTest() (*mocks.CustomerService, *handlers.CustomerHandler) {
	mockService := new(mocks.CustomerService)
	return mockService, handlers.NewCustomerHandler(mockService)
}

func TestCustomerStaffEndpoints(t *testing.T) {
	staffID := uuid.New()

	t.Run("List - Paginated With Labels", func(t *testing.T) {
		mockService, handler := setupCustomerTest()
		mockService.On("ListCustomers", mock.Anything, 1, 10).
			Return([]*models.Customer{{ID: 1, Membership: models.MembershipGold}}, 1, nil).Once()

		rr := httptest.NewRecorder()
		handler.ListCustomers()(rr, testutils.CreateStaffTestRequest(http.MethodGet, "/api/v1/customers", nil, staffID, nil))

		require.Equal(t, http.StatusOK, rr.Code)

		page := decodeData[struct {
			Data  []models.CustomerResponse `json:"data"`
			Total int                       `json:"total"`
		}](t, rr)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Gold", page.Data[0].MembershipLabel)
	})

	t.Run("Create - Invalid Membership", func(t *testing.T) {
		mockService, handler := setupCustomerTest()
		body := map[string]any{"user_id": uuid.New(), "phone": "555", "membership": "X"}

		rr := httptest.NewRecorder()
		handler.CreateCustomer()(rr, testutils.CreateStaffTestRequest(http.MethodPost, "/api/v1/customers", jsonBody(t, body), staffID, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, []string{"membership: Must be one of: B S G"}, decodeError(t, rr).Details)
		mockService.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
	})

	t.Run("Create - Duplicate", func(t *testing.T) {
		mockService, handler := setupCustomerTest()
		mockService.On("CreateCustomer", mock.Anything, mock.Anything).
			Return(nil, appErrors.DuplicateEntryError("Customer already exists for this user")).Once()

		body := map[string]any{"user_id": uuid.New(), "phone": "555"}
		rr := httptest.NewRecorder()
		handler.CreateCustomer()(rr, testutils.CreateStaffTestRequest(http.MethodPost, "/api/v1/customers", jsonBody(t, body), staffID, nil))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Delete - Has Orders", func(t *testing.T) {
		mockService, handler := setupCustomerTest()
		mockService.On("DeleteCustomer", mock.Anything, int64(3)).
			Return(appErrors.ConflictError("Cannot delete customer because they have placed orders")).Once()

		rr := httptest.NewRecorder()
		handler.DeleteCustomer()(rr, testutils.CreateStaffTestRequest(http.MethodDelete, "/api/v1/customers/3", nil, staffID, map[string]string{"id": "3"}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCustomerProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("Get", func(t *testing.T) {
		mockService, handler := setupCustomerTest()
		mockService.On("GetProfile", mock.Anything, userID).Return(&models.Customer{ID: 2, UserID: userID, Membership: models.MembershipBronze}, nil).Once()

		rr := httptest.NewRecorder()
		handler.GetProfile()(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/customers/me", nil, userID, nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Bronze", decodeData[models.CustomerResponse](t, rr).MembershipLabel)
	})

	t.Run("Get - Anonymous", func(t *testing.T) {
		_, handler := setupCustomerTest()

		rr := httptest.NewRecorder()
		handler.GetProfile()(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/customers/me", nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Update", func(t *testing.T) {
		mockService, handler := setupCustomerTest()
		mockService.On("UpdateProfile", mock.Anything, userID, &models.UpdateProfileRequest{Phone: "555-0101"}).
			Return(&models.Customer{ID: 2, UserID: userID, Phone: "555-0101", Membership: models.MembershipSilver}, nil).Once()

		body := map[string]any{"phone": "555-0101"}
		rr := httptest.NewRecorder()
		handler.UpdateProfile()(rr, testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/customers/me", jsonBody(t, body), userID, nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "555-0101", decodeData[models.CustomerResponse](t, rr).Phone)
	})

	t.Run("Addresses", func(t *testing.T) {
		mockService, handler := setupCustomerTest()
		mockService.On("CreateAddress", mock.Anything, userID, &models.AddressRequest{Street: "1 Main St", City: "Springfield"}).
			Return(&models.Address{ID: 5, CustomerID: 2, Street: "1 Main St", City: "Springfield"}, nil).Once()
		mockService.On("DeleteAddress", mock.Anything, userID, int64(5)).Return(nil).Once()

		body := map[string]any{"street": "1 Main St", "city": "Springfield"}
		rr := httptest.NewRecorder()
		handler.CreateAddress()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/customers/me/addresses", jsonBody(t, body), userID, nil))
		assert.Equal(t, http.StatusCreated, rr.Code)

		rr = httptest.NewRecorder()
		handler.DeleteAddress()(rr, testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/customers/me/addresses/5", nil, userID, map[string]string{"id": "5"}))
		assert.Equal(t, http.StatusNoContent, rr.Code)

		mockService.AssertExpectations(t)
	})
}
