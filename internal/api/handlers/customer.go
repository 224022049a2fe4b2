package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CustomerHandler struct {
	customerService service.CustomerService
	validator       *validator.Validate
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, validator: utils.NewValidator()}
}

// ListCustomers godoc
//
//	@Summary	List customers
//	@Tags		Customers
//	@Produce	json
//	@Param		page		query		int																false	"Page number (default: 1)"					minimum(1)
//	@Param		pageSize	query		int																false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success	200			{object}	models.PaginatedResponse{Data=[]models.CustomerResponse}	"Successfully retrieved customers"
//	@Failure	401			{object}	response.ErrorResponse											"Authentication required"
//	@Failure	403			{object}	response.ErrorResponse											"Staff only"
//	@Security	BearerAuth
//	@Router		/customers [get]
func (h *CustomerHandler) ListCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize := utils.ParsePagination(r)

		customers, total, err := h.customerService.ListCustomers(r.Context(), page, pageSize)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list customers", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		data := make([]*models.CustomerResponse, 0, len(customers))
		for _, c := range customers {
			data = append(data, models.NewCustomerResponse(c))
		}

		response.Success(w, http.StatusOK, models.NewPaginatedResponse(data, total, page, pageSize))
	}
}

// GetCustomer godoc
//
//	@Summary	Get a customer
//	@Tags		Customers
//	@Produce	json
//	@Param		id	path		int						true	"Customer ID"
//	@Success	200	{object}	models.CustomerResponse	"Successfully retrieved customer"
//	@Failure	404	{object}	response.ErrorResponse	"Customer not found"
//	@Security	BearerAuth
//	@Router		/customers/{id} [get]
func (h *CustomerHandler) GetCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		customer, err := h.customerService.GetCustomerByID(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get customer", slog.Int64("customerId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewCustomerResponse(customer))
	}
}

// CreateCustomer godoc
//
//	@Summary		Create a customer profile for a user
//	@Description	Membership defaults to Bronze.
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Param			customer	body		models.CreateCustomerRequest	true	"Customer details"
//	@Success		201			{object}	models.CustomerResponse			"Successfully created customer"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error"
//	@Failure		409			{object}	response.ErrorResponse			"User already has a customer profile"
//	@Security		BearerAuth
//	@Router			/customers [post]
func (h *CustomerHandler) CreateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCustomerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		customer, err := h.customerService.CreateCustomer(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to create customer", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Customer created", slog.Int64("customerId", customer.ID))
		response.Success(w, http.StatusCreated, models.NewCustomerResponse(customer))
	}
}

// UpdateCustomer godoc
//
//	@Summary	Replace a customer
//	@Tags		Customers
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int								true	"Customer ID"
//	@Param		customer	body		models.UpdateCustomerRequest	true	"Customer details"
//	@Success	200			{object}	models.CustomerResponse			"Successfully updated customer"
//	@Failure	400			{object}	response.ErrorResponse			"Validation error"
//	@Failure	404			{object}	response.ErrorResponse			"Customer not found"
//	@Security	BearerAuth
//	@Router		/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateCustomerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		customer, err := h.customerService.UpdateCustomer(r.Context(), id, &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to update customer", slog.Int64("customerId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewCustomerResponse(customer))
	}
}

// DeleteCustomer godoc
//
//	@Summary	Delete a customer
//	@Tags		Customers
//	@Param		id	path	int	true	"Customer ID"
//	@Success	204
//	@Failure	400	{object}	response.ErrorResponse	"Customer has orders"
//	@Failure	404	{object}	response.ErrorResponse	"Customer not found"
//	@Security	BearerAuth
//	@Router		/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.customerService.DeleteCustomer(r.Context(), id); err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to delete customer", slog.Int64("customerId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.NoContent(w)
	}
}

// GetProfile godoc
//
//	@Summary	Get the caller's customer profile
//	@Tags		Customers
//	@Produce	json
//	@Success	200	{object}	models.CustomerResponse	"Successfully retrieved profile"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse	"No customer profile"
//	@Security	BearerAuth
//	@Router		/customers/me [get]
func (h *CustomerHandler) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		customer, err := h.customerService.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get profile", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewCustomerResponse(customer))
	}
}

// UpdateProfile godoc
//
//	@Summary		Update the caller's customer profile
//	@Description	Phone and birth date only. Membership is managed by staff.
//	@Tags			Customers
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		models.UpdateProfileRequest	true	"Profile details"
//	@Success		200		{object}	models.CustomerResponse		"Successfully updated profile"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"No customer profile"
//	@Security		BearerAuth
//	@Router			/customers/me [put]
func (h *CustomerHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.UpdateProfileRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		customer, err := h.customerService.UpdateProfile(r.Context(), claims.UserID, &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to update profile", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewCustomerResponse(customer))
	}
}

// ListAddresses godoc
//
//	@Summary	List the caller's addresses
//	@Tags		Customers
//	@Produce	json
//	@Success	200	{object}	[]models.Address		"Successfully retrieved addresses"
//	@Failure	404	{object}	response.ErrorResponse	"No customer profile"
//	@Security	BearerAuth
//	@Router		/customers/me/addresses [get]
func (h *CustomerHandler) ListAddresses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		addresses, err := h.customerService.ListAddresses(r.Context(), claims.UserID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to list addresses", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}

// CreateAddress godoc
//
//	@Summary	Add an address to the caller's profile
//	@Tags		Customers
//	@Accept		json
//	@Produce	json
//	@Param		address	body		models.AddressRequest	true	"Address"
//	@Success	201		{object}	models.Address			"Successfully created address"
//	@Failure	400		{object}	response.ErrorResponse	"Validation error"
//	@Failure	404		{object}	response.ErrorResponse	"No customer profile"
//	@Security	BearerAuth
//	@Router		/customers/me/addresses [post]
func (h *CustomerHandler) CreateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.AddressRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		address, err := h.customerService.CreateAddress(r.Context(), claims.UserID, &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to create address", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, address)
	}
}

// DeleteAddress godoc
//
//	@Summary	Remove one of the caller's addresses
//	@Tags		Customers
//	@Param		id	path	int	true	"Address ID"
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse	"Address not found"
//	@Security	BearerAuth
//	@Router		/customers/me/addresses/{id} [delete]
func (h *CustomerHandler) DeleteAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.customerService.DeleteAddress(r.Context(), claims.UserID, id); err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to delete address", slog.Int64("addressId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.NoContent(w)
	}
}
