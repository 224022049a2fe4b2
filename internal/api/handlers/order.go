package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: utils.NewValidator()}
}

// CreateOrder godoc
//
//	@Summary		Place an order from a cart
//	@Description	Converts the cart into an order for the caller's customer profile and deletes the cart. Requires authentication.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CreateOrderRequest	true	"Cart to convert"
//	@Success		201		{object}	models.OrderResponse		"Successfully placed order"
//	@Failure		400		{object}	response.ErrorResponse		"Unknown or empty cart"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"No customer profile"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())
		identity := middleware.IdentityFromContext(r.Context())

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create order input")
			return
		}

		order, err := h.orderService.CreateOrder(r.Context(), identity, &req)
		if err != nil {
			logger.Warn("Failed to create order", slog.String("cartId", req.CartUUID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order created", slog.Int64("orderId", order.ID), slog.Int("items", len(order.Items)))
		response.Success(w, http.StatusCreated, models.NewOrderResponse(order))
	}
}

// GetOrder godoc
//
//	@Summary	Get an order
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path		int						true	"Order ID"
//	@Success	200	{object}	models.OrderResponse	"Successfully retrieved order"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	403	{object}	response.ErrorResponse	"Not the owner of this order"
//	@Failure	404	{object}	response.ErrorResponse	"Order not found"
//	@Security	BearerAuth
//	@Router		/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("id", r.PathValue("id")))
			response.Error(w, err)

			return
		}

		order, err := h.orderService.GetOrderByID(r.Context(), middleware.IdentityFromContext(r.Context()), id)
		if err != nil {
			logger.Warn("Failed to get order", slog.Int64("orderId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewOrderResponse(order))
	}
}

// ListOrders godoc
//
//	@Summary		List orders
//	@Description	Staff see every order, everyone else sees their own.
//	@Tags			Orders
//	@Produce		json
//	@Param			page		query		int														false	"Page number (default: 1)"					minimum(1)
//	@Param			pageSize	query		int														false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.OrderResponse}	"Successfully retrieved orders"
//	@Failure		401			{object}	response.ErrorResponse									"Authentication required"
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())
		page, pageSize := utils.ParsePagination(r)

		orders, total, err := h.orderService.ListOrders(r.Context(), middleware.IdentityFromContext(r.Context()), page, pageSize)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewPaginatedResponse(models.NewOrderResponses(orders), total, page, pageSize))
	}
}

// UpdateOrder godoc
//
//	@Summary	Set the payment status of an order
//	@Tags		Orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Order ID"
//	@Param		status	body		models.UpdateOrderRequest	true	"New payment status (P, C or F)"
//	@Success	200		{object}	models.OrderResponse		"Successfully updated order"
//	@Failure	400		{object}	response.ErrorResponse		"Validation error"
//	@Failure	403		{object}	response.ErrorResponse		"Staff only"
//	@Failure	404		{object}	response.ErrorResponse		"Order not found"
//	@Security	BearerAuth
//	@Router		/orders/{id} [patch]
func (h *OrderHandler) UpdateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdatePaymentStatus(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to update order", slog.Int64("orderId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order payment status updated",
			slog.Int64("orderId", id),
			slog.String("paymentStatus", string(order.PaymentStatus)))
		response.Success(w, http.StatusOK, models.NewOrderResponse(order))
	}
}

// DeleteOrder godoc
//
//	@Summary	Delete an order and its items
//	@Tags		Orders
//	@Param		id	path	int	true	"Order ID"
//	@Success	204
//	@Failure	403	{object}	response.ErrorResponse	"Staff only"
//	@Failure	404	{object}	response.ErrorResponse	"Order not found"
//	@Security	BearerAuth
//	@Router		/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
			logger.Warn("Failed to delete order", slog.Int64("orderId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order deleted", slog.Int64("orderId", id))
		response.NoContent(w)
	}
}
