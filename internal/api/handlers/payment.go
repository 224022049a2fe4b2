package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

// Stripe caps webhook payloads well below this.
const maxWebhookBytes = 64 << 10

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePayment godoc
//
//	@Summary		Start paying for an order
//	@Description	Creates a Stripe PaymentIntent for the order total. Only pending orders can be paid.
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		int						true	"Order ID"
//	@Success		201	{object}	models.PaymentResponse	"Payment intent created"
//	@Failure		400	{object}	response.ErrorResponse	"Order is not pending"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Not the owner of this order"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Failure		502	{object}	response.ErrorResponse	"Payment provider error"
//	@Security		BearerAuth
//	@Router			/orders/{id}/payment [post]
func (h *PaymentHandler) CreatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		payment, err := h.paymentService.CreatePayment(r.Context(), middleware.IdentityFromContext(r.Context()), orderID)
		if err != nil {
			logger.Error("Failed to create payment", slog.Int64("orderId", orderID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Payment intent created",
			slog.Int64("orderId", orderID),
			slog.String("paymentIntentId", payment.PaymentIntentID))
		response.Success(w, http.StatusCreated, payment)
	}
}

// HandleStripeWebhook godoc
//
//	@Summary		Stripe webhook
//	@Description	Settles orders on payment_intent.succeeded and payment_intent.payment_failed. Other events are acknowledged.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string					true	"Stripe signature"
//	@Success		200					{object}	map[string]bool			"Event processed"
//	@Failure		400					{object}	response.ErrorResponse	"Invalid signature or payload"
//	@Router			/payments/webhook [post]
func (h *PaymentHandler) HandleStripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
		if err != nil {
			logger.Error("Error reading webhook body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Failed to read request body"))

			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			logger.Warn("Missing Stripe signature")
			response.Error(w, errors.BadRequestError("Stripe Signature is required"))

			return
		}

		event, err := h.paymentService.ProcessWebhook(r.Context(), payload, signature)
		if err != nil {
			logger.Error("Failed to process payment webhook", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Payment webhook processed",
			slog.String("type", event.Type),
			slog.String("paymentIntentId", event.PaymentIntentID))
		response.Success(w, http.StatusOK, map[string]bool{"received": true})
	}
}
