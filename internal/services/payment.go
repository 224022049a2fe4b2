package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/aaravmahajanofficial/storefront/internal/access"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, identity access.Identity, orderID int64) (*models.PaymentResponse, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (*models.PaymentEvent, error)
}

type paymentService struct {
	orderRepo    repository.OrderRepository
	stripeClient stripe.Client
	currency     string
}

func NewPaymentService(orderRepo repository.OrderRepository, stripeClient stripe.Client, currency string) PaymentService {
	return &paymentService{orderRepo: orderRepo, stripeClient: stripeClient, currency: currency}
}

// CreatePayment opens a payment intent for the full total of a pending order.
func (s *paymentService) CreatePayment(ctx context.Context, identity access.Identity, orderID int64) (*models.PaymentResponse, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, orderError(err, "Failed to fetch order")
	}

	if !access.CanSeeOrder(identity, order.UserID) {
		return nil, errors.ForbiddenError("You do not have permission to access this order")
	}

	if order.PaymentStatus != models.PaymentStatusPending {
		return nil, errors.AddValidationError("payment_status", "Only pending orders can be paid.")
	}

	total := order.Total()

	amount := pricing.ToMinorUnits(total)
	if amount <= 0 {
		return nil, errors.AddValidationError("total_price", "Order total must be greater than zero.")
	}

	stripeCtx, cancel := utils.WithExternalTimeout(ctx)
	defer cancel()

	intent, err := s.stripeClient.CreatePaymentIntent(stripeCtx, amount, s.currency,
		fmt.Sprintf("Order #%d", order.ID),
		map[string]string{"order_id": strconv.FormatInt(order.ID, 10)})
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to create payment intent").WithError(err)
	}

	if err := s.orderRepo.SetPaymentIntent(ctx, order.ID, intent.ID); err != nil {
		return nil, errors.DatabaseError("Failed to record payment").WithError(err)
	}

	return &models.PaymentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          total,
		Currency:        s.currency,
		Status:          string(intent.Status),
	}, nil
}

// ProcessWebhook verifies the event and settles the order it belongs to.
// Events other than success and failure are acknowledged untouched.
func (s *paymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (*models.PaymentEvent, error) {
	event, err := s.stripeClient.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return nil, errors.BadRequestError("Webhook signature verification failed").WithError(err)
	}

	result := &models.PaymentEvent{Type: string(event.Type)}

	var status models.PaymentStatus

	switch result.Type {
	case models.EventPaymentSucceeded:
		status = models.PaymentStatusComplete
	case models.EventPaymentFailed:
		status = models.PaymentStatusFailed
	default:
		return result, nil
	}

	if event.Data == nil {
		return nil, errors.BadRequestError("Missing payment intent in webhook")
	}

	intentID, _ := event.Data.Object["id"].(string)
	if intentID == "" {
		return nil, errors.BadRequestError("Missing payment intent ID in webhook")
	}

	result.PaymentIntentID = intentID

	orderID, err := s.orderRepo.UpdatePaymentStatusByIntent(ctx, intentID, status)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			middleware.LoggerFromContext(ctx).Warn("No order for payment intent", slog.String("paymentIntentId", intentID))
			return result, nil
		}

		return nil, errors.DatabaseError("Failed to update payment status").WithError(err)
	}

	metrics.RecordPaymentSettled(string(status))

	middleware.LoggerFromContext(ctx).Info("Order payment settled",
		slog.Int64("orderId", orderID),
		slog.String("paymentStatus", string(status)))

	return result, nil
}
