package service

import (
	"context"
	stdErrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/access"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/events"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, identity access.Identity, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, identity access.Identity, id int64) (*models.Order, error)
	ListOrders(ctx context.Context, identity access.Identity, page, pageSize int) ([]*models.Order, int, error)
	UpdatePaymentStatus(ctx context.Context, id int64, req *models.UpdateOrderRequest) (*models.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	publisher    events.Publisher
	notifier     NotificationService
}

func NewOrderService(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository, publisher events.Publisher, notifier NotificationService) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
		notifier:     notifier,
	}
}

// CreateOrder converts the cart into an order for the caller's customer
// profile. The cart is consumed by the same transaction.
func (s *orderService) CreateOrder(ctx context.Context, identity access.Identity, req *models.CreateOrderRequest) (*models.Order, error) {
	cartID, err := uuid.Parse(req.CartUUID)
	if err != nil {
		return nil, errors.AddValidationError("cart_uuid", "Must be a valid UUID.").WithError(err)
	}

	customer, err := s.customerRepo.GetCustomerByUserID(ctx, identity.UserID)
	if err != nil {
		if stdErrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundError("Customer profile not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch customer").WithError(err)
	}

	order, err := s.orderRepo.CreateFromCart(ctx, cartID, customer.ID)
	if err != nil {
		switch {
		case stdErrors.Is(err, repository.ErrCartNotFound):
			return nil, errors.AddValidationError("cart_uuid", "No cart with the given id was found.").WithError(err)
		case stdErrors.Is(err, repository.ErrCartEmpty):
			return nil, errors.AddValidationError("cart_uuid", "The cart is empty.").WithError(err)
		default:
			return nil, errors.DatabaseError("Failed to create order").WithError(err)
		}
	}

	order.UserID = identity.UserID

	s.afterPlaced(ctx, order)

	return order, nil
}

// afterPlaced runs the post-commit side effects. Their failures are logged
// and never undo the order.
func (s *orderService) afterPlaced(ctx context.Context, order *models.Order) {
	logger := middleware.LoggerFromContext(ctx).With(slog.Int64("orderId", order.ID))

	metrics.RecordOrderPlaced()

	publishCtx, cancel := utils.WithExternalTimeout(ctx)
	defer cancel()

	event := &events.OrderPlaced{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		ItemCount:  len(order.Items),
		Total:      order.Total(),
		PlacedAt:   order.PlacedAt,
	}

	if err := s.publisher.PublishOrderPlaced(publishCtx, event); err != nil {
		logger.Warn("Failed to publish order event", slog.String("error", err.Error()))
	}

	if err := s.notifier.SendOrderConfirmation(ctx, order.UserID, order); err != nil {
		logger.Warn("Failed to send order confirmation", slog.String("error", err.Error()))
	}
}

func (s *orderService) GetOrderByID(ctx context.Context, identity access.Identity, id int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, orderError(err, "Failed to fetch order")
	}

	if !access.CanSeeOrder(identity, order.UserID) {
		return nil, errors.ForbiddenError("You do not have permission to access this order")
	}

	return order, nil
}

// ListOrders returns every order to staff and only their own to everyone else.
func (s *orderService) ListOrders(ctx context.Context, identity access.Identity, page, pageSize int) ([]*models.Order, int, error) {
	var customerID *int64

	if !identity.IsStaff {
		customer, err := s.customerRepo.GetCustomerByUserID(ctx, identity.UserID)
		if err != nil {
			if stdErrors.Is(err, repository.ErrNotFound) {
				return []*models.Order{}, 0, nil
			}

			return nil, 0, errors.DatabaseError("Failed to fetch customer").WithError(err)
		}

		customerID = &customer.ID
	}

	orders, total, err := s.orderRepo.ListOrders(ctx, customerID, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) UpdatePaymentStatus(ctx context.Context, id int64, req *models.UpdateOrderRequest) (*models.Order, error) {
	if err := s.orderRepo.UpdatePaymentStatus(ctx, id, req.PaymentStatus); err != nil {
		return nil, orderError(err, "Failed to update order")
	}

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, orderError(err, "Failed to fetch order")
	}

	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orderRepo.DeleteOrder(ctx, id); err != nil {
		return orderError(err, "Failed to delete order")
	}

	return nil
}

func orderError(err error, message string) error {
	if stdErrors.Is(err, repository.ErrNotFound) {
		return errors.NotFoundError("Order not found").WithError(err)
	}

	return errors.DatabaseError(message).WithError(err)
}
