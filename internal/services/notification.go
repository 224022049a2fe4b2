package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/pkg/sendgrid"
	"github.com/google/uuid"
)

type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, userID uuid.UUID, order *models.Order) error
}

type notificationService struct {
	userRepo     repository.UserRepository
	emailService sendgrid.EmailService
}

// NewNotificationService returns a service that sends nothing when
// emailService is nil.
func NewNotificationService(userRepo repository.UserRepository, emailService sendgrid.EmailService) NotificationService {
	return &notificationService{userRepo: userRepo, emailService: emailService}
}

// SendOrderConfirmation emails the order summary to the user who placed it.
func (n *notificationService) SendOrderConfirmation(ctx context.Context, userID uuid.UUID, order *models.Order) error {
	if n.emailService == nil {
		slog.DebugContext(ctx, "Email disabled, skipping order confirmation", slog.Int64("orderId", order.ID))
		return nil
	}

	user, err := n.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load order recipient: %w", err)
	}

	emailCtx, cancel := utils.WithExternalTimeout(ctx)
	defer cancel()

	if err := n.emailService.Send(emailCtx, orderConfirmation(user, order)); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}

	return nil
}

func orderConfirmation(user *models.User, order *models.Order) *models.EmailMessage {
	var body strings.Builder

	fmt.Fprintf(&body, "Thank you for your order #%d.\n\n", order.ID)

	for _, item := range order.Items {
		fmt.Fprintf(&body, "Product %d x %d @ %s\n", item.ProductID, item.Quantity, item.UnitPrice.StringFixed(2))
	}

	fmt.Fprintf(&body, "\nTotal: %s\n", order.Total().StringFixed(2))

	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = user.Username
	}

	return &models.EmailMessage{
		To:      user.Email,
		ToName:  name,
		Subject: fmt.Sprintf("Order #%d confirmation", order.ID),
		Content: body.String(),
	}
}
