package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/access"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type PaymentService struct {
	mock.Mock
}

func (m *PaymentService) CreatePayment(ctx context.Context, identity access.Identity, orderID int64) (*models.PaymentResponse, error) {
	args := m.Called(ctx, identity, orderID)
	r0, _ := args.Get(0).(*models.PaymentResponse)

	return r0, args.Error(1)
}

func (m *PaymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (*models.PaymentEvent, error) {
	args := m.Called(ctx, payload, signature)
	r0, _ := args.Get(0).(*models.PaymentEvent)

	return r0, args.Error(1)
}
