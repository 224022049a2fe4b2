package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (m *Client) CreatePaymentIntent(ctx context.Context, amount int64, currency string, description string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency, description, metadata)
	r0, _ := args.Get(0).(*stripe.PaymentIntent)

	return r0, args.Error(1)
}

func (m *Client) VerifyWebhookSignature(payload []byte, signature string) (stripe.Event, error) {
	args := m.Called(payload, signature)
	r0, _ := args.Get(0).(stripe.Event)

	return r0, args.Error(1)
}
