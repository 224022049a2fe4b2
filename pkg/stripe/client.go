package stripe

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Event = stripe.Event

type PaymentIntent = stripe.PaymentIntent

// Client is the payment provider surface the order payment flow needs.
type Client interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, description string, metadata map[string]string) (*PaymentIntent, error)
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
}

type stripeClient struct {
	api           *client.API
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	return &stripeClient{api: client.New(apiKey, nil), webhookSecret: webhookSecret}
}

// CreatePaymentIntent asks Stripe to plan a charge of amount minor units.
func (s *stripeClient) CreatePaymentIntent(ctx context.Context, amount int64, currency string, description string, metadata map[string]string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	return s.api.PaymentIntents.New(params)
}

// VerifyWebhookSignature checks the Stripe-Signature header against the
// configured secret and decodes the event.
func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	if s.webhookSecret == "" {
		return Event{}, errors.New("webhook secret not configured")
	}

	return webhook.ConstructEvent(payload, signature, s.webhookSecret)
}
