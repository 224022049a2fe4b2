package models

import "github.com/shopspring/decimal"

type PaymentResponse struct {
	PaymentIntentID string          `json:"payment_intent_id"`
	ClientSecret    string          `json:"client_secret"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Status          string          `json:"status"`
}

// PaymentEvent is the part of a verified Stripe webhook the service acts on.
type PaymentEvent struct {
	Type            string
	PaymentIntentID string
}

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)
