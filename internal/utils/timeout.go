package utils

import (
	"context"
	"time"
)

const (
	DefaultDBTimeout       = 5 * time.Second
	DefaultExternalTimeout = 10 * time.Second
)

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

// WithExternalTimeout bounds calls to Stripe, SendGrid and SNS.
func WithExternalTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultExternalTimeout)
}
