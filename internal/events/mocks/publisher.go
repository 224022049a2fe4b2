package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/events"
	"github.com/stretchr/testify/mock"
)

type Publisher struct {
	mock.Mock
}

func (m *Publisher) PublishOrderPlaced(ctx context.Context, event *events.OrderPlaced) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}
