package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type RateLimitRepository struct {
	mock.Mock
}

func (m *RateLimitRepository) CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error) {
	args := m.Called(ctx, email)
	r0, _ := args.Get(0).(bool)
	r1, _ := args.Get(1).(int)
	r2, _ := args.Get(2).(int)

	return r0, r1, r2, args.Error(3)
}
