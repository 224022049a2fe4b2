package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type Cache struct {
	mock.Mock
}

// Get returns args.Bool(0), or calls a func(value any) bool Return value to fill value on a hit.
func (m *Cache) Get(ctx context.Context, key string, value any) (bool, error) {
	args := m.Called(ctx, key, value)

	if fn, ok := args.Get(0).(func(value any) bool); ok {
		return fn(value), args.Error(1)
	}

	return args.Bool(0), args.Error(1)
}

func (m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)

	return args.Error(0)
}

// Delete records the keys as one []string argument.
func (m *Cache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)

	return args.Error(0)
}

func (m *Cache) Close() error {
	args := m.Called()

	return args.Error(0)
}
