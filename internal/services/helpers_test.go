package service_test

import (
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDB = errors.New("connection refused")

func requireAppError(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()

	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok, "expected an AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)

	return appErr
}
