package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
)

// CreateTestRequestWithContext builds a request authenticated as a regular customer.
func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {
	return createRequest(method, target, body, &models.Claims{UserID: userID, Email: "test@example.com"}, pathParams)
}

// CreateStaffTestRequest builds a request authenticated as a staff member.
func CreateStaffTestRequest(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {
	return createRequest(method, target, body, &models.Claims{UserID: userID, Email: "staff@example.com", IsStaff: true}, pathParams)
}

// CreateTestRequestWithoutContext builds an anonymous request.
func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	return createRequest(method, target, body, nil, pathParams)
}

func createRequest(method, target string, body io.Reader, claims *models.Claims, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	if claims != nil {
		ctx = context.WithValue(ctx, middleware.UserContextKey, claims)
	}

	return req.WithContext(ctx)
}
