package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/access"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

func createTestToken(t *testing.T, userID uuid.UUID, isStaff bool, duration time.Duration, key []byte, method jwt.SigningMethod) string {
	t.Helper()

	claims := &models.Claims{
		UserID:  userID,
		Email:   "test@example.com",
		IsStaff: isStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return "Bearer " + token
}

func newRequest(authHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	// simulates the Logging middleware
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(context.WithValue(req.Context(), middleware.LoggerKey, logger))
}

func TestAuthenticate(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	userID := uuid.New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok, "User claims should be in context")
		assert.Equal(t, userID, claims.UserID)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success": true}`))
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success - Valid Token",
			authHeader:     createTestToken(t, userID, false, time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true}`,
		},
		{
			name:           "Fail - Missing Authorization Header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Authorization header is required"}}`,
		},
		{
			name:           "Fail - No Bearer Prefix",
			authHeader:     "InvalidTokenFormat",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid authorization format"}}`,
		},
		{
			name:           "Fail - Malformed Token",
			authHeader:     "Bearer not.a.valid.token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name:           "Fail - Wrong Signing Key",
			authHeader:     createTestToken(t, userID, false, time.Hour, []byte("different-secret-key-0987654321"), jwt.SigningMethodHS256),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name:           "Fail - Wrong Signing Method",
			authHeader:     createTestToken(t, userID, false, time.Hour, testJwtKey, jwt.SigningMethodHS512),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
		{
			name:           "Fail - Expired Token",
			authHeader:     createTestToken(t, userID, false, -time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or expired token"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			req := newRequest(tc.authHeader)
			rr := httptest.NewRecorder()

			// Act
			authMiddleware.Authenticate(next).ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestIdentify(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)

	t.Run("Anonymous passes through", func(t *testing.T) {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			_, ok := middleware.ClaimsFromContext(r.Context())
			assert.False(t, ok)
			assert.False(t, middleware.IdentityFromContext(r.Context()).Authenticated)
		})

		authMiddleware.Identify(next).ServeHTTP(httptest.NewRecorder(), newRequest(""))

		assert.True(t, called)
	})

	t.Run("Invalid token is rejected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("next must not be called")
		})

		authMiddleware.Identify(next).ServeHTTP(rr, newRequest("Bearer broken"))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestProtect(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name           string
		authHeader     string
		resource       access.Resource
		op             access.Operation
		expectedStatus int
	}{
		{"Anonymous reads products", "", access.ResourceProduct, access.OpList, http.StatusNoContent},
		{"Anonymous creates product", "", access.ResourceProduct, access.OpCreate, http.StatusUnauthorized},
		{"Customer creates product", createTestToken(t, uuid.New(), false, time.Hour, testJwtKey, jwt.SigningMethodHS256), access.ResourceProduct, access.OpCreate, http.StatusForbidden},
		{"Staff creates product", createTestToken(t, uuid.New(), true, time.Hour, testJwtKey, jwt.SigningMethodHS256), access.ResourceProduct, access.OpCreate, http.StatusNoContent},
		{"Anonymous lists orders", "", access.ResourceOrder, access.OpList, http.StatusUnauthorized},
		{"Customer lists orders", createTestToken(t, uuid.New(), false, time.Hour, testJwtKey, jwt.SigningMethodHS256), access.ResourceOrder, access.OpList, http.StatusNoContent},
		{"Customer deletes order", createTestToken(t, uuid.New(), false, time.Hour, testJwtKey, jwt.SigningMethodHS256), access.ResourceOrder, access.OpDelete, http.StatusForbidden},
		{"Anonymous adds cart item", "", access.ResourceCart, access.OpCreate, http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			authMiddleware.Protect(tc.resource, tc.op, ok).ServeHTTP(rr, newRequest(tc.authHeader))

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}
