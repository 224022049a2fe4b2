package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/access"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var UserContextKey = contextKey(uuid.New())

type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{jwtKey: jwtKey}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))

			return
		}

		m.serveWithClaims(w, r, authHeader, next)
	}
}

// Identify attaches claims when a bearer token is present and lets anonymous
// requests through. A token that is present but invalid is still rejected.
func (m *AuthMiddleware) Identify(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		m.serveWithClaims(w, r, authHeader, next)
	}
}

// Authorize applies access.Can for the request identity. Denying an
// anonymous caller is 401, denying an authenticated one is 403.
func Authorize(resource access.Resource, op access.Operation, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFromContext(r.Context())

		if access.Can(identity, op, resource) {
			next.ServeHTTP(w, r)
			return
		}

		logger := LoggerFromContext(r.Context())
		logger.Warn("Access denied",
			slog.String("resource", string(resource)),
			slog.String("operation", string(op)),
			slog.Bool("authenticated", identity.Authenticated))

		if !identity.Authenticated {
			response.Error(w, errors.UnauthorizedError("Authentication credentials were not provided"))
			return
		}

		response.Error(w, errors.ForbiddenError("You do not have permission to perform this action"))
	}
}

// Protect identifies the caller and then authorizes the operation.
func (m *AuthMiddleware) Protect(resource access.Resource, op access.Operation, next http.Handler) http.HandlerFunc {
	return m.Identify(Authorize(resource, op, next))
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	return claims, ok && claims != nil
}

func IdentityFromContext(ctx context.Context) access.Identity {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return access.Anonymous()
	}

	return access.FromClaims(claims)
}

func (m *AuthMiddleware) serveWithClaims(w http.ResponseWriter, r *http.Request, authHeader string, next http.Handler) {
	logger := LoggerFromContext(r.Context())

	// "Bearer <token>"
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		logger.Warn("Invalid authorization header format")
		response.Error(w, errors.UnauthorizedError("Invalid authorization format"))

		return
	}

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
		return m.jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		logger.Warn("JWT parsing failed", slog.Any("error", err))
		response.Error(w, errors.UnauthorizedError("Invalid or expired token"))

		return
	}

	ctx := context.WithValue(r.Context(), UserContextKey, claims)

	requestScopedLogger := logger.With(slog.String("userId", claims.UserID.String()))
	ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

	requestScopedLogger.Debug("User authenticated")

	next.ServeHTTP(w, r.WithContext(ctx))
}
