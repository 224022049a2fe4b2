package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Rejects once the burst is spent", func(t *testing.T) {
		// Arrange
		limiter := middleware.NewRateLimiter(0.001, 2)
		handler := limiter.Middleware(ok)

		codes := make([]int, 0, 3)

		// Act
		for range 3 {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			codes = append(codes, rr.Code)
		}

		// Assert
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("Clients are limited independently", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(0.001, 1)
		handler := limiter.Middleware(ok)

		for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = addr
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("Sweep keeps recently seen clients", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(1, 1)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		limiter.Middleware(ok).ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, 0, limiter.Sweep())
	})
}
