package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRequest(e *echo.Echo, handler echo.HandlerFunc, ip string, userID *uuid.UUID) int {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", *userID)
	}
	_ = handler(c)
	return rec.Code
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(1, 3)
	handler := limiter.Middleware()(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, rateLimitedRequest(e, handler, "192.168.1.100", nil))
	}
	assert.Equal(t, http.StatusTooManyRequests, rateLimitedRequest(e, handler, "192.168.1.100", nil))
}

func TestRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(1, 1)
	handler := limiter.Middleware()(okHandler)

	assert.Equal(t, http.StatusOK, rateLimitedRequest(e, handler, "10.0.0.1", nil))
	assert.Equal(t, http.StatusTooManyRequests, rateLimitedRequest(e, handler, "10.0.0.1", nil))
	assert.Equal(t, http.StatusOK, rateLimitedRequest(e, handler, "10.0.0.2", nil))
}

func TestRateLimiter_KeyedByUserWhenAuthenticated(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(1, 1)
	handler := limiter.Middleware()(okHandler)
	alice, bob := uuid.New(), uuid.New()

	assert.Equal(t, http.StatusOK, rateLimitedRequest(e, handler, "10.0.0.9", &alice))
	assert.Equal(t, http.StatusOK, rateLimitedRequest(e, handler, "10.0.0.9", &bob))
	assert.Equal(t, http.StatusTooManyRequests, rateLimitedRequest(e, handler, "10.0.0.9", &alice))
}

func TestRateLimiter_Defaults(t *testing.T) {
	limiter := NewRateLimiter(0, -1)

	assert.Equal(t, float64(defaultRequestsPerSecond), float64(limiter.rps))
	assert.Equal(t, defaultBurst, limiter.burst)
}

func TestRateLimiter_SweepEvictsIdleVisitors(t *testing.T) {
	limiter := NewRateLimiter(5, 10)
	limiter.allow("ip:1.1.1.1")
	limiter.allow("ip:2.2.2.2")
	assert.Equal(t, 2, limiter.size())

	limiter.sweep(time.Now())
	assert.Equal(t, 2, limiter.size())

	limiter.sweep(time.Now().Add(visitorIdleTimeout + time.Second))
	assert.Equal(t, 0, limiter.size())
}
