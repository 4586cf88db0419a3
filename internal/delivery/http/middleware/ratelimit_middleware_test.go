package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimiter(rps float64, burst int) *RateLimiter {
	return NewRateLimiter(&config.Config{
		RateLimit: &config.RateLimitConfig{RPS: rps, Burst: burst},
	})
}

func rateLimitedRequest(t *testing.T, rl *RateLimiter, ip string, handlerCalls *int) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := rl.Limit(func(c echo.Context) error {
		*handlerCalls++

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := newTestRateLimiter(1, 3)

	calls := 0
	for i := 0; i < 3; i++ {
		rec := rateLimitedRequest(t, rl, "203.0.113.7", &calls)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 3, calls)
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	rl := newTestRateLimiter(0.001, 2)

	calls := 0
	rateLimitedRequest(t, rl, "203.0.113.7", &calls)
	rateLimitedRequest(t, rl, "203.0.113.7", &calls)
	rec := rateLimitedRequest(t, rl, "203.0.113.7", &calls)

	// The third request is rejected before the handler runs.
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")
	assert.Equal(t, 2, calls)
}

func TestRateLimiter_BudgetsArePerIP(t *testing.T) {
	rl := newTestRateLimiter(0.001, 1)

	calls := 0
	rateLimitedRequest(t, rl, "203.0.113.7", &calls)
	rec := rateLimitedRequest(t, rl, "203.0.113.7", &calls)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different client still has its full budget.
	otherRec := rateLimitedRequest(t, rl, "198.51.100.9", &calls)
	assert.Equal(t, http.StatusOK, otherRec.Code)
	assert.Equal(t, 2, calls)
}
