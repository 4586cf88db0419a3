package middleware

import (
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorCleanupInterval = 5 * time.Minute
	visitorMaxIdle         = 10 * time.Minute
)

// RateLimiter holds a token bucket per client IP and rejects excess
// requests before they reach any handler.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

// visitor holds a rate limiter for a specific IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter from configuration and starts the
// background cleanup of idle visitors.
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(cfg.RateLimit.RPS),
		burst:    cfg.RateLimit.Burst,
	}

	go rl.cleanupVisitors()

	return rl
}

// getVisitor returns the limiter for an IP, creating one if needed.
func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}

		return limiter
	}

	v.lastSeen = time.Now()

	return v.limiter
}

// cleanupVisitors removes idle visitors to bound memory use.
func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(visitorCleanupInterval)
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > visitorMaxIdle {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Limit is the echo middleware enforcing the per-IP budget.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.getVisitor(c.RealIP()).Allow() {
			return response.TooManyRequests(c, "Rate limit exceeded. Please try again later.")
		}

		return next(c)
	}
}
