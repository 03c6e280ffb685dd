package middleware

import (
	"net/http"
	"sync"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyedRateLimiter keeps one token bucket per key (client IP or token subject).
type KeyedRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
}

func (l *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.limiters[key] = limiter
	}

	return limiter
}

var errTooManyRequests = apperror.New(
	apperror.CodeTooManyRequests,
	"Too many requests",
	http.StatusTooManyRequests,
)

// RateLimitByIP: r = requests per second, b = burst.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			response.Error(c, errTooManyRequests.HTTPStatus, errTooManyRequests.Code, "Too many requests from this IP", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitBySubject limits authenticated callers by token subject and lets
// anonymous requests through.
func RateLimitBySubject(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		sub := c.GetString("subject")
		if sub == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(sub).Allow() {
			response.Error(c, errTooManyRequests.HTTPStatus, errTooManyRequests.Code, "Too many requests from this user", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
