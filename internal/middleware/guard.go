package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const idempotencyTTL = 24 * time.Hour

type GuardConfig struct {
	JWTSecret string
	RBAC      RBACService
	RateLimit float64
	RateBurst int
	Redis     *redis.Client
}

// Guard assembles the middleware protecting mutating routes. Reads stay open.
// Authentication and authorization only apply when both a JWT secret and an
// RBAC service are configured.
type Guard struct {
	writes  gin.HandlersChain
	rbac    RBACService
	enabled bool
}

func NewGuard(cfg GuardConfig) *Guard {
	g := &Guard{
		rbac:    cfg.RBAC,
		enabled: cfg.JWTSecret != "" && cfg.RBAC != nil,
	}

	limit := rate.Limit(cfg.RateLimit)
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}

	if limit > 0 {
		g.writes = append(g.writes, RateLimitByIP(limit, burst))
	}
	if g.enabled {
		g.writes = append(g.writes, AuthMiddleware(cfg.JWTSecret))
		if limit > 0 {
			g.writes = append(g.writes, RateLimitBySubject(limit, burst))
		}
	}
	if cfg.Redis != nil {
		g.writes = append(g.writes, Idempotency(cfg.Redis, idempotencyTTL))
	}

	return g
}

// Writes is the chain shared by every mutating route group.
func (g *Guard) Writes() gin.HandlersChain {
	if g == nil {
		return nil
	}
	return g.writes
}

// Can authorizes the token role for resource and action.
func (g *Guard) Can(resource, action string) gin.HandlerFunc {
	if g == nil || !g.enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return RBACAuthorize(g.rbac, resource, action)
}
