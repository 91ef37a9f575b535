package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL      = 10 * time.Minute
	limiterCleanupEvery = time.Minute
)

// OwnerRateLimiter ограничивает частоту запросов одного владельца.
type OwnerRateLimiter struct {
	mu        sync.Mutex
	owners    map[int64]*visitor
	r         rate.Limit
	b         int
	lastSweep time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewOwnerRateLimiter не больше events запросов за period, всплеск до events.
func NewOwnerRateLimiter(events int, period time.Duration) *OwnerRateLimiter {
	return &OwnerRateLimiter{
		owners:    make(map[int64]*visitor),
		r:         rate.Every(period / time.Duration(events)),
		b:         events,
		lastSweep: time.Now(),
	}
}

func (o *OwnerRateLimiter) limiter(ownerID int64) *rate.Limiter {
	o.mu.Lock()
	defer o.mu.Unlock()

	now := time.Now()
	if now.Sub(o.lastSweep) > limiterCleanupEvery {
		for id, v := range o.owners {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(o.owners, id)
			}
		}
		o.lastSweep = now
	}

	v, exists := o.owners[ownerID]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(o.r, o.b)}
		o.owners[ownerID] = v
	}
	v.lastSeen = now
	return v.limiter
}

// Middleware ставится после AuthRequired.
func (o *OwnerRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !o.limiter(CurrentActor(c).OwnerID).Allow() {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
