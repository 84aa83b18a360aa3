package middlewares

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/resp"
)

// RateLimiter keeps one token bucket per client identity (IP). A bucket
// refills at perMinute/60 tokens per second with a burst of the full
// minute budget; requests over budget are rejected immediately, never
// queued. Idle buckets are pruned so the map does not grow unbounded.
type RateLimiter struct {
	mu         sync.Mutex
	perMinute  int
	code       string
	clients    map[string]*client
	lastSweep  time.Time
	sweepEvery time.Duration
	idleAfter  time.Duration
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter builds a limiter whose rejections carry code as the
// envelope's error field (RATE_LIMIT_GENERAL or RATE_LIMIT_AUTH); the
// localized message is the shared too-many-requests text.
func NewRateLimiter(perMinute int, code string) *RateLimiter {
	return &RateLimiter{
		perMinute:  perMinute,
		code:       code,
		clients:    make(map[string]*client),
		lastSweep:  time.Now(),
		sweepEvery: time.Minute,
		idleAfter:  3 * time.Minute,
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastSweep) > rl.sweepEvery {
		for k, cl := range rl.clients {
			if now.Sub(cl.lastSeen) > rl.idleAfter {
				delete(rl.clients, k)
			}
		}
		rl.lastSweep = now
	}

	cl, ok := rl.clients[key]
	if !ok {
		cl = &client{
			limiter: rate.NewLimiter(rate.Limit(float64(rl.perMinute)/60.0), rl.perMinute),
		}
		rl.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.Allow()
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			err := apperr.ErrTooManyRequests
			if rl.code != "" {
				err = &apperr.Error{Code: rl.code, Status: err.Status, Key: err.Code}
			}
			resp.Error(c, err)
			return
		}
		c.Next()
	}
}
