package middleware

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"filmbuff-ai/config"
	"filmbuff-ai/pkg/response"
)

var errTooManyRequests = errors.New("too many requests from this client")

// clientThrottle keeps one token bucket per client IP. Idle buckets expire.
type clientThrottle struct {
	// mu makes lookup-or-create atomic so a client never gets two buckets.
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newClientThrottle(cfg config.ThrottleConfig) *clientThrottle {
	maxClients := cfg.MaxClients
	if maxClients <= 0 {
		maxClients = 1000
	}
	ttl := cfg.ClientTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = max(cfg.RequestsPerMin/10, 1)
	}
	return &clientThrottle{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, ttl),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (t *clientThrottle) limiter(key string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()
	limiter, ok := t.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(t.rate, t.burst)
		t.limiters.Add(key, limiter)
	}
	return limiter
}

// reserve reports whether key may proceed now, or how long it should wait.
func (t *clientThrottle) reserve(key string) (time.Duration, bool) {
	if t.limiter(key).Allow() {
		return 0, true
	}
	return time.Duration(float64(time.Second) / float64(t.rate)), false
}

// Throttle rejects clients that exceed their per-IP request rate with 429.
func (m Middleware) Throttle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.throttle == nil {
			c.Next()
			return
		}

		wait, ok := m.throttle.reserve(c.ClientIP())
		if !ok {
			m.l.Warnf(c.Request.Context(), "middleware.Throttle: client %s throttled", c.ClientIP())
			response.TooManyRequests(c, errTooManyRequests, int(math.Ceil(wait.Seconds())))
			c.Abort()
			return
		}
		c.Next()
	}
}
