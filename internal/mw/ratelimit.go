package mw

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleTTL is how long an IP may stay silent before its limiter is dropped.
const idleTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter stores a rate limiter for each IP address.
type IPRateLimiter struct {
	ips       map[string]*visitor
	mu        sync.Mutex
	r         rate.Limit
	b         int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*visitor),
		r:   r,
		b:   b,
		ttl: idleTTL,
		now: time.Now,
	}
}

// GetLimiter returns the rate limiter for an IP address, creating it on first use.
// Limiters idle for longer than the TTL are evicted, at most one sweep per TTL.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastSweep) >= i.ttl {
		i.evictIdle(now)
		i.lastSweep = now
	}

	v, ok := i.ips[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (i *IPRateLimiter) evictIdle(now time.Time) {
	for ip, v := range i.ips {
		if now.Sub(v.lastSeen) > i.ttl {
			delete(i.ips, ip)
		}
	}
}

// Len reports how many IPs are currently tracked.
func (i *IPRateLimiter) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// RateLimiter is a middleware for IP-based rate limiting.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "too many requests"})
			return
		}
		c.Next()
	}
}
