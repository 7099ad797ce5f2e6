package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware applies a per-user token bucket. Sync uploads hit two
// remote stores per call, so the bucket is deliberately small.
func RateLimitMiddleware(r rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if l, ok := limiters[key]; ok {
			return l
		}
		l := rate.NewLimiter(r, burst)
		limiters[key] = l
		return l
	}

	return func(c *gin.Context) {
		key := c.GetString("firebase_uid")
		if key == "" {
			key = c.ClientIP()
		}

		if !limiterFor(key).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
