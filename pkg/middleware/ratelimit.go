package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	mem "wanderwise/pkg/memcache"
	"wanderwise/pkg/utils"
)

// RateLimitMiddleware allows `requests` per `window` for each client IP.
// Idle limiters expire from the store after one window.
func RateLimitMiddleware(store mem.Store[string, *rate.Limiter], requests int, window time.Duration) gin.HandlerFunc {
	if requests <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	every := rate.Every(window / time.Duration(requests))

	return func(c *gin.Context) {
		ip := c.ClientIP()
		lim, ok := store.Get(ip)
		if !ok {
			lim = rate.NewLimiter(every, requests)
		}
		store.Set(ip, lim, window)

		if !lim.Allow() {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
