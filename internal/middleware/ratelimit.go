package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimiter builds an in-memory, per-IP rate limiting middleware from a
// formatted rate like "5-M" (5 requests per minute). Applied to the
// credential endpoints to throttle brute-force attempts.
func NewRateLimiter(formatted string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		// A bad literal is a programming error; fall back to a no-op.
		return func(c *gin.Context) { c.Next() }
	}
	store := memory.NewStore()
	return limitergin.NewMiddleware(limiter.New(store, rate))
}
