package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimiter builds an in-memory limiter from a formatted quota such as
// "60-M" (60 per minute). An invalid format is a programming error.
func NewRateLimiter(formatted string) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		panic("invalid rate limit format: " + formatted)
	}
	return limiter.New(memory.NewStore(), rate)
}

// RateLimitByIP throttles by client IP. Used for login attempts where no
// identity exists yet.
func RateLimitByIP(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return rateLimit(limiterInstance, func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByUser throttles by authenticated user ID, falling back to client
// IP for unauthenticated requests.
func RateLimitByUser(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return rateLimit(limiterInstance, func(c *gin.Context) string {
		if userID, ok := GetUserIDFromContext(c); ok {
			return userID
		}
		return c.ClientIP()
	})
}

func rateLimit(limiterInstance *limiter.Limiter, keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFn(c)

		lctx, err := limiterInstance.Get(c.Request.Context(), key)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to get rate limit context", slog.String("key", key), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
			return
		}

		if lctx.Reached {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded", slog.String("key", key), slog.Int64("limit", lctx.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			return
		}

		c.Next()
	}
}
