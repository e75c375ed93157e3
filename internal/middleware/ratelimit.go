package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewLimiter builds an in-memory limiter from a rate such as "300-M".
func NewLimiter(rate string) (*limiter.Limiter, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), parsed), nil
}

// RateLimit creates a Gin middleware for rate limiting requests.
// Authenticated callers are limited per user, everyone else per IP.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		key := ip
		if userID, ok := GetUserIDFromContext(c); ok {
			key = "user:" + userID
		}

		context, err := limiterInstance.Get(c.Request.Context(), key)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to get rate limit context", slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
			return
		}

		if context.Reached {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", context.Limit), slog.Int64("remaining_requests", context.Remaining))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			return
		}

		c.Next()
	}
}
