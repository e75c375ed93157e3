package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// contextKey is the type of every key this package stores in a context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	loggerCtxKey = contextKey("loggerCtx")
)

// StructuredLoggingMiddleware creates a Gin middleware handler that injects
// a request-scoped logger into the context.
func StructuredLoggingMiddleware(baseLogger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		// Create a logger enriched with request-specific fields
		requestLogger := baseLogger.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)

		// Add request ID to response header
		c.Header("X-Request-ID", requestID)

		// Store the logger in both the Gin context and the request context;
		// services only see the latter.
		c.Set(string(loggerKey), requestLogger)
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), requestLogger))

		c.Next()

		latency := time.Since(start)
		requestLogger.Info("Request completed",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", latency),
		)
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context,
// falling back to the default logger.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// GetLoggerFromContext retrieves the request-scoped logger from the Gin context.
// It returns the default logger if none is found (though this shouldn't happen
// if the middleware is applied correctly).
func GetLoggerFromContext(c *gin.Context) *slog.Logger {
	logger, exists := c.Get(string(loggerKey))
	if !exists {
		return GetLoggerFromCtx(c.Request.Context())
	}

	slogLogger, ok := logger.(*slog.Logger)
	if !ok {
		slog.Error("Logger in context is not of type *slog.Logger")
		return slog.Default()
	}

	return slogLogger
}
