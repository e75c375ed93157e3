package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID.
const userIDKey = contextKey("userID")

// bearerTokenKey holds the caller's raw token so it can be forwarded upstream.
const bearerTokenKey = contextKey("bearerToken")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		return GetUserIDFromCtx(c.Request.Context())
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetUserIDFromCtx retrieves the authenticated user ID from a standard context.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// WithUserID returns a copy of ctx carrying the user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// WithBearerToken returns a copy of ctx carrying the caller's token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey, token)
}

// GetBearerTokenFromCtx returns the token to forward to the upstream backend.
func GetBearerTokenFromCtx(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerTokenKey).(string)
	return token, ok && token != ""
}
