package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthMiddleware requires a bearer token and makes it available for forwarding.
// The upstream backend verifies the token; here it is only read to key the
// caller's workspace and journal entries. A JWT yields its user_id or sub claim;
// an opaque token yields a stable fingerprint.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		tokenString := parts[1]
		userID := CallerID(tokenString)

		ctx := WithBearerToken(c.Request.Context(), tokenString)
		ctx = WithUserID(ctx, userID)
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctx = WithLogger(ctx, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Set(string(userIDKey), userID)
		c.Set(string(loggerKey), enrichedLogger)

		c.Next()
	}
}

// CallerID derives the id used for the caller's workspace from a bearer token.
func CallerID(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if id := claimString(claims["user_id"]); id != "" {
			return id
		}
		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			return sub
		}
	}
	return "token-" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(token)).String()
}

func claimString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	}
	return ""
}
