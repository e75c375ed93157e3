package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeToken creates a base64 encoded keyset token from a creation time and a row id.
// The pair orders console actions newest first with the id as tie breaker.
func EncodeToken(createdAt time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", createdAt.UTC().Format(timeFormat), id)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into creation time and row id.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return createdAt, parts[1], nil
}

// ClampLimit bounds a requested page size to [1, max], using def when unset.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
