package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := "0b7c7e36-6a43-4a1e-9d0c-1f2f6f6c1a10"

	token := EncodeToken(createdAt, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedCreatedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.True(t, createdAt.Equal(decodedCreatedAt), "Created at time should match after decode")
	assert.Equal(t, id, decodedID, "ID should match after decode")

	// Non-UTC input is normalised
	tashkent := time.FixedZone("UZT", 5*60*60)
	local := time.Date(2025, 1, 1, 5, 0, 0, 0, tashkent)
	decoded, _, err := DecodeToken(EncodeToken(local, "x"))
	assert.NoError(t, err)
	assert.True(t, local.Equal(decoded))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo=" // "2023-05-15T00:00:00Z" without separator
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	invalidDateToken := "bm90YWRhdGV8YWJj" // "notadate|abc"
	_, _, err = DecodeToken(invalidDateToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 50, ClampLimit(0, 50, 200))
	assert.Equal(t, 200, ClampLimit(1000, 50, 200))
	assert.Equal(t, 10, ClampLimit(10, 50, 200))
}
