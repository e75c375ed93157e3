package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig_EmptyURL(t *testing.T) {
	_, err := poolConfig("", PoolOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestPoolConfig_InvalidURL(t *testing.T) {
	_, err := poolConfig("postgres://user@host:notaport/db", PoolOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse database config")
}

func TestPoolConfig_AppliesOptions(t *testing.T) {
	cfg, err := poolConfig("postgres://user:pw@db.internal:5432/journal", PoolOptions{
		ConnectTimeout: 3 * time.Second,
		MaxConns:       7,
	})
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.ConnConfig.ConnectTimeout)
	assert.Equal(t, int32(7), cfg.MaxConns)
	assert.Equal(t, "db.internal", cfg.ConnConfig.Host)
	assert.Equal(t, "journal", cfg.ConnConfig.Database)
}

func TestPoolConfig_ZeroOptionsKeepURLSettings(t *testing.T) {
	cfg, err := poolConfig("postgres://user:pw@db.internal:5432/journal?connect_timeout=9&pool_max_conns=3", PoolOptions{})
	require.NoError(t, err)
	assert.Equal(t, 9*time.Second, cfg.ConnConfig.ConnectTimeout)
	assert.Equal(t, int32(3), cfg.MaxConns)
}
