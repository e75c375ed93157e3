package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolOptions tunes the action journal pool.
type PoolOptions struct {
	ConnectTimeout time.Duration
	MaxConns       int32
}

func poolConfig(databaseURL string, opts PoolOptions) (*pgxpool.Config, error) {
	if databaseURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	if opts.ConnectTimeout > 0 {
		config.ConnConfig.ConnectTimeout = opts.ConnectTimeout
	}
	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	return config, nil
}

// NewPgxPool opens and pings the journal pool. The ping is bounded by the
// connect timeout so a dead database fails startup instead of hanging it.
func NewPgxPool(ctx context.Context, databaseURL string, opts PoolOptions, logger *slog.Logger) (*pgxpool.Pool, error) {
	config, err := poolConfig(databaseURL, opts)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx := ctx
	if opts.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, opts.ConnectTimeout)
		defer cancel()
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to action journal database",
		slog.String("host", config.ConnConfig.Host),
		slog.String("database", config.ConnConfig.Database),
		slog.Int("max_conns", int(config.MaxConns)))
	return pool, nil
}

// ClosePgxPool closes the pool if one was opened.
func ClosePgxPool(pool *pgxpool.Pool, logger *slog.Logger) {
	if pool == nil {
		return
	}
	pool.Close()
	logger.Info("Action journal connection pool closed")
}
