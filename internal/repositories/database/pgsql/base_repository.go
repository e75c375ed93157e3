package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const defaultStatementTimeout = 3 * time.Second

// DBTX is the slice of *pgxpool.Pool the journal uses.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// BaseRepository bounds every journal statement so a slow database cannot hold
// up the request that is being recorded.
type BaseRepository struct {
	DB               DBTX
	StatementTimeout time.Duration
}

func (b BaseRepository) statementContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := b.StatementTimeout
	if timeout <= 0 {
		timeout = defaultStatementTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
