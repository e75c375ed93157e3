package pgsql

import (
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
)

// NewConsoleActionRepository returns the Postgres-backed action journal. db is
// normally a *pgxpool.Pool.
func NewConsoleActionRepository(db DBTX) portsrepo.ConsoleActionRepositoryFacade {
	return newPgxConsoleActionRepository(db)
}
