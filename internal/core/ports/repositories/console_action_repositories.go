package repositories

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// ConsoleActionReader defines read operations for the local action journal
type ConsoleActionReader interface {
	// ListConsoleActions returns one page, newest first, and a token for the next page (if any).
	ListConsoleActions(ctx context.Context, query domain.ConsoleActionQuery) ([]domain.ConsoleAction, *string, error)
}

// ConsoleActionWriter defines write operations for the local action journal
type ConsoleActionWriter interface {
	SaveConsoleAction(ctx context.Context, action domain.ConsoleAction) error
}

// ConsoleActionRepositoryFacade combines all journal repository interfaces
type ConsoleActionRepositoryFacade interface {
	ConsoleActionReader
	ConsoleActionWriter
}
