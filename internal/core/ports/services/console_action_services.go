package services

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// ConsoleActionSvc records and lists the mutations made through the console.
type ConsoleActionSvc interface {
	// Record journals one mutation; err is the mutation's result. Journal failures
	// are logged and never returned.
	Record(ctx context.Context, action, resource, resourceID string, payload any, err error)

	ListConsoleActions(ctx context.Context, query domain.ConsoleActionQuery) ([]domain.ConsoleAction, *string, error)

	// Enabled reports whether a journal store is configured.
	Enabled() bool
}
