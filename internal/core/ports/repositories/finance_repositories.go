package repositories

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// FinanceReader defines read operations for finance records and the two ledgers
type FinanceReader interface {
	// ListFinanceRecords retrieves income and expense records matching the filter.
	ListFinanceRecords(ctx context.Context, filter domain.FinanceFilter) ([]domain.FinanceRecord, error)

	// ListReceivables retrieves money owed to the business.
	ListReceivables(ctx context.Context, filter domain.LedgerFilter) ([]domain.Receivable, error)

	// ListPayables retrieves money the business owes.
	ListPayables(ctx context.Context, filter domain.LedgerFilter) ([]domain.Payable, error)
}

// FinanceWriter defines write operations for finance records
type FinanceWriter interface {
	// CreateExpense records a manual expense.
	CreateExpense(ctx context.Context, req domain.ExpenseRequest) (*domain.FinanceRecord, error)
}

// FinanceRepositoryFacade combines all finance-related repository interfaces
type FinanceRepositoryFacade interface {
	FinanceReader
	FinanceWriter
}
