package services

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// LedgerSvc computes the finance screen: records, the two ledgers and their
// per-currency summary.
type LedgerSvc interface {
	// Summarize folds the loaded records into per-currency totals. It never fails;
	// amounts it cannot use are reported in the summary's Flagged list.
	Summarize(ctx context.Context, records []domain.FinanceRecord, receivables []domain.Receivable, payables []domain.Payable) domain.LedgerSummary

	// LoadFinance fetches everything the finance screen shows for filter.
	LoadFinance(ctx context.Context, filter domain.FinanceFilter) (domain.FinanceSnapshot, error)

	// CreateExpense books a manual expense.
	CreateExpense(ctx context.Context, expense domain.NewExpense) (*domain.FinanceRecord, error)
}

// BalanceSvc manages the four cash balances.
type BalanceSvc interface {
	// EnsureBalances creates any missing balance row and returns the refreshed set.
	EnsureBalances(ctx context.Context) (domain.BalanceSet, error)

	LoadBalances(ctx context.Context, filter domain.BalanceTransactionFilter) (domain.BalanceSnapshot, error)

	// Adjust applies a manual add/subtract to one balance.
	Adjust(ctx context.Context, adj domain.BalanceAdjustment) error
}
