package repositories

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// BalanceReader defines read operations for cash balances
type BalanceReader interface {
	ListCashBalances(ctx context.Context) ([]domain.CashBalance, error)
	ListBalanceTransactions(ctx context.Context, filter domain.BalanceTransactionFilter) ([]domain.BalanceTransaction, error)
}

// BalanceWriter defines write operations for cash balances
type BalanceWriter interface {
	// CreateCashBalance creates the row for one balance type.
	CreateCashBalance(ctx context.Context, req domain.CashBalanceCreate) (*domain.CashBalance, error)

	// AdjustCashBalance applies a manual add/subtract to the balance with the given id.
	AdjustCashBalance(ctx context.Context, balanceID int64, req domain.AdjustRequest) error
}

// BalanceRepositoryFacade combines all balance-related repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
