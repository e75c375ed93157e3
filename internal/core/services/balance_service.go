package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/utils/accounting"
	"golang.org/x/sync/singleflight"
)

type balanceService struct {
	BaseService
	balanceRepo portsrepo.BalanceRepositoryFacade
	ensure      singleflight.Group
}

// NewBalanceService creates the cash balance service.
func NewBalanceService(balanceRepo portsrepo.BalanceRepositoryFacade) portssvc.BalanceSvc {
	return &balanceService{balanceRepo: balanceRepo}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

// EnsureBalances lists the balances, creates one zero row for every missing type
// and lists again. The rows are shared by every operator, so all concurrent
// callers share a single pass and a missing type is created at most once.
func (s *balanceService) EnsureBalances(ctx context.Context) (domain.BalanceSet, error) {
	return sharedPass(ctx, &s.ensure, "balances", s.ensureBalances)
}

func (s *balanceService) ensureBalances(ctx context.Context) (domain.BalanceSet, error) {
	set, err := s.listBalances(ctx)
	if err != nil {
		return domain.BalanceSet{}, err
	}

	missing := set.Missing()
	if len(missing) == 0 {
		return set, nil
	}

	for _, t := range missing {
		if _, err := s.balanceRepo.CreateCashBalance(ctx, domain.CashBalanceCreate{
			BalanceType: t,
		}); err != nil {
			// The re-list below reports whatever is still missing.
			s.LogError(ctx, err, "Failed to create missing cash balance", slog.String("balance_type", string(t)))
			continue
		}
		s.LogInfo(ctx, "Created missing cash balance", slog.String("balance_type", string(t)))
	}

	return s.listBalances(ctx)
}

func (s *balanceService) listBalances(ctx context.Context) (domain.BalanceSet, error) {
	list, err := s.balanceRepo.ListCashBalances(ctx)
	if err != nil {
		return domain.BalanceSet{}, fmt.Errorf("failed to list cash balances: %w", err)
	}
	set, rejected := domain.NewBalanceSet(list)
	for _, r := range rejected {
		s.LogWarn(ctx, "Ignoring cash balance row",
			slog.Int64("balance_id", r.ID),
			slog.String("balance_type", string(r.BalanceType)))
	}
	return set, nil
}

// LoadBalances ensures the four rows exist, then loads the transactions for filter.
func (s *balanceService) LoadBalances(ctx context.Context, filter domain.BalanceTransactionFilter) (domain.BalanceSnapshot, error) {
	set, err := s.EnsureBalances(ctx)
	if err != nil {
		return domain.BalanceSnapshot{}, err
	}

	txs, err := s.balanceRepo.ListBalanceTransactions(ctx, filter)
	if err != nil {
		return domain.BalanceSnapshot{}, fmt.Errorf("failed to list balance transactions: %w", err)
	}
	txs = nonNil(txs)

	movements, skipped := accounting.Movements(txs, set)
	if len(skipped) > 0 {
		s.LogWarn(ctx, "Balance transactions excluded from movements", slog.Any("transaction_ids", skipped))
	}

	return domain.BalanceSnapshot{
		Balances:     set,
		Missing:      set.Missing(),
		Transactions: txs,
		Movements:    movements,
	}, nil
}

// Adjust resolves the row for the balance type and posts the adjustment to it.
func (s *balanceService) Adjust(ctx context.Context, adj domain.BalanceAdjustment) error {
	if !adj.BalanceType.Valid() {
		return apperrors.NewValidationError("unknown balance type %q", adj.BalanceType)
	}
	if !adj.Operation.Valid() {
		return apperrors.NewValidationError("unknown operation %q", adj.Operation)
	}
	if !adj.Amount.IsPositive() {
		return apperrors.NewValidationError("amount must be greater than zero")
	}

	set, err := s.EnsureBalances(ctx)
	if err != nil {
		return err
	}
	row, ok := set.Get(adj.BalanceType)
	if !ok {
		return apperrors.NewValidationError("balance %s does not exist", adj.BalanceType)
	}

	err = s.balanceRepo.AdjustCashBalance(ctx, row.ID, domain.AdjustRequest{
		Amount:    domain.NewAmount(adj.Amount),
		Operation: adj.Operation,
		Notes:     adj.Notes,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to adjust cash balance",
			slog.String("balance_type", string(adj.BalanceType)),
			slog.String("operation", string(adj.Operation)))
		return fmt.Errorf("failed to adjust balance %s: %w", adj.BalanceType, err)
	}

	s.LogInfo(ctx, "Cash balance adjusted",
		slog.String("balance_type", string(adj.BalanceType)),
		slog.String("operation", string(adj.Operation)),
		slog.String("amount", adj.Amount.String()))
	return nil
}
