package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ledgerService struct {
	BaseService
	financeRepo portsrepo.FinanceRepositoryFacade
}

// NewLedgerService creates the finance screen service.
func NewLedgerService(financeRepo portsrepo.FinanceRepositoryFacade) portssvc.LedgerSvc {
	return &ledgerService{financeRepo: financeRepo}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// Summarize implements the per-currency reduction. Only completed records count
// towards income and expense; receivables and payables are summed twice, once
// over pending entries and once over all of them.
func (s *ledgerService) Summarize(ctx context.Context, records []domain.FinanceRecord, receivables []domain.Receivable, payables []domain.Payable) domain.LedgerSummary {
	var sum domain.LedgerSummary
	flag := func(kind string, id int64, raw domain.Amount, reason string) {
		sum.Flagged = append(sum.Flagged, domain.FlaggedAmount{Kind: kind, ID: id, Raw: string(raw), Reason: reason})
		s.LogWarn(ctx, "Amount excluded from totals",
			slog.String("kind", kind),
			slog.Int64("id", id),
			slog.String("raw", string(raw)),
			slog.String("reason", reason))
	}
	amountOf := func(kind string, id int64, raw domain.Amount, currency domain.Currency) (decimal.Decimal, bool) {
		if !currency.Valid() {
			flag(kind, id, raw, fmt.Sprintf("unknown currency %q", currency))
			return decimal.Zero, false
		}
		d, err := raw.Decimal()
		switch {
		case errors.Is(err, domain.ErrEmptyAmount):
			flag(kind, id, raw, "empty amount")
			return decimal.Zero, false
		case err != nil:
			flag(kind, id, raw, "not a number")
			return decimal.Zero, false
		case d.IsNegative():
			flag(kind, id, raw, "negative amount")
			return decimal.Zero, false
		}
		return d, true
	}

	for _, r := range records {
		if r.Status != domain.RecordCompleted {
			continue
		}
		if r.RecordType != domain.Income && r.RecordType != domain.Expense {
			continue
		}
		d, ok := amountOf("finance_record", r.ID, r.Amount, r.Currency)
		if !ok {
			continue
		}
		if r.RecordType == domain.Income {
			sum.Income = sum.Income.Add(r.Currency, d)
		} else {
			sum.Expense = sum.Expense.Add(r.Currency, d)
		}
	}
	sum.NetProfit = sum.Income.Sub(sum.Expense)

	for _, r := range receivables {
		d, ok := amountOf("receivable", r.ID, r.Amount, r.Currency)
		if !ok {
			continue
		}
		sum.ReceivablesAll = sum.ReceivablesAll.Add(r.Currency, d)
		if r.Status == domain.LedgerPending {
			sum.ReceivablesPending = sum.ReceivablesPending.Add(r.Currency, d)
		}
	}

	for _, p := range payables {
		d, ok := amountOf("payable", p.ID, p.Amount, p.Currency)
		if !ok {
			continue
		}
		sum.PayablesAll = sum.PayablesAll.Add(p.Currency, d)
		if p.Status == domain.LedgerPending {
			sum.PayablesPending = sum.PayablesPending.Add(p.Currency, d)
		}
	}

	return sum
}

// LoadFinance fetches records, receivables and payables concurrently. If any
// of the three fails, the others are cancelled and the first error is returned.
func (s *ledgerService) LoadFinance(ctx context.Context, filter domain.FinanceFilter) (domain.FinanceSnapshot, error) {
	var snap domain.FinanceSnapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.financeRepo.ListFinanceRecords(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to list finance records: %w", err)
		}
		snap.Records = records
		return nil
	})
	g.Go(func() error {
		receivables, err := s.financeRepo.ListReceivables(gctx, filter.Ledger())
		if err != nil {
			return fmt.Errorf("failed to list receivables: %w", err)
		}
		snap.Receivables = receivables
		return nil
	})
	g.Go(func() error {
		payables, err := s.financeRepo.ListPayables(gctx, filter.Ledger())
		if err != nil {
			return fmt.Errorf("failed to list payables: %w", err)
		}
		snap.Payables = payables
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.FinanceSnapshot{}, err
	}

	snap.Records = nonNil(snap.Records)
	snap.Receivables = nonNil(snap.Receivables)
	snap.Payables = nonNil(snap.Payables)
	snap.Summary = s.Summarize(ctx, snap.Records, snap.Receivables, snap.Payables)
	return snap, nil
}

// CreateExpense books a completed manual expense.
func (s *ledgerService) CreateExpense(ctx context.Context, expense domain.NewExpense) (*domain.FinanceRecord, error) {
	if !expense.ExpenseType.Valid() {
		return nil, apperrors.NewValidationError("unknown expense type %q", expense.ExpenseType)
	}
	if !expense.Currency.Valid() {
		return nil, apperrors.NewValidationError("unknown currency %q", expense.Currency)
	}
	if !expense.PaymentType.Valid() {
		return nil, apperrors.NewValidationError("unknown payment type %q", expense.PaymentType)
	}
	if !expense.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be greater than zero")
	}

	created, err := s.financeRepo.CreateExpense(ctx, domain.ExpenseRequest{
		RecordType:  domain.Expense,
		ExpenseType: expense.ExpenseType,
		Amount:      domain.NewAmount(expense.Amount),
		Currency:    expense.Currency,
		PaymentType: expense.PaymentType,
		Recipient:   expense.Recipient,
		Notes:       expense.Notes,
		Status:      domain.RecordCompleted,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create expense", slog.String("expense_type", string(expense.ExpenseType)))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created", slog.Int64("record_id", created.ID))
	return created, nil
}

// nonNil turns a nil slice into an empty one so snapshots render as [].
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
