package accounting

import (
	"fmt"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the operation's sign to a balance transaction amount:
// add is positive, subtract is negative.
func SignedAmount(tx domain.BalanceTransaction) (decimal.Decimal, error) {
	amount, err := tx.Amount.Decimal()
	if err != nil {
		return decimal.Zero, fmt.Errorf("transaction %d: %w", tx.ID, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("transaction %d: negative amount %s", tx.ID, amount)
	}
	switch tx.Operation {
	case domain.OperationAdd:
		return amount, nil
	case domain.OperationSubtract:
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("transaction %d: unknown operation '%s'", tx.ID, tx.Operation)
	}
}

// Movements totals the loaded transactions per balance type. Transactions whose
// balance cannot be resolved, or whose amount is unusable, are returned as skipped.
func Movements(txs []domain.BalanceTransaction, balances domain.BalanceSet) (map[domain.BalanceType]domain.BalanceMovement, []int64) {
	typeByID := make(map[int64]domain.BalanceType, len(domain.BalanceTypes))
	for _, row := range balances.Rows() {
		typeByID[row.ID] = row.BalanceType
	}

	out := make(map[domain.BalanceType]domain.BalanceMovement, len(domain.BalanceTypes))
	var skipped []int64
	for _, tx := range txs {
		bt, ok := typeByID[tx.Balance]
		if !ok && tx.BalanceDetail != nil {
			bt, ok = tx.BalanceDetail.BalanceType, tx.BalanceDetail.BalanceType.Valid()
		}
		if !ok {
			skipped = append(skipped, tx.ID)
			continue
		}
		signed, err := SignedAmount(tx)
		if err != nil {
			skipped = append(skipped, tx.ID)
			continue
		}
		m := out[bt]
		if signed.IsNegative() {
			m.Out = m.Out.Add(signed.Neg())
		} else {
			m.In = m.In.Add(signed)
		}
		m.Net = m.Net.Add(signed)
		out[bt] = m
	}
	return out, skipped
}
