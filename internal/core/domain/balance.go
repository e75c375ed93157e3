package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CashBalance is one of the four running balances.
type CashBalance struct {
	ID          int64       `json:"id"`
	BalanceType BalanceType `json:"balance_type"`
	Balance     Amount      `json:"balance"`
	UpdatedAt   string      `json:"updated_at,omitempty"`
}

// BalanceSet holds at most one CashBalance per BalanceType, in the fixed order of BalanceTypes.
type BalanceSet struct {
	rows [len(BalanceTypes)]*CashBalance
}

// NewBalanceSet slots the listed rows by type. Rows with an unknown type, or a
// second row for a type already seen, are returned as rejected.
func NewBalanceSet(list []CashBalance) (BalanceSet, []CashBalance) {
	var set BalanceSet
	var rejected []CashBalance
	for i := range list {
		idx := list[i].BalanceType.Index()
		if idx < 0 || set.rows[idx] != nil {
			rejected = append(rejected, list[i])
			continue
		}
		row := list[i]
		set.rows[idx] = &row
	}
	return set, rejected
}

// Get returns the row for t.
func (s BalanceSet) Get(t BalanceType) (CashBalance, bool) {
	idx := t.Index()
	if idx < 0 || s.rows[idx] == nil {
		return CashBalance{}, false
	}
	return *s.rows[idx], true
}

// Missing lists the balance types with no row, in fixed order.
func (s BalanceSet) Missing() []BalanceType {
	var missing []BalanceType
	for i, t := range BalanceTypes {
		if s.rows[i] == nil {
			missing = append(missing, t)
		}
	}
	return missing
}

// Complete reports whether all four rows are present.
func (s BalanceSet) Complete() bool {
	return len(s.Missing()) == 0
}

// Rows returns the present rows in fixed order.
func (s BalanceSet) Rows() []CashBalance {
	rows := make([]CashBalance, 0, len(s.rows))
	for _, r := range s.rows {
		if r != nil {
			rows = append(rows, *r)
		}
	}
	return rows
}

// MarshalJSON renders the set as an object keyed by balance type; missing rows are null.
func (s BalanceSet) MarshalJSON() ([]byte, error) {
	out := make(map[BalanceType]*CashBalance, len(BalanceTypes))
	for i, t := range BalanceTypes {
		out[t] = s.rows[i]
	}
	return json.Marshal(out)
}

// BalanceTransaction is one movement on a cash balance.
type BalanceTransaction struct {
	ID              int64           `json:"id"`
	Balance         int64           `json:"balance"`
	BalanceDetail   *CashBalance    `json:"balance_detail,omitempty"`
	TransactionType TransactionType `json:"transaction_type"`
	Operation       Operation       `json:"operation"`
	Amount          Amount          `json:"amount"`
	RelatedSale     *int64          `json:"related_sale,omitempty"`
	RelatedOrder    *int64          `json:"related_order,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       string          `json:"created_at,omitempty"`
	CreatedByDetail *UserRef        `json:"created_by_detail,omitempty"`
}

// BalanceTransactionFilter narrows the transaction list on the balance screen.
type BalanceTransactionFilter struct {
	BalanceType     BalanceType     `json:"balance_type,omitempty"`
	TransactionType TransactionType `json:"transaction_type,omitempty"`
	Currency        Currency        `json:"currency,omitempty"`
	PaymentType     PaymentType     `json:"payment_type,omitempty"`
	Year            int             `json:"year,omitempty"`
	Month           int             `json:"month,omitempty"`
}

// EffectiveBalanceType is the balance_type sent to the backend. An explicit
// balance type wins; otherwise a currency selects that currency's cash balance.
func (f BalanceTransactionFilter) EffectiveBalanceType() BalanceType {
	if f.BalanceType != "" {
		return f.BalanceType
	}
	switch f.Currency {
	case USD:
		return USDCash
	case UZS:
		return UZSCash
	}
	return ""
}

// BalanceAdjustment is a manual add/subtract on one balance.
type BalanceAdjustment struct {
	BalanceType BalanceType
	Amount      decimal.Decimal
	Operation   Operation
	Notes       string
}

// BalanceMovement is the inflow, outflow and net change on one balance over the loaded transactions.
type BalanceMovement struct {
	In  decimal.Decimal `json:"in"`
	Out decimal.Decimal `json:"out"`
	Net decimal.Decimal `json:"net"`
}

// BalanceSnapshot is everything the balance screen shows after one load.
type BalanceSnapshot struct {
	Balances     BalanceSet                      `json:"balances"`
	Missing      []BalanceType                   `json:"missing,omitempty"`
	Transactions []BalanceTransaction            `json:"transactions"`
	Movements    map[BalanceType]BalanceMovement `json:"movements"`
}
