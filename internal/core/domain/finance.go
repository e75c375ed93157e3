package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// FinanceRecord is a single income or expense booking.
type FinanceRecord struct {
	ID              int64        `json:"id"`
	RecordType      RecordType   `json:"record_type"`
	ExpenseType     ExpenseType  `json:"expense_type,omitempty"`
	Amount          Amount       `json:"amount"`
	Currency        Currency     `json:"currency"`
	PaymentType     PaymentType  `json:"payment_type"`
	Status          RecordStatus `json:"status"`
	Recipient       *int64       `json:"recipient,omitempty"`
	RecipientDetail *PartyRef    `json:"recipient_detail,omitempty"`
	RelatedOrder    *int64       `json:"related_order,omitempty"`
	RelatedSale     *int64       `json:"related_sale,omitempty"`
	RelatedDispatch *int64       `json:"related_dispatch,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	TransactionDate string       `json:"transaction_date,omitempty"`
	CreatedAt       string       `json:"created_at,omitempty"`
}

// Receivable is money a customer still owes the business.
type Receivable struct {
	ID         int64           `json:"id"`
	Sale       *int64          `json:"sale,omitempty"`
	SaleDetail json.RawMessage `json:"sale_detail,omitempty"`
	Amount     Amount          `json:"amount"`
	Currency   Currency        `json:"currency"`
	Status     LedgerStatus    `json:"status"`
	PaidDate   string          `json:"paid_date,omitempty"`
	CreatedAt  string          `json:"created_at,omitempty"`
}

// Payable is money the business still owes, for an order or a dispatch.
type Payable struct {
	ID             int64           `json:"id"`
	Order          *int64          `json:"order,omitempty"`
	OrderDetail    json.RawMessage `json:"order_detail,omitempty"`
	Dispatch       *int64          `json:"dispatch,omitempty"`
	DispatchDetail json.RawMessage `json:"dispatch_detail,omitempty"`
	Amount         Amount          `json:"amount"`
	Currency       Currency        `json:"currency"`
	Status         LedgerStatus    `json:"status"`
	PaidDate       string          `json:"paid_date,omitempty"`
	CreatedAt      string          `json:"created_at,omitempty"`
}

// FinanceFilter narrows the finance screen. Every field is optional.
type FinanceFilter struct {
	RecordType  RecordType   `json:"type,omitempty"`
	Status      RecordStatus `json:"status,omitempty"`
	ExpenseType ExpenseType  `json:"expense_type,omitempty"`
	Currency    Currency     `json:"currency,omitempty"`
	PaymentType PaymentType  `json:"payment_type,omitempty"`
	Year        int          `json:"year,omitempty"`
	Month       int          `json:"month,omitempty"`
}

// LedgerFilter narrows the receivable and payable lists.
type LedgerFilter struct {
	Status LedgerStatus `json:"status,omitempty"`
	Year   int          `json:"year,omitempty"`
	Month  int          `json:"month,omitempty"`
}

// Ledger returns the part of the finance filter the backend applies to receivables and payables.
func (f FinanceFilter) Ledger() LedgerFilter {
	return LedgerFilter{Status: LedgerStatus(f.Status), Year: f.Year, Month: f.Month}
}

// NewExpense is a manually entered expense.
type NewExpense struct {
	ExpenseType ExpenseType
	Amount      decimal.Decimal
	Currency    Currency
	PaymentType PaymentType
	Recipient   *int64
	Notes       string
}

// CurrencyTotals holds one sum per currency. Currencies are never mixed.
type CurrencyTotals struct {
	USD decimal.Decimal `json:"usd"`
	UZS decimal.Decimal `json:"uzs"`
}

// Get returns the total for c; unknown currencies read as zero.
func (t CurrencyTotals) Get(c Currency) decimal.Decimal {
	switch c {
	case USD:
		return t.USD
	case UZS:
		return t.UZS
	}
	return decimal.Zero
}

// Add returns t with d added to the bucket for c. Unknown currencies are dropped.
func (t CurrencyTotals) Add(c Currency, d decimal.Decimal) CurrencyTotals {
	switch c {
	case USD:
		t.USD = t.USD.Add(d)
	case UZS:
		t.UZS = t.UZS.Add(d)
	}
	return t
}

// Sub returns t - o per currency.
func (t CurrencyTotals) Sub(o CurrencyTotals) CurrencyTotals {
	return CurrencyTotals{USD: t.USD.Sub(o.USD), UZS: t.UZS.Sub(o.UZS)}
}

// FlaggedAmount records a value the summarizer could not use.
type FlaggedAmount struct {
	Kind   string `json:"kind"`
	ID     int64  `json:"id"`
	Raw    string `json:"raw"`
	Reason string `json:"reason"`
}

// LedgerSummary is the set of headline figures for the finance screen.
type LedgerSummary struct {
	Income             CurrencyTotals  `json:"income"`
	Expense            CurrencyTotals  `json:"expense"`
	NetProfit          CurrencyTotals  `json:"net_profit"`
	ReceivablesPending CurrencyTotals  `json:"receivables_pending"`
	ReceivablesAll     CurrencyTotals  `json:"receivables_all"`
	PayablesPending    CurrencyTotals  `json:"payables_pending"`
	PayablesAll        CurrencyTotals  `json:"payables_all"`
	Flagged            []FlaggedAmount `json:"flagged,omitempty"`
}

// FinanceSnapshot is everything the finance screen shows after one load.
type FinanceSnapshot struct {
	Records     []FinanceRecord `json:"records"`
	Receivables []Receivable    `json:"receivables"`
	Payables    []Payable       `json:"payables"`
	Summary     LedgerSummary   `json:"summary"`
}
