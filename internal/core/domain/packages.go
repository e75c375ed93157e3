package domain

import "github.com/shopspring/decimal"

// DefaultPackageCost returns the per-unit cost used when none is entered.
func (p PackageType) DefaultCost() decimal.Decimal {
	if p == PackageL {
		return decimal.NewFromInt(2)
	}
	return decimal.NewFromInt(1)
}

// Package is the stock counter for one package size.
type Package struct {
	ID          int64       `json:"id"`
	PackageType PackageType `json:"package_type"`
	Quantity    int         `json:"quantity"`
	CostPerUnit Amount      `json:"cost_per_unit"`
	UpdatedAt   string      `json:"updated_at,omitempty"`
}

// PackageHistory is one restock event with its own receive/pay state.
type PackageHistory struct {
	ID               int64                `json:"id"`
	Package          int64                `json:"package"`
	PackageType      PackageType          `json:"package_type,omitempty"`
	QuantityAdded    int                  `json:"quantity_added"`
	QuantityReceived int                  `json:"quantity_received"`
	CostPerUnit      Amount               `json:"cost_per_unit"`
	Status           PackageHistoryStatus `json:"status"`
	IsPaid           bool                 `json:"is_paid"`
	PaymentAmount    Amount               `json:"payment_amount"`
	PaymentCurrency  Currency             `json:"payment_currency,omitempty"`
	PaymentType      PaymentType          `json:"payment_type,omitempty"`
	CreatedAt        string               `json:"created_at,omitempty"`
}

// CanMarkReceivedAndPay reports whether the restock is still waiting to arrive.
func (h PackageHistory) CanMarkReceivedAndPay() bool {
	return h.Status == PackageHistoryOrdered
}

// PackageHistoryRow is a history entry with a flag for the receive-and-pay action.
type PackageHistoryRow struct {
	PackageHistory
	CanMarkReceivedAndPay bool `json:"can_mark_received_and_pay"`
}

// StockInput adds packages of one size. A nil CostPerUnit uses the size default;
// a nil PaymentAmount defaults to quantity x cost.
type StockInput struct {
	PackageType     PackageType
	Quantity        int
	CostPerUnit     *decimal.Decimal
	IsPaid          bool
	PaymentAmount   *decimal.Decimal
	PaymentCurrency Currency
	PaymentType     PaymentType
}

// PackageUpdate overwrites a package row.
type PackageUpdate struct {
	Quantity        int
	CostPerUnit     *decimal.Decimal
	IsPaid          bool
	PaymentAmount   *decimal.Decimal
	PaymentCurrency Currency
	PaymentType     PaymentType
}

// ReceiveAndPayInput marks a restock as arrived and paid. Nil fields use the defaults
// derived from the history entry.
type ReceiveAndPayInput struct {
	QuantityReceived *int
	PaymentAmount    *decimal.Decimal
	PaymentCurrency  Currency
	PaymentType      PaymentType
}

// PackageSnapshot is everything the packages screen shows after one load.
type PackageSnapshot struct {
	Packages []Package           `json:"packages"`
	Missing  []PackageType       `json:"missing,omitempty"`
	History  []PackageHistoryRow `json:"history"`
}
