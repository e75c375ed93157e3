package dto

import (
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FinanceFilterParams defines query parameters for the finance screen.
type FinanceFilterParams struct {
	Type        domain.RecordType   `form:"type" binding:"omitempty,enum"`
	Status      domain.RecordStatus `form:"status" binding:"omitempty,enum"`
	ExpenseType domain.ExpenseType  `form:"expense_type" binding:"omitempty,enum"`
	Currency    domain.Currency     `form:"currency" binding:"omitempty,enum"`
	PaymentType domain.PaymentType  `form:"payment_type" binding:"omitempty,enum"`
	PeriodParams
}

// ToDomain converts the query parameters to a finance filter.
func (p FinanceFilterParams) ToDomain() domain.FinanceFilter {
	return domain.FinanceFilter{
		RecordType:  p.Type,
		Status:      p.Status,
		ExpenseType: p.ExpenseType,
		Currency:    p.Currency,
		PaymentType: p.PaymentType,
		Year:        p.Year,
		Month:       p.Month,
	}
}

// CreateExpenseRequest defines the data needed to book a manual expense.
type CreateExpenseRequest struct {
	ExpenseType domain.ExpenseType `json:"expense_type" binding:"required,enum"`
	Amount      *decimal.Decimal   `json:"amount" binding:"required" swaggertype:"string"`
	Currency    domain.Currency    `json:"currency" binding:"required,enum"`
	PaymentType domain.PaymentType `json:"payment_type" binding:"required,enum"`
	Recipient   *int64             `json:"recipient"`
	Notes       string             `json:"notes"`
}

func (r CreateExpenseRequest) ToDomain() domain.NewExpense {
	return domain.NewExpense{
		ExpenseType: r.ExpenseType,
		Amount:      decimalOrZero(r.Amount),
		Currency:    r.Currency,
		PaymentType: r.PaymentType,
		Recipient:   r.Recipient,
		Notes:       r.Notes,
	}
}

// BalanceFilterParams defines query parameters for the balance screen's transaction list.
type BalanceFilterParams struct {
	BalanceType     domain.BalanceType     `form:"balance_type" binding:"omitempty,enum"`
	TransactionType domain.TransactionType `form:"transaction_type" binding:"omitempty,enum"`
	Currency        domain.Currency        `form:"currency" binding:"omitempty,enum"`
	PaymentType     domain.PaymentType     `form:"payment_type" binding:"omitempty,enum"`
	PeriodParams
}

func (p BalanceFilterParams) ToDomain() domain.BalanceTransactionFilter {
	return domain.BalanceTransactionFilter{
		BalanceType:     p.BalanceType,
		TransactionType: p.TransactionType,
		Currency:        p.Currency,
		PaymentType:     p.PaymentType,
		Year:            p.Year,
		Month:           p.Month,
	}
}

// AdjustBalanceRequest is a manual add/subtract on one of the four balances.
type AdjustBalanceRequest struct {
	BalanceType domain.BalanceType `json:"balance_type" binding:"required,enum"`
	Amount      *decimal.Decimal   `json:"amount" binding:"required" swaggertype:"string"`
	Operation   domain.Operation   `json:"operation" binding:"required,enum"`
	Notes       string             `json:"notes"`
}

func (r AdjustBalanceRequest) ToDomain() domain.BalanceAdjustment {
	return domain.BalanceAdjustment{
		BalanceType: r.BalanceType,
		Amount:      decimalOrZero(r.Amount),
		Operation:   r.Operation,
		Notes:       r.Notes,
	}
}
