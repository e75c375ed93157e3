package dto

import (
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddStockRequest adds packages of one size.
type AddStockRequest struct {
	PackageType     domain.PackageType `json:"package_type" binding:"required,enum"`
	Quantity        int                `json:"quantity" binding:"required,gt=0"`
	CostPerUnit     *decimal.Decimal   `json:"cost_per_unit" swaggertype:"string"`
	IsPaid          bool               `json:"is_paid"`
	PaymentAmount   *decimal.Decimal   `json:"payment_amount" swaggertype:"string"`
	PaymentCurrency domain.Currency    `json:"payment_currency" binding:"omitempty,enum"`
	PaymentType     domain.PaymentType `json:"payment_type" binding:"omitempty,enum"`
}

func (r AddStockRequest) ToDomain() domain.StockInput {
	return domain.StockInput{
		PackageType:     r.PackageType,
		Quantity:        r.Quantity,
		CostPerUnit:     r.CostPerUnit,
		IsPaid:          r.IsPaid,
		PaymentAmount:   r.PaymentAmount,
		PaymentCurrency: r.PaymentCurrency,
		PaymentType:     r.PaymentType,
	}
}

// UpdatePackageRequest overwrites one package row.
type UpdatePackageRequest struct {
	Quantity        int                `json:"quantity" binding:"min=0"`
	CostPerUnit     *decimal.Decimal   `json:"cost_per_unit" swaggertype:"string"`
	IsPaid          bool               `json:"is_paid"`
	PaymentAmount   *decimal.Decimal   `json:"payment_amount" swaggertype:"string"`
	PaymentCurrency domain.Currency    `json:"payment_currency" binding:"omitempty,enum"`
	PaymentType     domain.PaymentType `json:"payment_type" binding:"omitempty,enum"`
}

func (r UpdatePackageRequest) ToDomain() domain.PackageUpdate {
	return domain.PackageUpdate{
		Quantity:        r.Quantity,
		CostPerUnit:     r.CostPerUnit,
		IsPaid:          r.IsPaid,
		PaymentAmount:   r.PaymentAmount,
		PaymentCurrency: r.PaymentCurrency,
		PaymentType:     r.PaymentType,
	}
}

// ReceiveAndPayRequest marks a restock as arrived and paid. Omitted fields
// default from the history entry.
type ReceiveAndPayRequest struct {
	QuantityReceived *int               `json:"quantity_received" binding:"omitempty,gt=0"`
	PaymentAmount    *decimal.Decimal   `json:"payment_amount" swaggertype:"string"`
	PaymentCurrency  domain.Currency    `json:"payment_currency" binding:"omitempty,enum"`
	PaymentType      domain.PaymentType `json:"payment_type" binding:"omitempty,enum"`
}

func (r ReceiveAndPayRequest) ToDomain() domain.ReceiveAndPayInput {
	return domain.ReceiveAndPayInput{
		QuantityReceived: r.QuantityReceived,
		PaymentAmount:    r.PaymentAmount,
		PaymentCurrency:  r.PaymentCurrency,
		PaymentType:      r.PaymentType,
	}
}
