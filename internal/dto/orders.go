package dto

import (
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderFilterParams defines query parameters for the orders screen.
type OrderFilterParams struct {
	Brand     string             `form:"brand"`
	Size      string             `form:"size"`
	Color     string             `form:"color"`
	OrderType domain.OrderType   `form:"order_type" binding:"omitempty,enum"`
	Status    domain.OrderStatus `form:"status" binding:"omitempty,enum"`
	PeriodParams
}

func (p OrderFilterParams) ToDomain() domain.OrderFilter {
	return domain.OrderFilter{
		Brand:     p.Brand,
		Size:      p.Size,
		Color:     p.Color,
		OrderType: p.OrderType,
		Status:    p.Status,
		Year:      p.Year,
		Month:     p.Month,
	}
}

// CreateOrderRequest defines the data needed to place a supplier order.
// CostTotal defaults to ordered_quantity x cost_per_unit.
type CreateOrderRequest struct {
	OrderType              domain.OrderType       `json:"order_type" binding:"omitempty,enum"`
	Product                int64                  `json:"product" binding:"required,gt=0"`
	SupplierCountry        domain.SupplierCountry `json:"supplier_country" binding:"omitempty,enum"`
	OrderedQuantity        int                    `json:"ordered_quantity" binding:"required,gt=0"`
	CostPerUnit            *decimal.Decimal       `json:"cost_per_unit" binding:"required" swaggertype:"string"`
	CostTotal              *decimal.Decimal       `json:"cost_total" swaggertype:"string"`
	OrderIsPaid            bool                   `json:"order_is_paid"`
	OrderPaymentCurrency   domain.Currency        `json:"order_payment_currency" binding:"omitempty,enum"`
	OrderPaymentType       domain.PaymentType     `json:"order_payment_type" binding:"omitempty,enum"`
	CargoIsPaid            bool                   `json:"cargo_is_paid"`
	CargoAmount            *decimal.Decimal       `json:"cargo_amount" swaggertype:"string"`
	CargoCurrency          domain.Currency        `json:"cargo_currency" binding:"omitempty,enum"`
	CargoPaymentType       domain.PaymentType     `json:"cargo_payment_type" binding:"omitempty,enum"`
	CargoUnknown           bool                   `json:"cargo_unknown"`
	Customer               *int64                 `json:"customer"`
	AdvancePaymentAmount   *decimal.Decimal       `json:"advance_payment_amount" swaggertype:"string"`
	AdvancePaymentCurrency domain.Currency        `json:"advance_payment_currency" binding:"omitempty,enum"`
	AdvancePaymentType     domain.PaymentType     `json:"advance_payment_type" binding:"omitempty,enum"`
}

func (r CreateOrderRequest) ToDomain() domain.NewOrder {
	return domain.NewOrder{
		OrderType:              r.OrderType,
		Product:                r.Product,
		SupplierCountry:        r.SupplierCountry,
		OrderedQuantity:        r.OrderedQuantity,
		CostPerUnit:            decimalOrZero(r.CostPerUnit),
		CostTotal:              r.CostTotal,
		OrderIsPaid:            r.OrderIsPaid,
		OrderPaymentCurrency:   r.OrderPaymentCurrency,
		OrderPaymentType:       r.OrderPaymentType,
		CargoIsPaid:            r.CargoIsPaid,
		CargoAmount:            r.CargoAmount,
		CargoCurrency:          r.CargoCurrency,
		CargoPaymentType:       r.CargoPaymentType,
		CargoUnknown:           r.CargoUnknown,
		Customer:               r.Customer,
		AdvancePaymentAmount:   r.AdvancePaymentAmount,
		AdvancePaymentCurrency: r.AdvancePaymentCurrency,
		AdvancePaymentType:     r.AdvancePaymentType,
	}
}

// PaymentRequest is an optional payment override. Every field may be omitted;
// the service fills in the defaults for the action.
type PaymentRequest struct {
	Amount      *decimal.Decimal   `json:"amount" swaggertype:"string"`
	Currency    domain.Currency    `json:"currency" binding:"omitempty,enum"`
	PaymentType domain.PaymentType `json:"payment_type" binding:"omitempty,enum"`
}

func (r PaymentRequest) ToOrderPayment() domain.OrderPaymentInput {
	return domain.OrderPaymentInput{Amount: r.Amount, Currency: r.Currency, PaymentType: r.PaymentType}
}

func (r PaymentRequest) ToCompletion() domain.CompletionInput {
	return domain.CompletionInput{Amount: r.Amount, Currency: r.Currency, PaymentType: r.PaymentType}
}

func (r PaymentRequest) ToRefund() domain.RefundInput {
	return domain.RefundInput{Amount: r.Amount, Currency: r.Currency, PaymentType: r.PaymentType}
}

// MoveToInventoryFromOrderRequest is the operator's choice when an on-demand
// order goes to stock instead of to its customer.
type MoveToInventoryFromOrderRequest struct {
	ReturnAdvance     bool               `json:"return_advance"`
	ReturnPaymentType domain.PaymentType `json:"return_payment_type" binding:"omitempty,enum"`
}

func (r MoveToInventoryFromOrderRequest) ToDomain() domain.MoveToInventoryInput {
	return domain.MoveToInventoryInput{ReturnAdvance: r.ReturnAdvance, ReturnPaymentType: r.ReturnPaymentType}
}
