package dto

import (
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleFilterParams defines query parameters for the sales screen.
type SaleFilterParams struct {
	Brand  string            `form:"brand"`
	Size   string            `form:"size"`
	Color  string            `form:"color"`
	Status domain.SaleStatus `form:"status" binding:"omitempty,enum"`
	PeriodParams
}

func (p SaleFilterParams) ToDomain() domain.SaleFilter {
	return domain.SaleFilter{
		Brand:  p.Brand,
		Size:   p.Size,
		Color:  p.Color,
		Status: p.Status,
		Year:   p.Year,
		Month:  p.Month,
	}
}

// CreateSaleRequest defines the data needed to record a sale.
type CreateSaleRequest struct {
	Product      int64              `json:"product" binding:"required,gt=0"`
	Quantity     int                `json:"quantity" binding:"required,gt=0"`
	SellingPrice *decimal.Decimal   `json:"selling_price" binding:"required" swaggertype:"string"`
	SaleCurrency domain.Currency    `json:"sale_currency" binding:"omitempty,enum"`
	SaleType     domain.SaleType    `json:"sale_type" binding:"omitempty,enum"`
	PackageType  domain.PackageType `json:"package_type" binding:"omitempty,enum"`
	Customer     *int64             `json:"customer"`
}

func (r CreateSaleRequest) ToDomain() domain.NewSale {
	return domain.NewSale{
		Product:      r.Product,
		Quantity:     r.Quantity,
		SellingPrice: decimalOrZero(r.SellingPrice),
		SaleCurrency: r.SaleCurrency,
		SaleType:     r.SaleType,
		PackageType:  r.PackageType,
		Customer:     r.Customer,
	}
}

// DispatchRequest is the delivery leg of a delivery sale.
type DispatchRequest struct {
	DispatchType   domain.DispatchType `json:"dispatch_type" binding:"omitempty,enum"`
	DeliveryCost   *decimal.Decimal    `json:"delivery_cost" swaggertype:"string"`
	Currency       domain.Currency     `json:"currency" binding:"omitempty,enum"`
	PaymentType    domain.PaymentType  `json:"payment_type" binding:"omitempty,enum"`
	IsPaid         bool                `json:"is_paid"`
	TrackingNumber string              `json:"tracking_number"`
}

func (r DispatchRequest) ToDomain() domain.DispatchInput {
	return domain.DispatchInput{
		DispatchType:   r.DispatchType,
		DeliveryCost:   decimalOrZero(r.DeliveryCost),
		Currency:       r.Currency,
		PaymentType:    r.PaymentType,
		IsPaid:         r.IsPaid,
		TrackingNumber: r.TrackingNumber,
	}
}

// CompleteFromOrderRequest is the submitted complete-from-order form.
// An omitted now_paid_amount counts as nothing paid now.
type CompleteFromOrderRequest struct {
	Customer        *int64             `json:"customer"`
	SellingPrice    *decimal.Decimal   `json:"selling_price" binding:"required" swaggertype:"string"`
	NowPaidAmount   *decimal.Decimal   `json:"now_paid_amount" swaggertype:"string"`
	NowPaidCurrency domain.Currency    `json:"now_paid_currency" binding:"omitempty,enum"`
	NowPaidType     domain.PaymentType `json:"now_paid_type" binding:"omitempty,enum"`
}

func (r CompleteFromOrderRequest) ToDomain() domain.FromOrderCompletion {
	return domain.FromOrderCompletion{
		Customer:        r.Customer,
		SellingPrice:    decimalOrZero(r.SellingPrice),
		NowPaidAmount:   decimalOrZero(r.NowPaidAmount),
		NowPaidCurrency: r.NowPaidCurrency,
		NowPaidType:     r.NowPaidType,
	}
}

// ReturnFilterParams defines query parameters for the returns screen.
type ReturnFilterParams struct {
	Brand  string              `form:"brand"`
	Size   string              `form:"size"`
	Color  string              `form:"color"`
	Reason domain.ReturnReason `form:"reason" binding:"omitempty,enum"`
	PeriodParams
}

func (p ReturnFilterParams) ToDomain() domain.ReturnFilter {
	return domain.ReturnFilter{
		Brand:  p.Brand,
		Size:   p.Size,
		Color:  p.Color,
		Reason: p.Reason,
		Year:   p.Year,
		Month:  p.Month,
	}
}

// CreateReturnRequest records goods brought back by a customer.
type CreateReturnRequest struct {
	Product  int64               `json:"product" binding:"required,gt=0"`
	Sale     *int64              `json:"sale"`
	Quantity int                 `json:"quantity" binding:"required,gt=0"`
	Reason   domain.ReturnReason `json:"reason" binding:"omitempty,enum"`
	Notes    string              `json:"notes"`
}

func (r CreateReturnRequest) ToDomain() domain.NewReturn {
	return domain.NewReturn{
		Product:  r.Product,
		Sale:     r.Sale,
		Quantity: r.Quantity,
		Reason:   r.Reason,
		Notes:    r.Notes,
	}
}
