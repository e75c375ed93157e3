package domain

import "github.com/shopspring/decimal"

// Return is goods brought back by a customer.
type Return struct {
	ID                int64        `json:"id"`
	Product           int64        `json:"product"`
	ProductDetail     *ProductRef  `json:"product_detail,omitempty"`
	Sale              *int64       `json:"sale,omitempty"`
	SaleDetail        *ReturnSale  `json:"sale_detail,omitempty"`
	Quantity          int          `json:"quantity"`
	Reason            ReturnReason `json:"reason"`
	Notes             string       `json:"notes,omitempty"`
	RefundStatus      RefundStatus `json:"refund_status"`
	RefundAmount      Amount       `json:"refund_amount"`
	RefundCurrency    Currency     `json:"refund_currency,omitempty"`
	RefundPaymentType PaymentType  `json:"refund_payment_type,omitempty"`
	ReturnDate        string       `json:"return_date,omitempty"`
	ProcessedByDetail *UserRef     `json:"processed_by_detail,omitempty"`
}

// ReturnSale is the sale summary embedded in a return.
type ReturnSale struct {
	ID           int64    `json:"id"`
	TotalAmount  Amount   `json:"total_amount"`
	SaleCurrency Currency `json:"sale_currency,omitempty"`
}

// CanMarkRefunded reports whether the refund is still outstanding.
func (r Return) CanMarkRefunded() bool {
	return r.RefundStatus == NotRefunded
}

// ReturnRow is a return with a flag for the refund action.
type ReturnRow struct {
	Return
	CanMarkRefunded bool `json:"can_mark_refunded"`
}

// ReturnFilter narrows the returns screen.
type ReturnFilter struct {
	Brand  string       `json:"brand,omitempty"`
	Size   string       `json:"size,omitempty"`
	Color  string       `json:"color,omitempty"`
	Reason ReturnReason `json:"reason,omitempty"`
	Year   int          `json:"year,omitempty"`
	Month  int          `json:"month,omitempty"`
}

// NewReturn is a return as submitted by the operator.
type NewReturn struct {
	Product  int64
	Sale     *int64
	Quantity int
	Reason   ReturnReason
	Notes    string
}

// RefundInput is the refund paid out. A nil Amount defaults to the sale total.
type RefundInput struct {
	Amount      *decimal.Decimal
	Currency    Currency
	PaymentType PaymentType
}

// ReturnSnapshot is everything the returns screen shows after one load.
type ReturnSnapshot struct {
	Returns []ReturnRow `json:"returns"`
	Total   int         `json:"total"`
}
