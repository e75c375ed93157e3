package domain

import "github.com/shopspring/decimal"

// Sale is a sale of one product line to a customer.
type Sale struct {
	ID                     int64       `json:"id"`
	Product                int64       `json:"product"`
	ProductDetail          *ProductRef `json:"product_detail,omitempty"`
	Quantity               int         `json:"quantity"`
	SellingPrice           Amount      `json:"selling_price"`
	TotalAmount            Amount      `json:"total_amount"`
	SaleCurrency           Currency    `json:"sale_currency,omitempty"`
	SaleType               SaleType    `json:"sale_type"`
	PackageType            PackageType `json:"package_type,omitempty"`
	PackageCost            Amount      `json:"package_cost"`
	Customer               *int64      `json:"customer,omitempty"`
	CustomerDetail         *PartyRef   `json:"customer_detail,omitempty"`
	OrderDetail            *SaleOrder  `json:"order_detail,omitempty"`
	AdvancePaymentReceived Amount      `json:"advance_payment_received"`
	PaymentCurrency        Currency    `json:"payment_currency,omitempty"`
	PaymentType            PaymentType `json:"payment_type,omitempty"`
	Status                 SaleStatus  `json:"status"`
	SaleDate               string      `json:"sale_date,omitempty"`
	SalesmanDetail         *UserRef    `json:"salesman_detail,omitempty"`
}

// SaleOrder is the order summary embedded in a from_order sale.
type SaleOrder struct {
	ID       int64  `json:"id"`
	Customer *int64 `json:"customer,omitempty"`
}

// Gross returns selling_price x quantity. An unparsable price counts as zero.
func (s Sale) Gross() decimal.Decimal {
	return s.SellingPrice.OrZero().Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// CurrencyOrDefault returns the sale currency, USD when unset.
func (s Sale) CurrencyOrDefault() Currency {
	if s.SaleCurrency.Valid() {
		return s.SaleCurrency
	}
	return USD
}

// CustomerRef returns the sale's customer, falling back to the originating order's.
func (s Sale) CustomerRef() *int64 {
	if s.Customer != nil {
		return s.Customer
	}
	if s.OrderDetail != nil {
		return s.OrderDetail.Customer
	}
	return nil
}

// SaleAction is a status transition offered on a sale row.
type SaleAction string

const (
	SaleActionConfirm           SaleAction = "confirm"
	SaleActionDispatch          SaleAction = "dispatch"
	SaleActionComplete          SaleAction = "complete"
	SaleActionCompleteFromOrder SaleAction = "complete_from_order"
)

// AvailableActions is the sale transition table.
func (s Sale) AvailableActions() []SaleAction {
	switch s.Status {
	case SalePending:
		if s.SaleType == SaleFromOrder {
			return []SaleAction{SaleActionCompleteFromOrder}
		}
		return []SaleAction{SaleActionConfirm}
	case SaleConfirmed:
		switch s.SaleType {
		case SaleDelivery:
			return []SaleAction{SaleActionDispatch}
		case SaleBoughtFromShop:
			return []SaleAction{SaleActionComplete}
		}
	case SaleDispatched:
		return []SaleAction{SaleActionComplete}
	}
	return nil
}

// Allows reports whether a is currently offered for s.
func (s Sale) Allows(a SaleAction) bool {
	for _, offered := range s.AvailableActions() {
		if offered == a {
			return true
		}
	}
	return false
}

// SaleRow is a sale with its offered actions.
type SaleRow struct {
	Sale
	Actions []SaleAction `json:"actions"`
}

// SaleFilter narrows the sales screen.
type SaleFilter struct {
	Brand  string     `json:"brand,omitempty"`
	Size   string     `json:"size,omitempty"`
	Color  string     `json:"color,omitempty"`
	Status SaleStatus `json:"status,omitempty"`
	Year   int        `json:"year,omitempty"`
	Month  int        `json:"month,omitempty"`
}

// NewSale is a sale as submitted by the operator.
type NewSale struct {
	Product      int64
	Quantity     int
	SellingPrice decimal.Decimal
	SaleCurrency Currency
	SaleType     SaleType
	PackageType  PackageType
	Customer     *int64
}

// CompletionInput is the payment recorded when a sale is completed.
// A nil Amount defaults to selling_price x quantity.
type CompletionInput struct {
	Amount      *decimal.Decimal
	Currency    Currency
	PaymentType PaymentType
}

// FromOrderCompletion is the form for completing a from_order sale.
type FromOrderCompletion struct {
	Customer        *int64          `json:"customer"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	NowPaidAmount   decimal.Decimal `json:"now_paid_amount"`
	NowPaidCurrency Currency        `json:"now_paid_currency"`
	NowPaidType     PaymentType     `json:"now_paid_type"`
}

// DispatchInput is the delivery leg entered when a delivery sale goes out.
type DispatchInput struct {
	DispatchType   DispatchType
	DeliveryCost   decimal.Decimal
	Currency       Currency
	PaymentType    PaymentType
	IsPaid         bool
	TrackingNumber string
}

// Dispatch is the delivery record created for a dispatched sale.
type Dispatch struct {
	ID                  int64        `json:"id,omitempty"`
	Sale                int64        `json:"sale"`
	DispatchType        DispatchType `json:"dispatch_type"`
	IsPaid              bool         `json:"is_paid"`
	DeliveryCost        Amount       `json:"delivery_cost"`
	DeliveryCostUZS     Amount       `json:"delivery_cost_uzs"`
	DeliveryPaymentCash Amount       `json:"delivery_payment_cash"`
	DeliveryPaymentCard Amount       `json:"delivery_payment_card"`
	TrackingNumber      string       `json:"tracking_number"`
	Status              SaleStatus   `json:"status"`
}

// SaleSnapshot is everything the sales screen shows after one load.
type SaleSnapshot struct {
	Sales []SaleRow `json:"sales"`
	Total int       `json:"total"`
}
