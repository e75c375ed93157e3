package domain

import "github.com/shopspring/decimal"

// Order is a purchase from a supplier, either for stock or for a waiting customer.
type Order struct {
	ID                     int64           `json:"id"`
	OrderType              OrderType       `json:"order_type"`
	Product                int64           `json:"product"`
	ProductDetail          *ProductRef     `json:"product_detail,omitempty"`
	SupplierCountry        SupplierCountry `json:"supplier_country,omitempty"`
	OrderedQuantity        int             `json:"ordered_quantity"`
	CostPerUnit            Amount          `json:"cost_per_unit"`
	CostTotal              Amount          `json:"cost_total"`
	OrderIsPaid            bool            `json:"order_is_paid"`
	OrderPaymentCurrency   Currency        `json:"order_payment_currency,omitempty"`
	OrderPaymentType       PaymentType     `json:"order_payment_type,omitempty"`
	CargoIsPaid            bool            `json:"cargo_is_paid"`
	CargoCostUSD           Amount          `json:"cargo_cost_usd"`
	CargoCostUZS           Amount          `json:"cargo_cost_uzs"`
	CargoPaymentCurrency   Currency        `json:"cargo_payment_currency,omitempty"`
	Customer               *int64          `json:"customer,omitempty"`
	CustomerDetail         *PartyRef       `json:"customer_detail,omitempty"`
	AdvancePaymentAmount   Amount          `json:"advance_payment_amount"`
	AdvancePaymentCurrency Currency        `json:"advance_payment_currency,omitempty"`
	AdvancePaymentType     PaymentType     `json:"advance_payment_type,omitempty"`
	Status                 OrderStatus     `json:"status"`
	HasSale                bool            `json:"has_sale"`
	OrderDate              string          `json:"order_date,omitempty"`
	CreatedAt              string          `json:"created_at,omitempty"`
	CreatedByDetail        *UserRef        `json:"created_by_detail,omitempty"`
}

// HasAdvance reports whether the customer paid a positive advance on this order.
func (o Order) HasAdvance() bool {
	return o.AdvancePaymentAmount.Positive()
}

// OrderAction is a secondary action offered on an order row.
type OrderAction string

const (
	ActionMarkReceived             OrderAction = "mark_received"
	ActionMarkReceivedAndPay       OrderAction = "mark_received_and_pay"
	ActionMoveToInventory          OrderAction = "move_to_inventory"
	ActionMoveToInventoryAndPay    OrderAction = "move_to_inventory_and_pay"
	ActionPayOrder                 OrderAction = "pay_order"
	ActionPayCargo                 OrderAction = "pay_cargo"
	ActionSellProduct              OrderAction = "sell_product"
	ActionMoveToInventoryFromOrder OrderAction = "move_to_inventory_from_order"
)

func (a OrderAction) Valid() bool {
	switch a {
	case ActionMarkReceived, ActionMarkReceivedAndPay, ActionMoveToInventory,
		ActionMoveToInventoryAndPay, ActionPayOrder, ActionPayCargo,
		ActionSellProduct, ActionMoveToInventoryFromOrder:
		return true
	}
	return false
}

// AvailableActions is the order transition table. Payment actions and status
// actions are independent; the two combined flows pair a status change with a
// payment that is only sent while the order is unpaid.
func (o Order) AvailableActions() []OrderAction {
	var actions []OrderAction
	if o.Status == OrderOrdered {
		actions = append(actions, ActionMarkReceived, ActionMarkReceivedAndPay)
	}
	if o.Status == OrderReceived && o.OrderType == OrderStock {
		actions = append(actions, ActionMoveToInventory, ActionMoveToInventoryAndPay)
	}
	if !o.OrderIsPaid {
		actions = append(actions, ActionPayOrder)
	}
	if !o.CargoIsPaid {
		actions = append(actions, ActionPayCargo)
	}
	if o.OrderType == OrderOnDemand && o.Status == OrderReceived && !o.HasSale {
		actions = append(actions, ActionSellProduct, ActionMoveToInventoryFromOrder)
	}
	return actions
}

// Allows reports whether a is currently offered for o.
func (o Order) Allows(a OrderAction) bool {
	for _, offered := range o.AvailableActions() {
		if offered == a {
			return true
		}
	}
	return false
}

// OrderRow is an order with the actions the console offers for it.
type OrderRow struct {
	Order
	Actions []OrderAction `json:"actions"`
}

// OrderFilter narrows the orders screen.
type OrderFilter struct {
	Brand     string      `json:"brand,omitempty"`
	Size      string      `json:"size,omitempty"`
	Color     string      `json:"color,omitempty"`
	OrderType OrderType   `json:"order_type,omitempty"`
	Status    OrderStatus `json:"status,omitempty"`
	Year      int         `json:"year,omitempty"`
	Month     int         `json:"month,omitempty"`
}

// Payment is an amount paid in one currency by one method.
type Payment struct {
	Amount      decimal.Decimal
	Currency    Currency
	PaymentType PaymentType
}

// OrderPaymentInput is what the operator submits when paying for an order.
// A nil Amount means "use the default".
type OrderPaymentInput struct {
	Amount      *decimal.Decimal
	Currency    Currency
	PaymentType PaymentType
}

// MoveToInventoryInput is the operator's choice when shelving an on-demand order.
type MoveToInventoryInput struct {
	ReturnAdvance     bool
	ReturnPaymentType PaymentType
}

// NewOrder is a new order as submitted by the operator.
type NewOrder struct {
	OrderType              OrderType
	Product                int64
	SupplierCountry        SupplierCountry
	OrderedQuantity        int
	CostPerUnit            decimal.Decimal
	CostTotal              *decimal.Decimal
	OrderIsPaid            bool
	OrderPaymentCurrency   Currency
	OrderPaymentType       PaymentType
	CargoIsPaid            bool
	CargoAmount            *decimal.Decimal
	CargoCurrency          Currency
	CargoPaymentType       PaymentType
	CargoUnknown           bool
	Customer               *int64
	AdvancePaymentAmount   *decimal.Decimal
	AdvancePaymentCurrency Currency
	AdvancePaymentType     PaymentType
}

// OrderSnapshot is everything the orders screen shows after one load.
type OrderSnapshot struct {
	Orders []OrderRow `json:"orders"`
	Total  int        `json:"total"`
}
