package domain

// Wire bodies sent to the upstream backend. Optional fields are pointers or
// carry omitempty so that an unset value is absent rather than zero.

// CashBalanceCreate creates a missing balance row. A new row always starts at
// zero, sent as a JSON number.
type CashBalanceCreate struct {
	BalanceType BalanceType `json:"balance_type"`
	Balance     int         `json:"balance"`
}

// AdjustRequest is the body of POST /cash-balance/{id}/adjust/.
type AdjustRequest struct {
	Amount    Amount    `json:"amount"`
	Operation Operation `json:"operation"`
	Notes     string    `json:"notes"`
}

// ExpenseRequest is the body of POST /finance/ for a manual expense.
type ExpenseRequest struct {
	RecordType  RecordType   `json:"record_type"`
	ExpenseType ExpenseType  `json:"expense_type"`
	Amount      Amount       `json:"amount"`
	Currency    Currency     `json:"currency"`
	PaymentType PaymentType  `json:"payment_type"`
	Recipient   *int64       `json:"recipient"`
	Notes       string       `json:"notes"`
	Status      RecordStatus `json:"status"`
}

// OrderCreateRequest is the body of POST /orders/.
type OrderCreateRequest struct {
	OrderType              OrderType       `json:"order_type"`
	Product                int64           `json:"product"`
	SupplierCountry        SupplierCountry `json:"supplier_country"`
	OrderedQuantity        int             `json:"ordered_quantity"`
	CostPerUnit            Amount          `json:"cost_per_unit"`
	CostTotal              Amount          `json:"cost_total"`
	OrderIsPaid            bool            `json:"order_is_paid"`
	OrderPaymentCurrency   Currency        `json:"order_payment_currency"`
	OrderPaymentType       PaymentType     `json:"order_payment_type"`
	CargoIsPaid            bool            `json:"cargo_is_paid"`
	CargoAmount            *Amount         `json:"cargo_amount,omitempty"`
	CargoCurrency          Currency        `json:"cargo_currency"`
	CargoPaymentType       PaymentType     `json:"cargo_payment_type"`
	CargoUnknown           bool            `json:"cargo_unknown"`
	Customer               *int64          `json:"customer,omitempty"`
	AdvancePaymentAmount   *Amount         `json:"advance_payment_amount,omitempty"`
	AdvancePaymentCurrency Currency        `json:"advance_payment_currency"`
	AdvancePaymentType     PaymentType     `json:"advance_payment_type"`
	Status                 OrderStatus     `json:"status"`
}

// OrderStatusUpdate is the body of POST /orders/{id}/update_status/. The payment
// fields are only present on the combined status-and-pay flows.
type OrderStatusUpdate struct {
	Status               OrderStatus `json:"status"`
	OrderPaymentAmount   *Amount     `json:"order_payment_amount,omitempty"`
	OrderPaymentCurrency Currency    `json:"order_payment_currency,omitempty"`
	OrderPaymentType     PaymentType `json:"order_payment_type,omitempty"`
	OrderIsPaid          *bool       `json:"order_is_paid,omitempty"`
}

// OrderPaymentRequest is the body of POST /orders/{id}/pay_order/.
type OrderPaymentRequest struct {
	OrderPaymentAmount   Amount      `json:"order_payment_amount"`
	OrderPaymentCurrency Currency    `json:"order_payment_currency"`
	OrderPaymentType     PaymentType `json:"order_payment_type"`
}

// CargoPaymentRequest is the body of POST /orders/{id}/pay_cargo/.
type CargoPaymentRequest struct {
	CargoAmount      Amount      `json:"cargo_amount"`
	CargoCurrency    Currency    `json:"cargo_currency"`
	CargoPaymentType PaymentType `json:"cargo_payment_type"`
}

// MoveFromOrderRequest is the body of POST /orders/{id}/move_to_inventory_from_order/.
type MoveFromOrderRequest struct {
	ReturnAdvance     bool        `json:"return_advance"`
	ReturnPaymentType PaymentType `json:"return_payment_type,omitempty"`
}

// SaleCreateRequest is the body of POST /sales/.
type SaleCreateRequest struct {
	Product      int64       `json:"product"`
	Quantity     int         `json:"quantity"`
	SellingPrice Amount      `json:"selling_price"`
	SaleCurrency Currency    `json:"sale_currency"`
	SaleType     SaleType    `json:"sale_type"`
	PackageType  PackageType `json:"package_type,omitempty"`
	Customer     *int64      `json:"customer,omitempty"`
	Status       SaleStatus  `json:"status"`
}

// SaleStatusUpdate is the body of POST /sales/{id}/update_status/.
type SaleStatusUpdate struct {
	Status          SaleStatus  `json:"status"`
	PaymentCurrency Currency    `json:"payment_currency,omitempty"`
	PaymentAmount   *Amount     `json:"payment_amount,omitempty"`
	PaymentType     PaymentType `json:"payment_type,omitempty"`
}

// CompleteFromOrderRequest is the body of POST /sales/{id}/complete_from_order/.
type CompleteFromOrderRequest struct {
	Customer        *int64      `json:"customer"`
	SellingPrice    Amount      `json:"selling_price"`
	NowPaidAmount   Amount      `json:"now_paid_amount"`
	NowPaidCurrency Currency    `json:"now_paid_currency"`
	NowPaidType     PaymentType `json:"now_paid_type"`
}

// ReturnCreateRequest is the body of POST /returns/.
type ReturnCreateRequest struct {
	Product  int64        `json:"product"`
	Sale     *int64       `json:"sale,omitempty"`
	Quantity int          `json:"quantity"`
	Reason   ReturnReason `json:"reason"`
	Notes    string       `json:"notes"`
}

// RefundRequest is the body of POST /returns/{id}/mark_refunded/.
type RefundRequest struct {
	RefundAmount      Amount      `json:"refund_amount"`
	RefundCurrency    Currency    `json:"refund_currency"`
	RefundPaymentType PaymentType `json:"refund_payment_type"`
}

// PackageWrite is the body of POST /packages/ and PUT /packages/{id}/.
type PackageWrite struct {
	PackageType     PackageType `json:"package_type"`
	Quantity        int         `json:"quantity"`
	CostPerUnit     Amount      `json:"cost_per_unit"`
	IsPaid          bool        `json:"is_paid"`
	PaymentAmount   *Amount     `json:"payment_amount,omitempty"`
	PaymentCurrency Currency    `json:"payment_currency,omitempty"`
	PaymentType     PaymentType `json:"payment_type,omitempty"`
}

// ReceiveAndPayRequest is the body of POST /package-history/{id}/mark_received_and_pay/.
type ReceiveAndPayRequest struct {
	QuantityReceived int         `json:"quantity_received"`
	PaymentAmount    Amount      `json:"payment_amount"`
	PaymentCurrency  Currency    `json:"payment_currency"`
	PaymentType      PaymentType `json:"payment_type"`
}
