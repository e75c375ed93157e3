package domain

// Currency is one of the two currencies the business books in.
type Currency string

const (
	USD Currency = "USD"
	UZS Currency = "UZS"
)

// Currencies lists every supported currency in display order.
var Currencies = []Currency{USD, UZS}

func (c Currency) Valid() bool {
	return c == USD || c == UZS
}

// PaymentType says whether money moved as cash or by card.
type PaymentType string

const (
	Cash PaymentType = "cash"
	Card PaymentType = "card"
)

func (p PaymentType) Valid() bool {
	return p == Cash || p == Card
}

// RecordType distinguishes income from expense finance records.
type RecordType string

const (
	Income  RecordType = "income"
	Expense RecordType = "expense"
)

func (r RecordType) Valid() bool {
	return r == Income || r == Expense
}

// ExpenseType classifies expense records.
type ExpenseType string

const (
	ExpenseSalary         ExpenseType = "salary"
	ExpenseLunch          ExpenseType = "lunch"
	ExpenseTaxi           ExpenseType = "taxi"
	ExpenseOfficeSupplies ExpenseType = "office_supplies"
	ExpenseRent           ExpenseType = "rent"
	ExpenseDelivery       ExpenseType = "delivery"
	ExpenseCargo          ExpenseType = "cargo"
	ExpenseUtilities      ExpenseType = "utilities"
	ExpenseOther          ExpenseType = "other"
)

func (e ExpenseType) Valid() bool {
	switch e {
	case ExpenseSalary, ExpenseLunch, ExpenseTaxi, ExpenseOfficeSupplies, ExpenseRent,
		ExpenseDelivery, ExpenseCargo, ExpenseUtilities, ExpenseOther:
		return true
	}
	return false
}

// RecordStatus is the lifecycle state of a finance record.
type RecordStatus string

const (
	RecordPending   RecordStatus = "pending"
	RecordCompleted RecordStatus = "completed"
	RecordCancelled RecordStatus = "cancelled"
)

func (s RecordStatus) Valid() bool {
	return s == RecordPending || s == RecordCompleted || s == RecordCancelled
}

// LedgerStatus is the state of a receivable or payable.
type LedgerStatus string

const (
	LedgerPending   LedgerStatus = "pending"
	LedgerPaid      LedgerStatus = "paid"
	LedgerOverdue   LedgerStatus = "overdue"
	LedgerCancelled LedgerStatus = "cancelled"
)

func (s LedgerStatus) Valid() bool {
	switch s {
	case LedgerPending, LedgerPaid, LedgerOverdue, LedgerCancelled:
		return true
	}
	return false
}

// BalanceType names one of the four cash balances, one per currency and payment type.
type BalanceType string

const (
	USDCash BalanceType = "usd_cash"
	UZSCash BalanceType = "uzs_cash"
	USDCard BalanceType = "usd_card"
	UZSCard BalanceType = "uzs_card"
)

// BalanceTypes lists the four balances in their fixed order.
var BalanceTypes = [4]BalanceType{USDCash, UZSCash, USDCard, UZSCard}

// Index returns the slot of b in BalanceTypes, or -1 for an unknown value.
func (b BalanceType) Index() int {
	for i, t := range BalanceTypes {
		if t == b {
			return i
		}
	}
	return -1
}

func (b BalanceType) Valid() bool {
	return b.Index() >= 0
}

// Currency returns the currency the balance is held in.
func (b BalanceType) Currency() Currency {
	switch b {
	case USDCash, USDCard:
		return USD
	case UZSCash, UZSCard:
		return UZS
	}
	return ""
}

// PaymentType returns whether the balance is cash or card.
func (b BalanceType) PaymentType() PaymentType {
	switch b {
	case USDCash, UZSCash:
		return Cash
	case USDCard, UZSCard:
		return Card
	}
	return ""
}

// BalanceTypeFor returns the balance holding money of the given currency and payment type.
func BalanceTypeFor(c Currency, p PaymentType) BalanceType {
	for _, t := range BalanceTypes {
		if t.Currency() == c && t.PaymentType() == p {
			return t
		}
	}
	return ""
}

// Operation is the direction of a manual balance adjustment.
type Operation string

const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
)

func (o Operation) Valid() bool {
	return o == OperationAdd || o == OperationSubtract
}

// TransactionType classifies balance transactions. The backend may add more kinds.
type TransactionType string

const (
	TxManualAdjustment TransactionType = "manual_adjustment"
	TxSaleIncome       TransactionType = "sale_income"
	TxOrderExpense     TransactionType = "order_expense"
	TxCargoExpense     TransactionType = "cargo_expense"
	TxDeliveryExpense  TransactionType = "delivery_expense"
	TxOtherExpense     TransactionType = "other_expense"
	TxOtherIncome      TransactionType = "other_income"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TxManualAdjustment, TxSaleIncome, TxOrderExpense, TxCargoExpense,
		TxDeliveryExpense, TxOtherExpense, TxOtherIncome:
		return true
	}
	return false
}

// OrderType separates stock purchases from orders placed for a specific customer.
type OrderType string

const (
	OrderStock    OrderType = "stock"
	OrderOnDemand OrderType = "on_demand"
)

func (t OrderType) Valid() bool {
	return t == OrderStock || t == OrderOnDemand
}

// OrderStatus is the position of an order in ordered -> received -> in_inventory.
type OrderStatus string

const (
	OrderOrdered     OrderStatus = "ordered"
	OrderReceived    OrderStatus = "received"
	OrderInInventory OrderStatus = "in_inventory"
)

func (s OrderStatus) Valid() bool {
	return s == OrderOrdered || s == OrderReceived || s == OrderInInventory
}

// SupplierCountry is where stock is bought from.
type SupplierCountry string

const (
	SupplierGermany SupplierCountry = "germany"
	SupplierJapan   SupplierCountry = "japan"
	SupplierKorea   SupplierCountry = "korea"
)

func (s SupplierCountry) Valid() bool {
	return s == SupplierGermany || s == SupplierJapan || s == SupplierKorea
}

// SaleType says how a sale reaches the customer.
type SaleType string

const (
	SaleBoughtFromShop SaleType = "bought_from_shop"
	SaleDelivery       SaleType = "delivery"
	SaleFromOrder      SaleType = "from_order"
)

func (t SaleType) Valid() bool {
	return t == SaleBoughtFromShop || t == SaleDelivery || t == SaleFromOrder
}

// SaleStatus is the position of a sale in pending -> confirmed -> dispatched/completed.
type SaleStatus string

const (
	SalePending    SaleStatus = "pending"
	SaleConfirmed  SaleStatus = "confirmed"
	SaleDispatched SaleStatus = "dispatched"
	SaleCompleted  SaleStatus = "completed"
)

func (s SaleStatus) Valid() bool {
	switch s {
	case SalePending, SaleConfirmed, SaleDispatched, SaleCompleted:
		return true
	}
	return false
}

// DispatchType is the courier used for a delivery.
type DispatchType string

const (
	DispatchDostavshik DispatchType = "dostavshik"
	DispatchBTS        DispatchType = "bts"
)

func (d DispatchType) Valid() bool {
	return d == DispatchDostavshik || d == DispatchBTS
}

// RefundStatus tracks whether a return has been paid back.
type RefundStatus string

const (
	NotRefunded RefundStatus = "not_refunded"
	Refunded    RefundStatus = "refunded"
)

func (s RefundStatus) Valid() bool {
	return s == NotRefunded || s == Refunded
}

// ReturnReason explains why goods came back.
type ReturnReason string

const (
	ReasonDefective       ReturnReason = "defective"
	ReasonWrongSize       ReturnReason = "wrong_size"
	ReasonWrongItem       ReturnReason = "wrong_item"
	ReasonCustomerRequest ReturnReason = "customer_request"
)

func (r ReturnReason) Valid() bool {
	switch r {
	case ReasonDefective, ReasonWrongSize, ReasonWrongItem, ReasonCustomerRequest:
		return true
	}
	return false
}

// PackageType is the box size used for shipping.
type PackageType string

const (
	PackageM PackageType = "M"
	PackageL PackageType = "L"
)

// PackageTypes lists the package sizes that must always have a stock row.
var PackageTypes = []PackageType{PackageM, PackageL}

func (p PackageType) Valid() bool {
	return p == PackageM || p == PackageL
}

// PackageHistoryStatus is the state of one restock event.
type PackageHistoryStatus string

const (
	PackageHistoryOrdered  PackageHistoryStatus = "ordered"
	PackageHistoryReceived PackageHistoryStatus = "received"
	PackageHistoryPaid     PackageHistoryStatus = "paid"
)

func (s PackageHistoryStatus) Valid() bool {
	return s == PackageHistoryOrdered || s == PackageHistoryReceived || s == PackageHistoryPaid
}

// InventoryStatus is the state of an inventory item. The backend may add more.
type InventoryStatus string

const (
	InventoryInStock  InventoryStatus = "in_inventory"
	InventoryReserved InventoryStatus = "reserved"
	InventorySold     InventoryStatus = "sold"
	InventoryReturned InventoryStatus = "returned"
)

func (s InventoryStatus) Valid() bool {
	switch s {
	case InventoryInStock, InventoryReserved, InventorySold, InventoryReturned:
		return true
	}
	return false
}

// Region is a customer's home region.
type Region string

// Regions lists the accepted customer regions.
var Regions = []Region{
	"andijan", "bukhara", "fergana", "jizzakh", "kashkadarya", "khorezm", "namangan",
	"navoi", "samarkand", "surkhandarya", "syrdarya", "tashkent_region", "karakalpakstan",
	"tashkent_city",
}

// DefaultRegion is used when a customer is created without one.
const DefaultRegion Region = "tashkent_city"

func (r Region) Valid() bool {
	for _, known := range Regions {
		if r == known {
			return true
		}
	}
	return false
}

// AuditObjectType is the kind of entity an audit log entry is about.
type AuditObjectType string

const (
	AuditOrder         AuditObjectType = "order"
	AuditInventoryItem AuditObjectType = "inventory_item"
	AuditSale          AuditObjectType = "sale"
	AuditDispatch      AuditObjectType = "dispatch"
)

func (t AuditObjectType) Valid() bool {
	switch t {
	case AuditOrder, AuditInventoryItem, AuditSale, AuditDispatch:
		return true
	}
	return false
}
