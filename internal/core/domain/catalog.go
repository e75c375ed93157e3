package domain

import "encoding/json"

// Product is a catalog entry (one brand/model/size/color combination).
type Product struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Brand           string          `json:"brand"`
	Model           string          `json:"model"`
	Size            string          `json:"size"`
	Color           string          `json:"color"`
	SupplierCountry SupplierCountry `json:"supplier_country"`
	CostPrice       Amount          `json:"cost_price"`
	SellingPrice    Amount          `json:"selling_price"`
	CreatedAt       string          `json:"created_at,omitempty"`
	UpdatedAt       string          `json:"updated_at,omitempty"`
}

// ProductInput is a product as submitted for create or update.
type ProductInput struct {
	Name            string          `json:"name"`
	Brand           string          `json:"brand"`
	Model           string          `json:"model"`
	Size            string          `json:"size"`
	Color           string          `json:"color"`
	SupplierCountry SupplierCountry `json:"supplier_country"`
	CostPrice       Amount          `json:"cost_price"`
	SellingPrice    Amount          `json:"selling_price"`
}

// ProductFilter narrows the products screen.
type ProductFilter struct {
	Brand           string          `json:"brand,omitempty"`
	Model           string          `json:"model,omitempty"`
	Size            string          `json:"size,omitempty"`
	Color           string          `json:"color,omitempty"`
	SupplierCountry SupplierCountry `json:"supplier_country,omitempty"`
	Year            int             `json:"year,omitempty"`
	Month           int             `json:"month,omitempty"`
}

// InventoryItem is a quantity of one product held somewhere.
type InventoryItem struct {
	ID            int64           `json:"id"`
	Product       int64           `json:"product"`
	ProductDetail *ProductRef     `json:"product_detail,omitempty"`
	Quantity      int             `json:"quantity"`
	Status        InventoryStatus `json:"status"`
	Location      string          `json:"location,omitempty"`
	CreatedAt     string          `json:"created_at,omitempty"`
	UpdatedAt     string          `json:"updated_at,omitempty"`
}

// InventoryInput is a new inventory item.
type InventoryInput struct {
	Product  int64           `json:"product"`
	Quantity int             `json:"quantity"`
	Status   InventoryStatus `json:"status"`
	Location string          `json:"location"`
}

// InventoryFilter narrows the inventory screen.
type InventoryFilter struct {
	Brand  string          `json:"brand,omitempty"`
	Size   string          `json:"size,omitempty"`
	Color  string          `json:"color,omitempty"`
	Status InventoryStatus `json:"status,omitempty"`
	Year   int             `json:"year,omitempty"`
	Month  int             `json:"month,omitempty"`
}

// AvailableQuantity sums the in-stock quantity of product across items.
func AvailableQuantity(items []InventoryItem, product int64) int {
	total := 0
	for _, item := range items {
		if item.Product == product && item.Status == InventoryInStock {
			total += item.Quantity
		}
	}
	return total
}

// Customer is a buyer.
type Customer struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Telephone  string `json:"telephone"`
	Instagram  string `json:"instagram,omitempty"`
	Region     Region `json:"region"`
	Notes      string `json:"notes,omitempty"`
	SalesCount int    `json:"sales_count"`
}

// CustomerInput is a customer as submitted for create or update.
type CustomerInput struct {
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
	Instagram string `json:"instagram"`
	Region    Region `json:"region"`
	Notes     string `json:"notes"`
}

// CustomerFilter narrows the customers screen.
type CustomerFilter struct {
	Name string `json:"name,omitempty"`
}

// CustomerHistory is the backend's purchase and payment history for one customer.
type CustomerHistory struct {
	Customer                 json.RawMessage `json:"customer,omitempty"`
	Sales                    json.RawMessage `json:"sales,omitempty"`
	Orders                   json.RawMessage `json:"orders,omitempty"`
	BalanceTransactions      json.RawMessage `json:"balance_transactions,omitempty"`
	OrderBalanceTransactions json.RawMessage `json:"order_balance_transactions,omitempty"`
	Summary                  json.RawMessage `json:"summary,omitempty"`
}

// Worker is a staff member paid through finance records.
type Worker struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
	Notes     string `json:"notes,omitempty"`
}

// WorkerInput is a worker as submitted for create or update.
type WorkerInput struct {
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
	Notes     string `json:"notes"`
}

// WorkerPerformance and WorkerTransactions are passed through from the backend.
type WorkerPerformance = json.RawMessage
type WorkerTransactions = json.RawMessage

// AuditLog is one status change recorded by the backend.
type AuditLog struct {
	ID              int64           `json:"id"`
	ObjectType      AuditObjectType `json:"object_type"`
	ObjectID        int64           `json:"object_id"`
	PreviousStatus  string          `json:"previous_status,omitempty"`
	NewStatus       string          `json:"new_status,omitempty"`
	ChangedByDetail *UserRef        `json:"changed_by_detail,omitempty"`
	Timestamp       string          `json:"timestamp,omitempty"`
}

// AuditLogFilter is sent to the backend as query parameters.
type AuditLogFilter struct {
	ObjectType AuditObjectType `json:"object_type,omitempty"`
	ObjectID   string          `json:"object_id,omitempty"`
}

// DashboardStats is the backend's dashboard payload, passed through unchanged.
type DashboardStats = json.RawMessage

// Period selects one month of one year.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}
