package dto

import (
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductFilterParams defines query parameters for the products screen.
type ProductFilterParams struct {
	Brand           string                 `form:"brand"`
	Model           string                 `form:"model"`
	Size            string                 `form:"size"`
	Color           string                 `form:"color"`
	SupplierCountry domain.SupplierCountry `form:"supplier_country" binding:"omitempty,enum"`
	PeriodParams
}

func (p ProductFilterParams) ToDomain() domain.ProductFilter {
	return domain.ProductFilter{
		Brand:           p.Brand,
		Model:           p.Model,
		Size:            p.Size,
		Color:           p.Color,
		SupplierCountry: p.SupplierCountry,
		Year:            p.Year,
		Month:           p.Month,
	}
}

// ProductRequest is a product as submitted for create or update.
type ProductRequest struct {
	Name            string                 `json:"name"`
	Brand           string                 `json:"brand" binding:"required"`
	Model           string                 `json:"model" binding:"required"`
	Size            string                 `json:"size"`
	Color           string                 `json:"color"`
	SupplierCountry domain.SupplierCountry `json:"supplier_country" binding:"omitempty,enum"`
	CostPrice       *decimal.Decimal       `json:"cost_price" swaggertype:"string"`
	SellingPrice    *decimal.Decimal       `json:"selling_price" swaggertype:"string"`
}

func (r ProductRequest) ToDomain() domain.ProductInput {
	in := domain.ProductInput{
		Name:            r.Name,
		Brand:           r.Brand,
		Model:           r.Model,
		Size:            r.Size,
		Color:           r.Color,
		SupplierCountry: r.SupplierCountry,
	}
	if r.CostPrice != nil {
		in.CostPrice = domain.NewAmount(*r.CostPrice)
	}
	if r.SellingPrice != nil {
		in.SellingPrice = domain.NewAmount(*r.SellingPrice)
	}
	return in
}

// InventoryFilterParams defines query parameters for the inventory screen.
type InventoryFilterParams struct {
	Brand  string                 `form:"brand"`
	Size   string                 `form:"size"`
	Color  string                 `form:"color"`
	Status domain.InventoryStatus `form:"status" binding:"omitempty,enum"`
	PeriodParams
}

func (p InventoryFilterParams) ToDomain() domain.InventoryFilter {
	return domain.InventoryFilter{
		Brand:  p.Brand,
		Size:   p.Size,
		Color:  p.Color,
		Status: p.Status,
		Year:   p.Year,
		Month:  p.Month,
	}
}

// InventoryRequest puts a quantity of a product into inventory.
type InventoryRequest struct {
	Product  int64                  `json:"product" binding:"required,gt=0"`
	Quantity int                    `json:"quantity" binding:"required,gt=0"`
	Status   domain.InventoryStatus `json:"status" binding:"omitempty,enum"`
	Location string                 `json:"location"`
}

func (r InventoryRequest) ToDomain() domain.InventoryInput {
	return domain.InventoryInput{Product: r.Product, Quantity: r.Quantity, Status: r.Status, Location: r.Location}
}

// CustomerFilterParams defines query parameters for the customers screen.
type CustomerFilterParams struct {
	Name string `form:"name"`
}

func (p CustomerFilterParams) ToDomain() domain.CustomerFilter {
	return domain.CustomerFilter{Name: p.Name}
}

// CustomerRequest is a customer as submitted for create or update.
type CustomerRequest struct {
	Name      string        `json:"name" binding:"required"`
	Telephone string        `json:"telephone"`
	Instagram string        `json:"instagram"`
	Region    domain.Region `json:"region" binding:"omitempty,enum"`
	Notes     string        `json:"notes"`
}

func (r CustomerRequest) ToDomain() domain.CustomerInput {
	return domain.CustomerInput{
		Name:      r.Name,
		Telephone: r.Telephone,
		Instagram: r.Instagram,
		Region:    r.Region,
		Notes:     r.Notes,
	}
}

// WorkerRequest is a worker as submitted for create or update.
type WorkerRequest struct {
	Name      string `json:"name" binding:"required"`
	Telephone string `json:"telephone"`
	Notes     string `json:"notes"`
}

func (r WorkerRequest) ToDomain() domain.WorkerInput {
	return domain.WorkerInput{Name: r.Name, Telephone: r.Telephone, Notes: r.Notes}
}

// WorkerPerformanceParams selects the month a worker's performance is computed for.
type WorkerPerformanceParams struct {
	Year  int `form:"year" binding:"required,min=1"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

func (p WorkerPerformanceParams) ToDomain() domain.Period {
	return domain.Period{Year: p.Year, Month: p.Month}
}

// AuditLogParams defines query parameters for the audit log screen.
type AuditLogParams struct {
	ObjectType domain.AuditObjectType `form:"object_type" binding:"omitempty,enum"`
	ObjectID   string                 `form:"object_id"`
}

func (p AuditLogParams) ToDomain() domain.AuditLogFilter {
	return domain.AuditLogFilter{ObjectType: p.ObjectType, ObjectID: p.ObjectID}
}
