package filtering

import "github.com/SscSPs/resale_backoffice/internal/core/domain"

func productField(p *domain.ProductRef, get func(*domain.ProductRef) string) string {
	if p == nil {
		return ""
	}
	return get(p)
}

func brandOf(p *domain.ProductRef) string { return p.Brand }
func sizeOf(p *domain.ProductRef) string  { return p.Size }
func colorOf(p *domain.ProductRef) string { return p.Color }

// Orders applies the orders screen filter. Dates come from order_date, then created_at.
func Orders(list []domain.Order, f domain.OrderFilter) []domain.Order {
	return Apply(list, func(o domain.Order) bool {
		return Contains(productField(o.ProductDetail, brandOf), f.Brand) &&
			Contains(productField(o.ProductDetail, sizeOf), f.Size) &&
			Contains(productField(o.ProductDetail, colorOf), f.Color) &&
			Equals(o.OrderType, f.OrderType) &&
			Equals(o.Status, f.Status) &&
			InPeriod(o.OrderDate, o.CreatedAt, f.Year, f.Month)
	})
}

// Sales applies the sales screen filter on sale_date.
func Sales(list []domain.Sale, f domain.SaleFilter) []domain.Sale {
	return Apply(list, func(s domain.Sale) bool {
		return Contains(productField(s.ProductDetail, brandOf), f.Brand) &&
			Contains(productField(s.ProductDetail, sizeOf), f.Size) &&
			Contains(productField(s.ProductDetail, colorOf), f.Color) &&
			Equals(s.Status, f.Status) &&
			InPeriod(s.SaleDate, "", f.Year, f.Month)
	})
}

// Returns applies the returns screen filter on return_date.
func Returns(list []domain.Return, f domain.ReturnFilter) []domain.Return {
	return Apply(list, func(r domain.Return) bool {
		return Contains(productField(r.ProductDetail, brandOf), f.Brand) &&
			Contains(productField(r.ProductDetail, sizeOf), f.Size) &&
			Contains(productField(r.ProductDetail, colorOf), f.Color) &&
			Equals(r.Reason, f.Reason) &&
			InPeriod(r.ReturnDate, "", f.Year, f.Month)
	})
}

// Products applies the products screen filter. Dates come from created_at, then updated_at.
func Products(list []domain.Product, f domain.ProductFilter) []domain.Product {
	return Apply(list, func(p domain.Product) bool {
		return Contains(p.Brand, f.Brand) &&
			Contains(p.Model, f.Model) &&
			Contains(p.Size, f.Size) &&
			Contains(p.Color, f.Color) &&
			Equals(p.SupplierCountry, f.SupplierCountry) &&
			InPeriod(p.CreatedAt, p.UpdatedAt, f.Year, f.Month)
	})
}

// Inventory applies the inventory screen filter. Dates come from created_at, then updated_at.
func Inventory(list []domain.InventoryItem, f domain.InventoryFilter) []domain.InventoryItem {
	return Apply(list, func(i domain.InventoryItem) bool {
		return Contains(productField(i.ProductDetail, brandOf), f.Brand) &&
			Contains(productField(i.ProductDetail, sizeOf), f.Size) &&
			Contains(productField(i.ProductDetail, colorOf), f.Color) &&
			Equals(i.Status, f.Status) &&
			InPeriod(i.CreatedAt, i.UpdatedAt, f.Year, f.Month)
	})
}

// Customers applies the customers screen filter.
func Customers(list []domain.Customer, f domain.CustomerFilter) []domain.Customer {
	return Apply(list, func(c domain.Customer) bool {
		return Contains(c.Name, f.Name)
	})
}
