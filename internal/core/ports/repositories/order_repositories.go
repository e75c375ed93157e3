package repositories

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// OrderReader defines read operations for orders
type OrderReader interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)
}

// OrderWriter defines write operations for orders
type OrderWriter interface {
	CreateOrder(ctx context.Context, req domain.OrderCreateRequest) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, req domain.OrderStatusUpdate) error
	PayOrder(ctx context.Context, orderID int64, req domain.OrderPaymentRequest) error
	PayCargo(ctx context.Context, orderID int64, req domain.CargoPaymentRequest) error

	// SellProduct turns a received on-demand order into a sale and returns the backend's message.
	SellProduct(ctx context.Context, orderID int64) (string, error)

	MoveToInventoryFromOrder(ctx context.Context, orderID int64, req domain.MoveFromOrderRequest) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
