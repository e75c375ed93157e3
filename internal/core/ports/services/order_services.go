package services

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// OrderReaderSvc defines read operations for the orders screen
type OrderReaderSvc interface {
	LoadOrders(ctx context.Context, filter domain.OrderFilter) (domain.OrderSnapshot, error)
}

// OrderWriterSvc defines the order actions. Every action is checked against the
// order's current transition table before anything is sent.
type OrderWriterSvc interface {
	CreateOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error)
	MarkReceived(ctx context.Context, orderID int64) error
	MarkReceivedAndPay(ctx context.Context, orderID int64, payment domain.OrderPaymentInput) error
	MoveToInventory(ctx context.Context, orderID int64) error
	MoveToInventoryAndPay(ctx context.Context, orderID int64, payment domain.OrderPaymentInput) error
	PayOrder(ctx context.Context, orderID int64, payment domain.OrderPaymentInput) error
	PayCargo(ctx context.Context, orderID int64, payment domain.OrderPaymentInput) error
	SellProduct(ctx context.Context, orderID int64) (string, error)
	MoveToInventoryFromOrder(ctx context.Context, orderID int64, in domain.MoveToInventoryInput) error
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
