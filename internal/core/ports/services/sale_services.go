package services

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// SaleReaderSvc defines read operations for the sales screen
type SaleReaderSvc interface {
	LoadSales(ctx context.Context, filter domain.SaleFilter) (domain.SaleSnapshot, error)

	// CompletionDefaults returns the prefilled complete-from-order form for a sale.
	CompletionDefaults(ctx context.Context, saleID int64) (domain.FromOrderCompletion, error)
}

// SaleWriterSvc defines the sale actions
type SaleWriterSvc interface {
	CreateSale(ctx context.Context, in domain.NewSale) (*domain.Sale, error)
	Confirm(ctx context.Context, saleID int64) error
	Dispatch(ctx context.Context, saleID int64, in domain.DispatchInput) error
	Complete(ctx context.Context, saleID int64, in domain.CompletionInput) error
	CompleteFromOrder(ctx context.Context, saleID int64, form domain.FromOrderCompletion) error
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}

// ReturnSvc manages customer returns and refunds.
type ReturnSvc interface {
	LoadReturns(ctx context.Context, filter domain.ReturnFilter) (domain.ReturnSnapshot, error)
	CreateReturn(ctx context.Context, in domain.NewReturn) (*domain.Return, error)
	MarkRefunded(ctx context.Context, returnID int64, in domain.RefundInput) error
}
