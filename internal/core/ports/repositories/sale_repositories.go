package repositories

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// SaleReader defines read operations for sales
type SaleReader interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
	FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)
}

// SaleWriter defines write operations for sales and their dispatches
type SaleWriter interface {
	CreateSale(ctx context.Context, req domain.SaleCreateRequest) (*domain.Sale, error)
	UpdateSaleStatus(ctx context.Context, saleID int64, req domain.SaleStatusUpdate) error
	CompleteFromOrder(ctx context.Context, saleID int64, req domain.CompleteFromOrderRequest) error
	CreateDispatch(ctx context.Context, dispatch domain.Dispatch) (*domain.Dispatch, error)
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
