package repositories

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// PackageReader defines read operations for package stock and restock history
type PackageReader interface {
	ListPackages(ctx context.Context) ([]domain.Package, error)
	ListPackageHistory(ctx context.Context) ([]domain.PackageHistory, error)
}

// PackageWriter defines write operations for package stock
type PackageWriter interface {
	CreatePackage(ctx context.Context, req domain.PackageWrite) (*domain.Package, error)
	UpdatePackage(ctx context.Context, packageID int64, req domain.PackageWrite) (*domain.Package, error)
	MarkReceivedAndPay(ctx context.Context, historyID int64, req domain.ReceiveAndPayRequest) error
}

// PackageRepositoryFacade combines all package-related repository interfaces
type PackageRepositoryFacade interface {
	PackageReader
	PackageWriter
}
