package services

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// PackageSvc manages packaging stock (one row per package size) and restocks.
type PackageSvc interface {
	// EnsurePackages creates any missing package row and returns the refreshed list.
	EnsurePackages(ctx context.Context) ([]domain.Package, error)

	LoadPackages(ctx context.Context, _ struct{}) (domain.PackageSnapshot, error)
	AddStock(ctx context.Context, in domain.StockInput) (*domain.Package, error)
	UpdatePackage(ctx context.Context, packageID int64, in domain.PackageUpdate) (*domain.Package, error)
	MarkReceivedAndPay(ctx context.Context, historyID int64, in domain.ReceiveAndPayInput) error
}
