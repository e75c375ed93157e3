package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

type packageService struct {
	BaseService
	packageRepo portsrepo.PackageRepositoryFacade
	ensure      singleflight.Group
}

// NewPackageService creates the packaging stock service.
func NewPackageService(packageRepo portsrepo.PackageRepositoryFacade) portssvc.PackageSvc {
	return &packageService{packageRepo: packageRepo}
}

var _ portssvc.PackageSvc = (*packageService)(nil)

// EnsurePackages creates an empty row for every package size that has none.
// Concurrent calls from any operator share one pass.
func (s *packageService) EnsurePackages(ctx context.Context) ([]domain.Package, error) {
	return sharedPass(ctx, &s.ensure, "packages", s.ensurePackages)
}

func (s *packageService) ensurePackages(ctx context.Context) ([]domain.Package, error) {
	packages, err := s.listPackages(ctx)
	if err != nil {
		return nil, err
	}
	missing := missingPackageTypes(packages)
	if len(missing) == 0 {
		return packages, nil
	}

	for _, t := range missing {
		_, err := s.packageRepo.CreatePackage(ctx, domain.PackageWrite{
			PackageType: t,
			Quantity:    0,
			CostPerUnit: domain.NewAmount(t.DefaultCost()),
		})
		if err != nil {
			s.LogError(ctx, err, "Failed to create missing package row", slog.String("package_type", string(t)))
			continue
		}
		s.LogInfo(ctx, "Created missing package row", slog.String("package_type", string(t)))
	}
	return s.listPackages(ctx)
}

func (s *packageService) listPackages(ctx context.Context) ([]domain.Package, error) {
	packages, err := s.packageRepo.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return nonNil(packages), nil
}

func missingPackageTypes(packages []domain.Package) []domain.PackageType {
	var missing []domain.PackageType
	for _, t := range domain.PackageTypes {
		if findPackage(packages, t) == nil {
			missing = append(missing, t)
		}
	}
	return missing
}

func findPackage(packages []domain.Package, t domain.PackageType) *domain.Package {
	for i := range packages {
		if packages[i].PackageType == t {
			return &packages[i]
		}
	}
	return nil
}

func (s *packageService) LoadPackages(ctx context.Context, _ struct{}) (domain.PackageSnapshot, error) {
	packages, err := s.EnsurePackages(ctx)
	if err != nil {
		return domain.PackageSnapshot{}, err
	}
	history, err := s.packageRepo.ListPackageHistory(ctx)
	if err != nil {
		return domain.PackageSnapshot{}, fmt.Errorf("failed to list package history: %w", err)
	}

	rows := make([]domain.PackageHistoryRow, 0, len(history))
	for _, h := range history {
		rows = append(rows, domain.PackageHistoryRow{PackageHistory: h, CanMarkReceivedAndPay: h.CanMarkReceivedAndPay()})
	}
	return domain.PackageSnapshot{
		Packages: packages,
		Missing:  missingPackageTypes(packages),
		History:  rows,
	}, nil
}

// AddStock adds quantity packages to the row for the size, creating the row
// when it does not exist yet.
func (s *packageService) AddStock(ctx context.Context, in domain.StockInput) (*domain.Package, error) {
	if !in.PackageType.Valid() {
		return nil, apperrors.NewValidationError("unknown package type %q", in.PackageType)
	}
	if in.Quantity <= 0 {
		return nil, apperrors.NewValidationError("quantity must be greater than zero")
	}

	cost := in.PackageType.DefaultCost()
	if in.CostPerUnit != nil {
		cost = *in.CostPerUnit
	}
	if cost.IsNegative() {
		return nil, apperrors.NewValidationError("cost per unit must not be negative")
	}

	packages, err := s.EnsurePackages(ctx)
	if err != nil {
		return nil, err
	}

	req := domain.PackageWrite{
		PackageType: in.PackageType,
		Quantity:    in.Quantity,
		CostPerUnit: domain.NewAmount(cost),
		IsPaid:      in.IsPaid,
	}
	if in.IsPaid {
		paymentAmount := cost.Mul(decimal.NewFromInt(int64(in.Quantity)))
		if in.PaymentAmount != nil {
			paymentAmount = *in.PaymentAmount
		}
		amount := domain.NewAmount(paymentAmount)
		req.PaymentAmount = &amount
		req.PaymentCurrency = firstValid(in.PaymentCurrency, domain.USD)
		req.PaymentType = firstValid(in.PaymentType, domain.Cash)
	}

	var saved *domain.Package
	if existing := findPackage(packages, in.PackageType); existing != nil {
		req.Quantity = existing.Quantity + in.Quantity
		saved, err = s.packageRepo.UpdatePackage(ctx, existing.ID, req)
	} else {
		saved, err = s.packageRepo.CreatePackage(ctx, req)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to add package stock", slog.String("package_type", string(in.PackageType)))
		return nil, fmt.Errorf("failed to add %s package stock: %w", in.PackageType, err)
	}
	s.LogInfo(ctx, "Package stock added",
		slog.String("package_type", string(in.PackageType)),
		slog.Int("added", in.Quantity),
		slog.Int("quantity", req.Quantity))
	return saved, nil
}

// UpdatePackage overwrites a package row with the submitted values.
func (s *packageService) UpdatePackage(ctx context.Context, packageID int64, in domain.PackageUpdate) (*domain.Package, error) {
	if in.Quantity < 0 {
		return nil, apperrors.NewValidationError("quantity must not be negative")
	}

	packages, err := s.EnsurePackages(ctx)
	if err != nil {
		return nil, err
	}
	var existing *domain.Package
	for i := range packages {
		if packages[i].ID == packageID {
			existing = &packages[i]
			break
		}
	}
	if existing == nil {
		return nil, fmt.Errorf("package %d: %w", packageID, apperrors.ErrNotFound)
	}

	cost := existing.CostPerUnit.OrZero()
	if in.CostPerUnit != nil {
		cost = *in.CostPerUnit
	}
	req := domain.PackageWrite{
		PackageType: existing.PackageType,
		Quantity:    in.Quantity,
		CostPerUnit: domain.NewAmount(cost),
		IsPaid:      in.IsPaid,
	}
	if in.IsPaid {
		paymentAmount := cost.Mul(decimal.NewFromInt(int64(in.Quantity)))
		if in.PaymentAmount != nil {
			paymentAmount = *in.PaymentAmount
		}
		amount := domain.NewAmount(paymentAmount)
		req.PaymentAmount = &amount
		req.PaymentCurrency = firstValid(in.PaymentCurrency, domain.USD)
		req.PaymentType = firstValid(in.PaymentType, domain.Cash)
	}

	saved, err := s.packageRepo.UpdatePackage(ctx, packageID, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to update package", slog.Int64("package_id", packageID))
		return nil, fmt.Errorf("failed to update package %d: %w", packageID, err)
	}
	return saved, nil
}

// MarkReceivedAndPay closes an ordered restock. Quantity received defaults to
// the quantity added and the payment to quantity_added x cost_per_unit.
func (s *packageService) MarkReceivedAndPay(ctx context.Context, historyID int64, in domain.ReceiveAndPayInput) error {
	history, err := s.packageRepo.ListPackageHistory(ctx)
	if err != nil {
		return fmt.Errorf("failed to list package history: %w", err)
	}
	var entry *domain.PackageHistory
	for i := range history {
		if history[i].ID == historyID {
			entry = &history[i]
			break
		}
	}
	if entry == nil {
		return fmt.Errorf("package history %d: %w", historyID, apperrors.ErrNotFound)
	}
	if !entry.CanMarkReceivedAndPay() {
		return apperrors.NewUnavailableActionError("mark_received_and_pay", "package history", historyID)
	}

	req := domain.ReceiveAndPayRequest{
		QuantityReceived: entry.QuantityAdded,
		PaymentAmount:    domain.NewAmount(entry.CostPerUnit.OrZero().Mul(decimal.NewFromInt(int64(entry.QuantityAdded)))),
		PaymentCurrency:  firstValid(in.PaymentCurrency, domain.USD),
		PaymentType:      firstValid(in.PaymentType, domain.Cash),
	}
	if in.QuantityReceived != nil {
		req.QuantityReceived = *in.QuantityReceived
	}
	if in.PaymentAmount != nil {
		req.PaymentAmount = domain.NewAmount(*in.PaymentAmount)
	}
	if req.QuantityReceived < 0 {
		return apperrors.NewValidationError("quantity received must not be negative")
	}

	if err := s.packageRepo.MarkReceivedAndPay(ctx, historyID, req); err != nil {
		s.LogError(ctx, err, "Failed to mark package restock received", slog.Int64("history_id", historyID))
		return fmt.Errorf("failed to mark package history %d received: %w", historyID, err)
	}
	s.LogInfo(ctx, "Package restock received and paid",
		slog.Int64("history_id", historyID),
		slog.Int("quantity_received", req.QuantityReceived))
	return nil
}
