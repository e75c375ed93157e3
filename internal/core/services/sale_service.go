package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/utils/filtering"
	"github.com/shopspring/decimal"
)

type saleService struct {
	BaseService
	saleRepo      portsrepo.SaleRepositoryFacade
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// NewSaleService creates the sales screen service. The inventory repository is
// used to check stock before a sale is created.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, inventoryRepo portsrepo.InventoryRepositoryFacade) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo, inventoryRepo: inventoryRepo}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) LoadSales(ctx context.Context, filter domain.SaleFilter) (domain.SaleSnapshot, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return domain.SaleSnapshot{}, fmt.Errorf("failed to list sales: %w", err)
	}

	filtered := filtering.Sales(sales, filter)
	rows := make([]domain.SaleRow, 0, len(filtered))
	for _, sale := range filtered {
		actions := sale.AvailableActions()
		if actions == nil {
			actions = []domain.SaleAction{}
		}
		rows = append(rows, domain.SaleRow{Sale: sale, Actions: actions})
	}
	return domain.SaleSnapshot{Sales: rows, Total: len(rows)}, nil
}

// CompletionDefaults prefills the complete-from-order form: the remainder after
// the advance (never negative), in the sale currency, paid in cash.
func (s *saleService) CompletionDefaults(ctx context.Context, saleID int64) (domain.FromOrderCompletion, error) {
	sale, err := s.saleFor(ctx, saleID, domain.SaleActionCompleteFromOrder)
	if err != nil {
		return domain.FromOrderCompletion{}, err
	}
	return completionDefaults(*sale), nil
}

func completionDefaults(sale domain.Sale) domain.FromOrderCompletion {
	remaining := sale.Gross().Sub(sale.AdvancePaymentReceived.OrZero())
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return domain.FromOrderCompletion{
		Customer:        sale.CustomerRef(),
		SellingPrice:    sale.SellingPrice.OrZero(),
		NowPaidAmount:   remaining.Round(2),
		NowPaidCurrency: sale.CurrencyOrDefault(),
		NowPaidType:     domain.Cash,
	}
}

func (s *saleService) CreateSale(ctx context.Context, in domain.NewSale) (*domain.Sale, error) {
	in.SaleType = orDefault(in.SaleType, domain.SaleBoughtFromShop)
	in.SaleCurrency = orDefault(in.SaleCurrency, domain.USD)
	switch {
	case in.Product <= 0:
		return nil, apperrors.NewValidationError("product is required")
	case in.Quantity <= 0:
		return nil, apperrors.NewValidationError("quantity must be greater than zero")
	case !in.SellingPrice.IsPositive():
		return nil, apperrors.NewValidationError("selling price must be greater than zero")
	case !in.SaleType.Valid():
		return nil, apperrors.NewValidationError("unknown sale type %q", in.SaleType)
	case !in.SaleCurrency.Valid():
		return nil, apperrors.NewValidationError("unknown currency %q", in.SaleCurrency)
	case in.PackageType != "" && !in.PackageType.Valid():
		return nil, apperrors.NewValidationError("unknown package type %q", in.PackageType)
	}

	items, err := s.inventoryRepo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	if available := domain.AvailableQuantity(items, in.Product); available < in.Quantity {
		return nil, apperrors.NewValidationError("Insufficient inventory! Available: %d, Requested: %d", available, in.Quantity)
	}

	created, err := s.saleRepo.CreateSale(ctx, domain.SaleCreateRequest{
		Product:      in.Product,
		Quantity:     in.Quantity,
		SellingPrice: domain.NewAmount(in.SellingPrice),
		SaleCurrency: in.SaleCurrency,
		SaleType:     in.SaleType,
		PackageType:  in.PackageType,
		Customer:     in.Customer,
		Status:       domain.SalePending,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create sale", slog.Int64("product_id", in.Product))
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}
	s.LogInfo(ctx, "Sale created", slog.Int64("sale_id", created.ID), slog.String("sale_type", string(created.SaleType)))
	return created, nil
}

func (s *saleService) Confirm(ctx context.Context, saleID int64) error {
	if _, err := s.saleFor(ctx, saleID, domain.SaleActionConfirm); err != nil {
		return err
	}
	return s.updateStatus(ctx, saleID, domain.SaleStatusUpdate{Status: domain.SaleConfirmed})
}

// Dispatch moves the sale to dispatched and then records the delivery leg.
// When the status update fails no dispatch is created.
func (s *saleService) Dispatch(ctx context.Context, saleID int64, in domain.DispatchInput) error {
	in.DispatchType = orDefault(in.DispatchType, domain.DispatchDostavshik)
	in.Currency = orDefault(in.Currency, domain.UZS)
	in.PaymentType = orDefault(in.PaymentType, domain.Cash)
	switch {
	case !in.DispatchType.Valid():
		return apperrors.NewValidationError("unknown dispatch type %q", in.DispatchType)
	case !in.Currency.Valid():
		return apperrors.NewValidationError("unknown currency %q", in.Currency)
	case !in.PaymentType.Valid():
		return apperrors.NewValidationError("unknown payment type %q", in.PaymentType)
	case in.DeliveryCost.IsNegative():
		return apperrors.NewValidationError("delivery cost must not be negative")
	}

	if _, err := s.saleFor(ctx, saleID, domain.SaleActionDispatch); err != nil {
		return err
	}
	if err := s.updateStatus(ctx, saleID, domain.SaleStatusUpdate{Status: domain.SaleDispatched}); err != nil {
		return err
	}

	dispatch, err := s.saleRepo.CreateDispatch(ctx, dispatchFor(saleID, in))
	if err != nil {
		s.LogError(ctx, err, "Sale dispatched but dispatch record failed", slog.Int64("sale_id", saleID))
		return fmt.Errorf("failed to create dispatch for sale %d: %w", saleID, err)
	}
	s.LogInfo(ctx, "Dispatch created", slog.Int64("sale_id", saleID), slog.Int64("dispatch_id", dispatch.ID))
	return nil
}

// dispatchFor maps the entered delivery cost onto the dispatch fields. A USD
// cost goes to delivery_cost; a UZS cost goes to delivery_cost_uzs and to the
// cash or card leg selected by the payment type.
func dispatchFor(saleID int64, in domain.DispatchInput) domain.Dispatch {
	zero := domain.NewAmount(decimal.Zero)
	cost := domain.NewAmount(in.DeliveryCost)
	d := domain.Dispatch{
		Sale:                saleID,
		DispatchType:        in.DispatchType,
		IsPaid:              in.IsPaid,
		DeliveryCost:        zero,
		DeliveryCostUZS:     zero,
		DeliveryPaymentCash: zero,
		DeliveryPaymentCard: zero,
		TrackingNumber:      in.TrackingNumber,
		Status:              domain.SaleDispatched,
	}
	if in.Currency == domain.USD {
		d.DeliveryCost = cost
		return d
	}
	d.DeliveryCostUZS = cost
	if in.PaymentType == domain.Card {
		d.DeliveryPaymentCard = cost
	} else {
		d.DeliveryPaymentCash = cost
	}
	return d
}

// Complete closes a confirmed shop sale or a dispatched delivery, recording the
// payment. The amount defaults to selling_price x quantity.
func (s *saleService) Complete(ctx context.Context, saleID int64, in domain.CompletionInput) error {
	sale, err := s.saleFor(ctx, saleID, domain.SaleActionComplete)
	if err != nil {
		return err
	}

	amount := sale.Gross()
	if in.Amount != nil {
		amount = *in.Amount
	}
	if amount.IsNegative() {
		return apperrors.NewValidationError("payment amount must not be negative")
	}
	paid := domain.NewAmount(amount)

	return s.updateStatus(ctx, saleID, domain.SaleStatusUpdate{
		Status:          domain.SaleCompleted,
		PaymentCurrency: firstValid(in.Currency, sale.CurrencyOrDefault()),
		PaymentAmount:   &paid,
		PaymentType:     firstValid(in.PaymentType, domain.Cash),
	})
}

// CompleteFromOrder posts the operator's completion form. A non-positive selling
// price is rejected before anything is sent; a negative amount paid now is sent as zero.
func (s *saleService) CompleteFromOrder(ctx context.Context, saleID int64, form domain.FromOrderCompletion) error {
	if !form.SellingPrice.IsPositive() {
		return apperrors.NewValidationError("selling price must be greater than zero")
	}
	sale, err := s.saleFor(ctx, saleID, domain.SaleActionCompleteFromOrder)
	if err != nil {
		return err
	}

	nowPaid := form.NowPaidAmount
	if nowPaid.IsNegative() {
		s.LogWarn(ctx, "Clamping negative amount paid now to zero",
			slog.Int64("sale_id", saleID),
			slog.String("now_paid_amount", nowPaid.String()))
		nowPaid = decimal.Zero
	}
	customer := form.Customer
	if customer == nil {
		customer = sale.CustomerRef()
	}

	req := domain.CompleteFromOrderRequest{
		Customer:        customer,
		SellingPrice:    domain.NewAmount(form.SellingPrice),
		NowPaidAmount:   domain.NewAmount(nowPaid),
		NowPaidCurrency: firstValid(form.NowPaidCurrency, sale.CurrencyOrDefault()),
		NowPaidType:     firstValid(form.NowPaidType, domain.Cash),
	}
	if err := s.saleRepo.CompleteFromOrder(ctx, saleID, req); err != nil {
		s.LogError(ctx, err, "Failed to complete sale from order", slog.Int64("sale_id", saleID))
		return fmt.Errorf("failed to complete sale %d from order: %w", saleID, err)
	}
	s.LogInfo(ctx, "Sale completed from order", slog.Int64("sale_id", saleID), slog.String("now_paid_amount", nowPaid.String()))
	return nil
}

func (s *saleService) saleFor(ctx context.Context, saleID int64, action domain.SaleAction) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sale %d: %w", saleID, err)
	}
	if !sale.Allows(action) {
		s.LogWarn(ctx, "Rejected unavailable sale action",
			slog.Int64("sale_id", saleID),
			slog.String("action", string(action)),
			slog.String("status", string(sale.Status)))
		return nil, apperrors.NewUnavailableActionError(string(action), "sale", saleID)
	}
	return sale, nil
}

func (s *saleService) updateStatus(ctx context.Context, saleID int64, update domain.SaleStatusUpdate) error {
	if err := s.saleRepo.UpdateSaleStatus(ctx, saleID, update); err != nil {
		s.LogError(ctx, err, "Failed to update sale status",
			slog.Int64("sale_id", saleID),
			slog.String("status", string(update.Status)))
		return fmt.Errorf("failed to update sale %d status: %w", saleID, err)
	}
	s.LogInfo(ctx, "Sale status updated", slog.Int64("sale_id", saleID), slog.String("status", string(update.Status)))
	return nil
}
