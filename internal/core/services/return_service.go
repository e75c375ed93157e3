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
)

type returnService struct {
	BaseService
	returnRepo portsrepo.ReturnRepositoryFacade
}

// NewReturnService creates the returns screen service.
func NewReturnService(returnRepo portsrepo.ReturnRepositoryFacade) portssvc.ReturnSvc {
	return &returnService{returnRepo: returnRepo}
}

var _ portssvc.ReturnSvc = (*returnService)(nil)

func (s *returnService) LoadReturns(ctx context.Context, filter domain.ReturnFilter) (domain.ReturnSnapshot, error) {
	returns, err := s.returnRepo.ListReturns(ctx)
	if err != nil {
		return domain.ReturnSnapshot{}, fmt.Errorf("failed to list returns: %w", err)
	}

	filtered := filtering.Returns(returns, filter)
	rows := make([]domain.ReturnRow, 0, len(filtered))
	for _, r := range filtered {
		rows = append(rows, domain.ReturnRow{Return: r, CanMarkRefunded: r.CanMarkRefunded()})
	}
	return domain.ReturnSnapshot{Returns: rows, Total: len(rows)}, nil
}

func (s *returnService) CreateReturn(ctx context.Context, in domain.NewReturn) (*domain.Return, error) {
	in.Reason = orDefault(in.Reason, domain.ReasonCustomerRequest)
	switch {
	case in.Product <= 0:
		return nil, apperrors.NewValidationError("product is required")
	case in.Quantity <= 0:
		return nil, apperrors.NewValidationError("quantity must be greater than zero")
	case !in.Reason.Valid():
		return nil, apperrors.NewValidationError("unknown return reason %q", in.Reason)
	}

	created, err := s.returnRepo.CreateReturn(ctx, domain.ReturnCreateRequest{
		Product:  in.Product,
		Sale:     in.Sale,
		Quantity: in.Quantity,
		Reason:   in.Reason,
		Notes:    in.Notes,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create return", slog.Int64("product_id", in.Product))
		return nil, fmt.Errorf("failed to create return: %w", err)
	}
	s.LogInfo(ctx, "Return created", slog.Int64("return_id", created.ID))
	return created, nil
}

// MarkRefunded pays back an outstanding return. The refund defaults to the
// linked sale's total in the sale's currency, paid in cash.
func (s *returnService) MarkRefunded(ctx context.Context, returnID int64, in domain.RefundInput) error {
	ret, err := s.returnRepo.FindReturnByID(ctx, returnID)
	if err != nil {
		return fmt.Errorf("failed to find return %d: %w", returnID, err)
	}
	if !ret.CanMarkRefunded() {
		return apperrors.NewUnavailableActionError("mark_refunded", "return", returnID)
	}

	req := refundFor(*ret, in)
	amount, err := req.RefundAmount.Decimal()
	if err != nil || amount.IsNegative() {
		return apperrors.NewValidationError("refund amount must be a non-negative number")
	}

	if err := s.returnRepo.MarkRefunded(ctx, returnID, req); err != nil {
		s.LogError(ctx, err, "Failed to mark return refunded", slog.Int64("return_id", returnID))
		return fmt.Errorf("failed to mark return %d refunded: %w", returnID, err)
	}
	s.LogInfo(ctx, "Return refunded", slog.Int64("return_id", returnID), slog.String("amount", string(req.RefundAmount)))
	return nil
}

func refundFor(ret domain.Return, in domain.RefundInput) domain.RefundRequest {
	req := domain.RefundRequest{
		RefundAmount:      "0",
		RefundCurrency:    domain.USD,
		RefundPaymentType: firstValid(in.PaymentType, domain.Cash),
	}
	if ret.SaleDetail != nil {
		if !ret.SaleDetail.TotalAmount.IsEmpty() {
			req.RefundAmount = ret.SaleDetail.TotalAmount
		}
		req.RefundCurrency = firstValid(ret.SaleDetail.SaleCurrency, domain.USD)
	}
	if in.Amount != nil {
		req.RefundAmount = domain.NewAmount(*in.Amount)
	}
	if in.Currency.Valid() {
		req.RefundCurrency = in.Currency
	}
	return req
}
