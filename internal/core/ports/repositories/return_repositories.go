package repositories

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// ReturnRepositoryFacade defines operations for customer returns
type ReturnRepositoryFacade interface {
	ListReturns(ctx context.Context) ([]domain.Return, error)
	FindReturnByID(ctx context.Context, returnID int64) (*domain.Return, error)
	CreateReturn(ctx context.Context, req domain.ReturnCreateRequest) (*domain.Return, error)
	MarkRefunded(ctx context.Context, returnID int64, req domain.RefundRequest) error
}
