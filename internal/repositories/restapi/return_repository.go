package restapi

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
)

type restReturnRepository struct {
	client *Client
}

func newRestReturnRepository(client *Client) portsrepo.ReturnRepositoryFacade {
	return &restReturnRepository{client: client}
}

var _ portsrepo.ReturnRepositoryFacade = (*restReturnRepository)(nil)

func (r *restReturnRepository) ListReturns(ctx context.Context) ([]domain.Return, error) {
	return getList[domain.Return](ctx, r.client, "/returns/", nil, "Error loading returns")
}

func (r *restReturnRepository) FindReturnByID(ctx context.Context, returnID int64) (*domain.Return, error) {
	var ret domain.Return
	if err := r.client.get(ctx, itemPath("returns", returnID), nil, &ret, "Error loading return"); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (r *restReturnRepository) CreateReturn(ctx context.Context, req domain.ReturnCreateRequest) (*domain.Return, error) {
	var created domain.Return
	if err := r.client.post(ctx, "/returns/", req, &created, "Error creating return"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restReturnRepository) MarkRefunded(ctx context.Context, returnID int64, req domain.RefundRequest) error {
	return r.client.post(ctx, itemPath("returns", returnID, "mark_refunded"), req, nil, "Error marking refund")
}
