package restapi

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
)

type restSaleRepository struct {
	client *Client
}

func newRestSaleRepository(client *Client) portsrepo.SaleRepositoryFacade {
	return &restSaleRepository{client: client}
}

var _ portsrepo.SaleRepositoryFacade = (*restSaleRepository)(nil)

func (r *restSaleRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return getList[domain.Sale](ctx, r.client, "/sales/", nil, "Error loading sales")
}

func (r *restSaleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	var sale domain.Sale
	if err := r.client.get(ctx, itemPath("sales", saleID), nil, &sale, "Error loading sale"); err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *restSaleRepository) CreateSale(ctx context.Context, req domain.SaleCreateRequest) (*domain.Sale, error) {
	var created domain.Sale
	if err := r.client.post(ctx, "/sales/", req, &created, "Error creating sale"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restSaleRepository) UpdateSaleStatus(ctx context.Context, saleID int64, req domain.SaleStatusUpdate) error {
	return r.client.post(ctx, itemPath("sales", saleID, "update_status"), req, nil, "Error updating status")
}

func (r *restSaleRepository) CompleteFromOrder(ctx context.Context, saleID int64, req domain.CompleteFromOrderRequest) error {
	return r.client.post(ctx, itemPath("sales", saleID, "complete_from_order"), req, nil, "Error completing sale")
}

func (r *restSaleRepository) CreateDispatch(ctx context.Context, dispatch domain.Dispatch) (*domain.Dispatch, error) {
	var created domain.Dispatch
	if err := r.client.post(ctx, "/dispatches/", dispatch, &created, "Error creating dispatch"); err != nil {
		return nil, err
	}
	return &created, nil
}
