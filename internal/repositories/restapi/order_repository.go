package restapi

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
)

type restOrderRepository struct {
	client *Client
}

func newRestOrderRepository(client *Client) portsrepo.OrderRepositoryFacade {
	return &restOrderRepository{client: client}
}

var _ portsrepo.OrderRepositoryFacade = (*restOrderRepository)(nil)

func (r *restOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return getList[domain.Order](ctx, r.client, "/orders/", nil, "Error loading orders")
}

func (r *restOrderRepository) FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order domain.Order
	if err := r.client.get(ctx, itemPath("orders", orderID), nil, &order, "Error loading order"); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *restOrderRepository) CreateOrder(ctx context.Context, req domain.OrderCreateRequest) (*domain.Order, error) {
	var created domain.Order
	if err := r.client.post(ctx, "/orders/", req, &created, "Error creating order"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restOrderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, req domain.OrderStatusUpdate) error {
	return r.client.post(ctx, itemPath("orders", orderID, "update_status"), req, nil, "Error updating status")
}

func (r *restOrderRepository) PayOrder(ctx context.Context, orderID int64, req domain.OrderPaymentRequest) error {
	return r.client.post(ctx, itemPath("orders", orderID, "pay_order"), req, nil, "Error paying order")
}

func (r *restOrderRepository) PayCargo(ctx context.Context, orderID int64, req domain.CargoPaymentRequest) error {
	return r.client.post(ctx, itemPath("orders", orderID, "pay_cargo"), req, nil, "Error paying cargo")
}

func (r *restOrderRepository) SellProduct(ctx context.Context, orderID int64) (string, error) {
	var resp domain.Message
	if err := r.client.post(ctx, itemPath("orders", orderID, "sell_product"), nil, &resp, "Error selling product"); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (r *restOrderRepository) MoveToInventoryFromOrder(ctx context.Context, orderID int64, req domain.MoveFromOrderRequest) error {
	return r.client.post(ctx, itemPath("orders", orderID, "move_to_inventory_from_order"), req, nil, "Error moving order to inventory")
}
