package restapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
)

type restProductRepository struct {
	client *Client
}

func newRestProductRepository(client *Client) portsrepo.ProductRepositoryFacade {
	return &restProductRepository{client: client}
}

var _ portsrepo.ProductRepositoryFacade = (*restProductRepository)(nil)

func (r *restProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return getList[domain.Product](ctx, r.client, "/products/", nil, "Error loading products")
}

func (r *restProductRepository) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	var created domain.Product
	if err := r.client.post(ctx, "/products/", in, &created, "Error saving product"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restProductRepository) UpdateProduct(ctx context.Context, productID int64, in domain.ProductInput) (*domain.Product, error) {
	var updated domain.Product
	if err := r.client.put(ctx, itemPath("products", productID), in, &updated, "Error saving product"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *restProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	return r.client.delete(ctx, itemPath("products", productID), "Error deleting product")
}

type restInventoryRepository struct {
	client *Client
}

func newRestInventoryRepository(client *Client) portsrepo.InventoryRepositoryFacade {
	return &restInventoryRepository{client: client}
}

var _ portsrepo.InventoryRepositoryFacade = (*restInventoryRepository)(nil)

func (r *restInventoryRepository) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	return getList[domain.InventoryItem](ctx, r.client, "/inventory/", nil, "Error loading inventory")
}

func (r *restInventoryRepository) CreateInventoryItem(ctx context.Context, in domain.InventoryInput) (*domain.InventoryItem, error) {
	var created domain.InventoryItem
	if err := r.client.post(ctx, "/inventory/", in, &created, "Error adding inventory"); err != nil {
		return nil, err
	}
	return &created, nil
}

type restCustomerRepository struct {
	client *Client
}

func newRestCustomerRepository(client *Client) portsrepo.CustomerRepositoryFacade {
	return &restCustomerRepository{client: client}
}

var _ portsrepo.CustomerRepositoryFacade = (*restCustomerRepository)(nil)

func (r *restCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return getList[domain.Customer](ctx, r.client, "/customers/", nil, "Error loading customers")
}

func (r *restCustomerRepository) CreateCustomer(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	var created domain.Customer
	if err := r.client.post(ctx, "/customers/", in, &created, "Error saving customer"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restCustomerRepository) UpdateCustomer(ctx context.Context, customerID int64, in domain.CustomerInput) (*domain.Customer, error) {
	var updated domain.Customer
	if err := r.client.put(ctx, itemPath("customers", customerID), in, &updated, "Error saving customer"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *restCustomerRepository) DeleteCustomer(ctx context.Context, customerID int64) error {
	return r.client.delete(ctx, itemPath("customers", customerID), "Error deleting customer")
}

func (r *restCustomerRepository) GetCustomerHistory(ctx context.Context, customerID int64) (*domain.CustomerHistory, error) {
	var history domain.CustomerHistory
	if err := r.client.get(ctx, itemPath("customers", customerID, "history"), nil, &history, "Error loading customer history"); err != nil {
		return nil, err
	}
	return &history, nil
}

type restWorkerRepository struct {
	client *Client
}

func newRestWorkerRepository(client *Client) portsrepo.WorkerRepositoryFacade {
	return &restWorkerRepository{client: client}
}

var _ portsrepo.WorkerRepositoryFacade = (*restWorkerRepository)(nil)

func (r *restWorkerRepository) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	return getList[domain.Worker](ctx, r.client, "/workers/", nil, "Error loading workers")
}

func (r *restWorkerRepository) CreateWorker(ctx context.Context, in domain.WorkerInput) (*domain.Worker, error) {
	var created domain.Worker
	if err := r.client.post(ctx, "/workers/", in, &created, "Error saving worker"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *restWorkerRepository) UpdateWorker(ctx context.Context, workerID int64, in domain.WorkerInput) (*domain.Worker, error) {
	var updated domain.Worker
	if err := r.client.put(ctx, itemPath("workers", workerID), in, &updated, "Error saving worker"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *restWorkerRepository) DeleteWorker(ctx context.Context, workerID int64) error {
	return r.client.delete(ctx, itemPath("workers", workerID), "Error deleting worker")
}

func (r *restWorkerRepository) GetWorkerPerformance(ctx context.Context, workerID int64, period domain.Period) (domain.WorkerPerformance, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(period.Year))
	q.Set("month", strconv.Itoa(period.Month))
	var raw json.RawMessage
	if err := r.client.get(ctx, itemPath("workers", workerID, "performance"), q, &raw, "Error loading performance"); err != nil {
		return nil, err
	}
	return raw, nil
}

func (r *restWorkerRepository) GetWorkerTransactions(ctx context.Context, workerID int64) (domain.WorkerTransactions, error) {
	var raw json.RawMessage
	if err := r.client.get(ctx, itemPath("workers", workerID, "transactions"), nil, &raw, "Error loading transactions"); err != nil {
		return nil, err
	}
	return raw, nil
}

type restReportingRepository struct {
	client *Client
}

func newRestReportingRepository(client *Client) portsrepo.ReportingRepositoryFacade {
	return &restReportingRepository{client: client}
}

var _ portsrepo.ReportingRepositoryFacade = (*restReportingRepository)(nil)

func (r *restReportingRepository) ListAuditLogs(ctx context.Context, filter domain.AuditLogFilter) ([]domain.AuditLog, error) {
	q := url.Values{}
	setIf(q, "object_type", string(filter.ObjectType))
	setIf(q, "object_id", filter.ObjectID)
	return getList[domain.AuditLog](ctx, r.client, "/audit-logs/", q, "Error loading audit logs")
}

func (r *restReportingRepository) GetDashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	var raw json.RawMessage
	if err := r.client.get(ctx, "/dashboard/stats/", nil, &raw, "Error loading dashboard"); err != nil {
		return nil, err
	}
	return raw, nil
}
