package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/utils/filtering"
)

type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvc {
	return &productService{productRepo: productRepo}
}

func (s *productService) LoadProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return filtering.Products(products, filter), nil
}

func (s *productService) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	in, err := normalizeProduct(in)
	if err != nil {
		return nil, err
	}
	created, err := s.productRepo.CreateProduct(ctx, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to create product", slog.String("brand", in.Brand), slog.String("model", in.Model))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.LogInfo(ctx, "Product created", slog.Int64("product_id", created.ID))
	return created, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID int64, in domain.ProductInput) (*domain.Product, error) {
	in, err := normalizeProduct(in)
	if err != nil {
		return nil, err
	}
	updated, err := s.productRepo.UpdateProduct(ctx, productID, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to update product %d: %w", productID, err)
	}
	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID int64) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		s.LogError(ctx, err, "Failed to delete product", slog.Int64("product_id", productID))
		return fmt.Errorf("failed to delete product %d: %w", productID, err)
	}
	s.LogInfo(ctx, "Product deleted", slog.Int64("product_id", productID))
	return nil
}

func normalizeProduct(in domain.ProductInput) (domain.ProductInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	in.SupplierCountry = orDefault(in.SupplierCountry, domain.SupplierGermany)
	if in.Brand == "" || in.Model == "" {
		return in, apperrors.NewValidationError("brand and model are required")
	}
	if !in.SupplierCountry.Valid() {
		return in, apperrors.NewValidationError("unknown supplier country %q", in.SupplierCountry)
	}
	prices := []struct {
		field  string
		amount domain.Amount
	}{{"cost_price", in.CostPrice}, {"selling_price", in.SellingPrice}}
	for _, p := range prices {
		if p.amount.IsEmpty() {
			continue
		}
		if d, err := p.amount.Decimal(); err != nil || d.IsNegative() {
			return in, apperrors.NewValidationError("%s must be a non-negative number", p.field)
		}
	}
	return in, nil
}

type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade) portssvc.InventorySvc {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func (s *inventoryService) LoadInventory(ctx context.Context, filter domain.InventoryFilter) ([]domain.InventoryItem, error) {
	items, err := s.inventoryRepo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return filtering.Inventory(items, filter), nil
}

func (s *inventoryService) AddInventory(ctx context.Context, in domain.InventoryInput) (*domain.InventoryItem, error) {
	in.Status = orDefault(in.Status, domain.InventoryInStock)
	switch {
	case in.Product <= 0:
		return nil, apperrors.NewValidationError("product is required")
	case in.Quantity <= 0:
		return nil, apperrors.NewValidationError("quantity must be greater than zero")
	case !in.Status.Valid():
		return nil, apperrors.NewValidationError("unknown inventory status %q", in.Status)
	}
	created, err := s.inventoryRepo.CreateInventoryItem(ctx, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to create inventory item", slog.Int64("product_id", in.Product))
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	s.LogInfo(ctx, "Inventory item created", slog.Int64("item_id", created.ID), slog.Int("quantity", created.Quantity))
	return created, nil
}

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvc {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) LoadCustomers(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return filtering.Customers(customers, filter), nil
}

func (s *customerService) CreateCustomer(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	in, err := normalizeCustomer(in)
	if err != nil {
		return nil, err
	}
	created, err := s.customerRepo.CreateCustomer(ctx, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to create customer")
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	s.LogInfo(ctx, "Customer created", slog.Int64("customer_id", created.ID))
	return created, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, in domain.CustomerInput) (*domain.Customer, error) {
	in, err := normalizeCustomer(in)
	if err != nil {
		return nil, err
	}
	updated, err := s.customerRepo.UpdateCustomer(ctx, customerID, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.Int64("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer %d: %w", customerID, err)
	}
	return updated, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.Int64("customer_id", customerID))
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}
	s.LogInfo(ctx, "Customer deleted", slog.Int64("customer_id", customerID))
	return nil
}

func (s *customerService) GetCustomerHistory(ctx context.Context, customerID int64) (*domain.CustomerHistory, error) {
	history, err := s.customerRepo.GetCustomerHistory(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get history for customer %d: %w", customerID, err)
	}
	return history, nil
}

func normalizeCustomer(in domain.CustomerInput) (domain.CustomerInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Telephone = strings.TrimSpace(in.Telephone)
	in.Region = orDefault(in.Region, domain.DefaultRegion)
	if in.Name == "" {
		return in, apperrors.NewValidationError("customer name is required")
	}
	if !in.Region.Valid() {
		return in, apperrors.NewValidationError("unknown region %q", in.Region)
	}
	return in, nil
}

type workerService struct {
	BaseService
	workerRepo portsrepo.WorkerRepositoryFacade
}

func NewWorkerService(workerRepo portsrepo.WorkerRepositoryFacade) portssvc.WorkerSvc {
	return &workerService{workerRepo: workerRepo}
}

func (s *workerService) LoadWorkers(ctx context.Context, _ struct{}) ([]domain.Worker, error) {
	workers, err := s.workerRepo.ListWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return nonNil(workers), nil
}

func (s *workerService) CreateWorker(ctx context.Context, in domain.WorkerInput) (*domain.Worker, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, apperrors.NewValidationError("worker name is required")
	}
	created, err := s.workerRepo.CreateWorker(ctx, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to create worker")
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}
	s.LogInfo(ctx, "Worker created", slog.Int64("worker_id", created.ID))
	return created, nil
}

func (s *workerService) UpdateWorker(ctx context.Context, workerID int64, in domain.WorkerInput) (*domain.Worker, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, apperrors.NewValidationError("worker name is required")
	}
	updated, err := s.workerRepo.UpdateWorker(ctx, workerID, in)
	if err != nil {
		s.LogError(ctx, err, "Failed to update worker", slog.Int64("worker_id", workerID))
		return nil, fmt.Errorf("failed to update worker %d: %w", workerID, err)
	}
	return updated, nil
}

func (s *workerService) DeleteWorker(ctx context.Context, workerID int64) error {
	if err := s.workerRepo.DeleteWorker(ctx, workerID); err != nil {
		s.LogError(ctx, err, "Failed to delete worker", slog.Int64("worker_id", workerID))
		return fmt.Errorf("failed to delete worker %d: %w", workerID, err)
	}
	s.LogInfo(ctx, "Worker deleted", slog.Int64("worker_id", workerID))
	return nil
}

// GetWorkerPerformance returns the backend's monthly performance figures for one worker.
func (s *workerService) GetWorkerPerformance(ctx context.Context, workerID int64, period domain.Period) (domain.WorkerPerformance, error) {
	if period.Year <= 0 || period.Month < 1 || period.Month > 12 {
		return nil, apperrors.NewValidationError("a year and a month between 1 and 12 are required")
	}
	perf, err := s.workerRepo.GetWorkerPerformance(ctx, workerID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get performance for worker %d: %w", workerID, err)
	}
	return perf, nil
}

func (s *workerService) GetWorkerTransactions(ctx context.Context, workerID int64) (domain.WorkerTransactions, error) {
	txs, err := s.workerRepo.GetWorkerTransactions(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for worker %d: %w", workerID, err)
	}
	return txs, nil
}

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
}

func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvc {
	return &reportingService{reportingRepo: reportingRepo}
}

func (s *reportingService) LoadAuditLogs(ctx context.Context, filter domain.AuditLogFilter) ([]domain.AuditLog, error) {
	if filter.ObjectType != "" && !filter.ObjectType.Valid() {
		return nil, apperrors.NewValidationError("unknown object type %q", filter.ObjectType)
	}
	filter.ObjectID = strings.TrimSpace(filter.ObjectID)
	logs, err := s.reportingRepo.ListAuditLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return nonNil(logs), nil
}

func (s *reportingService) LoadDashboard(ctx context.Context, _ struct{}) (domain.DashboardStats, error) {
	stats, err := s.reportingRepo.GetDashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	return stats, nil
}

var (
	_ portssvc.ProductSvc   = (*productService)(nil)
	_ portssvc.InventorySvc = (*inventoryService)(nil)
	_ portssvc.CustomerSvc  = (*customerService)(nil)
	_ portssvc.WorkerSvc    = (*workerService)(nil)
	_ portssvc.ReportingSvc = (*reportingService)(nil)
)
