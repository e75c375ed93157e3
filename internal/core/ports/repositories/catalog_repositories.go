package repositories

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// ProductRepositoryFacade defines operations for the product catalog
type ProductRepositoryFacade interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID int64, in domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

// InventoryRepositoryFacade defines operations for inventory items
type InventoryRepositoryFacade interface {
	ListInventory(ctx context.Context) ([]domain.InventoryItem, error)
	CreateInventoryItem(ctx context.Context, in domain.InventoryInput) (*domain.InventoryItem, error)
}

// CustomerRepositoryFacade defines operations for customers
type CustomerRepositoryFacade interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, in domain.CustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
	GetCustomerHistory(ctx context.Context, customerID int64) (*domain.CustomerHistory, error)
}

// WorkerRepositoryFacade defines operations for workers
type WorkerRepositoryFacade interface {
	ListWorkers(ctx context.Context) ([]domain.Worker, error)
	CreateWorker(ctx context.Context, in domain.WorkerInput) (*domain.Worker, error)
	UpdateWorker(ctx context.Context, workerID int64, in domain.WorkerInput) (*domain.Worker, error)
	DeleteWorker(ctx context.Context, workerID int64) error
	GetWorkerPerformance(ctx context.Context, workerID int64, period domain.Period) (domain.WorkerPerformance, error)
	GetWorkerTransactions(ctx context.Context, workerID int64) (domain.WorkerTransactions, error)
}

// ReportingRepositoryFacade defines read-only access to audit logs and dashboard figures
type ReportingRepositoryFacade interface {
	ListAuditLogs(ctx context.Context, filter domain.AuditLogFilter) ([]domain.AuditLog, error)
	GetDashboardStats(ctx context.Context) (domain.DashboardStats, error)
}
