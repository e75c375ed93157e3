package services

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
)

// ProductSvc defines operations for the product catalog
type ProductSvc interface {
	LoadProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID int64, in domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

// InventorySvc defines operations for inventory items
type InventorySvc interface {
	LoadInventory(ctx context.Context, filter domain.InventoryFilter) ([]domain.InventoryItem, error)
	AddInventory(ctx context.Context, in domain.InventoryInput) (*domain.InventoryItem, error)
}

// CustomerSvc defines operations for customers
type CustomerSvc interface {
	LoadCustomers(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, in domain.CustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
	GetCustomerHistory(ctx context.Context, customerID int64) (*domain.CustomerHistory, error)
}

// WorkerSvc defines operations for workers
type WorkerSvc interface {
	LoadWorkers(ctx context.Context, _ struct{}) ([]domain.Worker, error)
	CreateWorker(ctx context.Context, in domain.WorkerInput) (*domain.Worker, error)
	UpdateWorker(ctx context.Context, workerID int64, in domain.WorkerInput) (*domain.Worker, error)
	DeleteWorker(ctx context.Context, workerID int64) error
	GetWorkerPerformance(ctx context.Context, workerID int64, period domain.Period) (domain.WorkerPerformance, error)
	GetWorkerTransactions(ctx context.Context, workerID int64) (domain.WorkerTransactions, error)
}

// ReportingSvc serves the read-only audit log and dashboard screens.
type ReportingSvc interface {
	LoadAuditLogs(ctx context.Context, filter domain.AuditLogFilter) ([]domain.AuditLog, error)
	LoadDashboard(ctx context.Context, _ struct{}) (domain.DashboardStats, error)
}
