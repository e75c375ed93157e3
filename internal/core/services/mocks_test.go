package services_test

import (
	"context"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock FinanceRepository ---
type MockFinanceRepository struct {
	mock.Mock
}

func (m *MockFinanceRepository) ListFinanceRecords(ctx context.Context, filter domain.FinanceFilter) ([]domain.FinanceRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinanceRecord), args.Error(1)
}

func (m *MockFinanceRepository) ListReceivables(ctx context.Context, filter domain.LedgerFilter) ([]domain.Receivable, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receivable), args.Error(1)
}

func (m *MockFinanceRepository) ListPayables(ctx context.Context, filter domain.LedgerFilter) ([]domain.Payable, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payable), args.Error(1)
}

func (m *MockFinanceRepository) CreateExpense(ctx context.Context, req domain.ExpenseRequest) (*domain.FinanceRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceRecord), args.Error(1)
}

// --- Mock BalanceRepository ---
type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) ListCashBalances(ctx context.Context) ([]domain.CashBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashBalance), args.Error(1)
}

func (m *MockBalanceRepository) ListBalanceTransactions(ctx context.Context, filter domain.BalanceTransactionFilter) ([]domain.BalanceTransaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceTransaction), args.Error(1)
}

func (m *MockBalanceRepository) CreateCashBalance(ctx context.Context, req domain.CashBalanceCreate) (*domain.CashBalance, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBalance), args.Error(1)
}

func (m *MockBalanceRepository) AdjustCashBalance(ctx context.Context, balanceID int64, req domain.AdjustRequest) error {
	args := m.Called(ctx, balanceID, req)
	return args.Error(0)
}

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, req domain.OrderCreateRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, req domain.OrderStatusUpdate) error {
	args := m.Called(ctx, orderID, req)
	return args.Error(0)
}

func (m *MockOrderRepository) PayOrder(ctx context.Context, orderID int64, req domain.OrderPaymentRequest) error {
	args := m.Called(ctx, orderID, req)
	return args.Error(0)
}

func (m *MockOrderRepository) PayCargo(ctx context.Context, orderID int64, req domain.CargoPaymentRequest) error {
	args := m.Called(ctx, orderID, req)
	return args.Error(0)
}

func (m *MockOrderRepository) SellProduct(ctx context.Context, orderID int64) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) MoveToInventoryFromOrder(ctx context.Context, orderID int64, req domain.MoveFromOrderRequest) error {
	args := m.Called(ctx, orderID, req)
	return args.Error(0)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) CreateSale(ctx context.Context, req domain.SaleCreateRequest) (*domain.Sale, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) UpdateSaleStatus(ctx context.Context, saleID int64, req domain.SaleStatusUpdate) error {
	args := m.Called(ctx, saleID, req)
	return args.Error(0)
}

func (m *MockSaleRepository) CompleteFromOrder(ctx context.Context, saleID int64, req domain.CompleteFromOrderRequest) error {
	args := m.Called(ctx, saleID, req)
	return args.Error(0)
}

func (m *MockSaleRepository) CreateDispatch(ctx context.Context, dispatch domain.Dispatch) (*domain.Dispatch, error) {
	args := m.Called(ctx, dispatch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dispatch), args.Error(1)
}

// --- Mock InventoryRepository ---
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) CreateInventoryItem(ctx context.Context, in domain.InventoryInput) (*domain.InventoryItem, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

// --- Mock ReturnRepository ---
type MockReturnRepository struct {
	mock.Mock
}

func (m *MockReturnRepository) ListReturns(ctx context.Context) ([]domain.Return, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Return), args.Error(1)
}

func (m *MockReturnRepository) FindReturnByID(ctx context.Context, returnID int64) (*domain.Return, error) {
	args := m.Called(ctx, returnID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Return), args.Error(1)
}

func (m *MockReturnRepository) CreateReturn(ctx context.Context, req domain.ReturnCreateRequest) (*domain.Return, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Return), args.Error(1)
}

func (m *MockReturnRepository) MarkRefunded(ctx context.Context, returnID int64, req domain.RefundRequest) error {
	args := m.Called(ctx, returnID, req)
	return args.Error(0)
}

// --- Mock PackageRepository ---
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) ListPackages(ctx context.Context) ([]domain.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Package), args.Error(1)
}

func (m *MockPackageRepository) ListPackageHistory(ctx context.Context) ([]domain.PackageHistory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PackageHistory), args.Error(1)
}

func (m *MockPackageRepository) CreatePackage(ctx context.Context, req domain.PackageWrite) (*domain.Package, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockPackageRepository) UpdatePackage(ctx context.Context, packageID int64, req domain.PackageWrite) (*domain.Package, error) {
	args := m.Called(ctx, packageID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockPackageRepository) MarkReceivedAndPay(ctx context.Context, historyID int64, req domain.ReceiveAndPayRequest) error {
	args := m.Called(ctx, historyID, req)
	return args.Error(0)
}

// --- Mock ConsoleActionRepository ---
type MockConsoleActionRepository struct {
	mock.Mock
}

func (m *MockConsoleActionRepository) ListConsoleActions(ctx context.Context, query domain.ConsoleActionQuery) ([]domain.ConsoleAction, *string, error) {
	args := m.Called(ctx, query)
	var next *string
	if v := args.Get(1); v != nil {
		next = v.(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.ConsoleAction), next, args.Error(2)
}

func (m *MockConsoleActionRepository) SaveConsoleAction(ctx context.Context, action domain.ConsoleAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, productID int64, in domain.ProductInput) (*domain.Product, error) {
	args := m.Called(ctx, productID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CreateCustomer(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customerID int64, in domain.CustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetCustomerHistory(ctx context.Context, customerID int64) (*domain.CustomerHistory, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerHistory), args.Error(1)
}

// --- Mock WorkerRepository ---
type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) CreateWorker(ctx context.Context, in domain.WorkerInput) (*domain.Worker, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) UpdateWorker(ctx context.Context, workerID int64, in domain.WorkerInput) (*domain.Worker, error) {
	args := m.Called(ctx, workerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) DeleteWorker(ctx context.Context, workerID int64) error {
	args := m.Called(ctx, workerID)
	return args.Error(0)
}

func (m *MockWorkerRepository) GetWorkerPerformance(ctx context.Context, workerID int64, period domain.Period) (domain.WorkerPerformance, error) {
	args := m.Called(ctx, workerID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.WorkerPerformance), args.Error(1)
}

func (m *MockWorkerRepository) GetWorkerTransactions(ctx context.Context, workerID int64) (domain.WorkerTransactions, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.WorkerTransactions), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) ListAuditLogs(ctx context.Context, filter domain.AuditLogFilter) ([]domain.AuditLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

func (m *MockReportingRepository) GetDashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.DashboardStats), args.Error(1)
}
