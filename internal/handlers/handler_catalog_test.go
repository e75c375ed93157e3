package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) LoadProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductService) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) UpdateProduct(ctx context.Context, productID int64, in domain.ProductInput) (*domain.Product, error) {
	args := m.Called(ctx, productID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) DeleteProduct(ctx context.Context, productID int64) error {
	return m.Called(ctx, productID).Error(0)
}

var _ portssvc.ProductSvc = (*MockProductService)(nil)

// --- Mock InventoryService ---
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) LoadInventory(ctx context.Context, filter domain.InventoryFilter) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}
func (m *MockInventoryService) AddInventory(ctx context.Context, in domain.InventoryInput) (*domain.InventoryItem, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

var _ portssvc.InventorySvc = (*MockInventoryService)(nil)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) LoadCustomers(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) CreateCustomer(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID int64, in domain.CustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	return m.Called(ctx, customerID).Error(0)
}
func (m *MockCustomerService) GetCustomerHistory(ctx context.Context, customerID int64) (*domain.CustomerHistory, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerHistory), args.Error(1)
}

var _ portssvc.CustomerSvc = (*MockCustomerService)(nil)

// --- Mock WorkerService ---
type MockWorkerService struct {
	mock.Mock
}

func (m *MockWorkerService) LoadWorkers(ctx context.Context, filter struct{}) ([]domain.Worker, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}
func (m *MockWorkerService) CreateWorker(ctx context.Context, in domain.WorkerInput) (*domain.Worker, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}
func (m *MockWorkerService) UpdateWorker(ctx context.Context, workerID int64, in domain.WorkerInput) (*domain.Worker, error) {
	args := m.Called(ctx, workerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}
func (m *MockWorkerService) DeleteWorker(ctx context.Context, workerID int64) error {
	return m.Called(ctx, workerID).Error(0)
}
func (m *MockWorkerService) GetWorkerPerformance(ctx context.Context, workerID int64, period domain.Period) (domain.WorkerPerformance, error) {
	args := m.Called(ctx, workerID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.WorkerPerformance), args.Error(1)
}
func (m *MockWorkerService) GetWorkerTransactions(ctx context.Context, workerID int64) (domain.WorkerTransactions, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.WorkerTransactions), args.Error(1)
}

var _ portssvc.WorkerSvc = (*MockWorkerService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) LoadAuditLogs(ctx context.Context, filter domain.AuditLogFilter) ([]domain.AuditLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}
func (m *MockReportingService) LoadDashboard(ctx context.Context, filter struct{}) (domain.DashboardStats, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.DashboardStats), args.Error(1)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

// --- Catalog and reporting cases ---

func (suite *ScreenHandlerTestSuite) TestListProducts_FilterStored() {
	filter := domain.ProductFilter{Brand: "nike", SupplierCountry: domain.SupplierKorea, Year: 2026, Month: 4}
	suite.mockProducts.On("LoadProducts", mock.Anything, filter).
		Return([]domain.Product{{ID: 1, Brand: "Nike", Model: "AM90"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/products?brand=nike&supplier_country=korea&year=2026&month=4", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ScreenResponse[[]domain.Product]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("products", resp.Screen)
	suite.Require().Len(resp.Data, 1)
	suite.Equal("AM90", resp.Data[0].Model)
	suite.Equal(filter, suite.workspaces.For(testUserID).Products.Filter())
}

func (suite *ScreenHandlerTestSuite) TestListProducts_InvalidSupplier() {
	w := suite.do(http.MethodGet, "/api/v1/products?supplier_country=china", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(map[string]any{"SupplierCountry": "enum"}, suite.errorBody(w)["fields"])
	suite.mockProducts.AssertNotCalled(suite.T(), "LoadProducts", mock.Anything, mock.Anything)
}

func (suite *ScreenHandlerTestSuite) TestCreateProduct_JournalsWithNewID() {
	in := domain.ProductInput{Brand: "Nike", Model: "AM90", CostPrice: "80", SellingPrice: "120"}
	suite.mockProducts.On("CreateProduct", mock.Anything, in).Return(&domain.Product{ID: 31, Brand: "Nike", Model: "AM90"}, nil).Once()
	suite.mockJournal.On("Record", mock.Anything, "create_product", "product", "31", mock.Anything, nil).Once()
	suite.mockProducts.On("LoadProducts", mock.Anything, domain.ProductFilter{}).Return([]domain.Product{{ID: 31}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/products", `{"brand":"Nike","model":"AM90","cost_price":"80","selling_price":"120"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.MutationResponse[[]domain.Product]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Screen)
	suite.Len(resp.Screen.Data, 1)
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *ScreenHandlerTestSuite) TestCreateProduct_MissingModel() {
	w := suite.do(http.MethodPost, "/api/v1/products", `{"brand":"Nike"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(map[string]any{"Model": "required"}, suite.errorBody(w)["fields"])
	suite.mockProducts.AssertNotCalled(suite.T(), "CreateProduct", mock.Anything, mock.Anything)
}

func (suite *ScreenHandlerTestSuite) TestCreateProduct_ServiceValidationIsJournaled() {
	verr := apperrors.NewValidationError("cost_price must be a non-negative number")
	suite.mockProducts.On("CreateProduct", mock.Anything, mock.Anything).Return(nil, verr).Once()
	suite.mockJournal.On("Record", mock.Anything, "create_product", "product", "", mock.Anything, verr).Once()
	suite.mockProducts.On("LoadProducts", mock.Anything, domain.ProductFilter{}).Return([]domain.Product{}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/products", `{"brand":"Nike","model":"AM90","cost_price":"-5"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("cost_price must be a non-negative number", suite.errorBody(w)["error"])
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *ScreenHandlerTestSuite) TestDeleteCustomer_NotFound() {
	suite.mockCustomers.On("DeleteCustomer", mock.Anything, int64(77)).Return(apperrors.ErrNotFound).Once()
	suite.mockJournal.On("Record", mock.Anything, "delete_customer", "customer", "77", nil, apperrors.ErrNotFound).Once()
	suite.mockCustomers.On("LoadCustomers", mock.Anything, domain.CustomerFilter{}).Return([]domain.Customer{}, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/customers/77", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ScreenHandlerTestSuite) TestGetCustomerHistory() {
	history := &domain.CustomerHistory{
		Customer: json.RawMessage(`{"id":12,"name":"Dilnoza"}`),
		Sales:    json.RawMessage(`[{"id":3,"sale_price":"150.00"}]`),
		Summary:  json.RawMessage(`{"total_sales":1}`),
	}
	suite.mockCustomers.On("GetCustomerHistory", mock.Anything, int64(12)).Return(history, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/customers/12/history", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{
		"customer": {"id":12,"name":"Dilnoza"},
		"sales": [{"id":3,"sale_price":"150.00"}],
		"summary": {"total_sales":1}
	}`, w.Body.String())
}

func (suite *ScreenHandlerTestSuite) TestGetCustomerHistory_InvalidID() {
	w := suite.do(http.MethodGet, "/api/v1/customers/abc/history", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCustomers.AssertNotCalled(suite.T(), "GetCustomerHistory", mock.Anything, mock.Anything)
}

func (suite *ScreenHandlerTestSuite) TestGetWorkerPerformance() {
	period := domain.Period{Year: 2026, Month: 9}
	suite.mockWorkers.On("GetWorkerPerformance", mock.Anything, int64(4), period).
		Return(domain.WorkerPerformance(`{"sales_count":6}`), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/workers/4/performance?year=2026&month=9", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"sales_count":6}`, w.Body.String())
}

func (suite *ScreenHandlerTestSuite) TestGetWorkerPerformance_MonthOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/workers/4/performance?year=2026&month=13", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(map[string]any{"Month": "max"}, suite.errorBody(w)["fields"])
	suite.mockWorkers.AssertNotCalled(suite.T(), "GetWorkerPerformance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScreenHandlerTestSuite) TestGetWorkerTransactions() {
	suite.mockWorkers.On("GetWorkerTransactions", mock.Anything, int64(4)).
		Return(domain.WorkerTransactions(`[{"id":8,"amount":"40.00"}]`), nil).Once()
	suite.mockWorkers.On("GetWorkerTransactions", mock.Anything, int64(5)).Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/workers/4/transactions", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{"id":8,"amount":"40.00"}]`, w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/workers/5/transactions", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("null", w.Body.String())
}

func (suite *ScreenHandlerTestSuite) TestListAuditLogs_ObjectQuery() {
	filter := domain.AuditLogFilter{ObjectType: domain.AuditSale, ObjectID: "41"}
	suite.mockReporting.On("LoadAuditLogs", mock.Anything, filter).Return([]domain.AuditLog{
		{ID: 2, ObjectType: domain.AuditSale, ObjectID: 41, PreviousStatus: "pending", NewStatus: "confirmed"},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/audit-logs?object_type=sale&object_id=41", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ScreenResponse[[]domain.AuditLog]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("audit_logs", resp.Screen)
	suite.Require().Len(resp.Data, 1)
	suite.Equal("confirmed", resp.Data[0].NewStatus)
	suite.Equal(filter, suite.workspaces.For(testUserID).AuditLogs.Filter())
}

func (suite *ScreenHandlerTestSuite) TestListAuditLogs_UnknownObjectType() {
	w := suite.do(http.MethodGet, "/api/v1/audit-logs?object_type=invoice", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(map[string]any{"ObjectType": "enum"}, suite.errorBody(w)["fields"])
	suite.mockReporting.AssertNotCalled(suite.T(), "LoadAuditLogs", mock.Anything, mock.Anything)
}
