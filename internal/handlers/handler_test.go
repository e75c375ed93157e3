package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/core/screens"
	"github.com/SscSPs/resale_backoffice/internal/dto"
	"github.com/SscSPs/resale_backoffice/internal/handlers"
	"github.com/SscSPs/resale_backoffice/internal/platform/config"
	"github.com/SscSPs/resale_backoffice/internal/utils/export"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) LoadOrders(ctx context.Context, filter domain.OrderFilter) (domain.OrderSnapshot, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.OrderSnapshot), args.Error(1)
}
func (m *MockOrderService) CreateOrder(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) MarkReceived(ctx context.Context, orderID int64) error {
	return m.Called(ctx, orderID).Error(0)
}
func (m *MockOrderService) MarkReceivedAndPay(ctx context.Context, orderID int64, payment domain.OrderPaymentInput) error {
	return m.Called(ctx, orderID, payment).Error(0)
}
func (m *MockOrderService) MoveToInventory(ctx context.Context, orderID int64) error {
	return m.Called(ctx, orderID).Error(0)
}
func (m *MockOrderService) MoveToInventoryAndPay(ctx context.Context, orderID int64, payment domain.OrderPaymentInput) error {
	return m.Called(ctx, orderID, payment).Error(0)
}
func (m *MockOrderService) PayOrder(ctx context.Context, orderID int64, payment domain.OrderPaymentInput) error {
	return m.Called(ctx, orderID, payment).Error(0)
}
func (m *MockOrderService) PayCargo(ctx context.Context, orderID int64, payment domain.OrderPaymentInput) error {
	return m.Called(ctx, orderID, payment).Error(0)
}
func (m *MockOrderService) SellProduct(ctx context.Context, orderID int64) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}
func (m *MockOrderService) MoveToInventoryFromOrder(ctx context.Context, orderID int64, in domain.MoveToInventoryInput) error {
	return m.Called(ctx, orderID, in).Error(0)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) LoadSales(ctx context.Context, filter domain.SaleFilter) (domain.SaleSnapshot, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.SaleSnapshot), args.Error(1)
}
func (m *MockSaleService) CompletionDefaults(ctx context.Context, saleID int64) (domain.FromOrderCompletion, error) {
	args := m.Called(ctx, saleID)
	return args.Get(0).(domain.FromOrderCompletion), args.Error(1)
}
func (m *MockSaleService) CreateSale(ctx context.Context, in domain.NewSale) (*domain.Sale, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) Confirm(ctx context.Context, saleID int64) error {
	return m.Called(ctx, saleID).Error(0)
}
func (m *MockSaleService) Dispatch(ctx context.Context, saleID int64, in domain.DispatchInput) error {
	return m.Called(ctx, saleID, in).Error(0)
}
func (m *MockSaleService) Complete(ctx context.Context, saleID int64, in domain.CompletionInput) error {
	return m.Called(ctx, saleID, in).Error(0)
}
func (m *MockSaleService) CompleteFromOrder(ctx context.Context, saleID int64, form domain.FromOrderCompletion) error {
	return m.Called(ctx, saleID, form).Error(0)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Summarize(ctx context.Context, records []domain.FinanceRecord, receivables []domain.Receivable, payables []domain.Payable) domain.LedgerSummary {
	return m.Called(ctx, records, receivables, payables).Get(0).(domain.LedgerSummary)
}
func (m *MockLedgerService) LoadFinance(ctx context.Context, filter domain.FinanceFilter) (domain.FinanceSnapshot, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.FinanceSnapshot), args.Error(1)
}
func (m *MockLedgerService) CreateExpense(ctx context.Context, expense domain.NewExpense) (*domain.FinanceRecord, error) {
	args := m.Called(ctx, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceRecord), args.Error(1)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) EnsureBalances(ctx context.Context) (domain.BalanceSet, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.BalanceSet), args.Error(1)
}
func (m *MockBalanceService) LoadBalances(ctx context.Context, filter domain.BalanceTransactionFilter) (domain.BalanceSnapshot, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.BalanceSnapshot), args.Error(1)
}
func (m *MockBalanceService) Adjust(ctx context.Context, adj domain.BalanceAdjustment) error {
	return m.Called(ctx, adj).Error(0)
}

var _ portssvc.BalanceSvc = (*MockBalanceService)(nil)

// --- Mock ConsoleActionService ---
type MockConsoleActionService struct {
	mock.Mock
}

func (m *MockConsoleActionService) Record(ctx context.Context, action, resource, resourceID string, payload any, err error) {
	m.Called(ctx, action, resource, resourceID, payload, err)
}
func (m *MockConsoleActionService) ListConsoleActions(ctx context.Context, query domain.ConsoleActionQuery) ([]domain.ConsoleAction, *string, error) {
	args := m.Called(ctx, query)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.ConsoleAction), next, args.Error(2)
}
func (m *MockConsoleActionService) Enabled() bool {
	return m.Called().Bool(0)
}

var _ portssvc.ConsoleActionSvc = (*MockConsoleActionService)(nil)

// --- Test Suite ---
type ScreenHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	workspaces  *screens.Workspaces
	mockOrders  *MockOrderService
	mockSales   *MockSaleService
	mockLedger  *MockLedgerService
	mockBalance *MockBalanceService
	mockJournal *MockConsoleActionService

	mockProducts  *MockProductService
	mockInventory *MockInventoryService
	mockCustomers *MockCustomerService
	mockWorkers   *MockWorkerService
	mockReporting *MockReportingService
}

const testUserID = "operator-1"

// generateTestToken creates a JWT the console reads the caller from. The
// signature is never checked here, so any key will do.
func (suite *ScreenHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "resale-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-key-that-is-long-enough"))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ScreenHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockOrders = new(MockOrderService)
	suite.mockSales = new(MockSaleService)
	suite.mockLedger = new(MockLedgerService)
	suite.mockBalance = new(MockBalanceService)
	suite.mockJournal = new(MockConsoleActionService)
	suite.mockProducts = new(MockProductService)
	suite.mockInventory = new(MockInventoryService)
	suite.mockCustomers = new(MockCustomerService)
	suite.mockWorkers = new(MockWorkerService)
	suite.mockReporting = new(MockReportingService)

	var err error
	suite.workspaces, err = screens.NewWorkspaces(8)
	suite.Require().NoError(err)

	services := &portssvc.ServiceContainer{
		Ledger:        suite.mockLedger,
		Balance:       suite.mockBalance,
		Order:         suite.mockOrders,
		Sale:          suite.mockSales,
		Product:       suite.mockProducts,
		Inventory:     suite.mockInventory,
		Customer:      suite.mockCustomers,
		Worker:        suite.mockWorkers,
		Reporting:     suite.mockReporting,
		ConsoleAction: suite.mockJournal,
	}
	cfg := &config.Config{IsProduction: true}
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, services, suite.workspaces))
}

func (suite *ScreenHandlerTestSuite) do(method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, url, nil)
	} else {
		req, _ = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ScreenHandlerTestSuite) errorBody(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func orderSnapshot() domain.OrderSnapshot {
	return domain.OrderSnapshot{
		Orders: []domain.OrderRow{
			{
				Order:   domain.Order{ID: 7, OrderType: domain.OrderStock, Status: domain.OrderReceived, CostTotal: "120.50"},
				Actions: []domain.OrderAction{domain.ActionMoveToInventory, domain.ActionPayOrder},
			},
		},
		Total: 1,
	}
}

// --- Test Cases ---

func (suite *ScreenHandlerTestSuite) TestListOrders_Success() {
	suite.mockOrders.On("LoadOrders", mock.Anything, domain.OrderFilter{Status: domain.OrderReceived, Year: 2024}).
		Return(orderSnapshot(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders?status=received&year=2024", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ScreenResponse[domain.OrderSnapshot]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("orders", resp.Screen)
	suite.False(resp.LoadedAt.IsZero())
	suite.Require().Len(resp.Data.Orders, 1)
	suite.Equal(int64(7), resp.Data.Orders[0].ID)
	suite.Equal(domain.Amount("120.50"), resp.Data.Orders[0].CostTotal)
	suite.Equal([]domain.OrderAction{domain.ActionMoveToInventory, domain.ActionPayOrder}, resp.Data.Orders[0].Actions)

	ws := suite.workspaces.For(testUserID)
	suite.Equal(domain.OrderFilter{Status: domain.OrderReceived, Year: 2024}, ws.Orders.Filter())
	suite.mockOrders.AssertExpectations(suite.T())
}

func (suite *ScreenHandlerTestSuite) TestListOrders_InvalidEnum() {
	w := suite.do(http.MethodGet, "/api/v1/orders?status=lost", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.errorBody(w)
	suite.Contains(body["error"], "Invalid request format")
	suite.Equal(map[string]any{"Status": "enum"}, body["fields"])
	suite.mockOrders.AssertNotCalled(suite.T(), "LoadOrders", mock.Anything, mock.Anything)
}

func (suite *ScreenHandlerTestSuite) TestListOrders_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockOrders.AssertNotCalled(suite.T(), "LoadOrders", mock.Anything, mock.Anything)
}

func (suite *ScreenHandlerTestSuite) TestListOrders_UpstreamClientErrorPassesThrough() {
	upErr := &apperrors.UpstreamError{Status: http.StatusForbidden, Message: "You do not have permission to perform this action."}
	suite.mockOrders.On("LoadOrders", mock.Anything, domain.OrderFilter{}).
		Return(domain.OrderSnapshot{}, upErr).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders", "")

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("You do not have permission to perform this action.", suite.errorBody(w)["error"])
}

func (suite *ScreenHandlerTestSuite) TestListOrders_UpstreamServerErrorIsBadGateway() {
	upErr := &apperrors.UpstreamError{Status: http.StatusInternalServerError, Message: "Server error"}
	suite.mockOrders.On("LoadOrders", mock.Anything, domain.OrderFilter{}).
		Return(domain.OrderSnapshot{}, upErr).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders", "")

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *ScreenHandlerTestSuite) TestListOrders_Superseded() {
	suite.mockOrders.On("LoadOrders", mock.Anything, domain.OrderFilter{}).
		Return(domain.OrderSnapshot{}, apperrors.ErrSuperseded).Once()

	w := suite.do(http.MethodGet, "/api/v1/orders", "")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ScreenHandlerTestSuite) TestPayOrder_JournalsAndRefreshes() {
	suite.mockOrders.On("PayOrder", mock.Anything, int64(7), domain.OrderPaymentInput{}).Return(nil).Once()
	suite.mockJournal.On("Record", mock.Anything, "pay_order", "order", "7", mock.Anything, nil).Once()
	suite.mockOrders.On("LoadOrders", mock.Anything, domain.OrderFilter{}).Return(orderSnapshot(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/orders/7/pay-order", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MutationResponse[domain.OrderSnapshot]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Order paid", resp.Message)
	suite.Empty(resp.RefreshError)
	suite.Require().NotNil(resp.Screen)
	suite.Equal("orders", resp.Screen.Screen)
	suite.Len(resp.Screen.Data.Orders, 1)

	suite.mockOrders.AssertExpectations(suite.T())
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *ScreenHandlerTestSuite) TestPayOrder_WithPaymentOverride() {
	amount := decimal.RequireFromString("250")
	payment := domain.OrderPaymentInput{Amount: &amount, Currency: domain.USD, PaymentType: domain.Card}
	suite.mockOrders.On("PayOrder", mock.Anything, int64(7), mock.MatchedBy(func(p domain.OrderPaymentInput) bool {
		return p.Amount != nil && p.Amount.Equal(*payment.Amount) && p.Currency == payment.Currency && p.PaymentType == payment.PaymentType
	})).Return(nil).Once()
	suite.mockJournal.On("Record", mock.Anything, "pay_order", "order", "7", mock.Anything, nil).Once()
	suite.mockOrders.On("LoadOrders", mock.Anything, domain.OrderFilter{}).Return(orderSnapshot(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/orders/7/pay-order", `{"amount":"250","currency":"USD","payment_type":"card"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockOrders.AssertExpectations(suite.T())
}

func (suite *ScreenHandlerTestSuite) TestPayOrder_RefreshFailureStillSucceeds() {
	suite.mockOrders.On("PayOrder", mock.Anything, int64(7), domain.OrderPaymentInput{}).Return(nil).Once()
	suite.mockJournal.On("Record", mock.Anything, "pay_order", "order", "7", mock.Anything, nil).Once()
	suite.mockOrders.On("LoadOrders", mock.Anything, domain.OrderFilter{}).
		Return(domain.OrderSnapshot{}, &apperrors.UpstreamError{Status: http.StatusBadGateway, Message: "Backend unavailable"}).Once()

	w := suite.do(http.MethodPost, "/api/v1/orders/7/pay-order", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MutationResponse[domain.OrderSnapshot]
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Nil(resp.Screen)
	suite.Equal("Backend unavailable", resp.RefreshError)
}

func (suite *ScreenHandlerTestSuite) TestMarkReceived_UnavailableAction() {
	unavailable := apperrors.NewUnavailableActionError("mark_received", "order", 7)
	suite.mockOrders.On("MarkReceived", mock.Anything, int64(7)).Return(unavailable).Once()
	suite.mockJournal.On("Record", mock.Anything, "mark_received", "order", "7", mock.Anything,
		mock.MatchedBy(func(err error) bool { return errors.Is(err, apperrors.ErrUnavailableAction) })).Once()
	suite.mockOrders.On("LoadOrders", mock.Anything, domain.OrderFilter{}).Return(orderSnapshot(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/orders/7/mark-received", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(apperrors.Message(unavailable), suite.errorBody(w)["error"])
	suite.mockOrders.AssertExpectations(suite.T())
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *ScreenHandlerTestSuite) TestOrderAction_InvalidID() {
	w := suite.do(http.MethodPost, "/api/v1/orders/abc/mark-received", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOrders.AssertNotCalled(suite.T(), "MarkReceived", mock.Anything, mock.Anything)
	suite.mockJournal.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScreenHandlerTestSuite) TestCompletionDefaults_Success() {
	customer := int64(3)
	form := domain.FromOrderCompletion{
		Customer:        &customer,
		SellingPrice:    decimal.RequireFromString("1500000"),
		NowPaidAmount:   decimal.RequireFromString("500000"),
		NowPaidCurrency: domain.UZS,
		NowPaidType:     domain.Cash,
	}
	suite.mockSales.On("CompletionDefaults", mock.Anything, int64(12)).Return(form, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/sales/12/completion-defaults", "")

	suite.Equal(http.StatusOK, w.Code)
	var got domain.FromOrderCompletion
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(form.SellingPrice.Equal(got.SellingPrice))
	suite.True(form.NowPaidAmount.Equal(got.NowPaidAmount))
	suite.Equal(domain.UZS, got.NowPaidCurrency)
}

func (suite *ScreenHandlerTestSuite) TestAdjustBalance_MissingAmount() {
	w := suite.do(http.MethodPost, "/api/v1/balances/adjust", `{"balance_type":"usd_cash","operation":"add"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBalance.AssertNotCalled(suite.T(), "Adjust", mock.Anything, mock.Anything)
}

func (suite *ScreenHandlerTestSuite) TestExportFinance_Workbook() {
	suite.mockLedger.On("LoadFinance", mock.Anything, domain.FinanceFilter{}).Return(domain.FinanceSnapshot{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/finance/export", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(export.ContentType, w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "finance-")
	suite.NotZero(w.Body.Len())
}

func (suite *ScreenHandlerTestSuite) TestListConsoleActions_ScopedToCaller() {
	next := "token-2"
	actions := []domain.ConsoleAction{
		{ActionID: "a1", UserID: testUserID, Action: "pay_order", Resource: "order", ResourceID: "7", Outcome: domain.OutcomeSucceeded},
	}
	suite.mockJournal.On("ListConsoleActions", mock.Anything, domain.ConsoleActionQuery{UserID: testUserID, Resource: "order", Limit: 20}).
		Return(actions, &next, nil).Once()
	suite.mockJournal.On("Enabled").Return(true).Once()

	w := suite.do(http.MethodGet, "/api/v1/console-actions?resource=order", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListConsoleActionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Enabled)
	suite.Require().Len(resp.Actions, 1)
	suite.Equal("a1", resp.Actions[0].ActionID)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *ScreenHandlerTestSuite) TestResetScreen() {
	suite.mockOrders.On("LoadOrders", mock.Anything, domain.OrderFilter{Brand: "Nike"}).Return(orderSnapshot(), nil).Once()
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/orders?brand=Nike", "").Code)

	w := suite.do(http.MethodPost, "/api/v1/workspace/screens/orders/reset", "")
	suite.Equal(http.StatusOK, w.Code)

	ws := suite.workspaces.For(testUserID)
	suite.Equal(domain.OrderFilter{}, ws.Orders.Filter())
	_, _, ok := ws.Orders.Snapshot()
	suite.False(ok)

	w = suite.do(http.MethodPost, "/api/v1/workspace/screens/nowhere/reset", "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ScreenHandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Run Test Suite ---
func TestScreenHandlers(t *testing.T) {
	suite.Run(t, new(ScreenHandlerTestSuite))
}
