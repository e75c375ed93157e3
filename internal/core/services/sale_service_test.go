package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SaleServiceTestSuite struct {
	suite.Suite
	mockSales     *MockSaleRepository
	mockInventory *MockInventoryRepository
	service       portssvc.SaleSvcFacade
	ctx           context.Context
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSales = new(MockSaleRepository)
	suite.mockInventory = new(MockInventoryRepository)
	suite.service = services.NewSaleService(suite.mockSales, suite.mockInventory)
	suite.ctx = context.Background()
}

func fromOrderSale(price, advance domain.Amount, qty int) *domain.Sale {
	orderCustomer := int64(8)
	return &domain.Sale{
		ID:                     21,
		SaleType:               domain.SaleFromOrder,
		Status:                 domain.SalePending,
		SellingPrice:           price,
		Quantity:               qty,
		AdvancePaymentReceived: advance,
		OrderDetail:            &domain.SaleOrder{ID: 4, Customer: &orderCustomer},
	}
}

func (suite *SaleServiceTestSuite) TestCompletionDefaults_Remainder() {
	suite.mockSales.On("FindSaleByID", suite.ctx, int64(21)).Return(fromOrderSale("120", "50", 1), nil).Once()

	form, err := suite.service.CompletionDefaults(suite.ctx, 21)

	suite.Require().NoError(err)
	suite.True(dec("70").Equal(form.NowPaidAmount))
	suite.Equal(domain.USD, form.NowPaidCurrency)
	suite.Equal(domain.Cash, form.NowPaidType)
	suite.Require().NotNil(form.Customer)
	suite.Equal(int64(8), *form.Customer)
}

func (suite *SaleServiceTestSuite) TestCompletionDefaults_NeverNegative() {
	suite.mockSales.On("FindSaleByID", suite.ctx, int64(21)).Return(fromOrderSale("30", "45.999", 1), nil).Once()

	form, err := suite.service.CompletionDefaults(suite.ctx, 21)

	suite.Require().NoError(err)
	suite.True(form.NowPaidAmount.IsZero())
}

func (suite *SaleServiceTestSuite) TestCompletionDefaults_RoundsToCents() {
	suite.mockSales.On("FindSaleByID", suite.ctx, int64(21)).Return(fromOrderSale("33.335", "0", 3), nil).Once()

	form, err := suite.service.CompletionDefaults(suite.ctx, 21)

	suite.Require().NoError(err)
	suite.Equal("100.01", form.NowPaidAmount.StringFixed(2))
}

func (suite *SaleServiceTestSuite) TestCompleteFromOrder_RejectsNonPositivePrice() {
	err := suite.service.CompleteFromOrder(suite.ctx, 21, domain.FromOrderCompletion{SellingPrice: decimal.Zero})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSales.AssertNotCalled(suite.T(), "FindSaleByID", mock.Anything, mock.Anything)
	suite.mockSales.AssertNotCalled(suite.T(), "CompleteFromOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCompleteFromOrder_ClampsNegativeNowPaid() {
	suite.mockSales.On("FindSaleByID", suite.ctx, int64(21)).Return(fromOrderSale("120", "50", 1), nil).Once()
	customer := int64(8)
	suite.mockSales.On("CompleteFromOrder", suite.ctx, int64(21), domain.CompleteFromOrderRequest{
		Customer:        &customer,
		SellingPrice:    "110",
		NowPaidAmount:   "0",
		NowPaidCurrency: domain.USD,
		NowPaidType:     domain.Cash,
	}).Return(nil).Once()

	err := suite.service.CompleteFromOrder(suite.ctx, 21, domain.FromOrderCompletion{
		SellingPrice:  dec("110"),
		NowPaidAmount: dec("-5"),
	})

	suite.Require().NoError(err)
	suite.mockSales.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_InsufficientInventory() {
	suite.mockInventory.On("ListInventory", suite.ctx).Return([]domain.InventoryItem{
		{ID: 1, Product: 7, Quantity: 1, Status: domain.InventoryInStock},
		{ID: 2, Product: 7, Quantity: 4, Status: domain.InventorySold},
		{ID: 3, Product: 9, Quantity: 6, Status: domain.InventoryInStock},
	}, nil).Once()

	_, err := suite.service.CreateSale(suite.ctx, domain.NewSale{Product: 7, Quantity: 2, SellingPrice: dec("90")})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("Insufficient inventory! Available: 1, Requested: 2", apperrors.Message(err))
	suite.mockSales.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSale_Success() {
	suite.mockInventory.On("ListInventory", suite.ctx).Return([]domain.InventoryItem{
		{ID: 1, Product: 7, Quantity: 3, Status: domain.InventoryInStock},
	}, nil).Once()
	suite.mockSales.On("CreateSale", suite.ctx, domain.SaleCreateRequest{
		Product:      7,
		Quantity:     2,
		SellingPrice: "90",
		SaleCurrency: domain.USD,
		SaleType:     domain.SaleBoughtFromShop,
		Status:       domain.SalePending,
	}).Return(&domain.Sale{ID: 50}, nil).Once()

	sale, err := suite.service.CreateSale(suite.ctx, domain.NewSale{Product: 7, Quantity: 2, SellingPrice: dec("90")})

	suite.Require().NoError(err)
	suite.Equal(int64(50), sale.ID)
}

func (suite *SaleServiceTestSuite) TestDispatch_CostMapping() {
	tests := []struct {
		name     string
		in       domain.DispatchInput
		expected domain.Dispatch
	}{
		{
			name: "usd cost",
			in:   domain.DispatchInput{DispatchType: domain.DispatchBTS, DeliveryCost: dec("5"), Currency: domain.USD, PaymentType: domain.Card, TrackingNumber: "T1"},
			expected: domain.Dispatch{Sale: 30, DispatchType: domain.DispatchBTS, DeliveryCost: "5", DeliveryCostUZS: "0",
				DeliveryPaymentCash: "0", DeliveryPaymentCard: "0", TrackingNumber: "T1", Status: domain.SaleDispatched},
		},
		{
			name: "uzs cash",
			in:   domain.DispatchInput{DeliveryCost: dec("30000"), Currency: domain.UZS, PaymentType: domain.Cash, IsPaid: true},
			expected: domain.Dispatch{Sale: 30, DispatchType: domain.DispatchDostavshik, IsPaid: true, DeliveryCost: "0", DeliveryCostUZS: "30000",
				DeliveryPaymentCash: "30000", DeliveryPaymentCard: "0", Status: domain.SaleDispatched},
		},
		{
			name: "uzs card",
			in:   domain.DispatchInput{DeliveryCost: dec("30000"), Currency: domain.UZS, PaymentType: domain.Card},
			expected: domain.Dispatch{Sale: 30, DispatchType: domain.DispatchDostavshik, DeliveryCost: "0", DeliveryCostUZS: "30000",
				DeliveryPaymentCash: "0", DeliveryPaymentCard: "30000", Status: domain.SaleDispatched},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			sale := &domain.Sale{ID: 30, SaleType: domain.SaleDelivery, Status: domain.SaleConfirmed}
			suite.mockSales.On("FindSaleByID", suite.ctx, int64(30)).Return(sale, nil).Once()
			suite.mockSales.On("UpdateSaleStatus", suite.ctx, int64(30), domain.SaleStatusUpdate{Status: domain.SaleDispatched}).Return(nil).Once()
			suite.mockSales.On("CreateDispatch", suite.ctx, tt.expected).Return(&domain.Dispatch{ID: 1}, nil).Once()

			suite.Require().NoError(suite.service.Dispatch(suite.ctx, 30, tt.in))
			suite.mockSales.AssertExpectations(suite.T())
		})
	}
}

func (suite *SaleServiceTestSuite) TestDispatch_FailedStatusSkipsDispatch() {
	sale := &domain.Sale{ID: 30, SaleType: domain.SaleDelivery, Status: domain.SaleConfirmed}
	suite.mockSales.On("FindSaleByID", suite.ctx, int64(30)).Return(sale, nil).Once()
	suite.mockSales.On("UpdateSaleStatus", suite.ctx, int64(30), mock.Anything).Return(assert.AnError).Once()

	err := suite.service.Dispatch(suite.ctx, 30, domain.DispatchInput{DeliveryCost: dec("1")})

	suite.ErrorIs(err, assert.AnError)
	suite.mockSales.AssertNotCalled(suite.T(), "CreateDispatch", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestComplete_DefaultsToGross() {
	sale := &domain.Sale{ID: 31, SaleType: domain.SaleBoughtFromShop, Status: domain.SaleConfirmed,
		SellingPrice: "45", Quantity: 2, SaleCurrency: domain.UZS}
	paid := domain.Amount("90")
	suite.mockSales.On("FindSaleByID", suite.ctx, int64(31)).Return(sale, nil).Once()
	suite.mockSales.On("UpdateSaleStatus", suite.ctx, int64(31), domain.SaleStatusUpdate{
		Status:          domain.SaleCompleted,
		PaymentCurrency: domain.UZS,
		PaymentAmount:   &paid,
		PaymentType:     domain.Cash,
	}).Return(nil).Once()

	suite.Require().NoError(suite.service.Complete(suite.ctx, 31, domain.CompletionInput{}))
	suite.mockSales.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestConfirm_UnavailableForFromOrder() {
	suite.mockSales.On("FindSaleByID", suite.ctx, int64(21)).Return(fromOrderSale("10", "0", 1), nil).Once()

	err := suite.service.Confirm(suite.ctx, 21)

	suite.ErrorIs(err, apperrors.ErrUnavailableAction)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
