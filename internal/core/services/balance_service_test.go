package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/core/services"
	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBalanceRepository
	service  portssvc.BalanceSvc
	ctx      context.Context
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBalanceRepository)
	suite.service = services.NewBalanceService(suite.mockRepo)
	suite.ctx = middleware.WithUserID(context.Background(), "42")
}

func fullBalances() []domain.CashBalance {
	return []domain.CashBalance{
		{ID: 1, BalanceType: domain.USDCash, Balance: "100"},
		{ID: 2, BalanceType: domain.UZSCash, Balance: "500000"},
		{ID: 3, BalanceType: domain.USDCard, Balance: "20"},
		{ID: 4, BalanceType: domain.UZSCard, Balance: "0"},
	}
}

func (suite *BalanceServiceTestSuite) TestEnsureBalances_CreatesMissingRowOnce() {
	full := fullBalances()
	suite.mockRepo.On("ListCashBalances", mock.Anything).Return(full[:3], nil).Once()
	suite.mockRepo.On("CreateCashBalance", mock.Anything, domain.CashBalanceCreate{BalanceType: domain.UZSCard}).
		Return(&full[3], nil).Once()
	suite.mockRepo.On("ListCashBalances", mock.Anything).Return(full, nil).Once()

	set, err := suite.service.EnsureBalances(suite.ctx)

	suite.Require().NoError(err)
	suite.True(set.Complete())
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "CreateCashBalance", 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestEnsureBalances_CreateFailureStillRefetches() {
	full := fullBalances()
	suite.mockRepo.On("ListCashBalances", mock.Anything).Return(full[:3], nil).Twice()
	suite.mockRepo.On("CreateCashBalance", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	set, err := suite.service.EnsureBalances(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal([]domain.BalanceType{domain.UZSCard}, set.Missing())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestEnsureBalances_CompleteSetCreatesNothing() {
	suite.mockRepo.On("ListCashBalances", mock.Anything).Return(fullBalances(), nil).Once()

	_, err := suite.service.EnsureBalances(suite.ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateCashBalance", mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestLoadBalances_Movements() {
	filter := domain.BalanceTransactionFilter{Currency: domain.USD}
	suite.mockRepo.On("ListCashBalances", mock.Anything).Return(fullBalances(), nil).Once()
	suite.mockRepo.On("ListBalanceTransactions", suite.ctx, filter).Return([]domain.BalanceTransaction{
		{ID: 10, Balance: 1, Operation: domain.OperationAdd, Amount: "30"},
		{ID: 11, Balance: 1, Operation: domain.OperationSubtract, Amount: "12.5"},
	}, nil).Once()

	snap, err := suite.service.LoadBalances(suite.ctx, filter)

	suite.Require().NoError(err)
	suite.Len(snap.Transactions, 2)
	suite.Empty(snap.Missing)
	mv := snap.Movements[domain.USDCash]
	suite.True(dec("17.5").Equal(mv.Net), "net was %s", mv.Net)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestAdjust_Success() {
	suite.mockRepo.On("ListCashBalances", mock.Anything).Return(fullBalances(), nil).Once()
	suite.mockRepo.On("AdjustCashBalance", suite.ctx, int64(3), domain.AdjustRequest{
		Amount:    "15.25",
		Operation: domain.OperationSubtract,
		Notes:     "bank fee",
	}).Return(nil).Once()

	err := suite.service.Adjust(suite.ctx, domain.BalanceAdjustment{
		BalanceType: domain.USDCard,
		Amount:      dec("15.25"),
		Operation:   domain.OperationSubtract,
		Notes:       "bank fee",
	})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestAdjust_RejectedLocally() {
	tests := []struct {
		name string
		adj  domain.BalanceAdjustment
	}{
		{"unknown balance type", domain.BalanceAdjustment{BalanceType: "eur_cash", Amount: dec("1"), Operation: domain.OperationAdd}},
		{"zero amount", domain.BalanceAdjustment{BalanceType: domain.USDCash, Amount: dec("0"), Operation: domain.OperationAdd}},
		{"negative amount", domain.BalanceAdjustment{BalanceType: domain.USDCash, Amount: dec("-3"), Operation: domain.OperationAdd}},
		{"unknown operation", domain.BalanceAdjustment{BalanceType: domain.USDCash, Amount: dec("1"), Operation: "multiply"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := suite.service.Adjust(suite.ctx, tt.adj)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "ListCashBalances", mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "AdjustCashBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestAdjust_UpstreamRejection() {
	upErr := &apperrors.UpstreamError{Status: 400, Message: "Insufficient balance"}
	suite.mockRepo.On("ListCashBalances", mock.Anything).Return(fullBalances(), nil).Once()
	suite.mockRepo.On("AdjustCashBalance", suite.ctx, int64(1), mock.Anything).Return(upErr).Once()

	err := suite.service.Adjust(suite.ctx, domain.BalanceAdjustment{
		BalanceType: domain.USDCash,
		Amount:      dec("1000"),
		Operation:   domain.OperationSubtract,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.Equal("Insufficient balance", apperrors.Message(err))
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
