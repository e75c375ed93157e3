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

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockFinanceRepository
	service  portssvc.LedgerSvc
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFinanceRepository)
	suite.service = services.NewLedgerService(suite.mockRepo)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (suite *LedgerServiceTestSuite) assertDecimal(want string, got decimal.Decimal) {
	suite.True(dec(want).Equal(got), "want %s, got %s", want, got)
}

func (suite *LedgerServiceTestSuite) TestSummarize_PendingIncomeExcluded() {
	records := []domain.FinanceRecord{
		{ID: 1, RecordType: domain.Income, Currency: domain.USD, Status: domain.RecordCompleted, Amount: "100.00"},
		{ID: 2, RecordType: domain.Expense, Currency: domain.USD, Status: domain.RecordCompleted, Amount: "40.00"},
		{ID: 3, RecordType: domain.Income, Currency: domain.UZS, Status: domain.RecordPending, Amount: "5000"},
	}

	sum := suite.service.Summarize(context.Background(), records, nil, nil)

	suite.assertDecimal("100", sum.Income.USD)
	suite.assertDecimal("40", sum.Expense.USD)
	suite.assertDecimal("60", sum.NetProfit.USD)
	suite.assertDecimal("0", sum.Income.UZS)
	suite.Empty(sum.Flagged)
}

func (suite *LedgerServiceTestSuite) TestSummarize_NetProfitPerCurrency() {
	records := []domain.FinanceRecord{
		{ID: 1, RecordType: domain.Income, Currency: domain.USD, Status: domain.RecordCompleted, Amount: "12.50"},
		{ID: 2, RecordType: domain.Income, Currency: domain.UZS, Status: domain.RecordCompleted, Amount: "150000"},
		{ID: 3, RecordType: domain.Expense, Currency: domain.UZS, Status: domain.RecordCompleted, Amount: "200000"},
		{ID: 4, RecordType: domain.Expense, Currency: domain.USD, Status: domain.RecordCancelled, Amount: "99"},
		{ID: 5, RecordType: domain.Expense, Currency: domain.USD, Status: domain.RecordCompleted, Amount: "0.10"},
	}

	sum := suite.service.Summarize(context.Background(), records, nil, nil)

	for _, c := range domain.Currencies {
		suite.True(sum.Income.Get(c).Sub(sum.Expense.Get(c)).Equal(sum.NetProfit.Get(c)), "currency %s", c)
	}
	suite.assertDecimal("12.4", sum.NetProfit.USD)
	suite.assertDecimal("-50000", sum.NetProfit.UZS)
}

func (suite *LedgerServiceTestSuite) TestSummarize_PendingNeverExceedsAll() {
	receivables := []domain.Receivable{
		{ID: 1, Currency: domain.USD, Status: domain.LedgerPending, Amount: "10"},
		{ID: 2, Currency: domain.USD, Status: domain.LedgerPaid, Amount: "5"},
		{ID: 3, Currency: domain.UZS, Status: domain.LedgerPending, Amount: "1000"},
	}
	payables := []domain.Payable{
		{ID: 1, Currency: domain.USD, Status: domain.LedgerPending, Amount: "7"},
		{ID: 2, Currency: domain.USD, Status: domain.LedgerPending, Amount: "3"},
	}

	sum := suite.service.Summarize(context.Background(), nil, receivables, payables)

	for _, c := range domain.Currencies {
		suite.True(sum.ReceivablesPending.Get(c).LessThanOrEqual(sum.ReceivablesAll.Get(c)))
		suite.True(sum.PayablesPending.Get(c).LessThanOrEqual(sum.PayablesAll.Get(c)))
	}
	suite.assertDecimal("10", sum.ReceivablesPending.USD)
	suite.assertDecimal("15", sum.ReceivablesAll.USD)
	suite.assertDecimal("1000", sum.ReceivablesAll.UZS)
	// every payable is pending
	suite.True(sum.PayablesPending.USD.Equal(sum.PayablesAll.USD))
}

func (suite *LedgerServiceTestSuite) TestSummarize_UnusableAmountsAreFlagged() {
	records := []domain.FinanceRecord{
		{ID: 1, RecordType: domain.Income, Currency: domain.USD, Status: domain.RecordCompleted, Amount: "abc"},
		{ID: 2, RecordType: domain.Income, Currency: domain.USD, Status: domain.RecordCompleted, Amount: "20"},
		{ID: 3, RecordType: domain.Expense, Currency: domain.USD, Status: domain.RecordCompleted, Amount: "-5"},
	}
	receivables := []domain.Receivable{{ID: 9, Currency: domain.UZS, Status: domain.LedgerPending, Amount: ""}}

	sum := suite.service.Summarize(context.Background(), records, receivables, nil)

	suite.assertDecimal("20", sum.Income.USD)
	suite.assertDecimal("0", sum.Expense.USD)
	suite.Require().Len(sum.Flagged, 3)
	suite.Equal(domain.FlaggedAmount{Kind: "finance_record", ID: 1, Raw: "abc", Reason: "not a number"}, sum.Flagged[0])
	suite.Equal("negative amount", sum.Flagged[1].Reason)
	suite.Equal("receivable", sum.Flagged[2].Kind)
}

func (suite *LedgerServiceTestSuite) TestLoadFinance_Success() {
	filter := domain.FinanceFilter{Status: domain.RecordPending, Year: 2024, Month: 2}
	ledger := domain.LedgerFilter{Status: domain.LedgerPending, Year: 2024, Month: 2}

	suite.mockRepo.On("ListFinanceRecords", mock.Anything, filter).Return([]domain.FinanceRecord{
		{ID: 1, RecordType: domain.Income, Currency: domain.USD, Status: domain.RecordCompleted, Amount: "8"},
	}, nil).Once()
	suite.mockRepo.On("ListReceivables", mock.Anything, ledger).Return(nil, nil).Once()
	suite.mockRepo.On("ListPayables", mock.Anything, ledger).Return([]domain.Payable{
		{ID: 4, Currency: domain.UZS, Status: domain.LedgerPending, Amount: "300"},
	}, nil).Once()

	snap, err := suite.service.LoadFinance(context.Background(), filter)

	suite.Require().NoError(err)
	suite.Len(snap.Records, 1)
	suite.NotNil(snap.Receivables)
	suite.Empty(snap.Receivables)
	suite.assertDecimal("8", snap.Summary.Income.USD)
	suite.assertDecimal("300", snap.Summary.PayablesPending.UZS)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestLoadFinance_OneListFails() {
	filter := domain.FinanceFilter{}

	suite.mockRepo.On("ListFinanceRecords", mock.Anything, filter).Return([]domain.FinanceRecord{}, nil).Maybe()
	suite.mockRepo.On("ListReceivables", mock.Anything, filter.Ledger()).Return(nil, assert.AnError).Once()
	suite.mockRepo.On("ListPayables", mock.Anything, filter.Ledger()).Return([]domain.Payable{}, nil).Maybe()

	_, err := suite.service.LoadFinance(context.Background(), filter)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *LedgerServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	recipient := int64(3)
	expected := domain.ExpenseRequest{
		RecordType:  domain.Expense,
		ExpenseType: domain.ExpenseSalary,
		Amount:      "250",
		Currency:    domain.UZS,
		PaymentType: domain.Cash,
		Recipient:   &recipient,
		Notes:       "March",
		Status:      domain.RecordCompleted,
	}
	suite.mockRepo.On("CreateExpense", ctx, expected).Return(&domain.FinanceRecord{ID: 77}, nil).Once()

	record, err := suite.service.CreateExpense(ctx, domain.NewExpense{
		ExpenseType: domain.ExpenseSalary,
		Amount:      dec("250"),
		Currency:    domain.UZS,
		PaymentType: domain.Cash,
		Recipient:   &recipient,
		Notes:       "March",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(77), record.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateExpense_ValidationError() {
	_, err := suite.service.CreateExpense(context.Background(), domain.NewExpense{
		ExpenseType: domain.ExpenseTaxi,
		Amount:      decimal.Zero,
		Currency:    domain.USD,
		PaymentType: domain.Card,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
