package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/SscSPs/resale_backoffice/internal/core/services"
	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecord_Outcomes(t *testing.T) {
	fixed := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		err     error
		outcome domain.ActionOutcome
		message string
	}{
		{"success", nil, domain.OutcomeSucceeded, ""},
		{"local validation", apperrors.NewValidationError("amount must be greater than zero"), domain.OutcomeRejected, "amount must be greater than zero"},
		{"unavailable action", apperrors.NewUnavailableActionError("pay_order", "order", 3), domain.OutcomeRejected, "pay_order is not available for order 3 in its current state"},
		{"upstream 400", &apperrors.UpstreamError{Status: 400, Message: "Insufficient balance"}, domain.OutcomeRejected, "Insufficient balance"},
		{"upstream 500", &apperrors.UpstreamError{Status: 500, Message: "Error adjusting balance"}, domain.OutcomeFailed, "Error adjusting balance"},
		{"other", assert.AnError, domain.OutcomeFailed, assert.AnError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockConsoleActionRepository)
			svc := services.NewConsoleActionService(repo, services.WithJournalClock(func() time.Time { return fixed }))
			ctx := middleware.WithUserID(context.Background(), "17")

			repo.On("SaveConsoleAction", mock.Anything, mock.MatchedBy(func(a domain.ConsoleAction) bool {
				return a.UserID == "17" &&
					a.Action == "adjust" &&
					a.Resource == "cash_balance" &&
					a.ResourceID == "usd_cash" &&
					a.Outcome == tt.outcome &&
					a.ErrorMessage == tt.message &&
					a.CreatedAt.Equal(fixed) &&
					a.ActionID != ""
			})).Return(nil).Once()

			svc.Record(ctx, "adjust", "cash_balance", "usd_cash", map[string]string{"amount": "5"}, tt.err)
			repo.AssertExpectations(t)
		})
	}
}

func TestRecord_PayloadIsJSON(t *testing.T) {
	repo := new(MockConsoleActionRepository)
	svc := services.NewConsoleActionService(repo)

	repo.On("SaveConsoleAction", mock.Anything, mock.Anything).Return(nil).Once()
	svc.Record(context.Background(), "create", "order", "", struct {
		Product int64 `json:"product"`
	}{Product: 7}, nil)

	saved := repo.Calls[0].Arguments.Get(1).(domain.ConsoleAction)
	assert.Equal(t, "anonymous", saved.UserID)
	assert.JSONEq(t, `{"product":7}`, string(saved.Payload))
	assert.True(t, json.Valid(saved.Payload))
}

func TestRecord_SaveFailureIsSwallowed(t *testing.T) {
	repo := new(MockConsoleActionRepository)
	svc := services.NewConsoleActionService(repo)
	repo.On("SaveConsoleAction", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), "confirm", "sale", "3", nil, nil)
	})
}

func TestConsoleActions_DisabledJournal(t *testing.T) {
	svc := services.NewConsoleActionService(nil)

	assert.False(t, svc.Enabled())
	svc.Record(context.Background(), "confirm", "sale", "3", nil, nil)

	actions, next, err := svc.ListConsoleActions(context.Background(), domain.ConsoleActionQuery{UserID: "1"})
	require.NoError(t, err)
	assert.NotNil(t, actions)
	assert.Empty(t, actions)
	assert.Nil(t, next)
}
