package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestToModelConsoleAction_NullableFields(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	m := ToModelConsoleAction(domain.ConsoleAction{
		ActionID:  "a1",
		UserID:    "u1",
		Action:    "create",
		Resource:  "orders",
		Outcome:   domain.OutcomeSucceeded,
		CreatedAt: now,
	})

	assert.Nil(t, m.ResourceID)
	assert.Nil(t, m.ErrorMessage)
	assert.Equal(t, "{}", string(m.Payload))

	d := ToDomainConsoleAction(m)
	assert.Equal(t, "", d.ResourceID)
	assert.Equal(t, domain.OutcomeSucceeded, d.Outcome)
	assert.Equal(t, now, d.CreatedAt)
}

func TestToModelConsoleAction_WithResourceAndError(t *testing.T) {
	m := ToModelConsoleAction(domain.ConsoleAction{
		ActionID:     "a2",
		ResourceID:   "42",
		ErrorMessage: "Order already paid",
		Payload:      []byte(`{"order_payment_amount":"10"}`),
		Outcome:      domain.OutcomeRejected,
	})

	if assert.NotNil(t, m.ResourceID) {
		assert.Equal(t, "42", *m.ResourceID)
	}
	if assert.NotNil(t, m.ErrorMessage) {
		assert.Equal(t, "Order already paid", *m.ErrorMessage)
	}
	assert.JSONEq(t, `{"order_payment_amount":"10"}`, string(ToDomainConsoleAction(m).Payload))
}
