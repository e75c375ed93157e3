package mapping

import (
	"encoding/json"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/SscSPs/resale_backoffice/internal/models"
)

// ToModelConsoleAction converts a domain ConsoleAction to a model ConsoleAction
func ToModelConsoleAction(d domain.ConsoleAction) models.ConsoleAction {
	m := models.ConsoleAction{
		ActionID:  d.ActionID,
		UserID:    d.UserID,
		Action:    d.Action,
		Resource:  d.Resource,
		Payload:   []byte(d.Payload),
		Outcome:   string(d.Outcome),
		CreatedAt: d.CreatedAt,
	}
	if len(m.Payload) == 0 {
		m.Payload = []byte("{}")
	}
	if d.ResourceID != "" {
		id := d.ResourceID
		m.ResourceID = &id
	}
	if d.ErrorMessage != "" {
		msg := d.ErrorMessage
		m.ErrorMessage = &msg
	}
	return m
}

// ToDomainConsoleAction converts a model ConsoleAction to a domain ConsoleAction
func ToDomainConsoleAction(m models.ConsoleAction) domain.ConsoleAction {
	d := domain.ConsoleAction{
		ActionID:  m.ActionID,
		UserID:    m.UserID,
		Action:    m.Action,
		Resource:  m.Resource,
		Payload:   json.RawMessage(m.Payload),
		Outcome:   domain.ActionOutcome(m.Outcome),
		CreatedAt: m.CreatedAt,
	}
	if m.ResourceID != nil {
		d.ResourceID = *m.ResourceID
	}
	if m.ErrorMessage != nil {
		d.ErrorMessage = *m.ErrorMessage
	}
	return d
}

// ToDomainConsoleActionSlice converts a slice of model ConsoleActions to a slice of domain ConsoleActions
func ToDomainConsoleActionSlice(ms []models.ConsoleAction) []domain.ConsoleAction {
	ds := make([]domain.ConsoleAction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainConsoleAction(m)
	}
	return ds
}
