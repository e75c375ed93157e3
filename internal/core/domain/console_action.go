package domain

import (
	"encoding/json"
	"time"
)

// ActionOutcome says how a console mutation ended.
type ActionOutcome string

const (
	OutcomeSucceeded ActionOutcome = "succeeded"
	OutcomeRejected  ActionOutcome = "rejected"
	OutcomeFailed    ActionOutcome = "failed"
)

// ConsoleAction is one mutating call made through the console, kept in the local journal.
type ConsoleAction struct {
	ActionID     string          `json:"actionID"`
	UserID       string          `json:"userID"`
	Action       string          `json:"action"`
	Resource     string          `json:"resource"`
	ResourceID   string          `json:"resourceID,omitempty"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	Outcome      ActionOutcome   `json:"outcome"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ConsoleActionQuery pages through the journal newest first.
type ConsoleActionQuery struct {
	UserID    string
	Resource  string
	Limit     int
	NextToken string
}
