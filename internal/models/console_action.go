package models

import "time"

// ConsoleAction is a row of the console_actions table.
type ConsoleAction struct {
	ActionID     string    `json:"actionID"`   // Primary Key (UUID)
	UserID       string    `json:"userID"`     // Subject of the bearer token
	Action       string    `json:"action"`     // e.g. "pay_order"
	Resource     string    `json:"resource"`   // e.g. "orders"
	ResourceID   *string   `json:"resourceID"` // Nullable, creates have no id yet
	Payload      []byte    `json:"payload"`    // JSONB
	Outcome      string    `json:"outcome"`
	ErrorMessage *string   `json:"errorMessage"`
	CreatedAt    time.Time `json:"createdAt"`
}
