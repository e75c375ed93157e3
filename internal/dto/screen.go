package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScreenResponse wraps a screen snapshot with the time it was loaded.
type ScreenResponse[S any] struct {
	Screen   string    `json:"screen"`
	LoadedAt time.Time `json:"loadedAt"`
	Data     S         `json:"data"`
}

// NewScreenResponse builds the response for a freshly loaded screen.
func NewScreenResponse[S any](screen string, loadedAt time.Time, data S) ScreenResponse[S] {
	return ScreenResponse[S]{Screen: screen, LoadedAt: loadedAt, Data: data}
}

// MutationResponse answers a console mutation with the refreshed screen.
// RefreshError is set instead of Screen when the mutation went through but
// the follow-up refresh did not.
type MutationResponse[S any] struct {
	Message      string             `json:"message,omitempty"`
	Result       any                `json:"result,omitempty"`
	Screen       *ScreenResponse[S] `json:"screen,omitempty"`
	RefreshError string             `json:"refreshError,omitempty"`
}

// MessageResponse carries the backend's text answer to a sub-action.
type MessageResponse struct {
	Message string `json:"message"`
}

// PeriodParams selects a calendar month or year in query strings.
type PeriodParams struct {
	Year  int `form:"year" binding:"omitempty,min=1"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// decimalOrZero dereferences an optional amount.
func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
