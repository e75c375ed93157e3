package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyAmount is returned by Amount.Decimal when no value was sent.
var ErrEmptyAmount = errors.New("empty amount")

// Amount is a monetary value as the backend transmits it: usually a decimal
// string, sometimes a bare number, sometimes null. The raw text is kept so
// unparsable values can be reported as received.
type Amount string

// NewAmount formats d as an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount(d.String())
}

// UnmarshalJSON accepts a JSON string, number, or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount: expected string, number or null, got %s", string(data))
	}
	*a = Amount(n.String())
	return nil
}

// MarshalJSON writes the amount as a string, or null when empty.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}

// IsEmpty reports whether no value was sent.
func (a Amount) IsEmpty() bool {
	return strings.TrimSpace(string(a)) == ""
}

// Decimal parses the amount. Empty and non-numeric values return an error.
func (a Amount) Decimal() (decimal.Decimal, error) {
	if a.IsEmpty() {
		return decimal.Zero, ErrEmptyAmount
	}
	d, err := decimal.NewFromString(strings.TrimSpace(string(a)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparsable amount %q: %w", string(a), err)
	}
	return d, nil
}

// OrZero parses the amount and falls back to zero when it is empty or unparsable.
func (a Amount) OrZero() decimal.Decimal {
	d, err := a.Decimal()
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Positive reports whether the amount parses to a value greater than zero.
func (a Amount) Positive() bool {
	d, err := a.Decimal()
	return err == nil && d.IsPositive()
}
