package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Amount
		wantErr bool
	}{
		{name: "decimal string", input: `"100.50"`, want: "100.50"},
		{name: "bare number", input: `42.5`, want: "42.5"},
		{name: "integer", input: `5000`, want: "5000"},
		{name: "null", input: `null`, want: ""},
		{name: "non numeric string kept raw", input: `"abc"`, want: "abc"},
		{name: "boolean rejected", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a domain.Amount
			err := json.Unmarshal([]byte(tt.input), &a)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestAmount_Decimal(t *testing.T) {
	d, err := domain.Amount("40.00").Decimal()
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(40)))

	_, err = domain.Amount("").Decimal()
	assert.ErrorIs(t, err, domain.ErrEmptyAmount)

	_, err = domain.Amount("12,5").Decimal()
	assert.Error(t, err)

	assert.True(t, domain.Amount("not-a-number").OrZero().IsZero())
	assert.True(t, domain.Amount("0.01").Positive())
	assert.False(t, domain.Amount("0").Positive())
}

func TestAmount_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A domain.Amount `json:"a"`
		B domain.Amount `json:"b"`
	}{A: "10.00"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"10.00","b":null}`, string(out))
}
