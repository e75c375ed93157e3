package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceSet_Missing(t *testing.T) {
	set, rejected := domain.NewBalanceSet([]domain.CashBalance{
		{ID: 1, BalanceType: domain.USDCash, Balance: "10"},
		{ID: 2, BalanceType: domain.UZSCash, Balance: "5000"},
		{ID: 3, BalanceType: domain.USDCard, Balance: "0"},
	})

	assert.Empty(t, rejected)
	assert.Equal(t, []domain.BalanceType{domain.UZSCard}, set.Missing())
	assert.False(t, set.Complete())

	row, ok := set.Get(domain.USDCard)
	require.True(t, ok)
	assert.Equal(t, int64(3), row.ID)
}

func TestBalanceSet_RejectsDuplicatesAndUnknown(t *testing.T) {
	set, rejected := domain.NewBalanceSet([]domain.CashBalance{
		{ID: 1, BalanceType: domain.USDCash},
		{ID: 2, BalanceType: domain.USDCash},
		{ID: 3, BalanceType: "eur_cash"},
	})

	assert.Len(t, rejected, 2)
	row, ok := set.Get(domain.USDCash)
	require.True(t, ok)
	assert.Equal(t, int64(1), row.ID)
	assert.Len(t, set.Rows(), 1)
}

func TestBalanceSet_MarshalJSON(t *testing.T) {
	set, _ := domain.NewBalanceSet([]domain.CashBalance{{ID: 1, BalanceType: domain.USDCash, Balance: "1.00"}})
	out, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"usd_cash": {"id": 1, "balance_type": "usd_cash", "balance": "1.00"},
		"uzs_cash": null, "usd_card": null, "uzs_card": null
	}`, string(out))
}

func TestBalanceTransactionFilter_EffectiveBalanceType(t *testing.T) {
	assert.Equal(t, domain.USDCash, domain.BalanceTransactionFilter{Currency: domain.USD}.EffectiveBalanceType())
	assert.Equal(t, domain.UZSCash, domain.BalanceTransactionFilter{Currency: domain.UZS}.EffectiveBalanceType())
	assert.Equal(t, domain.UZSCard, domain.BalanceTransactionFilter{Currency: domain.USD, BalanceType: domain.UZSCard}.EffectiveBalanceType())
	assert.Equal(t, domain.BalanceType(""), domain.BalanceTransactionFilter{}.EffectiveBalanceType())
}

func TestBalanceType_CurrencyAndPaymentType(t *testing.T) {
	for _, bt := range domain.BalanceTypes {
		assert.Equal(t, bt, domain.BalanceTypeFor(bt.Currency(), bt.PaymentType()))
	}
}
