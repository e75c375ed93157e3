package utils

import (
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyPrecision is the number of decimal places shown for a currency.
// Sums are never rounded before display; only rendering uses this.
func CurrencyPrecision(c domain.Currency) int32 {
	if c == domain.UZS {
		return 0
	}
	return 2
}

// FormatWithCurrencyPrecision formats an amount with the display precision of a currency.
// Example: 12.3456 USD returns "12.35"; 150000.4 UZS returns "150000".
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.StringFixed(CurrencyPrecision(currency))
}

// FormatWithPrecision formats an amount with the given precision.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
