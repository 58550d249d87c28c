package utils

import (
	"strings"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12.3456 with JPY (precision 0) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.StringFixed(int32(currency.Precision))
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney renders amount with the currency's symbol, grouping and precision,
// e.g. "$1,234.50" or "¥110". Unknown codes fall back to "1234.50 XYZ".
func FormatMoney(amount decimal.Decimal, code string) string {
	currency, ok := domain.LookupCurrency(code)
	if !ok {
		return FormatWithPrecision(amount, 2) + " " + code
	}

	fixed := FormatWithCurrencyPrecision(amount.Abs(), currency)
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() && !amount.Round(int32(currency.Precision)).IsZero() {
		b.WriteByte('-')
	}
	b.WriteString(currency.Symbol)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
