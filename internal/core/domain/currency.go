package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBaseCurrency is used when a rate lookup names no base.
const DefaultBaseCurrency = "USD"

// Currency represents a currency offered for display selection.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO 4217, e.g. "USD"
	Symbol       string `json:"symbol"`       // e.g. "$"
	Name         string `json:"name"`         // e.g. "US Dollar"
	Precision    int    `json:"precision"`    // decimal places shown to users
}

// ExchangeRateSet is one rate table: every multiplier is relative to Base.
type ExchangeRateSet struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"timestamp"`
	// Fallback marks the built-in table served when the rate source failed.
	Fallback bool `json:"fallback,omitempty"`
}

// Rate returns the multiplier for code. The base itself is always 1,
// whether or not the table stores it. Zero multipliers count as missing.
func (s ExchangeRateSet) Rate(code string) (decimal.Decimal, bool) {
	if rate, ok := s.Rates[code]; ok && !rate.IsZero() {
		return rate, true
	}
	if code == s.Base {
		return decimal.NewFromInt(1), true
	}
	return decimal.Zero, false
}

// IsFreshFor reports whether the set can answer a request for base at now.
func (s ExchangeRateSet) IsFreshFor(base string, now time.Time, ttl time.Duration) bool {
	return s.Base == base && now.Sub(s.FetchedAt) < ttl
}
