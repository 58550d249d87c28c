package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExchangeRateSet_Rate(t *testing.T) {
	set := ExchangeRateSet{
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("0.85"),
			"XXX": decimal.Zero,
		},
	}

	rate, ok := set.Rate("EUR")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.85")))

	rate, ok = set.Rate("USD")
	assert.True(t, ok, "base is implicitly 1")
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))

	_, ok = set.Rate("XXX")
	assert.False(t, ok, "zero multiplier counts as missing")

	_, ok = set.Rate("GBP")
	assert.False(t, ok)
}

func TestExchangeRateSet_IsFreshFor(t *testing.T) {
	fetched := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	set := ExchangeRateSet{Base: "USD", FetchedAt: fetched}

	assert.True(t, set.IsFreshFor("USD", fetched.Add(59*time.Minute), time.Hour))
	assert.False(t, set.IsFreshFor("USD", fetched.Add(time.Hour), time.Hour))
	assert.False(t, set.IsFreshFor("EUR", fetched, time.Hour))
}

func TestPaymentStatus_IsValid(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, PaymentStatus("cancelled").IsValid())
}

func TestProfile_DisplayName(t *testing.T) {
	assert.Equal(t, "Ana Silva", Profile{FirstName: "Ana", LastName: "Silva"}.DisplayName())
	assert.Equal(t, "Ana", Profile{FirstName: "Ana"}.DisplayName())
	assert.Equal(t, "Silva", Profile{LastName: "Silva"}.DisplayName())
}
