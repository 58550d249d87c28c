package payments

import (
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	band100 = decimal.NewFromInt(100)
	band75  = decimal.NewFromInt(75)
	band50  = decimal.NewFromInt(50)
	band25  = decimal.NewFromInt(25)
)

// TotalPaid sums amounts of completed payments in their recorded currencies.
func TotalPaid(payments []domain.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.Status == domain.PaymentCompleted {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// TotalDue sums pending and completed payments. Failed and refunded
// payments are not owed.
func TotalDue(payments []domain.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.Status == domain.PaymentPending || p.Status == domain.PaymentCompleted {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// CompletedCount counts completed payments.
func CompletedCount(payments []domain.Payment) int {
	n := 0
	for _, p := range payments {
		if p.Status == domain.PaymentCompleted {
			n++
		}
	}
	return n
}

// Remaining is what is left to pay. With a plan it is floored at zero;
// without one it is due minus paid, unclamped.
func Remaining(paid, due, planTotal decimal.Decimal, hasPlan bool) decimal.Decimal {
	if !hasPlan {
		return due.Sub(paid)
	}
	return decimal.Max(decimal.Zero, planTotal.Sub(paid))
}

// Percentage is paid/planTotal*100, or 0 when there is no positive plan total.
// The result is not clamped.
func Percentage(paid, planTotal decimal.Decimal) decimal.Decimal {
	if !planTotal.IsPositive() {
		return decimal.Zero
	}
	return paid.Div(planTotal).Mul(hundred)
}

// ClampPercentage bounds p to [0, 100] for gauges.
func ClampPercentage(p decimal.Decimal) decimal.Decimal {
	return decimal.Min(hundred, decimal.Max(decimal.Zero, p))
}

// BandFor maps a percentage to its progress band. Input is clamped first.
func BandFor(p decimal.Decimal) domain.ProgressBand {
	p = ClampPercentage(p)
	switch {
	case p.GreaterThanOrEqual(band100):
		return domain.BandComplete
	case p.GreaterThanOrEqual(band75):
		return domain.BandOnTrack
	case p.GreaterThanOrEqual(band50):
		return domain.BandHalfway
	case p.GreaterThanOrEqual(band25):
		return domain.BandStarted
	}
	return domain.BandBehind
}

// DistinctCurrencies returns the currency codes used by payments, in first-seen order.
func DistinctCurrencies(payments []domain.Payment) []string {
	seen := make(map[string]struct{}, len(payments))
	var codes []string
	for _, p := range payments {
		if _, ok := seen[p.CurrencyCode]; ok {
			continue
		}
		seen[p.CurrencyCode] = struct{}{}
		codes = append(codes, p.CurrencyCode)
	}
	return codes
}
