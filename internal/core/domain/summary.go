package domain

import "github.com/shopspring/decimal"

// ProgressBand is the colour band a payment gauge falls into.
type ProgressBand string

const (
	BandComplete ProgressBand = "complete"
	BandOnTrack  ProgressBand = "on_track"
	BandHalfway  ProgressBand = "halfway"
	BandStarted  ProgressBand = "started"
	BandBehind   ProgressBand = "behind"
)

// DisplayTotals are the aggregate figures in the selected display currency.
// Percentage is not clamped.
type DisplayTotals struct {
	TotalPaid  decimal.Decimal `json:"totalPaid"`
	TotalDue   decimal.Decimal `json:"totalDue"`
	PlanTotal  decimal.Decimal `json:"planTotal"`
	HasPlan    bool            `json:"hasPlan"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ConvertedPayment pairs a payment with its amount in the display currency.
type ConvertedPayment struct {
	Payment
	DisplayAmount decimal.Decimal `json:"displayAmount"`
}

// PaymentSummary is everything the payments page renders for one client.
type PaymentSummary struct {
	UserID          string             `json:"userID"`
	DisplayCurrency string             `json:"displayCurrency"`
	SourceCurrency  string             `json:"sourceCurrency"`
	Totals          DisplayTotals      `json:"totals"`
	GaugePercentage decimal.Decimal    `json:"gaugePercentage"`
	Band            ProgressBand       `json:"band"`
	CompletedCount  int                `json:"completedCount"`
	MixedCurrencies bool               `json:"mixedCurrencies"`
	Payments        []ConvertedPayment `json:"payments"`
}
