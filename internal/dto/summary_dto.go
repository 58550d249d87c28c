package dto

import (
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryQuery selects the display currency for a payment summary.
type SummaryQuery struct {
	Currency string `form:"currency" binding:"omitempty,len=3"`
}

// ConvertedPaymentResponse is one history row in the display currency.
type ConvertedPaymentResponse struct {
	PaymentResponse
	DisplayAmount    decimal.Decimal `json:"displayAmount"`
	DisplayFormatted string          `json:"displayFormatted"`
}

// PaymentSummaryResponse is what the payments page renders.
type PaymentSummaryResponse struct {
	UserID          string                     `json:"userID"`
	DisplayCurrency string                     `json:"displayCurrency"`
	SourceCurrency  string                     `json:"sourceCurrency"`
	TotalPaid       decimal.Decimal            `json:"totalPaid"`
	TotalDue        decimal.Decimal            `json:"totalDue"`
	PlanTotal       *decimal.Decimal           `json:"planTotal,omitempty"`
	Remaining       decimal.Decimal            `json:"remaining"`
	Percentage      decimal.Decimal            `json:"percentage"`
	GaugePercentage decimal.Decimal            `json:"gaugePercentage"`
	Band            domain.ProgressBand        `json:"band"`
	CompletedCount  int                        `json:"completedCount"`
	MixedCurrencies bool                       `json:"mixedCurrencies"`
	Payments        []ConvertedPaymentResponse `json:"payments"`
}

// ToPaymentSummaryResponse converts a domain.PaymentSummary to its DTO.
// format renders an amount in the display currency.
func ToPaymentSummaryResponse(s *domain.PaymentSummary, format func(decimal.Decimal) string) PaymentSummaryResponse {
	res := PaymentSummaryResponse{
		UserID:          s.UserID,
		DisplayCurrency: s.DisplayCurrency,
		SourceCurrency:  s.SourceCurrency,
		TotalPaid:       s.Totals.TotalPaid,
		TotalDue:        s.Totals.TotalDue,
		Remaining:       s.Totals.Remaining,
		Percentage:      s.Totals.Percentage,
		GaugePercentage: s.GaugePercentage,
		Band:            s.Band,
		CompletedCount:  s.CompletedCount,
		MixedCurrencies: s.MixedCurrencies,
		Payments:        make([]ConvertedPaymentResponse, len(s.Payments)),
	}
	if s.Totals.HasPlan {
		planTotal := s.Totals.PlanTotal
		res.PlanTotal = &planTotal
	}
	for i := range s.Payments {
		cp := s.Payments[i]
		res.Payments[i] = ConvertedPaymentResponse{
			PaymentResponse:  ToPaymentResponse(&cp.Payment),
			DisplayAmount:    cp.DisplayAmount,
			DisplayFormatted: format(cp.DisplayAmount),
		}
	}
	return res
}
