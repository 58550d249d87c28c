package dto

import (
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateSetResponse is the API shape of a rate table.
type ExchangeRateSetResponse struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetchedAt"`
	Fallback  bool                       `json:"fallback"`
}

// ToExchangeRateSetResponse converts a domain.ExchangeRateSet to its DTO.
func ToExchangeRateSetResponse(set domain.ExchangeRateSet) ExchangeRateSetResponse {
	return ExchangeRateSetResponse{
		Base:      set.Base,
		Rates:     set.Rates,
		FetchedAt: set.FetchedAt,
		Fallback:  set.Fallback,
	}
}
