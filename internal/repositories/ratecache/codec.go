// Package ratecache holds RateCacheStore implementations: in-process,
// SQLite on local disk, and Redis for deployments with several replicas.
package ratecache

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// keyPrefix namespaces cache entries; the base currency is appended.
const keyPrefix = "currency_rates_cache:"

func encode(set domain.ExchangeRateSet) ([]byte, error) {
	return json.Marshal(set)
}

func decode(payload []byte) (*domain.ExchangeRateSet, error) {
	var set domain.ExchangeRateSet
	if err := json.Unmarshal(payload, &set); err != nil {
		return nil, fmt.Errorf("decoding cached rates: %w", err)
	}
	if set.Base == "" || set.Rates == nil {
		return nil, fmt.Errorf("decoding cached rates: entry has no base or rates")
	}
	return &set, nil
}

func cloneRates(rates map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(rates))
	for k, v := range rates {
		out[k] = v
	}
	return out
}
