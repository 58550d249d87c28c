package repositories

import (
	"context"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateCacheStore persists rate tables keyed by base currency.
type RateCacheStore interface {
	// Get returns the cached set for base, or apperrors.ErrNotFound.
	Get(ctx context.Context, base string) (*domain.ExchangeRateSet, error)

	// Put stores set under set.Base, replacing any previous entry for that base.
	Put(ctx context.Context, set domain.ExchangeRateSet) error
}

// ExchangeRateSource fetches the latest rate table from an external provider.
type ExchangeRateSource interface {
	// Latest returns multipliers relative to base.
	Latest(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}
