package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// DefaultRatesCacheTTL is how long a fetched rate table is served from cache.
const DefaultRatesCacheTTL = time.Hour

// fallbackRates is served, uncached, when the rate source cannot be reached.
var fallbackRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("0.85"),
	"GBP": decimal.RequireFromString("0.73"),
	"CAD": decimal.RequireFromString("1.25"),
	"AUD": decimal.RequireFromString("1.35"),
	"JPY": decimal.NewFromInt(110),
	"INR": decimal.NewFromInt(75),
}

// exchangeRateService resolves rate tables from the cache, the live source,
// or the built-in fallback table, in that order.
type exchangeRateService struct {
	BaseService
	cache  portsrepo.RateCacheStore
	source portsrepo.ExchangeRateSource
	ttl    time.Duration
	now    func() time.Time
	flight singleflight.Group
}

// ExchangeRateOption is a functional option for configuring the exchange rate service
type ExchangeRateOption func(*exchangeRateService)

// WithRatesCacheTTL overrides DefaultRatesCacheTTL. Non-positive values are ignored.
func WithRatesCacheTTL(ttl time.Duration) ExchangeRateOption {
	return func(s *exchangeRateService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock replaces time.Now for freshness checks and fetch timestamps.
func WithClock(now func() time.Time) ExchangeRateOption {
	return func(s *exchangeRateService) {
		s.now = now
	}
}

// NewExchangeRateService creates a new exchange rate service with the provided options
func NewExchangeRateService(cache portsrepo.RateCacheStore, source portsrepo.ExchangeRateSource, options ...ExchangeRateOption) portssvc.ExchangeRateSvc {
	svc := &exchangeRateService{
		cache:  cache,
		source: source,
		ttl:    DefaultRatesCacheTTL,
		now:    time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvc = (*exchangeRateService)(nil)

func (s *exchangeRateService) FetchExchangeRates(ctx context.Context, base string) domain.ExchangeRateSet {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		base = domain.DefaultBaseCurrency
	}

	if set, ok := s.cached(ctx, base); ok {
		return set
	}

	// Concurrent misses for one base share a single upstream request. The
	// shared fetch outlives any one caller's cancellation; the HTTP client
	// timeout still bounds it.
	v, _, _ := s.flight.Do(base, func() (any, error) {
		return s.fetch(context.WithoutCancel(ctx), base), nil
	})
	set := v.(domain.ExchangeRateSet)
	set.Rates = copyRates(set.Rates)
	return set
}

func (s *exchangeRateService) cached(ctx context.Context, base string) (domain.ExchangeRateSet, bool) {
	set, err := s.cache.Get(ctx, base)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Ignoring unreadable rate cache entry",
				slog.String("base", base),
				slog.String("error", err.Error()))
		}
		return domain.ExchangeRateSet{}, false
	}
	if !set.IsFreshFor(base, s.now(), s.ttl) {
		s.LogDebug(ctx, "Rate cache entry expired",
			slog.String("base", base),
			slog.Time("fetched_at", set.FetchedAt))
		return domain.ExchangeRateSet{}, false
	}
	return *set, true
}

func (s *exchangeRateService) fetch(ctx context.Context, base string) domain.ExchangeRateSet {
	rates, err := s.source.Latest(ctx, base)
	if err != nil {
		s.LogError(ctx, err, "Error fetching exchange rates, serving fallback table",
			slog.String("base", base))
		return domain.ExchangeRateSet{
			Base:      base,
			Rates:     copyRates(fallbackRates),
			FetchedAt: s.now(),
			Fallback:  true,
		}
	}

	set := domain.ExchangeRateSet{Base: base, Rates: rates, FetchedAt: s.now()}
	if err := s.cache.Put(ctx, set); err != nil {
		s.LogError(ctx, err, "Failed to write rate cache", slog.String("base", base))
	}
	s.LogDebug(ctx, "Fetched exchange rates",
		slog.String("base", base),
		slog.Int("rate_count", len(rates)))
	return set
}

func copyRates(rates map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(rates))
	for k, v := range rates {
		out[k] = v
	}
	return out
}
