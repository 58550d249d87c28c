package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/visa_portal_backend/internal/adapters/ratesource"
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/core/services"
	"github.com/SscSPs/visa_portal_backend/internal/platform/config"
	"github.com/SscSPs/visa_portal_backend/internal/repositories/ratecache"
)

// openRateCache builds the rate cache selected by RATE_CACHE_DRIVER. The
// returned func releases it. When the configured backend cannot be opened
// the in-memory store is used instead.
func openRateCache(ctx context.Context, c *config.Config, log *slog.Logger) (portsrepo.RateCacheStore, func()) {
	switch c.RateCacheDriver {
	case config.RateCacheSQLite:
		store, err := ratecache.OpenSQLite(c.RateCacheSQLitePath)
		if err == nil {
			log.Info("Rate cache: sqlite", slog.String("path", c.RateCacheSQLitePath))
			return store, closer(store.Close, log)
		}
		log.Warn("SQLite rate cache unavailable, using memory", slog.String("error", err.Error()))
	case config.RateCacheRedis:
		store, err := ratecache.NewRedisStore(ctx, c.RedisAddr, c.RedisPassword, c.RedisDB, c.RatesCacheTTL)
		if err == nil {
			log.Info("Rate cache: redis", slog.String("addr", c.RedisAddr))
			return store, closer(store.Close, log)
		}
		log.Warn("Redis rate cache unavailable, using memory", slog.String("error", err.Error()))
	}
	return ratecache.NewMemoryStore(), func() {}
}

func closer(closeFn func() error, log *slog.Logger) func() {
	return func() {
		if err := closeFn(); err != nil {
			log.Error("Error closing rate cache", slog.String("error", err.Error()))
		}
	}
}

// newRateServices wires the rate and currency services without a database.
func newRateServices(ctx context.Context) (portssvc.ExchangeRateSvc, portssvc.CurrencySvcFacade, func()) {
	store, release := openRateCache(ctx, cfg, logger)
	source := ratesource.NewHTTPSource(cfg.RatesAPIURL, cfg.RatesHTTPTimeout)
	rates := services.NewExchangeRateService(store, source, services.WithRatesCacheTTL(cfg.RatesCacheTTL))
	return rates, services.NewCurrencyService(rates), release
}

func requireDatabaseURL() error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("PGSQL_URL is not set")
	}
	return nil
}
