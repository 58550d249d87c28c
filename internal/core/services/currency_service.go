package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type currencyService struct {
	BaseService
	rates portssvc.ExchangeRateSvc
}

// NewCurrencyService creates the currency table and converter service.
func NewCurrencyService(rates portssvc.ExchangeRateSvc) portssvc.CurrencySvcFacade {
	return &currencyService{rates: rates}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) ListCurrencies(_ context.Context) []domain.Currency {
	return domain.SupportedCurrencies()
}

func (s *currencyService) GetCurrencyByCode(_ context.Context, code string) (*domain.Currency, error) {
	currency, ok := domain.LookupCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if !ok {
		return nil, fmt.Errorf("%w: currency %q is not supported", apperrors.ErrNotFound, code)
	}
	return &currency, nil
}

// Convert multiplies amount by the from->to rate. Same-currency requests
// skip the rate lookup entirely; an unknown target logs a warning and
// returns amount unchanged.
func (s *currencyService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) decimal.Decimal {
	from := strings.ToUpper(strings.TrimSpace(fromCurrency))
	to := strings.ToUpper(strings.TrimSpace(toCurrency))
	if from == to {
		return amount
	}

	set := s.rates.FetchExchangeRates(ctx, from)
	rate, ok := set.Rate(to)
	if !ok {
		s.LogWarn(ctx, "Exchange rate not found, returning original amount",
			slog.String("from", set.Base),
			slog.String("to", to),
			slog.Bool("fallback_table", set.Fallback))
		return amount
	}
	return amount.Mul(rate)
}
