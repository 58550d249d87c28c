package services

import (
	"context"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc exposes the static display-currency table
type CurrencyReaderSvc interface {
	// ListCurrencies returns every supported display currency.
	ListCurrencies(ctx context.Context) []domain.Currency

	// GetCurrencyByCode returns one supported currency or apperrors.ErrNotFound.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
}

// CurrencyConverterSvc converts amounts between currencies
type CurrencyConverterSvc interface {
	// Convert maps amount from one currency to another. It never fails on
	// rate problems: unknown targets return amount unchanged.
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) decimal.Decimal
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyConverterSvc
}

// ExchangeRateSvc resolves rate tables through the cache and rate source
type ExchangeRateSvc interface {
	// FetchExchangeRates returns a rate table for base. On source failure
	// it returns the built-in fallback table instead of an error.
	FetchExchangeRates(ctx context.Context, base string) domain.ExchangeRateSet
}
