// Package ratesource fetches live exchange rates from an HTTP provider.
package ratesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// maxBodyBytes caps provider responses; a full rate table is a few KB.
const maxBodyBytes = 1 << 20

// ErrMalformedResponse is returned when the provider body has no usable rate table.
var ErrMalformedResponse = errors.New("ratesource: malformed response")

// HTTPSource reads rate tables from an exchangerate-api style endpoint:
// GET {baseURL}/latest/{BASE} answering {"base":..., "rates":{"EUR":0.85,...}}.
type HTTPSource struct {
	baseURL string
	http    *http.Client
}

var _ portsrepo.ExchangeRateSource = (*HTTPSource)(nil)

// NewHTTPSource creates a source for baseURL. Requests give up after timeout.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Latest returns every multiplier the provider publishes for base.
func (s *HTTPSource) Latest(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/latest/%s", s.baseURL, url.PathEscape(base))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ratesource: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ratesource: fetching %s: %w", base, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("ratesource: reading body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("ratesource: %s returned status %d", endpoint, resp.StatusCode)
	}

	return parseRates(body)
}

func parseRates(body []byte) (map[string]decimal.Decimal, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrMalformedResponse)
	}
	node := gjson.GetBytes(body, "rates")
	if !node.IsObject() {
		return nil, fmt.Errorf("%w: missing rates object", ErrMalformedResponse)
	}

	rates := make(map[string]decimal.Decimal)
	var parseErr error
	node.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			parseErr = fmt.Errorf("%w: rate for %s is not a number", ErrMalformedResponse, key.String())
			return false
		}
		rate, err := decimal.NewFromString(value.Raw)
		if err != nil {
			parseErr = fmt.Errorf("%w: rate for %s: %v", ErrMalformedResponse, key.String(), err)
			return false
		}
		rates[key.String()] = rate
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return rates, nil
}
