package services_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/core/services"
	"github.com/SscSPs/visa_portal_backend/internal/middleware"
	"github.com/SscSPs/visa_portal_backend/internal/repositories/ratecache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRates *MockExchangeRateSvc
	service   portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRates = new(MockExchangeRateSvc)
	suite.service = services.NewCurrencyService(suite.mockRates)
}

func usdTable() domain.ExchangeRateSet {
	return domain.ExchangeRateSet{
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"EUR": dec("0.85"),
			"JPY": dec("110"),
			"XXX": decimal.Zero,
		},
	}
}

func (suite *CurrencyServiceTestSuite) TestConvert_UsesRate() {
	ctx := context.Background()
	suite.mockRates.On("FetchExchangeRates", ctx, "USD").Return(usdTable()).Once()

	got := suite.service.Convert(ctx, decimal.NewFromInt(100), "USD", "EUR")

	suite.True(got.Equal(decimal.NewFromInt(85)), "got %s", got)
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestConvert_SameCurrencySkipsLookup() {
	got := suite.service.Convert(context.Background(), dec("42.5"), "eur", "EUR")

	suite.True(got.Equal(dec("42.5")))
	suite.mockRates.AssertNotCalled(suite.T(), "FetchExchangeRates", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestConvert_SameCurrencyKeepsSignedAmounts() {
	ctx := context.Background()

	suite.True(suite.service.Convert(ctx, dec("-7.25"), "GBP", "gbp").Equal(dec("-7.25")))
	suite.True(suite.service.Convert(ctx, decimal.Zero, " gbp ", "GBP").IsZero())
	suite.mockRates.AssertNotCalled(suite.T(), "FetchExchangeRates", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestConvert_MissingRateReturnsAmount() {
	ctx := context.Background()
	suite.mockRates.On("FetchExchangeRates", ctx, "USD").Return(usdTable()).Twice()

	suite.True(suite.service.Convert(ctx, decimal.NewFromInt(100), "USD", "BRL").Equal(decimal.NewFromInt(100)))
	// A zero multiplier counts as missing.
	suite.True(suite.service.Convert(ctx, decimal.NewFromInt(100), "USD", "XXX").Equal(decimal.NewFromInt(100)))
}

func (suite *CurrencyServiceTestSuite) TestConvert_ZeroAmount() {
	ctx := context.Background()
	suite.mockRates.On("FetchExchangeRates", ctx, "USD").Return(usdTable()).Once()

	suite.True(suite.service.Convert(ctx, decimal.Zero, "USD", "JPY").IsZero())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode() {
	ctx := context.Background()

	cur, err := suite.service.GetCurrencyByCode(ctx, "inr")
	suite.Require().NoError(err)
	suite.Equal("INR", cur.CurrencyCode)
	suite.Equal("₹", cur.Symbol)

	_, err = suite.service.GetCurrencyByCode(ctx, "XYZ")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies() {
	list := suite.service.ListCurrencies(context.Background())
	suite.Len(list, 10)
	suite.Equal("USD", list[0].CurrencyCode)
}

func TestCurrencyServiceSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

type failingSource struct{}

func (failingSource) Latest(context.Context, string) (map[string]decimal.Decimal, error) {
	return nil, errors.New("network unreachable")
}

func TestConvert_FallbackTableWhenOffline(t *testing.T) {
	ctx := context.Background()
	store := ratecache.NewMemoryStore()
	rates := services.NewExchangeRateService(store, failingSource{})
	svc := services.NewCurrencyService(rates)

	got := svc.Convert(ctx, decimal.NewFromInt(100), "USD", "EUR")
	assert.True(t, got.Equal(decimal.NewFromInt(85)), "got %s", got)

	// Fallback tables are never cached.
	_, err := store.Get(ctx, "USD")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestConvert_CachedAcrossCalls(t *testing.T) {
	ctx := context.Background()
	src := &countingSource{calls: map[string]int{}}
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	svc := services.NewCurrencyService(services.NewExchangeRateService(
		ratecache.NewMemoryStore(), src, services.WithClock(func() time.Time { return now })))

	assert.True(t, svc.Convert(ctx, decimal.NewFromInt(10), "USD", "EUR").Equal(decimal.NewFromInt(9)))
	assert.True(t, svc.Convert(ctx, decimal.NewFromInt(20), "USD", "EUR").Equal(decimal.NewFromInt(18)))
	assert.Equal(t, 1, src.calls["USD"])
}

func TestConvert_MissingRateLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	ctx := middleware.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	rates := new(MockExchangeRateSvc)
	rates.On("FetchExchangeRates", ctx, "USD").Return(usdTable()).Once()

	got := services.NewCurrencyService(rates).Convert(ctx, decimal.NewFromInt(100), "USD", "BRL")
	assert.True(t, got.Equal(decimal.NewFromInt(100)))

	var records []map[string]any
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.Len(t, records, 1)
	assert.Equal(t, "WARN", records[0]["level"])
	assert.Equal(t, "Exchange rate not found, returning original amount", records[0]["msg"])
	assert.Equal(t, "USD", records[0]["from"])
	assert.Equal(t, "BRL", records[0]["to"])
	assert.Equal(t, false, records[0]["fallback_table"])
	rates.AssertExpectations(t)
}

// gatedSource blocks every upstream request until release is closed.
type gatedSource struct {
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *gatedSource) Latest(context.Context, string) (map[string]decimal.Decimal, error) {
	s.calls.Add(1)
	s.once.Do(func() { close(s.entered) })
	<-s.release
	return map[string]decimal.Decimal{"EUR": dec("0.9")}, nil
}

// missCountingStore records how many lookups reached the cache.
type missCountingStore struct {
	*ratecache.MemoryStore
	gets atomic.Int32
}

func (s *missCountingStore) Get(ctx context.Context, base string) (*domain.ExchangeRateSet, error) {
	s.gets.Add(1)
	return s.MemoryStore.Get(ctx, base)
}

func TestConvert_ConcurrentMissesShareOneFetch(t *testing.T) {
	const callers = 20
	src := &gatedSource{entered: make(chan struct{}), release: make(chan struct{})}
	store := &missCountingStore{MemoryStore: ratecache.NewMemoryStore()}
	svc := services.NewCurrencyService(services.NewExchangeRateService(store, src))

	results := make([]decimal.Decimal, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = svc.Convert(context.Background(), decimal.NewFromInt(10), "USD", "EUR")
		}()
	}

	select {
	case <-src.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("no upstream request was made")
	}
	require.Eventually(t, func() bool { return store.gets.Load() == callers }, 2*time.Second, 5*time.Millisecond)
	// Let the callers that missed the cache queue up behind the shared fetch.
	time.Sleep(50 * time.Millisecond)
	close(src.release)
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	for _, got := range results {
		assert.True(t, got.Equal(decimal.NewFromInt(9)), "got %s", got)
	}
}
