package services_test

import (
	"context"
	"sync"

	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateCacheStore ---
type MockRateCacheStore struct {
	mock.Mock
}

func (m *MockRateCacheStore) Get(ctx context.Context, base string) (*domain.ExchangeRateSet, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRateSet), args.Error(1)
}

func (m *MockRateCacheStore) Put(ctx context.Context, set domain.ExchangeRateSet) error {
	args := m.Called(ctx, set)
	return args.Error(0)
}

// --- Mock ExchangeRateSource ---
type MockExchangeRateSource struct {
	mock.Mock
}

func (m *MockExchangeRateSource) Latest(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// --- Mock ExchangeRateSvc ---
type MockExchangeRateSvc struct {
	mock.Mock
}

func (m *MockExchangeRateSvc) FetchExchangeRates(ctx context.Context, base string) domain.ExchangeRateSet {
	args := m.Called(ctx, base)
	return args.Get(0).(domain.ExchangeRateSet)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Mock PaymentPlanRepository ---
type MockPaymentPlanRepository struct {
	mock.Mock
}

func (m *MockPaymentPlanRepository) FindPlanByUserID(ctx context.Context, userID string) (*domain.PaymentPlan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentPlan), args.Error(1)
}

func (m *MockPaymentPlanRepository) UpsertPlan(ctx context.Context, plan domain.PaymentPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPaymentPlanRepository) DeletePlan(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListProfiles(ctx context.Context, limit, offset int) ([]domain.Profile, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// tableConverter converts with fixed "FROM->TO" multipliers and records calls.
type tableConverter struct {
	mu    sync.Mutex
	rates map[string]decimal.Decimal
	calls int
}

func (c *tableConverter) Convert(_ context.Context, amount decimal.Decimal, from, to string) decimal.Decimal {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if from == to {
		return amount
	}
	if rate, ok := c.rates[from+"->"+to]; ok {
		return amount.Mul(rate)
	}
	return amount
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) ListDocumentsByUser(ctx context.Context, userID string) ([]domain.ClientDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientDocument), args.Error(1)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, doc domain.ClientDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

// --- Mock LoginHistoryRepository ---
type MockLoginHistoryRepository struct {
	mock.Mock
}

func (m *MockLoginHistoryRepository) ListLoginsByUser(ctx context.Context, userID string, limit, offset int) ([]domain.LoginRecord, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoginRecord), args.Error(1)
}

func (m *MockLoginHistoryRepository) SaveLogin(ctx context.Context, rec domain.LoginRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
