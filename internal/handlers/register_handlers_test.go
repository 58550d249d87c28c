package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
	"github.com/SscSPs/visa_portal_backend/internal/core/domain"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/dto"
	"github.com/SscSPs/visa_portal_backend/internal/handlers"
	"github.com/SscSPs/visa_portal_backend/internal/middleware"
	"github.com/SscSPs/visa_portal_backend/internal/platform/config"
	"github.com/SscSPs/visa_portal_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "visa-portal-test"
	testOrigin = "https://portal.example.com"
)

// --- Test Suite ---
type RoutesTestSuite struct {
	suite.Suite
	router       *gin.Engine
	cfg          *config.Config
	currency     *MockCurrencyService
	exchangeRate *MockExchangeRateService
	profile      *MockProfileService
	payment      *MockPaymentService
	plan         *MockPaymentPlanService
	summary      *MockSummaryService
	document     *MockDocumentService
	login        *MockLoginHistoryService
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		IsProduction:       true,
		JWTSecret:          testSecret,
		JWTIssuer:          testIssuer,
		AdminRole:          "admin",
		CORSAllowedOrigins: []string{testOrigin},
		ConvertRateLimit:   "1000-M",
	}
	suite.currency = new(MockCurrencyService)
	suite.exchangeRate = new(MockExchangeRateService)
	suite.profile = new(MockProfileService)
	suite.payment = new(MockPaymentService)
	suite.plan = new(MockPaymentPlanService)
	suite.summary = new(MockSummaryService)
	suite.document = new(MockDocumentService)
	suite.login = new(MockLoginHistoryService)

	suite.router = suite.newRouter()
}

func (suite *RoutesTestSuite) TearDownTest() {
	suite.currency.AssertExpectations(suite.T())
	suite.exchangeRate.AssertExpectations(suite.T())
	suite.profile.AssertExpectations(suite.T())
	suite.payment.AssertExpectations(suite.T())
	suite.plan.AssertExpectations(suite.T())
	suite.summary.AssertExpectations(suite.T())
	suite.document.AssertExpectations(suite.T())
	suite.login.AssertExpectations(suite.T())
}

func (suite *RoutesTestSuite) newRouter() *gin.Engine {
	r := gin.New()
	container := &portssvc.ServiceContainer{
		Currency:     suite.currency,
		ExchangeRate: suite.exchangeRate,
		Profile:      suite.profile,
		Payment:      suite.payment,
		PaymentPlan:  suite.plan,
		Summary:      suite.summary,
		Document:     suite.document,
		LoginHistory: suite.login,
	}
	handlers.RegisterRoutes(r, suite.cfg, container, &utils.PosthogClientWrapper{})
	return r
}

// generateTestToken creates a signed session token carrying role.
func (suite *RoutesTestSuite) generateTestToken(userID, role string) string {
	claims := middleware.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role: role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *RoutesTestSuite) do(method, url, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Public routes ---

func (suite *RoutesTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *RoutesTestSuite) TestListCurrencies_Public() {
	suite.currency.On("ListCurrencies", mock.Anything).Return(domain.SupportedCurrencies()).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res, len(domain.SupportedCurrencies()))
}

func (suite *RoutesTestSuite) TestGetCurrencyByCode_NotFound() {
	suite.currency.On("GetCurrencyByCode", mock.Anything, "XYZ").
		Return(nil, fmt.Errorf("%w: currency XYZ", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/XYZ", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RoutesTestSuite) TestConvert_Success() {
	suite.currency.On("Convert", mock.Anything,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(100)) }),
		"USD", "EUR",
	).Return(decimal.NewFromInt(85)).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/convert?amount=100&from=usd&to=EUR", "", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("USD", res.From)
	suite.Equal("EUR", res.To)
	suite.True(res.Converted.Equal(decimal.NewFromInt(85)))
	suite.Equal("€85.00", res.Formatted)
}

func (suite *RoutesTestSuite) TestConvert_BadInput() {
	tests := []struct {
		name string
		url  string
	}{
		{"missing amount", "/api/v1/currencies/convert?from=USD&to=EUR"},
		{"non numeric amount", "/api/v1/currencies/convert?amount=abc&from=USD&to=EUR"},
		{"unknown currency", "/api/v1/currencies/convert?amount=1&from=USD&to=ZZZ"},
		{"short code", "/api/v1/currencies/convert?amount=1&from=US&to=EUR"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodGet, tt.url, "", nil)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.currency.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoutesTestSuite) TestConvert_Throttled() {
	suite.cfg.ConvertRateLimit = "2-M"
	suite.router = suite.newRouter()
	suite.currency.On("Convert", mock.Anything, mock.Anything, "USD", "EUR").Return(decimal.NewFromInt(1)).Twice()

	url := "/api/v1/currencies/convert?amount=1&from=USD&to=EUR"
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, url, "", nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, url, "", nil).Code)
	suite.Equal(http.StatusTooManyRequests, suite.do(http.MethodGet, url, "", nil).Code)
}

func (suite *RoutesTestSuite) TestExchangeRates() {
	set := domain.ExchangeRateSet{
		Base:     "USD",
		Rates:    map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.85")},
		Fallback: true,
	}
	suite.exchangeRate.On("FetchExchangeRates", mock.Anything, "USD").Return(set).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/usd", "", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.ExchangeRateSetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Fallback)
	suite.True(res.Rates["EUR"].Equal(decimal.RequireFromString("0.85")))
}

func (suite *RoutesTestSuite) TestCORS_AllowedOrigin() {
	suite.currency.On("ListCurrencies", mock.Anything).Return([]domain.Currency{}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	req.Header.Set("Origin", testOrigin)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *RoutesTestSuite) TestCORS_AnyOriginWhenNoneConfigured() {
	suite.cfg.CORSAllowedOrigins = nil
	suite.router = suite.newRouter()
	suite.currency.On("ListCurrencies", mock.Anything).Return([]domain.Currency{}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	req.Header.Set("Origin", "https://elsewhere.example.org")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	suite.Empty(w.Header().Get("Access-Control-Allow-Credentials"))
}

// --- Authentication ---

func (suite *RoutesTestSuite) TestPortal_RequiresToken() {
	w := suite.do(http.MethodGet, "/api/v1/portal/profile", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RoutesTestSuite) TestPortal_RejectsForeignIssuer() {
	claims := middleware.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	suite.Require().NoError(err)

	w := suite.do(http.MethodGet, "/api/v1/portal/profile", token, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RoutesTestSuite) TestAdmin_ForbiddenForClients() {
	token := suite.generateTestToken(uuid.NewString(), "client")

	w := suite.do(http.MethodGet, "/api/v1/admin/clients", token, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

// --- Portal ---

func (suite *RoutesTestSuite) TestGetMyProfile() {
	userID := uuid.NewString()
	suite.profile.On("GetProfile", mock.Anything, userID).
		Return(&domain.Profile{UserID: userID, FirstName: "Ana", LastName: "Silva"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/portal/profile", suite.generateTestToken(userID, "client"), nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.ProfileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("Ana Silva", res.DisplayName)
}

func (suite *RoutesTestSuite) TestMySummary_Success() {
	userID := uuid.NewString()
	summary := &domain.PaymentSummary{
		UserID:          userID,
		DisplayCurrency: "EUR",
		SourceCurrency:  "USD",
		Totals: domain.DisplayTotals{
			TotalPaid:  decimal.NewFromInt(340),
			TotalDue:   decimal.NewFromInt(510),
			PlanTotal:  decimal.NewFromInt(850),
			HasPlan:    true,
			Remaining:  decimal.NewFromInt(510),
			Percentage: decimal.NewFromInt(40),
		},
		GaugePercentage: decimal.NewFromInt(40),
		Band:            domain.BandStarted,
		CompletedCount:  1,
	}
	suite.summary.On("Summarize", mock.Anything, userID, userID, "EUR").Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/portal/payments/summary?currency=EUR", suite.generateTestToken(userID, "client"), nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.PaymentSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(domain.BandStarted, res.Band)
	suite.Require().NotNil(res.PlanTotal)
	suite.True(res.PlanTotal.Equal(decimal.NewFromInt(850)))
	suite.True(res.Remaining.Equal(decimal.NewFromInt(510)))
}

func (suite *RoutesTestSuite) TestMySummary_Superseded() {
	userID := uuid.NewString()
	suite.summary.On("Summarize", mock.Anything, userID, userID, "GBP").
		Return(nil, fmt.Errorf("summary for %s: %w", userID, apperrors.ErrSuperseded)).Once()

	w := suite.do(http.MethodGet, "/api/v1/portal/payments/summary?currency=GBP", suite.generateTestToken(userID, "client"), nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *RoutesTestSuite) TestMySummary_InvalidCurrency() {
	userID := uuid.NewString()
	suite.summary.On("Summarize", mock.Anything, userID, userID, "ZZZ").
		Return(nil, fmt.Errorf("%w: 'ZZZ' is not an ISO 4217 currency code", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, "/api/v1/portal/payments/summary?currency=ZZZ", suite.generateTestToken(userID, "client"), nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Admin ---

func (suite *RoutesTestSuite) TestCreatePayment_Success() {
	adminID := uuid.NewString()
	clientID := uuid.NewString()
	body := map[string]any{
		"userID":       clientID,
		"amount":       "250.00",
		"currencyCode": "EUR",
		"status":       "completed",
		"description":  "Biometrics fee",
	}
	created := &domain.Payment{
		PaymentID:    uuid.NewString(),
		UserID:       clientID,
		Amount:       decimal.RequireFromString("250.00"),
		CurrencyCode: "EUR",
		Status:       domain.PaymentCompleted,
		PaymentDate:  time.Now().UTC(),
		AuditFields:  domain.AuditFields{CreatedBy: adminID},
	}
	suite.payment.On("CreatePayment", mock.Anything,
		mock.MatchedBy(func(req dto.CreatePaymentRequest) bool {
			return req.UserID == clientID && req.Amount.Equal(decimal.NewFromInt(250)) && req.Status == "completed"
		}),
		adminID,
	).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/payments", suite.generateTestToken(adminID, "admin"), body)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(created.PaymentID, res.PaymentID)
	suite.Equal(adminID, res.CreatedBy)
}

func (suite *RoutesTestSuite) TestCreatePayment_InvalidStatus() {
	body := map[string]any{
		"userID":       uuid.NewString(),
		"amount":       "10",
		"currencyCode": "USD",
		"status":       "bogus",
	}

	w := suite.do(http.MethodPost, "/api/v1/admin/payments", suite.generateTestToken(uuid.NewString(), "admin"), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.payment.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoutesTestSuite) TestDeletePayment_NotFound() {
	paymentID := uuid.NewString()
	suite.payment.On("DeletePayment", mock.Anything, paymentID).
		Return(fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/admin/payments/"+paymentID, suite.generateTestToken(uuid.NewString(), "admin"), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RoutesTestSuite) TestClientSummary_Admin() {
	clientID := uuid.NewString()
	adminID := uuid.NewString()
	suite.summary.On("Summarize", mock.Anything, adminID, clientID, "").
		Return(&domain.PaymentSummary{UserID: clientID, DisplayCurrency: "USD", Band: domain.BandBehind}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/clients/"+clientID+"/summary", suite.generateTestToken(adminID, "admin"), nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RoutesTestSuite) TestListClients_RepositoryFailure() {
	suite.profile.On("ListClients", mock.Anything, 50, 0).Return(nil, fmt.Errorf("connection reset")).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/clients", suite.generateTestToken(uuid.NewString(), "admin"), nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
}

// --- Documents and sign-ins ---

func (suite *RoutesTestSuite) TestRecordMyLogin() {
	userID := uuid.NewString()
	loggedAt := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)
	suite.login.On("RecordLogin", mock.Anything, userID, "192.0.2.1", "").
		Return(&domain.LoginRecord{LoginID: "login-1", UserID: userID, LoginTime: loggedAt, IPAddress: "192.0.2.1"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/portal/logins", suite.generateTestToken(userID, "client"), nil)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("login-1", res.LoginID)
	suite.True(res.LoginTime.Equal(loggedAt))
}

func (suite *RoutesTestSuite) TestListMyDocuments() {
	userID := uuid.NewString()
	suite.document.On("ListUserDocuments", mock.Anything, userID).Return([]domain.ClientDocument{
		{DocumentID: "doc-1", UserID: userID, FileName: "passport.pdf", FilePath: userID + "/passport.pdf", FileSize: 2048},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/portal/documents", suite.generateTestToken(userID, "client"), nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var res []dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res, 1)
	suite.Equal("passport.pdf", res[0].FileName)
	suite.Equal(int64(2048), res[0].FileSize)
}

func (suite *RoutesTestSuite) TestRegisterClientDocument_Success() {
	adminID := uuid.NewString()
	clientID := uuid.NewString()
	req := dto.RegisterDocumentRequest{FileName: "passport.pdf", FileSize: 2048, FileType: "application/pdf"}
	suite.document.On("RegisterDocument", mock.Anything, clientID, req, adminID).
		Return(&domain.ClientDocument{
			DocumentID:  "doc-1",
			UserID:      clientID,
			FileName:    "passport.pdf",
			FilePath:    clientID + "/passport.pdf",
			FileSize:    2048,
			AuditFields: domain.AuditFields{CreatedBy: adminID},
		}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/clients/"+clientID+"/documents", suite.generateTestToken(adminID, "admin"), req)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(clientID+"/passport.pdf", res.FilePath)
	suite.Equal(adminID, res.CreatedBy)
}

func (suite *RoutesTestSuite) TestRegisterClientDocument_MissingFileName() {
	w := suite.do(http.MethodPost, "/api/v1/admin/clients/"+uuid.NewString()+"/documents",
		suite.generateTestToken(uuid.NewString(), "admin"), gin.H{"fileSize": 10})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RoutesTestSuite) TestClientFootprint_Admin() {
	clientID := uuid.NewString()
	lastLogin := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)
	suite.login.On("GetFootprint", mock.Anything, clientID).Return(&domain.ClientFootprint{
		UserID:    clientID,
		Documents: []domain.ClientDocument{{DocumentID: "doc-1", UserID: clientID, FileName: "bank-statement.pdf"}},
		Logins: []domain.LoginRecord{
			{LoginID: "login-2", UserID: clientID, LoginTime: lastLogin},
			{LoginID: "login-1", UserID: clientID, LoginTime: lastLogin.Add(-24 * time.Hour)},
		},
		LastLogin: &lastLogin,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/clients/"+clientID+"/footprint", suite.generateTestToken(uuid.NewString(), "admin"), nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ClientFootprintResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res.Documents, 1)
	suite.Len(res.Logins, 2)
	suite.Require().NotNil(res.LastLogin)
	suite.True(res.LastLogin.Equal(lastLogin))
}

func (suite *RoutesTestSuite) TestClientFootprint_ForbiddenForClients() {
	w := suite.do(http.MethodGet, "/api/v1/admin/clients/"+uuid.NewString()+"/footprint", suite.generateTestToken(uuid.NewString(), "client"), nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RoutesTestSuite) TestDeleteDocument_NotFound() {
	documentID := uuid.NewString()
	suite.document.On("DeleteDocument", mock.Anything, documentID).
		Return(fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/admin/documents/"+documentID, suite.generateTestToken(uuid.NewString(), "admin"), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}
