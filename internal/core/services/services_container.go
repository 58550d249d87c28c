package services

import (
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/visa_portal_backend/internal/core/ports/services"
	"github.com/SscSPs/visa_portal_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	rateCache portsrepo.RateCacheStore,
	rateSource portsrepo.ExchangeRateSource,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Rates first: the converter and the summary depend on them
	container.ExchangeRate = NewExchangeRateService(rateCache, rateSource, WithRatesCacheTTL(cfg.RatesCacheTTL))
	container.Currency = NewCurrencyService(container.ExchangeRate)

	container.Profile = NewProfileService(repos.ProfileRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo)
	container.PaymentPlan = NewPaymentPlanService(repos.PaymentPlanRepo)
	container.Summary = NewSummaryService(
		repos.PaymentRepo,
		repos.PaymentPlanRepo,
		container.Currency,
		NewSelectionTracker(),
		cfg.PaymentsSourceCurrency,
	)

	container.Document = NewDocumentService(repos.DocumentRepo)
	container.LoginHistory = NewLoginHistoryService(repos.LoginRepo, repos.DocumentRepo)

	return container
}
