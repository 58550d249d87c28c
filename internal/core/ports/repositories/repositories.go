package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProfileRepo     ProfileRepositoryFacade
	PaymentRepo     PaymentRepositoryFacade
	PaymentPlanRepo PaymentPlanRepositoryFacade
	DocumentRepo    DocumentRepositoryFacade
	LoginRepo       LoginHistoryRepositoryFacade
}
