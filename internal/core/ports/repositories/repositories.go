package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CustomerRepo    CustomerRepositoryFacade
	SupplierRepo    SupplierRepositoryFacade
	AccountTypeRepo AccountTypeRepositoryFacade
	BudgetRepo      BudgetRepositoryFacade
	ContractRepo    ContractRepositoryFacade
	BillRepo        BillRepositoryFacade
	PaymentRepo     PaymentRepositoryFacade
	UserRepo        UserRepositoryFacade
	AuthGateway     AuthGateway
	OverviewRepo    OverviewRepository
	ReportingRepo   ReportingRepository
	Sessions        SessionStore
}
