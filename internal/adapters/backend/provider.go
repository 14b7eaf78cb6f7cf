package backend

import (
	"github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to the backend. The session
// store and reporting source are supplied by the caller since neither has to
// live in the backend.
func NewRepositoryProvider(c *Client, sessions repositories.SessionStore, reporting repositories.ReportingRepository) repositories.RepositoryProvider {
	if reporting == nil {
		reporting = NewReportingRepository(c)
	}
	return repositories.RepositoryProvider{
		CustomerRepo:    NewCustomerRepository(c),
		SupplierRepo:    NewSupplierRepository(c),
		AccountTypeRepo: NewAccountTypeRepository(c),
		BudgetRepo:      NewBudgetRepository(c),
		ContractRepo:    NewContractRepository(c),
		BillRepo:        NewBillRepository(c),
		PaymentRepo:     NewPaymentRepository(c),
		UserRepo:        NewUserRepository(c),
		AuthGateway:     NewAuthGateway(c),
		OverviewRepo:    NewOverviewRepository(c),
		ReportingRepo:   reporting,
		Sessions:        sessions,
	}
}
