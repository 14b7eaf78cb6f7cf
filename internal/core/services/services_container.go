package services

import (
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/platform/config"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	// One guard for every list screen so a session's newer request supersedes its older one
	guard := pagination.NewGuard()
	perPage := WithDefaultPerPage(cfg.DefaultPerPage)

	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(
		repos.AuthGateway,
		repos.Sessions,
		cfg.JWTSecret,
		WithSessionTTL(cfg.SessionTTL),
		WithTokenIssuer(cfg.JWTIssuer),
	)
	container.User = NewUserService(repos.UserRepo)
	container.Directory = NewDirectoryService(repos.CustomerRepo, repos.SupplierRepo, repos.AccountTypeRepo)

	container.Budget = NewBudgetService(repos.BudgetRepo, guard, perPage)
	container.Contract = NewContractService(repos.ContractRepo, repos.BudgetRepo, guard, perPage)
	container.Bill = NewBillService(repos.BillRepo, repos.PaymentRepo, guard, perPage)

	container.Dashboard = NewDashboardService(repos.ReportingRepo, guard)
	container.Overview = NewOverviewService(repos.OverviewRepo)
	container.Export = NewExportService(repos.ContractRepo, repos.BillRepo)

	return container
}
