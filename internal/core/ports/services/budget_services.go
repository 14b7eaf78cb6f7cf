package services

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/allocation"
)

// BudgetReaderSvc defines read operations for budgets
type BudgetReaderSvc interface {
	// GetBudget retrieves one budget.
	GetBudget(ctx context.Context, sess *domain.Session, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves every budget.
	ListBudgets(ctx context.Context, sess *domain.Session) (*dto.ListResponse[domain.Budget], error)

	// ListBudgetsBySupplier retrieves one page of a supplier's budgets.
	ListBudgetsBySupplier(ctx context.Context, sess *domain.Session, supplierID string, params dto.ListParams) (*dto.PagedResponse[domain.Budget], error)

	// ListBudgetUsage retrieves every budget with how much of it is used.
	ListBudgetUsage(ctx context.Context, sess *domain.Session) (*dto.ListResponse[dto.BudgetUsageRow], error)
}

// BudgetWriterSvc defines write operations for budgets
type BudgetWriterSvc interface {
	CreateBudget(ctx context.Context, sess *domain.Session, req dto.BudgetRequest) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, sess *domain.Session, budgetID string, req dto.BudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, sess *domain.Session, budgetID string) error
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}

// ContractReaderSvc defines read operations for contracts
type ContractReaderSvc interface {
	// ListContracts retrieves one page of contracts with allocations and totals.
	ListContracts(ctx context.Context, sess *domain.Session, params dto.ListParams) (*dto.ContractListResponse, error)

	// CheckBudget reports whether a cost fits the budget it would draw on.
	CheckBudget(ctx context.Context, sess *domain.Session, req dto.CheckBudgetRequest) (*allocation.BudgetCheck, error)
}

// ContractWriterSvc defines write operations for contracts. Create and update
// refuse to forward a contract that would overdraw its budget.
type ContractWriterSvc interface {
	CreateContract(ctx context.Context, sess *domain.Session, req dto.ContractRequest) (*dto.ContractMutationResponse, error)
	UpdateContract(ctx context.Context, sess *domain.Session, contractID string, req dto.ContractRequest) (*dto.ContractMutationResponse, error)
	DeleteContract(ctx context.Context, sess *domain.Session, contractID string) error
}

// ContractSvcFacade combines all contract-related service interfaces
type ContractSvcFacade interface {
	ContractReaderSvc
	ContractWriterSvc
}
