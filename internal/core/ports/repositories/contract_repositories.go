package repositories

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// ContractReader defines read operations for contracts
type ContractReader interface {
	// ListContracts retrieves contracts matching the query's filters.
	ListContracts(ctx context.Context, sess *domain.Session, q ListQuery) (ListResult[domain.Contract], error)

	// ListContractsByBudget retrieves every contract drawing on a budget.
	ListContractsByBudget(ctx context.Context, sess *domain.Session, budgetID domain.ID) ([]domain.Contract, error)
}

// ContractWriter defines write operations for contracts
type ContractWriter interface {
	CreateContract(ctx context.Context, sess *domain.Session, contract domain.Contract) (*domain.Contract, error)
	UpdateContract(ctx context.Context, sess *domain.Session, contract domain.Contract) (*domain.Contract, error)
	DeleteContract(ctx context.Context, sess *domain.Session, contractID domain.ID) error
}

// ContractRepositoryFacade combines all contract-related repository interfaces
type ContractRepositoryFacade interface {
	ContractReader
	ContractWriter
}
