package repositories

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// BudgetReader defines read operations for budgets
type BudgetReader interface {
	// FindBudgetByID retrieves one budget.
	FindBudgetByID(ctx context.Context, sess *domain.Session, budgetID domain.ID) (*domain.Budget, error)

	// ListBudgets retrieves every budget.
	ListBudgets(ctx context.Context, sess *domain.Session) ([]domain.Budget, error)

	// ListBudgetsBySupplier retrieves a supplier's budgets, filtered by status and product type.
	ListBudgetsBySupplier(ctx context.Context, sess *domain.Session, supplierID domain.ID, q ListQuery) (ListResult[domain.Budget], error)

	// ListBudgetUsage retrieves every budget with the amount contracts already consumed.
	ListBudgetUsage(ctx context.Context, sess *domain.Session) ([]domain.BudgetUsage, error)
}

// BudgetWriter defines write operations for budgets
type BudgetWriter interface {
	CreateBudget(ctx context.Context, sess *domain.Session, budget domain.Budget) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, sess *domain.Session, budget domain.Budget) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, sess *domain.Session, budgetID domain.ID) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
