package backend

import (
	"context"
	"net/url"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
)

// BudgetRepository serves budgets, the per-supplier budget screen and the
// budget-contract usage summary.
type BudgetRepository struct {
	res   resource[domain.Budget]
	usage resource[domain.BudgetUsage]
}

func NewBudgetRepository(c *Client) *BudgetRepository {
	return &BudgetRepository{
		res:   newResource[domain.Budget](c, "budgets"),
		usage: newResource[domain.BudgetUsage](c, "budget-contract"),
	}
}

func (r *BudgetRepository) FindBudgetByID(ctx context.Context, sess *domain.Session, budgetID domain.ID) (*domain.Budget, error) {
	return r.res.get(ctx, sess, budgetID)
}

func (r *BudgetRepository) ListBudgets(ctx context.Context, sess *domain.Session) ([]domain.Budget, error) {
	return r.res.all(ctx, sess)
}

// ListBudgetsBySupplier forwards status, product type, sort and page; this
// route calls the page size "limit".
func (r *BudgetRepository) ListBudgetsBySupplier(ctx context.Context, sess *domain.Session, supplierID domain.ID, q repositories.ListQuery) (repositories.ListResult[domain.Budget], error) {
	query := queryValues(repositories.ListQuery{
		Filters: q.Filters,
		Sort:    q.Sort,
		Page:    q.Page,
	}, "limit")
	query.Del("supplier_id")
	path := "budgets-by-supplier/" + url.PathEscape(supplierID.String())
	items, page, err := r.res.listAt(ctx, sess, path, query)
	if err != nil {
		return repositories.ListResult[domain.Budget]{}, err
	}
	return listResult(items, page), nil
}

// ListBudgetUsage reads the budget-contract summary, which the backend wraps
// as {data: {data: [...]}}.
func (r *BudgetRepository) ListBudgetUsage(ctx context.Context, sess *domain.Session) ([]domain.BudgetUsage, error) {
	return r.usage.all(ctx, sess)
}

func (r *BudgetRepository) CreateBudget(ctx context.Context, sess *domain.Session, budget domain.Budget) (*domain.Budget, error) {
	return r.res.create(ctx, sess, budget)
}

func (r *BudgetRepository) UpdateBudget(ctx context.Context, sess *domain.Session, budget domain.Budget) (*domain.Budget, error) {
	return r.res.update(ctx, sess, budget.ID, budget)
}

func (r *BudgetRepository) DeleteBudget(ctx context.Context, sess *domain.Session, budgetID domain.ID) error {
	return r.res.delete(ctx, sess, budgetID)
}

var _ repositories.BudgetRepositoryFacade = (*BudgetRepository)(nil)
