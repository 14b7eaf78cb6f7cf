package backend

import (
	"context"
	"net/url"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
)

// ContractRepository serves contracts and the filtered contract list.
type ContractRepository struct {
	res resource[domain.Contract]
}

func NewContractRepository(c *Client) *ContractRepository {
	return &ContractRepository{res: newResource[domain.Contract](c, "contracts")}
}

func (r *ContractRepository) ListContracts(ctx context.Context, sess *domain.Session, q repositories.ListQuery) (repositories.ListResult[domain.Contract], error) {
	items, page, err := r.res.listAt(ctx, sess, "contracts/filtered", queryValues(q, "per_page"))
	if err != nil {
		return repositories.ListResult[domain.Contract]{}, err
	}
	return listResult(items, page), nil
}

// ListContractsByBudget reads every page of the budget's contracts and keeps
// only those that really belong to it, since the plain list route may ignore
// the filter.
func (r *ContractRepository) ListContractsByBudget(ctx context.Context, sess *domain.Session, budgetID domain.ID) ([]domain.Contract, error) {
	all, err := r.res.every(ctx, sess, r.res.path, url.Values{"budget_id": {budgetID.String()}})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Contract, 0, len(all))
	for _, c := range all {
		if c.BudgetID == budgetID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *ContractRepository) CreateContract(ctx context.Context, sess *domain.Session, contract domain.Contract) (*domain.Contract, error) {
	return r.res.create(ctx, sess, contract)
}

func (r *ContractRepository) UpdateContract(ctx context.Context, sess *domain.Session, contract domain.Contract) (*domain.Contract, error) {
	return r.res.update(ctx, sess, contract.ID, contract)
}

func (r *ContractRepository) DeleteContract(ctx context.Context, sess *domain.Session, contractID domain.ID) error {
	return r.res.delete(ctx, sess, contractID)
}

var _ repositories.ContractRepositoryFacade = (*ContractRepository)(nil)
