package backend

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/ads_resale_dashboard/internal/middleware"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
)

// maxReportPages stops a misbehaving paginator from looping forever.
const maxReportPages = 500

// ReportingRepository gathers the dashboard's raw records by paging through
// the filtered list routes.
type ReportingRepository struct {
	contracts *ContractRepository
	bills     *BillRepository
	budgets   *BudgetRepository
}

func NewReportingRepository(c *Client) *ReportingRepository {
	return &ReportingRepository{
		contracts: NewContractRepository(c),
		bills:     NewBillRepository(c),
		budgets:   NewBudgetRepository(c),
	}
}

func (r *ReportingRepository) ContractsBetween(ctx context.Context, sess *domain.Session, within repositories.DateRange) ([]domain.Contract, error) {
	all, err := collectPages(ctx, within, func(q repositories.ListQuery) (repositories.ListResult[domain.Contract], error) {
		return r.contracts.ListContracts(ctx, sess, q)
	})
	if err != nil {
		return nil, err
	}
	return keepWithin(all, within, func(c domain.Contract) domain.Date { return c.Date }), nil
}

func (r *ReportingRepository) BillsBetween(ctx context.Context, sess *domain.Session, within repositories.DateRange) ([]domain.Bill, error) {
	all, err := collectPages(ctx, within, func(q repositories.ListQuery) (repositories.ListResult[domain.Bill], error) {
		return r.bills.ListBills(ctx, sess, q)
	})
	if err != nil {
		return nil, err
	}
	return keepWithin(all, within, func(b domain.Bill) domain.Date { return b.Date }), nil
}

// BudgetsBetween has no server-side date filter to lean on, so it reads every
// budget and filters here.
func (r *ReportingRepository) BudgetsBetween(ctx context.Context, sess *domain.Session, within repositories.DateRange) ([]domain.Budget, error) {
	all, err := r.budgets.ListBudgets(ctx, sess)
	if err != nil {
		return nil, err
	}
	return keepWithin(all, within, func(b domain.Budget) domain.Date { return b.Date }), nil
}

// collectPages follows the backend's pages until the last one. A backend that
// answers with a bare list has sent everything on the first call.
func collectPages[T any](ctx context.Context, within repositories.DateRange, fetch func(repositories.ListQuery) (repositories.ListResult[T], error)) ([]T, error) {
	q := repositories.ListQuery{
		Filters: pagination.Filters{From: within.From, To: within.To},
		Page:    pagination.PageRequest{Page: 1, PerPage: pagination.MaxPerPage},
	}

	var out []T
	for pages := 0; ; pages++ {
		res, err := fetch(q)
		if err != nil {
			return nil, err
		}
		out = append(out, res.Items...)
		if !res.Paged() || !res.Page.HasNext || len(res.Items) == 0 {
			return out, nil
		}
		if pages+1 >= maxReportPages {
			middleware.GetLoggerFromCtx(ctx).Warn("Stopped paging report source",
				slog.Int("pages", pages+1), slog.Int("records", len(out)))
			return out, nil
		}
		q.Page.Page = res.Page.CurrentPage + 1
	}
}

func keepWithin[T any](records []T, within repositories.DateRange, date func(T) domain.Date) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if within.Contains(date(r)) {
			out = append(out, r)
		}
	}
	return out
}

var _ repositories.ReportingRepository = (*ReportingRepository)(nil)
