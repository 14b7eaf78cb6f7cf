package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/middleware"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
)

// maxExportPages bounds how many backend pages an export follows.
const maxExportPages = 100

var contractAccessors = pagination.Accessors[domain.Contract]{
	Dimensions: func(c domain.Contract) pagination.Dimensions {
		return pagination.Dimensions{
			CustomerID:    c.CustomerID.String(),
			SupplierID:    c.SupplierID.String(),
			AccountTypeID: c.AccountTypeID.String(),
			ProductType:   string(c.ProductType),
			Date:          c.Date,
		}
	},
	Compare: map[string]func(a, b domain.Contract) int{
		"date":              func(a, b domain.Contract) int { return pagination.CompareDates(a.Date, b.Date) },
		"total_cost":        func(a, b domain.Contract) int { return pagination.CompareMoney(a.TotalCost, b.TotalCost) },
		"customer_name":     func(a, b domain.Contract) int { return pagination.CompareStrings(a.CustomerName, b.CustomerName) },
		"supplier_name":     func(a, b domain.Contract) int { return pagination.CompareStrings(a.SupplierName, b.SupplierName) },
		"account_type_name": func(a, b domain.Contract) int { return pagination.CompareStrings(a.AccountTypeName, b.AccountTypeName) },
		"product":           func(a, b domain.Contract) int { return pagination.CompareStrings(a.Product, b.Product) },
	},
}

var billAccessors = pagination.Accessors[domain.Bill]{
	Dimensions: func(b domain.Bill) pagination.Dimensions {
		return pagination.Dimensions{
			Status:     string(b.Status),
			CustomerID: b.CustomerID.String(),
			Date:       b.Date,
		}
	},
	Compare: map[string]func(a, b domain.Bill) int{
		"date":          func(a, b domain.Bill) int { return pagination.CompareDates(a.Date, b.Date) },
		"total_money":   func(a, b domain.Bill) int { return pagination.CompareMoney(a.TotalMoney, b.TotalMoney) },
		"paid_amount":   func(a, b domain.Bill) int { return pagination.CompareMoney(a.PaidAmount, b.PaidAmount) },
		"debt_amount":   func(a, b domain.Bill) int { return pagination.CompareMoney(a.DebtAmount, b.DebtAmount) },
		"customer_name": func(a, b domain.Bill) int { return pagination.CompareStrings(a.CustomerName, b.CustomerName) },
		"status":        func(a, b domain.Bill) int { return pagination.CompareStrings(string(a.Status), string(b.Status)) },
	},
}

var budgetAccessors = pagination.Accessors[domain.Budget]{
	Dimensions: func(b domain.Budget) pagination.Dimensions {
		return pagination.Dimensions{
			Status:        string(b.Status),
			SupplierID:    b.SupplierID.String(),
			AccountTypeID: b.AccountTypeID.String(),
			ProductType:   string(b.ProductType),
			Date:          b.Date,
		}
	},
	Compare: map[string]func(a, b domain.Budget) int{
		"date":              func(a, b domain.Budget) int { return pagination.CompareDates(a.Date, b.Date) },
		"money":             func(a, b domain.Budget) int { return pagination.CompareMoney(a.Money, b.Money) },
		"supplier_name":     func(a, b domain.Budget) int { return pagination.CompareStrings(a.SupplierName, b.SupplierName) },
		"account_type_name": func(a, b domain.Budget) int { return pagination.CompareStrings(a.AccountTypeName, b.AccountTypeName) },
		"status":            func(a, b domain.Budget) int { return pagination.CompareStrings(string(a.Status), string(b.Status)) },
	},
}

// sortFields lists the fields a record type can be sorted by.
func sortFields[T any](acc pagination.Accessors[T]) map[string]struct{} {
	fields := make(map[string]struct{}, len(acc.Compare))
	for name := range acc.Compare {
		fields[name] = struct{}{}
	}
	return fields
}

// listQuery turns list parameters into a repository query, applying the
// configured page size and rejecting sort fields the record type lacks.
func listQuery[T any](params dto.ListParams, acc pagination.Accessors[T], defaultPerPage int) (portsrepo.ListQuery, error) {
	if params.State == "" && params.PerPage == 0 && params.Limit == 0 {
		params.PerPage = defaultPerPage
	}
	q, err := params.ToQuery()
	if err != nil {
		return portsrepo.ListQuery{}, err
	}
	if err := q.Sort.Validate(sortFields(acc)); err != nil {
		return portsrepo.ListQuery{}, err
	}
	return q, nil
}

// fetchPage reads the page q asks for. When the backend paginates and the
// page lies past its last one, the last page is read instead and q is moved
// to it so the state token names the page actually served.
func fetchPage[T any](ctx context.Context, q *portsrepo.ListQuery, fetch func(context.Context, portsrepo.ListQuery) (portsrepo.ListResult[T], error)) (portsrepo.ListResult[T], error) {
	res, err := fetch(ctx, *q)
	if err != nil || !res.Paged() {
		return res, err
	}
	last := res.Page.LastPage
	if last < 1 || res.Page.CurrentPage <= last {
		return res, nil
	}
	middleware.GetLoggerFromCtx(ctx).Debug("Page out of range, reading last page",
		slog.Int("page", res.Page.CurrentPage), slog.Int("last_page", last))
	q.Page.Page = last
	return fetch(ctx, *q)
}

// pageOf shapes a backend answer into one page. A page the backend already
// cut is used as it is; a bare collection is filtered, sorted and paged here.
func pageOf[T any](res portsrepo.ListResult[T], acc pagination.Accessors[T], q portsrepo.ListQuery) (pagination.Page[T], error) {
	if res.Paged() {
		items := res.Items
		if items == nil {
			items = []T{}
		}
		return pagination.Page[T]{Items: items, PageInfo: *res.Page}, nil
	}
	return pagination.View(res.Items, acc, q.Filters, q.Sort, q.Page)
}

// pagedResponse wraps a page with the state token of the query it answers.
func pagedResponse[T any](screen string, q portsrepo.ListQuery, page pagination.Page[T]) dto.PagedResponse[T] {
	return dto.PagedResponse[T]{
		Data:       page.Items,
		Pagination: page.PageInfo,
		StateToken: stateToken(screen, q),
	}
}

// emptyPage is what a degraded list shows.
func emptyPage[T any](screen string, q portsrepo.ListQuery, warning string) dto.PagedResponse[T] {
	return dto.PagedResponse[T]{
		Data:       []T{},
		Pagination: pagination.Paginate(0, q.Page),
		StateToken: stateToken(screen, q),
		Warning:    warning,
	}
}

func stateToken(screen string, q portsrepo.ListQuery) string {
	return pagination.State{Screen: screen, Filters: q.Filters, Sort: q.Sort, Page: q.Page}.Token()
}

// everyMatch reads every record matching q's filters and sort, following the
// backend's pages when it paginates.
func everyMatch[T any](ctx context.Context, q portsrepo.ListQuery, acc pagination.Accessors[T], fetch func(context.Context, portsrepo.ListQuery) (portsrepo.ListResult[T], error)) ([]T, error) {
	q.Page = pagination.PageRequest{Page: 1, PerPage: pagination.MaxPerPage}
	var all []T
	for i := 0; i < maxExportPages; i++ {
		res, err := fetch(ctx, q)
		if err != nil {
			return nil, err
		}
		if !res.Paged() {
			var out []T
			for p := 1; ; p++ {
				page, err := pagination.View(res.Items, acc, q.Filters, q.Sort, pagination.PageRequest{Page: p, PerPage: pagination.MaxPerPage})
				if err != nil {
					return nil, err
				}
				out = append(out, page.Items...)
				if !page.PageInfo.HasNext {
					return out, nil
				}
			}
		}
		all = append(all, res.Items...)
		if !res.Page.HasNext {
			return all, nil
		}
		q.Page.Page++
	}
	middleware.GetLoggerFromCtx(ctx).Warn("Stopped following backend pages", slog.Int("pages", maxExportPages))
	return all, nil
}
