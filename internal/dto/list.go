package dto

import (
	"fmt"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
)

// ListParams are the query parameters every filtered list screen accepts.
// Limit is accepted as an alias of per_page for the supplier budget screen.
type ListParams struct {
	Status        string `form:"status"`
	CustomerID    string `form:"customer_id"`
	SupplierID    string `form:"supplier_id"`
	AccountTypeID string `form:"account_type_id"`
	ProductType   string `form:"product_type" binding:"omitempty,oneof=legal illegal middle-illegal"`
	FromDate      string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate        string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PerPage       int    `form:"per_page" binding:"omitempty,min=1,max=200"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=200"`
	// State restores a previous screen state; explicit parameters are ignored when it is set.
	State string `form:"state"`
}

// ToQuery validates the parameters and converts them to a repository query.
func (p ListParams) ToQuery() (repositories.ListQuery, error) {
	if p.State != "" {
		st, err := pagination.ParseState(p.State)
		if err != nil {
			return repositories.ListQuery{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		return repositories.ListQuery{Filters: st.Filters, Sort: st.Sort, Page: st.Page.Normalize()}, nil
	}

	q := repositories.ListQuery{
		Filters: pagination.Filters{
			Status:        p.Status,
			CustomerID:    p.CustomerID,
			SupplierID:    p.SupplierID,
			AccountTypeID: p.AccountTypeID,
			ProductType:   p.ProductType,
		},
		Sort: pagination.Sort{Field: p.SortBy, Dir: pagination.Direction(p.SortOrder)},
		Page: pagination.PageRequest{Page: p.Page, PerPage: p.PerPage},
	}
	if q.Page.PerPage == 0 {
		q.Page.PerPage = p.Limit
	}
	q.Page = q.Page.Normalize()

	var err error
	if q.Filters.From, err = optionalDate("from_date", p.FromDate); err != nil {
		return repositories.ListQuery{}, err
	}
	if q.Filters.To, err = optionalDate("to_date", p.ToDate); err != nil {
		return repositories.ListQuery{}, err
	}
	if !q.Filters.From.IsZero() && !q.Filters.To.IsZero() && q.Filters.To.Before(q.Filters.From) {
		return repositories.ListQuery{}, fmt.Errorf("%w: to_date is before from_date", apperrors.ErrValidation)
	}
	return q, nil
}

func optionalDate(name, value string) (domain.Date, error) {
	if value == "" {
		return domain.Date{}, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, fmt.Errorf("%w: %s: %v", apperrors.ErrValidation, name, err)
	}
	return d, nil
}

// PagedResponse is one page of a filtered list. StateToken identifies the
// filter, sort and page it was computed for.
type PagedResponse[T any] struct {
	Data       []T                 `json:"data"`
	Pagination pagination.PageInfo `json:"pagination"`
	StateToken string              `json:"state"`
	Warning    string              `json:"warning,omitempty"`
}
