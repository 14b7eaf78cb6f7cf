package repositories

import (
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
)

// ListQuery is what a filtered list endpoint is asked for.
type ListQuery struct {
	Filters pagination.Filters
	Sort    pagination.Sort
	Page    pagination.PageRequest
}

// ListResult is one backend answer to a list query. Page is nil when the
// backend sent a bare collection instead of a paginated envelope; callers then
// have the whole filtered set and page it themselves.
type ListResult[T any] struct {
	Items []T
	Page  *pagination.PageInfo
}

// Paged reports whether the backend already paginated the result.
func (r ListResult[T]) Paged() bool {
	return r.Page != nil
}

// DateRange bounds a reporting query, both ends inclusive.
type DateRange = domain.Period
