package pagination

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// DefaultPerPage is the page size every list screen uses unless told otherwise.
const DefaultPerPage = 10

// MaxPerPage caps the page size a caller may ask for.
const MaxPerPage = 200

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Filters are ANDed together. Empty fields match everything; From and To are
// inclusive.
type Filters struct {
	Status        string
	CustomerID    string
	SupplierID    string
	AccountTypeID string
	ProductType   string
	From          domain.Date
	To            domain.Date
}

// Sort is a field name and direction.
type Sort struct {
	Field string
	Dir   Direction
}

// PageRequest is a 1-based page number and a page size.
type PageRequest struct {
	Page    int
	PerPage int
}

// Normalize fills defaults and caps the page size.
func (p PageRequest) Normalize() PageRequest {
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return p
}

// PageInfo describes the page that was served. From and To are 1-based,
// inclusive display indices; both are zero for an empty collection.
type PageInfo struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	From        int  `json:"from"`
	To          int  `json:"to"`
	Total       int  `json:"total"`
	LastPage    int  `json:"last_page"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// Dimensions are the filterable attributes of one record.
type Dimensions struct {
	Status        string
	CustomerID    string
	SupplierID    string
	AccountTypeID string
	ProductType   string
	Date          domain.Date
}

// Accessors describe a record type to View.
type Accessors[T any] struct {
	Dimensions func(T) Dimensions
	// Compare maps sortable field names to a three-way comparison.
	Compare map[string]func(a, b T) int
}

// Page is one window of a filtered, sorted collection.
type Page[T any] struct {
	Items    []T      `json:"items"`
	PageInfo PageInfo `json:"page_info"`
}

// Match reports whether d satisfies every non-empty filter.
func (f Filters) Match(d Dimensions) bool {
	if f.Status != "" && !strings.EqualFold(f.Status, d.Status) {
		return false
	}
	if f.CustomerID != "" && f.CustomerID != d.CustomerID {
		return false
	}
	if f.SupplierID != "" && f.SupplierID != d.SupplierID {
		return false
	}
	if f.AccountTypeID != "" && f.AccountTypeID != d.AccountTypeID {
		return false
	}
	if f.ProductType != "" && f.ProductType != d.ProductType {
		return false
	}
	if !f.From.IsZero() && (d.Date.IsZero() || d.Date.Before(f.From)) {
		return false
	}
	if !f.To.IsZero() && (d.Date.IsZero() || d.Date.After(f.To)) {
		return false
	}
	return true
}

// Validate checks the sort against the sortable fields of a record type.
func (s Sort) Validate(fields map[string]struct{}) error {
	if s.Dir != "" && s.Dir != Asc && s.Dir != Desc {
		return fmt.Errorf("%w: sort direction must be asc or desc", apperrors.ErrValidation)
	}
	if s.Field == "" {
		return nil
	}
	if _, ok := fields[s.Field]; !ok {
		return fmt.Errorf("%w: cannot sort by %q", apperrors.ErrValidation, s.Field)
	}
	return nil
}

// View filters, stably sorts and pages records. The input slice is not
// modified. Pages past either end clamp to the first or last page.
func View[T any](records []T, acc Accessors[T], f Filters, s Sort, p PageRequest) (Page[T], error) {
	if s.Field != "" || s.Dir != "" {
		fields := make(map[string]struct{}, len(acc.Compare))
		for name := range acc.Compare {
			fields[name] = struct{}{}
		}
		if err := s.Validate(fields); err != nil {
			return Page[T]{}, err
		}
	}

	filtered := make([]T, 0, len(records))
	for _, r := range records {
		if acc.Dimensions == nil || f.Match(acc.Dimensions(r)) {
			filtered = append(filtered, r)
		}
	}

	if cmp, ok := acc.Compare[s.Field]; ok && s.Field != "" {
		desc := s.Dir == Desc
		sort.SliceStable(filtered, func(i, j int) bool {
			if desc {
				return cmp(filtered[j], filtered[i]) < 0
			}
			return cmp(filtered[i], filtered[j]) < 0
		})
	}

	info := Paginate(len(filtered), p)
	items := filtered[:0:0]
	if info.Total > 0 {
		items = filtered[info.From-1 : info.To]
	}
	return Page[T]{Items: items, PageInfo: info}, nil
}

// Paginate works out the window for total records, clamping the page.
func Paginate(total int, p PageRequest) PageInfo {
	p = p.Normalize()

	lastPage := 1
	if total > 0 {
		lastPage = (total + p.PerPage - 1) / p.PerPage
	}
	page := p.Page
	if page > lastPage {
		page = lastPage
	}

	info := PageInfo{
		CurrentPage: page,
		PerPage:     p.PerPage,
		Total:       total,
		LastPage:    lastPage,
		HasNext:     page < lastPage,
		HasPrev:     page > 1,
	}
	if total > 0 {
		info.From = (page-1)*p.PerPage + 1
		info.To = min(page*p.PerPage, total)
	}
	return info
}

// Remote is the pagination block of a backend list envelope.
type Remote struct {
	CurrentPage flexInt `json:"current_page"`
	PerPage     flexInt `json:"per_page"`
	From        flexInt `json:"from"`
	To          flexInt `json:"to"`
	Total       flexInt `json:"total"`
	LastPage    flexInt `json:"last_page"`
	NextPageURL *string `json:"next_page_url"`
	PrevPageURL *string `json:"prev_page_url"`
}

// Info converts the backend's block to a PageInfo.
func (r Remote) Info() PageInfo {
	info := PageInfo{
		CurrentPage: int(r.CurrentPage),
		PerPage:     int(r.PerPage),
		From:        int(r.From),
		To:          int(r.To),
		Total:       int(r.Total),
		LastPage:    int(r.LastPage),
		HasNext:     r.NextPageURL != nil && *r.NextPageURL != "",
		HasPrev:     r.PrevPageURL != nil && *r.PrevPageURL != "",
	}
	if info.LastPage < 1 {
		info.LastPage = 1
	}
	if info.CurrentPage < 1 {
		info.CurrentPage = 1
	}
	if r.NextPageURL == nil && info.CurrentPage < info.LastPage {
		info.HasNext = true
	}
	if r.PrevPageURL == nil && info.CurrentPage > 1 {
		info.HasPrev = true
	}
	return info
}

// flexInt accepts numbers, numeric strings and null.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || string(data) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		var f float64
		if ferr := json.Unmarshal(data, &f); ferr != nil {
			return fmt.Errorf("pagination: %q is not a number", data)
		}
		v = int(f)
	}
	*n = flexInt(v)
	return nil
}

// CompareStrings is a case-insensitive three-way comparison.
func CompareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// CompareDates orders zero dates first.
func CompareDates(a, b domain.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// CompareMoney is a three-way comparison of amounts.
func CompareMoney(a, b domain.Money) int {
	return a.Cmp(b)
}
