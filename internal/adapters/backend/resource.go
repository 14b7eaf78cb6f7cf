package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
)

// resource is a REST collection of T at path, with records at path/{id}.
type resource[T any] struct {
	client *Client
	path   string
}

func newResource[T any](c *Client, path string) resource[T] {
	return resource[T]{client: c, path: path}
}

func (r resource[T]) recordPath(id domain.ID) string {
	return r.path + "/" + url.PathEscape(id.String())
}

func (r resource[T]) listAt(ctx context.Context, sess *domain.Session, path string, query url.Values) ([]T, *pagination.PageInfo, error) {
	body, err := r.client.call(ctx, sess, request{method: http.MethodGet, path: path, query: query})
	if err != nil {
		return nil, nil, err
	}
	items, page, err := decodeList[T](body)
	if err != nil {
		return nil, nil, malformed(ctx, path, err)
	}
	return items, page, nil
}

// every reads path page by page until the backend reports no next page. A
// bare list is the whole collection. Running past maxReportPages is an error
// rather than a silent truncation.
func (r resource[T]) every(ctx context.Context, sess *domain.Session, path string, query url.Values) ([]T, error) {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("per_page", strconv.Itoa(pagination.MaxPerPage))

	var out []T
	next := 1
	for pages := 0; pages < maxReportPages; pages++ {
		q.Set("page", strconv.Itoa(next))
		items, page, err := r.listAt(ctx, sess, path, q)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
		if page == nil || !page.HasNext || len(items) == 0 {
			return out, nil
		}
		next = page.CurrentPage + 1
	}
	return nil, fmt.Errorf("%w: %s kept paginating past %d pages", apperrors.ErrMalformedResponse, path, maxReportPages)
}

func (r resource[T]) all(ctx context.Context, sess *domain.Session) ([]T, error) {
	items, _, err := r.listAt(ctx, sess, r.path, nil)
	return items, err
}

func (r resource[T]) get(ctx context.Context, sess *domain.Session, id domain.ID) (*T, error) {
	path := r.recordPath(id)
	body, err := r.client.call(ctx, sess, request{method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}
	rec, err := decodeRecord[T](body)
	if err != nil {
		return nil, malformed(ctx, path, err)
	}
	if rec == nil {
		return nil, malformed(ctx, path, errUnexpectedShape)
	}
	return rec, nil
}

// create posts the item; if the backend only acknowledges, the item is
// returned as sent.
func (r resource[T]) create(ctx context.Context, sess *domain.Session, item T) (*T, error) {
	return r.send(ctx, sess, http.MethodPost, r.path, item)
}

func (r resource[T]) update(ctx context.Context, sess *domain.Session, id domain.ID, item T) (*T, error) {
	return r.send(ctx, sess, http.MethodPut, r.recordPath(id), item)
}

func (r resource[T]) send(ctx context.Context, sess *domain.Session, method, path string, item T) (*T, error) {
	body, err := r.client.call(ctx, sess, request{method: method, path: path, body: item})
	if err != nil {
		return nil, err
	}
	rec, err := decodeRecord[T](body)
	if err != nil {
		return nil, malformed(ctx, path, err)
	}
	if rec == nil {
		return &item, nil
	}
	return rec, nil
}

func (r resource[T]) delete(ctx context.Context, sess *domain.Session, id domain.ID) error {
	_, err := r.client.call(ctx, sess, request{method: http.MethodDelete, path: r.recordPath(id)})
	return err
}

// queryValues renders a list query the way the backend's filter endpoints
// read it. perPageKey is "per_page" on most routes and "limit" on a few.
func queryValues(q repositories.ListQuery, perPageKey string) url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	f := q.Filters
	set("status", f.Status)
	set("customer_id", f.CustomerID)
	set("supplier_id", f.SupplierID)
	set("account_type_id", f.AccountTypeID)
	set("product_type", f.ProductType)
	set("from_date", f.From.String())
	set("to_date", f.To.String())
	set("sort_by", q.Sort.Field)
	set("sort_order", string(q.Sort.Dir))

	p := q.Page.Normalize()
	v.Set("page", strconv.Itoa(p.Page))
	v.Set(perPageKey, strconv.Itoa(p.PerPage))
	return v
}

func listResult[T any](items []T, page *pagination.PageInfo) repositories.ListResult[T] {
	return repositories.ListResult[T]{Items: items, Page: page}
}
