package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/aggregation"
)

// OverviewRepository reads the monthly overviews. Their figures arrive as a
// JSON document encoded into the string overview.data, so every payload is
// decoded twice.
type OverviewRepository struct {
	client *Client
}

func NewOverviewRepository(c *Client) *OverviewRepository {
	return &OverviewRepository{client: c}
}

type overviewEnvelope struct {
	Overview *struct {
		Data json.RawMessage `json:"data"`
	} `json:"overview"`
	Customer *domain.Customer `json:"customer"`
	Supplier *domain.Supplier `json:"supplier"`
}

type overviewGroup struct {
	ID         domain.ID    `json:"id"`
	Name       string       `json:"name"`
	Count      int          `json:"count"`
	TotalMoney domain.Money `json:"total_money"`
}

type customerFigures struct {
	TotalRuns         int             `json:"total_runs"`
	RunsByAccountType json.RawMessage `json:"runs_by_account_type"`
	RunsByProduct     map[string]int  `json:"runs_by_product"`
	TotalMoney        domain.Money    `json:"total_money"`
	TotalPaid         domain.Money    `json:"total_paid"`
	TotalDebt         domain.Money    `json:"total_debt"`
}

type supplierFigures struct {
	TotalBudgetCount    int             `json:"total_budget_count"`
	BudgetByAccountType json.RawMessage `json:"budget_by_account_type"`
	TotalPayable        domain.Money    `json:"total_payable"`
}

func (r *OverviewRepository) fetch(ctx context.Context, sess *domain.Session, kind string, id domain.ID, month string) (*overviewEnvelope, json.RawMessage, string, error) {
	path := "overview/" + kind + "/" + url.PathEscape(id.String()) + "/" + url.PathEscape(month)
	body, err := r.client.call(ctx, sess, request{method: http.MethodGet, path: path})
	if err != nil {
		return nil, nil, path, err
	}
	var env overviewEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, path, malformed(ctx, path, err)
	}
	if env.Overview == nil {
		return &env, nil, path, nil
	}
	inner, err := unwrapEncoded(env.Overview.Data)
	if err != nil {
		return nil, nil, path, malformed(ctx, path, err)
	}
	return &env, inner, path, nil
}

func (r *OverviewRepository) CustomerOverview(ctx context.Context, sess *domain.Session, customerID domain.ID, month string) (*domain.CustomerOverview, error) {
	env, inner, path, err := r.fetch(ctx, sess, "customer", customerID, month)
	if err != nil || inner == nil {
		return nil, err
	}

	var figures customerFigures
	if err := json.Unmarshal(inner, &figures); err != nil {
		return nil, malformed(ctx, path, err)
	}
	byType, err := decodeGroups(figures.RunsByAccountType)
	if err != nil {
		return nil, malformed(ctx, path, err)
	}

	out := &domain.CustomerOverview{
		Period:            month,
		TotalRuns:         figures.TotalRuns,
		RunsByAccountType: byType,
		RunsByProduct:     countsToGroups(figures.RunsByProduct),
		TotalMoney:        figures.TotalMoney,
		TotalPaid:         figures.TotalPaid,
		TotalDebt:         figures.TotalDebt,
	}
	if env.Customer != nil {
		out.Customer = *env.Customer
	}
	return out, nil
}

func (r *OverviewRepository) SupplierOverview(ctx context.Context, sess *domain.Session, supplierID domain.ID, month string) (*domain.SupplierOverview, error) {
	env, inner, path, err := r.fetch(ctx, sess, "supplier", supplierID, month)
	if err != nil || inner == nil {
		return nil, err
	}

	var figures supplierFigures
	if err := json.Unmarshal(inner, &figures); err != nil {
		return nil, malformed(ctx, path, err)
	}
	byType, err := decodeGroups(figures.BudgetByAccountType)
	if err != nil {
		return nil, malformed(ctx, path, err)
	}

	out := &domain.SupplierOverview{
		Period:              month,
		TotalBudgetCount:    figures.TotalBudgetCount,
		BudgetByAccountType: byType,
		TotalPayable:        figures.TotalPayable,
	}
	if env.Supplier != nil {
		out.Supplier = *env.Supplier
	}
	return out, nil
}

// unwrapEncoded returns the JSON document held in raw, which is either a
// string containing JSON or already an object. null and "" mean no data.
func unwrapEncoded(raw json.RawMessage) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	switch raw[0] {
	case '{':
		return raw, nil
	case '"':
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, err
		}
		inner := bytes.TrimSpace([]byte(encoded))
		if len(inner) == 0 {
			return nil, nil
		}
		if !json.Valid(inner) || inner[0] != '{' {
			return nil, fmt.Errorf("%w: overview.data is not an encoded object", errUnexpectedShape)
		}
		return inner, nil
	default:
		return nil, fmt.Errorf("%w: overview.data has type %q", errUnexpectedShape, raw[0])
	}
}

// decodeGroups reads a per-account-type breakdown sent either as an object
// keyed by id or as an array, and orders it like every other breakdown.
func decodeGroups(raw json.RawMessage) ([]domain.GroupSummary, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []domain.GroupSummary{}, nil
	}

	var groups []overviewGroup
	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &groups); err != nil {
			return nil, err
		}
	case '{':
		var keyed map[string]overviewGroup
		if err := json.Unmarshal(raw, &keyed); err != nil {
			return nil, err
		}
		for key, g := range keyed {
			if g.ID.IsZero() {
				g.ID = domain.ID(key)
			}
			groups = append(groups, g)
		}
	default:
		return nil, fmt.Errorf("%w: breakdown is neither an object nor an array", errUnexpectedShape)
	}

	out := make([]domain.GroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.GroupSummary{
			ID:         g.ID.String(),
			Name:       g.Name,
			Count:      g.Count,
			TotalMoney: g.TotalMoney,
		})
	}
	aggregation.SortGroups(out)
	return out, nil
}

func countsToGroups(counts map[string]int) []domain.GroupSummary {
	out := make([]domain.GroupSummary, 0, len(counts))
	for name, count := range counts {
		out = append(out, domain.GroupSummary{Name: name, Count: count})
	}
	aggregation.SortGroups(out)
	return out
}

var _ repositories.OverviewRepository = (*OverviewRepository)(nil)
