// Package aggregation groups dated records into reporting buckets and
// dimensions and sums their money.
package aggregation

import (
	"sort"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

const unknownGroup = "Không xác định"

// Measure tells Aggregate how to read a record. Profit may be nil.
type Measure[T any] struct {
	Date   func(T) domain.Date
	Money  func(T) domain.Money
	Profit func(T) domain.Money
}

// Grouper is one breakdown dimension. Key returns the group's id and display
// name; records with neither land in a single "unknown" group.
type Grouper[T any] struct {
	Name string
	Key  func(T) (id string, name string)
}

// Summary is the result of one aggregation.
type Summary struct {
	Period      domain.Period                    `json:"period"`
	Count       int                              `json:"count"`
	TotalMoney  domain.Money                     `json:"total_money"`
	TotalProfit domain.Money                     `json:"total_profit"`
	Groups      map[string][]domain.GroupSummary `json:"groups"`
}

// Group returns the breakdown for a grouper name, or nil.
func (s Summary) Group(name string) []domain.GroupSummary {
	return s.Groups[name]
}

// Filter keeps the records whose date falls in period.
func Filter[T any](records []T, period domain.Period, date func(T) domain.Date) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if period.Contains(date(r)) {
			out = append(out, r)
		}
	}
	return out
}

// Aggregate keeps the records inside period and sums them overall and per
// group. Each breakdown is ordered by count descending, then name ascending.
func Aggregate[T any](records []T, period domain.Period, m Measure[T], groupers ...Grouper[T]) Summary {
	s := Summary{
		Period:      period,
		TotalMoney:  domain.ZeroMoney,
		TotalProfit: domain.ZeroMoney,
		Groups:      make(map[string][]domain.GroupSummary, len(groupers)),
	}

	type acc struct {
		order  []string
		groups map[string]*domain.GroupSummary
	}
	accs := make([]acc, len(groupers))
	for i := range accs {
		accs[i].groups = make(map[string]*domain.GroupSummary)
	}

	for _, r := range Filter(records, period, m.Date) {
		money := m.Money(r)
		profit := domain.ZeroMoney
		if m.Profit != nil {
			profit = m.Profit(r)
		}

		s.Count++
		s.TotalMoney = s.TotalMoney.Add(money)
		s.TotalProfit = s.TotalProfit.Add(profit)

		for i, g := range groupers {
			id, name := g.Key(r)
			key := id
			if key == "" {
				key = name
			}
			if name == "" {
				name = id
			}
			if key == "" {
				key, name = unknownGroup, unknownGroup
			}

			gs, ok := accs[i].groups[key]
			if !ok {
				gs = &domain.GroupSummary{ID: id, Name: name, TotalMoney: domain.ZeroMoney, TotalProfit: domain.ZeroMoney}
				accs[i].groups[key] = gs
				accs[i].order = append(accs[i].order, key)
			}
			gs.Count++
			gs.TotalMoney = gs.TotalMoney.Add(money)
			gs.TotalProfit = gs.TotalProfit.Add(profit)
		}
	}

	for i, g := range groupers {
		out := make([]domain.GroupSummary, 0, len(accs[i].order))
		for _, key := range accs[i].order {
			out = append(out, *accs[i].groups[key])
		}
		SortGroups(out)
		s.Groups[g.Name] = out
	}
	return s
}

// SortGroups orders by count descending, then name, then id.
func SortGroups(groups []domain.GroupSummary) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		if groups[i].Name != groups[j].Name {
			return groups[i].Name < groups[j].Name
		}
		return groups[i].ID < groups[j].ID
	})
}

// Top is the first group's name, or "" when there are none.
func Top(groups []domain.GroupSummary) string {
	if len(groups) == 0 {
		return ""
	}
	return groups[0].Name
}

// Series buckets the records inside period at granularity g and returns one
// entry per non-empty bucket in chronological order.
func Series[T any](records []T, period domain.Period, g Granularity, m Measure[T]) []domain.GroupSummary {
	bucket := Grouper[T]{
		Name: "bucket",
		Key: func(r T) (string, string) {
			k := BucketKey(g, m.Date(r))
			return k, k
		},
	}
	out := Aggregate(records, period, m, bucket).Group(bucket.Name)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
