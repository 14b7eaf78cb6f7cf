package pagination_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id       int
	status   string
	customer string
	date     domain.Date
	amount   int64
}

var rowAccessors = pagination.Accessors[row]{
	Dimensions: func(r row) pagination.Dimensions {
		return pagination.Dimensions{Status: r.status, CustomerID: r.customer, Date: r.date}
	},
	Compare: map[string]func(a, b row) int{
		"amount": func(a, b row) int { return domain.MoneyFromInt(a.amount).Cmp(domain.MoneyFromInt(b.amount)) },
		"date":   func(a, b row) int { return pagination.CompareDates(a.date, b.date) },
	},
}

func rows(n int) []row {
	out := make([]row, n)
	for i := range out {
		out[i] = row{id: i + 1, status: "debt", date: domain.DateOf(2025, time.January, 1).AddDays(i)}
	}
	return out
}

func TestView_LastPageWindow(t *testing.T) {
	page, err := pagination.View(rows(23), rowAccessors, pagination.Filters{}, pagination.Sort{}, pagination.PageRequest{Page: 3, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 21, page.PageInfo.From)
	assert.Equal(t, 23, page.PageInfo.To)
	assert.Equal(t, 23, page.PageInfo.Total)
	assert.False(t, page.PageInfo.HasNext)
	assert.True(t, page.PageInfo.HasPrev)
}

func TestView_ClampsOutOfRangePages(t *testing.T) {
	page, err := pagination.View(rows(23), rowAccessors, pagination.Filters{}, pagination.Sort{}, pagination.PageRequest{Page: 99, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, page.PageInfo.CurrentPage)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 21, page.Items[0].id)

	page, err = pagination.View(rows(23), rowAccessors, pagination.Filters{}, pagination.Sort{}, pagination.PageRequest{Page: -4})
	require.NoError(t, err)
	assert.Equal(t, 1, page.PageInfo.CurrentPage)
	assert.Equal(t, 1, page.PageInfo.From)
	assert.Equal(t, 10, page.PageInfo.To)
	assert.True(t, page.PageInfo.HasNext)
	assert.False(t, page.PageInfo.HasPrev)
}

func TestView_Empty(t *testing.T) {
	page, err := pagination.View(nil, rowAccessors, pagination.Filters{}, pagination.Sort{}, pagination.PageRequest{Page: 2})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.PageInfo.From)
	assert.Equal(t, 0, page.PageInfo.To)
	assert.Equal(t, 1, page.PageInfo.LastPage)
	assert.Equal(t, 1, page.PageInfo.CurrentPage)
}

func TestView_FiltersAreConjunctiveAndDateRangeInclusive(t *testing.T) {
	data := rows(10)
	data[2].status = "completed"
	data[3].customer = "c-1"
	data[4].customer = "c-1"
	data[5].customer = "c-1"
	data[5].status = "completed"

	f := pagination.Filters{
		CustomerID: "c-1",
		Status:     "debt",
		From:       data[3].date,
		To:         data[4].date,
	}
	page, err := pagination.View(data, rowAccessors, f, pagination.Sort{}, pagination.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 4, page.Items[0].id)
	assert.Equal(t, 5, page.Items[1].id)
}

func TestView_StableSort(t *testing.T) {
	data := []row{
		{id: 1, amount: 5},
		{id: 2, amount: 3},
		{id: 3, amount: 5},
		{id: 4, amount: 3},
		{id: 5, amount: 9},
	}

	page, err := pagination.View(data, rowAccessors, pagination.Filters{}, pagination.Sort{Field: "amount", Dir: pagination.Asc}, pagination.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 1, 3, 5}, ids(page.Items))

	page, err = pagination.View(data, rowAccessors, pagination.Filters{}, pagination.Sort{Field: "amount", Dir: pagination.Desc}, pagination.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1, 3, 2, 4}, ids(page.Items))

	// input untouched
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(data))
}

func TestView_RejectsUnknownSort(t *testing.T) {
	_, err := pagination.View(rows(3), rowAccessors, pagination.Filters{}, pagination.Sort{Field: "nope"}, pagination.PageRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = pagination.View(rows(3), rowAccessors, pagination.Filters{}, pagination.Sort{Field: "date", Dir: "sideways"}, pagination.PageRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRemote_Info(t *testing.T) {
	next := "http://backend/api/contracts/filtered?page=2"
	info := pagination.Remote{CurrentPage: 1, PerPage: 10, From: 1, To: 10, Total: 23, LastPage: 3, NextPageURL: &next}.Info()
	assert.True(t, info.HasNext)
	assert.False(t, info.HasPrev)
	assert.Equal(t, 23, info.Total)
}

func TestCompareStrings(t *testing.T) {
	assert.Equal(t, 0, pagination.CompareStrings("ABC", "abc"))
	assert.True(t, pagination.CompareStrings("a", strings.ToUpper("b")) < 0)
}

func ids(rs []row) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.id
	}
	return out
}
