package allocation_test

import (
	"testing"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/allocation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(v int64) domain.Money { return domain.MoneyFromInt(v) }

func contract(id, budgetID string, cost int64) domain.Contract {
	return domain.Contract{
		ID:           domain.ID(id),
		BudgetID:     domain.ID(budgetID),
		TotalCost:    money(cost),
		CustomerRate: domain.MustRate("0.2"),
		SupplierRate: domain.MustRate("0.15"),
	}
}

func TestAllocate_ConcreteScenario(t *testing.T) {
	a, err := allocation.Allocate(contract("c-1", "b-1", 200000))
	require.NoError(t, err)
	assert.Equal(t, "40000", a.CustomerCost.String())
	assert.Equal(t, "30000", a.SupplierCost.String())
	assert.Equal(t, "10000", a.Profit.String())
}

func TestAllocate_RoundsEachCost(t *testing.T) {
	c := domain.Contract{
		TotalCost:    money(333),
		CustomerRate: domain.MustRate("0.155"),
		SupplierRate: domain.MustRate("0.101"),
	}
	a, err := allocation.Allocate(c)
	require.NoError(t, err)
	// 51.615 -> 52, 33.633 -> 34
	assert.Equal(t, "52", a.CustomerCost.String())
	assert.Equal(t, "34", a.SupplierCost.String())
	assert.Equal(t, "18", a.Profit.String())
}

func TestAllocate_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		c    domain.Contract
	}{
		{name: "negative cost", c: domain.Contract{TotalCost: money(-1)}},
		{name: "negative customer rate", c: domain.Contract{TotalCost: money(1), CustomerRate: domain.MustRate("-0.1")}},
		{name: "supplier rate above one", c: domain.Contract{TotalCost: money(1), SupplierRate: domain.MustRate("1.5")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := allocation.Allocate(tt.c)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestUsedBudget_SingleContractEqualsRoundedCost(t *testing.T) {
	c := contract("c-1", "b-1", 0)
	c.TotalCost = domain.ParseMoney("1234.6")
	assert.Equal(t, "1235", allocation.UsedBudget("b-1", []domain.Contract{c}, "").String())
}

func TestUsedBudget_IgnoresOtherBudgetsAndExcluded(t *testing.T) {
	contracts := []domain.Contract{
		contract("c-1", "b-1", 100),
		contract("c-2", "b-2", 1000),
		contract("c-3", "b-1", 50),
	}
	assert.Equal(t, "150", allocation.UsedBudget("b-1", contracts, "").String())
	assert.Equal(t, "100", allocation.UsedBudget("b-1", contracts, "c-3").String())
}

func TestWouldExceed_ConcreteScenario(t *testing.T) {
	budget := domain.Budget{ID: "b-1", Money: money(1000000)}
	existing := []domain.Contract{
		contract("c-1", "b-1", 400000),
		contract("c-2", "b-1", 300000),
	}

	exceeded, err := allocation.WouldExceed(budget, existing, allocation.Candidate{TotalCost: money(200000)})
	require.NoError(t, err)
	assert.False(t, exceeded)

	existing = append(existing, contract("c-3", "b-1", 200000))
	exceeded, err = allocation.WouldExceed(budget, existing, allocation.Candidate{TotalCost: money(150000)})
	require.NoError(t, err)
	assert.True(t, exceeded)
}

func TestWouldExceed_EditInPlaceExcludesOwnPriorValue(t *testing.T) {
	budget := domain.Budget{ID: "b-1", Money: money(1000)}
	existing := []domain.Contract{
		contract("c-1", "b-1", 600),
		contract("c-2", "b-1", 300),
	}

	// Editing c-1 from 600 to 700: 300 + 700 = 1000, within budget.
	check, err := allocation.Check(budget, existing, allocation.Candidate{ContractID: "c-1", TotalCost: money(700)})
	require.NoError(t, err)
	assert.False(t, check.Exceeded)
	assert.Equal(t, "300", check.Used.String())
	assert.Equal(t, "1000", check.Projected.String())

	// Without the exclusion the same edit would look like 1600.
	check, err = allocation.Check(budget, existing, allocation.Candidate{TotalCost: money(700)})
	require.NoError(t, err)
	assert.True(t, check.Exceeded)
}

func TestProjectedUsage(t *testing.T) {
	// U = 900 includes X = 600; editing to Y = 200 gives 500, not 1100.
	assert.Equal(t, "500", allocation.ProjectedUsage(money(900), money(600), money(200)).String())

	budget := domain.Budget{ID: "b-1", Money: money(10000)}
	existing := []domain.Contract{contract("c-1", "b-1", 600), contract("c-2", "b-1", 300)}
	check, err := allocation.Check(budget, existing, allocation.Candidate{ContractID: "c-1", TotalCost: money(200)})
	require.NoError(t, err)
	assert.True(t, check.Projected.Equal(allocation.ProjectedUsage(money(900), money(600), money(200))))
}

func TestWouldExceed_ZeroCostAlwaysAllowed(t *testing.T) {
	budget := domain.Budget{ID: "b-1", Money: money(100)}
	overdrawn := []domain.Contract{contract("c-1", "b-1", 500)}
	exceeded, err := allocation.WouldExceed(budget, overdrawn, allocation.Candidate{TotalCost: money(0)})
	require.NoError(t, err)
	assert.False(t, exceeded)
}

func TestWouldExceed_ZeroMoneyBudget(t *testing.T) {
	budget := domain.Budget{ID: "b-1"}
	exceeded, err := allocation.WouldExceed(budget, nil, allocation.Candidate{TotalCost: money(1)})
	require.NoError(t, err)
	assert.True(t, exceeded)
}

func TestWouldExceed_NegativeCandidateRejected(t *testing.T) {
	budget := domain.Budget{ID: "b-1", Money: money(100)}
	_, err := allocation.WouldExceed(budget, nil, allocation.Candidate{TotalCost: money(-5)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestWouldExceed_MonotonicInCost(t *testing.T) {
	budget := domain.Budget{ID: "b-1", Money: money(1000)}
	existing := []domain.Contract{contract("c-1", "b-1", 700)}

	seenExceeded := false
	for cost := int64(0); cost <= 1000; cost += 25 {
		exceeded, err := allocation.WouldExceed(budget, existing, allocation.Candidate{TotalCost: money(cost)})
		require.NoError(t, err)
		if seenExceeded {
			assert.True(t, exceeded, "cost %d must stay exceeded", cost)
		}
		seenExceeded = seenExceeded || exceeded
	}
	assert.True(t, seenExceeded)
}

func TestWithBudgetRates(t *testing.T) {
	budget := domain.Budget{
		ID:            "b-1",
		SupplierID:    "s-1",
		AccountTypeID: "at-1",
		CustomerRate:  domain.MustRate("0.2"),
		SupplierRate:  domain.MustRate("0.15"),
		ProductType:   domain.ProductLegal,
	}
	c := allocation.WithBudgetRates(domain.Contract{CustomerRate: domain.MustRate("0.25")}, budget)
	assert.True(t, c.CustomerRate.Equal(domain.MustRate("0.25")))
	assert.True(t, c.SupplierRate.Equal(domain.MustRate("0.15")))
	assert.Equal(t, domain.ProductLegal, c.ProductType)
	assert.Equal(t, domain.ID("s-1"), c.SupplierID)
}

func TestSumContracts(t *testing.T) {
	bad := contract("c-3", "b-1", -10)
	totals := allocation.SumContracts([]domain.Contract{
		contract("c-1", "b-1", 200000),
		contract("c-2", "b-1", 100000),
		bad,
	})
	assert.Equal(t, "300000", totals.TotalCost.String())
	assert.Equal(t, "60000", totals.CustomerCost.String())
	assert.Equal(t, "45000", totals.SupplierCost.String())
	assert.Equal(t, "15000", totals.Profit.String())
	assert.Equal(t, 1, totals.Invalid)
}

func TestExceededError(t *testing.T) {
	budget := domain.Budget{ID: "b-1", Money: money(100)}
	check, err := allocation.Check(budget, []domain.Contract{contract("c-1", "b-1", 80)}, allocation.Candidate{TotalCost: money(30)})
	require.NoError(t, err)
	require.True(t, check.Exceeded)

	var exceeded error = &allocation.ExceededError{Check: check}
	assert.ErrorIs(t, exceeded, apperrors.ErrBudgetExceeded)
	assert.Contains(t, exceeded.Error(), "20 left")
}
