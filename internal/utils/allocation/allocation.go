package allocation

import (
	"fmt"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// Allocation is how a contract's total cost splits between customer and supplier.
type Allocation struct {
	CustomerCost domain.Money `json:"customer_cost"`
	SupplierCost domain.Money `json:"supplier_cost"`
	Profit       domain.Money `json:"profit"`
}

// Candidate is the contract whose cost is being checked against a budget.
// ContractID is set when an existing contract is edited in place.
type Candidate struct {
	ContractID domain.ID
	TotalCost  domain.Money
}

// BudgetCheck is the result of checking a candidate against its budget.
type BudgetCheck struct {
	BudgetID  domain.ID    `json:"budget_id"`
	Money     domain.Money `json:"money"`
	Used      domain.Money `json:"used"`
	Candidate domain.Money `json:"candidate"`
	Projected domain.Money `json:"projected"`
	Remaining domain.Money `json:"remaining"`
	Exceeded  bool         `json:"exceeded"`
}

// ValidateContract rejects negative costs and rates outside [0,1].
func ValidateContract(c domain.Contract) error {
	if c.TotalCost.IsNegative() {
		return fmt.Errorf("%w: total_cost must not be negative", apperrors.ErrValidation)
	}
	if !c.CustomerRate.InRange() {
		return fmt.Errorf("%w: customer_rate %s must be within [0,1]", apperrors.ErrValidation, c.CustomerRate)
	}
	if !c.SupplierRate.InRange() {
		return fmt.Errorf("%w: supplier_rate %s must be within [0,1]", apperrors.ErrValidation, c.SupplierRate)
	}
	return nil
}

// WithBudgetRates fills rates the contract leaves at zero from its budget.
func WithBudgetRates(c domain.Contract, b domain.Budget) domain.Contract {
	c.CustomerRate = c.CustomerRate.Or(b.CustomerRate)
	c.SupplierRate = c.SupplierRate.Or(b.SupplierRate)
	if c.ProductType == "" {
		c.ProductType = b.ProductType
	}
	if c.AccountTypeID.IsZero() {
		c.AccountTypeID = b.AccountTypeID
		c.AccountTypeName = b.AccountTypeName
	}
	if c.SupplierID.IsZero() {
		c.SupplierID = b.SupplierID
	}
	return c
}

// Allocate splits the contract's cost. Each cost is rounded to the currency
// unit before the profit is taken, so profit is always a whole amount.
func Allocate(c domain.Contract) (Allocation, error) {
	if err := ValidateContract(c); err != nil {
		return Allocation{}, err
	}
	customer := c.TotalCost.MulRate(c.CustomerRate).Round()
	supplier := c.TotalCost.MulRate(c.SupplierRate).Round()
	return Allocation{
		CustomerCost: customer,
		SupplierCost: supplier,
		Profit:       customer.Sub(supplier),
	}, nil
}

// UsedBudget sums the rounded total_cost of every contract drawing on budgetID,
// skipping the contract identified by excluding (if any).
func UsedBudget(budgetID domain.ID, contracts []domain.Contract, excluding domain.ID) domain.Money {
	used := domain.ZeroMoney
	for _, c := range contracts {
		if c.BudgetID != budgetID {
			continue
		}
		if !excluding.IsZero() && c.ID == excluding {
			continue
		}
		used = used.Add(c.TotalCost.Round())
	}
	return used
}

// ProjectedUsage is the budget usage after a contract's cost changes from
// previous to next, given usage that already includes previous.
func ProjectedUsage(used, previous, next domain.Money) domain.Money {
	return used.Sub(previous.Round()).Add(next.Round())
}

// WouldExceed reports whether adding the candidate to the budget's existing
// contracts pushes usage past the budget's money. A zero-cost candidate never
// exceeds.
func WouldExceed(budget domain.Budget, existing []domain.Contract, candidate Candidate) (bool, error) {
	check, err := Check(budget, existing, candidate)
	if err != nil {
		return false, err
	}
	return check.Exceeded, nil
}

// Check computes the full budget check for a candidate. The candidate's own
// prior value is excluded from usage when it is an edit.
func Check(budget domain.Budget, existing []domain.Contract, candidate Candidate) (BudgetCheck, error) {
	if candidate.TotalCost.IsNegative() {
		return BudgetCheck{}, fmt.Errorf("%w: total_cost must not be negative", apperrors.ErrValidation)
	}
	if budget.Money.IsNegative() {
		return BudgetCheck{}, fmt.Errorf("%w: budget %s has negative money", apperrors.ErrValidation, budget.ID)
	}

	used := UsedBudget(budget.ID, existing, candidate.ContractID)
	cost := candidate.TotalCost.Round()
	projected := used.Add(cost)

	return BudgetCheck{
		BudgetID:  budget.ID,
		Money:     budget.Money,
		Used:      used,
		Candidate: cost,
		Projected: projected,
		Remaining: budget.Money.Sub(used).Max(domain.ZeroMoney),
		Exceeded:  !cost.IsZero() && projected.GreaterThan(budget.Money),
	}, nil
}

// ExceededError is returned when a contract would overdraw its budget. It
// matches apperrors.ErrBudgetExceeded and carries the check for display.
type ExceededError struct {
	Check BudgetCheck
}

func (e *ExceededError) Error() string {
	return fmt.Sprintf("%s: budget %s has %s left, contract needs %s",
		apperrors.ErrBudgetExceeded, e.Check.BudgetID, e.Check.Remaining, e.Check.Candidate)
}

func (e *ExceededError) Unwrap() error {
	return apperrors.ErrBudgetExceeded
}

// Totals are the summed figures shown under a contract list.
type Totals struct {
	TotalCost    domain.Money `json:"total_cost"`
	CustomerCost domain.Money `json:"customer_cost"`
	SupplierCost domain.Money `json:"supplier_cost"`
	Profit       domain.Money `json:"profit"`
	CustomerPaid domain.Money `json:"customer_paid"`
	Invalid      int          `json:"invalid"`
}

// SumContracts totals the allocations of contracts. Rows that fail validation
// contribute nothing to the costs and are counted in Invalid.
func SumContracts(contracts []domain.Contract) Totals {
	var t Totals
	for _, c := range contracts {
		t.CustomerPaid = t.CustomerPaid.Add(c.CustomerActuallyPaid)
		a, err := Allocate(c)
		if err != nil {
			t.Invalid++
			continue
		}
		t.TotalCost = t.TotalCost.Add(c.TotalCost.Round())
		t.CustomerCost = t.CustomerCost.Add(a.CustomerCost)
		t.SupplierCost = t.SupplierCost.Add(a.SupplierCost)
		t.Profit = t.Profit.Add(a.Profit)
	}
	return t
}

// Usage recomputes a budget-contract summary row from the contract set.
func Usage(budget domain.Budget, contracts []domain.Contract) domain.BudgetUsage {
	return domain.BudgetUsage{
		ID:              budget.ID,
		AccountTypeName: budget.AccountTypeName,
		SupplierName:    budget.SupplierName,
		BudgetMoney:     budget.Money,
		CustomerRate:    budget.CustomerRate,
		SupplierRate:    budget.SupplierRate,
		UsedBudget:      UsedBudget(budget.ID, contracts, ""),
	}
}
