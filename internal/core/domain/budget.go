package domain

// BudgetStatus is whether a budget can still be drawn against.
type BudgetStatus string

const (
	BudgetActive   BudgetStatus = "active"
	BudgetInactive BudgetStatus = "inactive"
)

// Budget is an advertising-spend allocation bought from a supplier.
// The sum of total_cost over contracts drawing on it should stay within Money.
type Budget struct {
	ID              ID           `json:"id"`
	SupplierID      ID           `json:"supplier_id"`
	SupplierName    string       `json:"supplier_name,omitempty"`
	AccountTypeID   ID           `json:"account_type_id"`
	AccountTypeName string       `json:"account_type_name"`
	Money           Money        `json:"money"`
	ProductType     ProductType  `json:"product_type"`
	SupplierRate    Rate         `json:"supplier_rate"`
	CustomerRate    Rate         `json:"customer_rate"`
	Status          BudgetStatus `json:"status"`
	Note            string       `json:"note"`
	Date            Date         `json:"date"`
}

// BudgetUsage is the budget-contract summary row: a budget with how much of it
// contracts have already consumed.
type BudgetUsage struct {
	ID              ID     `json:"id"`
	AccountTypeName string `json:"account_type_name"`
	SupplierName    string `json:"supplier_name"`
	BudgetMoney     Money  `json:"budget_money"`
	CustomerRate    Rate   `json:"customer_rate"`
	SupplierRate    Rate   `json:"supplier_rate"`
	UsedBudget      Money  `json:"used_budget"`
}

// Remaining is the unconsumed part of the budget, never below zero.
func (u BudgetUsage) Remaining() Money {
	return u.BudgetMoney.Sub(u.UsedBudget).Max(ZeroMoney)
}
