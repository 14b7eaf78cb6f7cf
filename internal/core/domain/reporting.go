package domain

// GroupSummary is one row of a grouped breakdown.
type GroupSummary struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Count       int    `json:"count"`
	TotalMoney  Money  `json:"total_money"`
	TotalProfit Money  `json:"total_profit"`
}

// Period is an inclusive calendar range.
type Period struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// Contains reports whether d falls within the period, both ends inclusive.
func (p Period) Contains(d Date) bool {
	if d.IsZero() {
		return false
	}
	return !d.Before(p.From) && !d.After(p.To)
}

// Dashboard is the period summary shown on the dashboard screen.
type Dashboard struct {
	Period         Period         `json:"period"`
	Granularity    string         `json:"granularity"`
	TotalContracts int            `json:"total_contracts"`
	TotalCost      Money          `json:"total_cost"`
	Revenue        Money          `json:"revenue"`
	Profit         Money          `json:"profit"`
	Received       Money          `json:"received"`
	TotalBills     int            `json:"total_bills"`
	TotalDebt      Money          `json:"total_debt"`
	TotalBudgets   int            `json:"total_budgets"`
	BudgetMoney    Money          `json:"budget_money"`
	TopAccountType string         `json:"top_account_type"`
	AccountTypes   []GroupSummary `json:"account_types"`
	Products       []GroupSummary `json:"products"`
	Customers      []GroupSummary `json:"customers"`
	Suppliers      []GroupSummary `json:"suppliers"`
	Trend          []GroupSummary `json:"trend"`
}

// CustomerOverview is a customer's activity for one month.
type CustomerOverview struct {
	Customer          Customer       `json:"customer"`
	Period            string         `json:"period"`
	TotalRuns         int            `json:"total_runs"`
	RunsByAccountType []GroupSummary `json:"runs_by_account_type"`
	RunsByProduct     []GroupSummary `json:"runs_by_product"`
	TotalMoney        Money          `json:"total_money"`
	TotalPaid         Money          `json:"total_paid"`
	TotalDebt         Money          `json:"total_debt"`
}

// SupplierOverview is a supplier's budgets for one month.
type SupplierOverview struct {
	Supplier            Supplier       `json:"supplier"`
	Period              string         `json:"period"`
	TotalBudgetCount    int            `json:"total_budget_count"`
	BudgetByAccountType []GroupSummary `json:"budget_by_account_type"`
	TotalPayable        Money          `json:"total_payable"`
}
