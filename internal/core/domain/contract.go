package domain

// Contract resells a slice of a budget to a customer. Rates are copied from
// the budget at creation and may be edited independently afterwards.
type Contract struct {
	ID                   ID          `json:"id"`
	Date                 Date        `json:"date"`
	BudgetID             ID          `json:"budget_id"`
	CustomerID           ID          `json:"customer_id"`
	CustomerName         string      `json:"customer_name"`
	SupplierID           ID          `json:"supplier_id,omitempty"`
	SupplierName         string      `json:"supplier_name"`
	AccountTypeID        ID          `json:"account_type_id"`
	AccountTypeName      string      `json:"account_type_name"`
	Product              string      `json:"product"`
	ProductType          ProductType `json:"product_type"`
	TotalCost            Money       `json:"total_cost"`
	CustomerRate         Rate        `json:"customer_rate"`
	SupplierRate         Rate        `json:"supplier_rate"`
	CustomerActuallyPaid Money       `json:"customer_actually_paid"`
	Note                 string      `json:"note"`
}
