package aggregation

import (
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/allocation"
)

// Group names used by the dashboard and overview breakdowns.
const (
	GroupAccountType = "account_types"
	GroupProduct     = "products"
	GroupProductType = "product_types"
	GroupCustomer    = "customers"
	GroupSupplier    = "suppliers"
)

// ContractMeasure reads total_cost as the contract's money and the allocation
// profit as its profit. Contracts that fail validation add no profit.
var ContractMeasure = Measure[domain.Contract]{
	Date:  func(c domain.Contract) domain.Date { return c.Date },
	Money: func(c domain.Contract) domain.Money { return c.TotalCost },
	Profit: func(c domain.Contract) domain.Money {
		a, err := allocation.Allocate(c)
		if err != nil {
			return domain.ZeroMoney
		}
		return a.Profit
	},
}

// ContractGroupers are every breakdown a contract supports.
var ContractGroupers = []Grouper[domain.Contract]{
	{Name: GroupAccountType, Key: func(c domain.Contract) (string, string) {
		return c.AccountTypeID.String(), c.AccountTypeName
	}},
	{Name: GroupProduct, Key: func(c domain.Contract) (string, string) {
		return "", c.Product
	}},
	{Name: GroupProductType, Key: func(c domain.Contract) (string, string) {
		return string(c.ProductType), c.ProductType.Label()
	}},
	{Name: GroupCustomer, Key: func(c domain.Contract) (string, string) {
		return c.CustomerID.String(), c.CustomerName
	}},
	{Name: GroupSupplier, Key: func(c domain.Contract) (string, string) {
		return c.SupplierID.String(), c.SupplierName
	}},
}

// BillMeasure reads a bill's total money; bills carry no profit.
var BillMeasure = Measure[domain.Bill]{
	Date:  func(b domain.Bill) domain.Date { return b.Date },
	Money: func(b domain.Bill) domain.Money { return b.TotalMoney },
}

// BillGroupers break bills down by customer.
var BillGroupers = []Grouper[domain.Bill]{
	{Name: GroupCustomer, Key: func(b domain.Bill) (string, string) {
		return b.CustomerID.String(), b.CustomerName
	}},
}

// BudgetMeasure reads a budget's allocated money.
var BudgetMeasure = Measure[domain.Budget]{
	Date:  func(b domain.Budget) domain.Date { return b.Date },
	Money: func(b domain.Budget) domain.Money { return b.Money },
}

// BudgetGroupers break budgets down by account type and supplier.
var BudgetGroupers = []Grouper[domain.Budget]{
	{Name: GroupAccountType, Key: func(b domain.Budget) (string, string) {
		return b.AccountTypeID.String(), b.AccountTypeName
	}},
	{Name: GroupSupplier, Key: func(b domain.Budget) (string, string) {
		return b.SupplierID.String(), b.SupplierName
	}},
}
