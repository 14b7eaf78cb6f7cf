package dto

import (
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// BudgetRequest creates or updates a budget.
type BudgetRequest struct {
	SupplierID    string       `json:"supplier_id" binding:"required"`
	AccountTypeID string       `json:"account_type_id" binding:"required"`
	Money         domain.Money `json:"money" binding:"gte=0"`
	ProductType   string       `json:"product_type" binding:"required,oneof=legal illegal middle-illegal"`
	SupplierRate  domain.Rate  `json:"supplier_rate" binding:"gte=0,lte=1"`
	CustomerRate  domain.Rate  `json:"customer_rate" binding:"gte=0,lte=1"`
	Status        string       `json:"status" binding:"omitempty,oneof=active inactive"`
	Note          string       `json:"note"`
	Date          string       `json:"date" binding:"required,datetime=2006-01-02"`
}

func (r BudgetRequest) ToDomain(id domain.ID) domain.Budget {
	date, _ := domain.ParseDate(r.Date)
	status := domain.BudgetStatus(r.Status)
	if status == "" {
		status = domain.BudgetActive
	}
	return domain.Budget{
		ID:            id,
		SupplierID:    domain.ID(r.SupplierID),
		AccountTypeID: domain.ID(r.AccountTypeID),
		Money:         r.Money,
		ProductType:   domain.ProductType(r.ProductType),
		SupplierRate:  r.SupplierRate,
		CustomerRate:  r.CustomerRate,
		Status:        status,
		Note:          r.Note,
		Date:          date,
	}
}

// BudgetUsageRow is a budget-contract summary row with what is left of it.
type BudgetUsageRow struct {
	domain.BudgetUsage
	Remaining domain.Money `json:"remaining"`
	Exhausted bool         `json:"exhausted"`
}

// ToBudgetUsageRows adds the remaining amount to every usage row.
func ToBudgetUsageRows(usage []domain.BudgetUsage) []BudgetUsageRow {
	rows := make([]BudgetUsageRow, len(usage))
	for i, u := range usage {
		rows[i] = BudgetUsageRow{
			BudgetUsage: u,
			Remaining:   u.Remaining(),
			Exhausted:   !u.UsedBudget.LessThan(u.BudgetMoney),
		}
	}
	return rows
}
