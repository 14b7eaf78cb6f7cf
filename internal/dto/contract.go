package dto

import (
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/allocation"
)

// ContractRequest creates or updates a contract. Zero rates are filled from the
// budget the contract draws on.
type ContractRequest struct {
	Date                 string       `json:"date" binding:"required,datetime=2006-01-02"`
	BudgetID             string       `json:"budget_id" binding:"required"`
	CustomerID           string       `json:"customer_id" binding:"required"`
	Product              string       `json:"product"`
	ProductType          string       `json:"product_type" binding:"omitempty,oneof=legal illegal middle-illegal"`
	TotalCost            domain.Money `json:"total_cost" binding:"gte=0"`
	CustomerRate         domain.Rate  `json:"customer_rate" binding:"gte=0,lte=1"`
	SupplierRate         domain.Rate  `json:"supplier_rate" binding:"gte=0,lte=1"`
	CustomerActuallyPaid domain.Money `json:"customer_actually_paid" binding:"gte=0"`
	Note                 string       `json:"note"`
}

func (r ContractRequest) ToDomain(id domain.ID) domain.Contract {
	date, _ := domain.ParseDate(r.Date)
	return domain.Contract{
		ID:                   id,
		Date:                 date,
		BudgetID:             domain.ID(r.BudgetID),
		CustomerID:           domain.ID(r.CustomerID),
		Product:              r.Product,
		ProductType:          domain.ProductType(r.ProductType),
		TotalCost:            r.TotalCost,
		CustomerRate:         r.CustomerRate,
		SupplierRate:         r.SupplierRate,
		CustomerActuallyPaid: r.CustomerActuallyPaid,
		Note:                 r.Note,
	}
}

// CheckBudgetRequest asks whether a cost still fits a budget. ContractID is
// set when an existing contract is being edited.
type CheckBudgetRequest struct {
	BudgetID   string       `json:"budget_id" binding:"required"`
	ContractID string       `json:"contract_id"`
	TotalCost  domain.Money `json:"total_cost" binding:"gte=0"`
}

// ContractRow is a contract with its allocation worked out.
type ContractRow struct {
	domain.Contract
	allocation.Allocation
	Invalid bool `json:"invalid,omitempty"`
}

// ContractListResponse is one page of contracts with totals over that page.
type ContractListResponse struct {
	PagedResponse[ContractRow]
	Totals allocation.Totals `json:"totals"`
}

// ContractMutationResponse is returned after a contract is created or updated.
type ContractMutationResponse struct {
	Contract    domain.Contract        `json:"contract"`
	Allocation  allocation.Allocation  `json:"allocation"`
	BudgetCheck allocation.BudgetCheck `json:"budget_check"`
}
