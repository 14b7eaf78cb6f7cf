package dto

import (
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// ListResponse wraps an unpaginated collection. Warning is set when the
// backend could not be read and the collection is empty for that reason.
type ListResponse[T any] struct {
	Data    []T    `json:"data"`
	Warning string `json:"warning,omitempty"`
}

// NewListResponse never returns a nil slice so the dashboard always gets [].
func NewListResponse[T any](items []T) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &ListResponse[T]{Data: items}
}

// CustomerRequest creates or updates a customer.
type CustomerRequest struct {
	Name          string      `json:"name" binding:"required"`
	Zalo          string      `json:"zalo"`
	Facebook      string      `json:"facebook"`
	PhoneNumber   string      `json:"phone_number"`
	Address       string      `json:"address"`
	ProductType   string      `json:"product_type" binding:"omitempty,oneof=legal illegal middle-illegal"`
	AccountTypeID string      `json:"account_type_id"`
	Note          string      `json:"note"`
	Rate          domain.Rate `json:"rate" binding:"gte=0,lte=1"`
}

func (r CustomerRequest) ToDomain(id domain.ID) domain.Customer {
	return domain.Customer{
		ID:            id,
		Name:          r.Name,
		Zalo:          r.Zalo,
		Facebook:      r.Facebook,
		PhoneNumber:   r.PhoneNumber,
		Address:       r.Address,
		ProductType:   domain.ProductType(r.ProductType),
		AccountTypeID: domain.ID(r.AccountTypeID),
		Note:          r.Note,
		Rate:          r.Rate,
	}
}

// SupplierRequest creates or updates a supplier.
type SupplierRequest struct {
	Name        string `json:"name" binding:"required"`
	Zalo        string `json:"zalo"`
	Facebook    string `json:"facebook"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Note        string `json:"note"`
}

func (r SupplierRequest) ToDomain(id domain.ID) domain.Supplier {
	return domain.Supplier{
		ID:          id,
		Name:        r.Name,
		Zalo:        r.Zalo,
		Facebook:    r.Facebook,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		Note:        r.Note,
	}
}

// AccountTypeRequest creates or updates an account type.
type AccountTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Note        string `json:"note"`
}

func (r AccountTypeRequest) ToDomain(id domain.ID) domain.AccountType {
	return domain.AccountType{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Note:        r.Note,
	}
}
