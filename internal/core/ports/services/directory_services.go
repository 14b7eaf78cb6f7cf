package services

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
)

// CustomerSvc defines operations on customers
type CustomerSvc interface {
	ListCustomers(ctx context.Context, sess *domain.Session) (*dto.ListResponse[domain.Customer], error)
	CreateCustomer(ctx context.Context, sess *domain.Session, req dto.CustomerRequest) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, sess *domain.Session, customerID string, req dto.CustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, sess *domain.Session, customerID string) error
}

// SupplierSvc defines operations on suppliers
type SupplierSvc interface {
	ListSuppliers(ctx context.Context, sess *domain.Session) (*dto.ListResponse[domain.Supplier], error)
	CreateSupplier(ctx context.Context, sess *domain.Session, req dto.SupplierRequest) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, sess *domain.Session, supplierID string, req dto.SupplierRequest) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, sess *domain.Session, supplierID string) error
}

// AccountTypeSvc defines operations on account types
type AccountTypeSvc interface {
	ListAccountTypes(ctx context.Context, sess *domain.Session) (*dto.ListResponse[domain.AccountType], error)
	CreateAccountType(ctx context.Context, sess *domain.Session, req dto.AccountTypeRequest) (*domain.AccountType, error)
	UpdateAccountType(ctx context.Context, sess *domain.Session, accountTypeID string, req dto.AccountTypeRequest) (*domain.AccountType, error)
	DeleteAccountType(ctx context.Context, sess *domain.Session, accountTypeID string) error
}

// DirectorySvcFacade combines the customer, supplier and account type services
type DirectorySvcFacade interface {
	CustomerSvc
	SupplierSvc
	AccountTypeSvc
}
