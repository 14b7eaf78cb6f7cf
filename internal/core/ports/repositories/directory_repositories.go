package repositories

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// CustomerReader defines read operations for customers
type CustomerReader interface {
	// ListCustomers retrieves every customer.
	ListCustomers(ctx context.Context, sess *domain.Session) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customers
type CustomerWriter interface {
	CreateCustomer(ctx context.Context, sess *domain.Session, customer domain.Customer) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, sess *domain.Session, customer domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, sess *domain.Session, customerID domain.ID) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}

// SupplierReader defines read operations for suppliers
type SupplierReader interface {
	// ListSuppliers retrieves every supplier.
	ListSuppliers(ctx context.Context, sess *domain.Session) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for suppliers
type SupplierWriter interface {
	CreateSupplier(ctx context.Context, sess *domain.Session, supplier domain.Supplier) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, sess *domain.Session, supplier domain.Supplier) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, sess *domain.Session, supplierID domain.ID) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}

// AccountTypeReader defines read operations for account types
type AccountTypeReader interface {
	ListAccountTypes(ctx context.Context, sess *domain.Session) ([]domain.AccountType, error)
}

// AccountTypeWriter defines write operations for account types
type AccountTypeWriter interface {
	CreateAccountType(ctx context.Context, sess *domain.Session, accountType domain.AccountType) (*domain.AccountType, error)
	UpdateAccountType(ctx context.Context, sess *domain.Session, accountType domain.AccountType) (*domain.AccountType, error)
	DeleteAccountType(ctx context.Context, sess *domain.Session, accountTypeID domain.ID) error
}

// AccountTypeRepositoryFacade combines all account-type repository interfaces
type AccountTypeRepositoryFacade interface {
	AccountTypeReader
	AccountTypeWriter
}
