package backend

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
)

// CustomerRepository serves customers from the backend's customer resource.
type CustomerRepository struct {
	res resource[domain.Customer]
}

func NewCustomerRepository(c *Client) *CustomerRepository {
	return &CustomerRepository{res: newResource[domain.Customer](c, "customer")}
}

func (r *CustomerRepository) ListCustomers(ctx context.Context, sess *domain.Session) ([]domain.Customer, error) {
	return r.res.all(ctx, sess)
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, sess *domain.Session, customer domain.Customer) (*domain.Customer, error) {
	return r.res.create(ctx, sess, customer)
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, sess *domain.Session, customer domain.Customer) (*domain.Customer, error) {
	return r.res.update(ctx, sess, customer.ID, customer)
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, sess *domain.Session, customerID domain.ID) error {
	return r.res.delete(ctx, sess, customerID)
}

// SupplierRepository serves suppliers.
type SupplierRepository struct {
	res resource[domain.Supplier]
}

func NewSupplierRepository(c *Client) *SupplierRepository {
	return &SupplierRepository{res: newResource[domain.Supplier](c, "supplier")}
}

func (r *SupplierRepository) ListSuppliers(ctx context.Context, sess *domain.Session) ([]domain.Supplier, error) {
	return r.res.all(ctx, sess)
}

func (r *SupplierRepository) CreateSupplier(ctx context.Context, sess *domain.Session, supplier domain.Supplier) (*domain.Supplier, error) {
	return r.res.create(ctx, sess, supplier)
}

func (r *SupplierRepository) UpdateSupplier(ctx context.Context, sess *domain.Session, supplier domain.Supplier) (*domain.Supplier, error) {
	return r.res.update(ctx, sess, supplier.ID, supplier)
}

func (r *SupplierRepository) DeleteSupplier(ctx context.Context, sess *domain.Session, supplierID domain.ID) error {
	return r.res.delete(ctx, sess, supplierID)
}

// AccountTypeRepository serves account types.
type AccountTypeRepository struct {
	res resource[domain.AccountType]
}

func NewAccountTypeRepository(c *Client) *AccountTypeRepository {
	return &AccountTypeRepository{res: newResource[domain.AccountType](c, "account-type")}
}

func (r *AccountTypeRepository) ListAccountTypes(ctx context.Context, sess *domain.Session) ([]domain.AccountType, error) {
	return r.res.all(ctx, sess)
}

func (r *AccountTypeRepository) CreateAccountType(ctx context.Context, sess *domain.Session, accountType domain.AccountType) (*domain.AccountType, error) {
	return r.res.create(ctx, sess, accountType)
}

func (r *AccountTypeRepository) UpdateAccountType(ctx context.Context, sess *domain.Session, accountType domain.AccountType) (*domain.AccountType, error) {
	return r.res.update(ctx, sess, accountType.ID, accountType)
}

func (r *AccountTypeRepository) DeleteAccountType(ctx context.Context, sess *domain.Session, accountTypeID domain.ID) error {
	return r.res.delete(ctx, sess, accountTypeID)
}

var (
	_ repositories.CustomerRepositoryFacade    = (*CustomerRepository)(nil)
	_ repositories.SupplierRepositoryFacade    = (*SupplierRepository)(nil)
	_ repositories.AccountTypeRepositoryFacade = (*AccountTypeRepository)(nil)
)
