package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
)

// directoryService passes customer, supplier and account type operations
// through to the backend. Deletes are restricted to admins.
type directoryService struct {
	BaseService
	customerRepo    portsrepo.CustomerRepositoryFacade
	supplierRepo    portsrepo.SupplierRepositoryFacade
	accountTypeRepo portsrepo.AccountTypeRepositoryFacade
}

// NewDirectoryService creates the directory service.
func NewDirectoryService(
	customerRepo portsrepo.CustomerRepositoryFacade,
	supplierRepo portsrepo.SupplierRepositoryFacade,
	accountTypeRepo portsrepo.AccountTypeRepositoryFacade,
) portssvc.DirectorySvcFacade {
	return &directoryService{
		customerRepo:    customerRepo,
		supplierRepo:    supplierRepo,
		accountTypeRepo: accountTypeRepo,
	}
}

var _ portssvc.DirectorySvcFacade = (*directoryService)(nil)

func requireID(name, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, name)
	}
	return nil
}

// listAll runs a directory read and degrades I/O failures to an empty list.
func listAll[T any](ctx context.Context, s *BaseService, sess *domain.Session, what string, list func(context.Context, *domain.Session) ([]T, error)) (*dto.ListResponse[T], error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	items, err := list(ctx, sess)
	if err != nil {
		warning, err := s.Degrade(ctx, err, "Failed to list "+what)
		if err != nil {
			return nil, err
		}
		resp := dto.NewListResponse[T](nil)
		resp.Warning = warning
		return resp, nil
	}
	return dto.NewListResponse(items), nil
}

// --- Customers ---

func (s *directoryService) ListCustomers(ctx context.Context, sess *domain.Session) (*dto.ListResponse[domain.Customer], error) {
	return listAll(ctx, &s.BaseService, sess, "customers", s.customerRepo.ListCustomers)
}

func (s *directoryService) CreateCustomer(ctx context.Context, sess *domain.Session, req dto.CustomerRequest) (*domain.Customer, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	customer := req.ToDomain("")
	if !customer.Rate.InRange() {
		return nil, fmt.Errorf("%w: rate must be within [0,1]", apperrors.ErrValidation)
	}
	created, err := s.customerRepo.CreateCustomer(ctx, sess, customer)
	if err != nil {
		s.LogError(ctx, err, "Failed to create customer", slog.String("name", customer.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Customer created", slog.String("customer_id", created.ID.String()))
	return created, nil
}

func (s *directoryService) UpdateCustomer(ctx context.Context, sess *domain.Session, customerID string, req dto.CustomerRequest) (*domain.Customer, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("customer id", customerID); err != nil {
		return nil, err
	}
	customer := req.ToDomain(domain.ID(customerID))
	if !customer.Rate.InRange() {
		return nil, fmt.Errorf("%w: rate must be within [0,1]", apperrors.ErrValidation)
	}
	updated, err := s.customerRepo.UpdateCustomer(ctx, sess, customer)
	if err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}
	return updated, nil
}

func (s *directoryService) DeleteCustomer(ctx context.Context, sess *domain.Session, customerID string) error {
	if err := s.RequireRole(ctx, sess, domain.RoleAdmin); err != nil {
		return err
	}
	if err := requireID("customer id", customerID); err != nil {
		return err
	}
	if err := s.customerRepo.DeleteCustomer(ctx, sess, domain.ID(customerID)); err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		return err
	}
	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}

// --- Suppliers ---

func (s *directoryService) ListSuppliers(ctx context.Context, sess *domain.Session) (*dto.ListResponse[domain.Supplier], error) {
	return listAll(ctx, &s.BaseService, sess, "suppliers", s.supplierRepo.ListSuppliers)
}

func (s *directoryService) CreateSupplier(ctx context.Context, sess *domain.Session, req dto.SupplierRequest) (*domain.Supplier, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	created, err := s.supplierRepo.CreateSupplier(ctx, sess, req.ToDomain(""))
	if err != nil {
		s.LogError(ctx, err, "Failed to create supplier", slog.String("name", req.Name))
		return nil, err
	}
	s.LogInfo(ctx, "Supplier created", slog.String("supplier_id", created.ID.String()))
	return created, nil
}

func (s *directoryService) UpdateSupplier(ctx context.Context, sess *domain.Session, supplierID string, req dto.SupplierRequest) (*domain.Supplier, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("supplier id", supplierID); err != nil {
		return nil, err
	}
	updated, err := s.supplierRepo.UpdateSupplier(ctx, sess, req.ToDomain(domain.ID(supplierID)))
	if err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}
	return updated, nil
}

func (s *directoryService) DeleteSupplier(ctx context.Context, sess *domain.Session, supplierID string) error {
	if err := s.RequireRole(ctx, sess, domain.RoleAdmin); err != nil {
		return err
	}
	if err := requireID("supplier id", supplierID); err != nil {
		return err
	}
	if err := s.supplierRepo.DeleteSupplier(ctx, sess, domain.ID(supplierID)); err != nil {
		s.LogError(ctx, err, "Failed to delete supplier", slog.String("supplier_id", supplierID))
		return err
	}
	s.LogInfo(ctx, "Supplier deleted", slog.String("supplier_id", supplierID))
	return nil
}

// --- Account types ---

func (s *directoryService) ListAccountTypes(ctx context.Context, sess *domain.Session) (*dto.ListResponse[domain.AccountType], error) {
	return listAll(ctx, &s.BaseService, sess, "account types", s.accountTypeRepo.ListAccountTypes)
}

func (s *directoryService) CreateAccountType(ctx context.Context, sess *domain.Session, req dto.AccountTypeRequest) (*domain.AccountType, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	created, err := s.accountTypeRepo.CreateAccountType(ctx, sess, req.ToDomain(""))
	if err != nil {
		s.LogError(ctx, err, "Failed to create account type", slog.String("name", req.Name))
		return nil, err
	}
	return created, nil
}

func (s *directoryService) UpdateAccountType(ctx context.Context, sess *domain.Session, accountTypeID string, req dto.AccountTypeRequest) (*domain.AccountType, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("account type id", accountTypeID); err != nil {
		return nil, err
	}
	updated, err := s.accountTypeRepo.UpdateAccountType(ctx, sess, req.ToDomain(domain.ID(accountTypeID)))
	if err != nil {
		s.LogError(ctx, err, "Failed to update account type", slog.String("account_type_id", accountTypeID))
		return nil, err
	}
	return updated, nil
}

func (s *directoryService) DeleteAccountType(ctx context.Context, sess *domain.Session, accountTypeID string) error {
	if err := s.RequireRole(ctx, sess, domain.RoleAdmin); err != nil {
		return err
	}
	if err := requireID("account type id", accountTypeID); err != nil {
		return err
	}
	if err := s.accountTypeRepo.DeleteAccountType(ctx, sess, domain.ID(accountTypeID)); err != nil {
		s.LogError(ctx, err, "Failed to delete account type", slog.String("account_type_id", accountTypeID))
		return err
	}
	return nil
}
