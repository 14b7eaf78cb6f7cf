package services_test

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

var (
	adminSession = &domain.Session{
		ID:           "sess-admin",
		User:         domain.User{ID: "u-admin", Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin, Status: domain.UserActive},
		BackendToken: "backend-admin",
	}
	managerSession = &domain.Session{
		ID:           "sess-manager",
		User:         domain.User{ID: "u-manager", Name: "Manager", Email: "manager@example.com", Role: domain.RoleManager, Status: domain.UserActive},
		BackendToken: "backend-manager",
	}
)

// ptr returns the typed nil-or-value stored at args index i.
func ptr[T any](args mock.Arguments, i int) *T {
	if v := args.Get(i); v != nil {
		return v.(*T)
	}
	return nil
}

func slice[T any](args mock.Arguments, i int) []T {
	if v := args.Get(i); v != nil {
		return v.([]T)
	}
	return nil
}

// --- Mock AuthGateway ---
type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) Login(ctx context.Context, creds portsrepo.Credentials) (*portsrepo.LoginResult, error) {
	args := m.Called(ctx, creds)
	return ptr[portsrepo.LoginResult](args, 0), args.Error(1)
}

func (m *MockAuthGateway) CheckPassword(ctx context.Context, sess *domain.Session, creds portsrepo.Credentials) error {
	return m.Called(ctx, sess, creds).Error(0)
}

func (m *MockAuthGateway) ChangePassword(ctx context.Context, sess *domain.Session, userID domain.ID, newPassword string) error {
	return m.Called(ctx, sess, userID, newPassword).Error(0)
}

func (m *MockAuthGateway) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListUsers(ctx context.Context, sess *domain.Session) ([]domain.User, error) {
	args := m.Called(ctx, sess)
	return slice[domain.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) RegisterUser(ctx context.Context, sess *domain.Session, user portsrepo.NewUser) (*domain.User, error) {
	args := m.Called(ctx, sess, user)
	return ptr[domain.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, sess *domain.Session, patch portsrepo.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, sess, patch)
	return ptr[domain.User](args, 0), args.Error(1)
}

func (m *MockUserRepository) SendVerifyEmail(ctx context.Context, sess *domain.Session, email string) error {
	return m.Called(ctx, sess, email).Error(0)
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, sess *domain.Session, budgetID domain.ID) (*domain.Budget, error) {
	args := m.Called(ctx, sess, budgetID)
	return ptr[domain.Budget](args, 0), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, sess *domain.Session) ([]domain.Budget, error) {
	args := m.Called(ctx, sess)
	return slice[domain.Budget](args, 0), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsBySupplier(ctx context.Context, sess *domain.Session, supplierID domain.ID, q portsrepo.ListQuery) (portsrepo.ListResult[domain.Budget], error) {
	args := m.Called(ctx, sess, supplierID, q)
	return args.Get(0).(portsrepo.ListResult[domain.Budget]), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetUsage(ctx context.Context, sess *domain.Session) ([]domain.BudgetUsage, error) {
	args := m.Called(ctx, sess)
	return slice[domain.BudgetUsage](args, 0), args.Error(1)
}

func (m *MockBudgetRepository) CreateBudget(ctx context.Context, sess *domain.Session, budget domain.Budget) (*domain.Budget, error) {
	args := m.Called(ctx, sess, budget)
	return ptr[domain.Budget](args, 0), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, sess *domain.Session, budget domain.Budget) (*domain.Budget, error) {
	args := m.Called(ctx, sess, budget)
	return ptr[domain.Budget](args, 0), args.Error(1)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, sess *domain.Session, budgetID domain.ID) error {
	return m.Called(ctx, sess, budgetID).Error(0)
}

// --- Mock ContractRepository ---
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) ListContracts(ctx context.Context, sess *domain.Session, q portsrepo.ListQuery) (portsrepo.ListResult[domain.Contract], error) {
	args := m.Called(ctx, sess, q)
	return args.Get(0).(portsrepo.ListResult[domain.Contract]), args.Error(1)
}

func (m *MockContractRepository) ListContractsByBudget(ctx context.Context, sess *domain.Session, budgetID domain.ID) ([]domain.Contract, error) {
	args := m.Called(ctx, sess, budgetID)
	return slice[domain.Contract](args, 0), args.Error(1)
}

func (m *MockContractRepository) CreateContract(ctx context.Context, sess *domain.Session, contract domain.Contract) (*domain.Contract, error) {
	args := m.Called(ctx, sess, contract)
	return ptr[domain.Contract](args, 0), args.Error(1)
}

func (m *MockContractRepository) UpdateContract(ctx context.Context, sess *domain.Session, contract domain.Contract) (*domain.Contract, error) {
	args := m.Called(ctx, sess, contract)
	return ptr[domain.Contract](args, 0), args.Error(1)
}

func (m *MockContractRepository) DeleteContract(ctx context.Context, sess *domain.Session, contractID domain.ID) error {
	return m.Called(ctx, sess, contractID).Error(0)
}

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, sess *domain.Session, billID domain.ID) (*domain.Bill, error) {
	args := m.Called(ctx, sess, billID)
	return ptr[domain.Bill](args, 0), args.Error(1)
}

func (m *MockBillRepository) ListBills(ctx context.Context, sess *domain.Session, q portsrepo.ListQuery) (portsrepo.ListResult[domain.Bill], error) {
	args := m.Called(ctx, sess, q)
	return args.Get(0).(portsrepo.ListResult[domain.Bill]), args.Error(1)
}

func (m *MockBillRepository) CreateBill(ctx context.Context, sess *domain.Session, bill domain.Bill) (*domain.Bill, error) {
	args := m.Called(ctx, sess, bill)
	return ptr[domain.Bill](args, 0), args.Error(1)
}

func (m *MockBillRepository) UpdateBill(ctx context.Context, sess *domain.Session, bill domain.Bill) (*domain.Bill, error) {
	args := m.Called(ctx, sess, bill)
	return ptr[domain.Bill](args, 0), args.Error(1)
}

func (m *MockBillRepository) DeleteBill(ctx context.Context, sess *domain.Session, billID domain.ID) error {
	return m.Called(ctx, sess, billID).Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListPaymentsByBill(ctx context.Context, sess *domain.Session, billID domain.ID) ([]domain.Payment, error) {
	args := m.Called(ctx, sess, billID)
	return slice[domain.Payment](args, 0), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByCustomer(ctx context.Context, sess *domain.Session, customerID domain.ID, within portsrepo.DateRange) ([]domain.Payment, error) {
	args := m.Called(ctx, sess, customerID, within)
	return slice[domain.Payment](args, 0), args.Error(1)
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, sess *domain.Session, payment domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, sess, payment)
	return ptr[domain.Payment](args, 0), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, sess *domain.Session, payment domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, sess, payment)
	return ptr[domain.Payment](args, 0), args.Error(1)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, sess *domain.Session, paymentID domain.ID) error {
	return m.Called(ctx, sess, paymentID).Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) ContractsBetween(ctx context.Context, sess *domain.Session, within portsrepo.DateRange) ([]domain.Contract, error) {
	args := m.Called(ctx, sess, within)
	return slice[domain.Contract](args, 0), args.Error(1)
}

func (m *MockReportingRepository) BillsBetween(ctx context.Context, sess *domain.Session, within portsrepo.DateRange) ([]domain.Bill, error) {
	args := m.Called(ctx, sess, within)
	return slice[domain.Bill](args, 0), args.Error(1)
}

func (m *MockReportingRepository) BudgetsBetween(ctx context.Context, sess *domain.Session, within portsrepo.DateRange) ([]domain.Budget, error) {
	args := m.Called(ctx, sess, within)
	return slice[domain.Budget](args, 0), args.Error(1)
}

// --- Mock OverviewRepository ---
type MockOverviewRepository struct {
	mock.Mock
}

func (m *MockOverviewRepository) CustomerOverview(ctx context.Context, sess *domain.Session, customerID domain.ID, month string) (*domain.CustomerOverview, error) {
	args := m.Called(ctx, sess, customerID, month)
	return ptr[domain.CustomerOverview](args, 0), args.Error(1)
}

func (m *MockOverviewRepository) SupplierOverview(ctx context.Context, sess *domain.Session, supplierID domain.ID, month string) (*domain.SupplierOverview, error) {
	args := m.Called(ctx, sess, supplierID, month)
	return ptr[domain.SupplierOverview](args, 0), args.Error(1)
}

var (
	_ portsrepo.AuthGateway              = (*MockAuthGateway)(nil)
	_ portsrepo.UserRepositoryFacade     = (*MockUserRepository)(nil)
	_ portsrepo.BudgetRepositoryFacade   = (*MockBudgetRepository)(nil)
	_ portsrepo.ContractRepositoryFacade = (*MockContractRepository)(nil)
	_ portsrepo.BillRepositoryFacade     = (*MockBillRepository)(nil)
	_ portsrepo.PaymentRepositoryFacade  = (*MockPaymentRepository)(nil)
	_ portsrepo.ReportingRepository      = (*MockReportingRepository)(nil)
	_ portsrepo.OverviewRepository       = (*MockOverviewRepository)(nil)
)
