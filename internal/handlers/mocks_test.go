package handlers_test

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/allocation"
	"github.com/stretchr/testify/mock"
)

// result unpacks a (*T, error) mock return.
func result[T any](args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) ResolveSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	return result[domain.Session](m.Called(ctx, sessionID))
}
func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	return result[dto.LoginResponse](m.Called(ctx, req))
}
func (m *MockAuthService) Logout(ctx context.Context, sess *domain.Session) error {
	return m.Called(ctx, sess).Error(0)
}
func (m *MockAuthService) CheckPassword(ctx context.Context, sess *domain.Session, req dto.CheckPasswordRequest) error {
	return m.Called(ctx, sess, req).Error(0)
}
func (m *MockAuthService) ChangePassword(ctx context.Context, sess *domain.Session, req dto.ChangePasswordRequest) error {
	return m.Called(ctx, sess, req).Error(0)
}
func (m *MockAuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context, sess *domain.Session, params dto.ListUsersParams) (*dto.ListUsersResponse, error) {
	return result[dto.ListUsersResponse](m.Called(ctx, sess, params))
}
func (m *MockUserService) RegisterUser(ctx context.Context, sess *domain.Session, req dto.RegisterUserRequest) (*domain.User, error) {
	return result[domain.User](m.Called(ctx, sess, req))
}
func (m *MockUserService) UpdateUser(ctx context.Context, sess *domain.Session, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	return result[domain.User](m.Called(ctx, sess, userID, req))
}
func (m *MockUserService) SendVerifyEmail(ctx context.Context, sess *domain.Session, req dto.SendVerifyEmailRequest) error {
	return m.Called(ctx, sess, req).Error(0)
}

// --- Mock DirectoryService ---
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) ListCustomers(ctx context.Context, sess *domain.Session) (*dto.ListResponse[domain.Customer], error) {
	return result[dto.ListResponse[domain.Customer]](m.Called(ctx, sess))
}
func (m *MockDirectoryService) CreateCustomer(ctx context.Context, sess *domain.Session, req dto.CustomerRequest) (*domain.Customer, error) {
	return result[domain.Customer](m.Called(ctx, sess, req))
}
func (m *MockDirectoryService) UpdateCustomer(ctx context.Context, sess *domain.Session, customerID string, req dto.CustomerRequest) (*domain.Customer, error) {
	return result[domain.Customer](m.Called(ctx, sess, customerID, req))
}
func (m *MockDirectoryService) DeleteCustomer(ctx context.Context, sess *domain.Session, customerID string) error {
	return m.Called(ctx, sess, customerID).Error(0)
}
func (m *MockDirectoryService) ListSuppliers(ctx context.Context, sess *domain.Session) (*dto.ListResponse[domain.Supplier], error) {
	return result[dto.ListResponse[domain.Supplier]](m.Called(ctx, sess))
}
func (m *MockDirectoryService) CreateSupplier(ctx context.Context, sess *domain.Session, req dto.SupplierRequest) (*domain.Supplier, error) {
	return result[domain.Supplier](m.Called(ctx, sess, req))
}
func (m *MockDirectoryService) UpdateSupplier(ctx context.Context, sess *domain.Session, supplierID string, req dto.SupplierRequest) (*domain.Supplier, error) {
	return result[domain.Supplier](m.Called(ctx, sess, supplierID, req))
}
func (m *MockDirectoryService) DeleteSupplier(ctx context.Context, sess *domain.Session, supplierID string) error {
	return m.Called(ctx, sess, supplierID).Error(0)
}
func (m *MockDirectoryService) ListAccountTypes(ctx context.Context, sess *domain.Session) (*dto.ListResponse[domain.AccountType], error) {
	return result[dto.ListResponse[domain.AccountType]](m.Called(ctx, sess))
}
func (m *MockDirectoryService) CreateAccountType(ctx context.Context, sess *domain.Session, req dto.AccountTypeRequest) (*domain.AccountType, error) {
	return result[domain.AccountType](m.Called(ctx, sess, req))
}
func (m *MockDirectoryService) UpdateAccountType(ctx context.Context, sess *domain.Session, accountTypeID string, req dto.AccountTypeRequest) (*domain.AccountType, error) {
	return result[domain.AccountType](m.Called(ctx, sess, accountTypeID, req))
}
func (m *MockDirectoryService) DeleteAccountType(ctx context.Context, sess *domain.Session, accountTypeID string) error {
	return m.Called(ctx, sess, accountTypeID).Error(0)
}

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) GetBudget(ctx context.Context, sess *domain.Session, budgetID string) (*domain.Budget, error) {
	return result[domain.Budget](m.Called(ctx, sess, budgetID))
}
func (m *MockBudgetService) ListBudgets(ctx context.Context, sess *domain.Session) (*dto.ListResponse[domain.Budget], error) {
	return result[dto.ListResponse[domain.Budget]](m.Called(ctx, sess))
}
func (m *MockBudgetService) ListBudgetsBySupplier(ctx context.Context, sess *domain.Session, supplierID string, params dto.ListParams) (*dto.PagedResponse[domain.Budget], error) {
	return result[dto.PagedResponse[domain.Budget]](m.Called(ctx, sess, supplierID, params))
}
func (m *MockBudgetService) ListBudgetUsage(ctx context.Context, sess *domain.Session) (*dto.ListResponse[dto.BudgetUsageRow], error) {
	return result[dto.ListResponse[dto.BudgetUsageRow]](m.Called(ctx, sess))
}
func (m *MockBudgetService) CreateBudget(ctx context.Context, sess *domain.Session, req dto.BudgetRequest) (*domain.Budget, error) {
	return result[domain.Budget](m.Called(ctx, sess, req))
}
func (m *MockBudgetService) UpdateBudget(ctx context.Context, sess *domain.Session, budgetID string, req dto.BudgetRequest) (*domain.Budget, error) {
	return result[domain.Budget](m.Called(ctx, sess, budgetID, req))
}
func (m *MockBudgetService) DeleteBudget(ctx context.Context, sess *domain.Session, budgetID string) error {
	return m.Called(ctx, sess, budgetID).Error(0)
}

// --- Mock ContractService ---
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) ListContracts(ctx context.Context, sess *domain.Session, params dto.ListParams) (*dto.ContractListResponse, error) {
	return result[dto.ContractListResponse](m.Called(ctx, sess, params))
}
func (m *MockContractService) CheckBudget(ctx context.Context, sess *domain.Session, req dto.CheckBudgetRequest) (*allocation.BudgetCheck, error) {
	return result[allocation.BudgetCheck](m.Called(ctx, sess, req))
}
func (m *MockContractService) CreateContract(ctx context.Context, sess *domain.Session, req dto.ContractRequest) (*dto.ContractMutationResponse, error) {
	return result[dto.ContractMutationResponse](m.Called(ctx, sess, req))
}
func (m *MockContractService) UpdateContract(ctx context.Context, sess *domain.Session, contractID string, req dto.ContractRequest) (*dto.ContractMutationResponse, error) {
	return result[dto.ContractMutationResponse](m.Called(ctx, sess, contractID, req))
}
func (m *MockContractService) DeleteContract(ctx context.Context, sess *domain.Session, contractID string) error {
	return m.Called(ctx, sess, contractID).Error(0)
}

// --- Mock BillService ---
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) ListBills(ctx context.Context, sess *domain.Session, params dto.BillListParams) (*dto.BillListResponse, error) {
	return result[dto.BillListResponse](m.Called(ctx, sess, params))
}
func (m *MockBillService) GetBill(ctx context.Context, sess *domain.Session, billID string) (*dto.BillDetailResponse, error) {
	return result[dto.BillDetailResponse](m.Called(ctx, sess, billID))
}
func (m *MockBillService) CreateBill(ctx context.Context, sess *domain.Session, req dto.BillRequest) (*domain.Bill, error) {
	return result[domain.Bill](m.Called(ctx, sess, req))
}
func (m *MockBillService) UpdateBill(ctx context.Context, sess *domain.Session, billID string, req dto.BillRequest) (*domain.Bill, error) {
	return result[domain.Bill](m.Called(ctx, sess, billID, req))
}
func (m *MockBillService) DeleteBill(ctx context.Context, sess *domain.Session, billID string) error {
	return m.Called(ctx, sess, billID).Error(0)
}
func (m *MockBillService) ListPaymentsByCustomer(ctx context.Context, sess *domain.Session, customerID string, params dto.PaymentRangeParams) (*dto.PaymentListResponse, error) {
	return result[dto.PaymentListResponse](m.Called(ctx, sess, customerID, params))
}
func (m *MockBillService) CreatePayment(ctx context.Context, sess *domain.Session, req dto.PaymentRequest) (*dto.BillDetailResponse, error) {
	return result[dto.BillDetailResponse](m.Called(ctx, sess, req))
}
func (m *MockBillService) UpdatePayment(ctx context.Context, sess *domain.Session, paymentID string, req dto.PaymentRequest) (*dto.BillDetailResponse, error) {
	return result[dto.BillDetailResponse](m.Called(ctx, sess, paymentID, req))
}
func (m *MockBillService) DeletePayment(ctx context.Context, sess *domain.Session, billID, paymentID string) (*dto.BillDetailResponse, error) {
	return result[dto.BillDetailResponse](m.Called(ctx, sess, billID, paymentID))
}

// --- Mock reporting services ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Dashboard(ctx context.Context, sess *domain.Session, granularity, value string) (*dto.DashboardResponse, error) {
	return result[dto.DashboardResponse](m.Called(ctx, sess, granularity, value))
}

type MockOverviewService struct {
	mock.Mock
}

func (m *MockOverviewService) CustomerOverview(ctx context.Context, sess *domain.Session, customerID, month string) (*dto.CustomerOverviewResponse, error) {
	return result[dto.CustomerOverviewResponse](m.Called(ctx, sess, customerID, month))
}
func (m *MockOverviewService) SupplierOverview(ctx context.Context, sess *domain.Session, supplierID, month string) (*dto.SupplierOverviewResponse, error) {
	return result[dto.SupplierOverviewResponse](m.Called(ctx, sess, supplierID, month))
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportContracts(ctx context.Context, sess *domain.Session, params dto.ListParams) ([]byte, error) {
	args := m.Called(ctx, sess, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockExportService) ExportBills(ctx context.Context, sess *domain.Session, params dto.BillListParams) ([]byte, error) {
	args := m.Called(ctx, sess, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.AuthSvc            = (*MockAuthService)(nil)
	_ portssvc.UserSvcFacade      = (*MockUserService)(nil)
	_ portssvc.DirectorySvcFacade = (*MockDirectoryService)(nil)
	_ portssvc.BudgetSvcFacade    = (*MockBudgetService)(nil)
	_ portssvc.ContractSvcFacade  = (*MockContractService)(nil)
	_ portssvc.BillSvcFacade      = (*MockBillService)(nil)
	_ portssvc.DashboardSvc       = (*MockDashboardService)(nil)
	_ portssvc.OverviewSvc        = (*MockOverviewService)(nil)
	_ portssvc.ExportSvc          = (*MockExportService)(nil)
)
