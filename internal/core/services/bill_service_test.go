package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BillServiceTestSuite struct {
	suite.Suite
	billRepo    *MockBillRepository
	paymentRepo *MockPaymentRepository
	service     portssvc.BillSvcFacade
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.billRepo = new(MockBillRepository)
	suite.paymentRepo = new(MockPaymentRepository)
	suite.service = services.NewBillService(suite.billRepo, suite.paymentRepo, pagination.NewGuard())
}

func payment(id, billID string, amount int64) domain.Payment {
	return domain.Payment{ID: domain.ID(id), BillID: domain.ID(billID), Date: domain.DateOf(2025, 2, 10), Amount: domain.MoneyFromInt(amount)}
}

// --- ListBills Tests ---
func (suite *BillServiceTestSuite) TestListBills_ReconcilesServedPage() {
	page := pagination.PageInfo{CurrentPage: 1, PerPage: 10, From: 1, To: 2, Total: 2, LastPage: 1}
	suite.billRepo.On("ListBills", mock.Anything, managerSession, mock.Anything).Return(portsrepo.ListResult[domain.Bill]{
		Items: []domain.Bill{
			{ID: "1", TotalMoney: domain.MoneyFromInt(1000), DebtAmount: domain.MoneyFromInt(400), DepositAmount: domain.MoneyFromInt(100)},
			{ID: "2", TotalMoney: domain.MoneyFromInt(500), DebtAmount: domain.MoneyFromInt(0), DepositAmount: domain.MoneyFromInt(200)},
		},
		Page: &page,
	}, nil).Once()

	params := dto.BillListParams{CashOnHand: "-100"}
	resp, err := suite.service.ListBills(context.Background(), managerSession, params)

	suite.Require().NoError(err)
	suite.Len(resp.Data, 2)
	suite.Equal(page, resp.Pagination)
	suite.Equal("1500", resp.Reconciliation.TotalMoney.String())
	// 400 + (-100) - 300
	suite.Equal("0", resp.Reconciliation.Difference.String())
	suite.True(resp.Reconciliation.Balanced)
}

func (suite *BillServiceTestSuite) TestListBills_Degrades() {
	suite.billRepo.On("ListBills", mock.Anything, managerSession, mock.Anything).
		Return(portsrepo.ListResult[domain.Bill]{}, fmt.Errorf("%w: bad json", apperrors.ErrMalformedResponse)).Once()

	resp, err := suite.service.ListBills(context.Background(), managerSession, dto.BillListParams{CashOnHand: "50"})

	suite.Require().NoError(err)
	suite.Empty(resp.Data)
	suite.Contains(resp.Warning, "bad json")
	suite.Equal("50", resp.Reconciliation.Difference.String())
}

// --- GetBill Tests ---
func (suite *BillServiceTestSuite) TestGetBill_DerivesSettlementFromPayments() {
	ctx := context.Background()
	stored := &domain.Bill{ID: "b-9", TotalMoney: domain.MoneyFromInt(1000), Status: domain.BillDebt}
	suite.billRepo.On("FindBillByID", ctx, managerSession, domain.ID("b-9")).Return(stored, nil).Once()
	suite.paymentRepo.On("ListPaymentsByBill", ctx, managerSession, domain.ID("b-9")).
		Return([]domain.Payment{payment("p1", "b-9", 300), payment("p2", "b-9", 200)}, nil).Once()

	detail, err := suite.service.GetBill(ctx, managerSession, "b-9")

	suite.Require().NoError(err)
	suite.Equal("500", detail.Summary.TotalPaid.String())
	suite.Equal("500", detail.Bill.DebtAmount.String())
	suite.Equal(domain.BillDeposit, detail.Bill.Status)
	suite.Len(detail.Payments, 2)
	suite.Empty(detail.Warning)
}

func (suite *BillServiceTestSuite) TestGetBill_PaymentsUnavailable() {
	ctx := context.Background()
	stored := &domain.Bill{ID: "b-9", TotalMoney: domain.MoneyFromInt(1000), PaidAmount: domain.MoneyFromInt(1000), Status: domain.BillCompleted}
	suite.billRepo.On("FindBillByID", ctx, managerSession, domain.ID("b-9")).Return(stored, nil).Once()
	suite.paymentRepo.On("ListPaymentsByBill", ctx, managerSession, domain.ID("b-9")).
		Return(nil, fmt.Errorf("%w: refused", apperrors.ErrUpstreamUnavailable)).Once()

	detail, err := suite.service.GetBill(ctx, managerSession, "b-9")

	suite.Require().NoError(err)
	suite.Equal(domain.BillCompleted, detail.Bill.Status)
	suite.Empty(detail.Payments)
	suite.Contains(detail.Warning, "refused")
}

func (suite *BillServiceTestSuite) TestGetBill_NotFound() {
	ctx := context.Background()
	suite.billRepo.On("FindBillByID", ctx, managerSession, domain.ID("nope")).Return(nil, apperrors.ErrNotFound).Once()

	detail, err := suite.service.GetBill(ctx, managerSession, "nope")

	suite.Nil(detail)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Payment Tests ---
func (suite *BillServiceTestSuite) TestCreatePayment_ReturnsRefreshedBill() {
	ctx := context.Background()
	suite.paymentRepo.On("CreatePayment", ctx, managerSession, mock.MatchedBy(func(p domain.Payment) bool {
		return p.BillID == "b-9" && p.Amount.Equal(domain.MoneyFromInt(1000))
	})).Return(&domain.Payment{ID: "p3", BillID: "b-9", Amount: domain.MoneyFromInt(1000)}, nil).Once()
	suite.billRepo.On("FindBillByID", ctx, managerSession, domain.ID("b-9")).
		Return(&domain.Bill{ID: "b-9", TotalMoney: domain.MoneyFromInt(1000)}, nil).Once()
	suite.paymentRepo.On("ListPaymentsByBill", ctx, managerSession, domain.ID("b-9")).
		Return([]domain.Payment{payment("p3", "b-9", 1000)}, nil).Once()

	detail, err := suite.service.CreatePayment(ctx, managerSession, dto.PaymentRequest{
		BillID: "b-9",
		Date:   "2025-02-10",
		Amount: domain.MoneyFromInt(1000),
	})

	suite.Require().NoError(err)
	suite.Equal(domain.BillCompleted, detail.Bill.Status)
	suite.True(detail.Bill.DebtAmount.IsZero())
	suite.paymentRepo.AssertExpectations(suite.T())
	suite.billRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreatePayment_RejectsNonPositiveAmount() {
	_, err := suite.service.CreatePayment(context.Background(), managerSession, dto.PaymentRequest{BillID: "b-9", Date: "2025-02-10"})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.paymentRepo.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestDeletePayment_ReturnsRefreshedBill() {
	ctx := context.Background()
	suite.paymentRepo.On("DeletePayment", ctx, managerSession, domain.ID("p1")).Return(nil).Once()
	suite.billRepo.On("FindBillByID", ctx, managerSession, domain.ID("b-9")).
		Return(&domain.Bill{ID: "b-9", TotalMoney: domain.MoneyFromInt(1000)}, nil).Once()
	suite.paymentRepo.On("ListPaymentsByBill", ctx, managerSession, domain.ID("b-9")).Return([]domain.Payment{}, nil).Once()

	detail, err := suite.service.DeletePayment(ctx, managerSession, "b-9", "p1")

	suite.Require().NoError(err)
	suite.Equal(domain.BillDebt, detail.Bill.Status)
	suite.Equal("1000", detail.Bill.DebtAmount.String())
}

func (suite *BillServiceTestSuite) TestListPaymentsByCustomer_SumsAmounts() {
	ctx := context.Background()
	within := domain.Period{From: domain.DateOf(2025, 2, 1), To: domain.DateOf(2025, 2, 28)}
	suite.paymentRepo.On("ListPaymentsByCustomer", ctx, managerSession, domain.ID("c-1"), within).
		Return([]domain.Payment{payment("p1", "b-1", 300), payment("p2", "b-2", 450)}, nil).Once()

	resp, err := suite.service.ListPaymentsByCustomer(ctx, managerSession, "c-1", dto.PaymentRangeParams{FromDate: "2025-02-01", ToDate: "2025-02-28"})

	suite.Require().NoError(err)
	suite.Len(resp.Data, 2)
	suite.Equal("750", resp.Total.String())
}

func (suite *BillServiceTestSuite) TestListPaymentsByCustomer_InvertedRange() {
	_, err := suite.service.ListPaymentsByCustomer(context.Background(), managerSession, "c-1", dto.PaymentRangeParams{FromDate: "2025-03-01", ToDate: "2025-02-01"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Bill CRUD Tests ---
func (suite *BillServiceTestSuite) TestCreateBill_StartsAsDebt() {
	ctx := context.Background()
	suite.billRepo.On("CreateBill", ctx, managerSession, mock.MatchedBy(func(b domain.Bill) bool {
		return b.Status == domain.BillDebt && b.DebtAmount.Equal(domain.MoneyFromInt(800)) && b.PaidAmount.IsZero()
	})).Return(&domain.Bill{ID: "b-10"}, nil).Once()

	bill, err := suite.service.CreateBill(ctx, managerSession, dto.BillRequest{Date: "2025-02-10", CustomerID: "c-1", TotalMoney: domain.MoneyFromInt(800)})

	suite.Require().NoError(err)
	suite.Equal(domain.ID("b-10"), bill.ID)
	suite.billRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestDeleteBill_AdminOnly() {
	err := suite.service.DeleteBill(context.Background(), managerSession, "b-1")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.billRepo.AssertNotCalled(suite.T(), "DeleteBill", mock.Anything, mock.Anything, mock.Anything)
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
