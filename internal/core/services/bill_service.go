package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/ledger"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
)

const screenBills = "bills"

type billService struct {
	BaseService
	billRepo       portsrepo.BillRepositoryFacade
	paymentRepo    portsrepo.PaymentRepositoryFacade
	defaultPerPage int
}

// NewBillService creates the bill and payment service.
func NewBillService(billRepo portsrepo.BillRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade, guard *pagination.Guard, options ...ListOption) portssvc.BillSvcFacade {
	svc := &billService{
		BaseService:    BaseService{Guard: guard},
		billRepo:       billRepo,
		paymentRepo:    paymentRepo,
		defaultPerPage: pagination.DefaultPerPage,
	}
	for _, option := range options {
		option(&svc.defaultPerPage)
	}
	return svc
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

func validateBill(b domain.Bill) error {
	if b.TotalMoney.IsNegative() || b.DepositAmount.IsNegative() {
		return fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
	}
	return nil
}

func (s *billService) ListBills(ctx context.Context, sess *domain.Session, params dto.BillListParams) (*dto.BillListResponse, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	q, err := listQuery(params.ListParams, billAccessors, s.defaultPerPage)
	if err != nil {
		return nil, err
	}
	cash := params.Cash()

	ctx, release := s.Track(ctx, sess, screenBills)
	defer release()

	res, err := fetchPage(ctx, &q, func(ctx context.Context, q portsrepo.ListQuery) (portsrepo.ListResult[domain.Bill], error) {
		return s.billRepo.ListBills(ctx, sess, q)
	})
	if err != nil {
		warning, err := s.Degrade(ctx, err, "Failed to list bills")
		if err != nil {
			return nil, err
		}
		return &dto.BillListResponse{
			PagedResponse:  emptyPage[domain.Bill](screenBills, q, warning),
			Reconciliation: ledger.Reconcile(nil, cash),
		}, nil
	}

	page, err := pageOf(res, billAccessors, q)
	if err != nil {
		return nil, err
	}
	if err := pagination.Err(ctx, nil); err != nil {
		return nil, err
	}
	return &dto.BillListResponse{
		PagedResponse:  pagedResponse(screenBills, q, page),
		Reconciliation: ledger.Reconcile(page.Items, cash),
	}, nil
}

// GetBill loads a bill with its payments and derives paid, debt and status
// from them. When the payments cannot be read the bill is shown as the
// backend stored it, with a warning.
func (s *billService) GetBill(ctx context.Context, sess *domain.Session, billID string) (*dto.BillDetailResponse, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("bill id", billID); err != nil {
		return nil, err
	}

	bill, err := s.billRepo.FindBillByID(ctx, sess, domain.ID(billID))
	if err != nil {
		s.LogError(ctx, err, "Failed to load bill", slog.String("bill_id", billID))
		return nil, err
	}

	payments, err := s.paymentRepo.ListPaymentsByBill(ctx, sess, bill.ID)
	if err != nil {
		warning, err := s.Degrade(ctx, err, "Failed to load bill payments", slog.String("bill_id", billID))
		if err != nil {
			return nil, err
		}
		return &dto.BillDetailResponse{
			Bill:     *bill,
			Payments: []domain.Payment{},
			Summary:  ledger.Summary{TotalPaid: bill.PaidAmount, Debt: bill.DebtAmount, Status: bill.Status},
			Warning:  warning,
		}, nil
	}

	summary := ledger.Summarize(*bill, payments)
	return &dto.BillDetailResponse{
		Bill:     ledger.Apply(*bill, summary),
		Payments: payments,
		Summary:  summary,
	}, nil
}

func (s *billService) CreateBill(ctx context.Context, sess *domain.Session, req dto.BillRequest) (*domain.Bill, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	bill := req.ToDomain("")
	if err := validateBill(bill); err != nil {
		return nil, err
	}
	// A new bill has no payments yet.
	bill = ledger.Apply(bill, ledger.Summarize(bill, nil))

	created, err := s.billRepo.CreateBill(ctx, sess, bill)
	if err != nil {
		s.LogError(ctx, err, "Failed to create bill", slog.String("customer_id", bill.CustomerID.String()))
		return nil, err
	}
	s.LogInfo(ctx, "Bill created", slog.String("bill_id", created.ID.String()))
	return created, nil
}

func (s *billService) UpdateBill(ctx context.Context, sess *domain.Session, billID string, req dto.BillRequest) (*domain.Bill, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("bill id", billID); err != nil {
		return nil, err
	}
	bill := req.ToDomain(domain.ID(billID))
	if err := validateBill(bill); err != nil {
		return nil, err
	}

	// The settlement follows the new total, so re-derive it from the payments.
	payments, err := s.paymentRepo.ListPaymentsByBill(ctx, sess, bill.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments for bill update", slog.String("bill_id", billID))
		return nil, err
	}
	bill = ledger.Apply(bill, ledger.Summarize(bill, payments))

	updated, err := s.billRepo.UpdateBill(ctx, sess, bill)
	if err != nil {
		s.LogError(ctx, err, "Failed to update bill", slog.String("bill_id", billID))
		return nil, err
	}
	return updated, nil
}

func (s *billService) DeleteBill(ctx context.Context, sess *domain.Session, billID string) error {
	if err := s.RequireRole(ctx, sess, domain.RoleAdmin); err != nil {
		return err
	}
	if err := requireID("bill id", billID); err != nil {
		return err
	}
	if err := s.billRepo.DeleteBill(ctx, sess, domain.ID(billID)); err != nil {
		s.LogError(ctx, err, "Failed to delete bill", slog.String("bill_id", billID))
		return err
	}
	s.LogInfo(ctx, "Bill deleted", slog.String("bill_id", billID))
	return nil
}

func (s *billService) ListPaymentsByCustomer(ctx context.Context, sess *domain.Session, customerID string, params dto.PaymentRangeParams) (*dto.PaymentListResponse, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("customer id", customerID); err != nil {
		return nil, err
	}
	within, err := params.Period()
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListPaymentsByCustomer(ctx, sess, domain.ID(customerID), within)
	if err != nil {
		warning, err := s.Degrade(ctx, err, "Failed to list customer payments", slog.String("customer_id", customerID))
		if err != nil {
			return nil, err
		}
		return &dto.PaymentListResponse{Data: []domain.Payment{}, Total: domain.ZeroMoney, Warning: warning}, nil
	}

	total := domain.ZeroMoney
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return &dto.PaymentListResponse{Data: payments, Total: total}, nil
}

// refreshed reloads the bill after one of its payments changed, so the
// caller sees the new paid, debt and status straight away.
func (s *billService) refreshed(ctx context.Context, sess *domain.Session, billID domain.ID) (*dto.BillDetailResponse, error) {
	return s.GetBill(ctx, sess, billID.String())
}

func validatePayment(p domain.Payment) error {
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if p.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	return nil
}

func (s *billService) CreatePayment(ctx context.Context, sess *domain.Session, req dto.PaymentRequest) (*dto.BillDetailResponse, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("bill_id", req.BillID); err != nil {
		return nil, err
	}
	payment := req.ToDomain("")
	if err := validatePayment(payment); err != nil {
		return nil, err
	}

	created, err := s.paymentRepo.CreatePayment(ctx, sess, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to record payment", slog.String("bill_id", req.BillID))
		return nil, err
	}
	s.LogInfo(ctx, "Payment recorded",
		slog.String("bill_id", req.BillID),
		slog.String("payment_id", created.ID.String()),
		slog.String("amount", created.Amount.String()))
	return s.refreshed(ctx, sess, payment.BillID)
}

func (s *billService) UpdatePayment(ctx context.Context, sess *domain.Session, paymentID string, req dto.PaymentRequest) (*dto.BillDetailResponse, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("payment id", paymentID); err != nil {
		return nil, err
	}
	if err := requireID("bill_id", req.BillID); err != nil {
		return nil, err
	}
	payment := req.ToDomain(domain.ID(paymentID))
	if err := validatePayment(payment); err != nil {
		return nil, err
	}

	if _, err := s.paymentRepo.UpdatePayment(ctx, sess, payment); err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		return nil, err
	}
	return s.refreshed(ctx, sess, payment.BillID)
}

func (s *billService) DeletePayment(ctx context.Context, sess *domain.Session, billID, paymentID string) (*dto.BillDetailResponse, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("bill id", billID); err != nil {
		return nil, err
	}
	if err := requireID("payment id", paymentID); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.DeletePayment(ctx, sess, domain.ID(paymentID)); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return nil, err
	}
	s.LogInfo(ctx, "Payment deleted", slog.String("bill_id", billID), slog.String("payment_id", paymentID))
	return s.refreshed(ctx, sess, domain.ID(billID))
}
