package backend

import (
	"context"
	"net/url"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
)

// BillRepository serves bills. The backend spells the collection "bils".
type BillRepository struct {
	res resource[domain.Bill]
}

func NewBillRepository(c *Client) *BillRepository {
	return &BillRepository{res: newResource[domain.Bill](c, "bils")}
}

func (r *BillRepository) FindBillByID(ctx context.Context, sess *domain.Session, billID domain.ID) (*domain.Bill, error) {
	return r.res.get(ctx, sess, billID)
}

func (r *BillRepository) ListBills(ctx context.Context, sess *domain.Session, q repositories.ListQuery) (repositories.ListResult[domain.Bill], error) {
	items, page, err := r.res.listAt(ctx, sess, "bills/filter", queryValues(q, "per_page"))
	if err != nil {
		return repositories.ListResult[domain.Bill]{}, err
	}
	return listResult(items, page), nil
}

func (r *BillRepository) CreateBill(ctx context.Context, sess *domain.Session, bill domain.Bill) (*domain.Bill, error) {
	return r.res.create(ctx, sess, bill)
}

func (r *BillRepository) UpdateBill(ctx context.Context, sess *domain.Session, bill domain.Bill) (*domain.Bill, error) {
	return r.res.update(ctx, sess, bill.ID, bill)
}

func (r *BillRepository) DeleteBill(ctx context.Context, sess *domain.Session, billID domain.ID) error {
	return r.res.delete(ctx, sess, billID)
}

// PaymentRepository serves payments.
type PaymentRepository struct {
	res resource[domain.Payment]
}

func NewPaymentRepository(c *Client) *PaymentRepository {
	return &PaymentRepository{res: newResource[domain.Payment](c, "payments")}
}

func (r *PaymentRepository) ListPaymentsByBill(ctx context.Context, sess *domain.Session, billID domain.ID) ([]domain.Payment, error) {
	items, _, err := r.res.listAt(ctx, sess, "payments-by-bill/"+url.PathEscape(billID.String()), nil)
	return items, err
}

// ListPaymentsByCustomer forwards the range; open ends are left off.
func (r *PaymentRepository) ListPaymentsByCustomer(ctx context.Context, sess *domain.Session, customerID domain.ID, within repositories.DateRange) ([]domain.Payment, error) {
	query := url.Values{}
	if !within.From.IsZero() {
		query.Set("from_date", within.From.String())
	}
	if !within.To.IsZero() {
		query.Set("to_date", within.To.String())
	}
	items, _, err := r.res.listAt(ctx, sess, "payments-by-customer/"+url.PathEscape(customerID.String()), query)
	return items, err
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, sess *domain.Session, payment domain.Payment) (*domain.Payment, error) {
	return r.res.create(ctx, sess, payment)
}

func (r *PaymentRepository) UpdatePayment(ctx context.Context, sess *domain.Session, payment domain.Payment) (*domain.Payment, error) {
	return r.res.update(ctx, sess, payment.ID, payment)
}

func (r *PaymentRepository) DeletePayment(ctx context.Context, sess *domain.Session, paymentID domain.ID) error {
	return r.res.delete(ctx, sess, paymentID)
}

var (
	_ repositories.BillRepositoryFacade    = (*BillRepository)(nil)
	_ repositories.PaymentRepositoryFacade = (*PaymentRepository)(nil)
)
