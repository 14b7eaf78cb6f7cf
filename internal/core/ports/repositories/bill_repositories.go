package repositories

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// BillReader defines read operations for bills
type BillReader interface {
	// FindBillByID retrieves one bill.
	FindBillByID(ctx context.Context, sess *domain.Session, billID domain.ID) (*domain.Bill, error)

	// ListBills retrieves bills matching the query's filters.
	ListBills(ctx context.Context, sess *domain.Session, q ListQuery) (ListResult[domain.Bill], error)
}

// BillWriter defines write operations for bills
type BillWriter interface {
	CreateBill(ctx context.Context, sess *domain.Session, bill domain.Bill) (*domain.Bill, error)
	UpdateBill(ctx context.Context, sess *domain.Session, bill domain.Bill) (*domain.Bill, error)
	DeleteBill(ctx context.Context, sess *domain.Session, billID domain.ID) error
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}

// PaymentReader defines read operations for payments
type PaymentReader interface {
	// ListPaymentsByBill retrieves every payment recorded against a bill.
	ListPaymentsByBill(ctx context.Context, sess *domain.Session, billID domain.ID) ([]domain.Payment, error)

	// ListPaymentsByCustomer retrieves a customer's payments within a date range.
	ListPaymentsByCustomer(ctx context.Context, sess *domain.Session, customerID domain.ID, within DateRange) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payments
type PaymentWriter interface {
	CreatePayment(ctx context.Context, sess *domain.Session, payment domain.Payment) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, sess *domain.Session, payment domain.Payment) (*domain.Payment, error)
	DeletePayment(ctx context.Context, sess *domain.Session, paymentID domain.ID) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
