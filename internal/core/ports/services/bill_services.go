package services

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
)

// BillReaderSvc defines read operations for bills
type BillReaderSvc interface {
	// ListBills retrieves one page of bills with the reconciliation over it.
	ListBills(ctx context.Context, sess *domain.Session, params dto.BillListParams) (*dto.BillListResponse, error)

	// GetBill retrieves a bill with its payments and derived settlement.
	GetBill(ctx context.Context, sess *domain.Session, billID string) (*dto.BillDetailResponse, error)
}

// BillWriterSvc defines write operations for bills
type BillWriterSvc interface {
	CreateBill(ctx context.Context, sess *domain.Session, req dto.BillRequest) (*domain.Bill, error)
	UpdateBill(ctx context.Context, sess *domain.Session, billID string, req dto.BillRequest) (*domain.Bill, error)
	DeleteBill(ctx context.Context, sess *domain.Session, billID string) error
}

// PaymentSvc defines operations on payments
type PaymentSvc interface {
	// ListPaymentsByCustomer retrieves a customer's payments within a range.
	ListPaymentsByCustomer(ctx context.Context, sess *domain.Session, customerID string, params dto.PaymentRangeParams) (*dto.PaymentListResponse, error)

	// CreatePayment records a payment and returns the bill's new settlement.
	CreatePayment(ctx context.Context, sess *domain.Session, req dto.PaymentRequest) (*dto.BillDetailResponse, error)

	// UpdatePayment edits a payment and returns the bill's new settlement.
	UpdatePayment(ctx context.Context, sess *domain.Session, paymentID string, req dto.PaymentRequest) (*dto.BillDetailResponse, error)

	// DeletePayment removes a payment and returns the bill's new settlement.
	DeletePayment(ctx context.Context, sess *domain.Session, billID, paymentID string) (*dto.BillDetailResponse, error)
}

// BillSvcFacade combines all bill- and payment-related service interfaces
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
	PaymentSvc
}
