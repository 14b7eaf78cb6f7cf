package dto

import (
	"fmt"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/ledger"
)

// BillRequest creates or updates a bill. Paid, debt and status are derived
// from payments and are not accepted from the client.
type BillRequest struct {
	Date          string       `json:"date" binding:"required,datetime=2006-01-02"`
	CustomerID    string       `json:"customer_id" binding:"required"`
	Product       string       `json:"product"`
	TotalMoney    domain.Money `json:"total_money" binding:"gte=0"`
	DepositAmount domain.Money `json:"deposit_amount" binding:"gte=0"`
	Note          string       `json:"note"`
}

func (r BillRequest) ToDomain(id domain.ID) domain.Bill {
	date, _ := domain.ParseDate(r.Date)
	return domain.Bill{
		ID:            id,
		Date:          date,
		CustomerID:    domain.ID(r.CustomerID),
		Product:       r.Product,
		TotalMoney:    r.TotalMoney,
		DepositAmount: r.DepositAmount,
		Note:          r.Note,
	}
}

// BillListParams adds the cash-on-hand figure used by the reconciliation panel.
type BillListParams struct {
	ListParams
	CashOnHand string `form:"cash_on_hand"`
}

// Cash parses cash_on_hand leniently; an empty value is zero.
func (p BillListParams) Cash() domain.Money {
	return domain.ParseMoney(p.CashOnHand)
}

// BillListResponse is one page of bills with the reconciliation over that page.
type BillListResponse struct {
	PagedResponse[domain.Bill]
	Reconciliation ledger.Reconciliation `json:"reconciliation"`
}

// BillDetailResponse is a bill with its payments and derived settlement.
type BillDetailResponse struct {
	Bill     domain.Bill      `json:"bill"`
	Payments []domain.Payment `json:"payments"`
	Summary  ledger.Summary   `json:"summary"`
	Warning  string           `json:"warning,omitempty"`
}

// PaymentRequest records or edits one receipt against a bill.
type PaymentRequest struct {
	BillID    string       `json:"bill_id" binding:"required"`
	Date      string       `json:"date" binding:"required,datetime=2006-01-02"`
	Amount    domain.Money `json:"amount" binding:"gt=0"`
	Method    string       `json:"method"`
	Note      string       `json:"note"`
	IsDeposit bool         `json:"is_deposit"`
}

func (r PaymentRequest) ToDomain(id domain.ID) domain.Payment {
	date, _ := domain.ParseDate(r.Date)
	return domain.Payment{
		ID:        id,
		BillID:    domain.ID(r.BillID),
		Date:      date,
		Amount:    r.Amount,
		Method:    r.Method,
		Note:      r.Note,
		IsDeposit: domain.Flag(r.IsDeposit),
	}
}

// PaymentRangeParams bounds the payments-by-customer listing.
type PaymentRangeParams struct {
	FromDate string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
}

// Period converts the parameters; open ends stay zero.
func (p PaymentRangeParams) Period() (domain.Period, error) {
	from, err := optionalDate("from_date", p.FromDate)
	if err != nil {
		return domain.Period{}, err
	}
	to, err := optionalDate("to_date", p.ToDate)
	if err != nil {
		return domain.Period{}, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return domain.Period{}, fmt.Errorf("%w: to_date is before from_date", apperrors.ErrValidation)
	}
	return domain.Period{From: from, To: to}, nil
}

// PaymentListResponse lists payments with their sum.
type PaymentListResponse struct {
	Data    []domain.Payment `json:"data"`
	Total   domain.Money     `json:"total"`
	Warning string           `json:"warning,omitempty"`
}
