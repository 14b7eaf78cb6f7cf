// Package ledger derives a bill's settlement state from its payments and
// totals a list of bills for the reconciliation panel.
package ledger

import "github.com/SscSPs/ads_resale_dashboard/internal/core/domain"

// Summary is a bill's settlement derived from its payments.
type Summary struct {
	TotalPaid domain.Money      `json:"total_paid"`
	Debt      domain.Money      `json:"debt"`
	Status    domain.BillStatus `json:"status"`
}

// Summarize sums the payments and classifies the bill. It reads its inputs only,
// so repeated calls and any ordering of payments give the same result.
func Summarize(bill domain.Bill, payments []domain.Payment) Summary {
	paid := domain.ZeroMoney
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}

	return settle(bill.TotalMoney, paid)
}

// Settle fills in debt and status for a bill whose paid amount was already
// summed, as the reporting replica returns them.
func Settle(bill domain.Bill) domain.Bill {
	return Apply(bill, settle(bill.TotalMoney, bill.PaidAmount))
}

func settle(total, paid domain.Money) Summary {
	debt := total.Sub(paid).Max(domain.ZeroMoney)

	status := domain.BillDebt
	switch {
	case debt.IsZero():
		status = domain.BillCompleted
	case paid.IsPositive():
		status = domain.BillDeposit
	}

	return Summary{TotalPaid: paid, Debt: debt, Status: status}
}

// Apply returns the bill with paid, debt and status replaced by the summary.
func Apply(bill domain.Bill, s Summary) domain.Bill {
	bill.PaidAmount = s.TotalPaid
	bill.DebtAmount = s.Debt
	bill.Status = s.Status
	return bill
}

// Totals are straight sums over a list of bills.
type Totals struct {
	TotalMoney   domain.Money `json:"total_money"`
	TotalPaid    domain.Money `json:"total_paid"`
	TotalDeposit domain.Money `json:"total_deposit"`
	TotalDebt    domain.Money `json:"total_debt"`
}

// SumBills totals the bills. Malformed amounts were already coerced to zero
// when the bills were decoded, so they simply contribute nothing here.
func SumBills(bills []domain.Bill) Totals {
	var t Totals
	for _, b := range bills {
		t.TotalMoney = t.TotalMoney.Add(b.TotalMoney)
		t.TotalPaid = t.TotalPaid.Add(b.PaidAmount)
		t.TotalDeposit = t.TotalDeposit.Add(b.DepositAmount)
		t.TotalDebt = t.TotalDebt.Add(b.DebtAmount)
	}
	return t
}

// Difference is the reconciliation figure: debt + cash on hand − deposits.
// Anything other than zero points at a bookkeeping mistake.
func Difference(t Totals, cashOnHand domain.Money) domain.Money {
	return t.TotalDebt.Add(cashOnHand).Sub(t.TotalDeposit)
}

// Reconciliation bundles totals with the difference for display.
type Reconciliation struct {
	Totals
	CashOnHand domain.Money `json:"cash_on_hand"`
	Difference domain.Money `json:"difference"`
	Balanced   bool         `json:"balanced"`
}

// Reconcile computes totals and the difference in one go.
func Reconcile(bills []domain.Bill, cashOnHand domain.Money) Reconciliation {
	t := SumBills(bills)
	diff := Difference(t, cashOnHand)
	return Reconciliation{
		Totals:     t,
		CashOnHand: cashOnHand,
		Difference: diff,
		Balanced:   diff.IsZero(),
	}
}
