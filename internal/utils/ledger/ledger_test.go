package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payment(amount int64) domain.Payment {
	return domain.Payment{Amount: domain.MoneyFromInt(amount)}
}

func TestSummarize_ConcreteScenario(t *testing.T) {
	bill := domain.Bill{ID: "bill-1", TotalMoney: domain.MoneyFromInt(500000)}
	payments := []domain.Payment{payment(200000), payment(100000)}

	s := ledger.Summarize(bill, payments)
	assert.Equal(t, "300000", s.TotalPaid.String())
	assert.Equal(t, "200000", s.Debt.String())
	assert.Equal(t, domain.BillDeposit, s.Status)

	s = ledger.Summarize(bill, append(payments, payment(200000)))
	assert.Equal(t, "0", s.Debt.String())
	assert.Equal(t, domain.BillCompleted, s.Status)
}

func TestSummarize_NoPaymentsIsDebt(t *testing.T) {
	s := ledger.Summarize(domain.Bill{TotalMoney: domain.MoneyFromInt(10)}, nil)
	assert.Equal(t, domain.BillDebt, s.Status)
	assert.Equal(t, "10", s.Debt.String())
}

func TestSummarize_OverpaymentClampsDebt(t *testing.T) {
	s := ledger.Summarize(domain.Bill{TotalMoney: domain.MoneyFromInt(10)}, []domain.Payment{payment(25)})
	assert.Equal(t, "0", s.Debt.String())
	assert.Equal(t, "25", s.TotalPaid.String())
	assert.Equal(t, domain.BillCompleted, s.Status)
}

func TestSettle_DerivesDebtFromPaidAmount(t *testing.T) {
	bills := []domain.Bill{
		ledger.Settle(domain.Bill{TotalMoney: domain.MoneyFromInt(500000), PaidAmount: domain.MoneyFromInt(300000)}),
		ledger.Settle(domain.Bill{TotalMoney: domain.MoneyFromInt(100000)}),
		ledger.Settle(domain.Bill{TotalMoney: domain.MoneyFromInt(50000), PaidAmount: domain.MoneyFromInt(50000)}),
	}

	assert.Equal(t, "200000", bills[0].DebtAmount.String())
	assert.Equal(t, domain.BillDeposit, bills[0].Status)
	assert.Equal(t, domain.BillDebt, bills[1].Status)
	assert.Equal(t, domain.BillCompleted, bills[2].Status)

	totals := ledger.SumBills(bills)
	assert.Equal(t, "350000", totals.TotalPaid.String())
	assert.Equal(t, "300000", totals.TotalDebt.String())
}

func TestSummarize_IdempotentAndOrderIndependent(t *testing.T) {
	bill := domain.Bill{TotalMoney: domain.MoneyFromInt(1000)}
	payments := []domain.Payment{payment(100), payment(250), payment(50)}
	snapshot := append([]domain.Payment(nil), payments...)

	first := ledger.Summarize(bill, payments)
	second := ledger.Summarize(bill, payments)
	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, payments)

	reversed := []domain.Payment{payments[2], payments[1], payments[0]}
	assert.Equal(t, first, ledger.Summarize(bill, reversed))
}

func TestSumBills_TreatsMalformedAsZero(t *testing.T) {
	raw := `[
		{"id": 1, "total_money": 500000, "paid_amount": "300000", "debt_amount": 200000, "deposit_amount": null},
		{"id": 2, "total_money": "abc", "paid_amount": 0, "debt_amount": "50000", "deposit_amount": 100000},
		{"id": 3}
	]`
	var bills []domain.Bill
	require.NoError(t, json.Unmarshal([]byte(raw), &bills))

	totals := ledger.SumBills(bills)
	assert.Equal(t, "500000", totals.TotalMoney.String())
	assert.Equal(t, "300000", totals.TotalPaid.String())
	assert.Equal(t, "100000", totals.TotalDeposit.String())
	assert.Equal(t, "250000", totals.TotalDebt.String())
}

func TestDifference(t *testing.T) {
	totals := ledger.Totals{
		TotalDebt:    domain.MoneyFromInt(250000),
		TotalDeposit: domain.MoneyFromInt(100000),
	}
	assert.Equal(t, "200000", ledger.Difference(totals, domain.MoneyFromInt(50000)).String())
	assert.Equal(t, "0", ledger.Difference(totals, domain.MoneyFromInt(-150000)).String())
}

func TestReconcile(t *testing.T) {
	bills := []domain.Bill{
		{DebtAmount: domain.MoneyFromInt(100), DepositAmount: domain.MoneyFromInt(300)},
	}
	r := ledger.Reconcile(bills, domain.MoneyFromInt(200))
	assert.True(t, r.Balanced)
	assert.Equal(t, "0", r.Difference.String())

	r = ledger.Reconcile(bills, domain.MoneyFromInt(201))
	assert.False(t, r.Balanced)
}

func TestApply(t *testing.T) {
	bill := domain.Bill{TotalMoney: domain.MoneyFromInt(100), Status: domain.BillDebt}
	got := ledger.Apply(bill, ledger.Summarize(bill, []domain.Payment{payment(40)}))
	assert.Equal(t, domain.BillDeposit, got.Status)
	assert.Equal(t, "40", got.PaidAmount.String())
	assert.Equal(t, "60", got.DebtAmount.String())
}
