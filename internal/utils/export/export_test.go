package export_test

import (
	"bytes"
	"testing"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readSheet(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestContractSheet(t *testing.T) {
	contracts := []domain.Contract{
		{
			Date:            domain.DateOf(2025, 2, 10),
			CustomerName:    "Shop A",
			SupplierName:    "Agency B",
			AccountTypeName: "Facebook",
			Product:         "shoes",
			ProductType:     domain.ProductLegal,
			TotalCost:       domain.MoneyFromInt(200000),
			CustomerRate:    domain.MustRate("0.2"),
			SupplierRate:    domain.MustRate("0.15"),
		},
	}

	data, err := export.Workbook(export.ContractSheet(contracts))
	require.NoError(t, err)

	rows := readSheet(t, data, "Contracts")
	require.Len(t, rows, 4) // header, one contract, blank, totals
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2025-02-10", rows[1][0])
	assert.Equal(t, "Shop A", rows[1][1])
	assert.Equal(t, "Không vi phạm", rows[1][5])
	assert.Equal(t, "40000", rows[1][9])
	assert.Equal(t, "30000", rows[1][10])
	assert.Equal(t, "10000", rows[1][11])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "10000", rows[3][11])
}

func TestBillSheet_Reconciliation(t *testing.T) {
	bills := []domain.Bill{
		{Date: domain.DateOf(2025, 2, 1), CustomerName: "Shop A", TotalMoney: domain.MoneyFromInt(1000), DebtAmount: domain.MoneyFromInt(400), DepositAmount: domain.MoneyFromInt(100)},
		{Date: domain.DateOf(2025, 2, 2), CustomerName: "Shop B", TotalMoney: domain.MoneyFromInt(500), DebtAmount: domain.MoneyFromInt(500)},
	}

	data, err := export.Workbook(export.BillSheet(bills, domain.MoneyFromInt(50)))
	require.NoError(t, err)

	rows := readSheet(t, data, "Bills")
	require.Len(t, rows, 7)
	assert.Equal(t, "Difference", rows[6][0])
	// 900 debt + 50 cash - 100 deposit
	assert.Equal(t, "850", rows[6][3])
}

func TestWorkbook_MultipleSheetsAndEmpty(t *testing.T) {
	data, err := export.Workbook(export.ContractSheet(nil), export.BillSheet(nil, domain.ZeroMoney))
	require.NoError(t, err)
	assert.Len(t, readSheet(t, data, "Contracts"), 3)
	assert.Len(t, readSheet(t, data, "Bills"), 5)

	_, err = export.Workbook()
	assert.Error(t, err)
}
