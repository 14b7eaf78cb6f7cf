// Package export renders list screens as XLSX workbooks.
package export

import (
	"fmt"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/allocation"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/ledger"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the produced workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Row is one line of cell values, in header order.
type Row []any

// Sheet is a titled table.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
	// Footer is written after a blank line, e.g. totals.
	Footer []Row
}

// Workbook writes sheets into one XLSX file and returns its bytes. The
// default "Sheet1" is renamed to the first sheet's name.
func Workbook(sheets ...Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("export: no sheets")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("export: header style: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				return nil, fmt.Errorf("export: rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return nil, fmt.Errorf("export: new sheet %q: %w", s.Name, err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, s Sheet, headerStyle int) error {
	header := make([]any, len(s.Headers))
	for i, h := range s.Headers {
		header[i] = h
	}
	if err := setRow(f, s.Name, 1, header); err != nil {
		return err
	}
	if len(s.Headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(s.Headers), 1)
		if err := f.SetCellStyle(s.Name, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("export: style header: %w", err)
		}
	}

	rowNo := 2
	for _, r := range s.Rows {
		if err := setRow(f, s.Name, rowNo, r); err != nil {
			return err
		}
		rowNo++
	}
	if len(s.Footer) > 0 {
		rowNo++
		for _, r := range s.Footer {
			if err := setRow(f, s.Name, rowNo, r); err != nil {
				return err
			}
			rowNo++
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNo int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return fmt.Errorf("export: cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("export: write row %d: %w", rowNo, err)
	}
	return nil
}

// ContractSheet lays out contracts with their allocation. Contracts whose
// rates fail validation are written with empty cost columns.
func ContractSheet(contracts []domain.Contract) Sheet {
	s := Sheet{
		Name: "Contracts",
		Headers: []string{
			"Date", "Customer", "Supplier", "Account type", "Product", "Product type",
			"Total cost", "Customer rate", "Supplier rate", "Customer cost", "Supplier cost", "Profit",
			"Actually paid", "Note",
		},
		Rows: make([]Row, 0, len(contracts)),
	}
	for _, c := range contracts {
		row := Row{
			c.Date.String(), c.CustomerName, c.SupplierName, c.AccountTypeName, c.Product, c.ProductType.Label(),
			c.TotalCost.Float64(), c.CustomerRate.Float64(), c.SupplierRate.Float64(),
		}
		if a, err := allocation.Allocate(c); err == nil {
			row = append(row, a.CustomerCost.Float64(), a.SupplierCost.Float64(), a.Profit.Float64())
		} else {
			row = append(row, nil, nil, nil)
		}
		row = append(row, c.CustomerActuallyPaid.Float64(), c.Note)
		s.Rows = append(s.Rows, row)
	}

	totals := allocation.SumContracts(contracts)
	s.Footer = []Row{{
		"Total", nil, nil, nil, nil, nil,
		totals.TotalCost.Float64(), nil, nil,
		totals.CustomerCost.Float64(), totals.SupplierCost.Float64(), totals.Profit.Float64(),
	}}
	return s
}

// BillSheet lays out bills followed by the reconciliation figures.
func BillSheet(bills []domain.Bill, cashOnHand domain.Money) Sheet {
	s := Sheet{
		Name: "Bills",
		Headers: []string{
			"Date", "Customer", "Product", "Total money", "Paid", "Debt", "Deposit", "Status", "Note",
		},
		Rows: make([]Row, 0, len(bills)),
	}
	for _, b := range bills {
		s.Rows = append(s.Rows, Row{
			b.Date.String(), b.CustomerName, b.Product,
			b.TotalMoney.Float64(), b.PaidAmount.Float64(), b.DebtAmount.Float64(), b.DepositAmount.Float64(),
			string(b.Status), b.Note,
		})
	}

	rec := ledger.Reconcile(bills, cashOnHand)
	s.Footer = []Row{
		{"Total", nil, nil, rec.TotalMoney.Float64(), rec.TotalPaid.Float64(), rec.TotalDebt.Float64(), rec.TotalDeposit.Float64()},
		{"Cash on hand", nil, nil, rec.CashOnHand.Float64()},
		{"Difference", nil, nil, rec.Difference.Float64()},
	}
	return s
}
