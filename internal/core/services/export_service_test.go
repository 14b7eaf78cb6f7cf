package services_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sheetRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	return rows
}

func TestExportContracts_FollowsBackendPages(t *testing.T) {
	contractRepo := new(MockContractRepository)
	page1 := pagination.PageInfo{CurrentPage: 1, PerPage: pagination.MaxPerPage, Total: 3, LastPage: 2, HasNext: true}
	page2 := pagination.PageInfo{CurrentPage: 2, PerPage: pagination.MaxPerPage, Total: 3, LastPage: 2}
	contractRepo.On("ListContracts", mock.Anything, managerSession, mock.MatchedBy(func(q portsrepo.ListQuery) bool {
		return q.Page.Page == 1 && q.Page.PerPage == pagination.MaxPerPage && q.Filters.CustomerID == "cu-1"
	})).Return(portsrepo.ListResult[domain.Contract]{
		Items: []domain.Contract{dashboardContract(1, "1", 100), dashboardContract(2, "1", 200)},
		Page:  &page1,
	}, nil).Once()
	contractRepo.On("ListContracts", mock.Anything, managerSession, mock.MatchedBy(func(q portsrepo.ListQuery) bool {
		return q.Page.Page == 2
	})).Return(portsrepo.ListResult[domain.Contract]{
		Items: []domain.Contract{dashboardContract(3, "2", 300)},
		Page:  &page2,
	}, nil).Once()

	svc := services.NewExportService(contractRepo, new(MockBillRepository))
	out, err := svc.ExportContracts(context.Background(), managerSession, dto.ListParams{CustomerID: "cu-1"})

	require.NoError(t, err)
	rows := sheetRows(t, out)
	// header, three contracts, blank, total footer
	assert.Len(t, rows, 6)
	contractRepo.AssertExpectations(t)
}

func TestExportBills_BareListIsFilteredHere(t *testing.T) {
	billRepo := new(MockBillRepository)
	billRepo.On("ListBills", mock.Anything, managerSession, mock.Anything).Return(portsrepo.ListResult[domain.Bill]{
		Items: []domain.Bill{
			{ID: "1", Status: domain.BillDebt, TotalMoney: domain.MoneyFromInt(100), DebtAmount: domain.MoneyFromInt(100)},
			{ID: "2", Status: domain.BillCompleted, TotalMoney: domain.MoneyFromInt(50), PaidAmount: domain.MoneyFromInt(50)},
			{ID: "3", Status: domain.BillDebt, TotalMoney: domain.MoneyFromInt(70), DebtAmount: domain.MoneyFromInt(70)},
		},
	}, nil).Once()

	svc := services.NewExportService(new(MockContractRepository), billRepo)
	out, err := svc.ExportBills(context.Background(), managerSession, dto.BillListParams{ListParams: dto.ListParams{Status: "debt"}})

	require.NoError(t, err)
	rows := sheetRows(t, out)
	// header, two debt bills, blank, three footer rows
	assert.Len(t, rows, 7)
}

func TestExport_DoesNotDegrade(t *testing.T) {
	billRepo := new(MockBillRepository)
	billRepo.On("ListBills", mock.Anything, managerSession, mock.Anything).
		Return(portsrepo.ListResult[domain.Bill]{}, fmt.Errorf("%w: down", apperrors.ErrUpstreamUnavailable)).Once()

	svc := services.NewExportService(new(MockContractRepository), billRepo)
	out, err := svc.ExportBills(context.Background(), managerSession, dto.BillListParams{})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}
