package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/export"
)

// exportService writes every record matching a list screen's filters to a
// workbook. Unlike the screens themselves an export never degrades: a
// partial file would look complete.
type exportService struct {
	BaseService
	contractRepo portsrepo.ContractReader
	billRepo     portsrepo.BillReader
}

func NewExportService(contractRepo portsrepo.ContractReader, billRepo portsrepo.BillReader) portssvc.ExportSvc {
	return &exportService{contractRepo: contractRepo, billRepo: billRepo}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

func (s *exportService) ExportContracts(ctx context.Context, sess *domain.Session, params dto.ListParams) ([]byte, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	q, err := listQuery(params, contractAccessors, 0)
	if err != nil {
		return nil, err
	}

	contracts, err := everyMatch(ctx, q, contractAccessors, func(ctx context.Context, q portsrepo.ListQuery) (portsrepo.ListResult[domain.Contract], error) {
		return s.contractRepo.ListContracts(ctx, sess, q)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to read contracts for export")
		return nil, err
	}

	out, err := export.Workbook(export.ContractSheet(contracts))
	if err != nil {
		s.LogError(ctx, err, "Failed to write contract workbook")
		return nil, err
	}
	s.LogInfo(ctx, "Contracts exported", slog.Int("rows", len(contracts)))
	return out, nil
}

func (s *exportService) ExportBills(ctx context.Context, sess *domain.Session, params dto.BillListParams) ([]byte, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	q, err := listQuery(params.ListParams, billAccessors, 0)
	if err != nil {
		return nil, err
	}

	bills, err := everyMatch(ctx, q, billAccessors, func(ctx context.Context, q portsrepo.ListQuery) (portsrepo.ListResult[domain.Bill], error) {
		return s.billRepo.ListBills(ctx, sess, q)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to read bills for export")
		return nil, err
	}

	out, err := export.Workbook(export.BillSheet(bills, params.Cash()))
	if err != nil {
		s.LogError(ctx, err, "Failed to write bill workbook")
		return nil, err
	}
	s.LogInfo(ctx, "Bills exported", slog.Int("rows", len(bills)))
	return out, nil
}
