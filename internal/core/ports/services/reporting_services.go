package services

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
)

// DashboardSvc builds the period summary shown on the dashboard
type DashboardSvc interface {
	// Dashboard summarises the period named by granularity (date, week,
	// month, year) and value.
	Dashboard(ctx context.Context, sess *domain.Session, granularity, value string) (*dto.DashboardResponse, error)
}

// OverviewSvc serves the monthly per-entity overviews
type OverviewSvc interface {
	CustomerOverview(ctx context.Context, sess *domain.Session, customerID, month string) (*dto.CustomerOverviewResponse, error)
	SupplierOverview(ctx context.Context, sess *domain.Session, supplierID, month string) (*dto.SupplierOverviewResponse, error)
}

// ExportSvc renders lists as XLSX workbooks
type ExportSvc interface {
	ExportContracts(ctx context.Context, sess *domain.Session, params dto.ListParams) ([]byte, error)
	ExportBills(ctx context.Context, sess *domain.Session, params dto.BillListParams) ([]byte, error)
}
