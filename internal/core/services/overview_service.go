package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/aggregation"
)

type overviewService struct {
	BaseService
	overviewRepo portsrepo.OverviewRepository
}

// NewOverviewService creates the per-customer and per-supplier overview service.
func NewOverviewService(overviewRepo portsrepo.OverviewRepository) portssvc.OverviewSvc {
	return &overviewService{overviewRepo: overviewRepo}
}

var _ portssvc.OverviewSvc = (*overviewService)(nil)

// monthKey normalises the requested month to YYYY-MM.
func monthKey(month string) (string, error) {
	p, err := aggregation.ParsePeriod(aggregation.ByMonth, month)
	if err != nil {
		return "", err
	}
	return aggregation.MonthKey(p.From), nil
}

func (s *overviewService) CustomerOverview(ctx context.Context, sess *domain.Session, customerID, month string) (*dto.CustomerOverviewResponse, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("customer id", customerID); err != nil {
		return nil, err
	}
	key, err := monthKey(month)
	if err != nil {
		return nil, err
	}

	overview, err := s.overviewRepo.CustomerOverview(ctx, sess, domain.ID(customerID), key)
	if err != nil {
		warning, err := s.Degrade(ctx, err, "Failed to load customer overview",
			slog.String("customer_id", customerID), slog.String("month", key))
		if err != nil {
			return nil, err
		}
		return &dto.CustomerOverviewResponse{Warning: warning}, nil
	}
	return &dto.CustomerOverviewResponse{Overview: overview}, nil
}

func (s *overviewService) SupplierOverview(ctx context.Context, sess *domain.Session, supplierID, month string) (*dto.SupplierOverviewResponse, error) {
	if err := s.RequireSession(sess); err != nil {
		return nil, err
	}
	if err := requireID("supplier id", supplierID); err != nil {
		return nil, err
	}
	key, err := monthKey(month)
	if err != nil {
		return nil, err
	}

	overview, err := s.overviewRepo.SupplierOverview(ctx, sess, domain.ID(supplierID), key)
	if err != nil {
		warning, err := s.Degrade(ctx, err, "Failed to load supplier overview",
			slog.String("supplier_id", supplierID), slog.String("month", key))
		if err != nil {
			return nil, err
		}
		return &dto.SupplierOverviewResponse{Warning: warning}, nil
	}
	return &dto.SupplierOverviewResponse{Overview: overview}, nil
}
