package repositories

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// ReportingRepository supplies the raw records behind the dashboard. It is
// served either by the REST backend or by a read replica of its database.
type ReportingRepository interface {
	// ContractsBetween retrieves every contract dated within the range.
	ContractsBetween(ctx context.Context, sess *domain.Session, within DateRange) ([]domain.Contract, error)

	// BillsBetween retrieves every bill dated within the range.
	BillsBetween(ctx context.Context, sess *domain.Session, within DateRange) ([]domain.Bill, error)

	// BudgetsBetween retrieves every budget dated within the range.
	BudgetsBetween(ctx context.Context, sess *domain.Session, within DateRange) ([]domain.Budget, error)
}

// OverviewRepository serves the per-entity monthly overviews.
type OverviewRepository interface {
	// CustomerOverview returns nil when the backend has nothing for the month.
	CustomerOverview(ctx context.Context, sess *domain.Session, customerID domain.ID, month string) (*domain.CustomerOverview, error)

	// SupplierOverview returns nil when the backend has nothing for the month.
	SupplierOverview(ctx context.Context, sess *domain.Session, supplierID domain.ID, month string) (*domain.SupplierOverview, error)
}

// SessionStore keeps live sessions between login and logout.
type SessionStore interface {
	Save(ctx context.Context, sess *domain.Session) error
	Find(ctx context.Context, sessionID string) (*domain.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
