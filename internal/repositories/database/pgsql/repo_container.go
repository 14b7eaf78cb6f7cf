package pgsql

import (
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewReportingRepository serves dashboard records straight from a read
// replica of the backend's database instead of paging through its API.
func NewReportingRepository(dbPool *pgxpool.Pool) portsrepo.ReportingRepository {
	return newReportingRepository(dbPool)
}
