package dto

import (
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// DashboardResponse is the dashboard payload. When the reporting source could
// not be read the figures are zero and Warning says why.
type DashboardResponse struct {
	domain.Dashboard
	Warning string `json:"warning,omitempty"`
}

// CustomerOverviewResponse wraps a customer's month; Overview is null when the
// backend has nothing for it.
type CustomerOverviewResponse struct {
	Overview *domain.CustomerOverview `json:"overview"`
	Warning  string                   `json:"warning,omitempty"`
}

// SupplierOverviewResponse wraps a supplier's month.
type SupplierOverviewResponse struct {
	Overview *domain.SupplierOverview `json:"overview"`
	Warning  string                   `json:"warning,omitempty"`
}
