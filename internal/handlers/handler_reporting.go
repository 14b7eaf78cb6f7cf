package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the dashboard and the monthly overviews.
type reportingHandler struct {
	dashboardService portssvc.DashboardSvc
	overviewService  portssvc.OverviewSvc
}

func newReportingHandler(ds portssvc.DashboardSvc, ovs portssvc.OverviewSvc) *reportingHandler {
	return &reportingHandler{dashboardService: ds, overviewService: ovs}
}

func registerReportingRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc, overviewService portssvc.OverviewSvc) {
	h := newReportingHandler(dashboardService, overviewService)

	rg.GET("/dashboard/:type/:value", h.getDashboard)

	overview := rg.Group("/overview")
	{
		overview.GET("/customers/:id/:period", h.getCustomerOverview)
		overview.GET("/suppliers/:id/:period", h.getSupplierOverview)
	}
}

// getDashboard godoc
// @Summary Dashboard for a period
// @Description type is date, week, month or year and value names the period in that granularity, e.g. /dashboard/month/2025-02. A source that cannot be read leaves its figures at zero and adds a warning.
// @Tags reporting
// @Produce  json
// @Param   type path string true "date, week, month or year"
// @Param   value path string true "Period in that granularity"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Unknown granularity or malformed period"
// @Security BearerAuth
// @Router /dashboard/{type}/{value} [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	granularity, value := c.Param("type"), c.Param("value")
	resp, err := h.dashboardService.Dashboard(c.Request.Context(), sess, granularity, value)
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}

	if resp.Warning != "" {
		logger.Warn("Dashboard served with warnings", slog.String("warning", resp.Warning))
	}
	c.JSON(http.StatusOK, resp)
}

// getCustomerOverview godoc
// @Summary A customer's month
// @Tags reporting
// @Produce  json
// @Param   id path string true "Customer ID"
// @Param   period path string true "Month (YYYY-MM) or a date inside it"
// @Success 200 {object} dto.CustomerOverviewResponse
// @Failure 400 {object} map[string]string "Malformed period"
// @Security BearerAuth
// @Router /overview/customers/{id}/{period} [get]
func (h *reportingHandler) getCustomerOverview(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	resp, err := h.overviewService.CustomerOverview(c.Request.Context(), sess, c.Param("id"), c.Param("period"))
	if err != nil {
		respondError(c, err, "Failed to retrieve customer overview")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getSupplierOverview godoc
// @Summary A supplier's month
// @Tags reporting
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Param   period path string true "Month (YYYY-MM) or a date inside it"
// @Success 200 {object} dto.SupplierOverviewResponse
// @Failure 400 {object} map[string]string "Malformed period"
// @Security BearerAuth
// @Router /overview/suppliers/{id}/{period} [get]
func (h *reportingHandler) getSupplierOverview(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	resp, err := h.overviewService.SupplierOverview(c.Request.Context(), sess, c.Param("id"), c.Param("period"))
	if err != nil {
		respondError(c, err, "Failed to retrieve supplier overview")
		return
	}
	c.JSON(http.StatusOK, resp)
}
