package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to supplier budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers all budget-related routes.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.GET("/usage", h.listBudgetUsage)
		budgets.GET("/:id", h.getBudget)
		budgets.POST("", h.createBudget)
		budgets.PUT("/:id", h.updateBudget)
		budgets.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.deleteBudget)
	}

	rg.GET("/suppliers/:id/budgets", h.listBudgetsBySupplier)
}

// listBudgets godoc
// @Summary List budgets
// @Tags budgets
// @Produce  json
// @Success 200 {object} dto.ListResponse[domain.Budget]
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	listEntities("budgets", h.budgetService.ListBudgets)(c)
}

// listBudgetUsage godoc
// @Summary List budget usage
// @Description Each budget with the money its contracts already use and what is left.
// @Tags budgets
// @Produce  json
// @Success 200 {object} dto.ListResponse[dto.BudgetUsageRow]
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /budgets/usage [get]
func (h *budgetHandler) listBudgetUsage(c *gin.Context) {
	listEntities("budget usage", h.budgetService.ListBudgetUsage)(c)
}

// getBudget godoc
// @Summary Get a budget by ID
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 200 {object} domain.Budget
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	budget, err := h.budgetService.GetBudget(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve budget")
		return
	}
	c.JSON(http.StatusOK, budget)
}

// createBudget godoc
// @Summary Create a budget
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.BudgetRequest true "Budget details"
// @Success 201 {object} domain.Budget
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	createEntity("budget", h.budgetService.CreateBudget)(c)
}

// updateBudget godoc
// @Summary Update a budget
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   id path string true "Budget ID"
// @Param   budget body dto.BudgetRequest true "Budget details"
// @Success 200 {object} domain.Budget
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /budgets/{id} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	updateEntity("budget", h.budgetService.UpdateBudget)(c)
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param   id path string true "Budget ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	deleteEntity("budget", h.budgetService.DeleteBudget)(c)
}

// listBudgetsBySupplier godoc
// @Summary List one supplier's budgets
// @Description Pages through one supplier's budgets. Accepts the list filters plus limit as an alias of per_page, or a state token from an earlier response.
// @Tags budgets
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Param   page query int false "Page number"
// @Param   per_page query int false "Page size"
// @Param   limit query int false "Alias of per_page"
// @Param   status query string false "Budget status"
// @Param   sort_by query string false "Sort field"
// @Param   sort_order query string false "asc or desc"
// @Param   state query string false "State token from an earlier response"
// @Success 200 {object} dto.PagedResponse[domain.Budget]
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 409 {object} map[string]string "Superseded by a newer request"
// @Security BearerAuth
// @Router /suppliers/{id}/budgets [get]
func (h *budgetHandler) listBudgetsBySupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}

	supplierID := c.Param("id")
	resp, err := h.budgetService.ListBudgetsBySupplier(c.Request.Context(), sess, supplierID, params)
	if err != nil {
		respondError(c, err, "Failed to list budgets")
		return
	}

	logger.Debug("Supplier budgets listed", slog.String("supplier_id", supplierID), slog.Int("count", len(resp.Data)))
	c.JSON(http.StatusOK, resp)
}
