package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/middleware"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// contractHandler handles HTTP requests related to contracts.
type contractHandler struct {
	contractService portssvc.ContractSvcFacade
	exportService   portssvc.ExportSvc
}

func newContractHandler(cs portssvc.ContractSvcFacade, es portssvc.ExportSvc) *contractHandler {
	return &contractHandler{contractService: cs, exportService: es}
}

// registerContractRoutes registers all contract-related routes.
func registerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade, exportService portssvc.ExportSvc) {
	h := newContractHandler(contractService, exportService)

	contracts := rg.Group("/contracts")
	{
		contracts.GET("", h.listContracts)
		contracts.GET("/export", h.exportContracts)
		contracts.POST("/check", h.checkBudget)
		contracts.POST("", h.createContract)
		contracts.PUT("/:id", h.updateContract)
		contracts.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.deleteContract)
	}
}

// listContracts godoc
// @Summary List contracts
// @Description Lists one page of contracts with each row's allocation and the totals over that page. A page past the end is served as the last page.
// @Tags contracts
// @Produce  json
// @Param   page query int false "Page number"
// @Param   per_page query int false "Page size"
// @Param   limit query int false "Alias of per_page"
// @Param   customer_id query string false "Customer filter"
// @Param   supplier_id query string false "Supplier filter"
// @Param   account_type_id query string false "Account type filter"
// @Param   product_type query string false "legal, illegal or middle-illegal"
// @Param   from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   sort_by query string false "Sort field"
// @Param   sort_order query string false "asc or desc"
// @Param   state query string false "State token from an earlier response"
// @Success 200 {object} dto.ContractListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Superseded by a newer request"
// @Security BearerAuth
// @Router /contracts [get]
func (h *contractHandler) listContracts(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}

	resp, err := h.contractService.ListContracts(c.Request.Context(), sess, params)
	if err != nil {
		respondError(c, err, "Failed to list contracts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// checkBudget godoc
// @Summary Check a cost against its budget
// @Description Reports how much of a budget a cost would use, without saving anything.
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   check body dto.CheckBudgetRequest true "Budget, cost and the contract being edited"
// @Success 200 {object} allocation.BudgetCheck
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /contracts/check [post]
func (h *contractHandler) checkBudget(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req dto.CheckBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "budget check request", err)
		return
	}

	check, err := h.contractService.CheckBudget(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, err, "Failed to check budget")
		return
	}
	c.JSON(http.StatusOK, check)
}

// createContract godoc
// @Summary Create a contract
// @Description Creates a contract. Zero rates are taken from the budget. 409 with the budget check when the contract would overdraw its budget.
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   contract body dto.ContractRequest true "Contract details"
// @Success 201 {object} dto.ContractMutationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]interface{} "Budget exceeded, with budget_check"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /contracts [post]
func (h *contractHandler) createContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req dto.ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "contract request", err)
		return
	}

	resp, err := h.contractService.CreateContract(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, err, "Failed to create contract")
		return
	}

	logger.Info("Contract created", slog.String("contract_id", resp.Contract.ID.String()), slog.String("budget_id", req.BudgetID))
	c.JSON(http.StatusCreated, resp)
}

// updateContract godoc
// @Summary Update a contract
// @Description The contract's previous cost is left out of the budget's usage when checking the new one.
// @Tags contracts
// @Accept  json
// @Produce  json
// @Param   id path string true "Contract ID"
// @Param   contract body dto.ContractRequest true "Contract details"
// @Success 200 {object} dto.ContractMutationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]interface{} "Budget exceeded, with budget_check"
// @Security BearerAuth
// @Router /contracts/{id} [put]
func (h *contractHandler) updateContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req dto.ContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "contract request", err)
		return
	}

	contractID := c.Param("id")
	resp, err := h.contractService.UpdateContract(c.Request.Context(), sess, contractID, req)
	if err != nil {
		respondError(c, err, "Failed to update contract")
		return
	}

	logger.Info("Contract updated", slog.String("contract_id", contractID))
	c.JSON(http.StatusOK, resp)
}

// deleteContract godoc
// @Summary Delete a contract
// @Tags contracts
// @Param   id path string true "Contract ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /contracts/{id} [delete]
func (h *contractHandler) deleteContract(c *gin.Context) {
	deleteEntity("contract", h.contractService.DeleteContract)(c)
}

// exportContracts godoc
// @Summary Export contracts to XLSX
// @Description Takes the same filters as the list and exports every matching contract.
// @Tags contracts
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   customer_id query string false "Customer filter"
// @Param   from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /contracts/export [get]
func (h *contractHandler) exportContracts(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}

	book, err := h.exportService.ExportContracts(c.Request.Context(), sess, params)
	if err != nil {
		respondError(c, err, "Failed to export contracts")
		return
	}
	sendWorkbook(c, "contracts", book)
}

// sendWorkbook writes an XLSX attachment named after what and today's date.
func sendWorkbook(c *gin.Context, what string, book []byte) {
	filename := fmt.Sprintf("%s-%s.xlsx", what, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, book)
}
