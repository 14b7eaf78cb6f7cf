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

// billHandler handles HTTP requests related to bills and their payments.
type billHandler struct {
	billService   portssvc.BillSvcFacade
	exportService portssvc.ExportSvc
}

func newBillHandler(bs portssvc.BillSvcFacade, es portssvc.ExportSvc) *billHandler {
	return &billHandler{billService: bs, exportService: es}
}

// registerBillRoutes registers bill and payment routes.
func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade, exportService portssvc.ExportSvc) {
	h := newBillHandler(billService, exportService)
	admin := middleware.RequireRole(domain.RoleAdmin)

	bills := rg.Group("/bills")
	{
		bills.GET("", h.listBills)
		bills.GET("/export", h.exportBills)
		bills.GET("/:id", h.getBill)
		bills.GET("/:id/payments", h.getBill)
		bills.POST("", h.createBill)
		bills.PUT("/:id", h.updateBill)
		bills.DELETE("/:id", admin, h.deleteBill)
		bills.DELETE("/:id/payments/:payment_id", h.deletePayment)
	}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.PUT("/:id", h.updatePayment)
	}

	rg.GET("/customers/:id/payments", h.listPaymentsByCustomer)
}

// listBills godoc
// @Summary List bills
// @Description Lists one page of bills. cash_on_hand feeds the reconciliation panel, which compares it with what the page says was received.
// @Tags bills
// @Produce  json
// @Param   page query int false "Page number"
// @Param   per_page query int false "Page size"
// @Param   status query string false "debt, deposit or completed"
// @Param   customer_id query string false "Customer filter"
// @Param   from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   sort_by query string false "Sort field"
// @Param   sort_order query string false "asc or desc"
// @Param   cash_on_hand query string false "Cash counted on hand"
// @Param   state query string false "State token from an earlier response"
// @Success 200 {object} dto.BillListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 409 {object} map[string]string "Superseded by a newer request"
// @Security BearerAuth
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var params dto.BillListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}

	resp, err := h.billService.ListBills(c.Request.Context(), sess, params)
	if err != nil {
		respondError(c, err, "Failed to list bills")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getBill godoc
// @Summary Get a bill with its payments
// @Description Returns a bill with its payments and the settlement derived from them. Also served under /bills/{id}/payments.
// @Tags bills
// @Produce  json
// @Param   id path string true "Bill ID"
// @Success 200 {object} dto.BillDetailResponse
// @Failure 404 {object} map[string]string "Bill not found"
// @Security BearerAuth
// @Router /bills/{id} [get]
func (h *billHandler) getBill(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	resp, err := h.billService.GetBill(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve bill")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Removes a payment and returns the bill's recomputed settlement.
// @Tags bills
// @Produce  json
// @Param   id path string true "Bill ID"
// @Param   payment_id path string true "Payment ID"
// @Success 200 {object} dto.BillDetailResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /bills/{id}/payments/{payment_id} [delete]
func (h *billHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	billID, paymentID := c.Param("id"), c.Param("payment_id")
	resp, err := h.billService.DeletePayment(c.Request.Context(), sess, billID, paymentID)
	if err != nil {
		respondError(c, err, "Failed to delete payment")
		return
	}

	logger.Info("Payment deleted", slog.String("bill_id", billID), slog.String("payment_id", paymentID))
	c.JSON(http.StatusOK, resp)
}

// createBill godoc
// @Summary Create a bill
// @Description A new bill has no payments, so it starts as debt.
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   bill body dto.BillRequest true "Bill details"
// @Success 201 {object} domain.Bill
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	createEntity("bill", h.billService.CreateBill)(c)
}

// updateBill godoc
// @Summary Update a bill
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   id path string true "Bill ID"
// @Param   bill body dto.BillRequest true "Bill details"
// @Success 200 {object} domain.Bill
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /bills/{id} [put]
func (h *billHandler) updateBill(c *gin.Context) {
	updateEntity("bill", h.billService.UpdateBill)(c)
}

// deleteBill godoc
// @Summary Delete a bill
// @Tags bills
// @Param   id path string true "Bill ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /bills/{id} [delete]
func (h *billHandler) deleteBill(c *gin.Context) {
	deleteEntity("bill", h.billService.DeleteBill)(c)
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a payment against a bill and returns the bill's recomputed settlement.
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   payment body dto.PaymentRequest true "Payment details"
// @Success 201 {object} dto.BillDetailResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payments [post]
func (h *billHandler) createPayment(c *gin.Context) {
	createEntity("payment", h.billService.CreatePayment)(c)
}

// updatePayment godoc
// @Summary Update a payment
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   id path string true "Payment ID"
// @Param   payment body dto.PaymentRequest true "Payment details"
// @Success 200 {object} dto.BillDetailResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *billHandler) updatePayment(c *gin.Context) {
	updateEntity("payment", h.billService.UpdatePayment)(c)
}

// listPaymentsByCustomer godoc
// @Summary List a customer's payments
// @Tags bills
// @Produce  json
// @Param   id path string true "Customer ID"
// @Param   from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.PaymentListResponse
// @Failure 400 {object} map[string]string "Invalid or inverted date range"
// @Security BearerAuth
// @Router /customers/{id}/payments [get]
func (h *billHandler) listPaymentsByCustomer(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var params dto.PaymentRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}

	resp, err := h.billService.ListPaymentsByCustomer(c.Request.Context(), sess, c.Param("id"), params)
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// exportBills godoc
// @Summary Export bills to XLSX
// @Tags bills
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   status query string false "debt, deposit or completed"
// @Param   customer_id query string false "Customer filter"
// @Param   from_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /bills/export [get]
func (h *billHandler) exportBills(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var params dto.BillListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}

	book, err := h.exportService.ExportBills(c.Request.Context(), sess, params)
	if err != nil {
		respondError(c, err, "Failed to export bills")
		return
	}
	sendWorkbook(c, "bills", book)
}
