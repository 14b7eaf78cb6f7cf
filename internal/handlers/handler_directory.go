package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// directoryHandler serves customers, suppliers and account types. The three
// share one shape, so every route is a thin call into the generic handlers
// at the bottom of this file.
type directoryHandler struct {
	directory portssvc.DirectorySvcFacade
}

func newDirectoryHandler(ds portssvc.DirectorySvcFacade) *directoryHandler {
	return &directoryHandler{directory: ds}
}

// registerDirectoryRoutes registers customers, suppliers and account types.
func registerDirectoryRoutes(rg *gin.RouterGroup, directory portssvc.DirectorySvcFacade) {
	h := newDirectoryHandler(directory)
	admin := middleware.RequireRole(domain.RoleAdmin)

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
		customers.POST("", h.createCustomer)
		customers.PUT("/:id", h.updateCustomer)
		customers.DELETE("/:id", admin, h.deleteCustomer)
	}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", h.listSuppliers)
		suppliers.POST("", h.createSupplier)
		suppliers.PUT("/:id", h.updateSupplier)
		suppliers.DELETE("/:id", admin, h.deleteSupplier)
	}

	accountTypes := rg.Group("/account-types")
	{
		accountTypes.GET("", h.listAccountTypes)
		accountTypes.POST("", h.createAccountType)
		accountTypes.PUT("/:id", h.updateAccountType)
		accountTypes.DELETE("/:id", admin, h.deleteAccountType)
	}
}

// listCustomers godoc
// @Summary List customers
// @Description Lists every customer. When the backend cannot be read the list is empty and carries a warning.
// @Tags directory
// @Produce  json
// @Success 200 {object} dto.ListResponse[domain.Customer]
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /customers [get]
func (h *directoryHandler) listCustomers(c *gin.Context) {
	listEntities("customers", h.directory.ListCustomers)(c)
}

// createCustomer godoc
// @Summary Create a customer
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   customer body dto.CustomerRequest true "Customer details"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} map[string]string "Invalid input or rate outside [0,1]"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend unavailable"
// @Security BearerAuth
// @Router /customers [post]
func (h *directoryHandler) createCustomer(c *gin.Context) {
	createEntity("customer", h.directory.CreateCustomer)(c)
}

// updateCustomer godoc
// @Summary Update a customer
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   id path string true "Customer ID"
// @Param   customer body dto.CustomerRequest true "Customer details"
// @Success 200 {object} domain.Customer
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *directoryHandler) updateCustomer(c *gin.Context) {
	updateEntity("customer", h.directory.UpdateCustomer)(c)
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Tags directory
// @Param   id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *directoryHandler) deleteCustomer(c *gin.Context) {
	deleteEntity("customer", h.directory.DeleteCustomer)(c)
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags directory
// @Produce  json
// @Success 200 {object} dto.ListResponse[domain.Supplier]
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /suppliers [get]
func (h *directoryHandler) listSuppliers(c *gin.Context) {
	listEntities("suppliers", h.directory.ListSuppliers)(c)
}

// createSupplier godoc
// @Summary Create a supplier
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   supplier body dto.SupplierRequest true "Supplier details"
// @Success 201 {object} domain.Supplier
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /suppliers [post]
func (h *directoryHandler) createSupplier(c *gin.Context) {
	createEntity("supplier", h.directory.CreateSupplier)(c)
}

// updateSupplier godoc
// @Summary Update a supplier
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   id path string true "Supplier ID"
// @Param   supplier body dto.SupplierRequest true "Supplier details"
// @Success 200 {object} domain.Supplier
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *directoryHandler) updateSupplier(c *gin.Context) {
	updateEntity("supplier", h.directory.UpdateSupplier)(c)
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Tags directory
// @Param   id path string true "Supplier ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *directoryHandler) deleteSupplier(c *gin.Context) {
	deleteEntity("supplier", h.directory.DeleteSupplier)(c)
}

// listAccountTypes godoc
// @Summary List account types
// @Tags directory
// @Produce  json
// @Success 200 {object} dto.ListResponse[domain.AccountType]
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /account-types [get]
func (h *directoryHandler) listAccountTypes(c *gin.Context) {
	listEntities("account types", h.directory.ListAccountTypes)(c)
}

// createAccountType godoc
// @Summary Create an account type
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   account_type body dto.AccountTypeRequest true "Account type details"
// @Success 201 {object} domain.AccountType
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /account-types [post]
func (h *directoryHandler) createAccountType(c *gin.Context) {
	createEntity("account type", h.directory.CreateAccountType)(c)
}

// updateAccountType godoc
// @Summary Update an account type
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   id path string true "Account type ID"
// @Param   account_type body dto.AccountTypeRequest true "Account type details"
// @Success 200 {object} domain.AccountType
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /account-types/{id} [put]
func (h *directoryHandler) updateAccountType(c *gin.Context) {
	updateEntity("account type", h.directory.UpdateAccountType)(c)
}

// deleteAccountType godoc
// @Summary Delete an account type
// @Tags directory
// @Param   id path string true "Account type ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /account-types/{id} [delete]
func (h *directoryHandler) deleteAccountType(c *gin.Context) {
	deleteEntity("account type", h.directory.DeleteAccountType)(c)
}

func listEntities[R any](what string, list func(context.Context, *domain.Session) (R, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		resp, err := list(c.Request.Context(), sess)
		if err != nil {
			respondError(c, err, "Failed to list "+what)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func createEntity[Req, T any](what string, create func(context.Context, *domain.Session, Req) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		var req Req
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, what+" request", err)
			return
		}
		created, err := create(c.Request.Context(), sess, req)
		if err != nil {
			respondError(c, err, "Failed to create "+what)
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("Created "+what)
		c.JSON(http.StatusCreated, created)
	}
}

func updateEntity[Req, T any](what string, update func(context.Context, *domain.Session, string, Req) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		var req Req
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, what+" request", err)
			return
		}
		updated, err := update(c.Request.Context(), sess, c.Param("id"), req)
		if err != nil {
			respondError(c, err, "Failed to update "+what)
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("Updated "+what, slog.String("id", c.Param("id")))
		c.JSON(http.StatusOK, updated)
	}
}

func deleteEntity(what string, del func(context.Context, *domain.Session, string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		if err := del(c.Request.Context(), sess, c.Param("id")); err != nil {
			respondError(c, err, "Failed to delete "+what)
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("Deleted "+what, slog.String("id", c.Param("id")))
		c.Status(http.StatusNoContent)
	}
}
