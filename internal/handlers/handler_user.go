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

// userHandler handles HTTP requests related to operator accounts.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	rg.POST("/users/verify-email", h.sendVerifyEmail)

	users := rg.Group("/users", middleware.RequireRole(domain.RoleAdmin))
	{
		users.GET("", h.listUsers)
		users.POST("", h.registerUser)
		users.PUT("/:id", h.updateUser)
	}
}

// listUsers godoc
// @Summary List operator accounts
// @Description Lists operator accounts, optionally filtered by role. When the backend cannot be read the list is empty and carries a warning.
// @Tags users
// @Produce  json
// @Param   role query string false "admin or manager"
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}

	resp, err := h.userService.ListUsers(c.Request.Context(), sess, params)
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}

	logger.Info("Users listed successfully", slog.Int("count", len(resp.Users)))
	c.JSON(http.StatusOK, resp)
}

// registerUser godoc
// @Summary Register an operator account
// @Description Password and role default when omitted and a verification mail is sent afterwards.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.RegisterUserRequest true "Account details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input or weak password"
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 409 {object} map[string]string "Email already registered"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) registerUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "register request", err)
		return
	}

	logger.Info("Received request to register user", slog.String("email", req.Email))

	user, err := h.userService.RegisterUser(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	logger.Info("User registered successfully", slog.String("new_user_id", user.ID.String()))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// updateUser godoc
// @Summary Update an operator account
// @Description Changes an account's name, status or role. Admins cannot deactivate or demote themselves.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   user body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Admin only"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	userID := c.Param("id")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "update request", err)
		return
	}

	logger = logger.With(slog.String("target_user_id", userID))
	logger.Info("Received request to update user")

	user, err := h.userService.UpdateUser(c.Request.Context(), sess, userID, req)
	if err != nil {
		respondError(c, err, "Failed to update user")
		return
	}

	logger.Info("User updated successfully")
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// sendVerifyEmail godoc
// @Summary Send an email verification mail
// @Tags users
// @Accept  json
// @Produce  json
// @Param   request body dto.SendVerifyEmailRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /users/verify-email [post]
func (h *userHandler) sendVerifyEmail(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req dto.SendVerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "verify email request", err)
		return
	}

	if err := h.userService.SendVerifyEmail(c.Request.Context(), sess, req); err != nil {
		respondError(c, err, "Failed to send verification mail")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification mail sent"})
}
