package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles login, logout and password requests.
type authHandler struct {
	authService portssvc.AuthSvc
}

func newAuthHandler(as portssvc.AuthSvc) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes registers the routes that work without a session.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvc, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(authService)

	auth := r.Group("/api/v1/auth")
	{
		if loginLimiter != nil {
			auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
		} else {
			auth.POST("/login", h.login)
		}
		auth.POST("/forgot-password", h.forgotPassword)
	}
}

// registerSessionRoutes registers the auth routes that act on the current session.
func registerSessionRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvc) {
	h := newAuthHandler(authService)

	auth := rg.Group("/auth")
	{
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.me)
		auth.POST("/check-password", h.checkPassword)
		auth.POST("/change-password", h.changePassword)
	}
}

// login godoc
// @Summary Log in
// @Description Authenticates against the backend and returns a session token.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Wrong credentials"
// @Failure 403 {object} map[string]string "Account inactive"
// @Failure 429 {object} map[string]string "Too many attempts"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "login request", err)
		return
	}

	logger.Info("Received login request", slog.String("email", req.Email))

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	logger.Info("Login successful", slog.String("user_id", resp.User.ID))
	c.JSON(http.StatusOK, resp)
}

// forgotPassword godoc
// @Summary Send a password reset mail
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /auth/forgot-password [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "forgot password request", err)
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to send the reset mail")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If the account exists a reset link has been sent"})
}

// logout godoc
// @Summary Log out
// @Tags auth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.authService.Logout(c.Request.Context(), sess); err != nil {
		respondError(c, err, "Logout failed")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Logged out")
	c.Status(http.StatusNoContent)
}

// me godoc
// @Summary Current session
// @Tags auth
// @Produce  json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(sess))
}

// checkPassword godoc
// @Summary Verify the current password
// @Description Verifies the operator's current password before a sensitive change.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.CheckPasswordRequest true "Current password"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Password does not match"
// @Security BearerAuth
// @Router /auth/check-password [post]
func (h *authHandler) checkPassword(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req dto.CheckPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "check password request", err)
		return
	}

	if err := h.authService.CheckPassword(c.Request.Context(), sess, req); err != nil {
		respondError(c, err, "Password check failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// changePassword godoc
// @Summary Change a password
// @Description Changes the operator's own password, or another account's when the operator is an admin and the body names an id.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.ChangePasswordRequest true "Passwords"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Weak password or wrong current password"
// @Failure 403 {object} map[string]string "Not allowed to change that account"
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "change password request", err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), sess, req); err != nil {
		respondError(c, err, "Failed to change password")
		return
	}

	logger.Info("Password changed", slog.String("target_user_id", req.UserID))
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}
