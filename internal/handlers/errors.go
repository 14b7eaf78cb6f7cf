package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/middleware"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/allocation"
	"github.com/gin-gonic/gin"
)

// statusFor maps a service error onto an HTTP status and the message shown to
// the operator. Backend messages are passed through as they are.
func statusFor(err error, fallback string) (int, string) {
	msg := fallback
	var backendErr *apperrors.BackendError
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		msg = backendErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		if backendErr == nil {
			msg = err.Error()
		}
		return http.StatusBadRequest, msg
	case errors.Is(err, apperrors.ErrUnauthorized):
		if backendErr == nil {
			msg = "Session has expired, please log in again"
		}
		return http.StatusUnauthorized, msg
	case errors.Is(err, apperrors.ErrForbidden):
		if backendErr == nil {
			msg = "Forbidden"
		}
		return http.StatusForbidden, msg
	case errors.Is(err, apperrors.ErrNotFound):
		if backendErr == nil {
			msg = "Not found"
		}
		return http.StatusNotFound, msg
	case errors.Is(err, apperrors.ErrSuperseded):
		return http.StatusConflict, "Request superseded by a newer one"
	case errors.Is(err, apperrors.ErrBudgetExceeded), errors.Is(err, apperrors.ErrDuplicate):
		if backendErr == nil {
			msg = err.Error()
		}
		return http.StatusConflict, msg
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "Backend is unavailable, please try again"
	case errors.Is(err, apperrors.ErrMalformedResponse):
		return http.StatusBadGateway, "Backend returned an unexpected response"
	case errors.Is(err, apperrors.ErrUpstream):
		return http.StatusBadGateway, msg
	}
	return http.StatusInternalServerError, fallback
}

// respondError logs err and writes the mapped status. A budget overdraw also
// carries the check so the form can show what is left.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, msg := statusFor(err, fallback)

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()))
	case errors.Is(err, apperrors.ErrSuperseded):
		logger.Debug("Request superseded", slog.String("path", c.FullPath()))
	default:
		logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	}

	body := gin.H{"error": msg}
	var exceeded *allocation.ExceededError
	if errors.As(err, &exceeded) {
		body["budget_check"] = exceeded.Check
	}
	c.JSON(status, body)
}

// bindError answers a request whose body or query failed binding.
func bindError(c *gin.Context, what string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + ": " + err.Error()})
}

// currentSession returns the session the auth middleware attached, writing 401
// when there is none.
func currentSession(c *gin.Context) (*domain.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return sess, true
}
