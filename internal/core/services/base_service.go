package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/middleware"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils/pagination"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Guard supersedes an operator's older request for the same screen.
	// Nil disables superseding.
	Guard *pagination.Guard
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// RequireSession rejects calls made without a logged-in operator.
func (s *BaseService) RequireSession(sess *domain.Session) error {
	if sess == nil || sess.BackendToken == "" {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// RequireRole checks that the session's user holds role.
func (s *BaseService) RequireRole(ctx context.Context, sess *domain.Session, role domain.UserRole) error {
	if err := s.RequireSession(sess); err != nil {
		return err
	}
	if !sess.Can(role) {
		s.LogDebug(ctx, "Role check failed",
			slog.String("user_id", sess.User.ID.String()),
			slog.String("required_role", string(role)))
		return apperrors.ErrForbidden
	}
	return nil
}

// Track registers a request for a screen with the guard. The returned context
// is cancelled with ErrSuperseded when the same operator opens the screen
// again before this request finishes.
func (s *BaseService) Track(ctx context.Context, sess *domain.Session, screen string) (context.Context, func()) {
	if s.Guard == nil || sess == nil {
		return ctx, func() {}
	}
	return s.Guard.Begin(ctx, sess.ID+":"+screen)
}

// Degrade decides how a failed read reaches the screen. I/O failures become
// a warning next to an empty result; superseded requests, validation and
// authorization errors are returned as they are.
func (s *BaseService) Degrade(ctx context.Context, err error, msg string, keyvals ...any) (string, error) {
	if err = pagination.Err(ctx, err); errors.Is(err, apperrors.ErrSuperseded) {
		s.LogDebug(ctx, "Request superseded", keyvals...)
		return "", err
	}
	if apperrors.IsDegradable(err) {
		s.LogWarn(ctx, err, msg, keyvals...)
		return err.Error(), nil
	}
	s.LogError(ctx, err, msg, keyvals...)
	return "", err
}
