package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils"
	"github.com/google/uuid"
)

// authService logs operators in against the backend and keeps the resulting
// sessions. The token handed to the dashboard only names the session; the
// backend token never leaves the server.
type authService struct {
	BaseService
	gateway   portsrepo.AuthGateway
	sessions  portsrepo.SessionStore
	jwtSecret string
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}

// AuthOption configures the auth service
type AuthOption func(*authService)

// WithSessionTTL sets how long a session lives after login.
func WithSessionTTL(ttl time.Duration) AuthOption {
	return func(s *authService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithTokenIssuer sets the issuer claim of session tokens.
func WithTokenIssuer(issuer string) AuthOption {
	return func(s *authService) {
		s.issuer = issuer
	}
}

// WithAuthClock replaces time.Now, for tests.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *authService) {
		s.now = now
	}
}

// NewAuthService creates the auth service.
func NewAuthService(gateway portsrepo.AuthGateway, sessions portsrepo.SessionStore, jwtSecret string, options ...AuthOption) portssvc.AuthSvc {
	svc := &authService{
		gateway:   gateway,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		issuer:    "ads-resale-dashboard",
		ttl:       12 * time.Hour,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	result, err := s.gateway.Login(ctx, portsrepo.Credentials{Email: email, Password: req.Password})
	if err != nil {
		s.LogWarn(ctx, err, "Backend login failed", slog.String("email", email))
		return nil, err
	}
	if result.User.Status == domain.UserInactive {
		s.LogInfo(ctx, "Inactive account tried to log in", slog.String("user_id", result.User.ID.String()))
		return nil, fmt.Errorf("%w: account is inactive", apperrors.ErrForbidden)
	}

	now := s.now()
	sess := &domain.Session{
		ID:           uuid.NewString(),
		User:         result.User,
		BackendToken: result.Token,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.LogError(ctx, err, "Failed to store session")
		return nil, err
	}

	token, err := utils.GenerateJWT(sess.ID, s.jwtSecret, sess.ExpiresAt, s.issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token")
		_ = s.sessions.Delete(ctx, sess.ID)
		return nil, err
	}

	s.LogInfo(ctx, "Operator logged in",
		slog.String("user_id", sess.User.ID.String()),
		slog.String("role", string(sess.User.Role)))
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   sess.ExpiresAt,
		User:        dto.ToUserResponse(&sess.User),
	}, nil
}

func (s *authService) ResolveSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if sess.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, apperrors.ErrUnauthorized
	}
	return sess, nil
}

func (s *authService) Logout(ctx context.Context, sess *domain.Session) error {
	if sess == nil {
		return apperrors.ErrUnauthorized
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		s.LogError(ctx, err, "Failed to drop session")
		return err
	}
	s.LogInfo(ctx, "Operator logged out", slog.String("user_id", sess.User.ID.String()))
	return nil
}

func (s *authService) CheckPassword(ctx context.Context, sess *domain.Session, req dto.CheckPasswordRequest) error {
	if err := s.RequireSession(sess); err != nil {
		return err
	}
	return s.gateway.CheckPassword(ctx, sess, portsrepo.Credentials{Email: sess.User.Email, Password: req.Password})
}

// ChangePassword changes the operator's own password after checking the
// current one, or any user's password when the operator is an admin.
func (s *authService) ChangePassword(ctx context.Context, sess *domain.Session, req dto.ChangePasswordRequest) error {
	if err := s.RequireSession(sess); err != nil {
		return err
	}
	if err := utils.CheckPasswordRule(req.NewPassword); err != nil {
		return err
	}

	target := domain.ID(req.UserID)
	if target.IsZero() {
		target = sess.User.ID
	}

	if target == sess.User.ID {
		if req.CurrentPassword == "" {
			return fmt.Errorf("%w: current_password is required", apperrors.ErrValidation)
		}
		if err := s.gateway.CheckPassword(ctx, sess, portsrepo.Credentials{Email: sess.User.Email, Password: req.CurrentPassword}); err != nil {
			s.LogWarn(ctx, err, "Current password check failed", slog.String("user_id", sess.User.ID.String()))
			return err
		}
	} else if !sess.User.IsAdmin() {
		return apperrors.ErrForbidden
	}

	if err := s.gateway.ChangePassword(ctx, sess, target, req.NewPassword); err != nil {
		s.LogError(ctx, err, "Failed to change password", slog.String("target_user_id", target.String()))
		return err
	}
	s.LogInfo(ctx, "Password changed",
		slog.String("user_id", sess.User.ID.String()),
		slog.String("target_user_id", target.String()))
	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	if err := s.gateway.ForgotPassword(ctx, strings.TrimSpace(req.Email)); err != nil {
		s.LogWarn(ctx, err, "Forgot-password request failed")
		return err
	}
	return nil
}
