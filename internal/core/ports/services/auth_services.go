package services

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
)

// SessionResolverSvc turns the subject of a validated token into a live session.
type SessionResolverSvc interface {
	// ResolveSession returns ErrUnauthorized for unknown or expired sessions.
	ResolveSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

// AuthSvc defines login, logout and password operations.
type AuthSvc interface {
	SessionResolverSvc

	// Login authenticates against the backend and opens a session.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Logout drops the session.
	Logout(ctx context.Context, sess *domain.Session) error

	// CheckPassword verifies the operator's current password.
	CheckPassword(ctx context.Context, sess *domain.Session, req dto.CheckPasswordRequest) error

	// ChangePassword changes the operator's password, or another user's when
	// the operator is an admin.
	ChangePassword(ctx context.Context, sess *domain.Session, req dto.ChangePasswordRequest) error

	// ForgotPassword asks the backend to mail a reset link.
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error
}
