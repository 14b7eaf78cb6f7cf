package repositories

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// Credentials are what an operator logs in with.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the backend's answer to a successful login.
type LoginResult struct {
	Token string
	User  domain.User
}

// AuthGateway is the backend's authentication surface.
type AuthGateway interface {
	// Login exchanges credentials for a backend bearer token and profile.
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)

	// CheckPassword verifies the current password of a logged-in operator.
	CheckPassword(ctx context.Context, sess *domain.Session, creds Credentials) error

	// ChangePassword sets a new password for a user.
	ChangePassword(ctx context.Context, sess *domain.Session, userID domain.ID, newPassword string) error

	// ForgotPassword asks the backend to mail a reset link.
	ForgotPassword(ctx context.Context, email string) error
}

// NewUser is a registration request.
type NewUser struct {
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Password string            `json:"password"`
	Role     domain.UserRole   `json:"role"`
	Status   domain.UserStatus `json:"status"`
}

// UserPatch holds the user fields to change; nil fields stay as they are.
type UserPatch struct {
	ID     domain.ID          `json:"id"`
	Name   *string            `json:"name,omitempty"`
	Status *domain.UserStatus `json:"status,omitempty"`
	Role   *domain.UserRole   `json:"role,omitempty"`
}

// UserReader defines read operations for operator accounts
type UserReader interface {
	ListUsers(ctx context.Context, sess *domain.Session) ([]domain.User, error)
}

// UserWriter defines write operations for operator accounts
type UserWriter interface {
	RegisterUser(ctx context.Context, sess *domain.Session, user NewUser) (*domain.User, error)
	UpdateUser(ctx context.Context, sess *domain.Session, patch UserPatch) (*domain.User, error)
	SendVerifyEmail(ctx context.Context, sess *domain.Session, email string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
