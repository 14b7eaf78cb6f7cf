package dto

import (
	"time"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// LoginRequest is what the dashboard posts to log an operator in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token the dashboard sends on every call.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// CheckPasswordRequest verifies the logged-in operator's current password.
type CheckPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest sets a new password. When UserID is empty the
// logged-in operator's own password is changed.
type ChangePasswordRequest struct {
	UserID          string `json:"id"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"required,password"`
}

// ForgotPasswordRequest asks the backend to mail a reset link.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SessionResponse describes the current session.
type SessionResponse struct {
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// ToSessionResponse converts a session for the /auth/me endpoint.
func ToSessionResponse(sess *domain.Session) SessionResponse {
	return SessionResponse{
		User:      ToUserResponse(&sess.User),
		ExpiresAt: sess.ExpiresAt,
	}
}
