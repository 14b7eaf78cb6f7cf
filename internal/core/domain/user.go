package domain

import "time"

// UserRole gates destructive actions and account management.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
)

// UserStatus is whether an operator account may log in.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User is an operator account held by the backend.
type User struct {
	ID        ID         `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	Avatar    string     `json:"avatar,omitempty"`
	CreatedAt string     `json:"created_at,omitempty"`
}

// IsAdmin reports whether the user may delete records and manage accounts.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session is one operator's login. It is created at login, handed explicitly to
// whatever needs the backend token or the user's role, and dropped at logout.
type Session struct {
	ID           string    `json:"id"`
	User         User      `json:"user"`
	BackendToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Can reports whether the session's user holds role. Admins can do everything.
func (s *Session) Can(role UserRole) bool {
	if s == nil {
		return false
	}
	return s.User.IsAdmin() || s.User.Role == role
}
