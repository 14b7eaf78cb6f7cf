package dto

import (
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
)

// UserResponse is an operator account as shown to the dashboard.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Status:    string(user.Status),
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Role string `form:"role" binding:"omitempty,oneof=admin manager"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users   []UserResponse `json:"users"`
	Warning string         `json:"warning,omitempty"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(&user)
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}

// RegisterUserRequest creates an operator account. Password and role fall
// back to the shop defaults when omitted.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,password"`
	Role     string `json:"role" binding:"omitempty,oneof=admin manager"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1"`
	Status *string `json:"status" binding:"omitempty,oneof=active inactive"`
	Role   *string `json:"role" binding:"omitempty,oneof=admin manager"`
}

// SendVerifyEmailRequest re-sends the verification mail for an account.
type SendVerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}
