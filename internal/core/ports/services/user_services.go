package services

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
)

// UserReaderSvc defines read operations for operator accounts
type UserReaderSvc interface {
	// ListUsers retrieves operator accounts, optionally filtered by role.
	ListUsers(ctx context.Context, sess *domain.Session, params dto.ListUsersParams) (*dto.ListUsersResponse, error)
}

// UserWriterSvc defines write operations for operator accounts
type UserWriterSvc interface {
	// RegisterUser creates an account and sends its verification mail.
	RegisterUser(ctx context.Context, sess *domain.Session, req dto.RegisterUserRequest) (*domain.User, error)

	// UpdateUser changes name, status or role.
	UpdateUser(ctx context.Context, sess *domain.Session, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// SendVerifyEmail re-sends the verification mail.
	SendVerifyEmail(ctx context.Context, sess *domain.Session, req dto.SendVerifyEmailRequest) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
