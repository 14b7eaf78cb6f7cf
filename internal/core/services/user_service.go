package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ads_resale_dashboard/internal/core/ports/services"
	"github.com/SscSPs/ads_resale_dashboard/internal/dto"
	"github.com/SscSPs/ads_resale_dashboard/internal/utils"
)

// DefaultUserPassword is given to accounts registered without a password.
// Operators are expected to change it after their first login.
const DefaultUserPassword = "Asdfg@123"

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the operator account service. Every operation is
// restricted to admins.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) ListUsers(ctx context.Context, sess *domain.Session, params dto.ListUsersParams) (*dto.ListUsersResponse, error) {
	if err := s.RequireRole(ctx, sess, domain.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListUsers(ctx, sess)
	if err != nil {
		warning, err := s.Degrade(ctx, err, "Failed to list users")
		if err != nil {
			return nil, err
		}
		resp := dto.ToListUserResponse(nil)
		resp.Warning = warning
		return &resp, nil
	}

	if params.Role != "" {
		filtered := users[:0:0]
		for _, u := range users {
			if string(u.Role) == params.Role {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}
	resp := dto.ToListUserResponse(users)
	return &resp, nil
}

// RegisterUser creates the account and then asks the backend to mail its
// verification link. A failed mail is logged; the account still exists.
func (s *userService) RegisterUser(ctx context.Context, sess *domain.Session, req dto.RegisterUserRequest) (*domain.User, error) {
	if err := s.RequireRole(ctx, sess, domain.RoleAdmin); err != nil {
		return nil, err
	}

	newUser := portsrepo.NewUser{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Role:     domain.UserRole(req.Role),
		Status:   domain.UserActive,
	}
	if newUser.Password == "" {
		newUser.Password = DefaultUserPassword
	}
	if newUser.Role == "" {
		newUser.Role = domain.RoleManager
	}
	if err := utils.CheckPasswordRule(newUser.Password); err != nil {
		return nil, err
	}

	created, err := s.userRepo.RegisterUser(ctx, sess, newUser)
	if err != nil {
		s.LogError(ctx, err, "Failed to register user", slog.String("email", newUser.Email))
		return nil, err
	}

	if err := s.userRepo.SendVerifyEmail(ctx, sess, newUser.Email); err != nil {
		s.LogWarn(ctx, err, "Failed to send verification email", slog.String("email", newUser.Email))
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", created.ID.String()),
		slog.String("registered_by", sess.User.ID.String()))
	return created, nil
}

// UpdateUser changes name, status or role. Admins cannot deactivate or demote
// their own account, so at least one admin always remains able to log in.
func (s *userService) UpdateUser(ctx context.Context, sess *domain.Session, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.RequireRole(ctx, sess, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}

	patch := portsrepo.UserPatch{ID: domain.ID(userID), Name: req.Name}
	if req.Status != nil {
		status := domain.UserStatus(*req.Status)
		patch.Status = &status
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		patch.Role = &role
	}
	if patch.Name == nil && patch.Status == nil && patch.Role == nil {
		return nil, fmt.Errorf("%w: nothing to update", apperrors.ErrValidation)
	}

	if patch.ID == sess.User.ID {
		if patch.Status != nil && *patch.Status != domain.UserActive {
			return nil, fmt.Errorf("%w: you cannot deactivate your own account", apperrors.ErrValidation)
		}
		if patch.Role != nil && *patch.Role != domain.RoleAdmin {
			return nil, fmt.Errorf("%w: you cannot remove your own admin role", apperrors.ErrValidation)
		}
	}

	updated, err := s.userRepo.UpdateUser(ctx, sess, patch)
	if err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "User updated", slog.String("user_id", userID))
	return updated, nil
}

func (s *userService) SendVerifyEmail(ctx context.Context, sess *domain.Session, req dto.SendVerifyEmailRequest) error {
	if err := s.RequireRole(ctx, sess, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.userRepo.SendVerifyEmail(ctx, sess, strings.TrimSpace(req.Email)); err != nil {
		s.LogError(ctx, err, "Failed to send verification email")
		return err
	}
	return nil
}
