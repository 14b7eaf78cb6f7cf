package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/SscSPs/ads_resale_dashboard/internal/core/ports/repositories"
)

// UserRepository manages operator accounts. These routes are RPC style
// rather than REST.
type UserRepository struct {
	client *Client
}

func NewUserRepository(c *Client) *UserRepository {
	return &UserRepository{client: c}
}

// ListUsers posts the caller's role; the backend decides what it may see.
func (r *UserRepository) ListUsers(ctx context.Context, sess *domain.Session) ([]domain.User, error) {
	role := domain.UserRole("")
	if sess != nil {
		role = sess.User.Role
	}
	const path = "getListUser"
	body, err := r.client.call(ctx, sess, request{
		method: http.MethodPost,
		path:   path,
		body:   map[string]domain.UserRole{"role": role},
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		ListUser *[]domain.User `json:"list_user"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, malformed(ctx, path, err)
	}
	if parsed.ListUser == nil {
		return nil, malformed(ctx, path, fmt.Errorf("%w: list_user missing", errUnexpectedShape))
	}
	return nonNil(*parsed.ListUser), nil
}

func (r *UserRepository) RegisterUser(ctx context.Context, sess *domain.Session, user repositories.NewUser) (*domain.User, error) {
	const path = "register"
	body, err := r.client.call(ctx, sess, request{method: http.MethodPost, path: path, body: user})
	if err != nil {
		return nil, err
	}
	created, err := decodeUser(body)
	if err != nil {
		return nil, malformed(ctx, path, err)
	}
	if created == nil {
		created = &domain.User{Name: user.Name, Email: user.Email, Role: user.Role, Status: domain.UserActive}
	}
	return created, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, sess *domain.Session, patch repositories.UserPatch) (*domain.User, error) {
	const path = "update-user"
	body, err := r.client.call(ctx, sess, request{method: http.MethodPost, path: path, body: patch})
	if err != nil {
		return nil, err
	}
	updated, err := decodeUser(body)
	if err != nil {
		return nil, malformed(ctx, path, err)
	}
	if updated == nil {
		updated = &domain.User{ID: patch.ID}
		if patch.Name != nil {
			updated.Name = *patch.Name
		}
		if patch.Status != nil {
			updated.Status = *patch.Status
		}
		if patch.Role != nil {
			updated.Role = *patch.Role
		}
	}
	return updated, nil
}

func (r *UserRepository) SendVerifyEmail(ctx context.Context, sess *domain.Session, email string) error {
	_, err := r.client.call(ctx, sess, request{
		method: http.MethodPost,
		path:   "send-verify-email",
		body:   map[string]string{"email": email},
	})
	return err
}

// decodeUser reads a user echoed as {user: ...}, {data: ...} or bare.
func decodeUser(body []byte) (*domain.User, error) {
	var wrapped struct {
		User *domain.User `json:"user"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.User != nil {
		return wrapped.User, nil
	}
	return decodeRecord[domain.User](body)
}

// AuthGateway is the backend's login and password surface.
type AuthGateway struct {
	client *Client
}

func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{client: c}
}

func (g *AuthGateway) Login(ctx context.Context, creds repositories.Credentials) (*repositories.LoginResult, error) {
	const path = "login"
	body, err := g.client.do(ctx, request{method: http.MethodPost, path: path, body: creds})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		AccessToken string       `json:"access_token"`
		User        *domain.User `json:"user"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, malformed(ctx, path, err)
	}
	if parsed.AccessToken == "" || parsed.User == nil {
		return nil, malformed(ctx, path, fmt.Errorf("%w: access_token or user missing", errUnexpectedShape))
	}
	return &repositories.LoginResult{Token: parsed.AccessToken, User: *parsed.User}, nil
}

func (g *AuthGateway) CheckPassword(ctx context.Context, sess *domain.Session, creds repositories.Credentials) error {
	_, err := g.client.call(ctx, sess, request{method: http.MethodPost, path: "check-password", body: creds})
	return err
}

func (g *AuthGateway) ChangePassword(ctx context.Context, sess *domain.Session, userID domain.ID, newPassword string) error {
	_, err := g.client.call(ctx, sess, request{
		method: http.MethodPost,
		path:   "change-password",
		body: map[string]string{
			"id":           userID.String(),
			"new_password": newPassword,
		},
	})
	return err
}

func (g *AuthGateway) ForgotPassword(ctx context.Context, email string) error {
	_, err := g.client.do(ctx, request{
		method: http.MethodPost,
		path:   "forgot-password",
		body:   map[string]string{"email": email},
	})
	return err
}

var (
	_ repositories.UserRepositoryFacade = (*UserRepository)(nil)
	_ repositories.AuthGateway          = (*AuthGateway)(nil)
)
