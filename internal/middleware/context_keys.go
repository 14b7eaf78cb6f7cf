package middleware

import (
	"context"

	"github.com/SscSPs/ads_resale_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// sessionKey is the key used to store the authenticated session in the request context.
// Using a custom type prevents collisions.
const sessionKey = contextKey("session")

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromCtx retrieves the session stored by the auth middleware.
func SessionFromCtx(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*domain.Session)
	return sess, ok && sess != nil
}

// GetSessionFromContext retrieves the authenticated session for a request.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	if val, exists := c.Get(string(sessionKey)); exists {
		if sess, ok := val.(*domain.Session); ok && sess != nil {
			return sess, true
		}
	}
	// check in the request context as well
	return SessionFromCtx(c.Request.Context())
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	sess, ok := GetSessionFromContext(c)
	if !ok {
		return "", false
	}
	return sess.User.ID.String(), true
}
