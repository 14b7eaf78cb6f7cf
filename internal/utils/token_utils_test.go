package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	expires := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := GenerateJWT("session-1", "secret", expires, "ads-dashboard")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "session-1", claims.Subject)
	assert.Equal(t, "ads-dashboard", claims.Issuer)
	assert.True(t, claims.ExpiresAt.Time.Equal(expires))

	_, err = jwt.ParseWithClaims(signed, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseJWTSubject(t *testing.T) {
	signed, err := GenerateJWT("session-2", "secret", time.Now().Add(time.Hour), "ads-dashboard")
	require.NoError(t, err)

	subject, err := ParseJWTSubject(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, "session-2", subject)

	_, err = ParseJWTSubject(signed, "other")
	assert.Error(t, err)

	expired, err := GenerateJWT("session-3", "secret", time.Now().Add(-time.Minute), "ads-dashboard")
	require.NoError(t, err)
	_, err = ParseJWTSubject(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
