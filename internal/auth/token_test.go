package auth_test

import (
	"testing"
	"time"

	"github.com/dangerclosesec/thinknest/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123"

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager(secret, time.Hour)

	token, err := tm.Generate("ops@example.com")
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}

func TestTokenRejected(t *testing.T) {
	tm := auth.NewTokenManager(secret, time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := auth.NewTokenManager("another-secret-value", time.Hour).Generate("x")
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := auth.NewTokenManager(secret, -time.Minute).Generate("x")
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("non admin role", func(t *testing.T) {
		claims := auth.Claims{
			Role: "editor",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "thinknest",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.Validate("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
