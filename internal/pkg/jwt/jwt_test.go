//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/pkg/errs"
	"yacht-charter/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleOwner)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	userID := uuid.New()

	t.Run("expired", func(t *testing.T) {
		past := svc.WithNow(func() time.Time { return time.Now().Add(-2 * time.Hour) })
		token, err := past.GenerateToken(userID, user.RoleClient)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.True(t, errs.Is(err, jwt.ErrExpiredToken))
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(userID, user.RoleClient)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})
}
