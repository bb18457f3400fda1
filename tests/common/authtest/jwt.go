//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/pkg/config"
	"yacht-charter/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()
	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)
	return &JWTHelper{service: jwt.NewService(cfg.Secret, duration)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	past := h.service.WithNow(func() time.Time { return time.Now().Add(-48 * time.Hour) })
	token, err := past.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
