//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"groundio/internal/domain/user"
	"groundio/internal/pkg/config"
	"groundio/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens signed with the same secret as the app under test.
type JWTHelper struct {
	cfg     config.JWTConfig
	refresh time.Duration
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	access, err := time.ParseDuration(cfg.AccessTokenDuration)
	if err != nil {
		panic(err)
	}
	refresh, err := time.ParseDuration(cfg.RefreshTokenDuration)
	if err != nil {
		panic(err)
	}
	return &JWTHelper{cfg: cfg, refresh: refresh, service: jwt.NewService(cfg.Secret, access, refresh)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	shortLived := jwt.NewService(h.cfg.Secret, time.Millisecond, h.refresh)
	token, err := shortLived.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
