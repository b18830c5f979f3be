//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"vacation-desk/internal/domain/employee"
	"vacation-desk/internal/pkg/config"
	"vacation-desk/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service() *jwt.Service {
	return jwt.NewService(h.cfg.Secret, h.cfg.Duration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, r employee.Requester) string {
	t.Helper()
	token, err := h.Service().GenerateToken(r)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, r employee.Requester) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, time.Millisecond)
	token, err := service.GenerateToken(r)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
