package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nazzy-pedidos/internal/config"
	"nazzy-pedidos/internal/repository"
	"nazzy-pedidos/internal/service/auth"
	"nazzy-pedidos/internal/store"
)

func newAdminService(t *testing.T) auth.AdminService {
	t.Helper()
	repos := repository.NewRepositories(store.NewHub().Tab())
	assert.NoError(t, repos.Admin.Seed(context.Background()))

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		AdminKey:         "panel-key",
		AdminTokenExpiry: time.Hour,
	}
	return auth.NewAdminService(repos.Admin, cfg)
}

func TestAdminTokenRoundTrip(t *testing.T) {
	svc := newAdminService(t)

	token, err := svc.IssueToken("mica", "panel-key")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	if assert.NotNil(t, claims) {
		assert.Equal(t, "mica", claims.AdminID)
	}
}

func TestAdminTokenRejections(t *testing.T) {
	svc := newAdminService(t)

	t.Run("wrong key", func(t *testing.T) {
		_, err := svc.IssueToken("mica", "wrong")
		assert.ErrorIs(t, err, auth.ErrInvalidAdminKey)
	})

	t.Run("unknown admin", func(t *testing.T) {
		_, err := svc.IssueToken("nobody", "panel-key")
		assert.ErrorIs(t, err, auth.ErrUnknownAdmin)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
