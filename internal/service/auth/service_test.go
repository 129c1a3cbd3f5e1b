package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/repository"
	"nazzy-pedidos/internal/service/auth"
	"nazzy-pedidos/internal/store"
)

func newService(t *testing.T) (auth.Service, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories(store.NewHub().Tab())
	return auth.NewService(repos.User, repos.Session), repos
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, repos := newService(t)

	input := domain.CreateUserInput{Nickname: "ana", Phone: "555", Password: "pw"}

	t.Run("creates the user and logs it in", func(t *testing.T) {
		user, err := svc.Register(ctx, input)
		assert.NoError(t, err)
		if assert.NotNil(t, user) {
			assert.NotEmpty(t, user.ID)
			assert.NotZero(t, user.Created)
		}

		sess := svc.CurrentSession(ctx)
		if assert.NotNil(t, sess) {
			assert.Equal(t, "555", sess.Phone)
			assert.Equal(t, "ana", sess.Nickname)
		}
	})

	t.Run("rejects a duplicate phone", func(t *testing.T) {
		_, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, auth.ErrPhoneTaken)
		assert.Len(t, repos.User.List(ctx), 1)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, domain.CreateUserInput{Phone: "1"})
		assert.ErrorIs(t, err, auth.ErrMissingFields)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.Register(ctx, domain.CreateUserInput{Nickname: "ana", Phone: "555", Password: "pw"})
	assert.NoError(t, err)
	assert.NoError(t, svc.Logout(ctx))

	t.Run("unknown phone fails and creates no session", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginInput{Phone: "111", Password: "pw"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, svc.CurrentSession(ctx))
	})

	t.Run("wrong password fails and creates no session", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginInput{Phone: "555", Password: "nope"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Nil(t, svc.CurrentSession(ctx))
	})

	t.Run("correct credentials set the session", func(t *testing.T) {
		user, err := svc.Login(ctx, domain.LoginInput{Phone: "555", Password: "pw"})
		assert.NoError(t, err)
		assert.NotNil(t, user)

		sess := svc.CurrentSession(ctx)
		if assert.NotNil(t, sess) {
			assert.Equal(t, "555", sess.Phone)
		}
	})
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.Register(ctx, domain.CreateUserInput{Nickname: "ana", Phone: "555", Password: "pw"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(ctx))
	assert.Nil(t, svc.CurrentSession(ctx))
	assert.Nil(t, svc.CurrentUser(ctx))
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	svc, repos := newService(t)

	t.Run("anonymous resolves to nil", func(t *testing.T) {
		assert.Nil(t, svc.CurrentUser(ctx))
	})

	t.Run("session resolves to the matching user", func(t *testing.T) {
		_, err := svc.Register(ctx, domain.CreateUserInput{Nickname: "ana", Phone: "555", Password: "pw"})
		assert.NoError(t, err)

		user := svc.CurrentUser(ctx)
		if assert.NotNil(t, user) {
			assert.Equal(t, "555", user.Phone)
		}
	})

	t.Run("stale session degrades to nil", func(t *testing.T) {
		assert.NoError(t, repos.Session.Set(ctx, &domain.Session{Phone: "gone"}))
		assert.Nil(t, svc.CurrentUser(ctx))
	})
}
