package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/repository"
	"nazzy-pedidos/internal/store"
)

func TestAdminSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds exactly the default admins on first run", func(t *testing.T) {
		tab := store.NewHub().Tab()
		repo := repository.NewAdminRepository(tab)

		assert.NoError(t, repo.Seed(ctx))

		admins := repo.List(ctx)
		assert.Len(t, admins, 8)
		ids := make([]string, 0, len(admins))
		for _, a := range admins {
			ids = append(ids, a.ID)
		}
		assert.Equal(t, []string{"mica", "rav", "maria", "joao", "lucia", "pedro", "sofia", "bruno"}, ids)
	})

	t.Run("is not re-applied once seeded", func(t *testing.T) {
		tab := store.NewHub().Tab()
		repo := repository.NewAdminRepository(tab)

		assert.NoError(t, repo.Seed(ctx))
		assert.NoError(t, repo.Seed(ctx))
		assert.Len(t, repo.List(ctx), 8)
	})

	t.Run("any existing value suppresses the seed", func(t *testing.T) {
		tab := store.NewHub().Tab()
		assert.NoError(t, store.Save(ctx, tab, store.KeyAdmins, []domain.Admin{}))

		repo := repository.NewAdminRepository(tab)
		assert.NoError(t, repo.Seed(ctx))
		assert.Empty(t, repo.List(ctx))
	})
}

func TestAdminGetByID(t *testing.T) {
	ctx := context.Background()
	tab := store.NewHub().Tab()
	repo := repository.NewAdminRepository(tab)
	assert.NoError(t, repo.Seed(ctx))

	mica := repo.GetByID(ctx, "mica")
	if assert.NotNil(t, mica) {
		assert.Equal(t, "Mica", mica.Name)
		assert.Equal(t, "Dona", mica.Role)
	}
	assert.Nil(t, repo.GetByID(ctx, "nobody"))
}
