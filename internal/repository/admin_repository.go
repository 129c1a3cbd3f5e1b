package repository

import (
	"context"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/store"
)

type AdminRepository interface {
	List(ctx context.Context) []domain.Admin
	GetByID(ctx context.Context, id string) *domain.Admin
	// Seed writes the default admin list, but only when the key is entirely
	// absent. Any existing value, even an empty list, suppresses it: the
	// collection belongs to the admin panel once it exists.
	Seed(ctx context.Context) error
}

type adminRepository struct {
	store store.Store
}

func NewAdminRepository(s store.Store) AdminRepository {
	return &adminRepository{store: s}
}

func (r *adminRepository) List(ctx context.Context) []domain.Admin {
	return store.Load(ctx, r.store, store.KeyAdmins, []domain.Admin{})
}

func (r *adminRepository) GetByID(ctx context.Context, id string) *domain.Admin {
	for _, a := range r.List(ctx) {
		if a.ID == id {
			admin := a
			return &admin
		}
	}
	return nil
}

func (r *adminRepository) Seed(ctx context.Context) error {
	if _, ok, err := r.store.Get(ctx, store.KeyAdmins); err != nil || ok {
		return err
	}
	return store.Save(ctx, r.store, store.KeyAdmins, domain.DefaultAdmins())
}
