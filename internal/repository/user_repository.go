package repository

import (
	"context"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/store"
)

type UserRepository interface {
	List(ctx context.Context) []domain.User
	GetByPhone(ctx context.Context, phone string) *domain.User
	ExistsByPhone(ctx context.Context, phone string) bool
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
}

type userRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) List(ctx context.Context) []domain.User {
	return store.Load(ctx, r.store, store.KeyUsers, []domain.User{})
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) *domain.User {
	for _, u := range r.List(ctx) {
		if u.Phone == phone {
			user := u
			return &user
		}
	}
	return nil
}

func (r *userRepository) ExistsByPhone(ctx context.Context, phone string) bool {
	return r.GetByPhone(ctx, phone) != nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	users := r.List(ctx)
	users = append(users, *user)
	return store.Save(ctx, r.store, store.KeyUsers, users)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	users := r.List(ctx)
	for i := range users {
		if users[i].Phone == user.Phone {
			users[i] = *user
			break
		}
	}
	return store.Save(ctx, r.store, store.KeyUsers, users)
}
