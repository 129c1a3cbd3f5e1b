package repository

import (
	"context"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/store"
)

// SessionRepository manages the single shared session record. Nil means
// anonymous. Setting it overwrites whatever any other tab stored before
// (last login wins).
type SessionRepository interface {
	Get(ctx context.Context) *domain.Session
	Set(ctx context.Context, sess *domain.Session) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	store store.Store
}

func NewSessionRepository(s store.Store) SessionRepository {
	return &sessionRepository{store: s}
}

func (r *sessionRepository) Get(ctx context.Context) *domain.Session {
	return store.Load[*domain.Session](ctx, r.store, store.KeySession, nil)
}

func (r *sessionRepository) Set(ctx context.Context, sess *domain.Session) error {
	return store.Save(ctx, r.store, store.KeySession, sess)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeySession)
}
