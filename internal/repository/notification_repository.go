package repository

import (
	"context"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/store"
)

type NotificationRepository interface {
	List(ctx context.Context) []domain.Notification
	Append(ctx context.Context, notif domain.Notification) error
	// MarkRead flips read to true for the matching id. Unknown ids are a
	// no-op; read never transitions back to false.
	MarkRead(ctx context.Context, id string) error
	// Remove deletes the matching id and is a no-op when absent.
	Remove(ctx context.Context, id string) error
}

type notificationRepository struct {
	store store.Store
}

func NewNotificationRepository(s store.Store) NotificationRepository {
	return &notificationRepository{store: s}
}

func (r *notificationRepository) List(ctx context.Context) []domain.Notification {
	return store.Load(ctx, r.store, store.KeyNotifications, []domain.Notification{})
}

func (r *notificationRepository) Append(ctx context.Context, notif domain.Notification) error {
	all := r.List(ctx)
	all = append(all, notif)
	return store.Save(ctx, r.store, store.KeyNotifications, all)
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	all := r.List(ctx)
	found := false
	for i := range all {
		if all[i].ID == id {
			all[i].Read = true
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	return store.Save(ctx, r.store, store.KeyNotifications, all)
}

func (r *notificationRepository) Remove(ctx context.Context, id string) error {
	all := r.List(ctx)
	kept := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return store.Save(ctx, r.store, store.KeyNotifications, kept)
}
