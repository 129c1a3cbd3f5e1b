// Package sync keeps one tab's document surface consistent with the shared
// store. External writes arrive through the store subscription; the store
// never echoes a tab's own writes back, so local mutations must call Refresh
// explicitly.
package sync

import (
	"context"

	"nazzy-pedidos/internal/service/notification"
	"nazzy-pedidos/internal/service/settings"
	"nazzy-pedidos/internal/store"
	"nazzy-pedidos/internal/view"
)

type Service interface {
	// Start subscribes to the store broadcast and returns a stop function.
	Start() (stop func())
	// Refresh re-applies settings and re-renders the feed and badge from the
	// store. Cheap and idempotent, safe to call at any time.
	Refresh(ctx context.Context)
	Document() *view.Document
}

type service struct {
	store       store.Store
	settingsSvc settings.Service
	notifSvc    notification.Service
	doc         *view.Document
}

func NewService(s store.Store, settingsSvc settings.Service, notifSvc notification.Service, doc *view.Document) Service {
	return &service{store: s, settingsSvc: settingsSvc, notifSvc: notifSvc, doc: doc}
}

func (s *service) Start() func() {
	return s.store.Subscribe(func(ev store.Event) {
		// Only the key matters; both downstream operations re-read the
		// store themselves.
		if ev.Key == store.KeyNotifications || ev.Key == store.KeySettings {
			s.Refresh(context.Background())
		}
	})
}

func (s *service) Refresh(ctx context.Context) {
	s.settingsSvc.Apply(ctx, s.doc)

	visible := s.notifSvc.VisibleNotifications(ctx)
	rows := make([]view.Row, 0, len(visible))
	unread := 0
	for _, n := range visible {
		if !n.Read {
			unread++
		}
		rows = append(rows, view.Row{
			ID:     n.ID,
			Title:  n.Title,
			Body:   n.Body,
			Type:   string(n.Type),
			Unread: !n.Read,
		})
	}
	s.doc.SetFeed(rows)
	s.doc.SetBadge(unread)
}

func (s *service) Document() *view.Document {
	return s.doc
}
