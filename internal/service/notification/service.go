package notification

import (
	"context"

	"github.com/google/uuid"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/repository"
)

// OrderCreationTarget is where an affirmative reorder confirmation navigates.
const OrderCreationTarget = "/orders/new"

// Service owns the notification collection. Every derived value is computed
// fresh from the store; the store is authoritative and nothing is cached.
type Service interface {
	VisibleNotifications(ctx context.Context) []domain.Notification
	UnreadCount(ctx context.Context) int
	Push(ctx context.Context, notif domain.Notification) (domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	Dispatch(ctx context.Context, id string) (*domain.Action, error)
}

type service struct {
	notifRepo   repository.NotificationRepository
	sessionRepo repository.SessionRepository
}

func NewService(notifRepo repository.NotificationRepository, sessionRepo repository.SessionRepository) Service {
	return &service{notifRepo: notifRepo, sessionRepo: sessionRepo}
}

// VisibleNotifications filters the collection for the current session:
// broadcasts for everyone, targeted ones only for the matching phone.
// Insertion order is preserved.
func (s *service) VisibleNotifications(ctx context.Context) []domain.Notification {
	sess := s.sessionRepo.Get(ctx)
	all := s.notifRepo.List(ctx)
	visible := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if n.VisibleTo(sess) {
			visible = append(visible, n)
		}
	}
	return visible
}

func (s *service) UnreadCount(ctx context.Context) int {
	count := 0
	for _, n := range s.VisibleNotifications(ctx) {
		if !n.Read {
			count++
		}
	}
	return count
}

// Push appends to the global collection. It is the admin panel's entry point;
// an empty id gets one assigned, a fresh notification always starts unread.
func (s *service) Push(ctx context.Context, notif domain.Notification) (domain.Notification, error) {
	if notif.ID == "" {
		notif.ID = uuid.New().String()
	}
	notif.Read = false
	if err := s.notifRepo.Append(ctx, notif); err != nil {
		return domain.Notification{}, err
	}
	return notif, nil
}

func (s *service) MarkRead(ctx context.Context, id string) error {
	return s.notifRepo.MarkRead(ctx, id)
}

func (s *service) Remove(ctx context.Context, id string) error {
	return s.notifRepo.Remove(ctx, id)
}

// Dispatch handles an opened notification: it marks it read first, then maps
// its type to the action the UI should present. Unknown ids yield a nil
// action, never an error.
func (s *service) Dispatch(ctx context.Context, id string) (*domain.Action, error) {
	var opened *domain.Notification
	for _, n := range s.notifRepo.List(ctx) {
		if n.ID == id {
			opened = &n
			break
		}
	}
	if opened == nil {
		return nil, nil
	}

	if err := s.notifRepo.MarkRead(ctx, id); err != nil {
		return nil, err
	}

	action := &domain.Action{Title: opened.Title, Body: opened.Body}
	switch opened.Type {
	case domain.NotifOrderAccepted:
		action.Kind = domain.ActionOpenChat
	case domain.NotifOrderRejected:
		action.Kind = domain.ActionConfirmReorder
		action.Target = OrderCreationTarget
	case domain.NotifOrderDelivered:
		action.Kind = domain.ActionOpenDeliveries
	default:
		action.Kind = domain.ActionShowMessage
	}
	return action, nil
}
