package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/repository"
	"nazzy-pedidos/internal/service/notification"
)

var (
	ErrNotLoggedIn   = errors.New("no active session")
	ErrUnknownAdmin  = errors.New("unknown admin")
	ErrOrderNotFound = errors.New("order not found")
	ErrBadStatus     = errors.New("invalid order status")
)

type Service interface {
	Create(ctx context.Context, input domain.CreateOrderInput) (*domain.Order, error)
	ListMine(ctx context.Context) []domain.Order
	// Transition moves an order to a new status and pushes the matching
	// notification targeted at the order's owner.
	Transition(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type service struct {
	orderRepo   repository.OrderRepository
	adminRepo   repository.AdminRepository
	sessionRepo repository.SessionRepository
	notifSvc    notification.Service
}

func NewService(orderRepo repository.OrderRepository, adminRepo repository.AdminRepository, sessionRepo repository.SessionRepository, notifSvc notification.Service) Service {
	return &service{orderRepo: orderRepo, adminRepo: adminRepo, sessionRepo: sessionRepo, notifSvc: notifSvc}
}

func (s *service) Create(ctx context.Context, input domain.CreateOrderInput) (*domain.Order, error) {
	sess := s.sessionRepo.Get(ctx)
	if sess == nil {
		return nil, ErrNotLoggedIn
	}
	if s.adminRepo.GetByID(ctx, input.AdminID) == nil {
		return nil, ErrUnknownAdmin
	}

	order := domain.Order{
		ID:      uuid.New().String(),
		Phone:   sess.Phone,
		AdminID: input.AdminID,
		Item:    input.Item,
		Status:  domain.OrderPending,
		Created: time.Now().UnixMilli(),
	}
	if err := s.orderRepo.Append(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *service) ListMine(ctx context.Context) []domain.Order {
	sess := s.sessionRepo.Get(ctx)
	if sess == nil {
		return []domain.Order{}
	}
	return s.orderRepo.ListByPhone(ctx, sess.Phone)
}

func (s *service) Transition(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, ErrBadStatus
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if notif, ok := notificationFor(*order); ok {
		if _, err := s.notifSvc.Push(ctx, notif); err != nil {
			return nil, err
		}
	}
	return order, nil
}

func notificationFor(order domain.Order) (domain.Notification, bool) {
	var (
		notifType domain.NotificationType
		title     string
	)
	switch order.Status {
	case domain.OrderAccepted:
		notifType, title = domain.NotifOrderAccepted, "Pedido aceito"
	case domain.OrderRejected:
		notifType, title = domain.NotifOrderRejected, "Pedido recusado"
	case domain.OrderDelivered:
		notifType, title = domain.NotifOrderDelivered, "Pedido entregue"
	default:
		return domain.Notification{}, false
	}

	to := order.Phone
	return domain.Notification{
		Title: title,
		Body:  fmt.Sprintf("Seu pedido %q mudou de status.", order.Item),
		Type:  notifType,
		To:    &to,
	}, true
}
