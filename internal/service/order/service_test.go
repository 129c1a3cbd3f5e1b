package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/repository"
	"nazzy-pedidos/internal/service/notification"
	"nazzy-pedidos/internal/service/order"
	"nazzy-pedidos/internal/store"
)

func newService(t *testing.T) (order.Service, notification.Service, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories(store.NewHub().Tab())
	assert.NoError(t, repos.Admin.Seed(context.Background()))

	notifSvc := notification.NewService(repos.Notification, repos.Session)
	return order.NewService(repos.Order, repos.Admin, repos.Session, notifSvc), notifSvc, repos
}

func login(t *testing.T, repos *repository.Repositories, phone string) {
	t.Helper()
	assert.NoError(t, repos.Session.Set(context.Background(), &domain.Session{Phone: phone, Nickname: "ana"}))
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	svc, _, repos := newService(t)

	t.Run("requires a session", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateOrderInput{AdminID: "mica", Item: "bolo"})
		assert.ErrorIs(t, err, order.ErrNotLoggedIn)
	})

	t.Run("requires a known admin", func(t *testing.T) {
		login(t, repos, "555")
		_, err := svc.Create(ctx, domain.CreateOrderInput{AdminID: "nobody", Item: "bolo"})
		assert.ErrorIs(t, err, order.ErrUnknownAdmin)
	})

	t.Run("persists a pending order for the session phone", func(t *testing.T) {
		login(t, repos, "555")
		created, err := svc.Create(ctx, domain.CreateOrderInput{AdminID: "mica", Item: "bolo"})
		assert.NoError(t, err)
		if assert.NotNil(t, created) {
			assert.Equal(t, "555", created.Phone)
			assert.Equal(t, domain.OrderPending, created.Status)
		}
		assert.Len(t, svc.ListMine(ctx), 1)
	})
}

func TestTransitionPushesTargetedNotification(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		status   domain.OrderStatus
		wantType domain.NotificationType
	}{
		{domain.OrderAccepted, domain.NotifOrderAccepted},
		{domain.OrderRejected, domain.NotifOrderRejected},
		{domain.OrderDelivered, domain.NotifOrderDelivered},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			svc, notifSvc, repos := newService(t)
			login(t, repos, "555")

			created, err := svc.Create(ctx, domain.CreateOrderInput{AdminID: "mica", Item: "bolo"})
			assert.NoError(t, err)

			updated, err := svc.Transition(ctx, created.ID, tc.status)
			assert.NoError(t, err)
			assert.Equal(t, tc.status, updated.Status)

			visible := notifSvc.VisibleNotifications(ctx)
			if assert.Len(t, visible, 1) {
				assert.Equal(t, tc.wantType, visible[0].Type)
				if assert.NotNil(t, visible[0].To) {
					assert.Equal(t, "555", *visible[0].To)
				}
			}
		})
	}

	t.Run("unknown order", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.Transition(ctx, "ghost", domain.OrderAccepted)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc, _, _ := newService(t)
		_, err := svc.Transition(ctx, "any", domain.OrderStatus("weird"))
		assert.ErrorIs(t, err, order.ErrBadStatus)
	})
}
