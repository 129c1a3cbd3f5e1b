package repository

import (
	"context"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/store"
)

type OrderRepository interface {
	List(ctx context.Context) []domain.Order
	ListByPhone(ctx context.Context, phone string) []domain.Order
	GetByID(ctx context.Context, id string) *domain.Order
	Append(ctx context.Context, order domain.Order) error
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type orderRepository struct {
	store store.Store
}

func NewOrderRepository(s store.Store) OrderRepository {
	return &orderRepository{store: s}
}

func (r *orderRepository) List(ctx context.Context) []domain.Order {
	return store.Load(ctx, r.store, store.KeyOrders, []domain.Order{})
}

func (r *orderRepository) ListByPhone(ctx context.Context, phone string) []domain.Order {
	all := r.List(ctx)
	mine := make([]domain.Order, 0, len(all))
	for _, o := range all {
		if o.Phone == phone {
			mine = append(mine, o)
		}
	}
	return mine
}

func (r *orderRepository) GetByID(ctx context.Context, id string) *domain.Order {
	for _, o := range r.List(ctx) {
		if o.ID == id {
			order := o
			return &order
		}
	}
	return nil
}

func (r *orderRepository) Append(ctx context.Context, order domain.Order) error {
	all := r.List(ctx)
	all = append(all, order)
	return store.Save(ctx, r.store, store.KeyOrders, all)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	all := r.List(ctx)
	for i := range all {
		if all[i].ID == id {
			all[i].Status = status
			if err := store.Save(ctx, r.store, store.KeyOrders, all); err != nil {
				return nil, err
			}
			order := all[i]
			return &order, nil
		}
	}
	return nil, nil
}
