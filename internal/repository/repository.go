package repository

import (
	"nazzy-pedidos/internal/store"
)

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Notification NotificationRepository
	Settings     SettingsRepository
	Admin        AdminRepository
	Order        OrderRepository
}

func NewRepositories(s store.Store) *Repositories {
	return &Repositories{
		User:         NewUserRepository(s),
		Session:      NewSessionRepository(s),
		Notification: NewNotificationRepository(s),
		Settings:     NewSettingsRepository(s),
		Admin:        NewAdminRepository(s),
		Order:        NewOrderRepository(s),
	}
}
