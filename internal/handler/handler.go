package handler

import "nazzy-pedidos/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	Notification *NotificationHandler
	Order        *OrderHandler
	View         *ViewHandler
	Admin        *AdminHandler
}

func NewHandlers(services *service.Services, locale string) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth, services.Media, locale),
		Notification: NewNotificationHandler(services.Notification, services.Sync, locale),
		Order:        NewOrderHandler(services.Order),
		View:         NewViewHandler(services.Sync),
		Admin:        NewAdminHandler(services.AdminAuth, services.Notification, services.Settings, services.Order, services.Media, services.Sync),
	}
}
