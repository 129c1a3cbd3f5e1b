package service

import (
	"github.com/minio/minio-go/v7"

	"nazzy-pedidos/internal/config"
	"nazzy-pedidos/internal/repository"
	"nazzy-pedidos/internal/service/auth"
	"nazzy-pedidos/internal/service/media"
	"nazzy-pedidos/internal/service/notification"
	"nazzy-pedidos/internal/service/order"
	"nazzy-pedidos/internal/service/settings"
	syncsvc "nazzy-pedidos/internal/service/sync"
	"nazzy-pedidos/internal/store"
	"nazzy-pedidos/internal/view"
)

type Services struct {
	Auth         auth.Service
	AdminAuth    auth.AdminService
	Notification notification.Service
	Settings     settings.Service
	Order        order.Service
	Media        media.Service
	Sync         syncsvc.Service
}

func NewServices(repos *repository.Repositories, st store.Store, doc *view.Document, minioClient *minio.Client, cfg *config.Config) *Services {
	authService := auth.NewService(repos.User, repos.Session)
	adminAuthService := auth.NewAdminService(repos.Admin, cfg)
	notificationService := notification.NewService(repos.Notification, repos.Session)
	settingsService := settings.NewService(repos.Settings)
	orderService := order.NewService(repos.Order, repos.Admin, repos.Session, notificationService)
	mediaService := media.NewService(minioClient, cfg)
	syncService := syncsvc.NewService(st, settingsService, notificationService, doc)

	return &Services{
		Auth:         authService,
		AdminAuth:    adminAuthService,
		Notification: notificationService,
		Settings:     settingsService,
		Order:        orderService,
		Media:        mediaService,
		Sync:         syncService,
	}
}
