package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"

	"nazzy-pedidos/internal/config"
	"nazzy-pedidos/internal/handler"
	"nazzy-pedidos/internal/middleware"
	"nazzy-pedidos/internal/pkg/i18n"
	"nazzy-pedidos/internal/repository"
	"nazzy-pedidos/internal/service"
	"nazzy-pedidos/internal/store"
	"nazzy-pedidos/internal/view"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if err := i18n.LoadTranslations(cfg.LocalePath); err != nil {
		log.Printf("Warning: using built-in messages only: %v", err)
	}

	st, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open shared store: %v", err)
	}
	defer st.Close()

	var minioClient *minio.Client
	if cfg.MinIOEndpoint != "" {
		minioClient, err = config.NewMinIOClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to connect to MinIO: %v (asset upload will not work)", err)
		}
	}

	repos := repository.NewRepositories(st)
	if err := repos.Admin.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed admins: %v", err)
	}

	doc := view.NewDocument()
	doc.AddBrand("Nazzy")
	doc.AddSidebar()

	services := service.NewServices(repos, st, doc, minioClient, cfg)
	handlers := handler.NewHandlers(services, cfg.Locale)

	// Initial render, then keep following what other tabs write.
	services.Sync.Refresh(context.Background())
	stop := services.Sync.Start()
	defer stop()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		client, err := config.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client), nil
	case "postgres":
		db, err := config.NewPostgresDB(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewPostgresStore(db, cfg.DatabaseURL)
	default:
		return store.NewHub().Tab(), nil
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/me", h.Auth.Me)
	auth.Post("/me/avatar", h.Auth.UploadAvatar)

	notifications := v1.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Post("/:id/open", h.Notification.Open)
	notifications.Delete("/:id", h.Notification.Remove)

	orders := v1.Group("/orders")
	orders.Post("/", h.Order.Create)
	orders.Get("/", h.Order.ListMine)

	v1.Get("/view", h.View.Get)

	admin := v1.Group("/admin")
	admin.Post("/token", h.Admin.Token)

	guarded := admin.Group("", middleware.AdminRequired(services.AdminAuth))
	guarded.Post("/notifications", h.Admin.PushNotification)
	guarded.Put("/settings", h.Admin.UpdateSettings)
	guarded.Patch("/orders/:id/status", h.Admin.TransitionOrder)
	guarded.Post("/assets", h.Admin.UploadAsset)
}
