package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/middleware"
	"nazzy-pedidos/internal/service/auth"
	"nazzy-pedidos/internal/service/media"
	"nazzy-pedidos/internal/service/notification"
	"nazzy-pedidos/internal/service/order"
	"nazzy-pedidos/internal/service/settings"
	syncsvc "nazzy-pedidos/internal/service/sync"
)

// AdminHandler is the administrative collaborator's surface: it pushes
// notifications, edits site settings, moves orders along and uploads assets.
type AdminHandler struct {
	adminAuth       auth.AdminService
	notifService    notification.Service
	settingsService settings.Service
	orderService    order.Service
	mediaService    media.Service
	syncService     syncsvc.Service
}

func NewAdminHandler(adminAuth auth.AdminService, notifService notification.Service, settingsService settings.Service, orderService order.Service, mediaService media.Service, syncService syncsvc.Service) *AdminHandler {
	return &AdminHandler{
		adminAuth:       adminAuth,
		notifService:    notifService,
		settingsService: settingsService,
		orderService:    orderService,
		mediaService:    mediaService,
		syncService:     syncService,
	}
}

type adminTokenInput struct {
	AdminID string `json:"adminId"`
	Key     string `json:"key"`
}

func (h *AdminHandler) Token(c *fiber.Ctx) error {
	var input adminTokenInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	token, err := h.adminAuth.IssueToken(input.AdminID, input.Key)
	switch {
	case errors.Is(err, auth.ErrInvalidAdminKey):
		return middleware.Unauthorized("Invalid admin key")
	case errors.Is(err, auth.ErrUnknownAdmin):
		return middleware.Unauthorized("Unknown admin id")
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

// PushNotification appends a well-formed notification to the shared
// collection. This is the panel's single entry point into the core.
func (h *AdminHandler) PushNotification(c *fiber.Ctx) error {
	var notif domain.Notification
	if err := c.BodyParser(&notif); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if notif.Title == "" {
		return middleware.BadRequest("Title is required")
	}

	created, err := h.notifService.Push(c.Context(), notif)
	if err != nil {
		return err
	}
	h.syncService.Refresh(c.Context())

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var input domain.UpdateSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.settingsService.Update(c.Context(), input)
	if err != nil {
		return err
	}
	h.syncService.Refresh(c.Context())

	return c.Status(fiber.StatusOK).JSON(updated)
}

type transitionInput struct {
	Status domain.OrderStatus `json:"status"`
}

func (h *AdminHandler) TransitionOrder(c *fiber.Ctx) error {
	var input transitionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.orderService.Transition(c.Context(), c.Params("id"), input.Status)
	switch {
	case errors.Is(err, order.ErrBadStatus):
		return middleware.BadRequest("Invalid order status")
	case errors.Is(err, order.ErrOrderNotFound):
		return middleware.NotFound("Order not found")
	case err != nil:
		return err
	}
	h.syncService.Refresh(c.Context())

	return c.Status(fiber.StatusOK).JSON(updated)
}

// UploadAsset stores a logo or background image and returns its public URL
// for use in the settings record.
func (h *AdminHandler) UploadAsset(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("Missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unreadable file")
	}
	defer file.Close()

	kind := c.Query("kind", "assets")
	url, err := h.mediaService.Upload(c.Context(), kind, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, file)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
