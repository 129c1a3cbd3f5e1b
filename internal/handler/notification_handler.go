package handler

import (
	"github.com/gofiber/fiber/v2"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/pkg/i18n"
	"nazzy-pedidos/internal/service/notification"
	syncsvc "nazzy-pedidos/internal/service/sync"
)

type NotificationHandler struct {
	notifService notification.Service
	syncService  syncsvc.Service
	locale       string
}

func NewNotificationHandler(notifService notification.Service, syncService syncsvc.Service, locale string) *NotificationHandler {
	return &NotificationHandler{notifService: notifService, syncService: syncService, locale: locale}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	visible := h.notifService.VisibleNotifications(c.Context())
	payload := fiber.Map{"notifications": visible}
	if len(visible) == 0 {
		payload["emptyMessage"] = i18n.Translate(h.locale, "notification.none")
	}
	return c.Status(fiber.StatusOK).JSON(payload)
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": h.notifService.UnreadCount(c.Context()),
	})
}

// Open dispatches a notification the user clicked. The writer tab never
// hears its own store broadcast, so the local view is refreshed explicitly.
func (h *NotificationHandler) Open(c *fiber.Ctx) error {
	action, err := h.notifService.Dispatch(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	h.syncService.Refresh(c.Context())

	if action == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"action": nil})
	}
	h.localize(action)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"action": action})
}

func (h *NotificationHandler) Remove(c *fiber.Ctx) error {
	if err := h.notifService.Remove(c.Context(), c.Params("id")); err != nil {
		return err
	}
	h.syncService.Refresh(c.Context())
	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *NotificationHandler) localize(action *domain.Action) {
	switch action.Kind {
	case domain.ActionOpenChat:
		action.Message = i18n.Translate(h.locale, "dispatch.open_chat")
	case domain.ActionConfirmReorder:
		action.Prompt = i18n.Translate(h.locale, "dispatch.reorder_prompt")
	case domain.ActionOpenDeliveries:
		action.Message = i18n.Translate(h.locale, "dispatch.open_deliveries")
	case domain.ActionShowMessage:
		action.Message = action.Title + "\n" + action.Body
	}
}
