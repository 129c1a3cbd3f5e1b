package handler

import (
	"github.com/gofiber/fiber/v2"

	syncsvc "nazzy-pedidos/internal/service/sync"
)

type ViewHandler struct {
	syncService syncsvc.Service
}

func NewViewHandler(syncService syncsvc.Service) *ViewHandler {
	return &ViewHandler{syncService: syncService}
}

// Get refreshes and returns this tab's document. Refreshing on read mirrors
// the prototype re-deriving its view on page load and visibility changes.
func (h *ViewHandler) Get(c *fiber.Ctx) error {
	h.syncService.Refresh(c.Context())
	return c.Status(fiber.StatusOK).JSON(h.syncService.Document().Snapshot())
}
