package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/middleware"
	"nazzy-pedidos/internal/service/order"
)

type OrderHandler struct {
	orderService order.Service
}

func NewOrderHandler(orderService order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.orderService.Create(c.Context(), input)
	switch {
	case errors.Is(err, order.ErrNotLoggedIn):
		return middleware.Unauthorized("Login required")
	case errors.Is(err, order.ErrUnknownAdmin):
		return middleware.BadRequest("Unknown admin")
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"orders": h.orderService.ListMine(c.Context()),
	})
}
