package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/middleware"
	"nazzy-pedidos/internal/pkg/i18n"
	"nazzy-pedidos/internal/service/auth"
	"nazzy-pedidos/internal/service/media"
)

type AuthHandler struct {
	authService  auth.Service
	mediaService media.Service
	locale       string
}

func NewAuthHandler(authService auth.Service, mediaService media.Service, locale string) *AuthHandler {
	return &AuthHandler{authService: authService, mediaService: mediaService, locale: locale}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, err := h.authService.Register(c.Context(), input)
	switch {
	case errors.Is(err, auth.ErrPhoneTaken):
		return middleware.Conflict(i18n.Translate(h.locale, "auth.phone_taken"))
	case errors.Is(err, auth.ErrMissingFields):
		return middleware.BadRequest(err.Error())
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":    user,
		"message": i18n.Translate(h.locale, "auth.account_created"),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, err := h.authService.Login(c.Context(), input)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return middleware.Unauthorized(i18n.Translate(h.locale, "auth.invalid_credentials"))
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": user})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Context()); err != nil {
		return err
	}
	return c.Status(fiber.StatusNoContent).SendString("")
}

// Me returns the resolved session and user. Anonymous viewers get nulls, not
// an error.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"session": h.authService.CurrentSession(c.Context()),
		"user":    h.authService.CurrentUser(c.Context()),
	})
}

func (h *AuthHandler) UploadAvatar(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("Missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unreadable file")
	}
	defer file.Close()

	url, err := h.mediaService.Upload(c.Context(), "avatars", fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, file)
	if err != nil {
		return err
	}

	user, err := h.authService.SetAvatar(c.Context(), url)
	if err != nil {
		return middleware.Unauthorized(i18n.Translate(h.locale, "auth.invalid_credentials"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": user})
}
