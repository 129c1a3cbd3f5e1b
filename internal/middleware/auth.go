package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"nazzy-pedidos/internal/service/auth"
)

const adminIDKey = "adminID"

// AdminRequired guards the administrative routes with a bearer token issued
// by the admin token exchange.
func AdminRequired(adminAuth auth.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return Unauthorized("Missing or malformed authorization header")
		}

		claims, err := adminAuth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return Unauthorized("Invalid or expired token")
		}

		c.Locals(adminIDKey, claims.AdminID)
		return c.Next()
	}
}

func GetAdminID(c *fiber.Ctx) string {
	id, _ := c.Locals(adminIDKey).(string)
	return id
}
