package middlewares

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware trusts the identity the hosted auth proxy injects upstream:
// X-User-ID carries the authenticated user's numeric id. Authentication
// itself is the proxy's job; requests arriving without an identity are
// rejected.
func AuthMiddleware(c *fiber.Ctx) error {
	raw := c.Get("X-User-ID")
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid identity"})
	}
	c.Locals("userID", uint(id))
	return c.Next()
}

// UserID pulls the authenticated user id out of the request locals.
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok && id != 0
}
