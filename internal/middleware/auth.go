package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired extracts the caller's bearer token and stashes it for the
// handlers, which forward it to the gym backend. Verification is the
// backend's job; a bad token comes back as its 401.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		c.Locals("token", parts[1])
		return c.Next()
	}
}

// Token returns the bearer token stashed by AuthRequired, or "".
func Token(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}
