package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/gymapi"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/services"
)

// mapBackendError turns service and backend-client failures into JSON
// responses. Nothing here is fatal: the worst outcome for the dashboard is
// an empty view, never a crash.
func mapBackendError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gymapi.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	case errors.Is(err, gymapi.ErrNotFound), errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotCoach):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("backend request failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Gym backend unavailable"})
	}
}
