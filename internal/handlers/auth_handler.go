package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/gymapi"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/session"
)

var validate = validator.New()

type authBackend interface {
	Login(ctx context.Context, email, password string) (*gymapi.LoginResult, error)
}

type AuthHandler struct {
	backend authBackend
	store   *session.Store
}

func NewAuthHandler(backend authBackend, store *session.Store) *AuthHandler {
	return &AuthHandler{backend: backend, store: store}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Login proxies credentials to the backend and, on success, installs the
// session the pollers share. The token goes back to the browser, which
// attaches it as a bearer header from then on.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and a password of at least 8 characters are required"})
	}

	result, err := h.backend.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return mapBackendError(c, err)
	}

	h.store.Set(result.Token, result.User)

	return c.JSON(fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// Logout clears the shared session; subscribers hear about it immediately
// instead of discovering it on their next poll.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.store.Clear()
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	current := h.store.Current()
	if current == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	return c.JSON(fiber.Map{
		"user":       current.User,
		"expires_at": current.ExpiresAt,
	})
}
