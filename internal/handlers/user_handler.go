package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/gymapi"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

type userDirectory interface {
	List(ctx context.Context, branchID string) ([]models.User, error)
	ListCoaches(ctx context.Context, branchID string) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, input gymapi.UserInput) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type UserHandler struct {
	users userDirectory
}

func NewUserHandler(users userDirectory) *UserHandler {
	return &UserHandler{users: users}
}

type userUpdateRequest struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Role       string  `json:"role" validate:"required,oneof=admin coach user"`
	Gender     string  `json:"gender" validate:"required"`
	BirthDate  string  `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	UserBranch *string `json:"userBranch"`
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(requestCtx(c), c.Query("branch"))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// ListCoaches feeds the assign-coach picker on the trainer screen.
func (h *UserHandler) ListCoaches(c *fiber.Ctx) error {
	coaches, err := h.users.ListCoaches(requestCtx(c), c.Query("branch"))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"users": coaches})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.Get(requestCtx(c), c.Params("id"))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req userUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name, valid email, role, gender and birthDate (yyyy-MM-dd) are required"})
	}

	user, err := h.users.Update(requestCtx(c), c.Params("id"), gymapi.UserInput{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Gender:     req.Gender,
		BirthDate:  req.BirthDate,
		Address:    req.Address,
		Phone:      req.Phone,
		UserBranch: req.UserBranch,
	})
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(requestCtx(c), c.Params("id")); err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
