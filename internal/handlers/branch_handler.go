package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/gymapi"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

type branchBackend interface {
	GetAllBranches(ctx context.Context) ([]models.Branch, error)
	GetBranch(ctx context.Context, id string) (*models.Branch, error)
	CreateBranch(ctx context.Context, input gymapi.BranchInput) (*models.Branch, error)
	UpdateBranch(ctx context.Context, id string, input gymapi.BranchInput) (*models.Branch, error)
	DeleteBranch(ctx context.Context, id string) error
}

type BranchHandler struct {
	backend branchBackend
}

func NewBranchHandler(backend branchBackend) *BranchHandler {
	return &BranchHandler{backend: backend}
}

type branchRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Contact string `json:"contact" validate:"required"`
	Place   string `json:"place" validate:"required"`
}

func (r branchRequest) input() gymapi.BranchInput {
	return gymapi.BranchInput{
		Name:    r.Name,
		Email:   r.Email,
		Contact: r.Contact,
		Place:   r.Place,
	}
}

func (h *BranchHandler) List(c *fiber.Ctx) error {
	branches, err := h.backend.GetAllBranches(requestCtx(c))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"branch": branches})
}

func (h *BranchHandler) Get(c *fiber.Ctx) error {
	branch, err := h.backend.GetBranch(requestCtx(c), c.Params("id"))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"branch": branch})
}

func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var req branchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name, a valid email, contact and place are required"})
	}

	branch, err := h.backend.CreateBranch(requestCtx(c), req.input())
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"branch": branch})
}

func (h *BranchHandler) Update(c *fiber.Ctx) error {
	var req branchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name, a valid email, contact and place are required"})
	}

	branch, err := h.backend.UpdateBranch(requestCtx(c), c.Params("id"), req.input())
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"branch": branch})
}

func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	if err := h.backend.DeleteBranch(requestCtx(c), c.Params("id")); err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Branch deleted"})
}
