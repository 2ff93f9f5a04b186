package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

type trainerAssignmentService interface {
	ListSessions(ctx context.Context, branchID string) ([]models.TrainingSession, error)
	AssignCoach(ctx context.Context, sessionID, coachID string) (*models.TrainingSession, error)
}

type TrainerHandler struct {
	service trainerAssignmentService
}

func NewTrainerHandler(service trainerAssignmentService) *TrainerHandler {
	return &TrainerHandler{service: service}
}

func (h *TrainerHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.service.ListSessions(requestCtx(c), c.Query("branch"))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"availTrainer": sessions})
}

type assignCoachRequest struct {
	CoachID string `json:"coachID" validate:"required"`
}

func (h *TrainerHandler) AssignCoach(c *fiber.Ctx) error {
	var req assignCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "coachID is required"})
	}

	session, err := h.service.AssignCoach(requestCtx(c), c.Params("id"), req.CoachID)
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"availTrainer": session})
}
