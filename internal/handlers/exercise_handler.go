package handlers

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/gymapi"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

type exerciseBackend interface {
	GetAllExercises(ctx context.Context) ([]models.Exercise, error)
	GetExercise(ctx context.Context, id string) (*models.Exercise, error)
	CreateExercise(ctx context.Context, input gymapi.ExerciseInput, images []gymapi.ExerciseImage) (*models.Exercise, error)
	UpdateExercise(ctx context.Context, id string, input gymapi.ExerciseInput, images []gymapi.ExerciseImage) (*models.Exercise, error)
	DeleteExercise(ctx context.Context, id string) error
}

type ExerciseHandler struct {
	backend exerciseBackend
}

func NewExerciseHandler(backend exerciseBackend) *ExerciseHandler {
	return &ExerciseHandler{backend: backend}
}

func (h *ExerciseHandler) List(c *fiber.Ctx) error {
	exercises, err := h.backend.GetAllExercises(requestCtx(c))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"exercises": exercises})
}

func (h *ExerciseHandler) Get(c *fiber.Ctx) error {
	exercise, err := h.backend.GetExercise(requestCtx(c), c.Params("id"))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"exercise": exercise})
}

func (h *ExerciseHandler) Create(c *fiber.Ctx) error {
	input, images, cleanup, errMsg := parseExerciseForm(c)
	if errMsg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMsg})
	}
	defer cleanup()

	exercise, err := h.backend.CreateExercise(requestCtx(c), input, images)
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"exercise": exercise})
}

func (h *ExerciseHandler) Update(c *fiber.Ctx) error {
	input, images, cleanup, errMsg := parseExerciseForm(c)
	if errMsg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMsg})
	}
	defer cleanup()

	exercise, err := h.backend.UpdateExercise(requestCtx(c), c.Params("id"), input, images)
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"exercise": exercise})
}

func (h *ExerciseHandler) Delete(c *fiber.Ctx) error {
	if err := h.backend.DeleteExercise(requestCtx(c), c.Params("id")); err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exercise deleted"})
}

// parseExerciseForm reads the multipart submission. The photos stream
// straight through to the backend's storage; nothing is kept on disk here.
func parseExerciseForm(c *fiber.Ctx) (gymapi.ExerciseInput, []gymapi.ExerciseImage, func(), string) {
	input := gymapi.ExerciseInput{
		Name:         strings.TrimSpace(c.FormValue("name")),
		Type:         strings.TrimSpace(c.FormValue("type")),
		TargetMuscle: strings.TrimSpace(c.FormValue("targetMuscle")),
		Difficulty:   parsePositiveInt(c.FormValue("difficulty"), 0),
		Instructions: strings.TrimSpace(c.FormValue("instructions")),
	}

	noop := func() {}
	if input.Name == "" || input.Type == "" || input.TargetMuscle == "" {
		return input, nil, noop, "name, type and targetMuscle are required"
	}
	if input.Difficulty < 1 || input.Difficulty > 3 {
		return input, nil, noop, "difficulty must be between 1 and 3"
	}

	form, err := c.MultipartForm()
	if err != nil {
		return input, nil, noop, "Invalid multipart form"
	}

	var images []gymapi.ExerciseImage
	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	for _, header := range form.File["images"] {
		file, err := header.Open()
		if err != nil {
			cleanup()
			return input, nil, noop, "Unable to read uploaded image"
		}
		opened = append(opened, file)
		images = append(images, gymapi.ExerciseImage{
			Filename: header.Filename,
			Content:  file,
		})
	}

	return input, images, cleanup, ""
}
