package gymapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

type ExerciseInput struct {
	Name         string
	Type         string
	TargetMuscle string
	Difficulty   int
	Instructions string
}

// ExerciseImage is one photo to upload alongside the exercise fields. The
// backend owns storage; nothing is kept here after the request.
type ExerciseImage struct {
	Filename string
	Content  io.Reader
}

func (c *Client) GetAllExercises(ctx context.Context) ([]models.Exercise, error) {
	var response struct {
		Exercises []models.Exercise `json:"exercises"`
	}
	if err := c.getJSON(ctx, "/api/v1/exercises/get-all-exercise", nil, &response); err != nil {
		return nil, fmt.Errorf("get exercises: %w", err)
	}
	return response.Exercises, nil
}

func (c *Client) GetExercise(ctx context.Context, id string) (*models.Exercise, error) {
	var response struct {
		Exercise *models.Exercise `json:"exercise"`
	}
	if err := c.getJSON(ctx, "/api/v1/exercises/get-exercise/"+id, nil, &response); err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return response.Exercise, nil
}

func (c *Client) CreateExercise(ctx context.Context, input ExerciseInput, images []ExerciseImage) (*models.Exercise, error) {
	return c.submitExercise(ctx, http.MethodPost, "/api/v1/exercises/create", input, images)
}

func (c *Client) UpdateExercise(ctx context.Context, id string, input ExerciseInput, images []ExerciseImage) (*models.Exercise, error) {
	return c.submitExercise(ctx, http.MethodPut, "/api/v1/exercises/update/"+id, input, images)
}

func (c *Client) DeleteExercise(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/api/v1/exercises/delete/"+id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

func (c *Client) submitExercise(ctx context.Context, method, path string, input ExerciseInput, images []ExerciseImage) (*models.Exercise, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"name":         input.Name,
		"type":         input.Type,
		"targetMuscle": input.TargetMuscle,
		"difficulty":   strconv.Itoa(input.Difficulty),
		"instructions": input.Instructions,
	}
	for field, value := range fields {
		if err := writer.WriteField(field, value); err != nil {
			return nil, fmt.Errorf("write exercise field %s: %w", field, err)
		}
	}

	for _, image := range images {
		// Backend storage keys are derived from the uploaded filename, so
		// give every upload a unique one.
		name := uuid.NewString() + filepath.Ext(image.Filename)
		part, err := writer.CreateFormFile("images", name)
		if err != nil {
			return nil, fmt.Errorf("create image part: %w", err)
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return nil, fmt.Errorf("copy image %s: %w", image.Filename, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, nil, body, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var response struct {
		Exercise *models.Exercise `json:"exercise"`
	}
	if err := c.do(req, &response); err != nil {
		return nil, fmt.Errorf("submit exercise: %w", err)
	}
	return response.Exercise, nil
}
