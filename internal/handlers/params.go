package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/gymapi"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/middleware"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
)

// requestCtx derives the backend call context carrying the caller's own
// bearer token.
func requestCtx(c *fiber.Ctx) context.Context {
	return gymapi.WithRequestToken(c.Context(), middleware.Token(c))
}

func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

// parseDateParam reads an optional yyyy-MM-dd query value. A present but
// malformed value is an error; absence just leaves the bound open.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func buildPaginationMeta(page, limit, total int) models.PaginationMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// paginate slices one page out of the already-filtered records.
func paginate[T any](records []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(records) {
		return []T{}
	}
	end := start + limit
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
