package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

type attendanceReader interface {
	AttendanceHistory(ctx context.Context, branchID string, from, to *time.Time) ([]models.AttendanceLog, error)
	TransactionHistory(ctx context.Context, branchID string, from, to *time.Time) ([]models.Transaction, error)
	Occupancy(ctx context.Context, branchID string) ([]models.AttendanceLog, error)
}

// LogHandler serves the tabular views: attendance logs, the transaction
// ledger and the live occupancy list. Date windows are applied once per
// request, the staged apply/clear interaction of the dashboard.
type LogHandler struct {
	reports attendanceReader
}

func NewLogHandler(reports attendanceReader) *LogHandler {
	return &LogHandler{reports: reports}
}

func (h *LogHandler) ListLogs(c *fiber.Ctx) error {
	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from must be yyyy-MM-dd"})
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to must be yyyy-MM-dd"})
	}

	logs, err := h.reports.AttendanceHistory(requestCtx(c), c.Query("branch"), from, to)
	if err != nil {
		return mapBackendError(c, err)
	}

	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return c.JSON(fiber.Map{
		"logs":       paginate(logs, page, limit),
		"pagination": buildPaginationMeta(page, limit, len(logs)),
	})
}

func (h *LogHandler) ListTransactions(c *fiber.Ctx) error {
	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from must be yyyy-MM-dd"})
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to must be yyyy-MM-dd"})
	}

	transactions, err := h.reports.TransactionHistory(requestCtx(c), c.Query("branch"), from, to)
	if err != nil {
		return mapBackendError(c, err)
	}

	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return c.JSON(fiber.Map{
		"transactions": paginate(transactions, page, limit),
		"pagination":   buildPaginationMeta(page, limit, len(transactions)),
	})
}

func (h *LogHandler) Occupancy(c *fiber.Ctx) error {
	active, err := h.reports.Occupancy(requestCtx(c), c.Query("branch"))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{
		"count": len(active),
		"logs":  active,
	})
}
