package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/report"
)

type seriesReporter interface {
	MembershipSales(ctx context.Context, branchID string, year int) ([]report.Bucket[string], error)
	SessionSales(ctx context.Context, branchID string, year int) ([]report.Bucket[string], error)
	TrainingUsage(ctx context.Context, branchID string) ([]report.Bucket[string], error)
	AgeDemographics(ctx context.Context, branchID string) ([]report.Bucket[string], error)
	GenderBreakdown(ctx context.Context, branchID string) ([]report.Bucket[string], error)
	DailyAttendance(ctx context.Context, branchID string, from, to *time.Time) ([]report.Bucket[string], error)
	HourlyCheckIns(ctx context.Context, branchID string, day time.Time) ([]report.Bucket[string], error)
}

// ReportHandler exposes the chart series. Both the standalone report pages
// and the dashboard tabs hit these same endpoints; there is exactly one
// implementation of each pipeline.
type ReportHandler struct {
	reports seriesReporter
}

func NewReportHandler(reports seriesReporter) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) MembershipSales(c *fiber.Ctx) error {
	series, err := h.reports.MembershipSales(requestCtx(c), c.Query("branch"), parsePositiveInt(c.Query("year"), time.Now().Year()))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"series": series})
}

func (h *ReportHandler) SessionSales(c *fiber.Ctx) error {
	series, err := h.reports.SessionSales(requestCtx(c), c.Query("branch"), parsePositiveInt(c.Query("year"), time.Now().Year()))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"series": series})
}

func (h *ReportHandler) TrainingUsage(c *fiber.Ctx) error {
	series, err := h.reports.TrainingUsage(requestCtx(c), c.Query("branch"))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"series": series})
}

func (h *ReportHandler) AgeDemographics(c *fiber.Ctx) error {
	series, err := h.reports.AgeDemographics(requestCtx(c), c.Query("branch"))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"series": series})
}

func (h *ReportHandler) GenderBreakdown(c *fiber.Ctx) error {
	series, err := h.reports.GenderBreakdown(requestCtx(c), c.Query("branch"))
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"series": series})
}

func (h *ReportHandler) DailyAttendance(c *fiber.Ctx) error {
	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from must be yyyy-MM-dd"})
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to must be yyyy-MM-dd"})
	}

	series, err := h.reports.DailyAttendance(requestCtx(c), c.Query("branch"), from, to)
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"series": series})
}

func (h *ReportHandler) HourlyCheckIns(c *fiber.Ctx) error {
	day := time.Now()
	if parsed, err := parseDateParam(c.Query("day")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "day must be yyyy-MM-dd"})
	} else if parsed != nil {
		day = *parsed
	}

	series, err := h.reports.HourlyCheckIns(requestCtx(c), c.Query("branch"), day)
	if err != nil {
		return mapBackendError(c, err)
	}
	return c.JSON(fiber.Map{"series": series})
}
