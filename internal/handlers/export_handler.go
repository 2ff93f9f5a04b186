package handlers

import (
	"bytes"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/export"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

type exportReader interface {
	TransactionHistory(ctx context.Context, branchID string, from, to *time.Time) ([]models.Transaction, error)
	AttendanceHistory(ctx context.Context, branchID string, from, to *time.Time) ([]models.AttendanceLog, error)
}

// ExportHandler flattens the already-filtered record sets into printable
// documents. Rows mirror the on-screen tables one to one; any aggregation
// happened upstream in the report service.
type ExportHandler struct {
	reports exportReader
}

func NewExportHandler(reports exportReader) *ExportHandler {
	return &ExportHandler{reports: reports}
}

func transactionColumns() []export.Column[models.Transaction] {
	return []export.Column[models.Transaction]{
		{Header: "Member", Value: func(tx models.Transaction) string {
			if tx.User != nil && tx.User.Name != "" {
				return tx.User.Name
			}
			return tx.UserID
		}},
		{Header: "Type", Value: func(tx models.Transaction) string { return tx.TransactionType }},
		{Header: "Promo", Value: func(tx models.Transaction) string {
			if tx.Promo == nil {
				return ""
			}
			return *tx.Promo
		}},
		{Header: "Amount", Value: func(tx models.Transaction) string { return export.Currency(tx.Amount) }},
		{Header: "Subscribed", Value: func(tx models.Transaction) string { return tx.SubscribedDate.Format("2006-01-02") }},
	}
}

func attendanceColumns() []export.Column[models.AttendanceLog] {
	return []export.Column[models.AttendanceLog]{
		{Header: "Member", Value: func(l models.AttendanceLog) string {
			if l.User != nil && l.User.Name != "" {
				return l.User.Name
			}
			return l.UserID
		}},
		{Header: "Date", Value: func(l models.AttendanceLog) string {
			if l.Date == nil {
				return ""
			}
			return l.Date.Format("2006-01-02")
		}},
		{Header: "Time In", Value: func(l models.AttendanceLog) string { return l.TimeIn.Format("15:04") }},
		{Header: "Time Out", Value: func(l models.AttendanceLog) string {
			if l.TimeOut == nil {
				return "active"
			}
			return l.TimeOut.Format("15:04")
		}},
	}
}

func (h *ExportHandler) TransactionsPDF(c *fiber.Ctx) error {
	from, perr := parseDateParam(c.Query("from"))
	if perr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from must be yyyy-MM-dd"})
	}
	to, perr := parseDateParam(c.Query("to"))
	if perr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to must be yyyy-MM-dd"})
	}

	table, err := h.transactionTable(c, from, to)
	if err != nil {
		return mapBackendError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, "Transaction Report", time.Now(), table); err != nil {
		return mapBackendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.pdf"`)
	return c.Send(buf.Bytes())
}

func (h *ExportHandler) TransactionsXLSX(c *fiber.Ctx) error {
	from, perr := parseDateParam(c.Query("from"))
	if perr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from must be yyyy-MM-dd"})
	}
	to, perr := parseDateParam(c.Query("to"))
	if perr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to must be yyyy-MM-dd"})
	}

	table, err := h.transactionTable(c, from, to)
	if err != nil {
		return mapBackendError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, "Transactions", table); err != nil {
		return mapBackendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.xlsx"`)
	return c.Send(buf.Bytes())
}

func (h *ExportHandler) AttendancePDF(c *fiber.Ctx) error {
	from, perr := parseDateParam(c.Query("from"))
	if perr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from must be yyyy-MM-dd"})
	}
	to, perr := parseDateParam(c.Query("to"))
	if perr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to must be yyyy-MM-dd"})
	}

	logs, err := h.reports.AttendanceHistory(requestCtx(c), c.Query("branch"), from, to)
	if err != nil {
		return mapBackendError(c, err)
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, "Attendance Report", time.Now(), export.Project(logs, attendanceColumns())); err != nil {
		return mapBackendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="attendance.pdf"`)
	return c.Send(buf.Bytes())
}

func (h *ExportHandler) transactionTable(c *fiber.Ctx, from, to *time.Time) (export.Table, error) {
	transactions, err := h.reports.TransactionHistory(requestCtx(c), c.Query("branch"), from, to)
	if err != nil {
		return export.Table{}, err
	}
	return export.Project(transactions, transactionColumns()), nil
}
