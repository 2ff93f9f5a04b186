package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMarginMM    = 10
	pdfPageWidthMM = 297 // A4 landscape
	pdfRowHeightMM = 8
)

// WritePDF renders the table as a landscape A4 document with a repeated
// header row on every page.
func WritePDF(w io.Writer, title string, generatedAt time.Time, table Table) error {
	if len(table.Headers) == 0 {
		return fmt.Errorf("write pdf: table has no columns")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMarginMM, pdfMarginMM, pdfMarginMM)
	pdf.SetAutoPageBreak(true, pdfMarginMM)

	colWidth := (pdfPageWidthMM - 2*pdfMarginMM) / float64(len(table.Headers))

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, label := range table.Headers {
			pdf.CellFormat(colWidth, pdfRowHeightMM, label, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	pdf.SetHeaderFuncMode(func() {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 5, "Generated "+generatedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
		pdf.Ln(2)
		header()
	}, true)
	pdf.AddPage()

	for _, row := range table.Rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, pdfRowHeightMM, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
