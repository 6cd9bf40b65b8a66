package export

import (
	"bytes"

	"github.com/phpdave11/gofpdf"

	"backoffice/internal/domain"
)

// TabularPDF renders records as a landscape table, one column set shared
// with the other formats. Long cell text is truncated to keep rows aligned.
func TabularPDF(records []domain.Record, columns []Column, title string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 9, title)
	pdf.Ln(12)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right
	colW := usable
	if len(columns) > 0 {
		colW = usable / float64(len(columns))
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for _, h := range Headers(columns) {
		pdf.CellFormat(colW, 7, truncateCell(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range records {
		for _, cell := range Row(r, columns) {
			pdf.CellFormat(colW, 6, truncateCell(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncateCell(s string) string {
	const max = 40
	r := []rune(s)
	if len(r) > max {
		return string(r[:max-3]) + "..."
	}
	return s
}
