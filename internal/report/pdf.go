package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer renders a report as a PDF document.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(rep *Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 8, rep.Title, "", "L", false)
	pdf.Ln(2)

	r.section(pdf, "Analytics Summary")
	r.line(pdf, fmt.Sprintf("Status: %s", rep.Usability.Status))
	r.line(pdf, fmt.Sprintf("Reason: %s", rep.Usability.Reason))
	pdf.Ln(2)

	r.section(pdf, "Borrowing History")
	r.line(pdf, fmt.Sprintf("Total Borrows: %d", rep.Borrowing.TotalBorrows))
	r.line(pdf, fmt.Sprintf("Last Borrowed: %s", rep.Borrowing.LastBorrowed))
	r.line(pdf, fmt.Sprintf("Overdue Count: %d", rep.Borrowing.OverdueCount))
	pdf.Ln(2)

	r.section(pdf, "Repair History")
	r.line(pdf, fmt.Sprintf("Total Repairs: %d", rep.Repairs.TotalRepairs))
	r.line(pdf, fmt.Sprintf("Total Repair Cost: $%.2f", rep.Repairs.TotalCost))
	r.line(pdf, fmt.Sprintf("Last Repair Status: %s", rep.Repairs.LastStatus))
	r.line(pdf, fmt.Sprintf("Repair Cost %% of Procurement: %.2f%%", rep.Repairs.CostPercentage))
	pdf.Ln(4)

	widths := []float64{30, 28, 30, 70, 32}
	headers := []string{"Date", "Event Type", "User", "Details", "Status"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rep.Rows {
		cells := []string{row.Date, row.EventType, row.User, row.Details, row.Status}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 7, title, "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
}

func (r *PDFRenderer) line(pdf *fpdf.Fpdf, text string) {
	pdf.MultiCell(0, 6, text, "", "L", false)
}
