package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/dmorgachev/ce-tracker/internal/domain"
)

// WritePDF renders the pro-tier report: a status summary block followed by
// the record table.
func WritePDF(w io.Writer, status domain.CEStatus, rows []Row) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("CE Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Continuing Education Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	summary := []string{
		fmt.Sprintf("Required hours: %d", status.RequiredHours),
		fmt.Sprintf("Hours completed: %d", status.HoursCompleted),
		fmt.Sprintf("Hours remaining: %d", status.HoursRemaining),
		fmt.Sprintf("Next renewal date: %s", status.NextRenewalDate.Format(dateLayout)),
	}
	for _, line := range summary {
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	widths := []float64{80, 35, 20, 55}
	headers := []string{"Course", "Date Completed", "Hours", "Notes"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		cells := []string{row.CourseTitle, row.DateCompleted, strconv.Itoa(row.Hours), row.Notes}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
