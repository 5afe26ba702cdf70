package statistics

import (
	"bytes"
	"dashboard-service/internal/pkg/dto/responses"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

var reportColumns = []struct {
	title string
	width float64
}{
	{"School", 70},
	{"Pending", 25},
	{"Confirmed", 25},
	{"Completed", 25},
	{"Students", 25},
}

// RenderReport lays the aggregation out as a one-table A4 PDF.
func RenderReport(stats []responses.SchoolStats, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("School Attendance Report", false)
	pdf.AddPage()
	// Core fonts only cover cp1252.
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "School Attendance Report")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+generatedAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	for _, column := range reportColumns {
		pdf.CellFormat(column.width, 8, column.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	var pending, confirmed, completed, students int
	for _, row := range stats {
		writeRow(pdf, translate(truncate(row.SchoolName, 40)), row.Pending, row.Confirmed, row.Completed, row.TotalStudents)
		pending += row.Pending
		confirmed += row.Confirmed
		completed += row.Completed
		students += row.TotalStudents
	}

	pdf.SetFont("Helvetica", "B", 10)
	writeRow(pdf, "Total", pending, confirmed, completed, students)

	if len(stats) == 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "No schools are registered yet.", "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(pdf *gofpdf.Fpdf, name string, counts ...int) {
	pdf.CellFormat(reportColumns[0].width, 7, name, "1", 0, "L", false, 0, "")
	for i, count := range counts {
		pdf.CellFormat(reportColumns[i+1].width, 7, fmt.Sprintf("%d", count), "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)
}

func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max-3]) + "..."
}
