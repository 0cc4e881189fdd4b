// Package report renders a contribution calendar to PDF.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/contribcheck/internal/models"
	"github.com/go-pdf/fpdf"
)

const (
	cellSize   = 4.0
	cellGap    = 0.8
	gridLeft   = 22.0
	labelWidth = 10.0
)

var weekdayLabels = [models.DaysPerWeek]string{"Sun", "", "Tue", "", "Thu", "", "Sat"}

// Options control report content.
type Options struct {
	Login       string
	Today       string
	GeneratedAt time.Time
}

// FileName is the default report name for login on date.
func FileName(login, date string) string {
	return fmt.Sprintf("contributions_%s_%s.pdf", login, date)
}

// WritePDF renders cal to path, creating the parent directory.
func WritePDF(cal models.ContributionCalendar, opts Options, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	pdf := build(cal, opts)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func build(cal models.ContributionCalendar, opts Options) *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Contributions: %s", opts.Login), true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Contribution Report: %s", opts.Login))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	if !opts.GeneratedAt.IsZero() {
		pdf.Cell(0, 6, "Generated "+opts.GeneratedAt.Format("2006-01-02 15:04"))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Total contributions: %d", cal.TotalContributions))
	pdf.Ln(6)

	st := cal.Stats()
	pdf.Cell(0, 6, fmt.Sprintf("Active days: %d of %d   Current streak: %d   Longest streak: %d",
		st.ActiveDays, st.Days, st.CurrentStreak, st.LongestStreak))
	pdf.Ln(6)
	if st.MaxCount > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Best day: %s (%d)", st.MaxDate, st.MaxCount))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, todayLine(cal.Today(opts.Today)))
	pdf.Ln(10)

	drawGrid(pdf, cal, opts.Today)
	return pdf
}

func todayLine(st models.TodayStatus) string {
	switch st.Kind {
	case models.TodayContributed:
		return fmt.Sprintf("Today (%s): %d contributions", st.Day.Date, st.Day.ContributionCount)
	case models.TodayNoContributions:
		return fmt.Sprintf("Today (%s): no contributions yet", st.Day.Date)
	default:
		return "Today: no data"
	}
}

func drawGrid(pdf *fpdf.Fpdf, cal models.ContributionCalendar, today string) {
	grid := cal.Grid()
	top := pdf.GetY()
	pdf.SetFont("Arial", "", 7)
	for row := 0; row < models.DaysPerWeek; row++ {
		y := top + float64(row)*(cellSize+cellGap)
		if weekdayLabels[row] != "" {
			pdf.SetXY(gridLeft-labelWidth, y)
			pdf.CellFormat(labelWidth-1, cellSize, weekdayLabels[row], "", 0, "R", false, 0, "")
		}
		for col, cell := range grid[row] {
			if !cell.Present {
				continue
			}
			x := gridLeft + float64(col)*(cellSize+cellGap)
			pdf.SetFillColor(int(cell.Color.R), int(cell.Color.G), int(cell.Color.B))
			style := "F"
			if cell.Date == today {
				pdf.SetDrawColor(0, 0, 0)
				pdf.SetLineWidth(0.4)
				style = "FD"
			}
			pdf.Rect(x, y, cellSize, cellSize, style)
		}
	}
	pdf.SetY(top + float64(models.DaysPerWeek)*(cellSize+cellGap) + 4)
}
