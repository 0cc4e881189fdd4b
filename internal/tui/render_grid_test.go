package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/contribcheck/internal/models"
	"github.com/akyairhashvil/contribcheck/internal/testutil"
	"github.com/akyairhashvil/contribcheck/internal/util"
)

func TestVisibleWeeks(t *testing.T) {
	if got := visibleWeeks(53, 0, 4); got != 0 {
		t.Fatalf("unknown width should show all weeks, got first=%d", got)
	}
	if got := visibleWeeks(53, 200, 4); got != 0 {
		t.Fatalf("wide terminal should show all weeks, got first=%d", got)
	}
	// (40-4-4)/2 = 16 columns fit.
	if got := visibleWeeks(53, 40, 4); got != 37 {
		t.Fatalf("expected oldest weeks trimmed, got first=%d", got)
	}
	if got := visibleWeeks(53, 3, 4); got != 52 {
		t.Fatalf("expected at least one week, got first=%d", got)
	}
}

func TestRenderCell(t *testing.T) {
	if got := renderCell(models.GridCell{}, "2024-06-01"); got != "  " {
		t.Fatalf("padding cell should be blank, got %q", got)
	}
	cell := models.GridCell{Date: "2024-06-01", Count: 3, Color: util.DecodeHexColor("#216e39"), Present: true}
	if !strings.Contains(renderCell(cell, "2024-06-01"), todayMarker) {
		t.Fatalf("expected today marker")
	}
	if strings.Contains(renderCell(cell, "2024-06-02"), todayMarker) {
		t.Fatalf("marker on a day that is not today")
	}
}

func TestLegendColorsOrderedByCount(t *testing.T) {
	cal := testutil.NewCalendar().WithWeek(
		testutil.Day("2024-06-02", 12),
		testutil.Day("2024-06-03", 0),
		testutil.Day("2024-06-04", 1),
		testutil.Day("2024-06-05", 0),
	).Build()
	got := legendColors(cal)
	want := []util.RGB{
		util.DecodeHexColor("#ebedf0"),
		util.DecodeHexColor("#9be9a8"),
		util.DecodeHexColor("#216e39"),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d colours, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("colour %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestRenderGridLayout(t *testing.T) {
	m := setupTestDashboard(t, &stubFetcher{})
	cal := sampleCalendar()

	grid := m.renderGrid(cal, "2024-06-01")
	lines := strings.Split(grid, "\n")
	if len(lines) != models.DaysPerWeek+1 {
		t.Fatalf("expected 7 rows plus legend, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "Mon") {
		t.Fatalf("expected weekday gutter, got %q", lines[1])
	}
	// 2024-06-01 is a Saturday.
	if !strings.Contains(lines[6], todayMarker) {
		t.Fatalf("expected today marker on the Saturday row")
	}

	m.width = 30
	compact := strings.Split(m.renderGrid(cal, "2024-06-01"), "\n")
	if strings.Contains(compact[1], "Mon") {
		t.Fatalf("compact mode should drop labels")
	}
}
