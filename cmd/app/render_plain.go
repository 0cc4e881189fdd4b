package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/akyairhashvil/contribcheck/internal/models"
)

var weekdayLabels = [models.DaysPerWeek]string{"", "Mon", "", "Wed", "", "Fri", ""}

// shade maps a day to a block character, darker colours to denser blocks.
func shade(c models.GridCell) rune {
	switch lum := c.Color.Luminance(); {
	case !c.Present:
		return ' '
	case c.Count == 0:
		return '·'
	case lum >= 180:
		return '░'
	case lum >= 130:
		return '▒'
	case lum >= 90:
		return '▓'
	default:
		return '█'
	}
}

func writeCalendar(w io.Writer, login string, cal models.ContributionCalendar, today string) {
	stats := cal.Stats()
	fmt.Fprintf(w, "@%s: %d contributions in the last year\n", login, cal.TotalContributions)
	fmt.Fprintf(w, "%d active days of %d, current streak %d, longest %d\n",
		stats.ActiveDays, stats.Days, stats.CurrentStreak, stats.LongestStreak)

	st := cal.Today(today)
	switch st.Kind {
	case models.TodayContributed:
		fmt.Fprintf(w, "Today: %d contributions\n", st.Count())
	case models.TodayNoContributions:
		fmt.Fprintln(w, "Today: no contributions yet")
	default:
		fmt.Fprintln(w, "Today: no data")
	}
	fmt.Fprintln(w)

	grid := cal.Grid()
	for row := 0; row < models.DaysPerWeek; row++ {
		var b strings.Builder
		fmt.Fprintf(&b, "%-4s", weekdayLabels[row])
		for _, cell := range grid[row] {
			if cell.Present && cell.Date == today {
				b.WriteRune('◆')
				continue
			}
			b.WriteRune(shade(cell))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}
