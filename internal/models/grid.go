package models

import (
	"time"

	"github.com/akyairhashvil/contribcheck/internal/util"
)

// DaysPerWeek is the number of grid rows.
const DaysPerWeek = 7

// GridCell is one rendered day. Present is false for padding cells of a
// partial week.
type GridCell struct {
	Date    string
	Count   uint
	Color   util.RGB
	Present bool
}

// Grid lays the calendar out with weeks as columns and weekdays as rows
// (Sunday first). The row of a day is the weekday of its date; when the date
// does not parse, its position within the week is used instead.
func (c ContributionCalendar) Grid() [DaysPerWeek][]GridCell {
	var grid [DaysPerWeek][]GridCell
	for row := range grid {
		grid[row] = make([]GridCell, len(c.Weeks))
	}
	for col, w := range c.Weeks {
		for i, d := range w.ContributionDays {
			row := weekdayRow(d.Date, i)
			if row < 0 || row >= DaysPerWeek {
				continue
			}
			grid[row][col] = GridCell{
				Date:    d.Date,
				Count:   d.ContributionCount,
				Color:   util.DecodeHexColor(d.Color),
				Present: true,
			}
		}
	}
	return grid
}

func weekdayRow(date string, fallback int) int {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return fallback
	}
	return int(t.Weekday())
}
