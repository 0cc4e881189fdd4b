package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akyairhashvil/contribcheck/internal/config"
	"github.com/akyairhashvil/contribcheck/internal/models"
	"github.com/akyairhashvil/contribcheck/internal/util"
	"github.com/charmbracelet/lipgloss"
)

var weekdayLabels = [models.DaysPerWeek]string{"", "Mon", "", "Wed", "", "Fri", ""}

const todayMarker = "◆"

// visibleWeeks returns the index of the first week column that fits in width.
// Older weeks are dropped first.
func visibleWeeks(weeks, width, gutter int) int {
	if width <= 0 || weeks == 0 {
		return 0
	}
	fit := (width - gutter - 4) / config.CellWidth
	fit = util.Clamp(fit, 1, weeks)
	return weeks - fit
}

func (m DashboardModel) renderGrid(cal models.ContributionCalendar, today string) string {
	grid := cal.Grid()
	weeks := len(cal.Weeks)
	gutter := config.WeekdayLabelWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		gutter = 0
	}
	first := visibleWeeks(weeks, m.width, gutter)

	rows := make([]string, 0, models.DaysPerWeek+1)
	for row := 0; row < models.DaysPerWeek; row++ {
		var b strings.Builder
		if gutter > 0 {
			b.WriteString(m.theme.Dim.Render(fmt.Sprintf("%-*s", gutter, weekdayLabels[row])))
		}
		for col := first; col < weeks; col++ {
			b.WriteString(renderCell(grid[row][col], today))
		}
		rows = append(rows, b.String())
	}
	if legend := m.renderLegend(cal, gutter); legend != "" {
		rows = append(rows, legend)
	}
	return strings.Join(rows, "\n")
}

func renderCell(c models.GridCell, today string) string {
	blank := strings.Repeat(" ", config.CellWidth)
	if !c.Present {
		return blank
	}
	style := lipgloss.NewStyle().Background(lipgloss.Color(c.Color.Hex()))
	if c.Date != today {
		return style.Render(blank)
	}
	fg := "#000000"
	if c.Color.Luminance() < 128 {
		fg = "#ffffff"
	}
	return style.Foreground(lipgloss.Color(fg)).Bold(true).Render(fmt.Sprintf("%-*s", config.CellWidth, todayMarker))
}

// legendColors returns the distinct day colours ordered by the lowest count
// they were used for.
func legendColors(cal models.ContributionCalendar) []util.RGB {
	lowest := map[string]uint{}
	for _, w := range cal.Weeks {
		for _, d := range w.ContributionDays {
			if n, ok := lowest[d.Color]; !ok || d.ContributionCount < n {
				lowest[d.Color] = d.ContributionCount
			}
		}
	}
	colors := make([]string, 0, len(lowest))
	for c := range lowest {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		if lowest[colors[i]] != lowest[colors[j]] {
			return lowest[colors[i]] < lowest[colors[j]]
		}
		return colors[i] < colors[j]
	})
	out := make([]util.RGB, 0, len(colors))
	for _, c := range colors {
		out = append(out, util.DecodeHexColor(c))
	}
	return out
}

func (m DashboardModel) renderLegend(cal models.ContributionCalendar, gutter int) string {
	colors := legendColors(cal)
	if len(colors) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(m.theme.Dim.Render("Less "))
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(strings.Repeat(" ", config.CellWidth)))
	}
	b.WriteString(m.theme.Dim.Render(" More"))
	return b.String()
}
