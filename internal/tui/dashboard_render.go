package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/contribcheck/internal/config"
	"github.com/akyairhashvil/contribcheck/internal/models"
	"github.com/akyairhashvil/contribcheck/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m DashboardModel) View() string {
	sections := []string{m.renderHeader(), m.renderBody()}
	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	if m.showHistory {
		sections = append(sections, m.renderHistory())
	}
	sections = append(sections, m.help.View(m.registry))
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m DashboardModel) renderHeader() string {
	title := m.theme.Header.Render(fmt.Sprintf("%s @%s", config.AppName, m.coord.Login()))
	version := m.theme.Dim.Render(" v" + versionLabel())
	return title + version
}

func (m DashboardModel) renderBody() string {
	st := m.coord.State()
	switch st.Status {
	case models.FetchInFlight:
		return m.spinner.View() + " " + m.theme.Dim.Render("Fetching contributions...")
	case models.FetchFailed:
		return m.theme.Error.Render(truncateLabel("Error: "+st.Message, m.lineWidth()))
	case models.FetchSucceeded:
		return m.renderCalendar(st.Calendar)
	default:
		return m.theme.Dim.Render("Press r to fetch contributions.")
	}
}

func (m DashboardModel) renderCalendar(cal models.ContributionCalendar) string {
	today := m.today()
	stats := cal.Stats()
	summary := m.theme.Title.Render(fmt.Sprintf("%s contributions in the last year", FormatCount(cal.TotalContributions)))
	detail := m.theme.Dim.Render(fmt.Sprintf("%s active of %s · current streak %s · longest %s",
		plural(stats.ActiveDays, "day"), plural(stats.Days, "day"),
		plural(stats.CurrentStreak, "day"), plural(stats.LongestStreak, "day")))
	if stats.MaxCount > 0 {
		detail += m.theme.Dim.Render(fmt.Sprintf(" · best %s (%d)", stats.MaxDate, stats.MaxCount))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		summary,
		truncateLabel(detail, m.lineWidth()),
		m.renderToday(cal.Today(today)),
		"",
		m.renderGrid(cal, today),
	)
}

func (m DashboardModel) renderToday(st models.TodayStatus) string {
	switch st.Kind {
	case models.TodayContributed:
		return m.theme.Success.Render(fmt.Sprintf("Today: %d contributions", st.Count()))
	case models.TodayNoContributions:
		return m.theme.Warning.Render("Today: no contributions yet")
	default:
		return m.theme.Dim.Render("Today: no data")
	}
}

func (m DashboardModel) renderStatus() string {
	var parts []string
	if m.Message != "" {
		parts = append(parts, m.Message)
	}
	if last := m.coord.LastFetched(); !last.IsZero() {
		parts = append(parts, fmt.Sprintf("Updated %s in %s", FormatAge(last, m.now()), FormatLatency(m.coord.LastDuration())))
	}
	if len(parts) == 0 {
		return ""
	}
	return m.theme.Dim.Render(truncateLabel(strings.Join(parts, " | "), m.lineWidth()))
}

func (m DashboardModel) renderHistory() string {
	if m.store == nil {
		return m.theme.Panel.Render(m.theme.Dim.Render("History is disabled"))
	}
	if len(m.history) == 0 {
		return m.theme.Panel.Render(m.theme.Dim.Render("No fetches recorded"))
	}
	lines := []string{m.theme.Title.Render("Recent fetches")}
	for _, rec := range m.history {
		when := rec.FinishedAt.Local().Format("2006-01-02 15:04:05")
		line := fmt.Sprintf("%s  %-9s  %6s  @%s", when, rec.Status, FormatLatency(rec.Duration()), rec.Login)
		switch rec.Status {
		case models.FetchSucceeded:
			line += fmt.Sprintf("  %s total", FormatCount(rec.TotalContributions))
		case models.FetchFailed:
			line += "  " + rec.Message
		}
		lines = append(lines, truncateLabel(line, m.lineWidth()-4))
	}
	return m.theme.Panel.Render(strings.Join(lines, "\n"))
}

// lineWidth is the usable width inside the base margin, zero when unknown.
func (m DashboardModel) lineWidth() int {
	if m.width <= 0 {
		return 0
	}
	return util.Clamp(m.width-4, config.MinStatusWidth, m.width)
}

// truncateLabel shortens text to max display columns. A max of zero or less
// leaves it untouched.
func truncateLabel(text string, max int) string {
	if max <= 0 || ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
