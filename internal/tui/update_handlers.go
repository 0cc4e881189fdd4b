package tui

import (
	"path/filepath"

	"github.com/akyairhashvil/contribcheck/internal/config"
	"github.com/akyairhashvil/contribcheck/internal/database"
	"github.com/akyairhashvil/contribcheck/internal/models"
	"github.com/akyairhashvil/contribcheck/internal/report"
	"github.com/akyairhashvil/contribcheck/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m DashboardModel) handleWindowSize(msg tea.WindowSizeMsg) (DashboardModel, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick polls the coordinator once and re-arms the tick. An applied
// outcome is persisted by a command so the database never blocks Update.
func (m DashboardModel) handleTick(_ TickMsg) (DashboardModel, tea.Cmd) {
	if m.coord.Poll() {
		if rec := m.recordCmd(m.coord.LastRecord()); rec != nil {
			return m, tea.Batch(tickCmd(), rec)
		}
	}
	return m, tickCmd()
}

func (m DashboardModel) recordCmd(rec models.FetchRecord) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return historyRecordedMsg{err: store.RecordFetch(ctx, rec)}
	}
}

func (m DashboardModel) handleHistoryRecorded(msg historyRecordedMsg) (DashboardModel, tea.Cmd) {
	if msg.err != nil {
		util.LogError(m.logger, "record fetch history", msg.err)
		m.Message = "History not saved: " + msg.err.Error()
		return m, nil
	}
	if m.showHistory {
		return m, m.loadHistoryCmd()
	}
	return m, nil
}

func (m DashboardModel) startFetch() (DashboardModel, tea.Cmd) {
	if !m.coord.Trigger() {
		m.Message = "Fetch already in progress"
		return m, nil
	}
	return m, m.spinner.Tick
}

func (m DashboardModel) handleThemeCycle() (DashboardModel, tea.Cmd) {
	m.themeKey = nextTheme(m.themeKey)
	m.theme = ThemeByName(m.themeKey)
	m.spinner.Style = m.theme.Highlight
	m.Message = "Theme: " + m.theme.Name
	if m.store == nil {
		return m, nil
	}
	var err error
	if m.themeKey == DefaultTheme {
		err = m.store.DeleteSetting(m.ctx, config.SettingTheme)
		if database.IsNotFound(err) {
			err = nil
		}
	} else {
		err = m.store.SetSetting(m.ctx, config.SettingTheme, m.themeKey)
	}
	if err != nil {
		util.LogError(m.logger, "save theme", err)
		m.Message = "Theme not saved: " + err.Error()
	}
	return m, nil
}

func (m DashboardModel) handleExport() (DashboardModel, tea.Cmd) {
	st := m.coord.State()
	if st.Status != models.FetchSucceeded {
		m.Message = "Nothing to export yet"
		return m, nil
	}
	dir := m.reportsDir
	if dir == "" {
		dir = util.ReportsDir(config.AppName)
	}
	today := m.today()
	path := filepath.Join(dir, report.FileName(m.coord.Login(), today))
	opts := report.Options{Login: m.coord.Login(), Today: today, GeneratedAt: m.now()}
	if err := report.WritePDF(st.Calendar, opts, path); err != nil {
		util.LogError(m.logger, "export pdf", err)
		m.Message = "Export failed: " + err.Error()
		return m, nil
	}
	m.logger.Info("report exported", zap.String("path", path))
	m.Message = "Exported " + path
	return m, nil
}

func (m DashboardModel) handleHistoryToggle() (DashboardModel, tea.Cmd) {
	m.showHistory = !m.showHistory
	if m.showHistory {
		return m, m.loadHistoryCmd()
	}
	return m, nil
}

func (m DashboardModel) loadHistoryCmd() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		records, err := store.RecentFetches(ctx, config.HistoryLimit)
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m DashboardModel) handleHistoryLoaded(msg historyLoadedMsg) (DashboardModel, tea.Cmd) {
	if msg.err != nil {
		util.LogError(m.logger, "load history", msg.err)
		m.Message = "History unavailable: " + msg.err.Error()
		return m, nil
	}
	m.history = msg.records
	return m, nil
}

func (m DashboardModel) handleHelpToggle() (DashboardModel, tea.Cmd) {
	m.help.ShowAll = !m.help.ShowAll
	return m, nil
}
