package tui

import (
	"time"

	"github.com/akyairhashvil/contribcheck/internal/config"
	"github.com/akyairhashvil/contribcheck/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type TickMsg time.Time

// refreshMsg asks the dashboard to trigger a fetch from inside Update.
type refreshMsg struct{}

type historyRecordedMsg struct {
	err error
}

type historyLoadedMsg struct {
	records []models.FetchRecord
	err     error
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.PollInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func requestRefresh() tea.Msg {
	return refreshMsg{}
}
