package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/contribcheck/internal/config"
	"github.com/akyairhashvil/contribcheck/internal/database"
	"github.com/akyairhashvil/contribcheck/internal/fetch"
	"github.com/akyairhashvil/contribcheck/internal/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Deps are the collaborators the UI is built from.
type Deps struct {
	Fetcher          fetch.Fetcher
	Store            database.Repository
	Logger           *zap.Logger
	TokenFingerprint string
	ReportsDir       string
	Theme            string
	Now              func() time.Time
}

type DashboardModel struct {
	ctx        context.Context
	coord      *fetch.Coordinator
	store      database.Repository
	logger     *zap.Logger
	now        func() time.Time
	reportsDir string
	registry   *HandlerRegistry

	spinner     spinner.Model
	help        help.Model
	theme       Theme
	themeKey    string
	showHistory bool
	history     []models.FetchRecord
	Message     string

	width  int
	height int
}

func NewDashboardModel(ctx context.Context, deps Deps, login string) DashboardModel {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	opts := []fetch.Option{
		fetch.WithLogger(logger),
		fetch.WithTokenFingerprint(deps.TokenFingerprint),
	}

	themeKey := deps.Theme
	if themeKey == "" && deps.Store != nil {
		if saved, ok := deps.Store.GetSetting(ctx, config.SettingTheme); ok {
			themeKey = saved
		}
	}
	if _, ok := Themes[themeKey]; !ok {
		themeKey = DefaultTheme
	}
	theme := ThemeByName(themeKey)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Highlight

	return DashboardModel{
		ctx:        ctx,
		coord:      fetch.NewCoordinator(deps.Fetcher, login, opts...),
		store:      deps.Store,
		logger:     logger,
		now:        now,
		reportsDir: deps.ReportsDir,
		registry:   defaultRegistry(),
		spinner:    sp,
		help:       help.New(),
		theme:      theme,
		themeKey:   themeKey,
	}
}

// Init arms the poll tick and requests the startup fetch.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), requestRefresh)
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case refreshMsg:
		return m.startFetch()
	case historyRecordedMsg:
		return m.handleHistoryRecorded(msg)
	case historyLoadedMsg:
		return m.handleHistoryLoaded(msg)
	case spinner.TickMsg:
		if !m.coord.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		m.Message = ""
		if next, cmd, ok := m.registry.Handle(m, msg); ok {
			return next, cmd
		}
	}
	return m, nil
}

// Coordinator exposes the fetch state for the CLI and tests.
func (m DashboardModel) Coordinator() *fetch.Coordinator {
	return m.coord
}

func (m DashboardModel) today() string {
	return m.now().Format(models.DateLayout)
}
