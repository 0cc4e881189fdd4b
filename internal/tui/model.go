package tui

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type SessionState int

const (
	StateInitializing SessionState = iota
	StateDashboard
)

// GitHub logins: alphanumerics and single hyphens, no leading or trailing hyphen.
var loginPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9]){0,38}$`)

// ValidLogin reports whether s is a well-formed GitHub login.
func ValidLogin(s string) bool {
	return len(s) <= 39 && loginPattern.MatchString(s)
}

type MainModel struct {
	ctx       context.Context
	deps      Deps
	state     SessionState
	textInput textinput.Model
	dashboard DashboardModel
	err       error
	width     int
	height    int
}

// NewMainModel starts on the dashboard when login is known and asks for it
// otherwise.
func NewMainModel(ctx context.Context, deps Deps, login string) MainModel {
	m := MainModel{ctx: ctx, deps: deps}
	login = strings.TrimSpace(login)
	if login != "" {
		m.state = StateDashboard
		m.dashboard = NewDashboardModel(ctx, deps, login)
		return m
	}
	ti := textinput.New()
	ti.Placeholder = "octocat"
	ti.CharLimit = 39
	ti.Width = 40
	ti.Focus()
	m.state = StateInitializing
	m.textInput = ti
	return m
}

func (m MainModel) Init() tea.Cmd {
	if m.state == StateDashboard {
		return m.dashboard.Init()
	}
	return textinput.Blink
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}
	if m.state == StateDashboard {
		next, cmd := m.dashboard.Update(msg)
		m.dashboard = next.(DashboardModel)
		return m, cmd
	}
	return m.updateInitializing(msg)
}

func (m MainModel) updateInitializing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			login := strings.TrimSpace(m.textInput.Value())
			if !ValidLogin(login) {
				m.err = fmt.Errorf("%q is not a valid GitHub username", login)
				return m, nil
			}
			m.err = nil
			m.state = StateDashboard
			m.dashboard = NewDashboardModel(m.ctx, m.deps, login)
			if m.width > 0 {
				m.dashboard, _ = m.dashboard.handleWindowSize(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			}
			return m, m.dashboard.Init()
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m MainModel) View() string {
	if m.state == StateDashboard {
		return m.dashboard.View()
	}
	theme := ThemeByName(m.deps.Theme)
	lines := []string{
		theme.Header.Render("contribcheck"),
		theme.Title.Render("Which GitHub user should be checked?"),
		theme.Input.Render(m.textInput.View()),
	}
	if m.err != nil {
		lines = append(lines, theme.Error.Render(m.err.Error()))
	}
	lines = append(lines, theme.Dim.Render("enter to continue, esc to quit"))
	return theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Dashboard returns the dashboard once the login is known.
func (m MainModel) Dashboard() (DashboardModel, bool) {
	return m.dashboard, m.state == StateDashboard
}
