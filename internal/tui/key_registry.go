package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m DashboardModel) (DashboardModel, tea.Cmd)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Priority int
}

// HandlerRegistry dispatches key presses and doubles as the help.KeyMap.
type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m DashboardModel, msg tea.KeyMsg) (DashboardModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Binding.Enabled() && key.Matches(msg, b.Binding) {
			next, cmd := b.Handler(m)
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, b.Binding)
	}
	return out
}

func (r *HandlerRegistry) FullHelp() [][]key.Binding {
	return [][]key.Binding{r.ShortHelp()}
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Handler:  DashboardModel.startFetch,
		Priority: 50,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export pdf")),
		Handler:  DashboardModel.handleExport,
		Priority: 40,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Handler:  DashboardModel.handleHistoryToggle,
		Priority: 30,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Handler:  DashboardModel.handleThemeCycle,
		Priority: 20,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Handler:  DashboardModel.handleHelpToggle,
		Priority: 10,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Handler: func(m DashboardModel) (DashboardModel, tea.Cmd) { return m, tea.Quit },
	})
	return r
}
