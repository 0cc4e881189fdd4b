package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/contribcheck/internal/database"
	"github.com/akyairhashvil/contribcheck/internal/models"
	"github.com/akyairhashvil/contribcheck/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type stubFetcher struct {
	release chan struct{}
	cal     models.ContributionCalendar
	err     error
}

func (s *stubFetcher) FetchCalendar(ctx context.Context, login string) (models.ContributionCalendar, error) {
	if s.release != nil {
		<-s.release
	}
	return s.cal, s.err
}

func sampleCalendar() models.ContributionCalendar {
	return testutil.NewCalendar().
		WithTotal(12).
		WithDays("2024-05-19", 14, 0, 2, 1, 0, 4, 0, 5).
		Build()
}

func setupModelDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "model.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func testDeps(t *testing.T, f *stubFetcher, db *database.Database) Deps {
	t.Helper()
	deps := Deps{
		Fetcher:    f,
		ReportsDir: t.TempDir(),
		Now:        func() time.Time { return fixedNow },
	}
	if db != nil {
		deps.Store = db
	}
	return deps
}

func setupTestDashboard(t *testing.T, f *stubFetcher) DashboardModel {
	t.Helper()
	return NewDashboardModel(context.Background(), testDeps(t, f, setupModelDB(t)), "octocat")
}

// waitForApply ticks until the in-flight fetch has been applied.
func waitForApply(t *testing.T, m DashboardModel) DashboardModel {
	t.Helper()
	m, _ = waitForApplyCmd(t, m)
	return m
}

// waitForApplyCmd also returns the command of the tick that applied the result.
func waitForApplyCmd(t *testing.T, m DashboardModel) (DashboardModel, tea.Cmd) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		var cmd tea.Cmd
		m, cmd = m.handleTick(TickMsg{})
		if !m.coord.InFlight() {
			return m, cmd
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("fetch was never applied")
	return m, nil
}

// runRecord executes the batched commands of an applying tick and feeds the
// history write result back into the model.
func runRecord(t *testing.T, m DashboardModel, cmd tea.Cmd) DashboardModel {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected tick and history commands to be batched")
	}
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(historyRecordedMsg); ok {
			m, _ = update(t, m, msg)
			return m
		}
	}
	t.Fatalf("no history write in batch")
	return m
}

// runMsg executes cmd and feeds its message back into the model.
func runMsg(t *testing.T, m DashboardModel, cmd tea.Cmd) (DashboardModel, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	return update(t, m, cmd())
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m DashboardModel, msg tea.Msg) (DashboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	dm, ok := next.(DashboardModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return dm, cmd
}
