package fetch

import (
	"context"
	"time"

	"github.com/akyairhashvil/contribcheck/internal/github"
	"github.com/akyairhashvil/contribcheck/internal/models"
	"github.com/akyairhashvil/contribcheck/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HistoryRecorder persists applied outcomes. *database.Database satisfies it.
//
//go:generate mockgen -source=coordinator.go -destination=mock_fetch_test.go -package=fetch
type HistoryRecorder interface {
	RecordFetch(ctx context.Context, rec models.FetchRecord) error
}

// Coordinator owns the fetch lifecycle. At most one worker is outstanding;
// Trigger and Poll must be called from the same goroutine, which is the only
// writer of the state.
type Coordinator struct {
	fetcher  Fetcher
	login    string
	tokenFP  string
	recorder HistoryRecorder
	logger   *zap.Logger
	newID    func() string

	state        models.FetchState
	results      <-chan Result
	pendingID    string
	spawned      int
	lastFetched  time.Time
	lastDuration time.Duration
	lastRecord   models.FetchRecord
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithRecorder stores every applied outcome.
func WithRecorder(r HistoryRecorder) Option {
	return func(c *Coordinator) { c.recorder = r }
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Coordinator) { c.logger = l }
}

// WithTokenFingerprint tags history rows with the credential in use.
func WithTokenFingerprint(fp string) Option {
	return func(c *Coordinator) { c.tokenFP = fp }
}

// WithIDFunc overrides fetch id generation.
func WithIDFunc(f func() string) Option {
	return func(c *Coordinator) { c.newID = f }
}

// NewCoordinator returns an idle coordinator for login.
func NewCoordinator(f Fetcher, login string, opts ...Option) *Coordinator {
	c := &Coordinator{
		fetcher: f,
		login:   login,
		logger:  zap.NewNop(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Trigger starts a fetch unless one is already in flight, in which case it
// changes nothing and returns false.
func (c *Coordinator) Trigger() bool {
	if c.state.Status == models.FetchInFlight {
		c.logger.Debug("fetch already in flight", zap.String("fetch_id", c.pendingID))
		return false
	}
	c.pendingID = c.newID()
	c.results = Spawn(context.Background(), c.fetcher, c.login, c.pendingID)
	c.spawned++
	c.state = models.FetchState{Status: models.FetchInFlight}
	c.logger.Info("fetch started", zap.String("fetch_id", c.pendingID), zap.String("login", c.login))
	return true
}

// Poll applies a delivered result without blocking. It returns true when the
// state changed and the view should be redrawn.
func (c *Coordinator) Poll() bool {
	if c.results == nil {
		return false
	}
	var res Result
	select {
	case res = <-c.results:
	default:
		return false
	}
	c.results = nil
	c.pendingID = ""
	c.apply(res)
	return true
}

func (c *Coordinator) apply(res Result) {
	rec := models.FetchRecord{
		ID:               res.ID,
		Login:            c.login,
		TokenFingerprint: c.tokenFP,
		StartedAt:        res.Started,
		FinishedAt:       res.Finished,
	}
	if res.Err != nil {
		c.state = models.FetchState{Status: models.FetchFailed, Message: res.Err.Error()}
		rec.Message = c.state.Message
		c.logger.Warn("fetch failed",
			zap.String("fetch_id", res.ID),
			zap.String("kind", github.Kind(res.Err)),
			zap.Error(res.Err))
	} else {
		c.state = models.FetchState{Status: models.FetchSucceeded, Calendar: res.Calendar}
		rec.TotalContributions = res.Calendar.TotalContributions
		c.logger.Info("fetch succeeded",
			zap.String("fetch_id", res.ID),
			zap.Uint("total", res.Calendar.TotalContributions),
			zap.Int("weeks", len(res.Calendar.Weeks)))
	}
	rec.Status = c.state.Status
	c.lastFetched = res.Finished
	c.lastDuration = rec.Duration()
	c.lastRecord = rec

	if c.recorder != nil {
		util.LogError(c.logger, "record fetch history", c.recorder.RecordFetch(context.Background(), rec))
	}
}

// State returns the latest state.
func (c *Coordinator) State() models.FetchState { return c.state }

// InFlight reports whether a worker is outstanding.
func (c *Coordinator) InFlight() bool { return c.state.Status == models.FetchInFlight }

// Login is the user whose calendar is fetched.
func (c *Coordinator) Login() string { return c.login }

// Spawned counts workers started since construction.
func (c *Coordinator) Spawned() int { return c.spawned }

// LastFetched is when the last applied result finished; zero before any.
func (c *Coordinator) LastFetched() time.Time { return c.lastFetched }

// LastDuration is how long the last applied fetch took.
func (c *Coordinator) LastDuration() time.Duration { return c.lastDuration }

// LastRecord is the history entry built for the last applied outcome. Callers
// without a recorder use it to persist the outcome themselves.
func (c *Coordinator) LastRecord() models.FetchRecord { return c.lastRecord }
