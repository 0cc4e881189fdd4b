// Package fetch runs calendar fetches in the background and reconciles their
// outcome into a single FetchState owned by the UI goroutine.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/contribcheck/internal/models"
)

// Fetcher retrieves one calendar. *github.Client satisfies it.
//
//go:generate mockgen -source=worker.go -destination=mock_fetcher_test.go -package=fetch
type Fetcher interface {
	FetchCalendar(ctx context.Context, login string) (models.ContributionCalendar, error)
}

// Result is the single message a worker delivers.
type Result struct {
	ID       string
	Calendar models.ContributionCalendar
	Err      error
	Started  time.Time
	Finished time.Time
}

// Spawn starts one worker goroutine and returns its result channel. The
// channel has room for exactly one message and receives exactly one, even if
// the fetcher panics, so the goroutine always exits without a reader.
func Spawn(ctx context.Context, f Fetcher, login, id string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		res := Result{ID: id, Started: time.Now()}
		defer func() {
			if r := recover(); r != nil {
				res.Calendar = models.ContributionCalendar{}
				res.Err = fmt.Errorf("fetch panicked: %v", r)
			}
			res.Finished = time.Now()
			ch <- res
		}()
		res.Calendar, res.Err = f.FetchCalendar(ctx, login)
	}()
	return ch
}
