package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/contribcheck/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Result) Result {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(2 * time.Second):
		t.Fatalf("worker did not deliver a result")
	}
	return Result{}
}

func TestSpawnDeliversExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := NewMockFetcher(ctrl)
	f.EXPECT().FetchCalendar(gomock.Any(), "octocat").
		Return(models.ContributionCalendar{TotalContributions: 9}, nil).Times(1)

	ch := Spawn(context.Background(), f, "octocat", "id-1")
	res := receive(t, ch)
	require.NoError(t, res.Err)
	assert.Equal(t, "id-1", res.ID)
	assert.Equal(t, uint(9), res.Calendar.TotalContributions)
	assert.False(t, res.Finished.Before(res.Started))

	select {
	case extra := <-ch:
		t.Fatalf("unexpected second result: %+v", extra)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestSpawnDeliversError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := NewMockFetcher(ctrl)
	f.EXPECT().FetchCalendar(gomock.Any(), gomock.Any()).
		Return(models.ContributionCalendar{}, errors.New("Request error: boom"))

	res := receive(t, Spawn(context.Background(), f, "octocat", "id-2"))
	require.Error(t, res.Err)
	assert.Equal(t, "Request error: boom", res.Err.Error())
}

type panicFetcher struct{}

func (panicFetcher) FetchCalendar(context.Context, string) (models.ContributionCalendar, error) {
	panic("decoder exploded")
}

func TestSpawnRecoversPanic(t *testing.T) {
	res := receive(t, Spawn(context.Background(), panicFetcher{}, "octocat", "id-3"))
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "decoder exploded")
}

func TestSpawnWithoutReaderDoesNotLeak(t *testing.T) {
	done := make(chan struct{})
	f := fetcherFunc(func() (models.ContributionCalendar, error) {
		defer close(done)
		return models.ContributionCalendar{}, nil
	})
	_ = Spawn(context.Background(), f, "octocat", "id-4")
	<-done
	// goleak in TestMain fails the package if the worker is still blocked.
}

type fetcherFunc func() (models.ContributionCalendar, error)

func (f fetcherFunc) FetchCalendar(context.Context, string) (models.ContributionCalendar, error) {
	return f()
}
