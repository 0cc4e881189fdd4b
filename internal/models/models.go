package models

import "time"

// ContributionCalendar is the per-day activity record of one user, grouped
// into weeks, oldest week first. TotalContributions is the server-reported
// aggregate and is never recomputed from the days.
type ContributionCalendar struct {
	TotalContributions uint   `json:"totalContributions"`
	Weeks              []Week `json:"weeks"`
}

// Week holds up to seven days ordered by weekday.
type Week struct {
	ContributionDays []ContributionDay `json:"contributionDays"`
}

// ContributionDay is a single calendar date.
type ContributionDay struct {
	Date              string `json:"date"` // YYYY-MM-DD
	ContributionCount uint   `json:"contributionCount"`
	Color             string `json:"color"`
}

// FetchStatus enumerates the lifecycle of the calendar fetch.
type FetchStatus int

const (
	FetchIdle FetchStatus = iota
	FetchInFlight
	FetchSucceeded
	FetchFailed
)

func (s FetchStatus) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchInFlight:
		return "in_flight"
	case FetchSucceeded:
		return "succeeded"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchState is the latest fetch outcome. Calendar is only meaningful when
// Status is FetchSucceeded, Message only when Status is FetchFailed.
type FetchState struct {
	Status   FetchStatus
	Calendar ContributionCalendar
	Message  string
}

// FetchRecord is one persisted fetch outcome.
type FetchRecord struct {
	ID                 string
	Login              string
	TokenFingerprint   string
	StartedAt          time.Time
	FinishedAt         time.Time
	Status             FetchStatus
	Message            string
	TotalContributions uint
}

// Duration is the wall time the fetch took.
func (r FetchRecord) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
