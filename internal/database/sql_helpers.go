package database

import (
	"database/sql"
	"time"

	"github.com/akyairhashvil/contribcheck/internal/models"
)

// Fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// nullableString converts a string to sql.NullString for optional fields.
// Empty strings are treated as NULL.
func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseStatus(s string) models.FetchStatus {
	for _, st := range []models.FetchStatus{models.FetchIdle, models.FetchInFlight, models.FetchSucceeded, models.FetchFailed} {
		if st.String() == s {
			return st
		}
	}
	return models.FetchIdle
}
