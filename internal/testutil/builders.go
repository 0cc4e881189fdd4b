package testutil

import (
	"time"

	"github.com/akyairhashvil/contribcheck/internal/models"
)

// CalendarBuilder provides fluent API for creating test calendars.
type CalendarBuilder struct {
	cal models.ContributionCalendar
}

func NewCalendar() *CalendarBuilder {
	return &CalendarBuilder{}
}

func (b *CalendarBuilder) WithTotal(n uint) *CalendarBuilder {
	b.cal.TotalContributions = n
	return b
}

// WithWeek appends a week built from the given days.
func (b *CalendarBuilder) WithWeek(days ...models.ContributionDay) *CalendarBuilder {
	b.cal.Weeks = append(b.cal.Weeks, models.Week{ContributionDays: days})
	return b
}

// WithDays appends n consecutive days starting at start, seven per week,
// using counts cyclically.
func (b *CalendarBuilder) WithDays(start string, n int, counts ...uint) *CalendarBuilder {
	t, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return b
	}
	var week models.Week
	for i := 0; i < n; i++ {
		var count uint
		if len(counts) > 0 {
			count = counts[i%len(counts)]
		}
		week.ContributionDays = append(week.ContributionDays, Day(t.AddDate(0, 0, i).Format(models.DateLayout), count))
		if len(week.ContributionDays) == models.DaysPerWeek {
			b.cal.Weeks = append(b.cal.Weeks, week)
			week = models.Week{}
		}
	}
	if len(week.ContributionDays) > 0 {
		b.cal.Weeks = append(b.cal.Weeks, week)
	}
	return b
}

func (b *CalendarBuilder) Build() models.ContributionCalendar {
	return b.cal
}

// Day builds a day with the colour GitHub uses for its count bucket.
func Day(date string, count uint) models.ContributionDay {
	return models.ContributionDay{Date: date, ContributionCount: count, Color: LevelColor(count)}
}

// LevelColor mirrors the default light-theme palette.
func LevelColor(count uint) string {
	switch {
	case count == 0:
		return "#ebedf0"
	case count < 3:
		return "#9be9a8"
	case count < 6:
		return "#40c463"
	case count < 10:
		return "#30a14e"
	default:
		return "#216e39"
	}
}

// Envelope is the sample GraphQL response used by end-to-end tests.
const Envelope = `{"data":{"user":{"contributionsCollection":{"contributionCalendar":{"totalContributions":5,"weeks":[{"contributionDays":[{"date":"2024-01-01","contributionCount":5,"color":"#40c463"}]}]}}}},"errors":null}`
