package models

import (
	"encoding/json"
	"testing"

	"github.com/akyairhashvil/contribcheck/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCalendar() ContributionCalendar {
	return ContributionCalendar{
		TotalContributions: 42,
		Weeks: []Week{
			{ContributionDays: []ContributionDay{
				{Date: "2024-05-31", ContributionCount: 0, Color: "#ebedf0"},
			}},
			{ContributionDays: []ContributionDay{
				{Date: "2024-06-01", ContributionCount: 3, Color: "#40c463"},
				{Date: "2024-06-02", ContributionCount: 1, Color: "#9be9a8"},
			}},
		},
	}
}

func TestFetchStatusString(t *testing.T) {
	assert.Equal(t, "idle", FetchIdle.String())
	assert.Equal(t, "in_flight", FetchInFlight.String())
	assert.Equal(t, "succeeded", FetchSucceeded.String())
	assert.Equal(t, "failed", FetchFailed.String())
	assert.Equal(t, "unknown", FetchStatus(99).String())
}

func TestZeroFetchStateIsIdle(t *testing.T) {
	var st FetchState
	assert.Equal(t, FetchIdle, st.Status)
	assert.Empty(t, st.Message)
}

func TestCalendarJSONRoundTrip(t *testing.T) {
	in := sampleCalendar()
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out ContributionCalendar
	require.NoError(t, json.Unmarshal(data, &out))

	require.Len(t, out.Weeks, len(in.Weeks))
	for i := range in.Weeks {
		require.Len(t, out.Weeks[i].ContributionDays, len(in.Weeks[i].ContributionDays))
		for j, d := range in.Weeks[i].ContributionDays {
			assert.Equal(t, d, out.Weeks[i].ContributionDays[j])
		}
	}
	assert.Equal(t, in.TotalContributions, out.TotalContributions)
}

func TestCalendarJSONFieldNames(t *testing.T) {
	raw := `{"totalContributions":7,"weeks":[{"contributionDays":[{"date":"2024-01-01","contributionCount":7,"color":"#216e39"}]}]}`
	var cal ContributionCalendar
	require.NoError(t, json.Unmarshal([]byte(raw), &cal))
	assert.Equal(t, uint(7), cal.TotalContributions)
	assert.Equal(t, "2024-01-01", cal.Weeks[0].ContributionDays[0].Date)
	assert.Equal(t, "#216e39", cal.Weeks[0].ContributionDays[0].Color)
}

func TestFetchRecordDuration(t *testing.T) {
	var r FetchRecord
	assert.Zero(t, r.Duration())
}

func TestTodayContributed(t *testing.T) {
	st := sampleCalendar().Today("2024-06-01")
	assert.Equal(t, TodayContributed, st.Kind)
	assert.Equal(t, uint(3), st.Count())
}

func TestTodayNoData(t *testing.T) {
	st := sampleCalendar().Today("2024-06-03")
	assert.Equal(t, TodayNoData, st.Kind)
	assert.Zero(t, st.Count())
}

func TestTodayNoContributions(t *testing.T) {
	st := sampleCalendar().Today("2024-05-31")
	assert.Equal(t, TodayNoContributions, st.Kind)
	assert.Equal(t, "2024-05-31", st.Day.Date)
}

func TestFindDayReturnsFirstMatch(t *testing.T) {
	cal := ContributionCalendar{Weeks: []Week{
		{ContributionDays: []ContributionDay{{Date: "2024-06-01", ContributionCount: 3}}},
		{ContributionDays: []ContributionDay{{Date: "2024-06-01", ContributionCount: 9}}},
	}}
	d, ok := cal.FindDay("2024-06-01")
	require.True(t, ok)
	assert.Equal(t, uint(3), d.ContributionCount)
}

func TestFindDayEmptyCalendar(t *testing.T) {
	_, ok := ContributionCalendar{}.FindDay("2024-06-01")
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	st := sampleCalendar().Stats()
	assert.Equal(t, 3, st.Days)
	assert.Equal(t, 2, st.ActiveDays)
	assert.Equal(t, uint(3), st.MaxCount)
	assert.Equal(t, "2024-06-01", st.MaxDate)
	assert.Equal(t, 2, st.CurrentStreak)
	assert.Equal(t, 2, st.LongestStreak)
}

func TestStatsCurrentStreakSurvivesQuietToday(t *testing.T) {
	cal := ContributionCalendar{Weeks: []Week{{ContributionDays: []ContributionDay{
		{Date: "2024-06-01", ContributionCount: 1},
		{Date: "2024-06-02", ContributionCount: 2},
		{Date: "2024-06-03", ContributionCount: 0},
	}}}}
	assert.Equal(t, 2, cal.Stats().CurrentStreak)

	cal.Weeks[0].ContributionDays = append(cal.Weeks[0].ContributionDays, ContributionDay{Date: "2024-06-04"})
	assert.Equal(t, 0, cal.Stats().CurrentStreak)
}

func TestStatsDoesNotRecomputeTotal(t *testing.T) {
	cal := sampleCalendar()
	_ = cal.Stats()
	assert.Equal(t, uint(42), cal.TotalContributions)
}

func TestGridPlacesDaysByWeekday(t *testing.T) {
	grid := sampleCalendar().Grid()
	// 2024-05-31 is a Friday, 2024-06-01 a Saturday, 2024-06-02 a Sunday.
	require.Len(t, grid[5], 2)
	assert.True(t, grid[5][0].Present)
	assert.Equal(t, "2024-05-31", grid[5][0].Date)
	assert.Equal(t, util.RGB{R: 64, G: 196, B: 99}, grid[6][1].Color)
	assert.Equal(t, "2024-06-02", grid[0][1].Date)
	assert.False(t, grid[0][0].Present)
}

func TestGridFallsBackToPosition(t *testing.T) {
	cal := ContributionCalendar{Weeks: []Week{{ContributionDays: []ContributionDay{
		{Date: "not-a-date", ContributionCount: 1, Color: "nope"},
	}}}}
	grid := cal.Grid()
	assert.True(t, grid[0][0].Present)
	assert.Equal(t, util.FallbackGray, grid[0][0].Color)
}
