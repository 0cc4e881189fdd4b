package models

// DateLayout is the format of ContributionDay.Date.
const DateLayout = "2006-01-02"

// TodayKind classifies the entry found for today.
type TodayKind int

const (
	// TodayNoData means the calendar has no entry for the date. This is
	// expected around year boundaries and is not an error.
	TodayNoData TodayKind = iota
	TodayNoContributions
	TodayContributed
)

// TodayStatus is the outcome of looking up today's entry.
type TodayStatus struct {
	Kind TodayKind
	Day  ContributionDay
}

// Count is the number of contributions recorded for the day, zero when absent.
func (s TodayStatus) Count() uint {
	if s.Kind == TodayNoData {
		return 0
	}
	return s.Day.ContributionCount
}

// FindDay scans weeks and days in stored order and returns the first day
// whose date matches.
func (c ContributionCalendar) FindDay(date string) (ContributionDay, bool) {
	for _, w := range c.Weeks {
		for _, d := range w.ContributionDays {
			if d.Date == date {
				return d, true
			}
		}
	}
	return ContributionDay{}, false
}

// Today reports the status of the given YYYY-MM-DD date.
func (c ContributionCalendar) Today(today string) TodayStatus {
	day, ok := c.FindDay(today)
	if !ok {
		return TodayStatus{Kind: TodayNoData}
	}
	if day.ContributionCount == 0 {
		return TodayStatus{Kind: TodayNoContributions, Day: day}
	}
	return TodayStatus{Kind: TodayContributed, Day: day}
}

// CalendarStats are values derived from the days in stored order.
type CalendarStats struct {
	Days          int
	ActiveDays    int
	MaxCount      uint
	MaxDate       string
	CurrentStreak int
	LongestStreak int
}

// Stats walks the days once. CurrentStreak counts consecutive active days
// ending at the last day, or at the day before it when the last day has no
// contributions yet.
func (c ContributionCalendar) Stats() CalendarStats {
	var st CalendarStats
	run := 0
	prevRun := 0
	for _, w := range c.Weeks {
		for _, d := range w.ContributionDays {
			st.Days++
			if d.ContributionCount == 0 {
				prevRun = run
				run = 0
				continue
			}
			st.ActiveDays++
			run++
			if run > st.LongestStreak {
				st.LongestStreak = run
			}
			if d.ContributionCount > st.MaxCount {
				st.MaxCount = d.ContributionCount
				st.MaxDate = d.Date
			}
		}
	}
	st.CurrentStreak = run
	if run == 0 {
		st.CurrentStreak = prevRun
	}
	return st
}
