package config

// Layout constants.
const (
	// CellWidth is the number of terminal columns a day occupies.
	CellWidth = 2

	// CompactModeThreshold drops the weekday labels below this width.
	CompactModeThreshold = 60

	// WeekdayLabelWidth is the width of the row label gutter.
	WeekdayLabelWidth = 4

	// MinStatusWidth is the narrowest status line before truncation stops.
	MinStatusWidth = 20
)

// Display limits.
const (
	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
