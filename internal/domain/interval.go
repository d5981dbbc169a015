package domain

import "time"

// Capture is the raw text of one CLOCK annotation, as matched in a log file.
type Capture struct {
	Start string
	End   string
	Path  string
	Line  int
}

// Interval is a parsed CLOCK annotation. Start and End are naive wall-clock
// values; no zone conversion is applied.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Day returns the day of month the interval is attributed to. Always the
// start day, even when the interval crosses midnight.
func (i Interval) Day() int {
	return i.Start.Day()
}

// Seconds returns End minus Start. Negative when the log line records an end
// before its start; callers keep such values as-is. Computed from Unix
// seconds so spans beyond time.Duration's range stay exact.
func (i Interval) Seconds() int64 {
	return i.End.Unix() - i.Start.Unix()
}
