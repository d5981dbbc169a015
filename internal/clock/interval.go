package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/clocktally/internal/domain"
)

// TimestampLayout is the org-mode timestamp shape inside CLOCK brackets,
// e.g. "2024-03-05 Tue 09:00".
const TimestampLayout = "2006-01-02 Mon 15:04"

var (
	// ErrBadTimestamp indicates a captured timestamp does not fit TimestampLayout.
	ErrBadTimestamp = errors.New("malformed clock timestamp")

	// ErrWeekdayMismatch indicates the weekday abbreviation disagrees with the date.
	ErrWeekdayMismatch = errors.New("weekday does not match date")
)

// ParseTimestamp parses a single timestamp as a naive wall-clock value. The
// result carries the UTC location only so that arithmetic ignores DST.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrBadTimestamp, s, err)
	}
	// Layout is fixed width, so the abbreviation sits at [11:14].
	abbrev := s[11:14]
	if want := t.Weekday().String()[:3]; !strings.EqualFold(abbrev, want) {
		return time.Time{}, fmt.Errorf("%w: %q is a %s", ErrWeekdayMismatch, s, want)
	}
	return t, nil
}

// ParseInterval parses both sides of a capture. Either side failing fails the
// whole pair. End before Start is not an error.
func ParseInterval(c domain.Capture) (domain.Interval, error) {
	start, err := ParseTimestamp(c.Start)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("parsing start: %w", err)
	}
	end, err := ParseTimestamp(c.End)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("parsing end: %w", err)
	}
	return domain.Interval{Start: start, End: end}, nil
}
