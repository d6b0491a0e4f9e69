package booking

import (
	"errors"
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a clock time expressed as minutes since midnight.
// Bookings carry no timezone; times are in the partner's local
// operating context.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errors.New("time of day out of range")
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses a "15:04" clock string. "24:00" is accepted as
// end-of-day so stored ranges ending at midnight round-trip.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if s == "24:00" {
		return TimeOfDay(minutesPerDay), nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// TimeRange is a half-open interval [start, end) within a single day.
type TimeRange struct {
	start TimeOfDay
	end   TimeOfDay
}

// NewTimeRange derives the end time from the start plus a duration in
// minutes. The end time is never supplied independently.
func NewTimeRange(start TimeOfDay, durationMin int) (TimeRange, error) {
	if durationMin <= 0 {
		return TimeRange{}, ErrInvalidDuration
	}
	end := start + TimeOfDay(durationMin)
	if end > minutesPerDay {
		return TimeRange{}, ErrSlotCrossesMidnight
	}
	return TimeRange{start: start, end: end}, nil
}

// ReconstructTimeRange rebuilds a range from stored endpoints.
func ReconstructTimeRange(start, end TimeOfDay) TimeRange {
	return TimeRange{start: start, end: end}
}

func (r TimeRange) Start() TimeOfDay { return r.start }
func (r TimeRange) End() TimeOfDay   { return r.end }

func (r TimeRange) DurationMin() int {
	return int(r.end - r.start)
}

// Overlaps uses half-open semantics: [s1,e1) and [s2,e2) overlap iff
// s1 < e2 && s2 < e1. A range ending exactly when another starts does
// not conflict.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start < other.end && other.start < r.end
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.start, r.end)
}

// NewDate normalizes a timestamp to its calendar date. No timezone
// conversion is performed.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "2006-01-02" calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}
