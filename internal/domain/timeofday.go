package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time measured from midnight, kept at microsecond
// precision so it survives the ISO text form unchanged.
type TimeOfDay time.Duration

// OpenEnd marks a break that has not ended yet.
const OpenEnd = TimeOfDay(24*time.Hour - time.Microsecond)

// nowFunc is the ambient clock. Tests may replace it.
var nowFunc = time.Now

// Now returns the current local time of day
func Now() TimeOfDay {
	return TimeOfDayOf(nowFunc())
}

// TimeOfDayOf returns the time of day of t, truncated to microseconds
func TimeOfDayOf(t time.Time) TimeOfDay {
	d := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond()).Truncate(time.Microsecond)
	return TimeOfDay(d)
}

// NewTimeOfDay builds a TimeOfDay from its clock fields
func NewTimeOfDay(hour, minute, second, microsecond int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(microsecond)*time.Microsecond)
}

// ParseTimeOfDay parses HH:MM or HH:MM:SS with an optional fractional
// second. The hour always has two digits.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) < len("15:04") || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM[:SS[.ffffff]]", s)
	}
	layout := "15:04:05"
	if len(s) == len("15:04") {
		layout = "15:04"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return TimeOfDayOf(t), nil
}

func (t TimeOfDay) Hour() int {
	return int(time.Duration(t) / time.Hour)
}

func (t TimeOfDay) Minute() int {
	return int(time.Duration(t) % time.Hour / time.Minute)
}

func (t TimeOfDay) Second() int {
	return int(time.Duration(t) % time.Minute / time.Second)
}

func (t TimeOfDay) Microsecond() int {
	return int(time.Duration(t) % time.Second / time.Microsecond)
}

// String returns the ISO-8601 form, with six fractional digits only when
// the microsecond part is non-zero.
func (t TimeOfDay) String() string {
	if us := t.Microsecond(); us != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%06d", t.Hour(), t.Minute(), t.Second(), us)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Short returns HH:MM for display
func (t TimeOfDay) Short() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
