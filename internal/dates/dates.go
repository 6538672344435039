// Package dates resolves the relative date words accepted on the command line.
package dates

import (
	"fmt"
	"strings"
	"time"

	"doer/internal/domain"
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parse resolves s relative to today. It accepts "today", "yesterday",
// "tomorrow", a weekday name (that day of today's Monday-based week, also
// as a three-letter abbreviation) or an ISO date. Empty means today.
func Parse(s string, today domain.Date) (domain.Date, error) {
	word := strings.ToLower(strings.TrimSpace(s))

	switch word {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "tomorrow":
		return today.AddDays(1), nil
	}

	if wd, ok := lookupWeekday(word); ok {
		return weekdayOfWeek(today, wd), nil
	}

	date, err := domain.ParseDate(word)
	if err != nil {
		return domain.Date{}, fmt.Errorf("unrecognised date %q: use today, yesterday, tomorrow, a weekday or YYYY-MM-DD", s)
	}
	return date, nil
}

func lookupWeekday(word string) (time.Weekday, bool) {
	if wd, ok := weekdays[word]; ok {
		return wd, true
	}
	if len(word) == 3 {
		for name, wd := range weekdays {
			if strings.HasPrefix(name, word) {
				return wd, true
			}
		}
	}
	return 0, false
}

// weekdayOfWeek returns the given weekday in the ISO week containing today
func weekdayOfWeek(today domain.Date, wd time.Weekday) domain.Date {
	monday := today.AddDays(-isoOffset(today.Weekday()))
	return monday.AddDays(isoOffset(wd))
}

// isoOffset counts days from Monday
func isoOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
