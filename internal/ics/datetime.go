package ics

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrDateOnly marks DTSTART values that carry a date with no time
// component. The feed uses these for all-day placeholders, which the
// schedule does not display.
var ErrDateOnly = errors.New("date-only value")

const (
	layoutUTC      = "20060102T150405Z"
	layoutFloating = "20060102T150405"
)

// ParseDateTime interprets an iCalendar DATE-TIME value as a UTC instant.
//
// Values ending in Z are already UTC. Floating values are resolved against
// tzid when one is given; when the zone cannot be loaded the wall clock is
// read as UTC instead. That loses the real offset, but keeps the event on
// the schedule, which beats dropping it over a zone name we do not know.
// Floating values without a TZID are read as UTC as well, never as the
// host zone.
func ParseDateTime(value, tzid string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if isDateOnly(value) {
		return time.Time{}, ErrDateOnly
	}

	if strings.HasSuffix(value, "Z") {
		t, err := time.Parse(layoutUTC, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse utc date-time %q: %w", value, err)
		}
		return t, nil
	}

	loc := time.UTC
	if tzid != "" {
		if loaded, err := time.LoadLocation(tzid); err == nil {
			loc = loaded
		}
	}

	t, err := time.ParseInLocation(layoutFloating, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date-time %q: %w", value, err)
	}
	return t.UTC(), nil
}

func isDateOnly(value string) bool {
	if len(value) != 8 {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
