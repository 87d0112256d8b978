// Package dateutil provides the calendar-day arithmetic the planner is
// keyed on: canonical day keys, week indexes and year phases relative to
// a fixed epoch.
package dateutil

import (
	"fmt"
	"time"
)

const keyLayout = "2006-01-02"

// Midnight truncates t to its calendar day, pinned to UTC midnight.
// Only the year/month/day components matter; wall-clock time and the
// zone t happens to carry are discarded.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Key returns the canonical YYYY-MM-DD key for t's calendar day.
// Two times on the same calendar day always map to the same key.
func Key(t time.Time) string {
	return Midnight(t).Format(keyLayout)
}

// ParseKey parses a YYYY-MM-DD day key back to UTC midnight.
func ParseKey(s string) (time.Time, error) {
	t, err := time.Parse(keyLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day key %q: %w", s, err)
	}
	return t, nil
}

// WeekIndex returns floor((date - epoch) / 7 days) on whole calendar
// days. Dates before the epoch yield negative indexes.
func WeekIndex(date, epoch time.Time) int {
	days := int(Midnight(date).Sub(Midnight(epoch)) / (24 * time.Hour))
	idx := days / 7
	if days%7 != 0 && days < 0 {
		idx--
	}
	return idx
}

// YearPhase returns the year offset of date from the epoch, clamped to
// [0, 4]. It selects one of the five business-phase narratives.
func YearPhase(date, epoch time.Time) int {
	phase := date.Year() - epoch.Year()
	if phase < 0 {
		phase = 0
	}
	if phase > 4 {
		phase = 4
	}
	return phase
}
