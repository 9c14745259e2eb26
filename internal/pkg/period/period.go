// Package period implements calendar-window filtering of timestamped records.
package period

import (
	"fmt"
	"time"
)

// Window selects records by calendar fields. Zero fields match anything, so
// the zero Window matches every timestamp.
type Window struct {
	Year  int
	Month int
	Day   int
}

// Granularity names the admin monitoring presets.
type Granularity string

const (
	Daily   Granularity = "harian"
	Monthly Granularity = "bulanan"
	Yearly  Granularity = "tahunan"
)

func (w Window) IsZero() bool {
	return w.Year == 0 && w.Month == 0 && w.Day == 0
}

// HasMonth reports whether both year and month are set.
func (w Window) HasMonth() bool {
	return w.Year > 0 && w.Month >= 1 && w.Month <= 12
}

// Matches reports whether t falls inside the window when read in loc.
// Zero timestamps never match a non-empty window.
func (w Window) Matches(t time.Time, loc *time.Location) bool {
	if w.IsZero() {
		return true
	}
	if t.IsZero() {
		return false
	}
	if loc != nil {
		t = t.In(loc)
	}
	if w.Year != 0 && t.Year() != w.Year {
		return false
	}
	if w.Month != 0 && int(t.Month()) != w.Month {
		return false
	}
	if w.Day != 0 && t.Day() != w.Day {
		return false
	}
	return true
}

// Validate rejects out-of-range fields.
func (w Window) Validate() error {
	if w.Month < 0 || w.Month > 12 {
		return fmt.Errorf("month %d out of range", w.Month)
	}
	if w.Day < 0 || w.Day > 31 {
		return fmt.Errorf("day %d out of range", w.Day)
	}
	if w.Year < 0 {
		return fmt.Errorf("year %d out of range", w.Year)
	}
	return nil
}

// Relative builds the window for g containing now.
func Relative(g Granularity, now time.Time) (Window, error) {
	switch g {
	case Daily:
		return Window{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}, nil
	case Monthly:
		return Window{Year: now.Year(), Month: int(now.Month())}, nil
	case Yearly:
		return Window{Year: now.Year()}, nil
	default:
		return Window{}, fmt.Errorf("unknown period %q", g)
	}
}

// Filter returns the items of xs whose timestamp falls inside w.
func Filter[T any](xs []T, w Window, loc *time.Location, at func(T) time.Time) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if w.Matches(at(x), loc) {
			out = append(out, x)
		}
	}
	return out
}

// DaysIn returns the number of days in the window's month.
func (w Window) DaysIn() int {
	if !w.HasMonth() {
		return 31
	}
	return time.Date(w.Year, time.Month(w.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
