// Package dateutil provides calendar-day arithmetic for the rolling log
// windows. All dates are ISO YYYY-MM-DD strings normalized to UTC so that a
// day never shifts across the host's timezone offset.
package dateutil

import (
	"fmt"
	"time"
)

// DayFormat is the ISO calendar-day layout used everywhere.
const DayFormat = "2006-01-02"

// LogWindowDays is the number of days of food log retained and navigable.
const LogWindowDays = 7

// WeightWindowDays is the number of days shown in the weight trend.
const WeightWindowDays = 14

// Today returns the current UTC calendar date.
func Today() string {
	return Format(time.Now())
}

// Format renders t as a UTC calendar date.
func Format(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// Parse converts an ISO day string to a UTC midnight time. It rejects
// anything time.Parse would normalize away (e.g. 2024-02-30).
func Parse(day string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, day, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", day, err)
	}
	return t, nil
}

// Valid reports whether day is a well-formed calendar date.
func Valid(day string) bool {
	_, err := Parse(day)
	return err == nil
}

// AddDays returns day shifted by n calendar days.
func AddDays(day string, n int) (string, error) {
	t, err := Parse(day)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// LastNDays returns the n days ending at ref, ascending.
func LastNDays(ref string, n int) ([]string, error) {
	t, err := Parse(ref)
	if err != nil {
		return nil, err
	}
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[i] = Format(t.AddDate(0, 0, i-(n-1)))
	}
	return days, nil
}

// NextNDays returns the n days starting at ref, ascending.
func NextNDays(ref string, n int) ([]string, error) {
	t, err := Parse(ref)
	if err != nil {
		return nil, err
	}
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[i] = Format(t.AddDate(0, 0, i))
	}
	return days, nil
}

// InWindow reports whether day falls within the windowDays-day window ending
// at ref, both boundaries inclusive. ISO day strings compare correctly as
// plain strings.
func InWindow(day, ref string, windowDays int) bool {
	oldest, err := AddDays(ref, -(windowDays - 1))
	if err != nil {
		return false
	}
	return day >= oldest && day <= ref
}
