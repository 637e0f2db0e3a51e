package utils

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/athletetrack/athletetrack/internal/constants"
)

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// FormatDate renders a timestamp as YYYY-MM-DD, the form display format.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DayKey truncates a timestamp to its calendar day in local time. Records are
// bucketed by this key when building per-day series.
func DayKey(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}

// Relative renders a timestamp as a human label ("3 days ago").
func Relative(t time.Time) string {
	return humanize.Time(t)
}

// LastUpdated returns the relative label for the newest of the given dates,
// falling back to 24 hours ago when there are none.
func LastUpdated(now time.Time, dates ...time.Time) string {
	latest := now.Add(-24 * time.Hour)
	for _, d := range dates {
		if d.After(latest) {
			latest = d
		}
	}
	return humanize.RelTime(latest, now, "ago", "from now")
}

// ValidateDate checks if the string matches the standard date format.
func ValidateDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}
