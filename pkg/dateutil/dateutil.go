package dateutil

import (
	"fmt"
	"time"
)

// TimestampLayout is the layout used when printing business moments
const TimestampLayout = "2006-01-02 15:04:05"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// AddDays moves the date by n calendar days keeping the wall clock.
// Unlike Add(24h) this never drifts across DST transitions.
func AddDays(date time.Time, n int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day()+n,
		date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DateKey returns the calendar date as YYYY-MM-DD
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// FormatTimestamp formats t as YYYY-MM-DD HH:MM:SS
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

var layouts = []string{
	"2006-01-02",
	"02.01.2006",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
}

// ParseDate parses date string in various formats (UTC when no zone is given)
func ParseDate(dateStr string) (time.Time, error) {
	return ParseInLocation(dateStr, time.UTC)
}

// ParseInLocation parses a date or timestamp string in various formats.
// Values without an explicit zone are interpreted in loc.
func ParseInLocation(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", value)
}

// SplitDuration decomposes the absolute value of d into days, hours,
// minutes and seconds. Sub-second remainder is dropped.
func SplitDuration(d time.Duration) (days, hours, minutes, seconds int) {
	if d < 0 {
		d = -d
	}
	total := int64(d / time.Second)
	days = int(total / 86400)
	hours = int(total % 86400 / 3600)
	minutes = int(total % 3600 / 60)
	seconds = int(total % 60)
	return
}

// FormatHMS renders d as [-]H:MM:SS with hours not wrapped at 24
func FormatHMS(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
	}
	days, hours, minutes, seconds := SplitDuration(d)
	return fmt.Sprintf("%s%d:%02d:%02d", sign, days*24+hours, minutes, seconds)
}
