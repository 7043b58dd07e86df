package calendar

import "time"

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeHoliday
)

// String returns the lowercase name used in config and holiday files
func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// Calendar classifies dates and knows their business hours
type Calendar interface {
	// IsHoliday reports whether the date is a holiday or a weekend
	IsHoliday(date time.Time) bool

	// DayType returns the classification of the date
	DayType(date time.Time) DayType

	// Window returns the business hours for the given classification
	Window(dayType DayType) Window

	// OpenDuration returns the full business time available on the date
	OpenDuration(date time.Time) time.Duration
}
