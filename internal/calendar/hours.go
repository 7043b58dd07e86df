package calendar

import (
	"fmt"
	"time"
)

// Clock is a time of day, stored as the offset from midnight
type Clock time.Duration

// NewClock builds a Clock from hour, minute and second
func NewClock(hour, minute, second int) Clock {
	return Clock(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second)
}

// ParseClock parses HH:MM:SS or HH:MM
func ParseClock(value string) (Clock, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return NewClock(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q, expected HH:MM[:SS]", value)
}

// ClockOf returns the time of day of t, sub-seconds included
func ClockOf(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute(), t.Second()) + Clock(t.Nanosecond())
}

func (c Clock) Hour() int   { return int(time.Duration(c) / time.Hour) }
func (c Clock) Minute() int { return int(time.Duration(c) % time.Hour / time.Minute) }
func (c Clock) Second() int { return int(time.Duration(c) % time.Minute / time.Second) }

// On places the clock on date's calendar day, in date's location
func (c Clock) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		c.Hour(), c.Minute(), c.Second(), 0, date.Location())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
}

// Window is the daily opening window of a day type.
// Close <= Open means the window crosses midnight.
type Window struct {
	Open  Clock
	Close Clock
}

// Duration returns closing minus opening, wrapping past midnight
func (w Window) Duration() time.Duration {
	d := time.Duration(w.Close - w.Open)
	if w.CrossesMidnight() {
		d += 24 * time.Hour
	}
	return d
}

// CrossesMidnight reports whether the window closes on the following day
func (w Window) CrossesMidnight() bool {
	return w.Close <= w.Open
}

func (w Window) String() string {
	return w.Open.String() + "-" + w.Close.String()
}

// Hours is the table of opening windows per day type
type Hours struct {
	windows map[DayType]Window
}

// NewHours creates an hours table
func NewHours(workday, holiday Window) *Hours {
	return &Hours{
		windows: map[DayType]Window{
			DayTypeWorkday: workday,
			DayTypeHoliday: holiday,
		},
	}
}

// DefaultHours returns 06:00-20:00 on workdays and 07:00-18:00 on holidays
func DefaultHours() *Hours {
	return NewHours(
		Window{Open: NewClock(6, 0, 0), Close: NewClock(20, 0, 0)},
		Window{Open: NewClock(7, 0, 0), Close: NewClock(18, 0, 0)},
	)
}

// Window returns the opening window for the day type
func (h *Hours) Window(dayType DayType) Window {
	return h.windows[dayType]
}

// OpeningTime returns the opening time for the day type
func (h *Hours) OpeningTime(dayType DayType) Clock {
	return h.windows[dayType].Open
}

// ClosingTime returns the closing time for the day type
func (h *Hours) ClosingTime(dayType DayType) Clock {
	return h.windows[dayType].Close
}
