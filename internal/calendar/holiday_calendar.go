package calendar

import (
	"sort"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/username/business-time/pkg/dateutil"
	"go.uber.org/zap"
)

// DefaultHolidays returns the built-in holiday list
func DefaultHolidays() []time.Time {
	return []time.Time{
		time.Date(2021, 5, 5, 0, 0, 0, 0, time.UTC),
	}
}

// oneOffHoliday pins a fixed month/day to a single year
func oneOffHoliday(date time.Time) *cal.Holiday {
	return &cal.Holiday{
		Name:      dateutil.DateKey(date),
		Type:      cal.ObservancePublic,
		Month:     date.Month(),
		Day:       date.Day(),
		StartYear: date.Year(),
		EndYear:   date.Year(),
		Func:      cal.CalcDayOfMonth,
	}
}

// HolidayCalendar implements Calendar on a Mon-Fri business calendar with
// the injected holidays added. It is read-only after construction.
type HolidayCalendar struct {
	business *cal.BusinessCalendar
	holidays []time.Time
	hours    *Hours
	logger   *zap.Logger
}

// NewHolidayCalendar creates a new HolidayCalendar instance.
// Only the calendar date of each holiday is used.
func NewHolidayCalendar(holidays []time.Time, hours *Hours, logger *zap.Logger) *HolidayCalendar {
	if hours == nil {
		hours = DefaultHours()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	business := cal.NewBusinessCalendar()

	seen := make(map[string]bool, len(holidays))
	dates := make([]time.Time, 0, len(holidays))
	for _, h := range holidays {
		key := dateutil.DateKey(h)
		if seen[key] {
			continue
		}
		seen[key] = true
		dates = append(dates, time.Date(h.Year(), h.Month(), h.Day(), 0, 0, 0, 0, time.UTC))
		business.AddHoliday(oneOffHoliday(h))
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	logger.Debug("Holiday calendar created",
		zap.Int("holidays", len(dates)),
		zap.Stringer("workday_hours", hours.Window(DayTypeWorkday)),
		zap.Stringer("holiday_hours", hours.Window(DayTypeHoliday)))

	return &HolidayCalendar{
		business: business,
		holidays: dates,
		hours:    hours,
		logger:   logger,
	}
}

// IsHoliday checks if the date is a listed holiday or falls on a weekend
func (hc *HolidayCalendar) IsHoliday(date time.Time) bool {
	return !hc.business.IsWorkday(date)
}

// DayType returns the classification of the date
func (hc *HolidayCalendar) DayType(date time.Time) DayType {
	if hc.IsHoliday(date) {
		return DayTypeHoliday
	}
	return DayTypeWorkday
}

// Window returns the business hours for the day type
func (hc *HolidayCalendar) Window(dayType DayType) Window {
	return hc.hours.Window(dayType)
}

// OpenOn returns the opening time of the date
func (hc *HolidayCalendar) OpenOn(date time.Time) Clock {
	return hc.hours.OpeningTime(hc.DayType(date))
}

// CloseOn returns the closing time of the date
func (hc *HolidayCalendar) CloseOn(date time.Time) Clock {
	return hc.hours.ClosingTime(hc.DayType(date))
}

// OpenDuration returns closing minus opening for the date's day type
func (hc *HolidayCalendar) OpenDuration(date time.Time) time.Duration {
	dayType := hc.DayType(date)
	d := hc.hours.Window(dayType).Duration()

	hc.logger.Debug("Business time available",
		zap.String("date", dateutil.DateKey(date)),
		zap.Stringer("day_type", dayType),
		zap.Duration("open", d))

	return d
}

// SecondsOpen is OpenDuration expressed in seconds
func (hc *HolidayCalendar) SecondsOpen(date time.Time) float64 {
	return hc.OpenDuration(date).Seconds()
}

// Holidays returns the configured holidays in ascending order
func (hc *HolidayCalendar) Holidays() []time.Time {
	result := make([]time.Time, len(hc.holidays))
	copy(result, hc.holidays)
	return result
}
