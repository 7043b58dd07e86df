package businesstime

import (
	"time"

	"github.com/username/business-time/internal/calendar"
	"github.com/username/business-time/pkg/dateutil"
	"go.uber.org/zap"
)

// Calculator builds business moments against one calendar
type Calculator struct {
	calendar calendar.Calendar
	logger   *zap.Logger
}

// NewCalculator creates a new Calculator
func NewCalculator(cal calendar.Calendar, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{
		calendar: cal,
		logger:   logger,
	}
}

// New creates a moment for ts without normalization.
// Use it when ts is already a valid business timestamp.
func (c *Calculator) New(ts time.Time, role Role) *Moment {
	dayType := c.calendar.DayType(ts)
	window := c.calendar.Window(dayType)

	return &Moment{
		Timestamp: ts,
		Role:      role,
		DayType:   dayType,
		Open:      window.Open,
		Close:     window.Close,
		calc:      c,
	}
}

// FromTimestamp creates a moment and snaps it into business hours.
//
// After closing an issue moves to the next day's opening while a resolve
// is capped at the same day's closing. Before opening an issue moves to the
// same day's opening while a resolve goes back to the previous day's closing.
func (c *Calculator) FromTimestamp(ts time.Time, role Role) *Moment {
	m := c.New(ts, role)
	clock := calendar.ClockOf(ts)

	if IsWithinBusinessHours(m.Open, m.Close, clock) {
		c.logger.Debug("Timestamp within business hours",
			zap.Stringer("moment", m),
			zap.Stringer("role", role))
		return m
	}

	if clock > m.Close {
		if role == RoleResolve {
			m.Timestamp = m.Close.On(ts)
		} else {
			next := dateutil.AddDays(ts, 1)
			m.Timestamp = c.calendar.Window(c.calendar.DayType(next)).Open.On(next)
		}
	} else {
		if role == RoleIssue {
			m.Timestamp = m.Open.On(ts)
		} else {
			prev := dateutil.AddDays(ts, -1)
			m.Timestamp = c.calendar.Window(c.calendar.DayType(prev)).Close.On(prev)
		}
	}

	c.logger.Debug("Timestamp normalized",
		zap.String("raw", dateutil.FormatTimestamp(ts)),
		zap.Stringer("moment", m),
		zap.Stringer("role", role),
		zap.Stringer("day_type", m.DayType))

	return m
}

// Elapsed normalizes both endpoints and returns the business time between them
func (c *Calculator) Elapsed(issue, resolve time.Time) (time.Duration, error) {
	issueMoment := c.FromTimestamp(issue, RoleIssue)
	resolveMoment := c.FromTimestamp(resolve, RoleResolve)
	return resolveMoment.Sub(issueMoment)
}
