package businesstime

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/business-time/internal/calendar"
	"github.com/username/business-time/pkg/dateutil"
	"go.uber.org/zap"
)

// ErrTypeMismatch is returned when a moment is subtracted from something
// that is not a moment of the same calculator
var ErrTypeMismatch = errors.New("business moment can only be subtracted with a business moment")

// Role tells whether a moment starts or ends an interval
type Role bool

const (
	RoleIssue   Role = true
	RoleResolve Role = false
)

func (r Role) String() string {
	if r == RoleIssue {
		return "issue"
	}
	return "resolve"
}

// ParseRole parses "issue" or "resolve"
func ParseRole(value string) (Role, error) {
	switch value {
	case "issue", "start":
		return RoleIssue, nil
	case "resolve", "end":
		return RoleResolve, nil
	default:
		return RoleIssue, fmt.Errorf("unknown role %q, expected issue or resolve", value)
	}
}

// Moment is one endpoint of a business interval.
//
// DayType, Open and Close are captured from the date the moment was
// constructed with. Normalization may move Timestamp to another date; the
// captured hours stay pinned to the original one and Sub relies on that.
type Moment struct {
	Timestamp time.Time
	Role      Role
	DayType   calendar.DayType
	Open      calendar.Clock
	Close     calendar.Clock

	calc *Calculator
}

// String formats the timestamp as YYYY-MM-DD HH:MM:SS
func (m *Moment) String() string {
	return dateutil.FormatTimestamp(m.Timestamp)
}

// Sub returns the business time elapsed from other to m.
// The result is negative when m is earlier than other.
func (m *Moment) Sub(other *Moment) (time.Duration, error) {
	if other == nil || m.calc == nil {
		return 0, fmt.Errorf("subtract %v: %w", m, ErrTypeMismatch)
	}
	if other.calc != m.calc {
		return 0, fmt.Errorf("subtract moments of different calendars: %w", ErrTypeMismatch)
	}

	if dateutil.IsSameDay(m.Timestamp, other.Timestamp) {
		return m.Timestamp.Sub(other.Timestamp), nil
	}

	logger := m.calc.logger
	minuend, sub := m, other
	sign := time.Duration(1)
	if m.Timestamp.Before(other.Timestamp) {
		logger.Debug("Negative time difference, swapping operands",
			zap.Stringer("minuend", m),
			zap.Stringer("subtrahend", other))
		minuend, sub = other, m
		sign = -1
	}

	var total time.Duration
	last := dateutil.StartOfDay(minuend.Timestamp)
	for day := dateutil.StartOfDay(sub.Timestamp); !day.After(last); day = dateutil.AddDays(day, 1) {
		total += m.calc.calendar.OpenDuration(day)
	}

	// Both gaps use the moment's own cached hours, not the hours of the
	// date its timestamp ended up on.
	tail := minuend.Close.On(minuend.Timestamp).Sub(minuend.Timestamp)
	head := sub.Timestamp.Sub(sub.Open.On(sub.Timestamp))
	total -= tail + head

	logger.Debug("Business time calculated",
		zap.Stringer("minuend", minuend),
		zap.Stringer("subtrahend", sub),
		zap.Duration("tail_gap", tail),
		zap.Duration("head_gap", head),
		zap.String("elapsed", dateutil.FormatHMS(sign*total)))

	return sign * total, nil
}

// IsWithinBusinessHours reports whether t lies in [opening, closing].
// When opening >= closing the window is taken to cross midnight.
func IsWithinBusinessHours(opening, closing, t calendar.Clock) bool {
	if opening < closing {
		return t >= opening && t <= closing
	}
	return t >= opening || t <= closing
}
