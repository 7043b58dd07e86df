package tracker

import (
	"encoding/json"
	"time"
)

// TrackerTime accepts the export timestamp 2024-05-22T17:06:54.875+0000,
// RFC3339, and zone-less local times
type TrackerTime struct {
	time.Time
}

var trackerTimeFormats = []string{
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05-0700",
	time.RFC3339Nano,
}

// UnmarshalJSON implements json.Unmarshaler
func (t *TrackerTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	var lastErr error
	for _, layout := range trackerTimeFormats {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}

	// hand-edited exports often drop the zone
	if parsed, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local); err == nil {
		t.Time = parsed
		return nil
	}

	return lastErr
}

// Issue is a single exported Tracker issue. Only the fields the
// resolution report reads are decoded.
type Issue struct {
	Key        string       `json:"key"`
	Summary    string       `json:"summary"`
	Status     *Status      `json:"status,omitempty"`
	CreatedAt  TrackerTime  `json:"createdAt"`
	ResolvedAt *TrackerTime `json:"resolvedAt,omitempty"`
}

// IsResolved reports whether the issue has a resolution timestamp
func (i *Issue) IsResolved() bool {
	return i.ResolvedAt != nil && !i.ResolvedAt.IsZero()
}

// StatusName returns the display name of the status, falling back to its key
func (i *Issue) StatusName() string {
	if i.Status == nil {
		return ""
	}
	if i.Status.Display != "" {
		return i.Status.Display
	}
	return i.Status.Key
}

// Status is the workflow state of an issue
type Status struct {
	Key     string `json:"key"`
	Display string `json:"display"`
}
