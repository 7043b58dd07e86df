package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// LoadIssues reads a JSON array of issues exported from Tracker
func LoadIssues(path string, logger *zap.Logger) ([]Issue, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read issues file: %w", err)
	}

	var issues []Issue
	if err := json.Unmarshal(data, &issues); err != nil {
		return nil, fmt.Errorf("failed to parse issues file: %w", err)
	}

	for i, issue := range issues {
		if issue.CreatedAt.IsZero() {
			return nil, fmt.Errorf("issue #%d (%s): createdAt is required", i, issue.Key)
		}
	}

	logger.Info("Issues loaded",
		zap.String("file", path),
		zap.Int("count", len(issues)))

	return issues, nil
}

// FormatISO8601Duration renders d as an ISO 8601 duration (PT#H#M#S).
// Hours are not folded into days so business durations stay comparable.
func FormatISO8601Duration(d time.Duration) string {
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	b.WriteString("PT")

	total := int64(d / time.Second)
	hours := total / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	if hours > 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dM", minutes)
	}
	if seconds > 0 || (hours == 0 && minutes == 0) {
		fmt.Fprintf(&b, "%dS", seconds)
	}

	return b.String()
}
