package tracker

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestFormatISO8601Duration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"8 hours", 8 * time.Hour, "PT8H"},
		{"1 hour 30 minutes", 90 * time.Minute, "PT1H30M"},
		{"45 minutes", 45 * time.Minute, "PT45M"},
		{"Multi-day business time", 53*time.Hour + 10*time.Minute, "PT53H10M"},
		{"Seconds only", 7 * time.Second, "PT7S"},
		{"Zero", 0, "PT0S"},
		{"Negative", -(2*time.Hour + 5*time.Second), "-PT2H5S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatISO8601Duration(tt.duration)

			if got != tt.want {
				t.Errorf("FormatISO8601Duration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}

func TestTrackerTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"Tracker format",
			`"2021-03-02T19:50:00.000+0000"`,
			time.Date(2021, 3, 2, 19, 50, 0, 0, time.UTC),
			false,
		},
		{
			"Without milliseconds",
			`"2021-03-02T22:50:00+0300"`,
			time.Date(2021, 3, 2, 19, 50, 0, 0, time.UTC),
			false,
		},
		{
			"RFC3339",
			`"2021-03-02T19:50:00Z"`,
			time.Date(2021, 3, 2, 19, 50, 0, 0, time.UTC),
			false,
		},
		{
			"Not a time",
			`"soon"`,
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TrackerTime
			err := json.Unmarshal([]byte(tt.input), &got)

			if (err != nil) != tt.wantErr {
				t.Errorf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got.Time, tt.want)
			}
		})
	}
}

func TestIssue_StatusName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Display name", `{"key": "OPS-1", "status": {"key": "closed", "display": "Closed"}}`, "Closed"},
		{"Key only", `{"key": "OPS-2", "status": {"key": "inProgress"}}`, "inProgress"},
		{"No status", `{"key": "OPS-3"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var issue Issue
			if err := json.Unmarshal([]byte(tt.input), &issue); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			if got := issue.StatusName(); got != tt.want {
				t.Errorf("StatusName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadIssues_NilLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.json")
	if err := os.WriteFile(path, []byte(`[{"key": "OPS-5", "createdAt": "2021-03-02T19:50:00Z"}]`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	issues, err := LoadIssues(path, nil)
	if err != nil {
		t.Fatalf("LoadIssues() error = %v", err)
	}
	if len(issues) != 1 {
		t.Errorf("LoadIssues() returned %d issues, want 1", len(issues))
	}
}

func TestLoadIssues(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	content := `[
  {"id": 1, "key": "OPS-1", "summary": "Printer on fire", "status": {"id": "3", "key": "closed", "display": "Closed"},
   "createdAt": "2021-03-02T19:50:00.000+0000", "resolvedAt": "2021-03-06T19:20:00.000+0000"},
  {"id": "2", "key": "OPS-2", "summary": "Still open",
   "createdAt": "2021-03-03T10:00:00.000+0000"}
]`
	path := filepath.Join(t.TempDir(), "issues.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	issues, err := LoadIssues(path, logger)
	if err != nil {
		t.Fatalf("LoadIssues() error = %v", err)
	}

	if len(issues) != 2 {
		t.Fatalf("LoadIssues() returned %d issues, want 2", len(issues))
	}
	if !issues[0].IsResolved() {
		t.Errorf("OPS-1 IsResolved() = false, want true")
	}
	if issues[1].IsResolved() {
		t.Errorf("OPS-2 IsResolved() = true, want false")
	}
	if got := issues[0].StatusName(); got != "Closed" {
		t.Errorf("OPS-1 StatusName() = %q, want Closed", got)
	}
}

func TestLoadIssues_MissingCreatedAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issues.json")
	if err := os.WriteFile(path, []byte(`[{"key": "OPS-3"}]`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := LoadIssues(path, zap.NewNop()); err == nil {
		t.Error("LoadIssues() expected error for missing createdAt, got nil")
	}
}
