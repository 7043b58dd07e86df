package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/business-time/internal/businesstime"
	"github.com/username/business-time/internal/tracker"
	"go.uber.org/zap"
)

// IssueResult is the business time an issue spent between creation and resolution
type IssueResult struct {
	Key      string
	Summary  string
	Status   string
	Issued   *businesstime.Moment
	Resolved *businesstime.Moment // nil while the issue is open
	Elapsed  time.Duration
	IsOpen   bool
}

// Report summarizes resolution times over a set of issues
type Report struct {
	Issues        []IssueResult
	ResolvedCount int
	OpenCount     int
	Total         time.Duration // sum over resolved issues
	Longest       *IssueResult
	Duration      time.Duration // time spent building the report
}

// Average returns the mean business time to resolution
func (r *Report) Average() time.Duration {
	if r.ResolvedCount == 0 {
		return 0
	}
	return r.Total / time.Duration(r.ResolvedCount)
}

// Builder computes resolution reports
type Builder struct {
	calc     *businesstime.Calculator
	location *time.Location
	logger   *zap.Logger
}

// NewBuilder creates a new report builder. Issue timestamps are moved into
// location before they are classified.
func NewBuilder(calc *businesstime.Calculator, location *time.Location, logger *zap.Logger) *Builder {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		calc:     calc,
		location: location,
		logger:   logger,
	}
}

// Build computes business time to resolution for every issue.
// Results are sorted by creation time.
func (b *Builder) Build(issues []tracker.Issue) (*Report, error) {
	startTime := time.Now()
	b.logger.Info("Building resolution report", zap.Int("issues", len(issues)))

	report := &Report{Issues: make([]IssueResult, 0, len(issues))}

	for _, issue := range issues {
		result := IssueResult{
			Key:     issue.Key,
			Summary: issue.Summary,
			Status:  issue.StatusName(),
			Issued:  b.calc.FromTimestamp(issue.CreatedAt.In(b.location), businesstime.RoleIssue),
		}

		if !issue.IsResolved() {
			result.IsOpen = true
			report.OpenCount++
			report.Issues = append(report.Issues, result)
			b.logger.Debug("Issue still open", zap.String("issue", issue.Key))
			continue
		}

		result.Resolved = b.calc.FromTimestamp(issue.ResolvedAt.In(b.location), businesstime.RoleResolve)

		elapsed, err := result.Resolved.Sub(result.Issued)
		if err != nil {
			return nil, fmt.Errorf("issue %s: %w", issue.Key, err)
		}
		result.Elapsed = elapsed

		b.logger.Debug("Issue resolution time",
			zap.String("issue", issue.Key),
			zap.Stringer("issued", result.Issued),
			zap.Stringer("resolved", result.Resolved),
			zap.Duration("elapsed", elapsed))

		report.ResolvedCount++
		report.Total += elapsed
		report.Issues = append(report.Issues, result)
	}

	sort.SliceStable(report.Issues, func(i, j int) bool {
		return report.Issues[i].Issued.Timestamp.Before(report.Issues[j].Issued.Timestamp)
	})

	for i := range report.Issues {
		r := &report.Issues[i]
		if !r.IsOpen && (report.Longest == nil || r.Elapsed > report.Longest.Elapsed) {
			report.Longest = r
		}
	}

	report.Duration = time.Since(startTime)

	b.logger.Info("Resolution report built",
		zap.Int("resolved", report.ResolvedCount),
		zap.Int("open", report.OpenCount),
		zap.Duration("total", report.Total),
		zap.Duration("average", report.Average()),
		zap.Duration("took", report.Duration))

	return report, nil
}
