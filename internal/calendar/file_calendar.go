package calendar

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FileCalendar loads a holiday list from a local text file.
//
// Format: YYYY-MM-DD type [note]
// Example: 2021-05-05 holiday Company day
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	days     map[string]time.Time // key: "YYYY-MM-DD"
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		days:     make(map[string]time.Time),
	}
}

// Load loads holiday data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			fc.logger.Warn("Invalid line format",
				zap.Int("line_no", lineNo),
				zap.String("line", line))
			continue
		}

		date, err := time.Parse("2006-01-02", parts[0])
		if err != nil {
			fc.logger.Warn("Failed to parse date",
				zap.Int("line_no", lineNo),
				zap.String("date", parts[0]),
				zap.Error(err))
			continue
		}

		switch parts[1] {
		case "holiday", "weekend":
			fc.days[parts[0]] = date
		case "workday":
			// Weekends are always holidays, a workday entry cannot move them
			fc.logger.Warn("Workday overrides are not supported, skipping",
				zap.String("date", parts[0]))
		default:
			fc.logger.Warn("Unknown day type",
				zap.Int("line_no", lineNo),
				zap.String("type", parts[1]))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holiday file: %w", err)
	}

	fc.logger.Info("Holiday file loaded",
		zap.String("file", fc.filePath),
		zap.Int("holidays", len(fc.days)))

	return nil
}

// Holidays returns the loaded holidays in ascending order
func (fc *FileCalendar) Holidays() []time.Time {
	result := make([]time.Time, 0, len(fc.days))
	for _, date := range fc.days {
		result = append(result, date)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Before(result[j]) })
	return result
}
