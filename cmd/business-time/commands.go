package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/business-time/internal/businesstime"
	"github.com/username/business-time/internal/tracker"
	"github.com/username/business-time/pkg/dateutil"
	"go.uber.org/zap"
)

// parseTimestamp reads a flag value in the configured timezone. Values
// carrying their own offset are converted into it.
func parseTimestamp(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("--%s is required", flag)
	}
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return time.Time{}, err
	}
	ts, err := dateutil.ParseInLocation(value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return ts.In(loc), nil
}

func elapsedCmd() *cobra.Command {
	var issueStr, resolveStr string
	var raw, iso bool

	cmd := &cobra.Command{
		Use:   "elapsed",
		Short: "Business time between an issue and its resolution",
		Example: `  business-time elapsed --issue "2021-03-02 19:50" --resolve "2021-03-06 19:20"
  business-time elapsed --issue 2021-03-02T19:50:00 --resolve 2021-03-06T19:20:00 --raw`,
		RunE: func(cmd *cobra.Command, args []string) error {
			issueAt, err := parseTimestamp("issue", issueStr)
			if err != nil {
				return err
			}
			resolveAt, err := parseTimestamp("resolve", resolveStr)
			if err != nil {
				return err
			}

			calc, err := newCalculator()
			if err != nil {
				return err
			}

			build := calc.FromTimestamp
			if raw {
				build = calc.New
			}
			issue := build(issueAt, businesstime.RoleIssue)
			resolve := build(resolveAt, businesstime.RoleResolve)

			elapsed, err := resolve.Sub(issue)
			if err != nil {
				return err
			}

			logger.Info("Elapsed business time",
				zap.Stringer("issue", issue),
				zap.Stringer("resolve", resolve),
				zap.Duration("elapsed", elapsed),
				zap.Bool("raw", raw))

			w := cmd.OutOrStdout()
			if iso {
				fmt.Fprintln(w, tracker.FormatISO8601Duration(elapsed))
				return nil
			}

			days, hours, minutes, seconds := dateutil.SplitDuration(elapsed)
			fmt.Fprintf(w, "Issue:    %s\n", issue)
			fmt.Fprintf(w, "Resolve:  %s\n", resolve)
			fmt.Fprintf(w, "Elapsed:  %s (%.0f seconds)\n", dateutil.FormatHMS(elapsed), elapsed.Seconds())
			fmt.Fprintf(w, "          %dd %dh %dm %ds\n", days, hours, minutes, seconds)
			return nil
		},
	}

	cmd.Flags().StringVar(&issueStr, "issue", "", "Interval start (YYYY-MM-DD HH:MM[:SS])")
	cmd.Flags().StringVar(&resolveStr, "resolve", "", "Interval end (YYYY-MM-DD HH:MM[:SS])")
	cmd.Flags().BoolVar(&raw, "raw", false, "Use timestamps as given, without snapping into business hours")
	cmd.Flags().BoolVar(&iso, "iso", false, "Print the result as an ISO 8601 duration")

	return cmd
}

func normalizeCmd() *cobra.Command {
	var atStr, roleStr string

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Snap a timestamp into business hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseTimestamp("at", atStr)
			if err != nil {
				return err
			}
			role, err := businesstime.ParseRole(roleStr)
			if err != nil {
				return err
			}

			calc, err := newCalculator()
			if err != nil {
				return err
			}

			m := calc.FromTimestamp(ts, role)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, hours of %s: %s-%s)\n",
				m, role, m.DayType, m.Open, m.Close)
			return nil
		},
	}

	cmd.Flags().StringVar(&atStr, "at", "", "Timestamp to normalize")
	cmd.Flags().StringVar(&roleStr, "role", "issue", "Role of the timestamp: issue or resolve")

	return cmd
}

func classifyCmd() *cobra.Command {
	var dateStr string
	var days int

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Show day type and business hours for dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseTimestamp("date", dateStr)
			if err != nil {
				return err
			}

			cal, err := cfg.BuildCalendar(logger)
			if err != nil {
				return fmt.Errorf("failed to build calendar: %w", err)
			}

			w := cmd.OutOrStdout()
			for i := 0; i < days; i++ {
				day := dateutil.AddDays(date, i)
				dayType := cal.DayType(day)
				fmt.Fprintf(w, "%s %s  %-7s %s  (%s open)\n",
					dateutil.DateKey(day),
					day.Format("Mon"),
					dayType,
					cal.Window(dayType),
					dateutil.FormatHMS(cal.OpenDuration(day)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "First date to classify (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 1, "Number of consecutive days to show")

	return cmd
}
