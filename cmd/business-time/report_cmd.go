package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/business-time/internal/report"
	"github.com/username/business-time/internal/tracker"
	"github.com/username/business-time/pkg/dateutil"
)

func reportCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Business time to resolution for exported Tracker issues",
		Long:  "Read a JSON array of Tracker issues (key, summary, createdAt, resolvedAt) and report business time from creation to resolution.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return fmt.Errorf("--input is required")
			}

			issues, err := tracker.LoadIssues(input, logger)
			if err != nil {
				return err
			}

			calc, err := newCalculator()
			if err != nil {
				return err
			}
			loc, err := cfg.Calendar.Location()
			if err != nil {
				return err
			}

			result, err := report.NewBuilder(calc, loc, logger).Build(issues)
			if err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "\n📋 Resolution report (%d issues)\n", len(result.Issues))
			fmt.Fprintln(w, "══════════════════════════════════════════════════════════════════════")
			fmt.Fprintln(w, "  Issue        | Status       | Issued              | Resolved            | Business")
			fmt.Fprintln(w, "---------------+--------------+---------------------+---------------------+-----------")
			for _, r := range result.Issues {
				resolved := "open"
				elapsed := "-"
				if !r.IsOpen {
					resolved = r.Resolved.String()
					elapsed = dateutil.FormatHMS(r.Elapsed)
				}
				status := r.Status
				if status == "" {
					status = "-"
				}
				fmt.Fprintf(w, "  %-12s | %-12s | %-19s | %-19s | %9s\n", r.Key, status, r.Issued, resolved, elapsed)
			}

			fmt.Fprintln(w)
			fmt.Fprintf(w, "  Resolved:  %d\n", result.ResolvedCount)
			fmt.Fprintf(w, "  Open:      %d\n", result.OpenCount)
			fmt.Fprintf(w, "  Total:     %s\n", dateutil.FormatHMS(result.Total))
			fmt.Fprintf(w, "  Average:   %s\n", dateutil.FormatHMS(result.Average()))
			if result.Longest != nil {
				fmt.Fprintf(w, "  Longest:   %s (%s)\n", result.Longest.Key, dateutil.FormatHMS(result.Longest.Elapsed))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to exported issues JSON")

	return cmd
}
