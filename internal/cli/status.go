package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/fastr/internal/cycle"
	"github.com/sadopc/fastr/internal/schedule"
)

func newStatusCmd() *cobra.Command {
	var (
		startFlag string
		atFlag    string
		hours     float64
	)
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the phase of a cycle started at --start",
		Example: `  fastr status --start 20:00
  fastr status --start 2026-03-01T20:00:00+01:00 --hours 14 --at 2026-03-02T09:00:00+01:00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			now := time.Now()
			if atFlag != "" {
				now, err = time.Parse(time.RFC3339, atFlag)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
			}
			start, err := parseStart(startFlag, now)
			if err != nil {
				return err
			}
			h := cfg.FastingHours
			if cmd.Flags().Changed("hours") {
				h = cycle.ClampFastingHours(hours, cfg.MinHours, cfg.MaxHours)
			}

			state := cycle.Compute(start, h, now)
			printState(cmd.OutOrStdout(), state, h, cfg.Clock24)
			return nil
		},
	}
	cmd.Flags().StringVar(&startFlag, "start", "", "cycle start, RFC3339 or HH:MM today (required)")
	cmd.Flags().StringVar(&atFlag, "at", "", "query instant in RFC3339 (default now)")
	cmd.Flags().Float64Var(&hours, "hours", cycle.DefaultFastingHours, "fasting hours per cycle (default from config)")
	cmd.MarkFlagRequired("start")
	return cmd
}

// parseStart accepts an RFC3339 instant or a clock time. A clock time later
// than now refers to the previous day.
func parseStart(s string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	tod, err := schedule.ParseTimeOfDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--start %q: want RFC3339 or HH:MM: %w", s, err)
	}
	start := tod.On(now)
	if start.After(now) {
		start = start.AddDate(0, 0, -1)
	}
	return start, nil
}

func printState(w io.Writer, s cycle.State, hours float64, clock24 bool) {
	fmt.Fprintf(w, "phase:     %s\n", s.Phase)
	fmt.Fprintf(w, "remaining: %s\n", cycle.FormatRemaining(s.Remaining))
	fmt.Fprintf(w, "next:      %s\n", cycle.FormatNextSwitch(s.NextSwitch, clock24))
	fmt.Fprintf(w, "progress:  %.0f%%\n", cycle.Progress(s, hours)*100)
}

func printSnapshot(w io.Writer, snap cycle.Snapshot, clock24 bool) {
	fmt.Fprintf(w, "status:    %s (%.4gh fast / %.4gh eat)\n", snap.Status, snap.FastingHours, 24-snap.FastingHours)
	if !snap.Anchored() {
		return
	}
	fmt.Fprintf(w, "started:   %s\n", snap.Anchor.Local().Format(time.RFC3339))
	printState(w, snap.State, snap.FastingHours, clock24)
}
