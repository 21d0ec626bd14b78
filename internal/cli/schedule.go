package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/fastr/internal/export"
	"github.com/sadopc/fastr/internal/schedule"
)

func newScheduleCmd() *cobra.Command {
	var (
		preset   string
		jsonFlag bool
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print a weekly fasting pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			p, err := schedule.Preset(preset)
			if err != nil {
				return err
			}
			if jsonFlag {
				data, err := export.MarshalJSON(p, cfg.WeekStart)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			printPattern(cmd.OutOrStdout(), p, cfg.WeekStart)
			return nil
		},
	}
	cmd.Flags().StringVarP(&preset, "preset", "p", "standard", "preset key: "+strings.Join(schedule.Keys(), ", "))
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print JSON instead of a table")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in weekly patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tAVG\tDESCRIPTION")
			for _, info := range schedule.Catalog() {
				p := info.Pattern()
				fmt.Fprintf(w, "%s\t%s\t%.1fh\t%s\n", info.Key, info.Name, p.WeeklyAverageFastingHours(), info.Description)
			}
			return w.Flush()
		},
	}
}

func printPattern(out io.Writer, p schedule.WeeklyPattern, weekStart time.Weekday) {
	fmt.Fprintf(out, "%s\n\n", p.Name)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tFAST\tFASTING\tEATING\tTIER")
	for _, d := range schedule.Week(weekStart) {
		s, ok := p.Schedule(d)
		if !ok {
			fmt.Fprintf(w, "%s\t-\t-\t-\t-\n", schedule.ShortName(d))
			continue
		}
		fmt.Fprintf(w, "%s\t%s-%s\t%.1fh\t%.1fh\t%s\n",
			schedule.ShortName(d), s.Start, s.End,
			s.FastingDurationHours(), s.EatingDurationHours(), s.Tier())
	}
	w.Flush()
	fmt.Fprintf(out, "\nweekly average: %.1fh over %d days\n", p.WeeklyAverageFastingHours(), p.EnabledDays())
}
