package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/fastr/internal/logging"
	"github.com/sadopc/fastr/internal/store"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read or change stored preferences",
	}
	cmd.AddCommand(newConfigGetCmd(), newConfigSetCmd())
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current preferences as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(cfg.Settings(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var (
		hours     float64
		minHours  float64
		maxHours  float64
		weekStart string
		clock     string
		interval  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			cfg, err := s.LoadConfig()
			if err != nil {
				return err
			}
			if err := applyConfigFlags(cmd, &cfg, configFlags{
				hours: hours, minHours: minHours, maxHours: maxHours,
				weekStart: weekStart, clock: clock, interval: interval,
			}); err != nil {
				return err
			}
			if err := s.SaveConfig(cfg); err != nil {
				return err
			}

			cfg = cfg.Normalize()
			logging.Infof("config saved")
			fmt.Fprintf(cmd.OutOrStdout(), "Saved: hours=%g range=%g-%g week_start=%s clock=%s interval=%s\n",
				cfg.FastingHours, cfg.MinHours, cfg.MaxHours,
				strings.ToLower(cfg.WeekStart.String()), cfg.Settings()[store.KeyClockFormat], cfg.TickInterval)
			return nil
		},
	}
	cmd.Flags().Float64Var(&hours, "hours", 16, "fasting hours per cycle")
	cmd.Flags().Float64Var(&minHours, "min", 12, "lowest selectable fasting hours")
	cmd.Flags().Float64Var(&maxHours, "max", 16, "highest selectable fasting hours")
	cmd.Flags().StringVar(&weekStart, "week-start", "monday", "monday or sunday")
	cmd.Flags().StringVar(&clock, "clock", "24h", "24h or 12h")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "timer refresh interval")
	return cmd
}

type configFlags struct {
	hours, minHours, maxHours float64
	weekStart, clock          string
	interval                  time.Duration
}

// applyConfigFlags copies only the flags the user set.
func applyConfigFlags(cmd *cobra.Command, cfg *store.Config, f configFlags) error {
	flags := cmd.Flags()
	if flags.Changed("min") {
		cfg.MinHours = f.minHours
	}
	if flags.Changed("max") {
		cfg.MaxHours = f.maxHours
	}
	if flags.Changed("hours") {
		cfg.FastingHours = f.hours
	}
	if flags.Changed("week-start") {
		switch strings.ToLower(f.weekStart) {
		case "monday", "mon":
			cfg.WeekStart = time.Monday
		case "sunday", "sun":
			cfg.WeekStart = time.Sunday
		default:
			return fmt.Errorf("--week-start must be monday or sunday, got %q", f.weekStart)
		}
	}
	if flags.Changed("clock") {
		switch strings.ToLower(f.clock) {
		case "24h", "24":
			cfg.Clock24 = true
		case "12h", "12":
			cfg.Clock24 = false
		default:
			return fmt.Errorf("--clock must be 24h or 12h, got %q", f.clock)
		}
	}
	if flags.Changed("interval") {
		cfg.TickInterval = f.interval
	}
	return nil
}
