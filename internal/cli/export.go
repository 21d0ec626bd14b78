package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/fastr/internal/export"
	"github.com/sadopc/fastr/internal/logging"
	"github.com/sadopc/fastr/internal/schedule"
)

func newExportCmd() *cobra.Command {
	var (
		preset string
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a weekly pattern to CSV or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			p, err := schedule.Preset(preset)
			if err != nil {
				return err
			}
			format = strings.ToLower(format)
			if out == "" {
				out = fmt.Sprintf("fastr-%s.%s", preset, format)
			}
			switch format {
			case "csv":
				err = export.ToCSV(p, cfg.WeekStart, out)
			case "json":
				err = export.ToJSON(p, cfg.WeekStart, out)
			default:
				return fmt.Errorf("unknown format %q (csv|json)", format)
			}
			if err != nil {
				return err
			}
			logging.Infof("exported %s as %s", preset, format)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&preset, "preset", "p", "standard", "preset key: "+strings.Join(schedule.Keys(), ", "))
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "csv or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default fastr-<preset>.<format>)")
	return cmd
}
