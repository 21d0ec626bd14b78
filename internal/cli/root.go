package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/fastr/internal/logging"
	"github.com/sadopc/fastr/internal/store"
	"github.com/sadopc/fastr/internal/tui"
)

// envDB overrides the default database path when --db is not given.
const envDB = "FASTR_DB"

var (
	dbPath    string
	verbosity int
)

// NewRootCmd builds the fastr command tree. Without a subcommand it runs the
// terminal UI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fastr",
		Short:         "Intermittent fasting timer and weekly schedule planner",
		Long:          "fastr tracks a 24h fast/eat cycle and plans per-day fasting windows for the week.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "settings database path (default ~/.config/fastr/fastr.db)")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log detail (-v, -vv, ... up to 4)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.SetVerbosity(verbosity)
	}

	cmd.AddCommand(
		newStatusCmd(),
		newScheduleCmd(),
		newPresetsCmd(),
		newExportCmd(),
		newConfigCmd(),
		newShellCmd(),
	)
	return cmd
}

func openStore() (*store.Store, error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve db path: %w", err)
	}
	logging.Debugf("opening settings at %s", path)
	s, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadConfig reads the stored preferences and closes the store again.
func loadConfig() (store.Config, error) {
	s, err := openStore()
	if err != nil {
		return store.Config{}, err
	}
	defer s.Close()
	return s.LoadConfig()
}

func runTUI() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg, err := s.LoadConfig()
	if err != nil {
		return err
	}

	// Log lines would corrupt the alt screen.
	if verbosity > 0 {
		logPath := filepath.Join(filepath.Dir(dbPathOrDefault()), "fastr.log")
		f, err := tea.LogToFile(logPath, "fastr")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logging.SetOutput(f)
	} else {
		logging.SetOutput(io.Discard)
	}

	p := tea.NewProgram(tui.NewApp(s, cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// resolveDBPath picks the --db flag, then $FASTR_DB, then the default.
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if p := os.Getenv(envDB); p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}

func dbPathOrDefault() string {
	path, err := resolveDBPath()
	if err != nil {
		return "fastr.db"
	}
	return path
}
