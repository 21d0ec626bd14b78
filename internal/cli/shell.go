package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sadopc/fastr/internal/cycle"
	"github.com/sadopc/fastr/internal/logging"
	"github.com/sadopc/fastr/internal/store"
)

func newShellCmd() *cobra.Command {
	var prompt string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell with a live fasting timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runInteractiveShell(prompt, cfg)
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "fastr> ", "shell prompt")
	return cmd
}

// session is one shell's timer. The controller ticks on its own goroutine;
// phase changes are announced on out.
type session struct {
	ctl     *cycle.Controller
	clock24 bool
	out     io.Writer

	mu   sync.Mutex
	last cycle.Phase
}

func newSession(cfg store.Config, out io.Writer, opts ...cycle.Option) *session {
	base := []cycle.Option{
		cycle.WithTicker(cycle.NewIntervalTicker()),
		cycle.WithInterval(cfg.TickInterval),
		cycle.WithBounds(cfg.MinHours, cfg.MaxHours),
		cycle.WithFastingHours(cfg.FastingHours),
	}
	s := &session{
		ctl:     cycle.NewController(append(base, opts...)...),
		clock24: cfg.Clock24,
		out:     out,
	}

	s.last = s.ctl.Snapshot().State.Phase
	s.ctl.Subscribe(s.announce)
	return s
}

func (s *session) announce(snap cycle.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := snap.State.Phase != s.last
	s.last = snap.State.Phase
	if snap.Status == cycle.Running && changed {
		fmt.Fprintf(s.out, "\n>> %s until %s\n", snap.State.Phase,
			cycle.FormatNextSwitch(snap.State.NextSwitch, s.clock24))
	}
}

// handle runs a timer command. It reports false for tokens it does not own.
func (s *session) handle(tokens []string) (bool, error) {
	switch tokens[0] {
	case "start":
		snap := s.ctl.Start()
		fmt.Fprintf(s.out, "%s: %s, %s left\n", snap.Status, snap.State.Phase, cycle.FormatRemaining(snap.State.Remaining))
	case "stop", "pause":
		snap := s.ctl.Stop()
		fmt.Fprintf(s.out, "%s\n", snap.Status)
	case "toggle":
		snap := s.ctl.Toggle()
		fmt.Fprintf(s.out, "%s\n", snap.Status)
	case "reset":
		snap := s.ctl.Reset()
		fmt.Fprintf(s.out, "%s\n", snap.Status)
	case "status":
		// A bare "status" reads the live timer; with flags it is the cobra command.
		if len(tokens) > 1 {
			return false, nil
		}
		printSnapshot(s.out, s.ctl.Snapshot(), s.clock24)
	case "hours":
		if len(tokens) != 2 {
			return true, errors.New("usage: hours N")
		}
		h, err := strconv.ParseFloat(tokens[1], 64)
		if err != nil {
			return true, fmt.Errorf("hours: %w", err)
		}
		snap, err := s.ctl.SetFastingHours(h)
		if err != nil {
			return true, err
		}
		fmt.Fprintf(s.out, "fasting %.4gh, eating %.4gh\n", snap.FastingHours, 24-snap.FastingHours)
	default:
		return false, nil
	}
	return true, nil
}

func (s *session) close() {
	s.ctl.Reset()
}

func runInteractiveShell(prompt string, cfg store.Config) error {
	historyFile := filepath.Join(os.TempDir(), "fastr-shell.history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	sess := newSession(cfg, rl.Stdout())
	defer sess.close()

	sessionVerbosity := verbosity
	fmt.Println("fastr shell. 'help' for commands, 'exit' to quit.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Println()
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line {
		case "exit", "quit":
			fmt.Println("Bye!")
			return nil
		case "help":
			printShellHelp()
			continue
		}
		tokens, err := shlex.Split(line)
		if err != nil {
			fmt.Printf("Parse error: %v\n", err)
			continue
		}
		if len(tokens) == 0 {
			continue
		}
		if tokens[0] == "log" {
			if err := handleShellLog(tokens[1:], &sessionVerbosity); err != nil {
				fmt.Printf("log: %v\n", err)
			}
			continue
		}
		if tokens[0] == "shell" {
			fmt.Println("Already in the shell. Type a command or 'exit'.")
			continue
		}
		if strings.HasPrefix(tokens[0], "-") {
			fmt.Println("Start with a command name; 'help' lists them.")
			continue
		}

		handled, err := sess.handle(tokens)
		if handled {
			if err != nil {
				fmt.Printf("error: %v\n", err)
			}
			continue
		}

		verbosity = sessionVerbosity
		if err := executeArgs(tokens); err != nil {
			fmt.Printf("command error: %v\n", err)
		}
		sessionVerbosity = verbosity
	}
}

func executeArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	// Registering the persistent flags resets dbPath and verbosity, so the
	// session's values are put back before parsing.
	db, v := dbPath, verbosity
	root := NewRootCmd()
	dbPath, verbosity = db, v
	root.SetArgs(args)
	return root.Execute()
}

func handleShellLog(args []string, sessionVerbosity *int) error {
	fs := pflag.NewFlagSet("log", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var vcount int
	var level string
	var show bool
	fs.CountVarP(&vcount, "verbose", "v", "increase verbosity (-v... up to 4)")
	fs.StringVar(&level, "level", "", "error|warn|info|debug|trace")
	fs.BoolVarP(&show, "show", "s", false, "print the current level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case show && vcount == 0 && level == "":
		fmt.Printf("log level: %s (-v x%d)\n", logging.LevelName(), logging.Verbosity())
		return nil
	case level != "":
		_, count, err := logging.ParseLevel(level)
		if err != nil {
			return err
		}
		*sessionVerbosity = count
	case vcount > 0:
		*sessionVerbosity = vcount
	default:
		fmt.Printf("log level: %s (-v x%d)\n", logging.LevelName(), logging.Verbosity())
		return nil
	}

	verbosity = *sessionVerbosity
	logging.SetVerbosity(*sessionVerbosity)
	fmt.Printf("log level set to %s (-v x%d)\n", logging.LevelName(), logging.Verbosity())
	return nil
}

func printShellHelp() {
	fmt.Println(`Timer:
  start                       # start or resume the cycle
  stop                        # pause; the cycle keeps its start time
  toggle                      # start/stop
  reset                       # clear the cycle
  status                      # live phase, remaining, next switch
  hours 14                    # fasting hours (not while running)

Commands:
  status --start 20:00        # phase of a cycle started at 20:00
  schedule --preset flexible  # print a weekly pattern
  presets                     # list presets
  export -p weekend -f json   # write a pattern to a file
  config get                  # show preferences
  config set --hours 14       # change preferences
  log -vv                     # more log detail
  log --show                  # current log level
  exit / quit                 # leave the shell`)
}
