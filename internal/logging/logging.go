// Package logging is a small leveled logger. The level follows the number of
// -v flags given on the command line; lines go to stderr unless redirected.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelNames = [...]struct{ name, tag string }{
	LevelError: {"error", "ERR"},
	LevelWarn:  {"warn", "WARN"},
	LevelInfo:  {"info", "INFO"},
	LevelDebug: {"debug", "DBG"},
	LevelTrace: {"trace", "TRC"},
}

// byVerbosity is indexed by the -v count.
var byVerbosity = [...]Level{LevelWarn, LevelInfo, LevelDebug, LevelTrace, LevelTrace}

const maxVerbosity = len(byVerbosity) - 1

var (
	mu        sync.RWMutex
	verbosity int
	level     = LevelWarn

	std = log.New(os.Stderr, "", log.LstdFlags|log.Lmsgprefix)
)

// SetVerbosity selects the level for a -v count, clamped to [0, 4].
func SetVerbosity(count int) {
	count = min(max(count, 0), maxVerbosity)
	mu.Lock()
	defer mu.Unlock()
	verbosity = count
	level = byVerbosity[count]
}

// SetOutput redirects every later line, e.g. into the TUI's log file.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func Verbosity() int {
	mu.RLock()
	defer mu.RUnlock()
	return verbosity
}

func LevelName() string {
	mu.RLock()
	defer mu.RUnlock()
	return level.String()
}

func (l Level) String() string {
	if l < LevelError || l > LevelTrace {
		return "unknown"
	}
	return levelNames[l].name
}

// ParseLevel returns the named level and the smallest -v count selecting it.
// Levels below warn map to a count of 0.
func ParseLevel(s string) (Level, int, error) {
	name := strings.ToLower(s)
	switch name {
	case "error":
		return LevelError, 0, nil
	case "warning":
		name = "warn"
	}
	for count, l := range byVerbosity {
		if l.String() == name {
			return l, count, nil
		}
	}
	return LevelWarn, Verbosity(), fmt.Errorf("unknown level %q", s)
}

func enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l <= level
}

func logf(l Level, format string, args ...any) {
	if !enabled(l) {
		return
	}
	std.Printf("[%s] %s", levelNames[l].tag, fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...any) { logf(LevelError, format, args...) }
func Warnf(format string, args ...any)  { logf(LevelWarn, format, args...) }
func Infof(format string, args ...any)  { logf(LevelInfo, format, args...) }
func Debugf(format string, args ...any) { logf(LevelDebug, format, args...) }
func Tracef(format string, args ...any) { logf(LevelTrace, format, args...) }
