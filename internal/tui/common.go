package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/fastr/internal/schedule"
	"github.com/sadopc/fastr/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTimer viewState = iota
	viewWeek
	viewPresets
	viewSettings
)

var viewNames = []string{"Timer", "Week", "Presets", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

type presetAppliedMsg struct {
	pattern schedule.WeeklyPattern
}

type configSavedMsg struct {
	cfg store.Config
}

// --- Helpers ---

func formatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
