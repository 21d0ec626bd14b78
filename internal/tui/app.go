package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/fastr/internal/cycle"
	"github.com/sadopc/fastr/internal/export"
	"github.com/sadopc/fastr/internal/logging"
	"github.com/sadopc/fastr/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	cfg    store.Config
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	dashboard dashboardModel
	week      weekModel
	presets   presetsModel
	settings  settingsModel

	help     help.Model
	status   string
	statusOK bool

	// now is the wall clock; replaced in tests.
	now func() time.Time
}

func NewApp(s *store.Store, cfg store.Config) App {
	return newApp(s, cfg)
}

func newApp(s *store.Store, cfg store.Config, opts ...cycle.Option) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:      s,
		cfg:        cfg,
		activeView: viewTimer,
		dashboard:  newDashboardModel(newTimerModel(cfg, opts...)),
		week:       newWeekModel(cfg.WeekStart),
		presets:    newPresetsModel(),
		settings:   newSettingsModel(s),
		help:       h,
		statusOK:   true,
		now:        time.Now,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.settings.refresh(),
		tickCmd(a.cfg.TickInterval),
	)
}

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = cycle.DefaultInterval
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.week.setSize(a.width, contentHeight)
		a.presets.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewTimer
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewWeek
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewPresets
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			if a.activeView == viewSettings {
				return a, a.settings.refresh()
			}
			return a, nil
		}

	case tickMsg:
		// Ticks always reach the timer, whatever view is showing.
		var cmd tea.Cmd
		a.dashboard, cmd = a.dashboard.update(msg)
		return a, tea.Batch(cmd, tickCmd(a.cfg.TickInterval))

	case statusMsg:
		a.status = msg.text
		a.statusOK = !msg.isError
		if msg.isError {
			logging.Warnf("%s", msg.text)
		}
		return a, nil

	case presetAppliedMsg:
		a.week.setPattern(msg.pattern)
		a.activeView = viewWeek
		a.status = "Applied " + msg.pattern.Name
		a.statusOK = true
		logging.Infof("applied preset %q", msg.pattern.Name)
		return a, nil

	case configSavedMsg:
		a.cfg = msg.cfg
		a.week.setWeekStart(msg.cfg.WeekStart)
		a.status = "Settings saved"
		a.statusOK = true
		if err := a.dashboard.timer.applyConfig(msg.cfg); err != nil {
			logging.Warnf("apply settings: %v", err)
			a.status = "Settings saved; fasting hours apply after the timer stops"
		}
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusOK = true
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewTimer:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewWeek:
		a.week, cmd = a.week.update(msg)
	case viewPresets:
		a.presets, cmd = a.presets.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewWeek:
		return a.week.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewTimer:
		today, ok := a.week.pattern.TodaysSchedule(a.now())
		content = a.dashboard.view(today, ok)
	case viewWeek:
		content = a.week.view()
	case viewPresets:
		content = a.presets.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorFasting).Render("fastr")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if !a.statusOK {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	// Phase indicator in footer
	timerInfo := ""
	snap := a.dashboard.timer.snapshot()
	if snap.Anchored() {
		style := lipgloss.NewStyle().Foreground(phaseColor(snap.State.Phase))
		mark := " ● "
		if snap.Status == cycle.Paused {
			style = warningStyle
			mark = " ⏸ "
		}
		timerInfo = style.Render(mark + snap.State.Phase.String() + " " + cycle.FormatRemaining(snap.State.Remaining))
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export week")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		return a, a.doExport(a.exportCursor, home)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

// doExport writes the current week into dir as CSV (format 0) or JSON.
func (a App) doExport(format int, dir string) tea.Cmd {
	pattern := a.week.pattern
	weekStart := a.cfg.WeekStart
	dateStr := a.now().Format("2006-01-02")
	return func() tea.Msg {
		var path string
		if format == 0 {
			path = filepath.Join(dir, fmt.Sprintf("fastr-week-%s.csv", dateStr))
			if err := export.ToCSV(pattern, weekStart, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(dir, fmt.Sprintf("fastr-week-%s.json", dateStr))
			if err := export.ToJSON(pattern, weekStart, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}
		return exportDoneMsg{path: path}
	}
}
