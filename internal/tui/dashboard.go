package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/fastr/internal/cycle"
	"github.com/sadopc/fastr/internal/schedule"
)

// dashboardModel is the Timer view: the live cycle plus today's planned window.
type dashboardModel struct {
	timer  timerModel
	width  int
	height int

	bar progress.Model
}

func newDashboardModel(t timerModel) dashboardModel {
	return dashboardModel{
		timer: t,
		bar:   progress.New(progress.WithSolidFill(string(colorFasting)), progress.WithoutPercentage()),
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.bar.Width = max(10, min(w-16, 60))
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		d.timer.tick(time.Time(msg))
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			snap := d.timer.toggle()
			text := "Fast started"
			if snap.Status == cycle.Paused {
				text = "Paused"
			}
			return d, statusCmd(text, false)

		case key.Matches(msg, keys.Reset):
			d.timer.reset()
			return d, statusCmd("Timer reset", false)

		case key.Matches(msg, keys.More):
			return d.adjust(1)

		case key.Matches(msg, keys.Less):
			return d.adjust(-1)
		}
	}
	return d, nil
}

func (d dashboardModel) adjust(delta float64) (dashboardModel, tea.Cmd) {
	snap, err := d.timer.adjustHours(delta)
	if err != nil {
		return d, statusCmd(err.Error(), true)
	}
	return d, statusCmd(fmt.Sprintf("%s fasting / %s eating",
		formatHours(snap.FastingHours), formatHours(24-snap.FastingHours)), false)
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}

func (d dashboardModel) view(today schedule.DailySchedule, hasToday bool) string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4
	return lipgloss.JoinVertical(lipgloss.Left,
		d.renderTimerPanel(contentWidth),
		d.renderTodayPanel(contentWidth, today, hasToday),
	)
}

func (d dashboardModel) renderTimerPanel(w int) string {
	snap := d.timer.snapshot()
	hours := mutedStyle.Render(fmt.Sprintf("%s fast · %s eat",
		formatHours(snap.FastingHours), formatHours(24-snap.FastingHours)))

	if !snap.Anchored() {
		content := lipgloss.JoinVertical(lipgloss.Center,
			timerStyle.Width(w-6).Render(cycle.FormatRemaining(snap.State.Remaining)),
			mutedStyle.Render("■  READY"),
			hours,
			mutedStyle.Render("s: start  +/-: hours"),
		)
		return panelStyle.Width(w).Render(content)
	}

	color := phaseColor(snap.State.Phase)
	phaseStyle := lipgloss.NewStyle().Bold(true).Foreground(color)
	remaining := phaseStyle.Width(w - 6).Align(lipgloss.Center).
		Render(cycle.FormatRemaining(snap.State.Remaining))

	indicator := phaseStyle.Render("●  " + snap.State.Phase.String())
	if snap.Status == cycle.Paused {
		indicator = warningStyle.Render("⏸  PAUSED · " + snap.State.Phase.String())
	}

	next := highlightStyle.Render("next: " + cycle.FormatNextSwitch(snap.State.NextSwitch, d.timer.clock24))

	hint := "s: resume  r: reset  +/-: hours"
	if d.timer.running() {
		hint = "s: pause  r: reset"
	}

	bar := d.bar
	bar.FullColor = string(color)
	content := lipgloss.JoinVertical(lipgloss.Center,
		remaining,
		indicator,
		next,
		"",
		bar.ViewAs(snap.Progress),
		hours,
		mutedStyle.Render(hint),
	)
	return activePanelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderTodayPanel(w int, s schedule.DailySchedule, ok bool) string {
	title := titleStyle.Render("Today")
	if !ok {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, mutedStyle.Render("No window planned"),
		))
	}
	if !s.Enabled {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, mutedStyle.Render(s.Day.String()+": rest day"),
		))
	}

	rows := []string{
		fmt.Sprintf("%s  %s", title, tierStyle(s.Tier()).Render(s.Tier().String())),
		fmt.Sprintf("  %-10s %s → %s", s.Day, s.Start, s.End),
		fmt.Sprintf("  %-10s %s", "fasting", formatHours(s.FastingDurationHours())),
		fmt.Sprintf("  %-10s %s", "eating", formatHours(s.EatingDurationHours())),
	}
	if s.CrossesMidnight() {
		rows = append(rows, mutedStyle.Render("  ends tomorrow"))
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
