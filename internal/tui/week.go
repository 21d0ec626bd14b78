package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/fastr/internal/logging"
	"github.com/sadopc/fastr/internal/schedule"
)

// weekModel edits the weekly pattern. The pattern lives only in memory.
type weekModel struct {
	width  int
	height int

	pattern   schedule.WeeklyPattern
	weekStart time.Weekday
	cursor    int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formStart   *string
	formEnd     *string
	formEnabled *bool

	chart barchart.Model
}

func newWeekModel(weekStart time.Weekday) weekModel {
	start, end, enabled := "", "", true
	w := weekModel{
		pattern:     schedule.NewWeeklyPattern("My week", nil),
		weekStart:   weekStart,
		formStart:   &start,
		formEnd:     &end,
		formEnabled: &enabled,
		chart:       barchart.New(60, 12),
	}
	w.buildChart()
	return w
}

func (w *weekModel) setSize(width, height int) {
	w.width = width
	w.height = height
	w.buildChart()
}

func (w *weekModel) setPattern(p schedule.WeeklyPattern) {
	w.pattern = p
	w.buildChart()
}

func (w *weekModel) setWeekStart(d time.Weekday) {
	w.weekStart = d
	w.buildChart()
}

func (w weekModel) days() []time.Weekday {
	return schedule.Week(w.weekStart)
}

func (w weekModel) selectedDay() time.Weekday {
	return w.days()[w.cursor]
}

func (w weekModel) update(msg tea.Msg) (weekModel, tea.Cmd) {
	if w.formActive && w.form != nil {
		return w.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	day := w.selectedDay()
	switch {
	case key.Matches(km, keys.Up):
		if w.cursor > 0 {
			w.cursor--
		}
		return w, nil
	case key.Matches(km, keys.Down):
		if w.cursor < len(w.days())-1 {
			w.cursor++
		}
		return w, nil
	case key.Matches(km, keys.Enter):
		return w.showForm()
	case key.Matches(km, keys.Toggle):
		w.setPattern(w.pattern.ToggleDay(day))
		return w, nil
	case key.Matches(km, keys.CopyAll):
		w.setPattern(w.pattern.CopyToAll(day))
		return w, statusCmd("Copied "+day.String()+" to every day", false)
	case key.Matches(km, keys.Weekdays):
		w.setPattern(w.pattern.ApplyWeekdays())
		return w, statusCmd("Weekdays set to 20:00-12:00", false)
	case key.Matches(km, keys.Weekend):
		w.setPattern(w.pattern.ApplyWeekend())
		return w, statusCmd("Weekend set to 21:00-11:00", false)
	case key.Matches(km, keys.Defaults):
		w.setPattern(w.pattern.RestoreDefaults())
		return w, statusCmd("Restored 20:00-12:00 on every day", false)
	}
	return w, nil
}

func (w weekModel) showForm() (weekModel, tea.Cmd) {
	day := w.selectedDay()
	s, ok := w.pattern.Schedule(day)
	if !ok {
		s = schedule.NewDailySchedule(day, schedule.NewTimeOfDay(20, 0), schedule.NewTimeOfDay(12, 0), true)
	}
	*w.formStart = s.Start.String()
	*w.formEnd = s.End.String()
	*w.formEnabled = s.Enabled

	w.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Fast starts (HH:MM)").Value(w.formStart).Validate(validateTime),
			huh.NewInput().Title("Fast ends (HH:MM)").Value(w.formEnd).Validate(validateTime),
			huh.NewConfirm().Title("Fasting on this day?").Value(w.formEnabled),
		).Title(day.String()),
	).WithShowHelp(true).WithShowErrors(true)

	w.formActive = true
	return w, w.form.Init()
}

func validateTime(s string) error {
	_, err := schedule.ParseTimeOfDay(s)
	return err
}

func (w weekModel) updateForm(msg tea.Msg) (weekModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			w.formActive = false
			w.form = nil
			return w, nil
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		w.formActive = false
		if err := w.saveDay(); err != nil {
			return w, statusCmd(err.Error(), true)
		}
		return w, statusCmd("Saved "+w.selectedDay().String(), false)
	}

	return w, cmd
}

// saveDay writes the form fields into the pattern for the selected day.
func (w *weekModel) saveDay() error {
	start, err := schedule.ParseTimeOfDay(*w.formStart)
	if err != nil {
		return err
	}
	end, err := schedule.ParseTimeOfDay(*w.formEnd)
	if err != nil {
		return err
	}

	day := w.selectedDay()
	p := w.pattern
	if _, ok := p.Schedule(day); !ok {
		p = p.Set(day, schedule.NewDailySchedule(day, start, end, *w.formEnabled))
	} else {
		p = p.UpdateStart(day, start).UpdateEnd(day, end)
		if s, _ := p.Schedule(day); s.Enabled != *w.formEnabled {
			p = p.ToggleDay(day)
		}
	}
	logging.Debugf("edited %s: %s-%s enabled=%t", day, start, end, *w.formEnabled)
	w.setPattern(p)
	return nil
}

func (w *weekModel) buildChart() {
	chartWidth := w.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if w.height > 30 {
		chartHeight = 14
	}

	w.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, d := range w.days() {
		s, ok := w.pattern.Schedule(d)
		value := 0.0
		style := lipgloss.NewStyle().Foreground(colorSubtle)
		if ok && s.Enabled {
			value = s.FastingDurationHours()
			style = tierStyle(s.Tier())
		}
		bars = append(bars, barchart.BarData{
			Label:  schedule.ShortName(d),
			Values: []barchart.BarValue{{Name: d.String(), Value: value, Style: style}},
		})
	}

	w.chart.PushAll(bars)
	w.chart.Draw()
}

func (w weekModel) view() string {
	width := w.width - 4

	if w.formActive && w.form != nil {
		return activePanelStyle.Width(width).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Edit day"), "", w.form.View()),
		)
	}

	avg := w.pattern.WeeklyAverageFastingHours()
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(w.pattern.Name), "  ",
		highlightStyle.Render(fmt.Sprintf("avg %s", formatHours(avg))), "  ",
		mutedStyle.Render(fmt.Sprintf("%d/7 days", w.pattern.EnabledDays())),
	)

	nav := mutedStyle.Render("  enter: edit  t: toggle  c: copy to all  w/W: weekdays/weekend  d: defaults  e: export")

	return panelStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", w.chart.View(), "", w.renderDays(width), "", nav,
		),
	)
}

func (w weekModel) renderDays(width int) string {
	barMax := float64(max(4, min(width-48, 24)))

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-4s %-13s %7s %7s  %-6s", "Day", "Window", "Fast", "Eat", "Tier")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(width-6, 48))))

	for i, d := range w.days() {
		cursor := "  "
		style := normalItemStyle
		if i == w.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		s, ok := w.pattern.Schedule(d)
		if !ok {
			rows = append(rows, style.Render(fmt.Sprintf("%s%-4s %s", cursor, schedule.ShortName(d), "—")))
			continue
		}

		window := fmt.Sprintf("%s-%s", s.Start, s.End)
		line := fmt.Sprintf("%s%-4s %-13s %7s %7s  ", cursor, schedule.ShortName(d), window,
			formatHours(s.FastingDurationHours()), formatHours(s.EatingDurationHours()))
		if !s.Enabled {
			line = fmt.Sprintf("%s%-4s %-13s %7s %7s  ", cursor, schedule.ShortName(d), window, "off", "")
		}
		bar := tierStyle(s.Tier()).Render(strings.Repeat("█", int(s.BarHeight(1, barMax))))
		rows = append(rows, style.Render(line)+tierStyle(s.Tier()).Render(fmt.Sprintf("%-6s ", s.Tier()))+bar)
	}

	return strings.Join(rows, "\n")
}
