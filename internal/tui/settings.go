package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/fastr/internal/logging"
	"github.com/sadopc/fastr/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	fastingHours *string
	minHours     *string
	maxHours     *string
	weekStart    *string
	clockFormat  *string
	tickInterval *string
}

func newSettingsModel(s *store.Store) settingsModel {
	fh, lo, hi := "", "", ""
	ws, cf, ti := "", "", ""
	return settingsModel{
		store:        s,
		fastingHours: &fh,
		minHours:     &lo,
		maxHours:     &hi,
		weekStart:    &ws,
		clockFormat:  &cf,
		tickInterval: &ti,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, err := s.store.GetAllSettings()
		if err != nil {
			logging.Errorf("load settings: %v", err)
		}
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Enter) {
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.fastingHours = s.getVal(store.KeyFastingHours, "16")
	*s.minHours = s.getVal(store.KeyMinHours, "12")
	*s.maxHours = s.getVal(store.KeyMaxHours, "16")
	*s.weekStart = s.getVal(store.KeyWeekStart, "monday")
	*s.clockFormat = s.getVal(store.KeyClockFormat, "24h")
	*s.tickInterval = s.getVal(store.KeyTickInterval, "1")

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Fasting hours").Value(s.fastingHours).Validate(validateHours),
			huh.NewInput().Title("Shortest fast (hours)").Value(s.minHours).Validate(validateHours),
			huh.NewInput().Title("Longest fast (hours)").Value(s.maxHours).Validate(validateHours),
		).Title("Fasting"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Week starts on").
				Options(
					huh.NewOption("Monday", "monday"),
					huh.NewOption("Sunday", "sunday"),
				).Value(s.weekStart),
			huh.NewSelect[string]().Title("Clock").
				Options(
					huh.NewOption("24-hour", "24h"),
					huh.NewOption("12-hour", "12h"),
				).Value(s.clockFormat),
			huh.NewInput().Title("Refresh every (seconds)").Value(s.tickInterval).Validate(validatePositive),
		).Title("Display"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func validateHours(v string) error {
	h, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if h <= 0 || h > 24 {
		return fmt.Errorf("must be between 0 and 24")
	}
	return nil
}

func validatePositive(v string) error {
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, tea.Batch(s.save(), s.refresh())
	}

	return s, cmd
}

// formConfig converts the form fields. Unparseable numbers keep the defaults.
func (s settingsModel) formConfig() store.Config {
	cfg := store.DefaultConfig()
	if v, err := strconv.ParseFloat(*s.fastingHours, 64); err == nil {
		cfg.FastingHours = v
	}
	if v, err := strconv.ParseFloat(*s.minHours, 64); err == nil {
		cfg.MinHours = v
	}
	if v, err := strconv.ParseFloat(*s.maxHours, 64); err == nil {
		cfg.MaxHours = v
	}
	if *s.weekStart == "sunday" {
		cfg.WeekStart = time.Sunday
	}
	cfg.Clock24 = *s.clockFormat != "12h"
	if v, err := strconv.ParseFloat(*s.tickInterval, 64); err == nil {
		cfg.TickInterval = time.Duration(v * float64(time.Second))
	}
	return cfg.Normalize()
}

func (s settingsModel) save() tea.Cmd {
	cfg := s.formConfig()
	return func() tea.Msg {
		if err := s.store.SaveConfig(cfg); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		return configSavedMsg{cfg: cfg}
	}
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit settings")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(24).Render(setting.Key)
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case store.KeyFastingHours, store.KeyMinHours, store.KeyMaxHours:
		if h, err := strconv.ParseFloat(v, 64); err == nil {
			return fmt.Sprintf("%g hours", h)
		}
	case store.KeyTickInterval:
		if secs, err := strconv.ParseFloat(v, 64); err == nil {
			return fmt.Sprintf("%gs", secs)
		}
	}
	return v
}
