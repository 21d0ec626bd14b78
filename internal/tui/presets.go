package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/fastr/internal/schedule"
)

type presetsModel struct {
	width  int
	height int

	presets []schedule.PresetInfo
	cursor  int
}

func newPresetsModel() presetsModel {
	return presetsModel{presets: schedule.Catalog()}
}

func (p *presetsModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p presetsModel) update(msg tea.Msg) (presetsModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch {
	case key.Matches(km, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(km, keys.Down):
		if p.cursor < len(p.presets)-1 {
			p.cursor++
		}
	case key.Matches(km, keys.Enter):
		if p.cursor >= len(p.presets) {
			return p, nil
		}
		// Each apply builds a fresh pattern, replacing the week wholesale.
		pattern := p.presets[p.cursor].Pattern()
		return p, func() tea.Msg { return presetAppliedMsg{pattern: pattern} }
	}
	return p, nil
}

func (p presetsModel) view() string {
	w := p.width - 4

	var rows []string
	rows = append(rows, titleStyle.Render("Presets"), "")

	for i, info := range p.presets {
		cursor := "  "
		style := normalItemStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		avg := info.Pattern().WeeklyAverageFastingHours()
		rows = append(rows, style.Render(fmt.Sprintf("%s%-20s", cursor, info.Name))+
			highlightStyle.Render(fmt.Sprintf(" avg %s", formatHours(avg))))
		rows = append(rows, mutedStyle.Render("    "+info.Description))
	}

	if p.cursor < len(p.presets) {
		rows = append(rows, "", p.renderPreview(p.presets[p.cursor]))
	}

	rows = append(rows, "", mutedStyle.Render("  enter: apply to week  ↑/↓: select"))
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderPreview lists the preset's windows in Sunday-first order.
func (p presetsModel) renderPreview(info schedule.PresetInfo) string {
	pattern := info.Pattern()
	var cells []string
	for _, d := range schedule.Week(0) {
		s, ok := pattern.Schedule(d)
		if !ok {
			continue
		}
		cells = append(cells, tierStyle(s.Tier()).Render(
			fmt.Sprintf("%s %s-%s", schedule.ShortName(d), s.Start, s.End)))
	}
	return "  " + strings.Join(cells, "  ")
}
