package tui

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/fastr/internal/cycle"
	"github.com/sadopc/fastr/internal/schedule"
	"github.com/sadopc/fastr/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

var t0 = time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

func newTestTimer(t *testing.T) (timerModel, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: t0}
	return newTimerModel(store.DefaultConfig(), cycle.WithClock(clk)), clk
}

func newTestApp(t *testing.T) (App, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: t0}
	app := newApp(newTestStore(t), store.DefaultConfig(), cycle.WithClock(clk))
	app.now = clk.Now
	return app, clk
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

// ============================================================
// Timer model
// ============================================================

func TestTimerToggle(t *testing.T) {
	tm, clk := newTestTimer(t)
	if tm.running() {
		t.Fatal("timer should start idle")
	}

	snap := tm.toggle()
	if snap.Status != cycle.Running || !snap.Anchor.Equal(clk.now) {
		t.Fatalf("unexpected snapshot after start: %+v", snap)
	}

	clk.now = clk.now.Add(time.Hour)
	snap = tm.toggle()
	if snap.Status != cycle.Paused {
		t.Fatalf("status = %s, want PAUSED", snap.Status)
	}
	if !snap.Anchor.Equal(t0) {
		t.Fatal("pause must keep the anchor")
	}
}

func TestTimerTick(t *testing.T) {
	tm, _ := newTestTimer(t)
	tm.toggle()
	tm.tick(t0.Add(16 * time.Hour))

	snap := tm.snapshot()
	if snap.State.Phase != cycle.Eating {
		t.Fatalf("phase = %s, want EATING", snap.State.Phase)
	}
	if snap.State.Remaining != 8*time.Hour {
		t.Fatalf("remaining = %s, want 8h", snap.State.Remaining)
	}
}

func TestTimerTickWhenIdle(t *testing.T) {
	tm, _ := newTestTimer(t)
	tm.tick(t0.Add(20 * time.Hour))
	if snap := tm.snapshot(); snap.State.Phase != cycle.Fasting || snap.State.Remaining != 16*time.Hour {
		t.Fatalf("idle tick changed state: %+v", snap.State)
	}
}

func TestTimerAdjustHours(t *testing.T) {
	tm, _ := newTestTimer(t)

	snap, err := tm.adjustHours(1)
	if err != nil {
		t.Fatal(err)
	}
	if snap.FastingHours != 16 {
		t.Fatalf("hours = %v, want clamp at 16", snap.FastingHours)
	}
	snap, _ = tm.adjustHours(-1)
	if snap.FastingHours != 15 {
		t.Fatalf("hours = %v, want 15", snap.FastingHours)
	}
	if snap.EatingHours() != 9 {
		t.Fatalf("eating = %d, want 9", snap.EatingHours())
	}

	tm.toggle()
	if _, err := tm.adjustHours(-1); err == nil {
		t.Fatal("expected error while running")
	}
}

func TestTimerApplyConfig(t *testing.T) {
	tm, _ := newTestTimer(t)
	cfg := store.DefaultConfig()
	cfg.MaxHours = 20
	cfg.FastingHours = 18
	cfg.Clock24 = false

	if err := tm.applyConfig(cfg); err != nil {
		t.Fatal(err)
	}
	if h := tm.snapshot().FastingHours; h != 18 {
		t.Fatalf("hours = %v, want 18", h)
	}
	if tm.clock24 {
		t.Fatal("clock24 should follow config")
	}

	tm.toggle()
	cfg.FastingHours = 13
	cfg.Clock24 = true
	if err := tm.applyConfig(cfg); !errors.Is(err, cycle.ErrActive) {
		t.Fatalf("applyConfig while running: err = %v, want ErrActive", err)
	}
	if !tm.clock24 {
		t.Fatal("display preferences should still apply while running")
	}
	if h := tm.snapshot().FastingHours; h != 18 {
		t.Fatalf("running timer hours changed to %v", h)
	}
}

// ============================================================
// Timer view (dashboard)
// ============================================================

func TestDashboardStartStop(t *testing.T) {
	tm, _ := newTestTimer(t)
	d := newDashboardModel(tm)

	d, cmd := d.update(keyMsg("s"))
	if !d.timer.running() {
		t.Fatal("s should start the timer")
	}
	if msg, ok := runCmd(t, cmd).(statusMsg); !ok || msg.text != "Fast started" {
		t.Fatalf("unexpected status %+v", msg)
	}

	d, cmd = d.update(keyMsg("s"))
	if d.timer.snapshot().Status != cycle.Paused {
		t.Fatal("second s should pause")
	}
	if msg := runCmd(t, cmd).(statusMsg); msg.text != "Paused" {
		t.Fatalf("status = %q", msg.text)
	}

	d, _ = d.update(keyMsg("r"))
	if snap := d.timer.snapshot(); snap.Status != cycle.Idle || snap.Anchored() {
		t.Fatalf("r should reset, got %+v", snap)
	}
}

func TestDashboardHoursKeys(t *testing.T) {
	tm, _ := newTestTimer(t)
	d := newDashboardModel(tm)

	d, cmd := d.update(keyMsg("-"))
	if h := d.timer.snapshot().FastingHours; h != 15 {
		t.Fatalf("hours = %v, want 15", h)
	}
	if msg := runCmd(t, cmd).(statusMsg); msg.isError {
		t.Fatalf("unexpected error %q", msg.text)
	}

	d, _ = d.update(keyMsg("s"))
	_, cmd = d.update(keyMsg("+"))
	if msg := runCmd(t, cmd).(statusMsg); !msg.isError {
		t.Fatal("changing hours while running should report an error")
	}
}

func TestDashboardTick(t *testing.T) {
	tm, _ := newTestTimer(t)
	d := newDashboardModel(tm)
	d.update(keyMsg("s"))
	d, _ = d.update(tickMsg(t0.Add(2 * time.Hour)))
	if r := d.timer.snapshot().State.Remaining; r != 14*time.Hour {
		t.Fatalf("remaining = %s, want 14h", r)
	}
}

func TestDashboardView(t *testing.T) {
	tm, _ := newTestTimer(t)
	d := newDashboardModel(tm)
	d.setSize(100, 30)

	today := schedule.NewDailySchedule(time.Sunday, schedule.NewTimeOfDay(20, 0), schedule.NewTimeOfDay(12, 0), true)
	out := d.view(today, true)
	for _, want := range []string{"READY", "16:00:00", "Today", "20:00", "ends tomorrow"} {
		if !strings.Contains(out, want) {
			t.Fatalf("idle view missing %q", want)
		}
	}

	d.update(keyMsg("s"))
	out = d.view(today, true)
	for _, want := range []string{"FASTING", "next:", "s: pause"} {
		if !strings.Contains(out, want) {
			t.Fatalf("running view missing %q", want)
		}
	}

	d.update(keyMsg("s"))
	if out := d.view(today, true); !strings.Contains(out, "PAUSED") || !strings.Contains(out, "s: resume") {
		t.Fatal("paused view should offer resume")
	}

	if out := d.view(today.Toggle(), true); !strings.Contains(out, "rest day") {
		t.Fatal("disabled day should render as rest day")
	}
	if out := d.view(schedule.DailySchedule{}, false); !strings.Contains(out, "No window planned") {
		t.Fatal("missing day should say so")
	}
}

func TestDashboardTooSmall(t *testing.T) {
	tm, _ := newTestTimer(t)
	d := newDashboardModel(tm)
	d.setSize(10, 5)
	if out := d.view(schedule.DailySchedule{}, false); out != "Terminal too small" {
		t.Fatalf("got %q", out)
	}
}

// ============================================================
// Week view
// ============================================================

func TestWeekDefaults(t *testing.T) {
	w := newWeekModel(time.Monday)
	if w.selectedDay() != time.Monday {
		t.Fatalf("first day = %s", w.selectedDay())
	}
	if got := w.pattern.WeeklyAverageFastingHours(); got != 16 {
		t.Fatalf("average = %v, want 16", got)
	}
	if newWeekModel(time.Sunday).selectedDay() != time.Sunday {
		t.Fatal("sunday-start week should begin on Sunday")
	}
}

func TestWeekCursorBounds(t *testing.T) {
	w := newWeekModel(time.Monday)
	w, _ = w.update(keyMsg("k"))
	if w.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", w.cursor)
	}
	for i := 0; i < 10; i++ {
		w, _ = w.update(keyMsg("j"))
	}
	if w.cursor != 6 || w.selectedDay() != time.Sunday {
		t.Fatalf("cursor = %d day = %s", w.cursor, w.selectedDay())
	}
}

func TestWeekToggleAndCopy(t *testing.T) {
	w := newWeekModel(time.Monday)
	w, _ = w.update(keyMsg("t"))
	if w.pattern.EnabledDays() != 6 {
		t.Fatalf("enabled = %d, want 6", w.pattern.EnabledDays())
	}

	w, cmd := w.update(keyMsg("c"))
	if w.pattern.EnabledDays() != 0 {
		t.Fatalf("copying a disabled Monday should disable all, enabled = %d", w.pattern.EnabledDays())
	}
	if msg := runCmd(t, cmd).(statusMsg); !strings.Contains(msg.text, "Monday") {
		t.Fatalf("status = %q", msg.text)
	}
	if w.pattern.WeeklyAverageFastingHours() != 0 {
		t.Fatal("average over no enabled days should be 0")
	}
}

func TestWeekQuickSets(t *testing.T) {
	w := newWeekModel(time.Monday)
	w, _ = w.update(keyMsg("W"))
	sat, _ := w.pattern.Schedule(time.Saturday)
	if sat.Start.String() != "21:00" || sat.End.String() != "11:00" {
		t.Fatalf("saturday = %s-%s", sat.Start, sat.End)
	}
	mon, _ := w.pattern.Schedule(time.Monday)
	if mon.Start.String() != "20:00" {
		t.Fatalf("weekend set touched monday: %s", mon.Start)
	}

	w, _ = w.update(keyMsg("d"))
	sat, _ = w.pattern.Schedule(time.Saturday)
	if sat.Start.String() != "20:00" || sat.End.String() != "12:00" {
		t.Fatalf("defaults not restored: %s-%s", sat.Start, sat.End)
	}

	w, _ = w.update(keyMsg("w"))
	if got := w.pattern.WeeklyAverageFastingHours(); got != 16 {
		t.Fatalf("average = %v", got)
	}
}

func TestWeekEditForm(t *testing.T) {
	w := newWeekModel(time.Monday)
	w, _ = w.update(keyMsg("enter"))
	if !w.formActive {
		t.Fatal("enter should open the day form")
	}
	if *w.formStart != "20:00" || *w.formEnd != "12:00" || !*w.formEnabled {
		t.Fatalf("form not prefilled: %s %s %v", *w.formStart, *w.formEnd, *w.formEnabled)
	}
	w, _ = w.update(keyMsg("esc"))
	if w.formActive {
		t.Fatal("esc should close the form")
	}
}

func TestWeekSaveDay(t *testing.T) {
	w := newWeekModel(time.Monday)
	id := w.pattern.Schedules[time.Monday].ID
	*w.formStart = "06:00"
	*w.formEnd = "18:30"
	*w.formEnabled = false

	if err := w.saveDay(); err != nil {
		t.Fatal(err)
	}
	mon, _ := w.pattern.Schedule(time.Monday)
	if mon.Start.String() != "06:00" || mon.End.String() != "18:30" || mon.Enabled {
		t.Fatalf("monday = %s-%s enabled=%v", mon.Start, mon.End, mon.Enabled)
	}
	if mon.ID != id {
		t.Fatal("editing a day should keep its identity")
	}
	if mon.FastingDurationHours() != 12.5 {
		t.Fatalf("fasting = %v, want 12.5", mon.FastingDurationHours())
	}
}

func TestWeekSaveDayInvalid(t *testing.T) {
	w := newWeekModel(time.Monday)
	*w.formStart = "25:99"
	*w.formEnd = "12:00"
	if err := w.saveDay(); err == nil {
		t.Fatal("expected error for bad time")
	}
	if validateTime("7:05") != nil {
		t.Fatal("7:05 should be valid")
	}
	if validateTime("noon") == nil {
		t.Fatal("noon should be invalid")
	}
}

func TestWeekView(t *testing.T) {
	w := newWeekModel(time.Monday)
	w.setSize(120, 40)
	out := w.view()
	for _, want := range []string{"My week", "avg 16.0h", "7/7 days", "Mon", "Sun", "long"} {
		if !strings.Contains(out, want) {
			t.Fatalf("week view missing %q", want)
		}
	}
}

// ============================================================
// Presets view
// ============================================================

func TestPresetsApply(t *testing.T) {
	p := newPresetsModel()
	_, cmd := p.update(keyMsg("enter"))
	msg, ok := runCmd(t, cmd).(presetAppliedMsg)
	if !ok {
		t.Fatal("enter should apply the preset")
	}
	if msg.pattern.Name != "Standard 16:8" {
		t.Fatalf("pattern = %q", msg.pattern.Name)
	}

	for i := 0; i < 10; i++ {
		p, _ = p.update(keyMsg("j"))
	}
	if p.cursor != len(p.presets)-1 {
		t.Fatalf("cursor = %d", p.cursor)
	}
	_, cmd = p.update(keyMsg("enter"))
	msg = runCmd(t, cmd).(presetAppliedMsg)
	mon, _ := msg.pattern.Schedule(time.Monday)
	if mon.Start.String() != "19:30" {
		t.Fatalf("flexible monday = %s", mon.Start)
	}
}

func TestPresetsFreshPatterns(t *testing.T) {
	p := newPresetsModel()
	_, first := p.update(keyMsg("enter"))
	_, second := p.update(keyMsg("enter"))
	a := runCmd(t, first).(presetAppliedMsg)
	b := runCmd(t, second).(presetAppliedMsg)
	if a.pattern.ID == b.pattern.ID {
		t.Fatal("each apply should build a new pattern")
	}
}

func TestPresetsView(t *testing.T) {
	p := newPresetsModel()
	p.setSize(120, 40)
	out := p.view()
	for _, info := range schedule.Catalog() {
		if !strings.Contains(out, info.Name) {
			t.Fatalf("view missing %q", info.Name)
		}
	}
}

// ============================================================
// Settings view
// ============================================================

func TestSettingsRefresh(t *testing.T) {
	s := newTestStore(t)
	m := newSettingsModel(s)
	msg, ok := runCmd(t, m.refresh()).(settingsDataMsg)
	if !ok || len(msg.settings) != 6 {
		t.Fatalf("unexpected refresh %+v", msg)
	}
	m, _ = m.update(msg)
	m.setSize(120, 40)
	if !strings.Contains(m.view(), "fasting_hours") {
		t.Fatal("view should list settings")
	}
}

func TestSettingsFormConfig(t *testing.T) {
	m := newSettingsModel(newTestStore(t))
	*m.fastingHours = "14"
	*m.minHours = "12"
	*m.maxHours = "18"
	*m.weekStart = "sunday"
	*m.clockFormat = "12h"
	*m.tickInterval = "2"

	cfg := m.formConfig()
	want := store.Config{FastingHours: 14, MinHours: 12, MaxHours: 18, WeekStart: time.Sunday, Clock24: false, TickInterval: 2 * time.Second}
	if cfg != want {
		t.Fatalf("formConfig = %+v, want %+v", cfg, want)
	}
}

func TestSettingsSave(t *testing.T) {
	s := newTestStore(t)
	m := newSettingsModel(s)
	*m.fastingHours = "13"
	*m.minHours = "12"
	*m.maxHours = "16"
	*m.weekStart = "monday"
	*m.clockFormat = "24h"
	*m.tickInterval = "1"

	msg, ok := runCmd(t, m.save()).(configSavedMsg)
	if !ok {
		t.Fatal("save should report configSavedMsg")
	}
	if msg.cfg.FastingHours != 13 {
		t.Fatalf("cfg hours = %v", msg.cfg.FastingHours)
	}
	if v, _ := s.GetSetting(store.KeyFastingHours); v != "13" {
		t.Fatalf("stored fasting_hours = %q", v)
	}
}

func TestSettingsValidators(t *testing.T) {
	for _, v := range []string{"12", "16.5", "24"} {
		if err := validateHours(v); err != nil {
			t.Fatalf("validateHours(%q): %v", v, err)
		}
	}
	for _, v := range []string{"0", "25", "x", "-3"} {
		if validateHours(v) == nil {
			t.Fatalf("validateHours(%q) should fail", v)
		}
	}
	if validatePositive("0") == nil || validatePositive("0.5") != nil {
		t.Fatal("validatePositive wrong")
	}
}

func TestFormatSettingValue(t *testing.T) {
	tests := []struct {
		key, val, want string
	}{
		{store.KeyFastingHours, "16", "16 hours"},
		{store.KeyMinHours, "12.5", "12.5 hours"},
		{store.KeyTickInterval, "1", "1s"},
		{store.KeyWeekStart, "monday", "monday"},
		{store.KeyFastingHours, "junk", "junk"},
	}
	for _, tt := range tests {
		if got := formatSettingValue(tt.key, tt.val); got != tt.want {
			t.Errorf("formatSettingValue(%q, %q) = %q, want %q", tt.key, tt.val, got, tt.want)
		}
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	app, _ := newTestApp(t)
	if app.activeView != viewTimer {
		t.Fatal("default view should be the timer")
	}
	if app.showHelp || app.exportPicking || app.isFormActive() {
		t.Fatal("overlays should be hidden by default")
	}
}

func TestAppLoadingState(t *testing.T) {
	app, _ := newTestApp(t)
	if out := app.View(); out != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", out)
	}
}

func TestAppViewStates(t *testing.T) {
	app, _ := newTestApp(t)
	m, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app = m.(App)

	for v := range viewNames {
		app.activeView = viewState(v)
		if app.View() == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppTabCycles(t *testing.T) {
	app, _ := newTestApp(t)
	for i := 1; i <= len(viewNames); i++ {
		m, _ := app.Update(keyMsg("tab"))
		app = m.(App)
		if want := viewState(i % len(viewNames)); app.activeView != want {
			t.Fatalf("after %d tabs view = %d, want %d", i, app.activeView, want)
		}
	}
	m, _ := app.Update(keyMsg("3"))
	if m.(App).activeView != viewPresets {
		t.Fatal("3 should open presets")
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	app, _ := newTestApp(t)
	app.width = 120
	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppTickReachesTimerFromAnyView(t *testing.T) {
	app, _ := newTestApp(t)
	app.dashboard.timer.toggle()
	app.activeView = viewWeek

	m, cmd := app.Update(tickMsg(t0.Add(17 * time.Hour)))
	app = m.(App)
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if p := app.dashboard.timer.snapshot().State.Phase; p != cycle.Eating {
		t.Fatalf("phase = %s, want EATING", p)
	}

	app.width = 120
	if footer := app.renderFooter(); !strings.Contains(footer, "EATING 07:00:00") {
		t.Fatalf("footer missing phase: %q", footer)
	}
}

func TestAppPresetApplied(t *testing.T) {
	app, _ := newTestApp(t)
	p, _ := schedule.Preset("weekend")
	m, _ := app.Update(presetAppliedMsg{pattern: p})
	app = m.(App)
	if app.activeView != viewWeek {
		t.Fatal("applying a preset should show the week")
	}
	if app.week.pattern.ID != p.ID {
		t.Fatal("week should hold the applied pattern")
	}
	if !strings.Contains(app.status, p.Name) {
		t.Fatalf("status = %q", app.status)
	}
}

func TestAppConfigSaved(t *testing.T) {
	app, _ := newTestApp(t)
	cfg := store.DefaultConfig()
	cfg.WeekStart = time.Sunday
	cfg.Clock24 = false
	cfg.FastingHours = 13

	m, _ := app.Update(configSavedMsg{cfg: cfg})
	app = m.(App)
	if app.week.selectedDay() != time.Sunday {
		t.Fatal("week should restart on Sunday")
	}
	if app.dashboard.timer.clock24 {
		t.Fatal("timer should switch to 12h clock")
	}
	if h := app.dashboard.timer.snapshot().FastingHours; h != 13 {
		t.Fatalf("hours = %v, want 13", h)
	}
}

func TestAppConfigSavedWhileRunning(t *testing.T) {
	app, _ := newTestApp(t)
	app.dashboard.timer.toggle()
	cfg := store.DefaultConfig()
	cfg.FastingHours = 13

	m, _ := app.Update(configSavedMsg{cfg: cfg})
	app = m.(App)
	if h := app.dashboard.timer.snapshot().FastingHours; h != 16 {
		t.Fatalf("running timer hours changed to %v", h)
	}
	if !strings.Contains(app.status, "after the timer stops") {
		t.Fatalf("status = %q", app.status)
	}
}

func TestAppStatusMessage(t *testing.T) {
	app, _ := newTestApp(t)
	app.width = 120
	m, _ := app.Update(statusMsg{text: "test status"})
	app = m.(App)
	if !strings.Contains(app.renderFooter(), "test status") {
		t.Fatal("footer should contain status message")
	}
	m, _ = app.Update(statusMsg{text: "boom", isError: true})
	if m.(App).statusOK {
		t.Fatal("error status should be flagged")
	}
}

func TestAppExportPicker(t *testing.T) {
	app, _ := newTestApp(t)
	m, _ := app.Update(keyMsg("e"))
	app = m.(App)
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}
	m, _ = app.Update(keyMsg("j"))
	app = m.(App)
	if app.exportCursor != 1 {
		t.Fatalf("cursor = %d", app.exportCursor)
	}
	m, _ = app.Update(keyMsg("esc"))
	if m.(App).exportPicking {
		t.Fatal("esc should close the picker")
	}
}

func TestAppDoExport(t *testing.T) {
	app, _ := newTestApp(t)
	dir := t.TempDir()

	for format, ext := range []string{".csv", ".json"} {
		msg, ok := app.doExport(format, dir)().(exportDoneMsg)
		if !ok {
			t.Fatalf("format %d did not export", format)
		}
		if !strings.HasSuffix(msg.path, "fastr-week-2026-03-01"+ext) {
			t.Fatalf("path = %q", msg.path)
		}
		if _, err := os.Stat(msg.path); err != nil {
			t.Fatal(err)
		}
	}

	msg := app.doExport(0, "/nonexistent/dir")()
	if st, ok := msg.(statusMsg); !ok || !st.isError {
		t.Fatalf("expected error status, got %+v", msg)
	}
}

func TestAppFormCapturesKeys(t *testing.T) {
	app, _ := newTestApp(t)
	app.activeView = viewWeek
	m, _ := app.Update(keyMsg("enter"))
	app = m.(App)
	if !app.isFormActive() {
		t.Fatal("week form should be active")
	}
	m, _ = app.Update(keyMsg("3"))
	if m.(App).activeView != viewWeek {
		t.Fatal("keys should go to the form, not the tab bar")
	}
}

// ============================================================
// Key bindings and styles
// ============================================================

func TestKeyMapHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
	for i, g := range keys.FullHelp() {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

func TestTierAndPhaseColors(t *testing.T) {
	for _, tier := range []schedule.Tier{schedule.TierOff, schedule.TierShort, schedule.TierMedium, schedule.TierLong} {
		if _, ok := tierColors[tier]; !ok {
			t.Fatalf("no color for tier %s", tier)
		}
		if tierStyle(tier).Render("x") == "" {
			t.Fatalf("tier %s rendered empty", tier)
		}
	}
	if phaseColor(cycle.Fasting) == phaseColor(cycle.Eating) {
		t.Fatal("phases should have distinct colors")
	}
}

func TestFormatHours(t *testing.T) {
	if got := formatHours(13.428); got != "13.4h" {
		t.Fatalf("formatHours = %q", got)
	}
}
