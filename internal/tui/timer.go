package tui

import (
	"errors"
	"time"

	"github.com/sadopc/fastr/internal/cycle"
	"github.com/sadopc/fastr/internal/store"
)

// timerModel adapts a cycle.Controller to the Bubble Tea loop. The app's
// tea.Tick drives the controller, so it runs with a NopTicker.
type timerModel struct {
	ctl     *cycle.Controller
	clock24 bool
}

func newTimerModel(cfg store.Config, opts ...cycle.Option) timerModel {
	base := []cycle.Option{
		cycle.WithTicker(cycle.NopTicker{}),
		cycle.WithInterval(cfg.TickInterval),
		cycle.WithBounds(cfg.MinHours, cfg.MaxHours),
		cycle.WithFastingHours(cfg.FastingHours),
	}
	return timerModel{
		ctl:     cycle.NewController(append(base, opts...)...),
		clock24: cfg.Clock24,
	}
}

func (t timerModel) snapshot() cycle.Snapshot { return t.ctl.Snapshot() }

func (t timerModel) running() bool { return t.snapshot().Status == cycle.Running }

func (t timerModel) toggle() cycle.Snapshot { return t.ctl.Toggle() }

func (t timerModel) reset() cycle.Snapshot { return t.ctl.Reset() }

func (t timerModel) tick(now time.Time) { t.ctl.Tick(now) }

// adjustHours moves the fasting hours by delta whole hours.
func (t timerModel) adjustHours(delta float64) (cycle.Snapshot, error) {
	cur := t.snapshot().FastingHours
	snap, err := t.ctl.SetFastingHours(cur + delta)
	if errors.Is(err, cycle.ErrActive) {
		return snap, errors.New("stop the timer to change fasting hours")
	}
	return snap, err
}

// applyConfig picks up saved preferences. Hours only change while stopped;
// a running timer keeps its hours and cycle.ErrActive is returned.
func (t *timerModel) applyConfig(cfg store.Config) error {
	t.clock24 = cfg.Clock24
	t.ctl.SetBounds(cfg.MinHours, cfg.MaxHours)
	_, err := t.ctl.SetFastingHours(cfg.FastingHours)
	return err
}
