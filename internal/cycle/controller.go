package cycle

import (
	"errors"
	"sync"
	"time"

	"github.com/sadopc/fastr/internal/logging"
)

const (
	DefaultFastingHours = 16.0
	DefaultMinHours     = 12.0
	DefaultMaxHours     = 16.0
	DefaultInterval     = time.Second
)

var ErrActive = errors.New("cannot change fasting hours while the timer is running")

type Status int

const (
	Idle Status = iota
	Running
	Paused
)

var statusNames = map[Status]string{
	Idle:    "IDLE",
	Running: "RUNNING",
	Paused:  "PAUSED",
}

func (s Status) String() string {
	return statusNames[s]
}

// Snapshot is an immutable view of the controller for rendering.
type Snapshot struct {
	Status       Status
	FastingHours float64
	Anchor       time.Time // zero while Idle
	State        State
	Progress     float64
}

func (s Snapshot) Anchored() bool { return !s.Anchor.IsZero() }

// EatingHours is the whole-hour eating window shown next to the fasting input.
func (s Snapshot) EatingHours() int {
	return 24 - int(s.FastingHours)
}

type Option func(*Controller)

func WithClock(c Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

func WithTicker(t Ticker) Option {
	return func(ctl *Controller) { ctl.ticker = t }
}

func WithInterval(d time.Duration) Option {
	return func(ctl *Controller) {
		if d > 0 {
			ctl.interval = d
		}
	}
}

// WithBounds sets the input clamp applied by SetFastingHours.
func WithBounds(min, max float64) Option {
	return func(ctl *Controller) {
		ctl.minHours, ctl.maxHours = min, max
	}
}

func WithFastingHours(h float64) Option {
	return func(ctl *Controller) { ctl.hours = h }
}

// Controller owns the cycle inputs {fasting hours, status, anchor} and the
// ticker that re-queries the cycle while running. The anchor is set by the
// first Start and survives Stop/Start; only Reset clears it, so paused
// wall-clock time still counts toward the cycle.
type Controller struct {
	mu       sync.Mutex
	clock    Clock
	ticker   Ticker
	interval time.Duration
	minHours float64
	maxHours float64

	hours  float64
	status Status
	anchor time.Time
	state  State

	subscribers []func(Snapshot)
}

func NewController(opts ...Option) *Controller {
	c := &Controller{
		clock:    SystemClock{},
		ticker:   NopTicker{},
		interval: DefaultInterval,
		minHours: DefaultMinHours,
		maxHours: DefaultMaxHours,
		hours:    DefaultFastingHours,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.hours = ClampFastingHours(c.hours, c.minHours, c.maxHours)
	c.resetState()
	return c
}

// Subscribe registers fn to receive every snapshot after a change.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Start begins or resumes the cycle. The anchor is only set when absent.
func (c *Controller) Start() Snapshot {
	c.mu.Lock()
	if c.status == Running {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap
	}
	now := c.clock.Now()
	if c.anchor.IsZero() {
		c.anchor = now
		logging.Infof("cycle started: anchor=%s hours=%.0f", now.Format(time.RFC3339), c.hours)
	} else {
		logging.Infof("cycle resumed: anchor=%s", c.anchor.Format(time.RFC3339))
	}
	c.status = Running
	c.state = Compute(c.anchor, c.hours, now)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.ticker.Start(c.interval, c.Tick)

	// A Stop or Reset that ran before ticker.Start had nothing to cancel.
	c.mu.Lock()
	stale := c.status != Running
	c.mu.Unlock()
	if stale {
		c.ticker.Stop()
		return c.Snapshot()
	}

	c.notify(snap)
	return snap
}

// Stop pauses the cycle. The anchor is left untouched.
func (c *Controller) Stop() Snapshot {
	c.mu.Lock()
	if c.status != Running {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap
	}
	c.status = Paused
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.ticker.Stop()
	logging.Infof("cycle paused")
	c.notify(snap)
	return snap
}

// Toggle starts when not running and stops when running.
func (c *Controller) Toggle() Snapshot {
	if c.Snapshot().Status == Running {
		return c.Stop()
	}
	return c.Start()
}

// Reset returns to Idle from any state and clears the anchor.
func (c *Controller) Reset() Snapshot {
	c.mu.Lock()
	c.status = Idle
	c.anchor = time.Time{}
	c.resetState()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.ticker.Stop()
	logging.Infof("cycle reset")
	c.notify(snap)
	return snap
}

// SetFastingHours clamps h to the configured bounds. It fails with ErrActive
// while running.
func (c *Controller) SetFastingHours(h float64) (Snapshot, error) {
	c.mu.Lock()
	if c.status == Running {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrActive
	}
	c.hours = ClampFastingHours(h, c.minHours, c.maxHours)
	switch c.status {
	case Idle:
		c.resetState()
	case Paused:
		c.state = Compute(c.anchor, c.hours, c.clock.Now())
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	logging.Debugf("fasting hours set to %.0f", snap.FastingHours)
	c.notify(snap)
	return snap, nil
}

// SetBounds replaces the range used by later SetFastingHours calls. The
// current hours are kept.
func (c *Controller) SetBounds(min, max float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minHours, c.maxHours = min, max
}

// Tick re-queries the cycle at now. Ticks that arrive while not running are
// ignored.
func (c *Controller) Tick(now time.Time) {
	c.mu.Lock()
	if c.status != Running {
		c.mu.Unlock()
		return
	}
	prev := c.state.Phase
	c.state = Compute(c.anchor, c.hours, now)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if snap.State.Phase != prev {
		logging.Infof("phase changed: %s -> %s", prev, snap.State.Phase)
	}
	logging.Tracef("tick %s remaining=%s", now.Format(time.RFC3339), FormatRemaining(snap.State.Remaining))
	c.notify(snap)
}

func (c *Controller) resetState() {
	c.state = State{Phase: Fasting, Remaining: fastingDuration(c.hours)}
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Status:       c.status,
		FastingHours: c.hours,
		Anchor:       c.anchor,
		State:        c.state,
		Progress:     Progress(c.state, c.hours),
	}
}

func (c *Controller) notify(snap Snapshot) {
	c.mu.Lock()
	subs := make([]func(Snapshot), len(c.subscribers))
	copy(subs, c.subscribers)
	c.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}
