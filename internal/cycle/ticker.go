package cycle

import (
	"sync"
	"time"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Ticker calls fn periodically between Start and Stop. At most one schedule
// is active at a time; Start while started is a no-op.
type Ticker interface {
	Start(interval time.Duration, fn func(time.Time))
	Stop()
}

// IntervalTicker runs fn on its own goroutine from a time.Ticker. Stop waits
// for the goroutine to exit, so it must not be called from fn.
type IntervalTicker struct {
	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewIntervalTicker() *IntervalTicker {
	return &IntervalTicker{}
}

func (t *IntervalTicker) Start(interval time.Duration, fn func(time.Time)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	t.stop, t.done = stop, done

	go func() {
		defer close(done)
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-tk.C:
				select {
				case <-stop:
					return
				default:
				}
				fn(now)
			}
		}
	}()
}

func (t *IntervalTicker) Stop() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// NopTicker never fires. Used when the caller drives Tick itself, as the
// terminal UI does from its own tick messages.
type NopTicker struct{}

func (NopTicker) Start(time.Duration, func(time.Time)) {}
func (NopTicker) Stop()                                {}

// ManualTicker fires only when told to.
type ManualTicker struct {
	mu       sync.Mutex
	fn       func(time.Time)
	interval time.Duration
	starts   int
	stops    int
}

func (t *ManualTicker) Start(interval time.Duration, fn func(time.Time)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fn != nil {
		return
	}
	t.fn = fn
	t.interval = interval
	t.starts++
}

func (t *ManualTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fn != nil {
		t.stops++
	}
	t.fn = nil
}

// Fire invokes the callback with now and reports whether the ticker was active.
func (t *ManualTicker) Fire(now time.Time) bool {
	t.mu.Lock()
	fn := t.fn
	t.mu.Unlock()
	if fn == nil {
		return false
	}
	fn(now)
	return true
}

func (t *ManualTicker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fn != nil
}

func (t *ManualTicker) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// Counts returns how many times the ticker was started and stopped.
func (t *ManualTicker) Counts() (starts, stops int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.starts, t.stops
}
