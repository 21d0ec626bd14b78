// Package cycle derives the fasting/eating phase of a repeating 24 hour cycle
// from an anchor instant, and runs the start/stop/reset state around it.
package cycle

import (
	"fmt"
	"math"
	"time"
)

// Length is the duration of one fast+eat cycle.
const Length = 24 * time.Hour

type Phase int

const (
	Fasting Phase = iota
	Eating
)

var phaseNames = map[Phase]string{
	Fasting: "FASTING",
	Eating:  "EATING",
}

func (p Phase) String() string {
	return phaseNames[p]
}

// State is the result of one query of the cycle.
type State struct {
	Phase      Phase
	Remaining  time.Duration
	NextSwitch time.Time
}

func fastingDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

// Compute classifies now within the cycle anchored at start. It never reads
// the clock; equal inputs give equal outputs. Instants before start count as
// start. fastingHours must be positive.
func Compute(start time.Time, fastingHours float64, now time.Time) State {
	fasting := fastingDuration(fastingHours)

	elapsed := now.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	cycleElapsed := elapsed % Length
	cycleStart := start.Add(elapsed - cycleElapsed)

	var s State
	if cycleElapsed < fasting {
		s = State{
			Phase:      Fasting,
			Remaining:  fasting - cycleElapsed,
			NextSwitch: cycleStart.Add(fasting),
		}
	} else {
		s = State{
			Phase:      Eating,
			Remaining:  Length - cycleElapsed,
			NextSwitch: cycleStart.Add(Length),
		}
	}
	if s.Remaining < 0 {
		s.Remaining = 0
	}
	return s
}

// Progress is the completed fraction of the current phase, in [0,1].
func Progress(s State, fastingHours float64) float64 {
	total := fastingDuration(fastingHours)
	if s.Phase == Eating {
		total = Length - total
	}
	if total <= 0 {
		return 0
	}
	p := float64(total-s.Remaining) / float64(total)
	return math.Max(0, math.Min(1, p))
}

// FormatRemaining renders d as HH:MM:SS, dropping fractional seconds.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}

// FormatNextSwitch renders t as a short local clock time.
func FormatNextSwitch(t time.Time, clock24 bool) string {
	if clock24 {
		return t.Local().Format("15:04")
	}
	return t.Local().Format("3:04 PM")
}

// ClampFastingHours bounds user input to [lo, hi], and always into (0, 24].
func ClampFastingHours(h, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	h = math.Max(lo, math.Min(hi, h))
	if h > 24 {
		h = 24
	}
	if h <= 0 || math.IsNaN(h) {
		h = DefaultFastingHours
	}
	return h
}
