package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidTime    = errors.New("invalid time of day")
	ErrUnknownPreset  = errors.New("unknown preset")
	ErrUnknownWeekday = errors.New("unknown weekday")
)

const minutesPerDay = 24 * 60

// TimeOfDay is a clock time with minute resolution. Values are always in range.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay clamps hour into [0,23] and minute into [0,59].
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{
		Hour:   clamp(hour, 0, 23),
		Minute: clamp(minute, 0, 59),
	}
}

// TimeOfDayFrom takes the wall-clock hour and minute of t in t's location.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseTimeOfDay parses "H:MM" or "HH:MM". Out-of-range numbers are clamped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hs, ms, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || hs == "" || ms == "" {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: hour %q", ErrInvalidTime, hs)
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: minute %q", ErrInvalidTime, ms)
	}
	return NewTimeOfDay(h, m), nil
}

func (t TimeOfDay) TotalMinutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On resolves t onto the calendar day of date, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
