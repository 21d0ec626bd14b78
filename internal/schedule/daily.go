package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Tier buckets a fasting window for display.
type Tier int

const (
	TierOff Tier = iota
	TierShort
	TierMedium
	TierLong
)

var tierNames = map[Tier]string{
	TierOff:    "off",
	TierShort:  "short",
	TierMedium: "medium",
	TierLong:   "long",
}

func (t Tier) String() string {
	return tierNames[t]
}

// DailySchedule is one day's fasting window. The window ends on the next
// calendar day when End is at or before Start.
type DailySchedule struct {
	ID      uuid.UUID
	Day     time.Weekday
	Start   TimeOfDay
	End     TimeOfDay
	Enabled bool
}

func NewDailySchedule(day time.Weekday, start, end TimeOfDay, enabled bool) DailySchedule {
	return DailySchedule{
		ID:      uuid.New(),
		Day:     day,
		Start:   start,
		End:     end,
		Enabled: enabled,
	}
}

func (s DailySchedule) CrossesMidnight() bool {
	return s.End.TotalMinutes() <= s.Start.TotalMinutes()
}

// FastingMinutes is always in (0, 1440]. Equal start and end is a full day.
func (s DailySchedule) FastingMinutes() int {
	m := s.End.TotalMinutes() - s.Start.TotalMinutes()
	if m <= 0 {
		m += minutesPerDay
	}
	return m
}

func (s DailySchedule) FastingDurationHours() float64 {
	return float64(s.FastingMinutes()) / 60
}

func (s DailySchedule) EatingDurationHours() float64 {
	return 24 - s.FastingDurationHours()
}

// StartDate resolves the window start onto ref's calendar day.
func (s DailySchedule) StartDate(ref time.Time) time.Time {
	return s.Start.On(ref)
}

// EndDate resolves the window end, one calendar day after ref when the
// window crosses midnight.
func (s DailySchedule) EndDate(ref time.Time) time.Time {
	end := s.End.On(ref)
	if s.CrossesMidnight() {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

func (s DailySchedule) WithStart(t TimeOfDay) DailySchedule {
	s.Start = t
	return s
}

func (s DailySchedule) WithEnd(t TimeOfDay) DailySchedule {
	s.End = t
	return s
}

func (s DailySchedule) WithEnabled(enabled bool) DailySchedule {
	s.Enabled = enabled
	return s
}

func (s DailySchedule) Toggle() DailySchedule {
	return s.WithEnabled(!s.Enabled)
}

// copyFor builds a fresh entry for day carrying s's window and enabled flag.
func (s DailySchedule) copyFor(day time.Weekday) DailySchedule {
	return NewDailySchedule(day, s.Start, s.End, s.Enabled)
}

func (s DailySchedule) Tier() Tier {
	if !s.Enabled {
		return TierOff
	}
	h := s.FastingDurationHours()
	switch {
	case h >= 16:
		return TierLong
	case h >= 14:
		return TierMedium
	default:
		return TierShort
	}
}

// BarHeight scales the fasting duration linearly into [min, max].
// Disabled days get min.
func (s DailySchedule) BarHeight(min, max float64) float64 {
	if !s.Enabled {
		return min
	}
	return s.FastingDurationHours()/24*(max-min) + min
}
