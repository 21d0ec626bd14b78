package schedule

import (
	"time"

	"github.com/google/uuid"
)

var (
	defaultStart = TimeOfDay{Hour: 20, Minute: 0}
	defaultEnd   = TimeOfDay{Hour: 12, Minute: 0}

	weekendStart = TimeOfDay{Hour: 21, Minute: 0}
	weekendEnd   = TimeOfDay{Hour: 11, Minute: 0}

	Weekdays    = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	WeekendDays = []time.Weekday{time.Saturday, time.Sunday}
)

// WeeklyPattern maps days to their fasting window. A pattern built from an
// empty map gets a 20:00-12:00 window on every day; a partial map stays
// partial and Schedule reports the missing days as absent.
//
// Editing methods never modify the receiver. They return a new pattern with
// its own map, keeping ID and Name.
type WeeklyPattern struct {
	ID        uuid.UUID
	Name      string
	Schedules map[time.Weekday]DailySchedule
	Active    bool
}

func NewWeeklyPattern(name string, schedules map[time.Weekday]DailySchedule) WeeklyPattern {
	if len(schedules) == 0 {
		schedules = DefaultSchedules()
	}
	return WeeklyPattern{
		ID:        uuid.New(),
		Name:      name,
		Schedules: schedules,
		Active:    true,
	}
}

// DefaultSchedules returns an enabled 20:00-12:00 window for every day.
func DefaultSchedules() map[time.Weekday]DailySchedule {
	m := make(map[time.Weekday]DailySchedule, 7)
	for _, d := range weekdays {
		m[d] = NewDailySchedule(d, defaultStart, defaultEnd, true)
	}
	return m
}

func (p WeeklyPattern) Schedule(day time.Weekday) (DailySchedule, bool) {
	s, ok := p.Schedules[day]
	return s, ok
}

func (p WeeklyPattern) TodaysSchedule(now time.Time) (DailySchedule, bool) {
	return p.Schedule(Today(now))
}

func (p WeeklyPattern) EnabledDays() int {
	n := 0
	for _, s := range p.Schedules {
		if s.Enabled {
			n++
		}
	}
	return n
}

func (p WeeklyPattern) TotalFastingHours() float64 {
	var total float64
	for _, s := range p.Schedules {
		if s.Enabled {
			total += s.FastingDurationHours()
		}
	}
	return total
}

// WeeklyAverageFastingHours is the mean over enabled days, 0 when none is.
func (p WeeklyPattern) WeeklyAverageFastingHours() float64 {
	n := p.EnabledDays()
	if n == 0 {
		return 0
	}
	return p.TotalFastingHours() / float64(n)
}

func (p WeeklyPattern) clone() WeeklyPattern {
	m := make(map[time.Weekday]DailySchedule, len(p.Schedules))
	for d, s := range p.Schedules {
		m[d] = s
	}
	p.Schedules = m
	return p
}

// Set replaces the entry for day. The stored entry always carries day.
func (p WeeklyPattern) Set(day time.Weekday, s DailySchedule) WeeklyPattern {
	p = p.clone()
	s.Day = day
	p.Schedules[day] = s
	return p
}

// ApplyTo gives each of days a fresh entry with src's window and enabled flag.
func (p WeeklyPattern) ApplyTo(src DailySchedule, days ...time.Weekday) WeeklyPattern {
	p = p.clone()
	for _, d := range days {
		p.Schedules[d] = src.copyFor(d)
	}
	return p
}

// CopyToAll copies the entry of src to every day. A missing src is a no-op.
func (p WeeklyPattern) CopyToAll(src time.Weekday) WeeklyPattern {
	s, ok := p.Schedule(src)
	if !ok {
		return p.clone()
	}
	return p.ApplyTo(s, weekdays...)
}

func (p WeeklyPattern) ApplyWeekdays() WeeklyPattern {
	return p.ApplyTo(NewDailySchedule(time.Monday, defaultStart, defaultEnd, true), Weekdays...)
}

func (p WeeklyPattern) ApplyWeekend() WeeklyPattern {
	return p.ApplyTo(NewDailySchedule(time.Saturday, weekendStart, weekendEnd, true), WeekendDays...)
}

func (p WeeklyPattern) RestoreDefaults() WeeklyPattern {
	p = p.clone()
	p.Schedules = DefaultSchedules()
	return p
}

func (p WeeklyPattern) ToggleDay(day time.Weekday) WeeklyPattern {
	return p.update(day, DailySchedule.Toggle)
}

func (p WeeklyPattern) UpdateStart(day time.Weekday, t TimeOfDay) WeeklyPattern {
	return p.update(day, func(s DailySchedule) DailySchedule { return s.WithStart(t) })
}

func (p WeeklyPattern) UpdateEnd(day time.Weekday, t TimeOfDay) WeeklyPattern {
	return p.update(day, func(s DailySchedule) DailySchedule { return s.WithEnd(t) })
}

func (p WeeklyPattern) update(day time.Weekday, fn func(DailySchedule) DailySchedule) WeeklyPattern {
	p = p.clone()
	if s, ok := p.Schedules[day]; ok {
		p.Schedules[day] = fn(s)
	}
	return p
}
