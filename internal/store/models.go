package store

import "time"

type Setting struct {
	Key   string
	Value string
}

const (
	KeyFastingHours = "fasting_hours"
	KeyMinHours     = "fasting_hours_min"
	KeyMaxHours     = "fasting_hours_max"
	KeyWeekStart    = "week_start"
	KeyClockFormat  = "clock_format"
	KeyTickInterval = "tick_interval"
)

// Config is the typed view of the settings table.
type Config struct {
	FastingHours float64
	MinHours     float64
	MaxHours     float64
	WeekStart    time.Weekday
	Clock24      bool
	TickInterval time.Duration
}
