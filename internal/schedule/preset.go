package schedule

import (
	"fmt"
	"time"
)

// PresetInfo names a catalog entry.
type PresetInfo struct {
	Key         string
	Name        string
	Description string
	build       func() map[time.Weekday]DailySchedule
}

type window struct {
	start, end TimeOfDay
}

func tod(h, m int) TimeOfDay { return TimeOfDay{Hour: h, Minute: m} }

var catalog = []PresetInfo{
	{
		Key:         "standard",
		Name:        "Standard 16:8",
		Description: "20:00-12:00 every day",
		build:       DefaultSchedules,
	},
	{
		Key:         "weekday",
		Name:        "Weekday intensive",
		Description: "16h on weekdays, 14h Saturday, 16h Sunday",
		build: func() map[time.Weekday]DailySchedule {
			return build(map[time.Weekday]window{
				time.Monday:    {tod(20, 0), tod(12, 0)},
				time.Tuesday:   {tod(20, 0), tod(12, 0)},
				time.Wednesday: {tod(20, 0), tod(12, 0)},
				time.Thursday:  {tod(20, 0), tod(12, 0)},
				time.Friday:    {tod(20, 0), tod(12, 0)},
				time.Saturday:  {tod(21, 0), tod(11, 0)},
				time.Sunday:    {tod(19, 0), tod(11, 0)},
			})
		},
	},
	{
		Key:         "weekend",
		Name:        "Weekend relaxed",
		Description: "14h on weekdays, 12h at the weekend",
		build: func() map[time.Weekday]DailySchedule {
			return build(map[time.Weekday]window{
				time.Monday:    {tod(21, 0), tod(11, 0)},
				time.Tuesday:   {tod(21, 0), tod(11, 0)},
				time.Wednesday: {tod(21, 0), tod(11, 0)},
				time.Thursday:  {tod(21, 0), tod(11, 0)},
				time.Friday:    {tod(21, 0), tod(11, 0)},
				time.Saturday:  {tod(22, 0), tod(10, 0)},
				time.Sunday:    {tod(22, 0), tod(10, 0)},
			})
		},
	},
	{
		Key:         "flexible",
		Name:        "Flexible",
		Description: "a different window every day",
		build: func() map[time.Weekday]DailySchedule {
			return build(map[time.Weekday]window{
				time.Sunday:    {tod(20, 0), tod(12, 0)},
				time.Monday:    {tod(19, 30), tod(11, 30)},
				time.Tuesday:   {tod(20, 30), tod(12, 30)},
				time.Wednesday: {tod(19, 0), tod(12, 0)},
				time.Thursday:  {tod(21, 0), tod(11, 0)},
				time.Friday:    {tod(22, 0), tod(10, 0)},
				time.Saturday:  {tod(20, 0), tod(13, 0)},
			})
		},
	},
}

func build(windows map[time.Weekday]window) map[time.Weekday]DailySchedule {
	m := make(map[time.Weekday]DailySchedule, len(windows))
	for d, w := range windows {
		m[d] = NewDailySchedule(d, w.start, w.end, true)
	}
	return m
}

// Pattern builds a fresh pattern for the preset.
func (p PresetInfo) Pattern() WeeklyPattern {
	return NewWeeklyPattern(p.Name, p.build())
}

// Catalog lists the presets in display order.
func Catalog() []PresetInfo {
	out := make([]PresetInfo, len(catalog))
	copy(out, catalog)
	return out
}

func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for _, p := range catalog {
		keys = append(keys, p.Key)
	}
	return keys
}

func Preset(key string) (WeeklyPattern, error) {
	for _, p := range catalog {
		if p.Key == key {
			return p.Pattern(), nil
		}
	}
	return WeeklyPattern{}, fmt.Errorf("%w: %q", ErrUnknownPreset, key)
}
