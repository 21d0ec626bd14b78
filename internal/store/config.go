package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sadopc/fastr/internal/cycle"
	"github.com/sadopc/fastr/internal/logging"
)

func DefaultConfig() Config {
	return Config{
		FastingHours: cycle.DefaultFastingHours,
		MinHours:     cycle.DefaultMinHours,
		MaxHours:     cycle.DefaultMaxHours,
		WeekStart:    time.Monday,
		Clock24:      true,
		TickInterval: cycle.DefaultInterval,
	}
}

// Normalize orders the bounds and clamps the fasting hours into them.
func (c Config) Normalize() Config {
	if c.MinHours <= 0 || c.MinHours > 24 {
		c.MinHours = cycle.DefaultMinHours
	}
	if c.MaxHours <= 0 || c.MaxHours > 24 {
		c.MaxHours = cycle.DefaultMaxHours
	}
	if c.MinHours > c.MaxHours {
		c.MinHours, c.MaxHours = c.MaxHours, c.MinHours
	}
	c.FastingHours = cycle.ClampFastingHours(c.FastingHours, c.MinHours, c.MaxHours)
	if c.WeekStart != time.Sunday {
		c.WeekStart = time.Monday
	}
	if c.TickInterval <= 0 {
		c.TickInterval = cycle.DefaultInterval
	}
	return c
}

// LoadConfig reads the settings table. Malformed values fall back to their
// defaults with a warning.
func (s *Store) LoadConfig() (Config, error) {
	settings, err := s.GetAllSettings()
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	for _, st := range settings {
		switch st.Key {
		case KeyFastingHours:
			cfg.FastingHours = parseFloat(st, cfg.FastingHours)
		case KeyMinHours:
			cfg.MinHours = parseFloat(st, cfg.MinHours)
		case KeyMaxHours:
			cfg.MaxHours = parseFloat(st, cfg.MaxHours)
		case KeyWeekStart:
			switch st.Value {
			case "sunday":
				cfg.WeekStart = time.Sunday
			case "monday":
				cfg.WeekStart = time.Monday
			default:
				logging.Warnf("setting %s: unknown value %q", st.Key, st.Value)
			}
		case KeyClockFormat:
			switch st.Value {
			case "24h":
				cfg.Clock24 = true
			case "12h":
				cfg.Clock24 = false
			default:
				logging.Warnf("setting %s: unknown value %q", st.Key, st.Value)
			}
		case KeyTickInterval:
			secs := parseFloat(st, cfg.TickInterval.Seconds())
			cfg.TickInterval = time.Duration(secs * float64(time.Second))
		}
	}
	return cfg.Normalize(), nil
}

func (s *Store) SaveConfig(c Config) error {
	c = c.Normalize()
	if err := s.SetSettings(c.Settings()); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Settings renders c as settings table rows.
func (c Config) Settings() map[string]string {
	week := "monday"
	if c.WeekStart == time.Sunday {
		week = "sunday"
	}
	clock := "24h"
	if !c.Clock24 {
		clock = "12h"
	}
	return map[string]string{
		KeyFastingHours: formatFloat(c.FastingHours),
		KeyMinHours:     formatFloat(c.MinHours),
		KeyMaxHours:     formatFloat(c.MaxHours),
		KeyWeekStart:    week,
		KeyClockFormat:  clock,
		KeyTickInterval: formatFloat(c.TickInterval.Seconds()),
	}
}

func parseFloat(st Setting, fallback float64) float64 {
	v, err := strconv.ParseFloat(st.Value, 64)
	if err != nil {
		logging.Warnf("setting %s: %v", st.Key, err)
		return fallback
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
