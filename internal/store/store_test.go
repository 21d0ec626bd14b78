package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != currentVersion {
		t.Fatalf("expected user_version %d, got %d", currentVersion, version)
	}
}

func TestNewWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "fastr.db")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetSetting(KeyFastingHours, "14"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: migration must not reset the stored value.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	v, err := s2.GetSetting(KeyFastingHours)
	if err != nil {
		t.Fatal(err)
	}
	if v != "14" {
		t.Fatalf("fasting_hours after reopen = %q, want 14", v)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "fastr.db" {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
	if err := s.migrateV1(); err != nil {
		t.Fatalf("re-running v1 failed: %v", err)
	}
}

func TestCloseStore(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetSetting(KeyWeekStart); err == nil {
		t.Fatal("expected error after close")
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettingsDefaults(t *testing.T) {
	s := newTestStore(t)

	defaults := map[string]string{
		KeyFastingHours: "16",
		KeyMinHours:     "12",
		KeyMaxHours:     "16",
		KeyWeekStart:    "monday",
		KeyClockFormat:  "24h",
		KeyTickInterval: "1",
	}

	for k, expected := range defaults {
		val, err := s.GetSetting(k)
		if err != nil {
			t.Fatalf("GetSetting(%q): %v", k, err)
		}
		if val != expected {
			t.Fatalf("GetSetting(%q) = %q, want %q", k, val, expected)
		}
	}
}

func TestSetSettingOverwrite(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting(KeyClockFormat, "12h")
	s.SetSetting(KeyClockFormat, "24h")

	val, _ := s.GetSetting(KeyClockFormat)
	if val != "24h" {
		t.Fatalf("expected 24h, got %q", val)
	}
}

func TestSetSettingNewKey(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetSetting("theme", "dark"); err != nil {
		t.Fatal(err)
	}
	val, err := s.GetSetting("theme")
	if err != nil {
		t.Fatal(err)
	}
	if val != "dark" {
		t.Fatalf("expected dark, got %q", val)
	}
}

func TestGetSettingNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetSetting("nonexistent")
	if !errors.Is(err, ErrNoSetting) {
		t.Fatalf("expected ErrNoSetting, got %v", err)
	}
}

func TestSetSettingsBatch(t *testing.T) {
	s := newTestStore(t)
	err := s.SetSettings(map[string]string{
		KeyFastingHours: "13",
		KeyWeekStart:    "sunday",
	})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := s.GetSetting(KeyFastingHours); v != "13" {
		t.Fatalf("fasting_hours = %q", v)
	}
	if v, _ := s.GetSetting(KeyWeekStart); v != "sunday" {
		t.Fatalf("week_start = %q", v)
	}
}

func TestGetAllSettings(t *testing.T) {
	s := newTestStore(t)
	all, err := s.GetAllSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 6 {
		t.Fatalf("expected 6 default settings, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Key >= all[i].Key {
			t.Fatalf("settings not sorted: %s >= %s", all[i-1].Key, all[i].Key)
		}
	}
}

// ============================================================
// Config
// ============================================================

func TestLoadConfigDefaults(t *testing.T) {
	s := newTestStore(t)
	cfg, err := s.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("LoadConfig = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	s := newTestStore(t)
	want := Config{
		FastingHours: 13.5,
		MinHours:     12,
		MaxHours:     18,
		WeekStart:    time.Sunday,
		Clock24:      false,
		TickInterval: 2 * time.Second,
	}
	if err := s.SaveConfig(want); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("LoadConfig = %+v, want %+v", got, want)
	}
	if v, _ := s.GetSetting(KeyClockFormat); v != "12h" {
		t.Fatalf("clock_format = %q, want 12h", v)
	}
}

func TestLoadConfigMalformedFallsBack(t *testing.T) {
	s := newTestStore(t)
	s.SetSettings(map[string]string{
		KeyFastingHours: "lots",
		KeyWeekStart:    "friday",
		KeyClockFormat:  "sundial",
		KeyTickInterval: "-3",
	})
	cfg, err := s.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("LoadConfig = %+v, want defaults", cfg)
	}
}

func TestLoadConfigClampsHours(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting(KeyFastingHours, "20")
	cfg, err := s.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FastingHours != 16 {
		t.Fatalf("FastingHours = %v, want 16", cfg.FastingHours)
	}
}

func TestNormalizeSwapsBounds(t *testing.T) {
	cfg := Config{FastingHours: 15, MinHours: 18, MaxHours: 12}.Normalize()
	if cfg.MinHours != 12 || cfg.MaxHours != 18 {
		t.Fatalf("bounds = %v..%v, want 12..18", cfg.MinHours, cfg.MaxHours)
	}
	if cfg.FastingHours != 15 {
		t.Fatalf("FastingHours = %v, want 15", cfg.FastingHours)
	}
	if cfg.WeekStart != time.Monday || cfg.TickInterval != time.Second {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}
