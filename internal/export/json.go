package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/fastr/internal/schedule"
)

type jsonExport struct {
	ExportedAt     string   `json:"exported_at"`
	Pattern        string   `json:"pattern"`
	PatternID      string   `json:"pattern_id"`
	WeekStart      string   `json:"week_start"`
	EnabledDays    int      `json:"enabled_days"`
	AverageFasting float64  `json:"average_fasting_hours"`
	TotalFasting   float64  `json:"total_fasting_hours"`
	Days           []dayRow `json:"days"`
}

func ToJSON(p schedule.WeeklyPattern, weekStart time.Weekday, path string) error {
	data, err := MarshalJSON(p, weekStart)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// MarshalJSON renders p the same way ToJSON writes it.
func MarshalJSON(p schedule.WeeklyPattern, weekStart time.Weekday) ([]byte, error) {
	export := jsonExport{
		ExportedAt:     time.Now().UTC().Format(time.RFC3339),
		Pattern:        p.Name,
		PatternID:      p.ID.String(),
		WeekStart:      weekStart.String(),
		EnabledDays:    p.EnabledDays(),
		AverageFasting: round2(p.WeeklyAverageFastingHours()),
		TotalFasting:   round2(p.TotalFastingHours()),
		Days:           rows(p, weekStart),
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return data, nil
}
