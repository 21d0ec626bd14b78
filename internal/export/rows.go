package export

import (
	"math"
	"strconv"
	"time"

	"github.com/sadopc/fastr/internal/schedule"
)

type dayRow struct {
	Day          string  `json:"day"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	Enabled      bool    `json:"enabled"`
	CrossesNight bool    `json:"crosses_midnight"`
	FastingHours float64 `json:"fasting_hours"`
	EatingHours  float64 `json:"eating_hours"`
	Tier         string  `json:"tier"`
}

// rows lists the pattern's days in week order starting at weekStart.
// Days absent from the pattern are skipped.
func rows(p schedule.WeeklyPattern, weekStart time.Weekday) []dayRow {
	var out []dayRow
	for _, d := range schedule.Week(weekStart) {
		s, ok := p.Schedule(d)
		if !ok {
			continue
		}
		out = append(out, dayRow{
			Day:          d.String(),
			Start:        s.Start.String(),
			End:          s.End.String(),
			Enabled:      s.Enabled,
			CrossesNight: s.CrossesMidnight(),
			FastingHours: round2(s.FastingDurationHours()),
			EatingHours:  round2(s.EatingDurationHours()),
			Tier:         s.Tier().String(),
		})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
