package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sadopc/fastr/internal/schedule"
)

// ToCSV writes one row per day of p, ordered from weekStart.
func ToCSV(p schedule.WeeklyPattern, weekStart time.Weekday, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Day", "Start", "End", "Enabled", "Crosses Midnight", "Fasting (h)", "Eating (h)", "Tier"}); err != nil {
		return err
	}

	for _, r := range rows(p, weekStart) {
		row := []string{
			r.Day,
			r.Start,
			r.End,
			strconv.FormatBool(r.Enabled),
			strconv.FormatBool(r.CrossesNight),
			formatHours(r.FastingHours),
			formatHours(r.EatingHours),
			r.Tier,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
