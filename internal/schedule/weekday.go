package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Week lists the seven days starting at start.
func Week(start time.Weekday) []time.Weekday {
	days := make([]time.Weekday, 7)
	for i := range days {
		days[i] = time.Weekday((int(start) + i) % 7)
	}
	return days
}

// Today returns the host-local weekday of now.
func Today(now time.Time) time.Weekday {
	return now.Local().Weekday()
}

var weekdays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// ParseWeekday accepts full English day names or their three-letter prefix.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 3 {
		for _, d := range weekdays {
			name := strings.ToLower(d.String())
			if s == name || s == name[:3] {
				return d, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

func ShortName(d time.Weekday) string {
	return d.String()[:3]
}
