package availability

import (
	"strconv"
	"strings"
	"time"
)

// TimeRange is a sub-day interval in decimal hours (10:30 -> 10.5).
// Both ends are inclusive.
type TimeRange struct {
	Start float64
	End   float64
}

// Contains reports whether the instant's time of day falls within the range
func (r TimeRange) Contains(t time.Time) bool {
	d := float64(t.Hour()) + float64(t.Minute())/60
	return r.Start <= d && d <= r.End
}

// ParseTimeRange parses free text of the canonical form "HH:MM - HH:MM"
// into a decimal-hour interval. The second return value is false when the
// text cannot be parsed; callers treat that as "no time restriction match"
// rather than an error, so bad text is never rejected, it just never
// matches the available-now filter.
func ParseTimeRange(s string) (TimeRange, bool) {
	parts := strings.Split(s, "-")
	if len(parts) < 2 {
		return TimeRange{}, false
	}

	start, ok := parseClock(parts[0])
	if !ok {
		return TimeRange{}, false
	}
	end, ok := parseClock(parts[1])
	if !ok {
		return TimeRange{}, false
	}

	return TimeRange{Start: start, End: end}, true
}

// parseClock converts one "HH:MM" token to decimal hours. A missing or
// unparseable minute part counts as :00; an unparseable hour fails.
func parseClock(s string) (float64, bool) {
	fields := strings.Split(strings.TrimSpace(s), ":")

	hour, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, false
	}

	minute := 0
	if len(fields) > 1 {
		if m, err := strconv.Atoi(strings.TrimSpace(fields[1])); err == nil {
			minute = m
		}
	}

	return float64(hour) + float64(minute)/60, true
}
