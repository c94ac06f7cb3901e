package availability

import "time"

// Window computes the inclusive calendar window for a period keyword and a
// reference date. Weeks run Monday through Sunday. List queries intersect
// the window against declarations with range overlap, not containment, so a
// multi-day declaration surfaces in every window it touches.
func Window(kind PeriodKind, ref time.Time) DateRange {
	day := Day(ref)

	switch kind {
	case PeriodWeek:
		offset := (int(day.Weekday()) + 6) % 7 // days since Monday
		start := day.AddDate(0, 0, -offset)
		return DateRange{Start: start, End: start.AddDate(0, 0, 6)}
	case PeriodMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
	default: // PeriodDay
		return DateRange{Start: day, End: day}
	}
}
