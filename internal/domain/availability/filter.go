package availability

import "time"

// Predicate is one independent list-query condition
type Predicate func(*Declaration) bool

// And combines predicates into a conjunction
func And(preds ...Predicate) Predicate {
	return func(d *Declaration) bool {
		for _, p := range preds {
			if !p(d) {
				return false
			}
		}
		return true
	}
}

// CoversDate matches declarations whose date range contains the given day
func CoversDate(day time.Time) Predicate {
	return func(d *Declaration) bool {
		return d.Range().Contains(day)
	}
}

// StatusNot matches declarations whose status differs from s
func StatusNot(s Status) Predicate {
	return func(d *Declaration) bool {
		return d.Status != s
	}
}

// WithinTimeRange matches declarations whose parsed time-of-day range
// contains the instant. Declarations with absent or unparseable time text
// never match: the filter fails closed.
func WithinTimeRange(at time.Time) Predicate {
	return func(d *Declaration) bool {
		tr, ok := ParseTimeRange(d.TimeRangeText)
		if !ok {
			return false
		}
		return tr.Contains(at)
	}
}

// AvailableAt is the "available now" filter: the declaration covers the
// instant's calendar day, is not unavailable, and its time range contains
// the instant.
func AvailableAt(at time.Time) Predicate {
	return And(
		CoversDate(Day(at)),
		StatusNot(StatusUnavailable),
		WithinTimeRange(at),
	)
}
