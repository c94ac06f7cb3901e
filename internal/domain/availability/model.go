package availability

import "time"

// Status of a declaration
type Status string

const (
	StatusAvailable   Status = "available"
	StatusPartial     Status = "partial"
	StatusUnavailable Status = "unavailable"
)

// PeriodKind records the granularity the user picked when declaring.
// It pre-populates the UI form and is never enforced against the stored range.
type PeriodKind string

const (
	PeriodDay   PeriodKind = "day"
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
)

// DateLayout is the wire and storage format for calendar dates
const DateLayout = "2006-01-02"

// Day truncates t to its calendar day in UTC
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateRange is an inclusive range of calendar days
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two ranges share at least one calendar day
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.Start.After(o.End) && !r.End.Before(o.Start)
}

// Contains reports whether day d falls within the range, inclusive both ends
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Declaration is a time-bounded availability statement by one user.
// Declarations are never updated in place: a new declaration replaces
// every prior declaration of the same owner it overlaps with.
type Declaration struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	PeriodKind    PeriodKind `json:"periodKind"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	Status        Status     `json:"status"`
	TimeRangeText string     `json:"timeRangeText,omitempty"` // free text, canonical "HH:MM - HH:MM"; empty means all day
	OnSiteLodging bool       `json:"onSiteLodging"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Range returns the declaration's inclusive date range
func (d *Declaration) Range() DateRange {
	return DateRange{Start: d.StartDate, End: d.EndDate}
}

// Owner is the minimal user identity joined onto list results
type Owner struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// Entry is a declaration joined with its owner, as returned by list queries
type Entry struct {
	Declaration
	Owner Owner `json:"user"`
}

// Filter is the store-level predicate set for list queries.
// Nil members are not applied.
type Filter struct {
	Window        *DateRange // declaration overlaps the window
	CoversDate    *time.Time // declaration's range contains the day
	OnSiteLodging *bool      // exact match
	ExcludeStatus Status     // status differs, empty means not applied
}
