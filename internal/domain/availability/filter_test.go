package availability

import (
	"testing"
	"time"
)

func TestDateRangeOverlaps(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.ParseInLocation(DateLayout, s, time.UTC)
		return d
	}
	r := func(start, end string) DateRange {
		return DateRange{Start: day(start), End: day(end)}
	}

	tests := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{name: "identical", a: r("2026-03-09", "2026-03-15"), b: r("2026-03-09", "2026-03-15"), want: true},
		{name: "contained", a: r("2026-03-09", "2026-03-15"), b: r("2026-03-10", "2026-03-11"), want: true},
		{name: "partial overlap", a: r("2026-03-09", "2026-03-11"), b: r("2026-03-11", "2026-03-15"), want: true},
		{name: "single shared day", a: r("2026-03-11", "2026-03-11"), b: r("2026-03-11", "2026-03-11"), want: true},
		{name: "adjacent disjoint", a: r("2026-03-09", "2026-03-10"), b: r("2026-03-11", "2026-03-12"), want: false},
		{name: "far apart", a: r("2026-03-01", "2026-03-02"), b: r("2026-04-01", "2026-04-02"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAvailableAt(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.ParseInLocation(DateLayout, s, time.UTC)
		return d
	}

	// Wednesday 10:30
	now := time.Date(2026, 3, 11, 10, 30, 0, 0, time.UTC)
	match := AvailableAt(now)

	tests := []struct {
		name string
		decl Declaration
		want bool
	}{
		{
			name: "covering day, open time range",
			decl: Declaration{
				StartDate: day("2026-03-09"), EndDate: day("2026-03-15"),
				Status: StatusAvailable, TimeRangeText: "09:00 - 17:00",
			},
			want: true,
		},
		{
			name: "partial status still matches",
			decl: Declaration{
				StartDate: day("2026-03-11"), EndDate: day("2026-03-11"),
				Status: StatusPartial, TimeRangeText: "10:00 - 11:00",
			},
			want: true,
		},
		{
			name: "unavailable never matches",
			decl: Declaration{
				StartDate: day("2026-03-11"), EndDate: day("2026-03-11"),
				Status: StatusUnavailable, TimeRangeText: "09:00 - 17:00",
			},
			want: false,
		},
		{
			name: "time range excludes the instant",
			decl: Declaration{
				StartDate: day("2026-03-11"), EndDate: day("2026-03-11"),
				Status: StatusAvailable, TimeRangeText: "14:00 - 17:00",
			},
			want: false,
		},
		{
			name: "absent time text fails closed",
			decl: Declaration{
				StartDate: day("2026-03-11"), EndDate: day("2026-03-11"),
				Status: StatusAvailable,
			},
			want: false,
		},
		{
			name: "unparseable time text fails closed",
			decl: Declaration{
				StartDate: day("2026-03-11"), EndDate: day("2026-03-11"),
				Status: StatusAvailable, TimeRangeText: "sometime after lunch",
			},
			want: false,
		},
		{
			name: "range does not cover today",
			decl: Declaration{
				StartDate: day("2026-03-12"), EndDate: day("2026-03-13"),
				Status: StatusAvailable, TimeRangeText: "09:00 - 17:00",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := match(&tt.decl); got != tt.want {
				t.Errorf("AvailableAt() = %v, want %v", got, tt.want)
			}
		})
	}
}
