package availability

import (
	"testing"
	"time"
)

func TestWindow(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.ParseInLocation(DateLayout, s, time.UTC)
		if err != nil {
			t.Fatalf("bad date %q: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name      string
		kind      PeriodKind
		ref       string
		wantStart string
		wantEnd   string
	}{
		{name: "day", kind: PeriodDay, ref: "2026-03-11", wantStart: "2026-03-11", wantEnd: "2026-03-11"},
		{name: "week from wednesday", kind: PeriodWeek, ref: "2026-03-11", wantStart: "2026-03-09", wantEnd: "2026-03-15"},
		{name: "week from monday", kind: PeriodWeek, ref: "2026-03-09", wantStart: "2026-03-09", wantEnd: "2026-03-15"},
		{name: "week from sunday", kind: PeriodWeek, ref: "2026-03-15", wantStart: "2026-03-09", wantEnd: "2026-03-15"},
		{name: "month", kind: PeriodMonth, ref: "2026-03-11", wantStart: "2026-03-01", wantEnd: "2026-03-31"},
		{name: "february leap year", kind: PeriodMonth, ref: "2028-02-10", wantStart: "2028-02-01", wantEnd: "2028-02-29"},
		{name: "week across month boundary", kind: PeriodWeek, ref: "2026-04-01", wantStart: "2026-03-30", wantEnd: "2026-04-05"},
		{name: "unknown kind falls back to day", kind: "other", ref: "2026-03-11", wantStart: "2026-03-11", wantEnd: "2026-03-11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(tt.kind, day(tt.ref))

			if !got.Start.Equal(day(tt.wantStart)) || !got.End.Equal(day(tt.wantEnd)) {
				t.Errorf("Window(%s, %s) = [%s, %s], want [%s, %s]",
					tt.kind, tt.ref,
					got.Start.Format(DateLayout), got.End.Format(DateLayout),
					tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestWindowIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2026, 3, 11, 23, 59, 0, 0, time.UTC)
	got := Window(PeriodDay, late)

	want := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if !got.Start.Equal(want) || !got.End.Equal(want) {
		t.Errorf("Window(day, 23:59) = [%v, %v], want the calendar day", got.Start, got.End)
	}
}
