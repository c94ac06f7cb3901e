package services

import (
	"context"
	"testing"
	"time"

	"github.com/teamdispo/dispo/internal/domain/availability"
	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/testutil"
)

func date(s string) time.Time {
	d, err := time.ParseInLocation(availability.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAvailabilityService_Declare(t *testing.T) {
	mockRepo := testutil.NewMockAvailabilityRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewAvailabilityService(mockRepo, log)

	tests := []struct {
		name    string
		decl    *availability.Declaration
		wantErr bool
	}{
		{
			name: "valid day declaration",
			decl: &availability.Declaration{
				UserID:     1,
				PeriodKind: availability.PeriodDay,
				StartDate:  date("2026-03-02"),
				EndDate:    date("2026-03-02"),
				Status:     availability.StatusAvailable,
			},
			wantErr: false,
		},
		{
			name: "valid week with time range",
			decl: &availability.Declaration{
				UserID:        1,
				PeriodKind:    availability.PeriodWeek,
				StartDate:     date("2026-03-09"),
				EndDate:       date("2026-03-15"),
				Status:        availability.StatusPartial,
				TimeRangeText: "09:00 - 12:30",
			},
			wantErr: false,
		},
		{
			name: "missing user",
			decl: &availability.Declaration{
				PeriodKind: availability.PeriodDay,
				StartDate:  date("2026-03-02"),
				EndDate:    date("2026-03-02"),
				Status:     availability.StatusAvailable,
			},
			wantErr: true,
		},
		{
			name: "unknown period kind",
			decl: &availability.Declaration{
				UserID:     1,
				PeriodKind: "fortnight",
				StartDate:  date("2026-03-02"),
				EndDate:    date("2026-03-02"),
				Status:     availability.StatusAvailable,
			},
			wantErr: true,
		},
		{
			name: "unknown status",
			decl: &availability.Declaration{
				UserID:     1,
				PeriodKind: availability.PeriodDay,
				StartDate:  date("2026-03-02"),
				EndDate:    date("2026-03-02"),
				Status:     "busy",
			},
			wantErr: true,
		},
		{
			name: "end before start",
			decl: &availability.Declaration{
				UserID:     1,
				PeriodKind: availability.PeriodWeek,
				StartDate:  date("2026-03-09"),
				EndDate:    date("2026-03-08"),
				Status:     availability.StatusAvailable,
			},
			wantErr: true,
		},
		{
			name: "missing dates",
			decl: &availability.Declaration{
				UserID:     1,
				PeriodKind: availability.PeriodDay,
				Status:     availability.StatusAvailable,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			d, err := service.Declare(ctx, tt.decl)

			if (err != nil) != tt.wantErr {
				t.Errorf("Declare() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.ID == 0 {
				t.Error("Declare() did not assign an id")
			}
		})
	}
}

func TestAvailabilityService_DeclareReplacesOverlaps(t *testing.T) {
	mockRepo := testutil.NewMockAvailabilityRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewAvailabilityService(mockRepo, log)
	ctx := context.Background()

	declare := func(userID int64, start, end string, status availability.Status) *availability.Declaration {
		t.Helper()
		d, err := service.Declare(ctx, &availability.Declaration{
			UserID:     userID,
			PeriodKind: availability.PeriodWeek,
			StartDate:  date(start),
			EndDate:    date(end),
			Status:     status,
		})
		if err != nil {
			t.Fatalf("Declare(%s..%s) error = %v", start, end, err)
		}
		return d
	}

	declare(1, "2026-03-02", "2026-03-08", availability.StatusAvailable)
	declare(1, "2026-03-10", "2026-03-12", availability.StatusAvailable)
	other := declare(2, "2026-03-02", "2026-03-08", availability.StatusAvailable)

	// Overlaps the first two ranges of user 1 but not user 2's
	winner := declare(1, "2026-03-06", "2026-03-11", availability.StatusUnavailable)

	mine, err := service.Mine(ctx, 1)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("Mine() returned %d declarations, want 1", len(mine))
	}
	if mine[0].ID != winner.ID {
		t.Errorf("Mine() kept id %d, want last writer %d", mine[0].ID, winner.ID)
	}

	theirs, err := service.Mine(ctx, 2)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}
	if len(theirs) != 1 || theirs[0].ID != other.ID {
		t.Errorf("user 2's declaration was disturbed: %+v", theirs)
	}

	// Sharing a single boundary day still counts as overlap
	declare(1, "2026-03-11", "2026-03-13", availability.StatusAvailable)
	mine, _ = service.Mine(ctx, 1)
	if len(mine) != 1 {
		t.Fatalf("adjacent overlap at shared day: got %d declarations, want 1", len(mine))
	}
	declare(1, "2026-03-14", "2026-03-15", availability.StatusAvailable)
	mine, _ = service.Mine(ctx, 1)
	if len(mine) != 2 {
		t.Errorf("disjoint ranges: got %d declarations, want 2", len(mine))
	}
}

func TestAvailabilityService_ListPeriodWindow(t *testing.T) {
	mockRepo := testutil.NewMockAvailabilityRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewAvailabilityService(mockRepo, log)
	ctx := context.Background()

	// Wednesday 2026-03-11; its ISO week runs 03-09 through 03-15
	now := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)

	seed := []struct {
		userID     int64
		start, end string
	}{
		{1, "2026-03-11", "2026-03-11"}, // inside day, week, month
		{2, "2026-03-09", "2026-03-15"}, // whole week
		{3, "2026-03-14", "2026-04-02"}, // straddles week end and month end
		{4, "2026-02-20", "2026-03-01"}, // March 1st only
		{5, "2026-04-01", "2026-04-03"}, // outside March
	}
	for _, s := range seed {
		if _, err := service.Declare(ctx, &availability.Declaration{
			UserID:     s.userID,
			PeriodKind: availability.PeriodWeek,
			StartDate:  date(s.start),
			EndDate:    date(s.end),
			Status:     availability.StatusAvailable,
		}); err != nil {
			t.Fatalf("Declare() error = %v", err)
		}
	}

	tests := []struct {
		name      string
		period    availability.PeriodKind
		wantUsers []int64
		wantErr   bool
	}{
		{name: "day window", period: availability.PeriodDay, wantUsers: []int64{2, 1}},
		{name: "week window", period: availability.PeriodWeek, wantUsers: []int64{2, 1, 3}},
		{name: "month window", period: availability.PeriodMonth, wantUsers: []int64{4, 2, 1, 3}},
		{name: "no period returns everything", period: "", wantUsers: []int64{4, 2, 1, 3, 5}},
		{name: "unknown period rejected", period: "quarter", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := service.List(ctx, availability.Query{Period: tt.period, Now: now})

			if (err != nil) != tt.wantErr {
				t.Errorf("List() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if len(entries) != len(tt.wantUsers) {
				t.Fatalf("List() returned %d entries, want %d", len(entries), len(tt.wantUsers))
			}
			for i, want := range tt.wantUsers {
				if entries[i].UserID != want {
					t.Errorf("List()[%d].UserID = %d, want %d", i, entries[i].UserID, want)
				}
			}
		})
	}
}

func TestAvailabilityService_ListLodgingFilter(t *testing.T) {
	mockRepo := testutil.NewMockAvailabilityRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewAvailabilityService(mockRepo, log)
	ctx := context.Background()

	for i, lodging := range []bool{true, false, true} {
		if _, err := service.Declare(ctx, &availability.Declaration{
			UserID:        int64(i + 1),
			PeriodKind:    availability.PeriodDay,
			StartDate:     date("2026-03-02"),
			EndDate:       date("2026-03-02"),
			Status:        availability.StatusAvailable,
			OnSiteLodging: lodging,
		}); err != nil {
			t.Fatalf("Declare() error = %v", err)
		}
	}

	wantLodging := true
	entries, err := service.List(ctx, availability.Query{OnSiteLodging: &wantLodging})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List(lodging=true) returned %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if !e.OnSiteLodging {
			t.Errorf("List(lodging=true) returned entry without lodging: user %d", e.UserID)
		}
	}

	wantLodging = false
	entries, err = service.List(ctx, availability.Query{OnSiteLodging: &wantLodging})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != 2 {
		t.Errorf("List(lodging=false) = %+v, want only user 2", entries)
	}
}

func TestAvailabilityService_ListAvailableNow(t *testing.T) {
	mockRepo := testutil.NewMockAvailabilityRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewAvailabilityService(mockRepo, log)
	ctx := context.Background()

	now := time.Date(2026, 3, 11, 10, 30, 0, 0, time.UTC)

	seed := []struct {
		userID    int64
		status    availability.Status
		timeText  string
		start     string
		end       string
		wantMatch bool
	}{
		{1, availability.StatusAvailable, "09:00 - 17:00", "2026-03-09", "2026-03-15", true},
		{2, availability.StatusPartial, "10:30 - 12:00", "2026-03-11", "2026-03-11", true}, // boundary is inclusive
		{3, availability.StatusAvailable, "11:00 - 12:00", "2026-03-11", "2026-03-11", false},
		{4, availability.StatusUnavailable, "09:00 - 17:00", "2026-03-11", "2026-03-11", false},
		{5, availability.StatusAvailable, "", "2026-03-11", "2026-03-11", false},            // no time text fails closed
		{6, availability.StatusAvailable, "whenever", "2026-03-11", "2026-03-11", false},    // unparseable fails closed
		{7, availability.StatusAvailable, "09:00 - 17:00", "2026-03-12", "2026-03-14", false}, // wrong day
	}
	for _, s := range seed {
		if _, err := service.Declare(ctx, &availability.Declaration{
			UserID:        s.userID,
			PeriodKind:    availability.PeriodDay,
			StartDate:     date(s.start),
			EndDate:       date(s.end),
			Status:        s.status,
			TimeRangeText: s.timeText,
		}); err != nil {
			t.Fatalf("Declare() error = %v", err)
		}
	}

	entries, err := service.List(ctx, availability.Query{AvailableNow: true, Now: now})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	got := make(map[int64]bool)
	for _, e := range entries {
		got[e.UserID] = true
	}
	for _, s := range seed {
		if got[s.userID] != s.wantMatch {
			t.Errorf("user %d: available-now match = %v, want %v", s.userID, got[s.userID], s.wantMatch)
		}
	}
}

func TestAvailabilityService_Delete(t *testing.T) {
	mockRepo := testutil.NewMockAvailabilityRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewAvailabilityService(mockRepo, log)
	ctx := context.Background()

	mine, err := service.Declare(ctx, &availability.Declaration{
		UserID:     1,
		PeriodKind: availability.PeriodDay,
		StartDate:  date("2026-03-02"),
		EndDate:    date("2026-03-02"),
		Status:     availability.StatusAvailable,
	})
	if err != nil {
		t.Fatalf("Declare() error = %v", err)
	}

	tests := []struct {
		name    string
		userID  int64
		id      int64
		wantErr bool
	}{
		{name: "foreign owner looks like not found", userID: 2, id: mine.ID, wantErr: true},
		{name: "owner deletes own declaration", userID: 1, id: mine.ID, wantErr: false},
		{name: "already deleted", userID: 1, id: mine.ID, wantErr: true},
		{name: "unknown id", userID: 1, id: 999, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Delete(ctx, tt.userID, tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Delete() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
