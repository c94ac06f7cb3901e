package worker

import (
	"context"
	"testing"
	"time"

	"github.com/teamdispo/dispo/internal/domain/availability"
	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/testutil"
)

func TestRetention_PrunesExpiredDeclarations(t *testing.T) {
	mockRepo := testutil.NewMockAvailabilityRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	ctx := context.Background()

	day := func(s string) time.Time {
		d, _ := time.ParseInLocation(availability.DateLayout, s, time.UTC)
		return d
	}

	ancient := &availability.Declaration{
		UserID: 1, PeriodKind: availability.PeriodWeek,
		StartDate: day("2020-01-06"), EndDate: day("2020-01-12"),
		Status: availability.StatusAvailable,
	}
	today := availability.Day(time.Now().UTC())
	current := &availability.Declaration{
		UserID: 1, PeriodKind: availability.PeriodDay,
		StartDate: today, EndDate: today,
		Status: availability.StatusAvailable,
	}
	for _, d := range []*availability.Declaration{ancient, current} {
		if err := mockRepo.Replace(ctx, d); err != nil {
			t.Fatalf("Replace() error = %v", err)
		}
	}

	worker := NewRetention(mockRepo, "0 3 * * *", 365, log)

	runCtx, cancel := context.WithCancel(ctx)
	if err := worker.Start(runCtx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	cancel()

	remaining, err := mockRepo.ListByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("ListByOwner() error = %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != current.ID {
		t.Errorf("retention kept %d declarations, want only the current one", len(remaining))
	}
}

func TestRetention_RejectsBadSchedule(t *testing.T) {
	mockRepo := testutil.NewMockAvailabilityRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	worker := NewRetention(mockRepo, "not a schedule", 365, log)
	if err := worker.Start(context.Background()); err == nil {
		t.Error("Start() with a bad schedule succeeded, want error")
	}
}
