package services

import (
	"context"
	"testing"

	"github.com/teamdispo/dispo/internal/domain/dailycheck"
	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/testutil"
)

func TestDailyCheckService_Submit(t *testing.T) {
	mockRepo := testutil.NewMockDailyCheckRepository()
	mockUsers := testutil.NewMockUserRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewDailyCheckService(mockRepo, mockUsers, log)

	tests := []struct {
		name    string
		check   *dailycheck.Check
		wantErr bool
	}{
		{
			name:    "valid check",
			check:   &dailycheck.Check{UserID: 1, Today: "Reviewing the planner", Mood: 4},
			wantErr: false,
		},
		{
			name:    "second submission same day rejected",
			check:   &dailycheck.Check{UserID: 1, Today: "Something else", Mood: 3},
			wantErr: true,
		},
		{
			name:    "another user same day allowed",
			check:   &dailycheck.Check{UserID: 2, Today: "Shipping the roster page", Mood: 5},
			wantErr: false,
		},
		{
			name:    "missing user",
			check:   &dailycheck.Check{Today: "Anonymous", Mood: 3},
			wantErr: true,
		},
		{
			name:    "empty today field",
			check:   &dailycheck.Check{UserID: 3, Mood: 3},
			wantErr: true,
		},
		{
			name:    "mood out of range",
			check:   &dailycheck.Check{UserID: 3, Today: "Fine", Mood: 6},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			c, err := service.Submit(ctx, tt.check)

			if (err != nil) != tt.wantErr {
				t.Errorf("Submit() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if c.ID == 0 {
					t.Error("Submit() did not assign an id")
				}
				if c.Date.IsZero() {
					t.Error("Submit() did not stamp the date")
				}
			}
		})
	}
}

func TestDailyCheckService_TodayFeed(t *testing.T) {
	mockRepo := testutil.NewMockDailyCheckRepository()
	mockUsers := testutil.NewMockUserRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := NewDailyCheckService(mockRepo, mockUsers, log)
	ctx := context.Background()

	users := NewUserService(mockUsers, 4, log)
	alice, err := users.Register(ctx, "alice", "secret123", "Alice", "Martin")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := users.Register(ctx, "bob", "secret123", "Bob", "Stone"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := service.Submit(ctx, &dailycheck.Check{
		UserID: alice.ID,
		Today:  "Planning the week",
		Mood:   4,
	}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	feed, err := service.TodayFeed(ctx)
	if err != nil {
		t.Fatalf("TodayFeed() error = %v", err)
	}

	if len(feed.Checks) != 1 {
		t.Errorf("TodayFeed() returned %d checks, want 1", len(feed.Checks))
	}
	if len(feed.Members) != 2 {
		t.Errorf("TodayFeed() returned %d members, want 2", len(feed.Members))
	}
	if feed.Date.IsZero() {
		t.Error("TodayFeed() date is zero")
	}
}
