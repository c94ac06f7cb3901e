package dailycheck

import (
	"context"
	"time"
)

// Feed is the daily stand-up view: today's checks plus the full roster so
// callers can show who has not reported yet.
type Feed struct {
	Date    time.Time `json:"date"`
	Checks  []*Entry  `json:"checks"`
	Members []Owner   `json:"members"`
}

// Service defines the interface for daily check business logic
type Service interface {
	// Submit records a user's check for today; a second submission the
	// same day is rejected.
	Submit(ctx context.Context, c *Check) (*Check, error)

	// TodayFeed retrieves the feed for the current day
	TodayFeed(ctx context.Context) (*Feed, error)
}
