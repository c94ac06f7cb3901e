package dailycheck

import (
	"context"
	"time"
)

// Repository defines the interface for daily check data access
type Repository interface {
	// Create inserts a new check
	Create(ctx context.Context, c *Check) error

	// GetForDate retrieves a user's check for a calendar day, if any
	GetForDate(ctx context.Context, userID int64, date time.Time) (*Check, error)

	// ListByDate retrieves all checks for a calendar day joined with their
	// owner, ordered by submission time.
	ListByDate(ctx context.Context, date time.Time) ([]*Entry, error)
}
