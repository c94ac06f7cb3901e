package availability

import (
	"context"
	"time"
)

// Repository defines the interface for declaration data access
type Repository interface {
	// Replace removes every declaration of the same owner that overlaps the
	// candidate's date range and inserts the candidate, as one atomic unit.
	// Concurrent readers never observe the gap between delete and insert.
	Replace(ctx context.Context, d *Declaration) error

	// List retrieves declarations matching the filter, joined with their
	// owner, ordered by start date ascending.
	List(ctx context.Context, f Filter) ([]*Entry, error)

	// ListByOwner retrieves one owner's declarations ordered by start date
	ListByOwner(ctx context.Context, userID int64) ([]*Declaration, error)

	// Delete removes a declaration only when it exists and belongs to
	// userID; both a missing id and a foreign owner report not-found.
	Delete(ctx context.Context, userID, id int64) error

	// PruneEndedBefore removes declarations whose end date precedes the
	// cutoff day and returns how many were removed.
	PruneEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
