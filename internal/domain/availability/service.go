package availability

import (
	"context"
	"time"
)

// Query carries the optional list filters. The zero value returns every
// declaration. Now is the reference instant for Period and AvailableNow;
// the zero value means the wall clock.
type Query struct {
	Period        PeriodKind
	OnSiteLodging *bool
	AvailableNow  bool
	Now           time.Time
}

// Service defines the interface for declaration business logic
type Service interface {
	// Declare validates and stores a declaration, replacing every
	// overlapping declaration of the same owner.
	Declare(ctx context.Context, d *Declaration) (*Declaration, error)

	// List retrieves the team view under the query's filters
	List(ctx context.Context, q Query) ([]*Entry, error)

	// Mine retrieves the caller's own declarations
	Mine(ctx context.Context, userID int64) ([]*Declaration, error)

	// Delete removes the caller's declaration by id
	Delete(ctx context.Context, userID, id int64) error
}
