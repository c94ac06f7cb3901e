package user

import "context"

// Service defines the interface for user business logic
type Service interface {
	// Authenticate verifies a username/password pair and returns the user
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// Register creates a new user with a hashed password
	Register(ctx context.Context, username, password, firstName, lastName string) (*User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// List retrieves the full roster
	List(ctx context.Context) ([]*User, error)
}
