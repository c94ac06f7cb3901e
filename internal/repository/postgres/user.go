package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/teamdispo/dispo/internal/domain/user"
	"github.com/teamdispo/dispo/internal/pkg/errors"
)

// UserRepository implements user.Repository
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) user.Repository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	query := `
		INSERT INTO users (username, first_name, last_name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		u.Username, u.FirstName, u.LastName, u.PasswordHash, now.Unix(), now.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get user ID", err)
	}

	u.ID = id
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `
		SELECT id, username, first_name, last_name, password_hash, created_at, updated_at
		FROM users WHERE id = ?
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `
		SELECT id, username, first_name, last_name, password_hash, created_at, updated_at
		FROM users WHERE username = ?
	`

	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

// List retrieves all users ordered by last name
func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	query := `
		SELECT id, username, first_name, last_name, password_hash, created_at, updated_at
		FROM users
		ORDER BY last_name, first_name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list users", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var u user.User
		var createdAt, updatedAt int64

		err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.PasswordHash, &createdAt, &updatedAt)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan user", err)
		}

		u.CreatedAt = time.Unix(createdAt, 0)
		u.UpdatedAt = time.Unix(updatedAt, 0)
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate users", err)
	}

	return users, nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*user.User, error) {
	var u user.User
	var createdAt, updatedAt int64

	err := row.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.PasswordHash, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("User")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get user", err)
	}

	u.CreatedAt = time.Unix(createdAt, 0)
	u.UpdatedAt = time.Unix(updatedAt, 0)

	return &u, nil
}
