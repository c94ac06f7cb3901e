package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/teamdispo/dispo/internal/domain/availability"
	"github.com/teamdispo/dispo/internal/domain/dailycheck"
	"github.com/teamdispo/dispo/internal/pkg/errors"
)

// DailyCheckRepository implements dailycheck.Repository
type DailyCheckRepository struct {
	db *sql.DB
}

// NewDailyCheckRepository creates a new daily check repository
func NewDailyCheckRepository(db *sql.DB) dailycheck.Repository {
	return &DailyCheckRepository{db: db}
}

// Create inserts a new check
func (r *DailyCheckRepository) Create(ctx context.Context, c *dailycheck.Check) error {
	now := time.Now()
	c.CreatedAt = now

	query := `
		INSERT INTO daily_checks (user_id, check_date, yesterday, today, blockers, mood, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		c.UserID, c.Date.Format(availability.DateLayout),
		c.Yesterday, c.Today, c.Blockers, c.Mood, now.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create daily check", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get daily check ID", err)
	}

	c.ID = id
	return nil
}

// GetForDate retrieves a user's check for a calendar day
func (r *DailyCheckRepository) GetForDate(ctx context.Context, userID int64, date time.Time) (*dailycheck.Check, error) {
	query := `
		SELECT id, user_id, check_date, yesterday, today, blockers, mood, created_at
		FROM daily_checks
		WHERE user_id = ? AND check_date = ?
	`

	var c dailycheck.Check
	var checkDate string
	var createdAt int64

	err := r.db.QueryRowContext(ctx, query, userID, date.Format(availability.DateLayout)).Scan(
		&c.ID, &c.UserID, &checkDate, &c.Yesterday, &c.Today, &c.Blockers, &c.Mood, &createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Daily check")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get daily check", err)
	}

	if c.Date, err = parseDate(checkDate); err != nil {
		return nil, errors.DatabaseError("Failed to parse check date", err)
	}
	c.CreatedAt = time.Unix(createdAt, 0)

	return &c, nil
}

// ListByDate retrieves all checks for a calendar day joined with their
// owner, ordered by submission time.
func (r *DailyCheckRepository) ListByDate(ctx context.Context, date time.Time) ([]*dailycheck.Entry, error) {
	query := `
		SELECT c.id, c.user_id, c.check_date, c.yesterday, c.today, c.blockers, c.mood, c.created_at,
			u.id, u.username, u.first_name, u.last_name
		FROM daily_checks c
		JOIN users u ON u.id = c.user_id
		WHERE c.check_date = ?
		ORDER BY c.created_at, c.id
	`

	rows, err := r.db.QueryContext(ctx, query, date.Format(availability.DateLayout))
	if err != nil {
		return nil, errors.DatabaseError("Failed to list daily checks", err)
	}
	defer rows.Close()

	var entries []*dailycheck.Entry
	for rows.Next() {
		var e dailycheck.Entry
		var checkDate, firstName, lastName string
		var createdAt int64

		err := rows.Scan(
			&e.ID, &e.UserID, &checkDate, &e.Yesterday, &e.Today, &e.Blockers, &e.Mood, &createdAt,
			&e.Owner.ID, &e.Owner.Username, &firstName, &lastName,
		)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan daily check", err)
		}

		if e.Date, err = parseDate(checkDate); err != nil {
			return nil, errors.DatabaseError("Failed to parse check date", err)
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		e.Owner.DisplayName = strings.TrimSpace(firstName + " " + lastName)

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate daily checks", err)
	}

	return entries, nil
}
