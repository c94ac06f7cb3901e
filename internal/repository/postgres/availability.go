package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/teamdispo/dispo/internal/domain/availability"
	"github.com/teamdispo/dispo/internal/pkg/errors"
)

// AvailabilityRepository implements availability.Repository
type AvailabilityRepository struct {
	db *sql.DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *sql.DB) availability.Repository {
	return &AvailabilityRepository{db: db}
}

// Replace deletes every overlapping declaration of the same owner and
// inserts the candidate within one transaction. Readers never observe the
// intermediate state between the delete and the insert.
func (r *AvailabilityRepository) Replace(ctx context.Context, d *availability.Declaration) error {
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("Failed to begin transaction", err)
	}
	defer tx.Rollback()

	// Inclusive interval-overlap test: existing.start <= new.end AND
	// existing.end >= new.start. Matches are superseded wholesale; no
	// splitting of partially covered ranges.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM declarations
		WHERE user_id = ? AND start_date <= ? AND end_date >= ?
	`,
		d.UserID,
		d.EndDate.Format(availability.DateLayout),
		d.StartDate.Format(availability.DateLayout),
	)
	if err != nil {
		return errors.DatabaseError("Failed to remove overlapping declarations", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO declarations
			(user_id, period_kind, start_date, end_date, status, time_range_text, on_site_lodging, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		d.UserID,
		string(d.PeriodKind),
		d.StartDate.Format(availability.DateLayout),
		d.EndDate.Format(availability.DateLayout),
		string(d.Status),
		d.TimeRangeText,
		d.OnSiteLodging,
		now.Unix(),
		now.Unix(),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create declaration", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.DatabaseError("Failed to get declaration ID", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.DatabaseError("Failed to commit declaration", err)
	}

	d.ID = id
	return nil
}

// List retrieves declarations matching the filter joined with their owner,
// ordered by start date ascending.
func (r *AvailabilityRepository) List(ctx context.Context, f availability.Filter) ([]*availability.Entry, error) {
	where := []string{"1 = 1"}
	var args []interface{}

	if f.Window != nil {
		where = append(where, "d.start_date <= ? AND d.end_date >= ?")
		args = append(args,
			f.Window.End.Format(availability.DateLayout),
			f.Window.Start.Format(availability.DateLayout),
		)
	}
	if f.CoversDate != nil {
		day := f.CoversDate.Format(availability.DateLayout)
		where = append(where, "d.start_date <= ? AND d.end_date >= ?")
		args = append(args, day, day)
	}
	if f.OnSiteLodging != nil {
		where = append(where, "d.on_site_lodging = ?")
		args = append(args, *f.OnSiteLodging)
	}
	if f.ExcludeStatus != "" {
		where = append(where, "d.status <> ?")
		args = append(args, string(f.ExcludeStatus))
	}

	query := fmt.Sprintf(`
		SELECT d.id, d.user_id, d.period_kind, d.start_date, d.end_date,
			d.status, d.time_range_text, d.on_site_lodging, d.created_at, d.updated_at,
			u.id, u.username, u.first_name, u.last_name
		FROM declarations d
		JOIN users u ON u.id = d.user_id
		WHERE %s
		ORDER BY d.start_date, d.id
	`, strings.Join(where, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list declarations", err)
	}
	defer rows.Close()

	var entries []*availability.Entry
	for rows.Next() {
		var e availability.Entry
		var startDate, endDate, firstName, lastName string
		var createdAt, updatedAt int64

		err := rows.Scan(
			&e.ID, &e.UserID, &e.PeriodKind, &startDate, &endDate,
			&e.Status, &e.TimeRangeText, &e.OnSiteLodging, &createdAt, &updatedAt,
			&e.Owner.ID, &e.Owner.Username, &firstName, &lastName,
		)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan declaration", err)
		}

		if e.StartDate, err = parseDate(startDate); err != nil {
			return nil, errors.DatabaseError("Failed to parse start date", err)
		}
		if e.EndDate, err = parseDate(endDate); err != nil {
			return nil, errors.DatabaseError("Failed to parse end date", err)
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		e.UpdatedAt = time.Unix(updatedAt, 0)
		e.Owner.DisplayName = strings.TrimSpace(firstName + " " + lastName)

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate declarations", err)
	}

	return entries, nil
}

// ListByOwner retrieves one owner's declarations ordered by start date
func (r *AvailabilityRepository) ListByOwner(ctx context.Context, userID int64) ([]*availability.Declaration, error) {
	query := `
		SELECT id, user_id, period_kind, start_date, end_date,
			status, time_range_text, on_site_lodging, created_at, updated_at
		FROM declarations
		WHERE user_id = ?
		ORDER BY start_date, id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list declarations", err)
	}
	defer rows.Close()

	var decls []*availability.Declaration
	for rows.Next() {
		var d availability.Declaration
		var startDate, endDate string
		var createdAt, updatedAt int64

		err := rows.Scan(
			&d.ID, &d.UserID, &d.PeriodKind, &startDate, &endDate,
			&d.Status, &d.TimeRangeText, &d.OnSiteLodging, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan declaration", err)
		}

		if d.StartDate, err = parseDate(startDate); err != nil {
			return nil, errors.DatabaseError("Failed to parse start date", err)
		}
		if d.EndDate, err = parseDate(endDate); err != nil {
			return nil, errors.DatabaseError("Failed to parse end date", err)
		}
		d.CreatedAt = time.Unix(createdAt, 0)
		d.UpdatedAt = time.Unix(updatedAt, 0)

		decls = append(decls, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate declarations", err)
	}

	return decls, nil
}

// Delete removes a declaration when it exists and belongs to userID. A
// missing id and a foreign owner both surface as not-found.
func (r *AvailabilityRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM declarations WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return errors.DatabaseError("Failed to delete declaration", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}

	if rows == 0 {
		return errors.NotFound("Declaration")
	}

	return nil
}

// PruneEndedBefore removes declarations whose end date precedes the cutoff day
func (r *AvailabilityRepository) PruneEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM declarations WHERE end_date < ?`,
		cutoff.Format(availability.DateLayout))
	if err != nil {
		return 0, errors.DatabaseError("Failed to prune declarations", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.DatabaseError("Failed to get affected rows", err)
	}

	return rows, nil
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(availability.DateLayout, s, time.UTC)
}
