package services

import (
	"context"
	"time"

	"github.com/teamdispo/dispo/internal/domain/availability"
	"github.com/teamdispo/dispo/internal/pkg/errors"
	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/pkg/metrics"
)

// AvailabilityService implements availability.Service
type AvailabilityService struct {
	repo   availability.Repository
	logger *logger.Logger
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(repo availability.Repository, log *logger.Logger) availability.Service {
	return &AvailabilityService{
		repo:   repo,
		logger: log,
	}
}

var validStatuses = map[availability.Status]bool{
	availability.StatusAvailable:   true,
	availability.StatusPartial:     true,
	availability.StatusUnavailable: true,
}

var validPeriods = map[availability.PeriodKind]bool{
	availability.PeriodDay:   true,
	availability.PeriodWeek:  true,
	availability.PeriodMonth: true,
}

// Declare validates and stores a declaration. Every prior declaration of
// the same owner overlapping the new date range is removed in the same
// transaction, so the store never holds two overlapping declarations for
// one user.
func (s *AvailabilityService) Declare(ctx context.Context, d *availability.Declaration) (*availability.Declaration, error) {
	if d.UserID == 0 {
		return nil, errors.Unauthorized("Authentication required")
	}
	if !validPeriods[d.PeriodKind] {
		return nil, errors.BadRequest("Invalid period kind")
	}
	if !validStatuses[d.Status] {
		return nil, errors.BadRequest("Invalid status")
	}
	if d.StartDate.IsZero() || d.EndDate.IsZero() {
		return nil, errors.BadRequest("Start and end dates are required")
	}

	d.StartDate = availability.Day(d.StartDate)
	d.EndDate = availability.Day(d.EndDate)

	if d.EndDate.Before(d.StartDate) {
		return nil, errors.BadRequest("End date must not precede start date")
	}

	if err := s.repo.Replace(ctx, d); err != nil {
		s.logger.ErrorWithErr(err, "Failed to store declaration")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"declaration_id": d.ID,
		"user_id":        d.UserID,
		"start_date":     d.StartDate.Format(availability.DateLayout),
		"end_date":       d.EndDate.Format(availability.DateLayout),
		"status":         d.Status,
	}).Info("Declaration stored")

	metrics.RecordDeclarationStored(string(d.Status), string(d.PeriodKind))

	return d, nil
}

// List retrieves the team view under the query's filters. The period and
// lodging filters run in the store; the available-now time-of-day check
// needs the free-text time range parsed, so it runs here over the
// prefiltered rows.
func (s *AvailabilityService) List(ctx context.Context, q availability.Query) ([]*availability.Entry, error) {
	now := q.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var filter availability.Filter

	if q.Period != "" {
		if !validPeriods[q.Period] {
			return nil, errors.BadRequest("Invalid period")
		}
		window := availability.Window(q.Period, now)
		filter.Window = &window
	}

	filter.OnSiteLodging = q.OnSiteLodging

	if q.AvailableNow {
		today := availability.Day(now)
		filter.CoversDate = &today
		filter.ExcludeStatus = availability.StatusUnavailable
	}

	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if q.AvailableNow {
		match := availability.AvailableAt(now)
		kept := entries[:0]
		for _, e := range entries {
			if match(&e.Declaration) {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	return entries, nil
}

// Mine retrieves the caller's own declarations
func (s *AvailabilityService) Mine(ctx context.Context, userID int64) ([]*availability.Declaration, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// Delete removes the caller's declaration. Declarations owned by someone
// else are indistinguishable from missing ones.
func (s *AvailabilityService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"declaration_id": id,
		"user_id":        userID,
	}).Info("Declaration deleted")

	metrics.RecordDeclarationDeleted()

	return nil
}
