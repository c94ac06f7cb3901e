package services

import (
	"context"
	"time"

	"github.com/teamdispo/dispo/internal/domain/availability"
	"github.com/teamdispo/dispo/internal/domain/dailycheck"
	"github.com/teamdispo/dispo/internal/domain/user"
	"github.com/teamdispo/dispo/internal/pkg/errors"
	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/pkg/metrics"
)

// DailyCheckService implements dailycheck.Service
type DailyCheckService struct {
	repo   dailycheck.Repository
	users  user.Repository
	logger *logger.Logger
}

// NewDailyCheckService creates a new daily check service
func NewDailyCheckService(repo dailycheck.Repository, users user.Repository, log *logger.Logger) dailycheck.Service {
	return &DailyCheckService{
		repo:   repo,
		users:  users,
		logger: log,
	}
}

// Submit records a user's check for today
func (s *DailyCheckService) Submit(ctx context.Context, c *dailycheck.Check) (*dailycheck.Check, error) {
	if c.UserID == 0 {
		return nil, errors.Unauthorized("Authentication required")
	}
	if c.Today == "" {
		return nil, errors.BadRequest("The today field is required")
	}
	if c.Mood < 1 || c.Mood > 5 {
		return nil, errors.BadRequest("Mood must be between 1 and 5")
	}

	c.Date = availability.Day(time.Now().UTC())

	if existing, err := s.repo.GetForDate(ctx, c.UserID, c.Date); err == nil && existing != nil {
		return nil, errors.Conflict("Check already submitted today")
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.ErrorWithErr(err, "Failed to store daily check")
		return nil, err
	}

	metrics.RecordDailyCheckSubmitted()

	return c, nil
}

// TodayFeed retrieves today's checks plus the roster
func (s *DailyCheckService) TodayFeed(ctx context.Context) (*dailycheck.Feed, error) {
	today := availability.Day(time.Now().UTC())

	checks, err := s.repo.ListByDate(ctx, today)
	if err != nil {
		return nil, err
	}

	roster, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]dailycheck.Owner, 0, len(roster))
	for _, u := range roster {
		members = append(members, dailycheck.Owner{
			ID:          u.ID,
			Username:    u.Username,
			DisplayName: u.DisplayName(),
		})
	}

	return &dailycheck.Feed{
		Date:    today,
		Checks:  checks,
		Members: members,
	}, nil
}
