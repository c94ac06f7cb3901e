package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/teamdispo/dispo/internal/domain/availability"
	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/pkg/metrics"
)

// Retention periodically removes declarations that ended long ago, so the
// store only carries history the team still cares about.
type Retention struct {
	repo     availability.Repository
	schedule string
	keepDays int
	logger   *logger.Logger
	cron     *cron.Cron
}

// NewRetention creates a new retention worker
func NewRetention(
	repo availability.Repository,
	schedule string,
	keepDays int,
	log *logger.Logger,
) *Retention {
	return &Retention{
		repo:     repo,
		schedule: schedule,
		keepDays: keepDays,
		logger:   log,
	}
}

// Start schedules the pruning job and runs one initial sweep
func (r *Retention) Start(ctx context.Context) error {
	r.logger.WithFields(map[string]interface{}{
		"schedule":  r.schedule,
		"keep_days": r.keepDays,
	}).Info("Starting retention worker")

	r.cron = cron.New()
	if _, err := r.cron.AddFunc(r.schedule, func() { r.prune(ctx) }); err != nil {
		return err
	}
	r.cron.Start()

	r.prune(ctx)

	go func() {
		<-ctx.Done()
		r.Stop()
	}()

	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish
func (r *Retention) Stop() {
	if r.cron != nil {
		<-r.cron.Stop().Done()
		r.logger.Info("Retention worker stopped")
	}
}

func (r *Retention) prune(ctx context.Context) {
	cutoff := availability.Day(time.Now().UTC()).AddDate(0, 0, -r.keepDays)

	pruned, err := r.repo.PruneEndedBefore(ctx, cutoff)
	if err != nil {
		r.logger.ErrorWithErr(err, "Failed to prune expired declarations")
		return
	}

	if pruned > 0 {
		r.logger.WithFields(map[string]interface{}{
			"pruned": pruned,
			"cutoff": cutoff.Format(availability.DateLayout),
		}).Info("Pruned expired declarations")
		metrics.RecordDeclarationsPruned(pruned)
	}
}
