package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/nsdBRoficial/stellar-stake-house/internal/config"
	"github.com/nsdBRoficial/stellar-stake-house/internal/domain"
)

// SnapshotRunner is the part of the snapshot service the scheduler
// drives. A run that reports ErrRunInProgress is simply logged and
// retried on the next tick.
type SnapshotRunner interface {
	TakeSnapshot(ctx context.Context) (*domain.SnapshotResult, error)
}

type Scheduler struct {
	spec   string
	cron   *cron.Cron
	runner SnapshotRunner
}

func New(cfg *config.Config, runner SnapshotRunner) *Scheduler {
	return &Scheduler{
		spec:   cfg.SnapshotCron,
		cron:   cron.New(),
		runner: runner,
	}
}

// Start schedules the snapshot job and blocks until the context is
// cancelled, then waits for a running job to finish.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		result, err := s.runner.TakeSnapshot(ctx)
		if err != nil {
			zap.L().Error("scheduled snapshot failed", zap.Error(err))
			return
		}
		zap.L().Info("scheduled snapshot completed",
			zap.Int("snapshots", result.SnapshotCount),
			zap.Int("rewards", result.RewardsCount),
			zap.Int("skipped", len(result.Skipped)))
	})
	if err != nil {
		return fmt.Errorf("can't schedule snapshot job: %w", err)
	}

	s.cron.Start()
	zap.L().Info("snapshot scheduler started", zap.String("spec", s.spec))

	<-ctx.Done()
	<-s.cron.Stop().Done()
	zap.L().Info("snapshot scheduler stopped")
	return nil
}
