// Package schedule runs tier passes on cron expressions inside one process.
package schedule

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/defipatriot/ss-pool-data-2026/internal/model"
)

// TierRunner executes one pass of a tier.
type TierRunner interface {
	Run(ctx context.Context, tier model.Tier) error
}

// Scheduler fires tier passes on their cron expressions. Passes are
// serialized across the whole scheduler: the storage layout has no locking,
// so a firing that lands while another pass is still running is skipped,
// not queued.
type Scheduler struct {
	runner TierRunner
	logger *zap.Logger
	cron   *cron.Cron

	mu  sync.Mutex
	ctx context.Context
}

func New(runner TierRunner, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		runner: runner,
		logger: logger,
		cron:   cron.New(),
	}
}

// Add registers a tier on a standard five-field cron expression.
func (s *Scheduler) Add(tier model.Tier, spec string) error {
	if _, err := s.cron.AddFunc(spec, func() { s.fire(tier) }); err != nil {
		return fmt.Errorf("%s cron %q: %w", tier, spec, err)
	}
	s.logger.Info("tier scheduled",
		zap.String("tier", tier.String()),
		zap.String("cron", spec),
	)
	return nil
}

// Run starts the cron loop and blocks until ctx is canceled, then waits for
// any in-flight pass to finish. A failed pass is logged and the loop keeps
// going; only cancellation stops the daemon.
func (s *Scheduler) Run(ctx context.Context) error {
	s.ctx = ctx
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return nil
}

func (s *Scheduler) fire(tier model.Tier) {
	if !s.mu.TryLock() {
		s.logger.Warn("pass skipped, previous still running", zap.String("tier", tier.String()))
		return
	}
	defer s.mu.Unlock()

	s.logger.Info("scheduled pass start", zap.String("tier", tier.String()))
	if err := s.runner.Run(s.ctx, tier); err != nil {
		s.logger.Error("scheduled pass failed",
			zap.String("tier", tier.String()),
			zap.Error(err),
		)
	}
}
