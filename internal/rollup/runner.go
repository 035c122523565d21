// Package rollup drives one tier's pass: gather source rows, aggregate them
// for the target period, persist the result, and hand it to the publisher.
package rollup

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/defipatriot/ss-pool-data-2026/internal/aggregate"
	"github.com/defipatriot/ss-pool-data-2026/internal/model"
	"github.com/defipatriot/ss-pool-data-2026/internal/period"
	"github.com/defipatriot/ss-pool-data-2026/internal/publish"
	"github.com/defipatriot/ss-pool-data-2026/internal/storage"
)

// PoolFetcher produces the current pool list for a daily capture.
type PoolFetcher interface {
	FetchPools(ctx context.Context) ([]model.PoolStat, error)
}

// Mirror receives a copy of whatever a run wrote. Mirror errors are logged
// and never fail the run; the files stay canonical.
type Mirror interface {
	UpsertSnapshots(ctx context.Context, rows []model.SnapshotRow) error
	UpsertAggregates(ctx context.Context, tier model.Tier, rows []model.AggregateRow) error
}

// Config wires a Runner. Store is required; Fetcher only for daily runs.
type Config struct {
	Fetcher   PoolFetcher
	Store     storage.Store
	Publisher publish.Publisher
	Mirror    Mirror
	Logger    *zap.Logger

	// Clock supplies the run's notion of now. Passes normalize it to UTC so
	// period labels do not depend on the host timezone.
	Clock func() time.Time
}

// Runner executes one tier pass per call. A run is a single linear pass with
// no retries and no state carried between runs.
type Runner struct {
	fetcher   PoolFetcher
	store     storage.Store
	publisher publish.Publisher
	mirror    Mirror
	logger    *zap.Logger
	clock     func() time.Time
}

func NewRunner(cfg Config) (*Runner, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.Publisher == nil {
		cfg.Publisher = publish.Noop{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &Runner{
		fetcher:   cfg.Fetcher,
		store:     cfg.Store,
		publisher: cfg.Publisher,
		mirror:    cfg.Mirror,
		logger:    cfg.Logger,
		clock:     cfg.Clock,
	}, nil
}

// Run executes one pass for a tier.
func (r *Runner) Run(ctx context.Context, tier model.Tier) error {
	switch tier {
	case model.TierDaily:
		return r.runDaily(ctx)
	case model.TierWeekly:
		return r.runWeekly(ctx)
	case model.TierMonthly:
		return r.runMonthly(ctx)
	case model.TierYearly:
		return r.runYearly(ctx)
	default:
		return fmt.Errorf("unknown mode: %s", tier)
	}
}

// runDaily captures the current pool list into the rotating day-slot file and
// the permanent per-date file. Any fetch or shape error aborts before
// anything is written.
func (r *Runner) runDaily(ctx context.Context) error {
	if r.fetcher == nil {
		return fmt.Errorf("fetcher is required for daily runs")
	}

	now := r.clock().UTC()
	pools, err := r.fetcher.FetchPools(ctx)
	if err != nil {
		return fmt.Errorf("fetch pools: %w", err)
	}

	date := period.DateLabel(now)
	clock := now.Format("15:04:05")
	rows := make([]model.SnapshotRow, 0, len(pools))
	for _, pool := range pools {
		rows = append(rows, snapshotRow(pool, date, clock))
	}

	slot := period.DayLabel(now)
	if err := r.store.WriteSnapshots(model.TierDaily, slot, rows); err != nil {
		return err
	}
	if err := r.store.WriteSnapshots(model.TierDaily, date, rows); err != nil {
		return err
	}

	r.mirrorSnapshots(ctx, rows)

	r.logger.Info("daily snapshot written",
		zap.String("slot", slot),
		zap.String("date", date),
		zap.Int("pools", len(rows)),
	)

	r.publish(ctx, fmt.Sprintf("daily: %s.csv, %s.csv", slot, date))
	return nil
}

// runWeekly folds the rotating day-slot files into the current ISO week.
// Per-date backup files are not read.
func (r *Runner) runWeekly(ctx context.Context) error {
	now := r.clock().UTC()
	label := period.WeekLabel(now)

	ids, err := r.store.ListPeriods(model.TierDaily)
	if err != nil {
		return err
	}

	var inputs []aggregate.Input
	for _, id := range daySlots(ids) {
		rows, err := r.store.ReadSnapshots(model.TierDaily, id)
		if err != nil {
			return err
		}
		for _, row := range rows {
			inputs = append(inputs, aggregate.SnapshotInput(row))
		}
	}

	return r.writeAggregate(ctx, model.TierWeekly, label, inputs)
}

// runMonthly folds the weekly files assigned to the previous calendar month.
func (r *Runner) runMonthly(ctx context.Context) error {
	now := r.clock().UTC()
	yearOfMonth, month := period.PrevMonth(now)
	label := period.MonthLabel(yearOfMonth, month)

	ids, err := r.store.ListPeriods(model.TierWeekly)
	if err != nil {
		return err
	}

	var inputs []aggregate.Input
	for _, id := range weeksOfMonth(ids, now.Year(), month) {
		rows, err := r.store.ReadAggregates(model.TierWeekly, id)
		if err != nil {
			return err
		}
		for _, row := range rows {
			inputs = append(inputs, aggregate.AggregateInput(row))
		}
	}

	return r.writeAggregate(ctx, model.TierMonthly, label, inputs)
}

// runYearly folds the monthly files of the previous calendar year.
func (r *Runner) runYearly(ctx context.Context) error {
	now := r.clock().UTC()
	target := now.Year() - 1
	label := period.YearLabel(target)

	ids, err := r.store.ListPeriods(model.TierMonthly)
	if err != nil {
		return err
	}

	var inputs []aggregate.Input
	for _, id := range monthsOfYear(ids, target) {
		rows, err := r.store.ReadAggregates(model.TierMonthly, id)
		if err != nil {
			return err
		}
		for _, row := range rows {
			inputs = append(inputs, aggregate.AggregateInput(row))
		}
	}

	return r.writeAggregate(ctx, model.TierYearly, label, inputs)
}

// writeAggregate runs the aggregation and persists the result. Zero inputs
// still persist a header-only period file.
func (r *Runner) writeAggregate(ctx context.Context, tier model.Tier, label string, inputs []aggregate.Input) error {
	rows, summary := aggregate.Aggregate(label, inputs)
	if err := r.store.WriteAggregates(tier, label, rows); err != nil {
		return err
	}

	r.mirrorAggregates(ctx, tier, rows)

	r.logger.Info("rollup written",
		zap.String("tier", tier.String()),
		zap.String("period", label),
		zap.Int("inputs", summary.Inputs),
		zap.Int("pools", summary.Pools),
	)

	r.publish(ctx, fmt.Sprintf("%s: %s.csv", tier, label))
	return nil
}

func (r *Runner) mirrorSnapshots(ctx context.Context, rows []model.SnapshotRow) {
	if r.mirror == nil {
		return
	}
	if err := r.mirror.UpsertSnapshots(ctx, rows); err != nil {
		r.logger.Warn("mirror snapshots", zap.Error(err))
	}
}

func (r *Runner) mirrorAggregates(ctx context.Context, tier model.Tier, rows []model.AggregateRow) {
	if r.mirror == nil {
		return
	}
	if err := r.mirror.UpsertAggregates(ctx, tier, rows); err != nil {
		r.logger.Warn("mirror aggregates", zap.String("tier", tier.String()), zap.Error(err))
	}
}

func (r *Runner) publish(ctx context.Context, message string) {
	if err := r.publisher.Publish(ctx, message); err != nil {
		r.logger.Warn("publish", zap.Error(err))
	}
}

func snapshotRow(pool model.PoolStat, date, clock string) model.SnapshotRow {
	return model.SnapshotRow{
		Date:         date,
		Time:         clock,
		PoolID:       pool.PoolID,
		PoolAddress:  pool.PoolAddress,
		TVLUSD:       pool.TVLUSD,
		Volume24hUSD: pool.Volume24hUSD,
		Volume7dUSD:  pool.Volume7dUSD,
		APR7d:        pool.APR7d,
		Reserve0:     pool.Reserve0,
		Reserve1:     pool.Reserve1,
		TotalShare:   pool.TotalShare,
	}
}
