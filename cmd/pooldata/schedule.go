package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/defipatriot/ss-pool-data-2026/internal/config"
	"github.com/defipatriot/ss-pool-data-2026/internal/model"
	"github.com/defipatriot/ss-pool-data-2026/internal/schedule"
)

func runSchedule(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.APIURL == "" {
		return fmt.Errorf("api url is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, cleanup, err := buildRunner(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	sched := schedule.New(runner, logger)
	jobs := []struct {
		tier model.Tier
		spec string
	}{
		{model.TierDaily, cfg.DailyCron},
		{model.TierWeekly, cfg.WeeklyCron},
		{model.TierMonthly, cfg.MonthlyCron},
		{model.TierYearly, cfg.YearlyCron},
	}
	registered := 0
	for _, job := range jobs {
		if job.spec == "" {
			logger.Info("tier disabled", zap.String("tier", job.tier.String()))
			continue
		}
		if err := sched.Add(job.tier, job.spec); err != nil {
			return err
		}
		registered++
	}
	if registered == 0 {
		return fmt.Errorf("all tiers are disabled")
	}

	logger.Info("schedule start",
		zap.String("data_dir", cfg.DataDir),
		zap.Bool("publish", cfg.Publish),
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
	)

	return sched.Run(ctx)
}
