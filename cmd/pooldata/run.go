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
	"github.com/defipatriot/ss-pool-data-2026/internal/dexapi"
	"github.com/defipatriot/ss-pool-data-2026/internal/model"
	"github.com/defipatriot/ss-pool-data-2026/internal/publish"
	"github.com/defipatriot/ss-pool-data-2026/internal/rollup"
	"github.com/defipatriot/ss-pool-data-2026/internal/storage"
	"github.com/defipatriot/ss-pool-data-2026/internal/storage/postgres"
)

func runPass(cmd *cobra.Command, args []string) error {
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

	mode := "daily"
	if len(args) > 0 {
		mode = args[0]
	}
	tier, err := model.ParseTier(mode)
	if err != nil {
		return err
	}

	if tier == model.TierDaily && cfg.APIURL == "" {
		return fmt.Errorf("api url is required for daily runs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, cleanup, err := buildRunner(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("run start",
		zap.String("mode", tier.String()),
		zap.String("data_dir", cfg.DataDir),
		zap.Bool("publish", cfg.Publish),
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
	)

	return runner.Run(ctx, tier)
}

// buildRunner wires the store, fetcher, publisher, and mirror for a run. The
// fetcher is only constructed when an API URL is configured; rollup tiers
// never need one.
func buildRunner(ctx context.Context, cfg config.Config, logger *zap.Logger) (*rollup.Runner, func(), error) {
	cleanup := func() {}

	var fetcher rollup.PoolFetcher
	if cfg.APIURL != "" {
		client, err := dexapi.New(cfg.APIURL, cfg.FetchTimeout)
		if err != nil {
			return nil, cleanup, err
		}
		fetcher = client
	}

	var publisher publish.Publisher = publish.Noop{}
	if cfg.Publish {
		publisher = publish.NewGit(publish.GitConfig{
			Dir:         cfg.DataDir,
			Remote:      cfg.GitRemote,
			Branch:      cfg.GitBranch,
			AuthorName:  cfg.GitAuthorName,
			AuthorEmail: cfg.GitAuthorEmail,
		}, logger)
	}

	var mirror rollup.Mirror
	if cfg.PGDSN != "" {
		pgStore, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return nil, cleanup, fmt.Errorf("connect postgres: %w", err)
		}
		cleanup = pgStore.Close
		mirror = pgStore
	}

	runner, err := rollup.NewRunner(rollup.Config{
		Fetcher:   fetcher,
		Store:     storage.NewFileStore(cfg.DataDir),
		Publisher: publisher,
		Mirror:    mirror,
		Logger:    logger,
	})
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return runner, cleanup, nil
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
