package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "pooldata",
		Short:        "DEX pool metrics snapshot and rollup pipeline",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	runCmd := &cobra.Command{
		Use:   "run [daily|weekly|monthly|yearly]",
		Short: "Run one tier pass",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPass,
	}
	addRuntimeFlags(runCmd)
	root.AddCommand(runCmd)

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run all tiers on their cron expressions",
		RunE:  runSchedule,
	}
	addRuntimeFlags(scheduleCmd)
	scheduleCmd.Flags().String("daily-cron", "0 23 * * *", "daily capture cron expression (empty disables)")
	scheduleCmd.Flags().String("weekly-cron", "30 23 * * 0", "weekly rollup cron expression (empty disables)")
	scheduleCmd.Flags().String("monthly-cron", "0 1 1 * *", "monthly rollup cron expression (empty disables)")
	scheduleCmd.Flags().String("yearly-cron", "0 2 1 1 *", "yearly rollup cron expression (empty disables)")
	root.AddCommand(scheduleCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// addRuntimeFlags declares the flags shared by run and schedule.
func addRuntimeFlags(cmd *cobra.Command) {
	cmd.Flags().String("api-url", "", "pools endpoint URL")
	cmd.Flags().String("data-dir", "./data", "storage root for tier files")
	cmd.Flags().Duration("fetch-timeout", 30*time.Second, "pools fetch timeout")
	cmd.Flags().String("pg-dsn", "", "Postgres DSN for the optional mirror")
	cmd.Flags().Bool("publish", false, "commit and push the data dir after each run")
	cmd.Flags().String("git-remote", "origin", "publish remote")
	cmd.Flags().String("git-branch", "main", "publish branch")
	cmd.Flags().String("git-author-name", "", "publish commit author name")
	cmd.Flags().String("git-author-email", "", "publish commit author email")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
