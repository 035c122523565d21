package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
// It is constructed once at startup and passed by reference; no component
// reads configuration from ambient state.
type Config struct {
	APIURL       string
	DataDir      string
	FetchTimeout time.Duration

	// PGDSN enables the optional Postgres mirror when set.
	PGDSN string

	Publish        bool
	GitRemote      string
	GitBranch      string
	GitAuthorName  string
	GitAuthorEmail string

	// Cron expressions for the schedule daemon, one per tier. An empty
	// expression disables that tier.
	DailyCron   string
	WeeklyCron  string
	MonthlyCron string
	YearlyCron  string

	LogLevel string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("POOLDATA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data-dir", "./data")
	v.SetDefault("fetch-timeout", 30*time.Second)
	v.SetDefault("git-remote", "origin")
	v.SetDefault("git-branch", "main")
	v.SetDefault("daily-cron", "0 23 * * *")
	v.SetDefault("weekly-cron", "30 23 * * 0")
	v.SetDefault("monthly-cron", "0 1 1 * *")
	v.SetDefault("yearly-cron", "0 2 1 1 *")
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		APIURL:         v.GetString("api-url"),
		DataDir:        v.GetString("data-dir"),
		FetchTimeout:   v.GetDuration("fetch-timeout"),
		PGDSN:          v.GetString("pg-dsn"),
		Publish:        v.GetBool("publish"),
		GitRemote:      v.GetString("git-remote"),
		GitBranch:      v.GetString("git-branch"),
		GitAuthorName:  v.GetString("git-author-name"),
		GitAuthorEmail: v.GetString("git-author-email"),
		DailyCron:      v.GetString("daily-cron"),
		WeeklyCron:     v.GetString("weekly-cron"),
		MonthlyCron:    v.GetString("monthly-cron"),
		YearlyCron:     v.GetString("yearly-cron"),
		LogLevel:       v.GetString("log-level"),
	}

	return cfg, nil
}
