// Package config resolves runtime settings from flags, environment
// variables, and an optional env-style config file, in that precedence
// order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

const (
	DefaultOutPath        = "content/schedule.json"
	DefaultWindowDays     = 120
	DefaultMaxItems       = 50
	DefaultTimeoutSeconds = 30
)

// ErrMissingURL is the usage error for a run with no feed URL configured.
var ErrMissingURL = errors.New("missing ICS URL: set SCHEDULE_ICS_URL or pass --ics-url")

// Runtime is the resolved configuration for one run.
type Runtime struct {
	ICSURL     string
	OutPath    string
	WindowDays int
	Window     time.Duration
	MaxItems   int
	Timeout    time.Duration
}

// Load resolves the runtime configuration. flags may be nil; when given,
// set flags override environment variables, which override the config
// file, which overrides the built-in defaults.
func Load(flags *pflag.FlagSet) (Runtime, error) {
	if err := applyEnvFile(configFilePath()); err != nil {
		return Runtime{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("SCHEDULE")
	v.AutomaticEnv()

	_ = v.BindEnv("ics_url", "SCHEDULE_ICS_URL")
	_ = v.BindEnv("out", "SCHEDULE_OUT")
	_ = v.BindEnv("days", "SCHEDULE_WINDOW_DAYS")
	_ = v.BindEnv("limit", "SCHEDULE_LIMIT")
	_ = v.BindEnv("timeout_seconds", "SCHEDULE_TIMEOUT_SECONDS")

	if flags != nil {
		_ = v.BindPFlag("ics_url", flags.Lookup("ics-url"))
		_ = v.BindPFlag("out", flags.Lookup("out"))
		_ = v.BindPFlag("days", flags.Lookup("days"))
		_ = v.BindPFlag("limit", flags.Lookup("limit"))
		_ = v.BindPFlag("timeout_seconds", flags.Lookup("timeout"))
	}

	v.SetDefault("out", DefaultOutPath)
	v.SetDefault("days", DefaultWindowDays)
	v.SetDefault("limit", DefaultMaxItems)
	v.SetDefault("timeout_seconds", DefaultTimeoutSeconds)

	url := strings.TrimSpace(v.GetString("ics_url"))
	if url == "" {
		return Runtime{}, ErrMissingURL
	}

	out := strings.TrimSpace(v.GetString("out"))
	if out == "" {
		out = DefaultOutPath
	}

	days := v.GetInt("days")
	if days <= 0 {
		days = DefaultWindowDays
	}

	limit := v.GetInt("limit")
	if limit < 0 {
		limit = 0
	}

	timeoutSeconds := v.GetInt("timeout_seconds")
	if timeoutSeconds <= 0 {
		timeoutSeconds = DefaultTimeoutSeconds
	}

	return Runtime{
		ICSURL:     url,
		OutPath:    out,
		WindowDays: days,
		Window:     time.Duration(days) * 24 * time.Hour,
		MaxItems:   limit,
		Timeout:    time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// configFilePath returns the env file to apply before resolution:
// SCHEDULE_CONFIG_FILE when set, otherwise
// $XDG_CONFIG_HOME/thomsfoolery/schedule.env.
func configFilePath() string {
	if path := strings.TrimSpace(os.Getenv("SCHEDULE_CONFIG_FILE")); path != "" {
		return path
	}

	xdgConfig := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "thomsfoolery", "schedule.env")
}

// applyEnvFile loads KEY=VALUE pairs from an env-style file into the
// process environment. Variables that are already set win over file
// values; a missing file is not an error.
func applyEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat config file %s: %w", path, err)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	for _, key := range cfg.Section(ini.DefaultSection).Keys() {
		name := strings.TrimSpace(key.Name())
		if name == "" {
			continue
		}
		if _, exists := os.LookupEnv(name); exists {
			continue
		}
		_ = os.Setenv(name, strings.TrimSpace(key.Value()))
	}
	return nil
}
