package iface

import (
	"log/slog"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/jmgilman/foundation/errors"
)

// EnvPrefix is the environment variable prefix read by ConfigFromEnv.
const EnvPrefix = "FOUNDATION_IFACE"

// Config holds the environment-driven settings of a Registry.
//
//	FOUNDATION_IFACE_FULL_CHECKING=true   enable full-checking mode
//	FOUNDATION_IFACE_LOG_LEVEL=debug      log to stderr at this level
type Config struct {
	// FullChecking enables full-checking mode.
	FullChecking bool `envconfig:"FULL_CHECKING" default:"false"`

	// LogLevel is a slog level name. Empty disables logging.
	LogLevel string `envconfig:"LOG_LEVEL"`
}

// ConfigFromEnv loads Config from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to load interface registry configuration")
	}
	return cfg, nil
}

// Options converts the configuration into registry options.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithFullChecking(c.FullChecking)}

	if c.LogLevel == "" {
		return opts, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid log level",
			map[string]any{"level": c.LogLevel})
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	opts = append(opts, WithLogger(slog.New(handler).With("component", "iface")))
	return opts, nil
}
