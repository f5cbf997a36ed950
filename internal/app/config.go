package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/batchignore/internal/i18n"
)

// Config holds all the necessary configuration for an App instance.
type Config struct {
	// ManifestsPath optionally points at a directory of .hcl manifests whose
	// node definitions override the built-in ones.
	ManifestsPath string `env:"BATCHIGNORE_MANIFESTS"`

	LogFormat string `env:"BATCHIGNORE_LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"BATCHIGNORE_LOG_LEVEL" envDefault:"info"`
	Locale    string `env:"BATCHIGNORE_LOCALE" envDefault:"zh-Hans"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LoadEnv returns the configuration defaults taken from the environment.
func LoadEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if _, ok := i18n.ParseTag(cfg.Locale); !ok {
		return nil, fmt.Errorf("unsupported locale %q", cfg.Locale)
	}
	return &cfg, nil
}
