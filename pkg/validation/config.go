package validation

import (
	"log/slog"

	"github.com/dmitrymomot/validation/pkg/config"
	"github.com/dmitrymomot/validation/pkg/logger"
)

// Config holds engine settings read from the environment.
type Config struct {
	MaxDepth  int    `env:"VALIDATION_MAX_DEPTH" envDefault:"32"`
	LogLevel  string `env:"VALIDATION_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"VALIDATION_LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from the environment.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logger builds the engine logger described by the config.
func (c Config) Logger(opts ...logger.Option) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}

	base := []logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithComponent("validator"),
	}
	return logger.New(append(base, opts...)...), nil
}

// NewFromConfig creates an Engine configured by cfg. Explicit options are
// applied after the config and win over it.
func NewFromConfig(registry *Registry, cfg Config, opts ...Option) (*Engine, error) {
	l, err := cfg.Logger()
	if err != nil {
		return nil, err
	}

	base := []Option{WithMaxDepth(cfg.MaxDepth), WithLogger(l)}
	return New(registry, append(base, opts...)...), nil
}
