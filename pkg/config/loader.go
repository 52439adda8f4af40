package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option customizes a single Load call.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
}

// WithPrefix prepends prefix to every env tag of the target struct,
// e.g. WithPrefix("BILLING_") turns `env:"MAX_DEPTH"` into BILLING_MAX_DEPTH.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles reads the given .env files before parsing.
// Values from the files never override variables already present in the
// process environment. Files are read, not loaded: the process environment
// is left untouched.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, files...)
	}
}

// Load parses environment variables into v based on its `env` and
// `envDefault` struct tags.
//
// Example:
//
//	type EngineConfig struct {
//		MaxDepth int    `env:"VALIDATION_MAX_DEPTH" envDefault:"32"`
//		LogLevel string `env:"VALIDATION_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg EngineConfig
//	if err := config.Load(&cfg, config.WithEnvFiles(".env")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	envOpts := env.Options{Prefix: o.prefix}

	if len(o.envFiles) > 0 {
		fileVars, err := godotenv.Read(o.envFiles...)
		if err != nil {
			return errors.Join(ErrReadingEnvFile, err)
		}

		// Process environment wins over file values.
		for k, val := range env.ToMap(os.Environ()) {
			fileVars[k] = val
		}
		envOpts.Environment = fileVars
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
