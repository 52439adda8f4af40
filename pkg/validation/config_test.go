package validation_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation/pkg/config"
	"github.com/dmitrymomot/validation/pkg/logger"
	"github.com/dmitrymomot/validation/pkg/validation"
	"github.com/dmitrymomot/validation/pkg/validation/constraint"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := validation.LoadConfig(config.WithPrefix("DEFAULTS_"))
		require.NoError(t, err)
		assert.Equal(t, validation.Config{MaxDepth: 32, LogLevel: "info", LogFormat: "json"}, cfg)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("APP_VALIDATION_MAX_DEPTH", "4")
		t.Setenv("APP_VALIDATION_LOG_LEVEL", "debug")
		t.Setenv("APP_VALIDATION_LOG_FORMAT", "text")

		cfg, err := validation.LoadConfig(config.WithPrefix("APP_"))
		require.NoError(t, err)
		assert.Equal(t, validation.Config{MaxDepth: 4, LogLevel: "debug", LogFormat: "text"}, cfg)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("BAD_VALIDATION_MAX_DEPTH", "deep")

		_, err := validation.LoadConfig(config.WithPrefix("BAD_"))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestConfig_Logger(t *testing.T) {
	t.Parallel()

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Config{LogLevel: "loud", LogFormat: "json"}.Logger()
		assert.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()
		_, err := validation.Config{LogLevel: "info", LogFormat: "xml"}.Logger()
		assert.Error(t, err)
	})

	t.Run("tags records with the component", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		l, err := validation.Config{LogLevel: "info", LogFormat: "text"}.Logger(logger.WithOutput(buf))
		require.NoError(t, err)

		l.Info("hello")
		assert.Contains(t, buf.String(), "component=validator")
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	registry := registryOf(
		validation.NewObjectMappingFor[user]().
			Property(validation.NewPropertyMapping("friends", constraint.Valid())).
			Mapping(),
	)

	u := &user{}
	u.friends = []*user{u}

	t.Run("applies max depth", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		cfg := validation.Config{MaxDepth: 3, LogLevel: "warn", LogFormat: "json"}
		engine, err := validation.NewFromConfig(registry, cfg, validation.WithLogger(logger.New(logger.WithOutput(buf))))
		require.NoError(t, err)

		_, err = engine.Validate(u, nil)
		require.ErrorIs(t, err, validation.ErrMaxDepthExceeded)
		assert.Contains(t, err.Error(), "3 levels")
		assert.Contains(t, buf.String(), "validation misconfigured")
	})

	t.Run("rejects invalid logging config", func(t *testing.T) {
		t.Parallel()
		_, err := validation.NewFromConfig(registry, validation.Config{LogLevel: "loud", LogFormat: "json"})
		assert.Error(t, err)
	})
}
