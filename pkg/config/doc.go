// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/caarlos0/env/v11` for struct-tag based parsing and
// `github.com/joho/godotenv` for reading optional `.env` files:
//
//	type EngineConfig struct {
//	    MaxDepth int `env:"VALIDATION_MAX_DEPTH" envDefault:"32"`
//	}
//
//	var cfg EngineConfig
//	if err := config.Load(&cfg, config.WithEnvFiles(".env")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// There is no global cache: every call parses afresh. Values read from `.env`
// files are merged below the process environment and never written back into it.
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  - failed to parse env vars into struct.
//   - `ErrReadingEnvFile` - a requested `.env` file could not be read.
//   - `ErrNilPointer`     - nil pointer passed to `Load`/`MustLoad`.
package config
