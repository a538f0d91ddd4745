// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for dotenv files with
// github.com/caarlos0/env/v11 for struct-tag parsing, and caches each parsed
// configuration type for the life of the process.
//
//	type Config struct {
//		Lang         string `env:"RUNCHECK_LANG" envDefault:"es"`
//		StrictLength bool   `env:"RUNCHECK_STRICT_LENGTH" envDefault:"true"`
//	}
//
//	if err := config.LoadEnv("runcheck.env"); err != nil {
//		return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Load reads ./.env on first use if LoadEnv was never called. Variables
// already set in the process environment always take precedence over files.
//
// ResetCache and ForceReload exist for tests and for commands that change
// the environment after startup.
//
// # Errors
//
// ErrParsingConfig, ErrLoadingEnvFile and ErrNilPointer are joined with the
// underlying cause and can be matched with errors.Is.
package config
