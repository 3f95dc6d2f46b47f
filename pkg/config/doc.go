// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 behind a
// small generic API. Each configuration type is parsed at most once per
// process; subsequent calls are served from an in-memory cache so packages can
// load their own config independently without re-reading the environment.
//
// Usage:
//
//	type SMTPConfig struct {
//	    Host string `env:"SMTP_HOST,required"`
//	    Port int    `env:"SMTP_PORT" envDefault:"465"`
//	}
//
//	var cfg SMTPConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// MustLoad panics on failure and is meant for startup-critical configuration.
// ResetCache clears the cache between tests.
package config
