// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config carries the service's runtime settings. Every field has a default,
// so an empty environment yields a working development configuration.
type Config struct {
	ListenAddr  string `env:"LISTEN_ADDR,default=:8080"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	Environment string `env:"ENVIRONMENT,default=development"`
}

// Load reads an optional .env file and decodes the environment into a
// Config. A missing .env file is not an error; a malformed variable is.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

// ZerologLevel returns the configured log level; Load has already verified
// that it parses.
func (c Config) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// IsDevelopment reports whether the service runs with the development
// environment profile (console logging instead of JSON).
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}
