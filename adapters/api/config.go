package api

import (
	"randist/adapters/generators"
	"randist/internal/config"
)

// Config holds settings for the sampling API
type Config struct {
	Port           string
	Engine         string // engine used when a request names none
	DefaultSamples int    // n when a request omits it
	MaxSamples     int    // largest n a request may ask for
}

// DefaultConfig returns sensible defaults for the sampling API
func DefaultConfig() Config {
	return Config{
		Port:           "8080",
		Engine:         generators.DefaultEngine,
		DefaultSamples: 1000,
		MaxSamples:     1_000_000,
	}
}

// ConfigFrom derives the API settings from the application configuration
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Port:           cfg.Server.Port,
		Engine:         cfg.Sampling.Engine,
		DefaultSamples: cfg.Sampling.Samples,
		MaxSamples:     cfg.Sampling.MaxSamples,
	}
}
