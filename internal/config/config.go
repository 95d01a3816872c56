package config

import (
	"os"
	"strconv"

	"randist/adapters/generators"
	"randist/internal/errors"
	"randist/internal/logger"
)

// Config represents the complete application configuration
type Config struct {
	Sampling SamplingConfig
	Server   ServerConfig
	Logging  LoggingConfig
}

// SamplingConfig holds generator and sampling defaults
type SamplingConfig struct {
	Engine      string
	Seed        uint32
	SeedSet     bool // false when the seed was derived from the clock
	Samples     int
	MaxSamples  int
	Concurrency int
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Format string
	Level  string
}

// Load reads configuration from environment variables and validates it.
// Callers wanting a .env file load it first.
func Load() (*Config, error) {
	config, err := Read()
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// Read is Load without the final Validate, for callers that override
// fields before validating
func Read() (*Config, error) {
	sampling, err := loadSamplingConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sampling configuration")
	}

	config := &Config{
		Sampling: *sampling,
		Server:   *loadServerConfig(),
		Logging:  *loadLoggingConfig(),
	}
	return config, nil
}

func loadSamplingConfig() (*SamplingConfig, error) {
	cfg := &SamplingConfig{
		Engine:      getEnvOrDefault("RANDIST_ENGINE", generators.DefaultEngine),
		Samples:     getEnvIntOrDefault("RANDIST_SAMPLES", 1000),
		MaxSamples:  getEnvIntOrDefault("RANDIST_MAX_SAMPLES", 1_000_000),
		Concurrency: getEnvIntOrDefault("RANDIST_CONCURRENCY", 4),
	}

	if value := os.Getenv("RANDIST_SEED"); value != "" {
		seed, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, errors.ConfigInvalid("RANDIST_SEED must be an unsigned 32-bit integer")
		}
		cfg.Seed = uint32(seed)
		cfg.SeedSet = true
	} else {
		cfg.Seed = generators.TimeSeed()
	}
	return cfg, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port: getEnvOrDefault("PORT", "8080"),
	}
}

func loadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Format: getEnvOrDefault("LOG_FORMAT", logger.FormatLogfmt),
		Level:  getEnvOrDefault("LOG_LEVEL", logger.LevelInfo),
	}
}

// Validate checks cross-field constraints
func (c *Config) Validate() error {
	s := c.Sampling
	if !generators.Has(s.Engine) {
		return errors.ConfigInvalid("unknown engine: " + s.Engine)
	}
	if s.Samples <= 0 {
		return errors.ConfigInvalid("RANDIST_SAMPLES must be positive")
	}
	if s.MaxSamples < s.Samples {
		return errors.ConfigInvalid("RANDIST_MAX_SAMPLES must be at least RANDIST_SAMPLES")
	}
	if s.Concurrency <= 0 {
		return errors.ConfigInvalid("RANDIST_CONCURRENCY must be positive")
	}
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	if !logger.ValidFormat(c.Logging.Format) {
		return errors.ConfigInvalid("unknown LOG_FORMAT: " + c.Logging.Format)
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return errors.ConfigInvalid("unknown LOG_LEVEL: " + c.Logging.Level)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
