package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randist/internal/errors"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"RANDIST_ENGINE", "RANDIST_SEED", "RANDIST_SAMPLES", "RANDIST_MAX_SAMPLES",
		"RANDIST_CONCURRENCY", "PORT", "LOG_FORMAT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "xorshift128", cfg.Sampling.Engine)
	assert.False(t, cfg.Sampling.SeedSet)
	assert.Equal(t, 1000, cfg.Sampling.Samples)
	assert.Equal(t, 1_000_000, cfg.Sampling.MaxSamples)
	assert.Equal(t, 4, cfg.Sampling.Concurrency)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "logfmt", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("RANDIST_ENGINE", "MT19937")
	t.Setenv("RANDIST_SEED", "4294967295")
	t.Setenv("RANDIST_SAMPLES", "10")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "MT19937", cfg.Sampling.Engine)
	assert.True(t, cfg.Sampling.SeedSet)
	assert.Equal(t, uint32(4294967295), cfg.Sampling.Seed)
	assert.Equal(t, 10, cfg.Sampling.Samples)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown engine", "RANDIST_ENGINE", "lcg"},
		{"seed too large", "RANDIST_SEED", "4294967296"},
		{"negative seed", "RANDIST_SEED", "-1"},
		{"zero samples", "RANDIST_SAMPLES", "0"},
		{"max below samples", "RANDIST_MAX_SAMPLES", "5"},
		{"zero concurrency", "RANDIST_CONCURRENCY", "0"},
		{"bad format", "LOG_FORMAT", "xml"},
		{"bad level", "LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestReadDefersValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("RANDIST_ENGINE", "bogus")

	cfg, err := Read()
	require.NoError(t, err)
	assert.Equal(t, "bogus", cfg.Sampling.Engine)
	require.Error(t, cfg.Validate())

	cfg.Sampling.Engine = "mt19937"
	assert.NoError(t, cfg.Validate())

	t.Setenv("RANDIST_SEED", "not a seed")
	_, err = Read()
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}
