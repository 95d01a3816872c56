package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randist/internal/errors"
)

const sample = `
engine: mt19937
seed: 42
entries:
  - name: heights
    distribution: normal
    params: {mu: 170, sigma: 9.5}
    count: 1000
  - name: arrivals
    distribution: poisson
    engine: xoshiro256
    seed: 7
    params:
      lambda: 3
    count: 200
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	require.Len(t, p.Entries, 2)

	heights := p.Entries[0]
	assert.Equal(t, map[string]string{"mu": "170", "sigma": "9.5"}, heights.Params)
	assert.Equal(t, "mt19937", p.EngineOf(heights))
	assert.Equal(t, uint32(42), p.SeedOf(heights, 1))

	arrivals := p.Entries[1]
	assert.Equal(t, "xoshiro256", p.EngineOf(arrivals))
	assert.Equal(t, uint32(7), p.SeedOf(arrivals, 1))
}

func TestSeedFallback(t *testing.T) {
	p, err := Parse([]byte("entries: [{name: a, distribution: exponential, count: 1}]"))
	require.NoError(t, err)
	assert.Equal(t, uint32(99), p.SeedOf(p.Entries[0], 99))
	assert.Equal(t, "", p.EngineOf(p.Entries[0]))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		param string
	}{
		{"no entries", "engine: alf", "entries"},
		{"unknown plan engine", "engine: lcg\nentries: [{name: a, distribution: normal, count: 1}]", "engine"},
		{"unknown entry engine", "entries: [{name: a, engine: lcg, distribution: normal, count: 1}]", "engine"},
		{"unknown distribution", "entries: [{name: a, distribution: zipf, count: 1}]", "distribution"},
		{"zero count", "entries: [{name: a, distribution: normal}]", "count"},
		{"missing name", "entries: [{distribution: normal, count: 1}]", "name"},
		{"duplicate name", "entries: [{name: a, distribution: normal, count: 1}, {name: a, distribution: gamma, count: 1}]", "name"},
		{"malformed", "entries: [", "plan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Equal(t, []string{tt.param}, errors.GetParams(err))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
