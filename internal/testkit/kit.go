package testkit

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"

	"randist/adapters/generators"
)

// TestKit provides testing utilities and fixtures shared by the generator
// and distribution test suites
type TestKit struct {
	Seed uint32 // seed every fixture generator starts from
}

// NewTestKit creates a new test kit instance with a fixed seed
func NewTestKit(seed uint32) *TestKit {
	return &TestKit{Seed: seed}
}

// Generators returns one fresh generator per registered engine
func (k *TestKit) Generators() map[string]*generators.Generator {
	out := make(map[string]*generators.Generator)
	for _, name := range generators.Names() {
		g, err := generators.ByName(name, k.Seed)
		if err != nil {
			panic(err) // registry names always resolve
		}
		out[name] = g
	}
	return out
}

// Generator returns a fresh generator of the default engine
func (k *TestKit) Generator() *generators.Generator {
	return generators.NewDefaultSeeded(k.Seed)
}

// CountingEngine wraps an engine and counts raw draws
type CountingEngine struct {
	Inner   generators.Engine
	Draws   int
	Reseeds int
}

// NewCountingEngine wraps inner
func NewCountingEngine(inner generators.Engine) *CountingEngine {
	return &CountingEngine{Inner: inner}
}

func (c *CountingEngine) Uint32() uint32 {
	c.Draws++
	return c.Inner.Uint32()
}

func (c *CountingEngine) Reseed(seed uint32) {
	c.Reseeds++
	c.Inner.Reseed(seed)
}

// ScriptedEngine replays a fixed word sequence, cycling when exhausted
type ScriptedEngine struct {
	Words   []uint32
	NoReset bool // report CanReset == false

	pos int
}

// NewScriptedEngine returns an engine replaying words
func NewScriptedEngine(words ...uint32) *ScriptedEngine {
	return &ScriptedEngine{Words: words}
}

func (s *ScriptedEngine) Uint32() uint32 {
	w := s.Words[s.pos%len(s.Words)]
	s.pos++
	return w
}

func (s *ScriptedEngine) Reseed(uint32) {
	s.pos = 0
}

func (s *ScriptedEngine) CanReset() bool {
	return !s.NoReset
}

// Moments returns the sample mean and sample variance
func Moments(t testing.TB, samples []float64) (mean, variance float64) {
	t.Helper()
	mean, err := stats.Mean(samples)
	if err != nil {
		t.Fatalf("Failed to compute mean: %v", err)
	}
	variance, err = stats.SampleVariance(samples)
	if err != nil {
		t.Fatalf("Failed to compute variance: %v", err)
	}
	return mean, variance
}

// Floats converts integer samples for the float-based statistics helpers
func Floats(ints []int) []float64 {
	out := make([]float64, len(ints))
	for i, v := range ints {
		out[i] = float64(v)
	}
	return out
}

// Close reports whether actual is within relTol of expected, falling back
// to an absolute tolerance when expected is zero
func Close(expected, actual, relTol float64) bool {
	if expected == 0 {
		return math.Abs(actual) <= relTol
	}
	return math.Abs(actual-expected) <= relTol*math.Abs(expected)
}

// RequireClose fails the test when actual is not within relTol of expected
func RequireClose(t testing.TB, what string, expected, actual, relTol float64) {
	t.Helper()
	if !Close(expected, actual, relTol) {
		t.Errorf("%s: expected %.6f within %.1f%%, got %.6f", what, expected, relTol*100, actual)
	}
}
