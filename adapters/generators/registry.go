package generators

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/mathext/prng"

	"randist/internal/errors"
	"randist/ports"
)

// DefaultEngine is used when no engine is named
const DefaultEngine = "xorshift128"

var engines = map[string]func(seed uint32) *Generator{
	"alf":         NewALF,
	"mt19937":     NewMT19937,
	"mt19937_64":  NewMT19937_64,
	"nr3":         NewNR3,
	"nr3q1":       NewNR3Q1,
	"nr3q2":       NewNR3Q2,
	"splitmix64":  NewSplitMix64,
	"standard":    NewStandard,
	"xorshift128": NewXorShift128,
	"xoshiro256":  NewXoshiro256,
}

// Names lists the registered engine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether an engine is registered under name.
func Has(name string) bool {
	_, ok := engines[normalize(name)]
	return ok
}

// ByName creates a generator for the named engine.
func ByName(name string, seed uint32) (*Generator, error) {
	factory, ok := engines[normalize(name)]
	if !ok {
		return nil, errors.InvalidArgument("unknown generator engine "+name, "engine")
	}
	return factory(seed), nil
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultEngine
	}
	return name
}

var seedCounter atomic.Uint32

// TimeSeed derives a seed from the clock. Successive calls within the same
// clock tick still return different seeds.
func TimeSeed() uint32 {
	n := uint64(time.Now().UnixNano())
	return uint32(n) ^ uint32(n>>32) ^ (seedCounter.Add(1) * 0x9e3779b9)
}

// NewDefault returns a generator of the default engine seeded from the clock.
func NewDefault() *Generator {
	return NewXorShift128(TimeSeed())
}

// NewDefaultSeeded returns a generator of the default engine.
func NewDefaultSeeded(seed uint32) *Generator {
	return NewXorShift128(seed)
}

// Streams hands out independent generators for concurrent workers.
type Streams struct{}

var _ ports.StreamPort = Streams{}

func (Streams) Stream(ctx context.Context, engine string, seed uint32) (ports.Generator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, err := ByName(engine, seed)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Derive mixes the base seed and the stream index through SplitMix64 so
// neighbouring streams get unrelated seeds.
func (Streams) Derive(base uint32, index int) uint32 {
	sm := prng.NewSplitMix64(uint64(base)<<32 | uint64(uint32(index)))
	return uint32(sm.Uint64() >> 32)
}
