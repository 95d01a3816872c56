package ports

import (
	"context"
)

// Generator is the uniform random source every distribution draws from.
//
// Implementations are not safe for concurrent use; callers sharing a
// generator across goroutines must synchronize externally.
type Generator interface {
	// Seed returns the seed the generator was (re)initialized with
	Seed() uint32

	// CanReset reports whether Reset and ResetSeed reproduce the original sequence
	CanReset() bool

	// Reset returns the generator to the state it had right after construction
	Reset() bool

	// ResetSeed reinitializes the generator with a new seed
	ResetSeed(seed uint32) bool

	// Next returns an int in [0, math.MaxInt32)
	Next() int

	// NextInclusiveMaxValue returns an int in [0, math.MaxInt32]
	NextInclusiveMaxValue() int

	// NextMax returns an int in [0, max); fails if max < 0
	NextMax(max int) (int, error)

	// NextRange returns an int in [min, max); fails if max < min
	NextRange(min, max int) (int, error)

	// NextDouble returns a float64 in [0, 1)
	NextDouble() float64

	// NextDoubleMax returns a float64 in [0, max)
	NextDoubleMax(max float64) (float64, error)

	// NextDoubleRange returns a float64 in [min, max)
	NextDoubleRange(min, max float64) (float64, error)

	// NextUInt returns an unrestricted 32-bit value
	NextUInt() uint32

	// NextUIntMax returns a uint32 in [0, max)
	NextUIntMax(max uint32) uint32

	// NextUIntRange returns a uint32 in [min, max); fails if max < min
	NextUIntRange(min, max uint32) (uint32, error)

	// NextBoolean serves 31 booleans from every NextUInt draw
	NextBoolean() bool

	// NextBytes fills buf with random bytes, little-endian per 32-bit draw
	NextBytes(buf []byte)
}

// StreamPort hands out deterministic generators for named streams, so that
// concurrent workers never share generator state
type StreamPort interface {
	// Stream creates a generator for the named engine seeded with seed
	Stream(ctx context.Context, engine string, seed uint32) (Generator, error)

	// Derive computes the seed of the stream at index from a base seed
	Derive(base uint32, index int) uint32
}
