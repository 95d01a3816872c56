package generators

import (
	"encoding/binary"
	"math"

	"randist/internal/errors"
	"randist/ports"
)

const (
	// intToDouble maps a 31-bit value into [0, 1)
	intToDouble = 1.0 / (float64(math.MaxInt32) + 1.0)

	// uintToDouble maps a 32-bit value into [0, 1)
	uintToDouble = 1.0 / (float64(math.MaxUint32) + 1.0)

	// booleanBits is how many booleans one 32-bit draw serves
	booleanBits = 31
)

// Engine is a raw source of uniformly distributed 32-bit words. Engines only
// know how to produce words and how to reinitialize themselves from a seed;
// every ranged or typed value is derived by Generator.
type Engine interface {
	Uint32() uint32
	Reseed(seed uint32)
}

// resettable is implemented by engines that cannot reproduce their sequence
type resettable interface {
	CanReset() bool
}

// Generator implements ports.Generator on top of an Engine. All engines share
// the same derivation of integers, doubles, booleans and bytes from raw words,
// so a given engine word sequence always maps to the same values.
type Generator struct {
	engine Engine
	seed   uint32

	// bit buffer for NextBoolean
	bitBuffer uint32
	bitCount  int
}

var _ ports.Generator = (*Generator)(nil)

// New wraps engine, seeding it with seed.
func New(engine Engine, seed uint32) *Generator {
	engine.Reseed(seed)
	return &Generator{
		engine: engine,
		seed:   seed,
	}
}

// Engine returns the underlying word source
func (g *Generator) Engine() Engine {
	return g.engine
}

func (g *Generator) Seed() uint32 {
	return g.seed
}

func (g *Generator) CanReset() bool {
	if r, ok := g.engine.(resettable); ok {
		return r.CanReset()
	}
	return true
}

func (g *Generator) Reset() bool {
	if !g.CanReset() {
		return false
	}
	g.engine.Reseed(g.seed)
	g.bitBuffer = 0
	g.bitCount = 0
	return true
}

func (g *Generator) ResetSeed(seed uint32) bool {
	if !g.CanReset() {
		return false
	}
	g.seed = seed
	return g.Reset()
}

func (g *Generator) Next() int {
	for {
		v := g.NextInclusiveMaxValue()
		if v != math.MaxInt32 {
			return v
		}
	}
}

func (g *Generator) NextInclusiveMaxValue() int {
	return int(g.engine.Uint32() >> 1)
}

func (g *Generator) NextMax(max int) (int, error) {
	if max < 0 {
		return 0, errors.InvalidArgument("max must be greater than or equal to zero", "max")
	}
	if max > math.MaxInt32 {
		return 0, errors.InvalidArgument("max must fit in 31 bits", "max")
	}
	return int(float64(g.engine.Uint32()>>1) * intToDouble * float64(max)), nil
}

func (g *Generator) NextRange(min, max int) (int, error) {
	if max < min {
		return 0, errors.InvalidArgument("max must be greater than or equal to min", "min", "max")
	}
	if min < math.MinInt32 || max > math.MaxInt32 {
		return 0, errors.InvalidArgument("bounds must fit in 32 bits", "min", "max")
	}

	x := g.engine.Uint32()
	rng := int64(max) - int64(min)
	if rng <= math.MaxInt32 {
		return min + int(float64(x>>1)*intToDouble*float64(rng)), nil
	}

	// the span overflows a signed 32-bit subtraction, so all 32 bits are needed
	return min + int(float64(x)*uintToDouble*float64(rng)), nil
}

func (g *Generator) NextDouble() float64 {
	return float64(g.engine.Uint32()) * uintToDouble
}

func (g *Generator) NextDoubleMax(max float64) (float64, error) {
	if math.IsNaN(max) || max < 0 {
		return 0, errors.InvalidArgument("max must be greater than or equal to zero", "max")
	}
	if math.IsInf(max, 1) {
		return 0, errors.InvalidArgument("range too large", "max")
	}
	return g.NextDouble() * max, nil
}

func (g *Generator) NextDoubleRange(min, max float64) (float64, error) {
	if math.IsNaN(min) || math.IsNaN(max) || max < min {
		return 0, errors.InvalidArgument("max must be greater than or equal to min", "min", "max")
	}
	rng := max - min
	if math.IsInf(rng, 1) {
		return 0, errors.InvalidArgument("range too large", "min", "max")
	}
	return min + g.NextDouble()*rng, nil
}

func (g *Generator) NextUInt() uint32 {
	return g.engine.Uint32()
}

func (g *Generator) NextUIntMax(max uint32) uint32 {
	return uint32(float64(g.engine.Uint32()) * uintToDouble * float64(max))
}

func (g *Generator) NextUIntRange(min, max uint32) (uint32, error) {
	if max < min {
		return 0, errors.InvalidArgument("max must be greater than or equal to min", "min", "max")
	}
	return min + uint32(float64(g.engine.Uint32())*uintToDouble*float64(max-min)), nil
}

// NextBoolean serves the low 31 bits of one draw before drawing again. The
// draw cadence is part of the sequence contract.
func (g *Generator) NextBoolean() bool {
	if g.bitCount == 0 {
		g.bitBuffer = g.engine.Uint32()
		g.bitCount = booleanBits
	}
	b := g.bitBuffer&1 == 1
	g.bitBuffer >>= 1
	g.bitCount--
	return b
}

func (g *Generator) NextBytes(buf []byte) {
	i := 0
	for ; i+4 <= len(buf); i += 4 {
		binary.LittleEndian.PutUint32(buf[i:], g.engine.Uint32())
	}
	if i < len(buf) {
		w := g.engine.Uint32()
		for ; i < len(buf); i++ {
			buf[i] = byte(w)
			w >>= 8
		}
	}
}
