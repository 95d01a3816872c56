package generators

import (
	"gonum.org/v1/gonum/mathext/prng"
)

// MT19937 adapts the gonum 32-bit Mersenne Twister to Engine.
type MT19937 struct {
	src *prng.MT19937
}

func NewMT19937Engine() *MT19937 {
	return &MT19937{src: prng.NewMT19937()}
}

func (e *MT19937) Reseed(seed uint32) {
	e.src.Seed(uint64(seed))
}

func (e *MT19937) Uint32() uint32 {
	return e.src.Uint32()
}

// source64 is the shape shared by the 64-bit gonum sources
type source64 interface {
	Seed(seed uint64)
	Uint64() uint64
}

// Wide adapts a 64-bit source to Engine by keeping the high word of every
// draw, which is the better-mixed half for all of the gonum sources.
type Wide struct {
	src source64
}

func (e *Wide) Reseed(seed uint32) {
	e.src.Seed(uint64(seed))
}

func (e *Wide) Uint32() uint32 {
	return uint32(e.src.Uint64() >> 32)
}

func NewMT19937(seed uint32) *Generator {
	return New(NewMT19937Engine(), seed)
}

func NewMT19937_64(seed uint32) *Generator {
	return New(&Wide{src: prng.NewMT19937_64()}, seed)
}

func NewXoshiro256(seed uint32) *Generator {
	return New(&Wide{src: prng.NewXoshiro256starstar(uint64(seed))}, seed)
}

func NewSplitMix64(seed uint32) *Generator {
	return New(&Wide{src: prng.NewSplitMix64(uint64(seed))}, seed)
}
