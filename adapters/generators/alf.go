package generators

import (
	"gonum.org/v1/gonum/mathext/prng"

	"randist/internal/errors"
)

const (
	// DefaultLongLag is the long lag of the additive lagged Fibonacci engine
	DefaultLongLag = 1279

	// DefaultShortLag is the short lag of the additive lagged Fibonacci engine
	DefaultShortLag = 418
)

// ALF is an additive lagged Fibonacci engine, x[n] = x[n-long] + x[n-short]
// mod 2^32. The state is a circular buffer of longLag words that is refilled
// in place once the read cursor reaches its end.
type ALF struct {
	x        []uint32
	longLag  int
	shortLag int
	index    int
}

// NewALFEngine returns an unseeded ALF engine with the given lags.
func NewALFEngine(longLag, shortLag int) (*ALF, error) {
	if shortLag <= 0 {
		return nil, errors.InvalidArgument("short lag must be positive", "shortLag")
	}
	if longLag <= shortLag {
		return nil, errors.InvalidArgument("long lag must be greater than short lag", "longLag", "shortLag")
	}
	return &ALF{
		x:        make([]uint32, longLag),
		longLag:  longLag,
		shortLag: shortLag,
		index:    longLag,
	}, nil
}

// Reseed draws the initial buffer from a Mersenne Twister seeded with the
// same seed.
func (a *ALF) Reseed(seed uint32) {
	mt := prng.NewMT19937()
	mt.Seed(uint64(seed))
	for i := range a.x {
		a.x[i] = mt.Uint32()
	}
	a.index = a.longLag
}

func (a *ALF) Uint32() uint32 {
	if a.index >= a.longLag {
		a.fill()
	}
	v := a.x[a.index]
	a.index++
	return v
}

// fill regenerates the whole buffer. The first loop reads lagged values from
// the previous generation, the second from the current one, so no modulo is
// needed.
func (a *ALF) fill() {
	long, short := a.longLag, a.shortLag
	for i := 0; i < short; i++ {
		a.x[i] += a.x[i+long-short]
	}
	for i := short; i < long; i++ {
		a.x[i] += a.x[i-short]
	}
	a.index = 0
}

// NewALF returns an ALF generator with the default lags.
func NewALF(seed uint32) *Generator {
	engine, _ := NewALFEngine(DefaultLongLag, DefaultShortLag)
	return New(engine, seed)
}

// NewALFWithLags returns an ALF generator with custom lags.
func NewALFWithLags(seed uint32, longLag, shortLag int) (*Generator, error) {
	engine, err := NewALFEngine(longLag, shortLag)
	if err != nil {
		return nil, err
	}
	return New(engine, seed), nil
}
