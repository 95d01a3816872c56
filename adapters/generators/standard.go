package generators

import (
	"math/rand/v2"
)

// pcgIncrement is the second PCG seed word, fixed so a single 32-bit seed
// selects the stream.
const pcgIncrement = 0xda3e39cb94b95bdb

// Standard wraps the runtime's PCG source.
type Standard struct {
	src *rand.PCG
}

func (e *Standard) Reseed(seed uint32) {
	if e.src == nil {
		e.src = rand.NewPCG(uint64(seed), pcgIncrement)
		return
	}
	e.src.Seed(uint64(seed), pcgIncrement)
}

func (e *Standard) Uint32() uint32 {
	return uint32(e.src.Uint64() >> 32)
}

func NewStandard(seed uint32) *Generator {
	return New(&Standard{}, seed)
}
