package generators

// Generators from Numerical Recipes, 3rd edition, section 7.1. All three
// produce 64-bit words; the low 32 bits are used.

const nr3Seed = 4101842887655102017

// NR3 is the full-strength "Ran" generator combining an LCG, a xorshift
// and a multiply-with-carry.
type NR3 struct {
	u, v, w uint64
}

func (e *NR3) Reseed(seed uint32) {
	e.v = nr3Seed
	e.w = 1
	e.u = uint64(seed) ^ e.v
	e.next()
	e.v = e.u
	e.next()
	e.w = e.v
	e.next()
}

func (e *NR3) next() uint64 {
	e.u = e.u*2862933555777941757 + 7046029254386353087
	e.v ^= e.v >> 17
	e.v ^= e.v << 31
	e.v ^= e.v >> 8
	e.w = 4294957665*(e.w&0xffffffff) + (e.w >> 32)
	x := e.u ^ (e.u << 21)
	x ^= x >> 35
	x ^= x << 4
	return (x + e.v) ^ e.w
}

func (e *NR3) Uint32() uint32 {
	return uint32(e.next())
}

// NR3Q1 is the "Ranq1" generator, a xorshift followed by a multiplication.
type NR3Q1 struct {
	v uint64
}

func (e *NR3Q1) Reseed(seed uint32) {
	e.v = nr3Seed
	e.v ^= uint64(seed)
	e.v = e.next()
}

func (e *NR3Q1) next() uint64 {
	e.v ^= e.v >> 21
	e.v ^= e.v << 35
	e.v ^= e.v >> 4
	return e.v * 2685821657736338717
}

func (e *NR3Q1) Uint32() uint32 {
	return uint32(e.next())
}

// NR3Q2 is the "Ranq2" generator, a xorshift combined with a
// multiply-with-carry.
type NR3Q2 struct {
	v, w uint64
}

func (e *NR3Q2) Reseed(seed uint32) {
	e.v = nr3Seed
	e.w = 1
	e.v ^= uint64(seed)
	e.w = e.next()
	e.v = e.next()
}

func (e *NR3Q2) next() uint64 {
	e.v ^= e.v >> 17
	e.v ^= e.v << 31
	e.v ^= e.v >> 8
	e.w = 4294957665*(e.w&0xffffffff) + (e.w >> 32)
	return e.v ^ e.w
}

func (e *NR3Q2) Uint32() uint32 {
	return uint32(e.next())
}

func NewNR3(seed uint32) *Generator {
	return New(&NR3{}, seed)
}

func NewNR3Q1(seed uint32) *Generator {
	return New(&NR3Q1{}, seed)
}

func NewNR3Q2(seed uint32) *Generator {
	return New(&NR3Q2{}, seed)
}
