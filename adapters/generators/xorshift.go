package generators

// XorShift128 is Marsaglia's xorshift generator with a 128-bit state. The
// seed replaces the first state word; the others start from fixed values.
type XorShift128 struct {
	x, y, z, w uint32
}

const (
	xorShiftY = 362436069
	xorShiftZ = 521288629
	xorShiftW = 88675123
)

func (e *XorShift128) Reseed(seed uint32) {
	e.x = seed
	e.y = xorShiftY
	e.z = xorShiftZ
	e.w = xorShiftW
}

func (e *XorShift128) Uint32() uint32 {
	t := e.x ^ (e.x << 11)
	e.x, e.y, e.z = e.y, e.z, e.w
	e.w = e.w ^ (e.w >> 19) ^ (t ^ (t >> 8))
	return e.w
}

// NewXorShift128 returns a XorShift128 generator.
func NewXorShift128(seed uint32) *Generator {
	return New(&XorShift128{}, seed)
}
