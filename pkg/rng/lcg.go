// Package rng implements the two seeded random streams used by world
// generation: the 48-bit linear congruential generator behind the game's
// legacy java.util.Random, and the Xoroshiro128++ generator introduced with
// the 1.18 noise pipeline.
package rng

import "math"

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = 1<<48 - 1
)

// Lcg is a java.util.Random compatible register. The zero value is a valid
// register holding state 0; use NewLcg or SetSeed to seed it the way Java does.
type Lcg struct {
	state uint64
}

// NewLcg returns a register seeded with seed.
func NewLcg(seed uint64) Lcg {
	var r Lcg
	r.SetSeed(seed)
	return r
}

// LcgFromState wraps a raw 48-bit state without scrambling it.
func LcgFromState(state uint64) Lcg {
	return Lcg{state: state & lcgMask}
}

// SetSeed scrambles seed and stores its low 48 bits.
func (r *Lcg) SetSeed(seed uint64) {
	r.state = (seed ^ lcgMultiplier) & lcgMask
}

// State returns the raw 48-bit register.
func (r *Lcg) State() uint64 { return r.state }

// Next advances the register and returns its top bits as a signed value.
func (r *Lcg) Next(bits int) int32 {
	r.state = (r.state*lcgMultiplier + lcgAddend) & lcgMask
	return int32(int64(r.state) >> (48 - bits))
}

// NextInt returns a uniform value in [0, n). n must be positive.
func (r *Lcg) NextInt(n int32) int32 {
	m := n - 1
	if n&m == 0 {
		x := int64(n) * int64(r.Next(31))
		return int32(x >> 31)
	}
	var bits, val int32
	for {
		bits = r.Next(31)
		val = bits % n
		if bits-val+m >= 0 {
			return val
		}
	}
}

// NextLong combines two 32-bit draws, high word first.
func (r *Lcg) NextLong() int64 {
	hi := int64(r.Next(32))
	lo := int64(r.Next(32))
	return hi<<32 + lo
}

// NextFloat returns a uniform float32 in [0, 1) with 24 bits of precision.
func (r *Lcg) NextFloat() float32 {
	return float32(r.Next(24)) / (1 << 24)
}

// NextDouble returns a uniform float64 in [0, 1) with 53 bits of precision.
func (r *Lcg) NextDouble() float64 {
	x := uint64(r.Next(26))
	x <<= 27
	x += uint64(r.Next(27))
	return float64(x) * 1.1102230246251565e-16
}

// Skip advances the register by n draws.
func (r *Lcg) Skip(n int) {
	m, a := skipCoefficients(n)
	r.state = (r.state*m + a) & lcgMask
}

// skipCoefficients folds n consecutive LCG steps into one affine step.
func skipCoefficients(n int) (mul, add uint64) {
	mul, add = 1, 0
	im, ia := uint64(lcgMultiplier), uint64(lcgAddend)
	for k := uint64(n); k > 0; k >>= 1 {
		if k&1 != 0 {
			mul *= im
			add = im*add + ia
		}
		ia = (im + 1) * ia
		im *= im
	}
	return mul & lcgMask, add & lcgMask
}

// LargeFeatureSeed seeds r the way structure generation derives a
// per-chunk register: two longs are drawn from the world seed and mixed
// with the chunk coordinates.
func LargeFeatureSeed(seed uint64, chunkX, chunkZ int) Lcg {
	r := NewLcg(seed)
	a := uint64(r.NextLong())
	b := uint64(r.NextLong())
	r.SetSeed(uint64(int64(chunkX))*a ^ uint64(int64(chunkZ))*b ^ seed)
	return r
}

// JavaRound mirrors Math.round for doubles.
func JavaRound(x float64) int {
	return int(math.Floor(x + 0.5))
}
