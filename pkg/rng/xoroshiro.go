package rng

import (
	"crypto/md5"
	"encoding/binary"
	"math/bits"
)

// Xoroshiro is a Xoroshiro128++ register. Native draws (NextLong, NextInt,
// NextFloat, NextDouble) follow the modern game's XoroshiroRandomSource; the
// J draws reproduce what java.util.Random would return for the same call
// while still advancing this register.
type Xoroshiro struct {
	Lo, Hi uint64
}

// NewXoroshiro returns a register seeded from a 64-bit world seed.
func NewXoroshiro(seed uint64) Xoroshiro {
	var x Xoroshiro
	x.SetSeed(seed)
	return x
}

// SetSeed expands seed into the 128-bit state with the stafford13 mixer.
func (x *Xoroshiro) SetSeed(seed uint64) {
	const (
		xl = 0x9e3779b97f4a7c15
		xh = 0x6a09e667f3bcc909
		a  = 0xbf58476d1ce4e5b9
		b  = 0x94d049bb133111eb
	)
	l := seed ^ xh
	h := l + xl
	l = (l ^ l>>30) * a
	h = (h ^ h>>30) * a
	l = (l ^ l>>27) * b
	h = (h ^ h>>27) * b
	x.Lo = l ^ l>>31
	x.Hi = h ^ h>>31
}

// NextLong advances the register and returns the next 64-bit output.
func (x *Xoroshiro) NextLong() uint64 {
	l, h := x.Lo, x.Hi
	n := bits.RotateLeft64(l+h, 17) + l
	h ^= l
	x.Lo = bits.RotateLeft64(l, 49) ^ h ^ h<<21
	x.Hi = bits.RotateLeft64(h, 28)
	return n
}

// NextInt returns a uniform value in [0, n) using Lemire's multiply-shift
// with rejection of the biased low range.
func (x *Xoroshiro) NextInt(n uint32) int32 {
	r := (x.NextLong() & 0xFFFFFFFF) * uint64(n)
	if uint32(r) < n {
		threshold := -n % n
		for uint32(r) < threshold {
			r = (x.NextLong() & 0xFFFFFFFF) * uint64(n)
		}
	}
	return int32(r >> 32)
}

func (x *Xoroshiro) NextDouble() float64 {
	return float64(x.NextLong()>>(64-53)) * 1.1102230246251565e-16
}

func (x *Xoroshiro) NextFloat() float32 {
	return float32(x.NextLong()>>(64-24)) * 5.9604645e-8
}

// Skip discards n outputs.
func (x *Xoroshiro) Skip(n int) {
	for ; n > 0; n-- {
		x.NextLong()
	}
}

// NextLongJ builds a long from the high halves of two outputs, the way a
// Java Random long is built from two 32-bit draws.
func (x *Xoroshiro) NextLongJ() uint64 {
	a := int32(x.NextLong() >> 32)
	b := int32(x.NextLong() >> 32)
	return uint64(int64(a)<<32 + int64(b))
}

// NextIntJ follows java.util.Random#nextInt(bound) branch for branch, taking
// its 31-bit draws from the top of this register's outputs.
func (x *Xoroshiro) NextIntJ(n uint32) int32 {
	m := int32(n - 1)
	if n&(n-1) == 0 {
		v := uint64(n) * (x.NextLong() >> 33)
		return int32(int64(v) >> 31)
	}
	for {
		b := int32(x.NextLong() >> 33)
		val := b % int32(n)
		if b-val+m >= 0 {
			return val
		}
	}
}

// Fork splits off a positional factory: two outputs become the base state
// that FromHashOf combines with a name hash.
func (x *Xoroshiro) Fork() Xoroshiro {
	lo := x.NextLong()
	hi := x.NextLong()
	return Xoroshiro{Lo: lo, Hi: hi}
}

// FromHashOf derives the register a positional factory hands out for name:
// the md5 digest of name, read as two big-endian words, xored into the base.
func (x Xoroshiro) FromHashOf(name string) Xoroshiro {
	sum := md5.Sum([]byte(name))
	return Xoroshiro{
		Lo: x.Lo ^ binary.BigEndian.Uint64(sum[:8]),
		Hi: x.Hi ^ binary.BigEndian.Uint64(sum[8:]),
	}
}
