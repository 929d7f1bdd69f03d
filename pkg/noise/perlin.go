// Package noise builds the seeded gradient noise fields used by biome and
// terrain generation: improved Perlin noise, octave stacks, the two-stack
// "double" noise of the 1.18 climate, 2D simplex noise and the blended
// three-stack surface noise.
package noise

import (
	"math"

	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

// grad3 holds the 16 gradient vectors of improved noise; the first 12 are
// the cube edge directions and the last 4 repeat some of them.
var grad3 = [16][3]float64{
	{1, 1, 0},
	{-1, 1, 0},
	{1, -1, 0},
	{-1, -1, 0},
	{1, 0, 1},
	{-1, 0, 1},
	{1, 0, -1},
	{-1, 0, -1},
	{0, 1, 1},
	{0, -1, 1},
	{0, 1, -1},
	{0, -1, -1},
	{1, 1, 0},
	{0, -1, 1},
	{-1, 1, 0},
	{0, -1, -1},
}

// Perlin is one octave of improved noise: random coordinate offsets, a
// shuffled permutation table and the octave's weight within its stack.
type Perlin struct {
	A, B, C    float64
	Amplitude  float64
	Lacunarity float64
	D          [256]uint8

	// y-lattice data for samples on the y=0 plane, computed once from B.
	H2 uint8
	D2 float64
	T2 float64
}

// NewPerlin draws an octave from a legacy register.
func NewPerlin(r *rng.Lcg) Perlin {
	var p Perlin
	p.A = r.NextDouble() * 256.0
	p.B = r.NextDouble() * 256.0
	p.C = r.NextDouble() * 256.0
	p.shuffle(func(n int) int { return int(r.NextInt(int32(n))) })
	return p
}

// NewPerlinX draws an octave from a Xoroshiro register.
func NewPerlinX(x *rng.Xoroshiro) Perlin {
	var p Perlin
	p.A = x.NextDouble() * 256.0
	p.B = x.NextDouble() * 256.0
	p.C = x.NextDouble() * 256.0
	p.shuffle(func(n int) int { return int(x.NextInt(uint32(n))) })
	return p
}

func (p *Perlin) shuffle(nextInt func(int) int) {
	p.Amplitude = 1
	p.Lacunarity = 1
	for i := range p.D {
		p.D[i] = uint8(i)
	}
	for i := 0; i < 256; i++ {
		j := nextInt(256-i) + i
		p.D[i], p.D[j] = p.D[j], p.D[i]
	}
	i2 := math.Floor(p.B)
	p.D2 = p.B - i2
	p.H2 = uint8(int(i2))
	p.T2 = smooth(p.D2)
}

func (p *Perlin) perm(i int) int {
	return int(p.D[i&255])
}

// Sample evaluates the noise at (x, y, z). A non-zero yamp snaps the y
// fraction down to a multiple of yamp (bounded by ymin) while the smoothing
// weight keeps the unsnapped fraction, as the game's vertical slice sampling
// does. Samples at y == 0 use the lattice data precomputed at construction.
func (p *Perlin) Sample(x, y, z, yamp, ymin float64) float64 {
	var h2 int
	var d2, t2 float64
	if y == 0 {
		h2, d2, t2 = int(p.H2), p.D2, p.T2
	} else {
		y += p.B
		i2 := math.Floor(y)
		d2 = y - i2
		h2 = int(i2)
		t2 = smooth(d2)
	}

	x += p.A
	z += p.C
	i1 := math.Floor(x)
	i3 := math.Floor(z)
	d1 := x - i1
	d3 := z - i3
	h1 := int(i1)
	h3 := int(i3)
	t1 := smooth(d1)
	t3 := smooth(d3)

	if yamp != 0 {
		m := d2
		if ymin >= 0 && ymin < d2 {
			m = ymin
		}
		d2 -= math.Floor(m/yamp+float64(float32(1e-7))) * yamp
	}

	l := p.perm(h1)
	m := p.perm(h1 + 1)
	n := p.perm(l + h2)
	o := p.perm(l + h2 + 1)
	q := p.perm(m + h2)
	s := p.perm(m + h2 + 1)

	v000 := gradDot(p.perm(n+h3), d1, d2, d3)
	v100 := gradDot(p.perm(q+h3), d1-1, d2, d3)
	v010 := gradDot(p.perm(o+h3), d1, d2-1, d3)
	v110 := gradDot(p.perm(s+h3), d1-1, d2-1, d3)
	v001 := gradDot(p.perm(n+h3+1), d1, d2, d3-1)
	v101 := gradDot(p.perm(q+h3+1), d1-1, d2, d3-1)
	v011 := gradDot(p.perm(o+h3+1), d1, d2-1, d3-1)
	v111 := gradDot(p.perm(s+h3+1), d1-1, d2-1, d3-1)

	lo := lerp(t2, lerp(t1, v000, v100), lerp(t1, v010, v110))
	hi := lerp(t2, lerp(t1, v001, v101), lerp(t1, v011, v111))
	return lerp(t3, lo, hi)
}

func gradDot(hash int, x, y, z float64) float64 {
	g := &grad3[hash&15]
	return g[0]*x + g[1]*y + g[2]*z
}

// The float64 conversions stop the compiler from fusing multiply-adds.
func lerp(t, a, b float64) float64 {
	return a + float64(t*(b-a))
}

func smooth(d float64) float64 {
	return d * d * d * float64(d*float64(d*6.0-15.0)+10.0)
}

// wrapCoord keeps coordinates inside the range where doubles still resolve
// the lattice, mirroring the game's precision wrap.
func wrapCoord(d float64) float64 {
	const period = 33554432.0
	return d - math.Floor(d/period+0.5)*period
}

func clampedLerp(part, from, to float64) float64 {
	if part <= 0 {
		return from
	}
	if part >= 1 {
		return to
	}
	return lerp(part, from, to)
}
