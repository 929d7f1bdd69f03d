package noise

import (
	"math"

	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

// Skew factors are computed at run time so they round exactly like the
// game's static initializers.
var (
	f2 = 0.5 * (math.Sqrt(3.0) - 1.0)
	g2 = (3.0 - math.Sqrt(3.0)) / 6.0
)

// Simplex produces deterministic 2D simplex noise. Seeding draws the same
// offsets and permutation as an improved-noise octave; the offsets are not
// applied to 2D samples.
type Simplex struct {
	A, B, C float64
	perm    [512]int
}

// NewSimplex creates a simplex field from a legacy register.
func NewSimplex(r *rng.Lcg) *Simplex {
	p := NewPerlin(r)
	s := &Simplex{A: p.A, B: p.B, C: p.C}

	// Double the permutation table for wrapping.
	for i := 0; i < 512; i++ {
		s.perm[i] = int(p.D[i&255])
	}
	return s
}

// Noise2D returns 2D simplex noise for the given coordinates.
// Output is in the range [-1, 1].
func (s *Simplex) Noise2D(x, y float64) float64 {
	// Skew input space to determine simplex cell.
	d := (x + y) * f2
	i := fastFloor(x + d)
	j := fastFloor(y + d)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Determine which simplex we are in.
	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255
	gi0 := s.perm[ii+s.perm[jj]] % 12
	gi1 := s.perm[ii+i1+s.perm[jj+j1]] % 12
	gi2 := s.perm[ii+1+s.perm[jj+1]] % 12

	return 70.0 * (corner(gi0, x0, y0) + corner(gi1, x1, y1) + corner(gi2, x2, y2))
}

func corner(gi int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * dot2(grad3[gi], x, y)
}

func dot2(g [3]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
