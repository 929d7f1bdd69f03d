package gen

import (
	"math"

	"github.com/OCharnyshevich/biomefinder/pkg/biome"
	"github.com/OCharnyshevich/biomefinder/pkg/noise"
	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

// endSource places the outer islands of the end from a simplex field.
type endSource struct {
	islands *noise.Simplex
}

func newEndSource(seed uint64) *endSource {
	r := rng.NewLcg(seed)
	r.Skip(17292)
	return &endSource{islands: noise.NewSimplex(&r)}
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// height returns the island height field at noise cell (x, z), one cell per
// eight blocks. Squares use 32-bit wrapping arithmetic like the game.
func (e *endSource) height(x, z int) float32 {
	hx, hz := x/2, z/2
	ox, oz := x%2, z%2

	x32, z32 := int32(x), int32(z)
	f := 100 - float32(sqrt32(float32(x32*x32+z32*z32))*8)
	f = clamp32(f, -100, 80)

	threshold := float64(float32(-0.9))
	for i := -12; i <= 12; i++ {
		for j := -12; j <= 12; j++ {
			rx := int64(hx + i)
			rz := int64(hz + j)
			if rx*rx+rz*rz <= 4096 || !(e.islands.Noise2D(float64(rx), float64(rz)) < threshold) {
				continue
			}
			g := float32(math.Mod(float64(float32(float32(abs32(float32(rx))*3439)+float32(abs32(float32(rz))*147))), 13)) + 9
			h := float32(ox - i*2)
			s := float32(oz - j*2)
			t := 100 - float32(sqrt32(float32(float32(h*h)+float32(s*s)))*g)
			t = clamp32(t, -100, 80)
			f = max32(f, t)
		}
	}
	return f
}

// biomeAt maps quart coordinates to an end biome.
func (e *endSource) biomeAt(x, z int) biome.ID {
	cx, cz := x>>2, z>>2
	if int64(cx)*int64(cx)+int64(cz)*int64(cz) <= 4096 {
		return biome.TheEnd
	}
	h := e.height(cx*2+1, cz*2+1)
	switch {
	case h > 40:
		return biome.EndHighlands
	case h >= 0:
		return biome.EndMidlands
	case h < -20:
		return biome.SmallEndIslands
	}
	return biome.EndBarrens
}
