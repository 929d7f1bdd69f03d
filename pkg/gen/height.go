package gen

import (
	"fmt"

	"github.com/OCharnyshevich/biomefinder/pkg/biome"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
	"github.com/OCharnyshevich/biomefinder/pkg/noise"
)

// endCells is the number of 4-block noise cells in an end column.
const endCells = 32

// MapApproxHeight estimates the surface height in blocks and the surface
// biome for a w by h grid of quart columns starting at (x, z). Results are
// row-major with x fastest.
//
// Overworld heights come from the climate depth parameter on the y=0
// plane. End heights are whole blocks taken from the island density: sn is
// the end surface noise for the generator's seed, built on demand when nil.
func (g *Generator) MapApproxHeight(sn *noise.Surface, x, z, w, h int) ([]float32, []biome.ID, error) {
	if !g.seeded {
		return nil, nil, ErrNotSeeded
	}
	if w <= 0 || h <= 0 {
		return nil, nil, fmt.Errorf("approx height %dx%d: %w", w, h, ErrInvalidRange)
	}
	if _, ok := mulChecked(w, h); !ok {
		return nil, nil, fmt.Errorf("approx height %dx%d: %w", w, h, ErrCacheTooLarge)
	}

	switch {
	case g.Dim == mc.Overworld && g.climate != nil:
		return g.overworldHeights(x, z, w, h)
	case g.Dim == mc.End && g.end != nil:
		if sn == nil {
			var err error
			if sn, err = noise.NewSurface(mc.End, g.Seed); err != nil {
				return nil, nil, fmt.Errorf("approx height: %w", err)
			}
		}
		return g.endHeights(sn, x, z, w, h)
	}
	return nil, nil, fmt.Errorf("approx height in %v for %v: %w", g.Dim, g.Version, ErrUnsupported)
}

func (g *Generator) overworldHeights(x, z, w, h int) ([]float32, []biome.ID, error) {
	ys := make([]float32, w*h)
	ids := make([]biome.ID, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			np := g.climate.sample(x+i, 0, z+j)
			ys[j*w+i] = float32(float64(np[Depth]) / 76.0)
			ids[j*w+i] = lookupBiome(g.params, &np)
		}
	}
	return ys, ids, nil
}

type endColumn [endCells + 1]float64

func (e *endSource) column(sn *noise.Surface, cx, cz int, col *endColumn) {
	depth := float64(e.height(cx, cz) - 8)
	for y := 0; y <= endCells; y++ {
		n := sn.Sample(cx, y, cz) + depth
		n = clampedLerp(float64(32+46-y)/64.0, -3000, n)
		n = clampedLerp(float64(y-1)/7.0, -30, n)
		col[y] = n
	}
}

func clampedLerp(part, from, to float64) float64 {
	switch {
	case part <= 0:
		return from
	case part >= 1:
		return to
	}
	return from + float64(part*(to-from))
}

func (g *Generator) endHeights(sn *noise.Surface, x, z, w, h int) ([]float32, []biome.ID, error) {
	ys := make([]float32, w*h)
	ids := make([]biome.ID, w*h)
	cols := make(map[[2]int]*endColumn)
	get := func(cx, cz int) *endColumn {
		k := [2]int{cx, cz}
		if c, ok := cols[k]; ok {
			return c
		}
		c := new(endColumn)
		g.end.column(sn, cx, cz, c)
		cols[k] = c
		return c
	}

	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			bx, bz := (x+i)<<2, (z+j)<<2
			cx, cz := bx>>3, bz>>3
			fx := float64(bx&7) / 8.0
			fz := float64(bz&7) / 8.0

			y := surfaceHeight(get(cx, cz), get(cx, cz+1), get(cx+1, cz), get(cx+1, cz+1), fx, fz)
			ys[j*w+i] = float32(y)
			ids[j*w+i] = g.quartBiome(x+i, 0, z+j)
		}
	}
	return ys, ids, nil
}

// surfaceHeight returns the highest block whose density, interpolated
// within its 4-block cell between the four surrounding columns, is solid.
// Columns are named by their x then z offset.
func surfaceHeight(c00, c01, c10, c11 *endColumn, fx, fz float64) int {
	for cy := endCells - 1; cy >= 0; cy-- {
		for y := 3; y >= 0; y-- {
			fy := float64(y) / 4.0
			v0 := lerp2(fx, fy, c00[cy], c00[cy+1], c10[cy], c10[cy+1])
			v1 := lerp2(fx, fy, c01[cy], c01[cy+1], c11[cy], c11[cy+1])
			if v0+float64(fz*(v1-v0)) > 0 {
				return cy*4 + y
			}
		}
	}
	return 0
}

// lerp2 interpolates along y first between (lo, hi) pairs, then along x.
func lerp2(fx, fy, lo0, hi0, lo1, hi1 float64) float64 {
	a := lo0 + float64(fy*(hi0-lo0))
	b := lo1 + float64(fy*(hi1-lo1))
	return a + float64(fx*(b-a))
}
