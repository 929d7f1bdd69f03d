package gen

import (
	"fmt"
	"math"

	"github.com/OCharnyshevich/biomefinder/pkg/biome"
)

// Range is an axis-aligned box of sample points. X, Z and their extents are
// in units of Scale blocks; Y is in blocks at scale 1 and in quarts
// otherwise. SY <= 0 is treated as 1.
type Range struct {
	Scale      int
	X, Y, Z    int
	SX, SY, SZ int
}

func (r Range) height() int {
	if r.SY <= 0 {
		return 1
	}
	return r.SY
}

// Len is the number of sample points in the range.
func (r Range) Len() int {
	return r.SX * r.height() * r.SZ
}

// Index returns the cache offset of the sample point (x, y, z), which must
// lie inside the range. Rows run along x, then z, then y.
func (r Range) Index(x, y, z int) int {
	return ((y-r.Y)*r.SZ+(z-r.Z))*r.SX + (x - r.X)
}

// Contains reports whether (x, y, z) is a sample point of the range.
func (r Range) Contains(x, y, z int) bool {
	return x >= r.X && x < r.X+r.SX &&
		y >= r.Y && y < r.Y+r.height() &&
		z >= r.Z && z < r.Z+r.SZ
}

func (r Range) validate() error {
	if !validScale(r.Scale) {
		return fmt.Errorf("scale %d: %w", r.Scale, ErrInvalidRange)
	}
	if r.SX <= 0 || r.SZ <= 0 {
		return fmt.Errorf("extent %dx%d: %w", r.SX, r.SZ, ErrInvalidRange)
	}
	return nil
}

// zoomSource is the quart range the biome zoom of a scale 1 range reads.
func (r Range) zoomSource() Range {
	src := Range{Scale: 4}
	axis := func(o, n int) (int, int) {
		o -= 2
		s := o >> 2
		return s, ((o + n) >> 2) - s + 2
	}
	src.X, src.SX = axis(r.X, r.SX)
	src.Y, src.SY = axis(r.Y, r.height())
	src.Z, src.SZ = axis(r.Z, r.SZ)
	return src
}

func mulChecked(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt32/a {
		return 0, false
	}
	return a * b, true
}

func volume(r Range) (int, bool) {
	n, ok := mulChecked(r.SX, r.height())
	if !ok {
		return 0, false
	}
	return mulChecked(n, r.SZ)
}

// MinCacheSize returns the cache length GenBiomes needs for r: the sample
// points plus scratch. Zoomed scale 1 ranges keep their quart source grid
// there and the legacy layers keep every intermediate layer's padded area.
func (g *Generator) MinCacheSize(r Range) (int, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	n, err := g.cacheSize(r)
	if err != nil {
		return 0, err
	}

	limit := g.MaxCache
	if limit <= 0 {
		limit = DefaultMaxCache
	}
	if n > limit {
		return 0, fmt.Errorf("%d cells exceed limit %d: %w", n, limit, ErrCacheTooLarge)
	}
	return n, nil
}

func (g *Generator) cacheSize(r Range) (int, error) {
	n, ok := volume(r)
	if !ok {
		return 0, fmt.Errorf("range %dx%dx%d: %w", r.SX, r.height(), r.SZ, ErrCacheTooLarge)
	}

	var extra int
	switch {
	case g.layered():
		extra, ok = g.layerScratch(r)
	case r.Scale == 1 && g.voronoi():
		extra, ok = volume(r.zoomSource())
	}
	if !ok || n > math.MaxInt32-extra {
		return 0, fmt.Errorf("scratch of %dx%dx%d: %w", r.SX, r.height(), r.SZ, ErrCacheTooLarge)
	}
	return n + extra, nil
}

// AllocCache allocates a cache sized for r.
func (g *Generator) AllocCache(r Range) ([]biome.ID, error) {
	n, err := g.MinCacheSize(r)
	if err != nil {
		return nil, err
	}
	return make([]biome.ID, n), nil
}

// GenBiomes fills cache with the biomes of r and returns how many leading
// entries are sample points; anything after them is scratch space.
func (g *Generator) GenBiomes(cache []biome.ID, r Range) (int, error) {
	if !g.seeded {
		return 0, ErrNotSeeded
	}
	need, err := g.MinCacheSize(r)
	if err != nil {
		return 0, fmt.Errorf("gen biomes: %w", err)
	}
	if len(cache) < need {
		return 0, fmt.Errorf("gen biomes: cache holds %d, need %d: %w", len(cache), need, ErrShortCache)
	}

	n := r.Len()
	sy := r.height()

	if g.layered() {
		g.genLayers(cache, r)
		return n, nil
	}
	if r.Scale == 1 && g.voronoi() {
		src := r.zoomSource()
		grid := cache[n : n+src.Len()]
		g.fill(grid, src)
		for k := 0; k < sy; k++ {
			for j := 0; j < r.SZ; j++ {
				for i := 0; i < r.SX; i++ {
					qx, qy, qz := voronoiCell(g.sha, r.X+i, r.Y+k, r.Z+j)
					cache[(k*r.SZ+j)*r.SX+i] = grid[src.Index(qx, qy, qz)]
				}
			}
		}
		return n, nil
	}

	g.fill(cache[:n], r)
	return n, nil
}

func (g *Generator) fill(out []biome.ID, r Range) {
	idx := 0
	for k := 0; k < r.height(); k++ {
		for j := 0; j < r.SZ; j++ {
			for i := 0; i < r.SX; i++ {
				out[idx] = g.sampleAt(r.Scale, r.X+i, r.Y+k, r.Z+j)
				idx++
			}
		}
	}
}

func (s *layerStack) entry(scale int) *layer {
	switch scale {
	case 1:
		return s.e1
	case 4:
		return s.e4
	case 16:
		return s.e16
	case 64:
		return s.e64
	}
	return s.e256
}

func plane(r Range) area {
	return area{r.X, r.Z, r.SX, r.SZ}
}

// layerScratch is the scratch a layered query needs past its sample points.
// From 1.15 the scale 1 zoom reads a quart grid produced by the scale 4
// entry, older versions zoom inside the layers.
func (g *Generator) layerScratch(r Range) (int, bool) {
	if r.Scale == 1 && g.voronoi() {
		src := plane(r.zoomSource())
		n, ok := mulChecked(src.w, src.h)
		if !ok {
			return 0, false
		}
		return n + g.layers.e4.scratch(src), true
	}
	return g.layers.entry(r.Scale).scratch(plane(r)), true
}

// genLayers runs the layers over the horizontal plane of r. Layered biomes
// do not vary with height, so the plane repeats for every y; only the 1.15
// zoom picks its quart cell in three dimensions.
func (g *Generator) genLayers(cache []biome.ID, r Range) {
	n := r.Len()
	a := plane(r)
	if r.Scale == 1 && g.voronoi() {
		src := plane(r.zoomSource())
		q := grid{v: cache[n : n+src.size()], area: src}
		g.layers.e4.gen(q.v, cache[n+src.size():], src)
		idx := 0
		for k := 0; k < r.height(); k++ {
			for j := 0; j < r.SZ; j++ {
				for i := 0; i < r.SX; i++ {
					qx, _, qz := voronoiCell(g.sha, r.X+i, r.Y+k, r.Z+j)
					cache[idx] = q.at(qx, qz)
					idx++
				}
			}
		}
		return
	}
	g.layers.entry(r.Scale).gen(cache[:a.size()], cache[n:], a)
	for k := 1; k < r.height(); k++ {
		copy(cache[k*a.size():(k+1)*a.size()], cache[:a.size()])
	}
}
