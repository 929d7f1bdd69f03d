// Package gen answers biome queries for a version, seed and dimension.
//
// A Generator is configured once per version with Setup, re-seeded with
// ApplySeed and then queried with BiomeAt or in bulk with GenBiomes. Queries
// never mutate the generator, so a seeded Generator may be shared by
// concurrent readers; ApplySeed must not run concurrently with queries.
package gen

import (
	"fmt"

	"github.com/OCharnyshevich/biomefinder/pkg/biome"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

// Flag selects optional generator behaviour.
type Flag uint32

const (
	// LargeBiomes stretches the overworld climate noises.
	LargeBiomes Flag = 1 << iota

	allFlags = LargeBiomes
)

// DefaultMaxCache bounds the cells a single bulk query may request.
const DefaultMaxCache = 1 << 26

// Generator holds the per-version configuration and the noise state built
// for the current seed and dimension.
type Generator struct {
	Version mc.Version
	Flags   Flag
	Dim     mc.Dimension
	Seed    uint64

	// MaxCache caps MinCacheSize; zero or less means DefaultMaxCache.
	MaxCache int

	seeded  bool
	sha     uint64
	climate *climateNoise
	params  []climateEntry
	nether  *netherSource
	end     *endSource
	layers  *layerStack
}

// Setup returns an unseeded generator for version v.
func Setup(v mc.Version, flags Flag) (*Generator, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("setup version %d: %w", int(v), ErrUnsupported)
	}
	if flags&^allFlags != 0 {
		return nil, fmt.Errorf("setup flags %#x: %w", uint32(flags), ErrUnsupported)
	}
	g := &Generator{Version: v, Flags: flags, MaxCache: DefaultMaxCache}
	if legacyLayers(v) {
		g.layers = newLayerStack(v, flags&LargeBiomes != 0)
	}
	return g, nil
}

// ApplySeed rebuilds the noise state for a dimension and seed, discarding
// whatever was built before.
func (g *Generator) ApplySeed(dim mc.Dimension, seed uint64) error {
	if !dim.Valid() {
		return fmt.Errorf("apply seed: dimension %d: %w", int(dim), ErrUnsupported)
	}
	if dim == mc.Overworld && g.Version < mc.V1_18 && g.layers == nil {
		return fmt.Errorf("apply seed: overworld for %v: %w", g.Version, ErrUnsupported)
	}

	g.seeded = false
	g.climate, g.params, g.nether, g.end = nil, nil, nil, nil
	g.Dim, g.Seed = dim, seed
	g.sha = rng.ZoomSeed(seed)

	switch dim {
	case mc.Overworld:
		if g.layers != nil {
			for _, l := range g.layers.all {
				l.applySeed(seed)
			}
			break
		}
		g.climate = newClimateNoise(seed, g.Flags&LargeBiomes != 0)
		g.params = climateParams(g.Version)
	case mc.Nether:
		if g.Version >= mc.V1_16_1 {
			n, err := newNetherSource(seed)
			if err != nil {
				return fmt.Errorf("apply seed: %w", err)
			}
			g.nether = n
		}
	case mc.End:
		if g.Version >= mc.V1_9 {
			g.end = newEndSource(seed)
		}
	}
	g.seeded = true
	return nil
}

// Seeded reports whether ApplySeed has succeeded.
func (g *Generator) Seeded() bool { return g.seeded }

// Climate samples the overworld climate parameters at quart coordinates.
func (g *Generator) Climate(x, y, z int) (ClimatePoint, error) {
	if !g.seeded {
		return ClimatePoint{}, ErrNotSeeded
	}
	if g.climate == nil {
		return ClimatePoint{}, fmt.Errorf("climate in %v: %w", g.Dim, ErrUnsupported)
	}
	return g.climate.sample(x, y, z), nil
}

// layered reports whether overworld queries run through the legacy layers.
func (g *Generator) layered() bool {
	return g.Dim == mc.Overworld && g.layers != nil
}

// quartBiome samples the dimension's biome source at quart coordinates.
func (g *Generator) quartBiome(x, y, z int) biome.ID {
	switch g.Dim {
	case mc.Overworld:
		if g.layers != nil {
			return g.sampleAt(4, x, y, z)
		}
		np := g.climate.sample(x, y, z)
		return lookupBiome(g.params, &np)
	case mc.Nether:
		if g.nether == nil {
			return biome.NetherWastes
		}
		return g.nether.biomeAt(x, z)
	case mc.End:
		if g.end == nil {
			return biome.TheEnd
		}
		return g.end.biomeAt(x, z)
	}
	return biome.None
}

func validScale(scale int) bool {
	switch scale {
	case 1, 4, 16, 64, 256:
		return true
	}
	return false
}

// voronoi reports whether scale 1 queries go through the biome zoom.
func (g *Generator) voronoi() bool {
	return g.Version >= mc.V1_15
}

// BiomeAt returns the biome at one sample point. At scale 1 the coordinates
// are blocks and at scale 4 quarts; coarser scales index cells of scale
// blocks horizontally, sampled at their centre, while y stays in quarts.
// The layered overworld of 1.7 to 1.17 answers coarser scales from the layer
// of that scale instead.
func (g *Generator) BiomeAt(scale, x, y, z int) (biome.ID, error) {
	if !g.seeded {
		return biome.None, ErrNotSeeded
	}
	if !validScale(scale) {
		return biome.None, fmt.Errorf("biome at scale %d: %w", scale, ErrInvalidRange)
	}
	return g.sampleAt(scale, x, y, z), nil
}

func (g *Generator) sampleAt(scale, x, y, z int) biome.ID {
	if g.layered() {
		r := Range{Scale: scale, X: x, Y: y, Z: z, SX: 1, SZ: 1}
		n, _ := g.cacheSize(r)
		cache := make([]biome.ID, n)
		g.genLayers(cache, r)
		return cache[0]
	}
	switch {
	case scale == 1 && g.voronoi():
		qx, qy, qz := voronoiCell(g.sha, x, y, z)
		return g.quartBiome(qx, qy, qz)
	case scale == 1:
		return g.quartBiome(x>>2, y>>2, z>>2)
	case scale == 4:
		return g.quartBiome(x, y, z)
	}
	s := scale >> 2
	return g.quartBiome(x*s+s/2, y, z*s+s/2)
}
