package finder

import (
	"fmt"
	"math"

	"github.com/OCharnyshevich/biomefinder/pkg/gen"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

const (
	// strongholdRadius is the block radius of the biome search around each
	// ring slot.
	strongholdRadius = 112
	firstRingMax     = 3
)

// StrongholdIter is the resumable state of the stronghold ring search. It
// holds plain values so it can be stored and handed back to Next later.
type StrongholdIter struct {
	Version    mc.Version `json:"version"`
	Pos        Pos        `json:"pos"`        // last stronghold found
	NextApprox Pos        `json:"nextapprox"` // centre of the next biome search
	Index      int        `json:"index"`
	RingNum    int        `json:"ringnum"`
	RingMax    int        `json:"ringmax"`
	RingIdx    int        `json:"ringidx"`
	Angle      float64    `json:"angle"`
	Dist       float64    `json:"dist"`
	Rnds       uint64     `json:"rnds"`
}

// StrongholdCount returns how many strongholds a world of version v has.
func StrongholdCount(v mc.Version) int {
	if v >= mc.V1_9 {
		return 128
	}
	return 3
}

// InitFirstStronghold starts the ring search for the lower 48 bits of a
// world seed and returns the approximate position of the first stronghold.
func InitFirstStronghold(v mc.Version, seed48 uint64) (StrongholdIter, Pos) {
	r := rng.NewLcg(seed48)
	sh := StrongholdIter{
		Version: v,
		RingMax: firstRingMax,
		Angle:   2 * math.Pi * r.NextDouble(),
	}
	sh.Dist = ringDist(v, 0, &r)
	sh.Rnds = r.State()
	sh.NextApprox = approx(sh.Angle, sh.Dist)
	return sh, sh.NextApprox
}

func ringDist(v mc.Version, ring int, r *rng.Lcg) float64 {
	if v >= mc.V1_9 {
		return 4*32 + 6*float64(ring)*32 + (r.NextDouble()-0.5)*32*2.5
	}
	return (1.25 + r.NextDouble()) * 32
}

func approx(angle, dist float64) Pos {
	return Pos{
		X: rng.JavaRound(math.Cos(angle)*dist)<<4 + 8,
		Z: rng.JavaRound(math.Sin(angle)*dist)<<4 + 8,
	}
}

// Validate checks the cursor's bookkeeping for consistency.
func (sh *StrongholdIter) Validate() error {
	total := StrongholdCount(sh.Version)
	switch {
	case !sh.Version.Valid():
		return fmt.Errorf("%w: version %d", ErrInvalidCursor, int(sh.Version))
	case sh.Index < 0 || sh.Index > total:
		return fmt.Errorf("%w: index %d of %d", ErrInvalidCursor, sh.Index, total)
	case sh.RingNum < 0 || sh.RingMax <= 0 || sh.RingMax > total:
		return fmt.Errorf("%w: ring %d with %d slots", ErrInvalidCursor, sh.RingNum, sh.RingMax)
	case sh.RingIdx < 0 || sh.RingIdx >= sh.RingMax:
		return fmt.Errorf("%w: ring slot %d of %d", ErrInvalidCursor, sh.RingIdx, sh.RingMax)
	case sh.RingIdx > sh.Index:
		return fmt.Errorf("%w: ring slot %d past index %d", ErrInvalidCursor, sh.RingIdx, sh.Index)
	case sh.Rnds>>48 != 0:
		return fmt.Errorf("%w: register %#x wider than 48 bits", ErrInvalidCursor, sh.Rnds)
	}
	return nil
}

// Next locates the stronghold at NextApprox, stores it in Pos and advances
// the cursor to the following ring slot. It reports whether more
// strongholds remain. g must be an overworld generator for the cursor's
// version seeded with the world seed.
func (sh *StrongholdIter) Next(g *gen.Generator) (bool, error) {
	if err := sh.Validate(); err != nil {
		return false, err
	}
	total := StrongholdCount(sh.Version)
	if sh.Index >= total {
		return false, nil
	}
	if g.Version != sh.Version {
		return false, fmt.Errorf("%w: cursor for %v, generator for %v", ErrInvalidCursor, sh.Version, g.Version)
	}
	if g.Dim != mc.Overworld {
		return false, fmt.Errorf("stronghold search in %v: %w", g.Dim, ErrUnsupported)
	}

	r := rng.LcgFromState(sh.Rnds)
	var found Pos
	var ok bool
	var err error
	if sh.Version >= mc.V1_19 {
		// The biome search draws from its own register split off the ring one.
		search := rng.NewLcg(uint64(r.NextLong()))
		found, ok, err = locateBiome(g, sh.NextApprox, strongholdRadius, &search)
	} else {
		found, ok, err = locateBiome(g, sh.NextApprox, strongholdRadius, &r)
	}
	if err != nil {
		return false, fmt.Errorf("stronghold %d: %w", sh.Index, err)
	}
	if !ok {
		found = sh.NextApprox
	}
	// The staircase sits at (4, 4) inside the chunk.
	sh.Pos = Pos{X: found.X&^15 + 4, Z: found.Z&^15 + 4}

	sh.advance(&r, total)
	sh.Rnds = r.State()

	return sh.Index < total, nil
}

// advance moves the cursor to the following ring slot, drawing the ring
// rotation and the next distance from r.
func (sh *StrongholdIter) advance(r *rng.Lcg, total int) {
	if sh.Version >= mc.V1_9 {
		sh.RingIdx++
		sh.Angle += 2 * math.Pi / float64(sh.RingMax)
		if sh.RingIdx == sh.RingMax {
			sh.RingNum++
			sh.RingIdx = 0
			sh.RingMax += 2 * sh.RingMax / (sh.RingNum + 1)
			sh.RingMax = min(sh.RingMax, total-sh.Index)
			sh.Angle += r.NextDouble() * math.Pi * 2
		}
	} else {
		sh.RingIdx = (sh.RingIdx + 1) % firstRingMax
		sh.Angle += 2 * math.Pi / firstRingMax
	}
	sh.Dist = ringDist(sh.Version, sh.RingNum, r)
	sh.NextApprox = approx(sh.Angle, sh.Dist)
	sh.Index++
}

// locateBiome scans the quart square of radius blocks around centre at y=0
// and picks one stronghold biome uniformly, one reservoir draw per match
// after the first.
func locateBiome(g *gen.Generator, centre Pos, radius int, r *rng.Lcg) (Pos, bool, error) {
	k := radius >> 2
	area := gen.Range{Scale: 4, X: centre.X>>2 - k, Z: centre.Z>>2 - k, SX: 2*k + 1, SZ: 2*k + 1}
	cache, err := g.AllocCache(area)
	if err != nil {
		return Pos{}, false, err
	}
	if _, err := g.GenBiomes(cache, area); err != nil {
		return Pos{}, false, err
	}

	var (
		best  Pos
		found bool
		n     int32
	)
	for j := 0; j < area.SZ; j++ {
		for i := 0; i < area.SX; i++ {
			if !IsStrongholdBiome(g.Version, cache[j*area.SX+i]) {
				continue
			}
			if !found || r.NextInt(n+1) == 0 {
				best = Pos{X: (area.X + i) << 2, Z: (area.Z + j) << 2}
				found = true
			}
			n++
		}
	}
	return best, found, nil
}
