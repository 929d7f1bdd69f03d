package finder

import (
	"fmt"

	"github.com/OCharnyshevich/biomefinder/pkg/mc"
	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

const (
	regionMulX = 341873128712
	regionMulZ = 132897987541

	// endCityMinDist is the squared block distance from the origin inside
	// which end cities never generate.
	endCityMinDist = 1008 * 1008
)

// ChunkGenerateRnd returns the scrambled register state that seeds chunk
// (chunkX, chunkZ) of a world.
func ChunkGenerateRnd(seed uint64, chunkX, chunkZ int) uint64 {
	r := rng.LargeFeatureSeed(seed, chunkX, chunkZ)
	return r.State()
}

// regionRng seeds the register shared by every structure placed per region.
func regionRng(c Config, seed uint64, rx, rz int) rng.Lcg {
	return rng.NewLcg(uint64(int64(rx))*regionMulX + uint64(int64(rz))*regionMulZ + seed + c.Salt)
}

func featurePos(c Config, r *rng.Lcg, rx, rz int) Pos {
	n := int32(c.ChunkRange)
	x := int(r.NextInt(n))
	z := int(r.NextInt(n))
	return Pos{X: (rx*c.RegionSize + x) << 4, Z: (rz*c.RegionSize + z) << 4}
}

// largePos averages two draws per axis, biasing towards the region centre.
func largePos(c Config, r *rng.Lcg, rx, rz int) Pos {
	n := int32(c.ChunkRange)
	x := int(r.NextInt(n)+r.NextInt(n)) / 2
	z := int(r.NextInt(n)+r.NextInt(n)) / 2
	return Pos{X: (rx*c.RegionSize + x) << 4, Z: (rz*c.RegionSize + z) << 4}
}

// attemptRng seeds the legacy per-region attempt roll used by outposts and
// old fortresses. x and z are chunk coordinates.
func attemptRng(seed uint64, x, z int) rng.Lcg {
	r := rng.NewLcg(uint64(int64(x>>4^(z>>4)<<4)) ^ seed)
	r.Next(32)
	return r
}

// StructurePos returns the candidate block position of s in region
// (regX, regZ). ok is false when the region contains no instance; the
// position is still filled in where the placement is known. For per-chunk
// features the region is a single chunk.
func StructurePos(s Structure, v mc.Version, seed uint64, regX, regZ int) (pos Pos, ok bool, err error) {
	c, err := GetConfig(s, v)
	if err != nil {
		return Pos{}, false, err
	}

	switch s {
	case Feature, DesertPyramid, JungleTemple, SwampHut, Igloo, Village,
		OceanRuin, Shipwreck, RuinedPortal, RuinedPortalN, AncientCity,
		TrailRuins, TrialChambers:
		r := regionRng(c, seed, regX, regZ)
		return featurePos(c, &r, regX, regZ), true, nil

	case Monument, Mansion:
		r := regionRng(c, seed, regX, regZ)
		return largePos(c, &r, regX, regZ), true, nil

	case EndCity:
		r := regionRng(c, seed, regX, regZ)
		pos = largePos(c, &r, regX, regZ)
		d := int64(pos.X)*int64(pos.X) + int64(pos.Z)*int64(pos.Z)
		return pos, d >= endCityMinDist, nil

	case Outpost:
		r := regionRng(c, seed, regX, regZ)
		pos = featurePos(c, &r, regX, regZ)
		a := attemptRng(seed, pos.X>>4, pos.Z>>4)
		return pos, a.NextInt(5) == 0, nil

	case Fortress, Bastion:
		return netherComplexPos(s, c, v, seed, regX, regZ)

	case Treasure:
		pos = Pos{X: regX<<4 + 9, Z: regZ<<4 + 9}
		r := regionRng(c, seed, regX, regZ)
		return pos, r.NextFloat() < c.Rarity, nil

	case Mineshaft:
		pos = Pos{X: regX << 4, Z: regZ << 4}
		return pos, isMineshaftChunk(v, seed, regX, regZ), nil
	}
	return Pos{}, false, fmt.Errorf("position of %v: %w", s, ErrUnsupported)
}

// netherComplexPos places fortresses and bastions, which share one region
// grid from 1.16 and pick between themselves with a weighted roll.
func netherComplexPos(s Structure, c Config, v mc.Version, seed uint64, rx, rz int) (Pos, bool, error) {
	if v <= mc.V1_15 {
		r := attemptRng(seed, rx<<4, rz<<4)
		if r.NextInt(3) != 0 {
			return Pos{}, false, nil
		}
		x := rx<<4 + 4 + int(r.NextInt(8))
		z := rz<<4 + 4 + int(r.NextInt(8))
		return Pos{X: x << 4, Z: z << 4}, true, nil
	}

	r := regionRng(c, seed, rx, rz)
	pos := featurePos(c, &r, rx, rz)
	var roll int32
	if v <= mc.V1_17 {
		roll = r.NextInt(5)
	} else {
		w := rng.LargeFeatureSeed(seed, pos.X>>4, pos.Z>>4)
		roll = w.NextInt(5)
	}
	if s == Fortress {
		return pos, roll < 2, nil
	}
	return pos, roll >= 2, nil
}

func isMineshaftChunk(v mc.Version, seed uint64, cx, cz int) bool {
	r := rng.LargeFeatureSeed(seed, cx, cz)
	if v >= mc.V1_13 {
		return r.NextDouble() < 0.004
	}
	r.Skip(1)
	if r.NextDouble() >= 0.004 {
		return false
	}
	return int(r.NextInt(80)) < max(abs(cx), abs(cz))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
