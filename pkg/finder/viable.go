package finder

import (
	"fmt"

	"github.com/OCharnyshevich/biomefinder/pkg/biome"
	"github.com/OCharnyshevich/biomefinder/pkg/gen"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
)

const (
	seaLevelQuart    = 63 >> 2
	ancientCityQuart = -27 >> 2
	trialQuart       = -32 >> 2

	// monumentRadius is the block radius that must be ocean or river
	// around a monument.
	monumentRadius = 29
)

// IsViableFeatureBiome reports whether s may start in biome id in version v.
func IsViableFeatureBiome(v mc.Version, s Structure, id biome.ID) bool {
	switch s {
	case Feature:
		return id == biome.Desert || id == biome.DesertHills || id == biome.Jungle ||
			id == biome.JungleHills || id == biome.Swamp || id == biome.SnowyPlains ||
			id == biome.SnowyTaiga
	case DesertPyramid, DesertWell:
		return id == biome.Desert || id == biome.DesertHills
	case JungleTemple:
		switch id {
		case biome.Jungle, biome.JungleHills:
			return true
		case biome.BambooJungle, biome.BambooJungleHills:
			return v >= mc.V1_14
		}
		return false
	case SwampHut:
		return id == biome.Swamp
	case Igloo:
		switch id {
		case biome.SnowyPlains, biome.SnowyTaiga:
			return true
		case biome.SnowySlopes:
			return v >= mc.V1_18
		}
		return false
	case Village:
		switch id {
		case biome.Plains, biome.Desert, biome.Savanna:
			return true
		case biome.Taiga, biome.SnowyPlains:
			return v >= mc.V1_14
		case biome.Meadow:
			return v >= mc.V1_18
		}
		return false
	case Outpost:
		switch id {
		case biome.Plains, biome.Desert, biome.Savanna, biome.Taiga, biome.SnowyPlains:
			return true
		case biome.Meadow, biome.Grove, biome.SnowySlopes, biome.FrozenPeaks,
			biome.JaggedPeaks, biome.StonyPeaks:
			return v >= mc.V1_18
		case biome.CherryGrove:
			return v >= mc.V1_20
		}
		return false
	case OceanRuin:
		return biome.IsOceanic(id)
	case Shipwreck:
		return biome.IsOceanic(id) || biome.IsBeach(id)
	case Treasure:
		return biome.IsBeach(id)
	case Monument:
		return biome.IsDeepOcean(id)
	case Mansion:
		return id == biome.DarkForest || id == biome.DarkForestHills
	case AncientCity:
		return id == biome.DeepDark
	case TrailRuins:
		switch id {
		case biome.Taiga, biome.SnowyTaiga, biome.OldGrowthPineTaiga,
			biome.OldGrowthSpruceTaiga, biome.OldGrowthBirchForest, biome.Jungle:
			return true
		}
		return false
	case TrialChambers:
		return biome.IsOverworld(v, id) && id != biome.DeepDark
	case RuinedPortal, Mineshaft, Geode:
		return biome.IsOverworld(v, id)
	case RuinedPortalN, Fortress:
		return biome.DimensionOf(id) == mc.Nether
	case Bastion:
		return biome.DimensionOf(id) == mc.Nether && id != biome.BasaltDeltas
	case EndCity:
		return id == biome.EndMidlands || id == biome.EndHighlands
	case EndGateway:
		return id == biome.EndHighlands
	case EndIsland:
		return id == biome.SmallEndIslands
	}
	return false
}

// Flags narrows the variants IsViableStructurePos accepts. Zero accepts
// every variant.
type Flags uint32

// Village variants, named by the biome family the village is built for.
const (
	VillagePlains Flags = 1 << iota
	VillageDesert
	VillageSavanna
	VillageTaiga
	VillageSnowy
	VillageMeadow
)

// villageVariant maps a village start biome to its variant bit.
func villageVariant(id biome.ID) Flags {
	switch id {
	case biome.Plains:
		return VillagePlains
	case biome.Meadow:
		return VillageMeadow
	case biome.Desert:
		return VillageDesert
	case biome.Savanna:
		return VillageSavanna
	case biome.Taiga:
		return VillageTaiga
	case biome.SnowyPlains:
		return VillageSnowy
	}
	return 0
}

// scatteredFeature reports whether s is one of the single chunk features
// that sample the block biome of their chunk centre in layered versions.
func scatteredFeature(s Structure) bool {
	switch s {
	case Feature, DesertPyramid, JungleTemple, SwampHut, Igloo:
		return true
	}
	return false
}

// IsViableStructurePos reports whether the biomes around block (x, z) let s
// generate there. The generator must be seeded for the structure's
// dimension; any other dimension is simply not viable. flags restricts
// villages to the variants it names.
func IsViableStructurePos(g *gen.Generator, s Structure, x, z int, flags Flags) (bool, error) {
	c, err := GetConfig(s, g.Version)
	if err != nil {
		return false, err
	}
	if !g.Seeded() {
		return false, gen.ErrNotSeeded
	}
	if c.Dim != g.Dim {
		return false, nil
	}

	id, err := startBiome(g, s, x, z)
	if err != nil {
		return false, fmt.Errorf("viable %v at %d,%d: %w", s, x, z, err)
	}
	if !IsViableFeatureBiome(g.Version, s, id) {
		return false, nil
	}
	if s == Village && flags != 0 && villageVariant(id)&flags == 0 {
		return false, nil
	}
	if s == Monument {
		return monumentSurroundings(g, (x>>4)<<4+8, (z>>4)<<4+8)
	}
	return true, nil
}

// startBiome is the biome a structure starting in the chunk of block (x, z)
// is checked against.
func startBiome(g *gen.Generator, s Structure, x, z int) (biome.ID, error) {
	if g.Version <= mc.V1_14 && scatteredFeature(s) {
		return g.BiomeAt(1, (x>>4)<<4+8, 0, (z>>4)<<4+8)
	}

	// Biomes are checked at the middle of the start chunk.
	qx := (x>>4)<<2 + 2
	qz := (z>>4)<<2 + 2

	var qy int
	switch {
	case s == AncientCity:
		qy = ancientCityQuart
	case s == TrialChambers:
		qy = trialQuart
	case s == Monument:
		qy = seaLevelQuart
	case g.Dim == mc.Overworld && g.Version >= mc.V1_18:
		ys, _, err := g.MapApproxHeight(nil, qx, qz, 1, 1)
		if err != nil {
			return biome.None, err
		}
		qy = int(ys[0]) >> 2
	}
	return g.BiomeAt(4, qx, qy, qz)
}

// monumentSurroundings checks that every quart within monumentRadius of
// block (x, z) at sea level is ocean or river.
func monumentSurroundings(g *gen.Generator, x, z int) (bool, error) {
	x0, x1 := (x-monumentRadius)>>2, (x+monumentRadius)>>2
	z0, z1 := (z-monumentRadius)>>2, (z+monumentRadius)>>2
	r := gen.Range{Scale: 4, X: x0, Y: seaLevelQuart, Z: z0, SX: x1 - x0 + 1, SZ: z1 - z0 + 1}
	cache, err := g.AllocCache(r)
	if err != nil {
		return false, err
	}
	n, err := g.GenBiomes(cache, r)
	if err != nil {
		return false, err
	}
	for _, id := range cache[:n] {
		if !biome.IsOceanic(id) && !biome.IsRiver(id) {
			return false, nil
		}
	}
	return true, nil
}

// IsStrongholdBiome reports whether the stronghold search may settle on
// biome id in version v.
func IsStrongholdBiome(v mc.Version, id biome.ID) bool {
	if !biome.IsOverworld(v, id) || biome.IsOceanic(id) {
		return false
	}
	switch id {
	case biome.River, biome.FrozenRiver, biome.Beach, biome.SnowyBeach,
		biome.SwampHills, biome.MangroveSwamp, biome.DeepDark:
		return false
	case biome.Swamp:
		return v <= mc.V1_6
	case biome.MushroomFields, biome.MushroomFieldShore:
		return v >= mc.V1_7
	case biome.StonyShore:
		return v <= mc.V1_17
	}
	return true
}
