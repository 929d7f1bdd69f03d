package biome

import "github.com/OCharnyshevich/biomefinder/pkg/mc"

// Exists reports whether the biome can generate in version v.
func Exists(v mc.Version, id ID) bool {
	if v >= mc.V1_18 {
		switch {
		case id >= SoulSandValley && id <= BasaltDeltas:
			return true
		case id >= SmallEndIslands && id <= EndBarrens:
			return true
		case id >= WarmOcean && id <= DeepFrozenOcean:
			return true
		}
		switch id {
		case CherryGrove:
			return v >= mc.V1_20
		case DeepDark, MangroveSwamp:
			return v >= mc.V1_19_2
		case PaleGarden:
			return v >= mc.V1_21_WD
		case Ocean, Plains, Desert, WindsweptHills, Forest, Taiga, Swamp, River,
			NetherWastes, TheEnd, FrozenOcean, FrozenRiver, SnowyPlains, MushroomFields,
			Beach, Jungle, SparseJungle, DeepOcean, StonyShore, SnowyBeach, BirchForest,
			DarkForest, SnowyTaiga, OldGrowthPineTaiga, WindsweptForest, Savanna,
			SavannaPlateau, Badlands, WoodedBadlands, SunflowerPlains, WindsweptGravelly,
			FlowerForest, IceSpikes, OldGrowthBirchForest, OldGrowthSpruceTaiga,
			WindsweptSavanna, ErodedBadlands, BambooJungle, DripstoneCaves, LushCaves,
			Meadow, Grove, SnowySlopes, StonyPeaks, JaggedPeaks, FrozenPeaks, TheVoid:
			return true
		}
		return false
	}

	switch {
	case v <= mc.B1_7:
		switch id {
		case Plains, Desert, Forest, Taiga, Swamp, SnowyPlains, Savanna,
			SeasonalForest, Rainforest, Shrubland, Ocean, FrozenOcean:
			return true
		}
		return false
	case v <= mc.B1_8:
		return id >= Ocean && id <= NetherWastes
	case v <= mc.V1_0:
		return id >= Ocean && id <= MushroomFieldShore
	}

	switch {
	case id >= Ocean && id <= MountainEdge:
		return true
	case id >= Jungle && id <= JungleHills:
		return v >= mc.V1_2
	case id >= SparseJungle && id <= BadlandsPlateau:
		return v >= mc.V1_7
	case id >= SmallEndIslands && id <= EndBarrens:
		return v >= mc.V1_9
	case id >= WarmOcean && id <= DeepFrozenOcean:
		return v >= mc.V1_13
	}
	switch id {
	case TheVoid:
		return v >= mc.V1_9
	case SunflowerPlains, DesertLakes, WindsweptGravelly, FlowerForest, TaigaMountains,
		SwampHills, IceSpikes, ModifiedJungle, ModifiedJungleEdge, OldGrowthBirchForest,
		TallBirchHills, DarkForestHills, SnowyTaigaMountains, OldGrowthSpruceTaiga,
		GiantSpruceHills, ModifiedGravelly, WindsweptSavanna, ShatteredPlateau,
		ErodedBadlands, ModifiedWoodedPlat, ModifiedBadlandsPlat:
		return v >= mc.V1_7
	case BambooJungle, BambooJungleHills:
		return v >= mc.V1_14
	case SoulSandValley, CrimsonForest, WarpedForest, BasaltDeltas:
		return v >= mc.V1_16_1
	case DripstoneCaves, LushCaves:
		return v >= mc.V1_17
	}
	return false
}

// DimensionOf returns the dimension a biome belongs to.
func DimensionOf(id ID) mc.Dimension {
	switch {
	case id == NetherWastes, id >= SoulSandValley && id <= BasaltDeltas:
		return mc.Nether
	case id == TheEnd, id >= SmallEndIslands && id <= EndBarrens:
		return mc.End
	}
	return mc.Overworld
}

// IsOverworld reports whether id is an overworld biome that generates in v.
func IsOverworld(v mc.Version, id ID) bool {
	if !Exists(v, id) || DimensionOf(id) != mc.Overworld {
		return false
	}
	switch id {
	case FrozenOcean:
		return v <= mc.V1_6 || v >= mc.V1_13
	case MountainEdge:
		return v <= mc.V1_6
	case DeepWarmOcean, TheVoid:
		return false
	case OldGrowthBirchForest:
		// 1.9 and 1.10 mutate birch forests into the hills variant instead.
		return v <= mc.V1_8 || v >= mc.V1_11
	case DripstoneCaves, LushCaves:
		return v >= mc.V1_18
	}
	return true
}

// IsOceanic reports whether id is any ocean variant.
func IsOceanic(id ID) bool {
	switch id {
	case Ocean, FrozenOcean, DeepOcean,
		WarmOcean, LukewarmOcean, ColdOcean,
		DeepWarmOcean, DeepLukewarmOcean, DeepColdOcean, DeepFrozenOcean:
		return true
	}
	return false
}

// IsDeepOcean reports whether id is a deep ocean variant.
func IsDeepOcean(id ID) bool {
	switch id {
	case DeepOcean, DeepWarmOcean, DeepLukewarmOcean, DeepColdOcean, DeepFrozenOcean:
		return true
	}
	return false
}

// IsShallowOcean reports whether id is an ocean variant that is not deep.
func IsShallowOcean(id ID) bool {
	return IsOceanic(id) && !IsDeepOcean(id)
}

func IsBeach(id ID) bool {
	return id == Beach || id == SnowyBeach
}

func IsRiver(id ID) bool {
	return id == River || id == FrozenRiver
}

// IsSnowy reports whether the biome is frozen at its surface.
func IsSnowy(id ID) bool {
	switch id {
	case FrozenOcean, FrozenRiver, SnowyPlains, SnowyMountains, SnowyBeach,
		SnowyTaiga, SnowyTaigaHills, IceSpikes, SnowyTaigaMountains,
		SnowySlopes, FrozenPeaks, Grove, DeepFrozenOcean:
		return true
	}
	return false
}
