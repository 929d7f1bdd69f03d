package biome

import "github.com/OCharnyshevich/biomefinder/pkg/mc"

// Mutated returns the rare variant the hills layer may turn id into, or
// None when id has no variant in v.
func Mutated(v mc.Version, id ID) ID {
	switch id {
	case Plains:
		return SunflowerPlains
	case Desert:
		return DesertLakes
	case WindsweptHills:
		return WindsweptGravelly
	case Forest:
		return FlowerForest
	case Taiga:
		return TaigaMountains
	case Swamp:
		return SwampHills
	case SnowyPlains:
		return IceSpikes
	case Jungle:
		return ModifiedJungle
	case SparseJungle:
		return ModifiedJungleEdge
	case BirchForest:
		if v >= mc.V1_9 && v <= mc.V1_10 {
			return TallBirchHills
		}
		return OldGrowthBirchForest
	case BirchForestHills:
		if v >= mc.V1_9 && v <= mc.V1_10 {
			return None
		}
		return TallBirchHills
	case DarkForest:
		return DarkForestHills
	case SnowyTaiga:
		return SnowyTaigaMountains
	case OldGrowthPineTaiga:
		return OldGrowthSpruceTaiga
	case GiantTreeTaigaHills:
		return GiantSpruceHills
	case WindsweptForest:
		return ModifiedGravelly
	case Savanna:
		return WindsweptSavanna
	case SavannaPlateau:
		return ShatteredPlateau
	case Badlands:
		return ErodedBadlands
	case WoodedBadlands:
		return ModifiedWoodedPlat
	case BadlandsPlateau:
		return ModifiedBadlandsPlat
	}
	return None
}

// IsMutation reports whether id is one of the rare variants.
func IsMutation(id ID) bool {
	return id >= SunflowerPlains && id <= ModifiedBadlandsPlat
}

// Category returns the biome standing for the group id belongs to when the
// legacy layers compare neighbours, or None for ungrouped biomes.
func Category(v mc.Version, id ID) ID {
	switch id {
	case Beach, SnowyBeach:
		return Beach
	case Desert, DesertHills, DesertLakes:
		return Desert
	case WindsweptHills, MountainEdge, WindsweptForest, WindsweptGravelly, ModifiedGravelly:
		return WindsweptHills
	case Forest, WoodedHills, BirchForest, BirchForestHills, DarkForest, FlowerForest,
		OldGrowthBirchForest, TallBirchHills, DarkForestHills:
		return Forest
	case SnowyPlains, SnowyMountains, IceSpikes:
		return SnowyPlains
	case Jungle, JungleHills, SparseJungle, ModifiedJungle, ModifiedJungleEdge,
		BambooJungle, BambooJungleHills:
		return Jungle
	case Badlands, ErodedBadlands, ModifiedWoodedPlat, ModifiedBadlandsPlat:
		return Badlands
	case WoodedBadlands, BadlandsPlateau:
		if v <= mc.V1_15 {
			return Badlands
		}
		return BadlandsPlateau
	case MushroomFields, MushroomFieldShore:
		return MushroomFields
	case StonyShore:
		return StonyShore
	case Ocean, FrozenOcean, DeepOcean, WarmOcean, LukewarmOcean, ColdOcean,
		DeepWarmOcean, DeepLukewarmOcean, DeepColdOcean, DeepFrozenOcean:
		return Ocean
	case Plains, SunflowerPlains:
		return Plains
	case River, FrozenRiver:
		return River
	case Savanna, SavannaPlateau, WindsweptSavanna, ShatteredPlateau:
		return Savanna
	case Swamp, SwampHills:
		return Swamp
	case Taiga, TaigaHills, SnowyTaiga, SnowyTaigaHills, OldGrowthPineTaiga,
		GiantTreeTaigaHills, TaigaMountains, SnowyTaigaMountains,
		OldGrowthSpruceTaiga, GiantSpruceHills:
		return Taiga
	}
	return None
}

// AreSimilar reports whether the legacy layers treat b as the same kind of
// biome as a. Up to 1.15 the badlands plateaus only match each other, which
// makes the relation asymmetric.
func AreSimilar(v mc.Version, a, b ID) bool {
	if a == b {
		return true
	}
	if v <= mc.V1_15 && (a == WoodedBadlands || a == BadlandsPlateau) {
		return b == WoodedBadlands || b == BadlandsPlateau
	}
	c := Category(v, a)
	return c != None && c == Category(v, b)
}

// IsMesa reports whether id is any badlands variant.
func IsMesa(id ID) bool {
	switch id {
	case Badlands, ErodedBadlands, ModifiedWoodedPlat, ModifiedBadlandsPlat,
		WoodedBadlands, BadlandsPlateau:
		return true
	}
	return false
}
