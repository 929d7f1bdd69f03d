// Package biome enumerates biome identifiers with their canonical names,
// per-version availability and the category tests used by structure rules.
package biome

import "fmt"

// ID is a numeric biome identifier. The numbering follows the legacy
// protocol ids, with biomes introduced after the flattening appended.
type ID int

// None marks an empty cache cell or a failed lookup.
const None ID = -1

const (
	Ocean                ID = 0
	Plains               ID = 1
	Desert               ID = 2
	WindsweptHills       ID = 3
	Forest               ID = 4
	Taiga                ID = 5
	Swamp                ID = 6
	River                ID = 7
	NetherWastes         ID = 8
	TheEnd               ID = 9
	FrozenOcean          ID = 10
	FrozenRiver          ID = 11
	SnowyPlains          ID = 12
	SnowyMountains       ID = 13
	MushroomFields       ID = 14
	MushroomFieldShore   ID = 15
	Beach                ID = 16
	DesertHills          ID = 17
	WoodedHills          ID = 18
	TaigaHills           ID = 19
	MountainEdge         ID = 20
	Jungle               ID = 21
	JungleHills          ID = 22
	SparseJungle         ID = 23
	DeepOcean            ID = 24
	StonyShore           ID = 25
	SnowyBeach           ID = 26
	BirchForest          ID = 27
	BirchForestHills     ID = 28
	DarkForest           ID = 29
	SnowyTaiga           ID = 30
	SnowyTaigaHills      ID = 31
	OldGrowthPineTaiga   ID = 32
	GiantTreeTaigaHills  ID = 33
	WindsweptForest      ID = 34
	Savanna              ID = 35
	SavannaPlateau       ID = 36
	Badlands             ID = 37
	WoodedBadlands       ID = 38
	BadlandsPlateau      ID = 39
	SmallEndIslands      ID = 40
	EndMidlands          ID = 41
	EndHighlands         ID = 42
	EndBarrens           ID = 43
	WarmOcean            ID = 44
	LukewarmOcean        ID = 45
	ColdOcean            ID = 46
	DeepWarmOcean        ID = 47
	DeepLukewarmOcean    ID = 48
	DeepColdOcean        ID = 49
	DeepFrozenOcean      ID = 50
	SeasonalForest       ID = 51
	Rainforest           ID = 52
	Shrubland            ID = 53
	TheVoid              ID = 127
	SunflowerPlains      ID = 129
	DesertLakes          ID = 130
	WindsweptGravelly    ID = 131
	FlowerForest         ID = 132
	TaigaMountains       ID = 133
	SwampHills           ID = 134
	IceSpikes            ID = 140
	ModifiedJungle       ID = 149
	ModifiedJungleEdge   ID = 151
	OldGrowthBirchForest ID = 155
	TallBirchHills       ID = 156
	DarkForestHills      ID = 157
	SnowyTaigaMountains  ID = 158
	OldGrowthSpruceTaiga ID = 160
	GiantSpruceHills     ID = 161
	ModifiedGravelly     ID = 162
	WindsweptSavanna     ID = 163
	ShatteredPlateau     ID = 164
	ErodedBadlands       ID = 165
	ModifiedWoodedPlat   ID = 166
	ModifiedBadlandsPlat ID = 167
	BambooJungle         ID = 168
	BambooJungleHills    ID = 169
	SoulSandValley       ID = 170
	CrimsonForest        ID = 171
	WarpedForest         ID = 172
	BasaltDeltas         ID = 173
	DripstoneCaves       ID = 174
	LushCaves            ID = 175
	Meadow               ID = 177
	Grove                ID = 178
	SnowySlopes          ID = 179
	JaggedPeaks          ID = 180
	FrozenPeaks          ID = 181
	StonyPeaks           ID = 182
	DeepDark             ID = 183
	MangroveSwamp        ID = 184
	CherryGrove          ID = 185
	PaleGarden           ID = 186
)

var names = map[ID]string{
	Ocean:                "ocean",
	Plains:               "plains",
	Desert:               "desert",
	WindsweptHills:       "windswept_hills",
	Forest:               "forest",
	Taiga:                "taiga",
	Swamp:                "swamp",
	River:                "river",
	NetherWastes:         "nether_wastes",
	TheEnd:               "the_end",
	FrozenOcean:          "frozen_ocean",
	FrozenRiver:          "frozen_river",
	SnowyPlains:          "snowy_plains",
	SnowyMountains:       "snowy_mountains",
	MushroomFields:       "mushroom_fields",
	MushroomFieldShore:   "mushroom_field_shore",
	Beach:                "beach",
	DesertHills:          "desert_hills",
	WoodedHills:          "wooded_hills",
	TaigaHills:           "taiga_hills",
	MountainEdge:         "mountain_edge",
	Jungle:               "jungle",
	JungleHills:          "jungle_hills",
	SparseJungle:         "sparse_jungle",
	DeepOcean:            "deep_ocean",
	StonyShore:           "stony_shore",
	SnowyBeach:           "snowy_beach",
	BirchForest:          "birch_forest",
	BirchForestHills:     "birch_forest_hills",
	DarkForest:           "dark_forest",
	SnowyTaiga:           "snowy_taiga",
	SnowyTaigaHills:      "snowy_taiga_hills",
	OldGrowthPineTaiga:   "old_growth_pine_taiga",
	GiantTreeTaigaHills:  "giant_tree_taiga_hills",
	WindsweptForest:      "windswept_forest",
	Savanna:              "savanna",
	SavannaPlateau:       "savanna_plateau",
	Badlands:             "badlands",
	WoodedBadlands:       "wooded_badlands",
	BadlandsPlateau:      "badlands_plateau",
	SmallEndIslands:      "small_end_islands",
	EndMidlands:          "end_midlands",
	EndHighlands:         "end_highlands",
	EndBarrens:           "end_barrens",
	WarmOcean:            "warm_ocean",
	LukewarmOcean:        "lukewarm_ocean",
	ColdOcean:            "cold_ocean",
	DeepWarmOcean:        "deep_warm_ocean",
	DeepLukewarmOcean:    "deep_lukewarm_ocean",
	DeepColdOcean:        "deep_cold_ocean",
	DeepFrozenOcean:      "deep_frozen_ocean",
	SeasonalForest:       "seasonal_forest",
	Rainforest:           "rainforest",
	Shrubland:            "shrubland",
	TheVoid:              "the_void",
	SunflowerPlains:      "sunflower_plains",
	DesertLakes:          "desert_lakes",
	WindsweptGravelly:    "windswept_gravelly_hills",
	FlowerForest:         "flower_forest",
	TaigaMountains:       "taiga_mountains",
	SwampHills:           "swamp_hills",
	IceSpikes:            "ice_spikes",
	ModifiedJungle:       "modified_jungle",
	ModifiedJungleEdge:   "modified_jungle_edge",
	OldGrowthBirchForest: "old_growth_birch_forest",
	TallBirchHills:       "tall_birch_hills",
	DarkForestHills:      "dark_forest_hills",
	SnowyTaigaMountains:  "snowy_taiga_mountains",
	OldGrowthSpruceTaiga: "old_growth_spruce_taiga",
	GiantSpruceHills:     "giant_spruce_taiga_hills",
	ModifiedGravelly:     "modified_gravelly_mountains",
	WindsweptSavanna:     "windswept_savanna",
	ShatteredPlateau:     "shattered_savanna_plateau",
	ErodedBadlands:       "eroded_badlands",
	ModifiedWoodedPlat:   "modified_wooded_badlands_plateau",
	ModifiedBadlandsPlat: "modified_badlands_plateau",
	BambooJungle:         "bamboo_jungle",
	BambooJungleHills:    "bamboo_jungle_hills",
	SoulSandValley:       "soul_sand_valley",
	CrimsonForest:        "crimson_forest",
	WarpedForest:         "warped_forest",
	BasaltDeltas:         "basalt_deltas",
	DripstoneCaves:       "dripstone_caves",
	LushCaves:            "lush_caves",
	Meadow:               "meadow",
	Grove:                "grove",
	SnowySlopes:          "snowy_slopes",
	JaggedPeaks:          "jagged_peaks",
	FrozenPeaks:          "frozen_peaks",
	StonyPeaks:           "stony_peaks",
	DeepDark:             "deep_dark",
	MangroveSwamp:        "mangrove_swamp",
	CherryGrove:          "cherry_grove",
	PaleGarden:           "pale_garden",
}

var byName map[string]ID

func init() {
	byName = make(map[string]ID, len(names))
	for id, n := range names {
		byName[n] = id
	}
}

func (id ID) String() string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("biome(%d)", int(id))
}

// Known reports whether id is a defined biome identifier.
func (id ID) Known() bool {
	_, ok := names[id]
	return ok
}

// Parse looks a biome up by its canonical name.
func Parse(name string) (ID, error) {
	if id, ok := byName[name]; ok {
		return id, nil
	}
	return None, fmt.Errorf("unknown biome %q", name)
}
