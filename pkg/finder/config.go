package finder

import (
	"fmt"

	"github.com/OCharnyshevich/biomefinder/pkg/mc"
)

// Config holds the placement constants of a structure in one version.
// Region structures use Salt, RegionSize and ChunkRange; per-chunk features
// use Salt and Rarity.
type Config struct {
	Salt       uint64       `json:"salt"`
	RegionSize int          `json:"regionSize"`
	ChunkRange int          `json:"chunkRange"`
	Type       Structure    `json:"structType"`
	Dim        mc.Dimension `json:"dim"`
	Rarity     float32      `json:"rarity"`
}

func region(salt uint64, size, rng int, s Structure, dim mc.Dimension) Config {
	return Config{Salt: salt, RegionSize: size, ChunkRange: rng, Type: s, Dim: dim}
}

func chance(salt uint64, rarity float32, s Structure, dim mc.Dimension) Config {
	return Config{Salt: salt, RegionSize: 1, ChunkRange: 1, Type: s, Dim: dim, Rarity: rarity}
}

var featureConfig = region(14357617, 32, 24, Feature, mc.Overworld)

// GetConfig returns the placement config of s in version v, or
// ErrUnsupported when s does not generate in v.
func GetConfig(s Structure, v mc.Version) (Config, error) {
	c, ok := lookupConfig(s, v)
	if !ok || !v.Valid() {
		return Config{}, fmt.Errorf("config for %v in %v: %w", s, v, ErrUnsupported)
	}
	return c, nil
}

func lookupConfig(s Structure, v mc.Version) (Config, bool) {
	const (
		ow = mc.Overworld
		ne = mc.Nether
		en = mc.End
	)
	legacy := v <= mc.V1_12

	switch s {
	case Feature:
		return featureConfig, v <= mc.V1_12
	case DesertPyramid:
		if legacy {
			return featureConfig, v >= mc.V1_3
		}
		return region(14357617, 32, 24, s, ow), true
	case Igloo:
		if legacy {
			return featureConfig, v >= mc.V1_9
		}
		return region(14357618, 32, 24, s, ow), true
	case JungleTemple:
		if legacy {
			return featureConfig, v >= mc.V1_3
		}
		return region(14357619, 32, 24, s, ow), true
	case SwampHut:
		if legacy {
			return featureConfig, v >= mc.V1_4
		}
		return region(14357620, 32, 24, s, ow), true
	case Village:
		if v <= mc.V1_17 {
			return region(10387312, 32, 24, s, ow), v >= mc.B1_8
		}
		return region(10387312, 34, 26, s, ow), true
	case OceanRuin:
		if v <= mc.V1_15 {
			return region(14357621, 16, 8, s, ow), v >= mc.V1_13
		}
		return region(14357621, 20, 12, s, ow), true
	case Shipwreck:
		if v <= mc.V1_15 {
			return region(165745295, 16, 8, s, ow), v >= mc.V1_13
		}
		return region(165745295, 24, 20, s, ow), true
	case Monument:
		return region(10387313, 32, 27, s, ow), v >= mc.V1_8
	case Mansion:
		return region(10387319, 80, 60, s, ow), v >= mc.V1_11
	case Outpost:
		return region(165745296, 32, 24, s, ow), v >= mc.V1_14
	case RuinedPortal:
		return region(34222645, 40, 25, s, ow), v >= mc.V1_16_1
	case RuinedPortalN:
		if v <= mc.V1_17 {
			return region(34222645, 25, 15, s, ne), v >= mc.V1_16_1
		}
		return region(34222645, 40, 25, s, ne), true
	case AncientCity:
		return region(20083232, 24, 16, s, ow), v >= mc.V1_19_2
	case TrailRuins:
		return region(83469867, 34, 26, s, ow), v >= mc.V1_20
	case TrialChambers:
		return region(94251327, 34, 22, s, ow), v >= mc.V1_21_1
	case Treasure:
		return chance(10387320, 0.01, s, ow), v >= mc.V1_13
	case Mineshaft:
		return chance(0, 0.004, s, ow), v >= mc.B1_8
	case DesertWell:
		switch {
		case v <= mc.V1_15:
			return chance(30010, 1.0/1000, s, ow), true
		case v <= mc.V1_17:
			return chance(40013, 1.0/1000, s, ow), true
		}
		return chance(40002, 1.0/1000, s, ow), true
	case Geode:
		if v <= mc.V1_17 {
			return chance(20000, 1.0/24, s, ow), v >= mc.V1_17
		}
		return chance(20002, 1.0/24, s, ow), true
	case Fortress:
		if v <= mc.V1_15 {
			return region(0, 16, 8, s, ne), true
		}
		return region(30084232, 27, 23, s, ne), true
	case Bastion:
		return region(30084232, 27, 23, s, ne), v >= mc.V1_16_1
	case EndCity:
		return region(10387313, 20, 9, s, en), v >= mc.V1_9
	case EndGateway:
		return chance(40000, 1.0/700, s, en), v >= mc.V1_13
	case EndIsland:
		return chance(0, 1.0/14, s, en), v >= mc.V1_9
	}
	return Config{}, false
}
