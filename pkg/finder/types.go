// Package finder locates structures: per-version placement configs, region
// positions, chunk seeds, biome viability and the stronghold ring search.
package finder

import (
	"fmt"
	"strings"
)

// Structure identifies a structure or decoration feature type.
type Structure int

const (
	Feature Structure = iota // legacy shared temple slot, up to 1.12
	DesertPyramid
	JungleTemple
	SwampHut
	Igloo
	Village
	OceanRuin
	Shipwreck
	Monument
	Mansion
	Outpost
	RuinedPortal
	RuinedPortalN
	AncientCity
	Treasure
	Mineshaft
	DesertWell
	Geode
	Fortress
	Bastion
	EndCity
	EndGateway
	EndIsland
	TrailRuins
	TrialChambers

	numStructures
)

var structureNames = [numStructures]string{
	Feature:       "feature",
	DesertPyramid: "desert_pyramid",
	JungleTemple:  "jungle_temple",
	SwampHut:      "swamp_hut",
	Igloo:         "igloo",
	Village:       "village",
	OceanRuin:     "ocean_ruin",
	Shipwreck:     "shipwreck",
	Monument:      "monument",
	Mansion:       "mansion",
	Outpost:       "outpost",
	RuinedPortal:  "ruined_portal",
	RuinedPortalN: "ruined_portal_nether",
	AncientCity:   "ancient_city",
	Treasure:      "buried_treasure",
	Mineshaft:     "mineshaft",
	DesertWell:    "desert_well",
	Geode:         "geode",
	Fortress:      "fortress",
	Bastion:       "bastion",
	EndCity:       "end_city",
	EndGateway:    "end_gateway",
	EndIsland:     "end_island",
	TrailRuins:    "trail_ruins",
	TrialChambers: "trial_chambers",
}

func (s Structure) String() string {
	if s < 0 || s >= numStructures {
		return fmt.Sprintf("structure(%d)", int(s))
	}
	return structureNames[s]
}

// ParseStructure maps a structure name such as "village" to its type.
func ParseStructure(name string) (Structure, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range structureNames {
		if n == name {
			return Structure(s), nil
		}
	}
	return 0, fmt.Errorf("parse structure %q: %w", name, ErrUnsupported)
}

// Pos is a horizontal block position.
type Pos struct {
	X int `json:"x"`
	Z int `json:"z"`
}
