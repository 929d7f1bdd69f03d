package finder

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/biomefinder/pkg/biome"
	"github.com/OCharnyshevich/biomefinder/pkg/gen"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
)

func TestIsViableStructurePos(t *testing.T) {
	g := overworld(t, mc.V1_21_WD, testSeed)
	tests := []struct {
		s    Structure
		x, z int
		want bool
	}{
		{Village, 288, 1984, true},
		{Village, 1000, 1000, false},
		{JungleTemple, 1000, 1000, true},
		{Fortress, 0, 0, false},
		{EndCity, 0, 0, false},
	}
	for _, tt := range tests {
		got, err := IsViableStructurePos(g, tt.s, tt.x, tt.z, 0)
		if err != nil {
			t.Errorf("IsViableStructurePos(%v, %d, %d): %v", tt.s, tt.x, tt.z, err)
			continue
		}
		if got != tt.want {
			t.Errorf("IsViableStructurePos(%v, %d, %d) = %v, want %v", tt.s, tt.x, tt.z, got, tt.want)
		}
	}
}

func TestIsViableStructurePosNether(t *testing.T) {
	g, err := gen.Setup(mc.V1_21_WD, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.ApplySeed(mc.Nether, testSeed); err != nil {
		t.Fatal(err)
	}
	for _, p := range []Pos{{0, 0}, {400, -1200}, {-3000, 77}} {
		ok, err := IsViableStructurePos(g, Fortress, p.X, p.Z, 0)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("fortress at %v not viable in the nether", p)
		}
		if ok, _ := IsViableStructurePos(g, Village, p.X, p.Z, 0); ok {
			t.Errorf("village at %v viable in the nether", p)
		}
	}
}

func TestIsViableStructurePosErrors(t *testing.T) {
	g, err := gen.Setup(mc.V1_21_WD, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := IsViableStructurePos(g, Village, 0, 0, 0); !errors.Is(err, gen.ErrNotSeeded) {
		t.Errorf("unseeded err = %v", err)
	}
	if _, err := IsViableStructurePos(g, Feature, 0, 0, 0); !errors.Is(err, ErrUnsupported) {
		t.Errorf("feature in 1.21 err = %v", err)
	}
}

func TestIsViableStructurePosVillageVariants(t *testing.T) {
	g := overworld(t, mc.V1_21_WD, testSeed)
	const x, z = 288, 1984
	id, err := startBiome(g, Village, x, z)
	if err != nil {
		t.Fatal(err)
	}
	own := villageVariant(id)
	if own == 0 {
		t.Fatalf("village start biome %v has no variant", id)
	}
	all := VillagePlains | VillageDesert | VillageSavanna | VillageTaiga | VillageSnowy | VillageMeadow

	tests := []struct {
		name  string
		flags Flags
		want  bool
	}{
		{"any", 0, true},
		{"own", own, true},
		{"all", all, true},
		{"others", all &^ own, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsViableStructurePos(g, Village, x, z, tt.flags)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("flags %#x: viable = %v, want %v", uint32(tt.flags), got, tt.want)
			}
		})
	}
}

func TestVillageVariant(t *testing.T) {
	tests := []struct {
		id   biome.ID
		want Flags
	}{
		{biome.Plains, VillagePlains},
		{biome.Desert, VillageDesert},
		{biome.Savanna, VillageSavanna},
		{biome.Taiga, VillageTaiga},
		{biome.SnowyPlains, VillageSnowy},
		{biome.Meadow, VillageMeadow},
		{biome.Forest, 0},
	}
	for _, tt := range tests {
		if got := villageVariant(tt.id); got != tt.want {
			t.Errorf("villageVariant(%v) = %#x, want %#x", tt.id, uint32(got), uint32(tt.want))
		}
	}
}

func TestIsViableStructurePosLayered(t *testing.T) {
	tests := []struct {
		v     mc.Version
		s     Structure
		scale int
	}{
		{mc.V1_16_1, Village, 4},
		{mc.V1_12, Village, 4},
		{mc.V1_12, DesertPyramid, 1},
		{mc.V1_8, SwampHut, 1},
	}
	for _, tt := range tests {
		t.Run(tt.v.String()+"/"+tt.s.String(), func(t *testing.T) {
			g := overworld(t, tt.v, testSeed)
			var viable int
			for rz := -4; rz < 4; rz++ {
				for rx := -4; rx < 4; rx++ {
					p, ok, err := StructurePos(tt.s, tt.v, testSeed, rx, rz)
					if err != nil {
						t.Fatal(err)
					}
					if !ok {
						continue
					}
					got, err := IsViableStructurePos(g, tt.s, p.X, p.Z, 0)
					if err != nil {
						t.Fatal(err)
					}

					x, z := (p.X>>4)<<2+2, (p.Z>>4)<<2+2
					if tt.scale == 1 {
						x, z = (p.X>>4)<<4+8, (p.Z>>4)<<4+8
					}
					id, err := g.BiomeAt(tt.scale, x, 0, z)
					if err != nil {
						t.Fatal(err)
					}
					if want := IsViableFeatureBiome(tt.v, tt.s, id); got != want {
						t.Errorf("region %d,%d in %v: viable = %v, want %v", rx, rz, id, got, want)
					}
					if got {
						viable++
					}
				}
			}
			if tt.s == Village && viable == 0 {
				t.Error("no viable village in 64 regions")
			}
		})
	}
}

func TestIsViableFeatureBiome(t *testing.T) {
	tests := []struct {
		v    mc.Version
		s    Structure
		id   biome.ID
		want bool
	}{
		{mc.V1_21_WD, Village, biome.Meadow, true},
		{mc.V1_17, Village, biome.Meadow, false},
		{mc.V1_13, Village, biome.Taiga, false},
		{mc.V1_14, Village, biome.SnowyPlains, true},
		{mc.V1_21_WD, Monument, biome.DeepColdOcean, true},
		{mc.V1_21_WD, Monument, biome.ColdOcean, false},
		{mc.V1_21_WD, Shipwreck, biome.SnowyBeach, true},
		{mc.V1_21_WD, Bastion, biome.BasaltDeltas, false},
		{mc.V1_21_WD, Bastion, biome.CrimsonForest, true},
		{mc.V1_21_WD, TrialChambers, biome.DeepDark, false},
		{mc.V1_21_WD, AncientCity, biome.DeepDark, true},
		{mc.V1_21_WD, Outpost, biome.CherryGrove, true},
		{mc.V1_19, Outpost, biome.CherryGrove, false},
		{mc.V1_21_WD, EndCity, biome.SmallEndIslands, false},
	}
	for _, tt := range tests {
		if got := IsViableFeatureBiome(tt.v, tt.s, tt.id); got != tt.want {
			t.Errorf("IsViableFeatureBiome(%v, %v, %v) = %v, want %v", tt.v, tt.s, tt.id, got, tt.want)
		}
	}
}

func TestIsStrongholdBiome(t *testing.T) {
	tests := []struct {
		v    mc.Version
		id   biome.ID
		want bool
	}{
		{mc.V1_21_WD, biome.Plains, true},
		{mc.V1_21_WD, biome.MushroomFields, true},
		{mc.V1_21_WD, biome.CherryGrove, true},
		{mc.V1_21_WD, biome.DripstoneCaves, true},
		{mc.V1_21_WD, biome.Ocean, false},
		{mc.V1_21_WD, biome.DeepFrozenOcean, false},
		{mc.V1_21_WD, biome.River, false},
		{mc.V1_21_WD, biome.Beach, false},
		{mc.V1_21_WD, biome.Swamp, false},
		{mc.V1_21_WD, biome.MangroveSwamp, false},
		{mc.V1_21_WD, biome.DeepDark, false},
		{mc.V1_21_WD, biome.StonyShore, false},
		{mc.V1_17, biome.StonyShore, true},
		{mc.V1_21_WD, biome.CrimsonForest, false},
		{mc.V1_21_WD, biome.SmallEndIslands, false},
		{mc.V1_6, biome.Swamp, true},
		{mc.V1_6, biome.MushroomFields, false},
	}
	for _, tt := range tests {
		if got := IsStrongholdBiome(tt.v, tt.id); got != tt.want {
			t.Errorf("IsStrongholdBiome(%v, %v) = %v, want %v", tt.v, tt.id, got, tt.want)
		}
	}
}
