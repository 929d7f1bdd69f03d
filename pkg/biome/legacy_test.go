package biome

import (
	"testing"

	"github.com/OCharnyshevich/biomefinder/pkg/mc"
)

func TestMutated(t *testing.T) {
	tests := []struct {
		v    mc.Version
		id   ID
		want ID
	}{
		{mc.V1_12, Plains, SunflowerPlains},
		{mc.V1_12, SnowyPlains, IceSpikes},
		{mc.V1_7, BirchForest, OldGrowthBirchForest},
		{mc.V1_9, BirchForest, TallBirchHills},
		{mc.V1_10, BirchForestHills, None},
		{mc.V1_11, BirchForestHills, TallBirchHills},
		{mc.V1_12, BadlandsPlateau, ModifiedBadlandsPlat},
		{mc.V1_12, Ocean, None},
		{mc.V1_12, River, None},
	}
	for _, tt := range tests {
		got := Mutated(tt.v, tt.id)
		if got != tt.want {
			t.Errorf("Mutated(%v, %v) = %v, want %v", tt.v, tt.id, got, tt.want)
		}
		if got != None && !IsMutation(got) {
			t.Errorf("Mutated(%v, %v) = %v is not a mutation", tt.v, tt.id, got)
		}
	}
}

func TestAreSimilar(t *testing.T) {
	tests := []struct {
		v    mc.Version
		a, b ID
		want bool
	}{
		{mc.V1_12, Forest, DarkForest, true},
		{mc.V1_12, Forest, Plains, false},
		{mc.V1_12, Taiga, SnowyTaigaHills, true},
		{mc.V1_12, Badlands, WoodedBadlands, true},
		{mc.V1_12, WoodedBadlands, Badlands, false},
		{mc.V1_12, WoodedBadlands, BadlandsPlateau, true},
		{mc.V1_16, WoodedBadlands, Badlands, false},
		{mc.V1_16, Badlands, WoodedBadlands, false},
		{mc.V1_16, WoodedBadlands, BadlandsPlateau, true},
		{mc.V1_12, TheVoid, TheVoid, true},
		{mc.V1_12, TheVoid, Plains, false},
	}
	for _, tt := range tests {
		if got := AreSimilar(tt.v, tt.a, tt.b); got != tt.want {
			t.Errorf("AreSimilar(%v, %v, %v) = %v, want %v", tt.v, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsOverworldBirch(t *testing.T) {
	tests := []struct {
		v    mc.Version
		want bool
	}{
		{mc.V1_8, true},
		{mc.V1_9, false},
		{mc.V1_10, false},
		{mc.V1_11, true},
		{mc.V1_21_WD, true},
	}
	for _, tt := range tests {
		if got := IsOverworld(tt.v, OldGrowthBirchForest); got != tt.want {
			t.Errorf("IsOverworld(%v, old_growth_birch_forest) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
