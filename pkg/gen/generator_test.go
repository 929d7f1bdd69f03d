package gen

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/biomefinder/pkg/biome"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
)

const testSeed = 1234567890

func seeded(t *testing.T, v mc.Version, flags Flag, dim mc.Dimension, seed uint64) *Generator {
	t.Helper()
	g, err := Setup(v, flags)
	if err != nil {
		t.Fatalf("Setup(%v): %v", v, err)
	}
	if err := g.ApplySeed(dim, seed); err != nil {
		t.Fatalf("ApplySeed(%v, %d): %v", dim, seed, err)
	}
	return g
}

func TestSetupRejects(t *testing.T) {
	if _, err := Setup(mc.Undef, 0); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Setup(Undef) err = %v", err)
	}
	if _, err := Setup(mc.Newest, 1<<5); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Setup with unknown flag err = %v", err)
	}

	g, err := Setup(mc.V1_6, 0)
	if err != nil {
		t.Fatalf("Setup(1.6): %v", err)
	}
	if err := g.ApplySeed(mc.Overworld, 1); !errors.Is(err, ErrUnsupported) {
		t.Errorf("1.6 overworld err = %v", err)
	}
	if err := g.ApplySeed(mc.Dimension(7), 1); !errors.Is(err, ErrUnsupported) {
		t.Errorf("bad dimension err = %v", err)
	}
	if err := g.ApplySeed(mc.Nether, 1); err != nil {
		t.Errorf("1.6 nether: %v", err)
	}

	for _, v := range []mc.Version{mc.V1_7, mc.V1_12, mc.V1_17} {
		g, err := Setup(v, 0)
		if err != nil {
			t.Fatalf("Setup(%v): %v", v, err)
		}
		if err := g.ApplySeed(mc.Overworld, 1); err != nil {
			t.Errorf("%v overworld: %v", v, err)
		}
	}
}

func TestNotSeeded(t *testing.T) {
	g, err := Setup(mc.Newest, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.BiomeAt(4, 0, 0, 0); !errors.Is(err, ErrNotSeeded) {
		t.Errorf("BiomeAt err = %v", err)
	}
	if _, err := g.GenBiomes(make([]biome.ID, 4), Range{Scale: 4, SX: 2, SZ: 2}); !errors.Is(err, ErrNotSeeded) {
		t.Errorf("GenBiomes err = %v", err)
	}
	if _, _, err := g.MapApproxHeight(nil, 0, 0, 1, 1); !errors.Is(err, ErrNotSeeded) {
		t.Errorf("MapApproxHeight err = %v", err)
	}
}

func TestClimate(t *testing.T) {
	g := seeded(t, mc.V1_21_WD, 0, mc.Overworld, testSeed)

	tests := []struct {
		x, y, z int
		want    ClimatePoint
	}{
		{72, 64, 496, ClimatePoint{4183, -566, 2754, -1842, -14138, 1773}},
		{0, 0, 0, ClimatePoint{2664, 3361, -503, 2295, 5091, -3730}},
	}
	for _, tt := range tests {
		got, err := g.Climate(tt.x, tt.y, tt.z)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Climate(%d, %d, %d) = %v, want %v", tt.x, tt.y, tt.z, got, tt.want)
		}
	}

	large := seeded(t, mc.V1_21_WD, LargeBiomes, mc.Overworld, testSeed)
	got, err := large.Climate(72, 16, 496)
	if err != nil {
		t.Fatal(err)
	}
	if want := (ClimatePoint{1874, 3561, 2759, -6462, 2683, 1773}); got != want {
		t.Errorf("large Climate = %v, want %v", got, want)
	}
	if id, _ := large.BiomeAt(4, 72, 16, 496); id != biome.DarkForest {
		t.Errorf("large BiomeAt = %v, want dark_forest", id)
	}

	nether := seeded(t, mc.V1_21_WD, 0, mc.Nether, testSeed)
	if _, err := nether.Climate(0, 0, 0); !errors.Is(err, ErrUnsupported) {
		t.Errorf("nether Climate err = %v", err)
	}
}

func TestBiomeAtOverworld(t *testing.T) {
	wd := seeded(t, mc.V1_21_WD, 0, mc.Overworld, testSeed)
	old := seeded(t, mc.V1_18, 0, mc.Overworld, 0)

	tests := []struct {
		name    string
		g       *Generator
		scale   int
		x, y, z int
		want    biome.ID
	}{
		{"quart", wd, 4, 288 >> 2, 256 >> 2, 1984 >> 2, biome.Plains},
		{"block", wd, 1, 288, 64, 1984, biome.Plains},
		{"block ocean", wd, 1, -1000, -20, 3000, biome.Ocean},
		{"origin 1.18", old, 1, 0, 64, 0, biome.River},
		{"forest 1.18", old, 1, 100, 70, -200, biome.Forest},
		{"savanna 1.18", old, 1, -37, 12, 555, biome.Savanna},
	}
	for _, tt := range tests {
		got, err := tt.g.BiomeAt(tt.scale, tt.x, tt.y, tt.z)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: BiomeAt(%d, %d, %d, %d) = %v, want %v", tt.name, tt.scale, tt.x, tt.y, tt.z, got, tt.want)
		}
	}

	if _, err := wd.BiomeAt(8, 0, 0, 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("scale 8 err = %v", err)
	}
}

func TestBiomeAtNether(t *testing.T) {
	g := seeded(t, mc.V1_21_WD, 0, mc.Nether, testSeed)
	tests := []struct {
		x, z int
		want biome.ID
	}{
		{0, 0, biome.NetherWastes},
		{100, -50, biome.CrimsonForest},
		{-300, 700, biome.CrimsonForest},
		{25, 25, biome.CrimsonForest},
		{1000, 1000, biome.BasaltDeltas},
		{-64, -64, biome.NetherWastes},
	}
	for _, tt := range tests {
		if got, _ := g.BiomeAt(4, tt.x, 0, tt.z); got != tt.want {
			t.Errorf("nether BiomeAt(4, %d, 0, %d) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}

	legacy := seeded(t, mc.V1_15, 0, mc.Nether, testSeed)
	if got, _ := legacy.BiomeAt(4, 1000, 0, 1000); got != biome.NetherWastes {
		t.Errorf("1.15 nether = %v", got)
	}
}

func TestBiomeAtEnd(t *testing.T) {
	g := seeded(t, mc.V1_21_WD, 0, mc.End, testSeed)
	tests := []struct {
		x, z int
		want biome.ID
	}{
		{0, 0, biome.TheEnd},
		{400, 0, biome.EndHighlands},
		{-1000, 256, biome.SmallEndIslands},
		{2000, 2000, biome.SmallEndIslands},
		{600, -600, biome.SmallEndIslands},
		{300, 300, biome.EndBarrens},
	}
	for _, tt := range tests {
		if got, _ := g.BiomeAt(4, tt.x, 0, tt.z); got != tt.want {
			t.Errorf("end BiomeAt(4, %d, 0, %d) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}

	heights := []struct {
		x, z int
		want float32
	}{
		{0, 0, 80},
		{250, -3, 35.100074768066406},
		{-501, 777, -43.422454833984375},
	}
	for _, tt := range heights {
		if got := g.end.height(tt.x, tt.z); got != tt.want {
			t.Errorf("end height(%d, %d) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}

	legacy := seeded(t, mc.V1_8, 0, mc.End, testSeed)
	if got, _ := legacy.BiomeAt(4, 400, 0, 0); got != biome.TheEnd {
		t.Errorf("1.8 end = %v", got)
	}
}

func TestApplySeedIdempotent(t *testing.T) {
	g := seeded(t, mc.V1_20, 0, mc.Overworld, 42)
	first, _ := g.BiomeAt(4, 123, 10, -456)

	if err := g.ApplySeed(mc.Nether, 99); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := g.ApplySeed(mc.Overworld, 42); err != nil {
			t.Fatal(err)
		}
	}
	again, _ := g.BiomeAt(4, 123, 10, -456)
	if first != again {
		t.Errorf("after reseeding: %v != %v", again, first)
	}
	if g.nether != nil {
		t.Error("nether state survived an overworld reseed")
	}
}
