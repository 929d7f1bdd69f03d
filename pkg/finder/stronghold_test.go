package finder

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/biomefinder/pkg/gen"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

func overworld(t *testing.T, v mc.Version, seed uint64) *gen.Generator {
	t.Helper()
	g, err := gen.Setup(v, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.ApplySeed(mc.Overworld, seed); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestInitFirstStronghold(t *testing.T) {
	sh, approx := InitFirstStronghold(mc.V1_21_WD, testSeed)
	want := StrongholdIter{
		Version:    mc.V1_21_WD,
		NextApprox: Pos{-520, -2600},
		RingMax:    3,
		Angle:      4.5127238872158175,
		Dist:       166.02303278628128,
		Rnds:       197462054985395,
	}
	if sh != want {
		t.Fatalf("InitFirstStronghold = %+v, want %+v", sh, want)
	}
	if approx != want.NextApprox {
		t.Errorf("approx = %v, want %v", approx, want.NextApprox)
	}
	if err := sh.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestNextStronghold(t *testing.T) {
	g := overworld(t, mc.V1_21_WD, testSeed)
	sh, _ := InitFirstStronghold(mc.V1_21_WD, testSeed)

	more, err := sh.Next(g)
	if err != nil {
		t.Fatal(err)
	}
	if !more {
		t.Fatal("search exhausted after one stronghold")
	}
	want := StrongholdIter{
		Version:    mc.V1_21_WD,
		Pos:        Pos{-492, -2684},
		NextApprox: Pos{1528, 520},
		Index:      1,
		RingMax:    3,
		RingIdx:    1,
		Angle:      6.607118989609013,
		Dist:       99.97235323528389,
		Rnds:       228792104649703,
	}
	if sh != want {
		t.Errorf("Next = %+v, want %+v", sh, want)
	}
}

func TestNextStrongholdRingOrder(t *testing.T) {
	g := overworld(t, mc.V1_21_WD, 42)
	sh, _ := InitFirstStronghold(mc.V1_21_WD, 42)
	prev := sh
	for i := 0; i < 5; i++ {
		if _, err := sh.Next(g); err != nil {
			t.Fatal(err)
		}
		if sh.RingNum < prev.RingNum || sh.RingNum == prev.RingNum && sh.RingIdx <= prev.RingIdx {
			t.Fatalf("step %d went from ring %d/%d to %d/%d", i, prev.RingNum, prev.RingIdx, sh.RingNum, sh.RingIdx)
		}
		if sh.Pos.X&15 != 4 || sh.Pos.Z&15 != 4 {
			t.Errorf("step %d: stronghold %v not at chunk offset 4", i, sh.Pos)
		}
		prev = sh
	}
}

func TestStrongholdRings(t *testing.T) {
	sh, _ := InitFirstStronghold(mc.V1_21_WD, testSeed)
	r := rng.LcgFromState(sh.Rnds)
	total := StrongholdCount(sh.Version)

	sizes := []int{sh.RingMax}
	for sh.Index < total {
		ring := sh.RingNum
		sh.advance(&r, total)
		if sh.RingNum != ring {
			sizes = append(sizes, sh.RingMax)
		}
	}
	want := []int{3, 6, 10, 15, 21, 28, 36, 10}
	if len(sizes) != len(want) {
		t.Fatalf("ring sizes %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("ring sizes %v, want %v", sizes, want)
		}
	}
	if sh.RingNum != 7 || sh.RingIdx != 9 {
		t.Errorf("final ring %d slot %d, want 7 slot 9", sh.RingNum, sh.RingIdx)
	}
	sh.Rnds = r.State()
	if err := sh.Validate(); err != nil {
		t.Errorf("exhausted cursor: %v", err)
	}
}

func TestStrongholdExhausted(t *testing.T) {
	g := overworld(t, mc.V1_21_WD, testSeed)
	sh, _ := InitFirstStronghold(mc.V1_21_WD, testSeed)
	sh.Index, sh.RingNum, sh.RingIdx, sh.RingMax = 128, 7, 9, 10
	before := sh
	more, err := sh.Next(g)
	if err != nil || more {
		t.Fatalf("Next on exhausted cursor = %v, %v", more, err)
	}
	if sh != before {
		t.Errorf("exhausted cursor changed: %+v", sh)
	}
}

func TestStrongholdInvalidCursor(t *testing.T) {
	g := overworld(t, mc.V1_21_WD, testSeed)
	base, _ := InitFirstStronghold(mc.V1_21_WD, testSeed)

	tests := []struct {
		name   string
		mutate func(*StrongholdIter)
	}{
		{"slot past ring", func(sh *StrongholdIter) { sh.RingIdx = 3 }},
		{"empty ring", func(sh *StrongholdIter) { sh.RingMax = 0 }},
		{"negative index", func(sh *StrongholdIter) { sh.Index = -1 }},
		{"slot past index", func(sh *StrongholdIter) { sh.RingIdx = 2 }},
		{"wide register", func(sh *StrongholdIter) { sh.Rnds = 1 << 50 }},
		{"bad version", func(sh *StrongholdIter) { sh.Version = mc.Undef }},
		{"other version", func(sh *StrongholdIter) { sh.Version = mc.V1_20 }},
	}
	for _, tt := range tests {
		sh := base
		tt.mutate(&sh)
		if _, err := sh.Next(g); !errors.Is(err, ErrInvalidCursor) {
			t.Errorf("%s: err = %v, want ErrInvalidCursor", tt.name, err)
		}
	}
}

func TestNextStrongholdNeedsSeededOverworld(t *testing.T) {
	sh, _ := InitFirstStronghold(mc.V1_21_WD, testSeed)

	g, err := gen.Setup(mc.V1_21_WD, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sh.Next(g); !errors.Is(err, gen.ErrNotSeeded) {
		t.Errorf("unseeded err = %v", err)
	}

	if err := g.ApplySeed(mc.Nether, testSeed); err != nil {
		t.Fatal(err)
	}
	if _, err := sh.Next(g); !errors.Is(err, ErrUnsupported) {
		t.Errorf("nether err = %v", err)
	}
}

func TestLegacyStrongholds(t *testing.T) {
	sh, _ := InitFirstStronghold(mc.V1_8, testSeed)
	if sh.Dist < 40 || sh.Dist >= 72 {
		t.Errorf("legacy first distance %v outside [40, 72)", sh.Dist)
	}
	r := rng.LcgFromState(sh.Rnds)
	for sh.Index < StrongholdCount(mc.V1_8) {
		sh.advance(&r, 3)
	}
	if sh.Index != 3 || sh.RingNum != 0 || sh.RingIdx != 0 {
		t.Errorf("legacy cursor after three = %+v", sh)
	}
}

func TestNextStrongholdLayered(t *testing.T) {
	for _, v := range []mc.Version{mc.V1_16_1, mc.V1_12, mc.V1_8} {
		t.Run(v.String(), func(t *testing.T) {
			g := overworld(t, v, testSeed)
			run := func() []Pos {
				sh, _ := InitFirstStronghold(v, testSeed)
				var out []Pos
				for i := 0; i < 2; i++ {
					approx := sh.NextApprox
					more, err := sh.Next(g)
					if err != nil {
						t.Fatal(err)
					}
					if !more {
						t.Fatalf("search exhausted after %d strongholds", i+1)
					}
					dx, dz := sh.Pos.X-approx.X, sh.Pos.Z-approx.Z
					if dx < -strongholdRadius-16 || dx > strongholdRadius+16 ||
						dz < -strongholdRadius-16 || dz > strongholdRadius+16 {
						t.Errorf("stronghold %d at %v, approx %v", i, sh.Pos, approx)
					}
					if sh.Pos.X&15 != 4 || sh.Pos.Z&15 != 4 {
						t.Errorf("stronghold %d at %v not at chunk offset 4", i, sh.Pos)
					}
					out = append(out, sh.Pos)
				}
				return out
			}
			a, b := run(), run()
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("stronghold %d: %v then %v", i, a[i], b[i])
				}
			}
		})
	}
}
