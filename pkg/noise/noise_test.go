package noise

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/biomefinder/pkg/mc"
	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

func TestPerlinLegacy(t *testing.T) {
	r := rng.NewLcg(0)
	p := NewPerlin(&r)

	if p.A != 187.1277535684242 || p.B != 61.57732241190038 || p.C != 163.1788608896277 {
		t.Fatalf("offsets = (%v, %v, %v)", p.A, p.B, p.C)
	}
	if p.D[0] != 140 || p.D[1] != 157 || p.D[2] != 53 || p.D[3] != 179 {
		t.Fatalf("permutation head = %v", p.D[:4])
	}
	if r.State() != 190550943303011 {
		t.Fatalf("register state after init = %d", r.State())
	}

	tests := []struct {
		x, y, z, yamp, ymin float64
		want                float64
	}{
		{0.5, 1.5, 2.5, 0, 0, 0.059502355826617004},
		{10.25, 0, -3.75, 0, 0, 0.10897172320667027},
		{1.3, 7.7, -2.1, 0.5, 0.1, 0.555029606156421},
	}
	for _, tt := range tests {
		if got := p.Sample(tt.x, tt.y, tt.z, tt.yamp, tt.ymin); got != tt.want {
			t.Errorf("Sample(%v, %v, %v, %v, %v) = %v, want %v", tt.x, tt.y, tt.z, tt.yamp, tt.ymin, got, tt.want)
		}
	}
}

func TestPerlinXoroshiro(t *testing.T) {
	x := rng.NewXoroshiro(0)
	p := NewPerlinX(&x)
	if got := p.Sample(0.5, 1.5, 2.5, 0, 0); got != -0.04124242481074847 {
		t.Fatalf("Sample = %v", got)
	}
}

func TestOctaveLegacy(t *testing.T) {
	tests := []struct {
		omin, length int
		x, y, z      float64
		want         float64
		state        uint64
	}{
		{-7, 2, 10, 0, -30, -0.11486554441520237, 166262284179631},
		{-3, 4, 1, 2, 3, 0.02371478627338551, 44771323751223},
	}
	for _, tt := range tests {
		r := rng.NewLcg(1234)
		o, err := NewOctave(&r, tt.omin, tt.length)
		if err != nil {
			t.Fatalf("NewOctave(%d, %d): %v", tt.omin, tt.length, err)
		}
		if len(o.Octaves) != tt.length {
			t.Fatalf("octave count = %d, want %d", len(o.Octaves), tt.length)
		}
		if got := o.Sample(tt.x, tt.y, tt.z); got != tt.want {
			t.Errorf("NewOctave(%d, %d).Sample = %v, want %v", tt.omin, tt.length, got, tt.want)
		}
		if r.State() != tt.state {
			t.Errorf("NewOctave(%d, %d) left state %d, want %d", tt.omin, tt.length, r.State(), tt.state)
		}
	}
}

func TestOctaveLegacySkipsMissingOctaves(t *testing.T) {
	// A band ending below octave 0 skips 262 draws per missing octave and
	// then draws the remaining octaves in order.
	a := rng.NewLcg(5)
	oa, err := NewOctave(&a, -7, 5)
	if err != nil {
		t.Fatal(err)
	}

	b := rng.NewLcg(5)
	b.Skip(3 * 262)
	ob, err := NewOctave(&b, -4, 5)
	if err != nil {
		t.Fatal(err)
	}

	if a.State() != b.State() {
		t.Fatalf("states differ: %d != %d", a.State(), b.State())
	}
	if oa.Octaves[0].A != ob.Octaves[0].A {
		t.Errorf("first octave offsets differ")
	}
	if oa.Octaves[0].Lacunarity != 1.0/8 || ob.Octaves[0].Lacunarity != 1 {
		t.Errorf("lacunarities = %v, %v", oa.Octaves[0].Lacunarity, ob.Octaves[0].Lacunarity)
	}
}

func TestOctaveLegacyRejectsBadBand(t *testing.T) {
	tests := []struct {
		name         string
		omin, length int
	}{
		{"empty", -4, 0},
		{"negative length", -4, -2},
		{"reaches octave 1", -2, 4},
		{"positive band", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rng.NewLcg(7)
			before := r.State()
			_, err := NewOctave(&r, tt.omin, tt.length)
			if !errors.Is(err, ErrOctaveRange) {
				t.Fatalf("NewOctave(%d, %d) error = %v, want ErrOctaveRange", tt.omin, tt.length, err)
			}
			if r.State() != before {
				t.Errorf("rejected band advanced the register")
			}
		})
	}
}

func TestOctaveXSkipsZeroAmplitudes(t *testing.T) {
	x := rng.NewXoroshiro(42)
	o := NewOctaveX(&x, []float64{1, 0, 0, 2}, -4, -1)
	if len(o.Octaves) != 2 {
		t.Fatalf("octave count = %d, want 2", len(o.Octaves))
	}
	if o.Octaves[0].Lacunarity != 1.0/16 || o.Octaves[1].Lacunarity != 1.0/2 {
		t.Errorf("lacunarities = %v, %v", o.Octaves[0].Lacunarity, o.Octaves[1].Lacunarity)
	}

	// Only the fork consumes from the parent register.
	y := rng.NewXoroshiro(42)
	y.Fork()
	if x != y {
		t.Errorf("parent register advanced past the fork")
	}

	limited := NewOctaveX(&y, []float64{1, 1, 1, 1}, -4, 3)
	if len(limited.Octaves) != 3 {
		t.Errorf("nmax not honoured: %d octaves", len(limited.Octaves))
	}
}

func TestDoublePerlin(t *testing.T) {
	r := rng.NewLcg(1234)
	d, err := NewDoublePerlin(&r, -7, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Sample(10, 0, -30); got != -0.10069749313518742 {
		t.Errorf("legacy Sample = %v", got)
	}

	x := rng.NewXoroshiro(42)
	dx := NewDoublePerlinX(&x, []float64{1, 1, 0, 1, 1}, -9, -1)
	if dx.Amplitude != 1.3888888888888888 {
		t.Errorf("amplitude = %v", dx.Amplitude)
	}
	if got := dx.Sample(100, 0, -200); got != -0.01259984497568149 {
		t.Errorf("xoroshiro Sample = %v", got)
	}
}

func TestDoublePerlinOctaveSplit(t *testing.T) {
	amps := []float64{1, 1, 1, 1}
	tests := []struct {
		nmax   int
		na, nb int
	}{
		{-1, 4, 4},
		{0, 4, 4},
		{1, 1, 0},
		{2, 1, 1},
		{3, 2, 1},
		{4, 2, 2},
		{5, 3, 2},
	}
	for _, tt := range tests {
		x := rng.NewXoroshiro(9)
		d := NewDoublePerlinX(&x, amps, -4, tt.nmax)
		if len(d.A.Octaves) != tt.na || len(d.B.Octaves) != tt.nb {
			t.Errorf("nmax %d: octaves = (%d, %d), want (%d, %d)",
				tt.nmax, len(d.A.Octaves), len(d.B.Octaves), tt.na, tt.nb)
		}
	}
}

func TestDoublePerlinTrimmedAmplitude(t *testing.T) {
	tests := []struct {
		amps []float64
		want float64
	}{
		{[]float64{1.5, 0, 1, 0, 0, 0}, ampIni[3]},
		{[]float64{0, 0, 1, 1}, ampIni[2]},
		{[]float64{1, 1, 2, 2, 2, 1, 1, 1, 1}, ampIni[9]},
	}
	for _, tt := range tests {
		x := rng.NewXoroshiro(1)
		d := NewDoublePerlinX(&x, tt.amps, -8, -1)
		if d.Amplitude != tt.want {
			t.Errorf("amplitude for %v = %v, want %v", tt.amps, d.Amplitude, tt.want)
		}
	}
}

func TestSimplex(t *testing.T) {
	r := rng.NewLcg(0)
	s := NewSimplex(&r)

	tests := []struct {
		x, y, want float64
	}{
		{0.3, 0.7, 0.13665998926134204},
		{100, -50, -0.42805368132455834},
		{12.5, 3.25, -0.47514950476613416},
	}
	for _, tt := range tests {
		if got := s.Noise2D(tt.x, tt.y); got != tt.want {
			t.Errorf("Noise2D(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSimplexRange(t *testing.T) {
	r := rng.NewLcg(42)
	s := NewSimplex(&r)

	for i := 0; i < 10000; i++ {
		x := float64(i)*0.37 - 500
		y := float64(i)*0.53 - 500
		v := s.Noise2D(x, y)
		if v < -1.0 || v > 1.0 {
			t.Fatalf("Noise2D(%f, %f) = %f, out of [-1,1]", x, y, v)
		}
	}
}

func TestSurfaceBlend(t *testing.T) {
	tests := []struct {
		main float64
		want float64
	}{
		{0, 0.5},
		{3, 0.65},
		{-7.5, 0.125},
		{10, 1},
		{-10, 0},
		{12, 1.1},
	}
	for _, tt := range tests {
		if got := surfaceBlend(tt.main); got != tt.want {
			t.Errorf("surfaceBlend(%v) = %v, want %v", tt.main, got, tt.want)
		}
	}

	// Weights past either end select one limit alone.
	clamp := []struct {
		part, want float64
	}{
		{-0.2, -3},
		{0, -3},
		{0.5, 1},
		{1, 5},
		{1.1, 5},
	}
	for _, tt := range clamp {
		if got := clampedLerp(tt.part, -3, 5); got != tt.want {
			t.Errorf("clampedLerp(%v, -3, 5) = %v, want %v", tt.part, got, tt.want)
		}
	}
}

func newSurface(t *testing.T, dim mc.Dimension, seed uint64) *Surface {
	t.Helper()
	s, err := NewSurface(dim, seed)
	if err != nil {
		t.Fatalf("NewSurface(%v, %d): %v", dim, seed, err)
	}
	return s
}

func TestSurfaceDeterministic(t *testing.T) {
	a := newSurface(t, mc.End, 99)
	b := newSurface(t, mc.End, 99)
	if len(a.OctMin.Octaves) != 16 || len(a.OctMain.Octaves) != 8 {
		t.Fatalf("octave counts = %d, %d", len(a.OctMin.Octaves), len(a.OctMain.Octaves))
	}
	if len(a.OctDepth.Octaves) != 0 {
		t.Errorf("end surface noise should not draw a depth stack")
	}
	for y := 0; y < 33; y += 4 {
		if a.Sample(100, y, -100) != b.Sample(100, y, -100) {
			t.Fatalf("Sample not deterministic at y=%d", y)
		}
	}

	o := newSurface(t, mc.Overworld, 99)
	if len(o.OctSurf.Octaves) != 4 || len(o.OctDepth.Octaves) != 16 {
		t.Errorf("overworld stacks = %d, %d", len(o.OctSurf.Octaves), len(o.OctDepth.Octaves))
	}
}

func TestWrapCoord(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1000.5, 1000.5},
		{-1000.5, -1000.5},
		{33554432, 0},
		{33554432 * 0.75, -33554432 * 0.25},
	}
	for _, tt := range tests {
		if got := wrapCoord(tt.in); got != tt.want {
			t.Errorf("wrapCoord(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
