package gen

// The terrain offset spline maps continentalness, erosion, ridges and
// weirdness to the offset added to the depth parameter. All arithmetic is
// float32 with every intermediate rounded, matching the game. The explicit
// float32 conversions also keep multiply-adds from being fused.

type splineCoord int

const (
	byContinentalness splineCoord = iota
	byErosion
	byRidges
	byWeirdness
)

type splineValue interface {
	eval(vals *[4]float32) float32
}

type fixSpline float32

func (f fixSpline) eval(*[4]float32) float32 { return float32(f) }

type spline struct {
	coord splineCoord
	loc   []float32
	der   []float32
	val   []splineValue
}

func newSpline(c splineCoord) *spline {
	return &spline{coord: c}
}

func (s *spline) addFix(loc, val, der float32) *spline {
	return s.add(loc, fixSpline(val), der)
}

func (s *spline) add(loc float32, val splineValue, der float32) *spline {
	s.loc = append(s.loc, loc)
	s.val = append(s.val, val)
	s.der = append(s.der, der)
	return s
}

func (s *spline) eval(vals *[4]float32) float32 {
	f := vals[s.coord]
	i := 0
	for i < len(s.loc) && !(f < s.loc[i]) {
		i++
	}
	i--

	n := len(s.loc) - 1
	if i < 0 || i == n {
		if i < 0 {
			i = 0
		}
		v := s.val[i].eval(vals)
		d := s.der[i]
		if d == 0 {
			return v
		}
		return v + float32(d*float32(f-s.loc[i]))
	}

	g, h := s.loc[i], s.loc[i+1]
	k := float32(f-g) / float32(h-g)
	l, m := s.der[i], s.der[i+1]
	nv := s.val[i].eval(vals)
	o := s.val[i+1].eval(vals)
	p := float32(l*float32(h-g)) - float32(o-nv)
	q := float32(-m*float32(h-g)) + float32(o-nv)
	return lerp32(k, nv, o) + float32(float32(k*float32(1-k))*lerp32(k, p, q))
}

func lerp32(t, a, b float32) float32 {
	return a + float32(t*float32(b-a))
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func offsetValue(weirdness, continentalness float32) float32 {
	f0 := 1 - float32(float32(1-continentalness)*0.5)
	f1 := float32(0.5 * float32(1-continentalness))
	f2 := float32(float32(weirdness+1.17) * 0.46082947)
	off := float32(f2*f0) - f1
	if weirdness < -0.7 {
		return max32(off, -0.2222)
	}
	return max32(off, 0)
}

func ridgeSpline(f float32, bl bool) *spline {
	sp := newSpline(byRidges)
	i := offsetValue(-1, f)
	k := offsetValue(1, f)
	l := 1 - float32(float32(1-f)*0.5)
	u := float32(0.5 * float32(1-f))
	l = float32(u/float32(0.46082947*l)) - 1.17

	if -0.65 < l && l < 1 {
		u = offsetValue(-0.65, f)
		p := offsetValue(-0.75, f)
		q := float32(float32(p-i) * 4)
		r := offsetValue(l, f)
		s := float32(k-r) / float32(1-l)
		sp.addFix(-1, i, q)
		sp.addFix(-0.75, p, 0)
		sp.addFix(-0.65, u, 0)
		sp.addFix(l-0.01, r, 0)
		sp.addFix(l, r, s)
		sp.addFix(1, k, s)
		return sp
	}

	u = float32(float32(k-i) * 0.5)
	if bl {
		sp.addFix(-1, max32(i, 0.2), 0)
		sp.addFix(0, lerp32(0.5, i, k), u)
	} else {
		sp.addFix(-1, i, u)
	}
	sp.addFix(1, k, u)
	return sp
}

func flatOffsetSpline(f, g, h, i, j, k float32) *spline {
	sp := newSpline(byRidges)
	l := max32(float32(0.5*float32(g-f)), k)
	m := float32(5 * float32(h-g))
	sp.addFix(-1, f, l)
	sp.addFix(-0.4, g, min32(l, m))
	sp.addFix(0, h, m)
	sp.addFix(0.4, i, float32(2*float32(i-h)))
	sp.addFix(1, j, float32(0.7*float32(j-i)))
	return sp
}

func landSpline(f, g, h, i, j, k float32, bl bool) *spline {
	s1 := ridgeSpline(lerp32(i, 0.6, 1.5), bl)
	s2 := ridgeSpline(lerp32(i, 0.6, 1.0), bl)
	s3 := ridgeSpline(i, bl)
	ih := float32(0.5 * i)
	s4 := flatOffsetSpline(f-0.15, ih, ih, ih, float32(i*0.6), 0.5)
	s5 := flatOffsetSpline(f, float32(j*i), float32(g*i), ih, float32(i*0.6), 0.5)
	s6 := flatOffsetSpline(f, j, j, g, h, 0.5)
	s7 := flatOffsetSpline(f, j, j, g, h, 0.5)
	s8 := newSpline(byRidges).
		addFix(-1, f, 0).
		add(-0.4, s6, 0).
		addFix(0, h+0.07, 0)
	s9 := flatOffsetSpline(-0.02, k, k, g, h, 0)

	sp := newSpline(byErosion).
		add(-0.85, s1, 0).
		add(-0.7, s2, 0).
		add(-0.4, s3, 0).
		add(-0.35, s4, 0).
		add(-0.1, s5, 0).
		add(0.2, s6, 0)
	if bl {
		sp.add(0.4, s7, 0).
			add(0.45, s8, 0).
			add(0.55, s8, 0).
			add(0.58, s7, 0)
	}
	sp.add(0.7, s9, 0)
	return sp
}

func buildTerrainSpline() *spline {
	s1 := landSpline(-0.15, 0, 0, 0.1, 0, -0.03, false)
	s2 := landSpline(-0.1, 0.03, 0.1, 0.1, 0.01, -0.03, false)
	s3 := landSpline(-0.1, 0.03, 0.1, 0.7, 0.01, -0.03, true)
	s4 := landSpline(-0.05, 0.03, 0.1, 1.0, 0.01, 0.01, true)
	return newSpline(byContinentalness).
		addFix(-1.1, 0.044, 0).
		addFix(-1.02, -0.2222, 0).
		addFix(-0.51, -0.2222, 0).
		addFix(-0.44, -0.12, 0).
		addFix(-0.18, -0.12, 0).
		add(-0.16, s1, 0).
		add(-0.15, s1, 0).
		add(-0.1, s2, 0).
		add(0.25, s3, 0).
		add(1.0, s4, 0)
}

// terrainSpline is seed independent and never mutated after init.
var terrainSpline = buildTerrainSpline()
