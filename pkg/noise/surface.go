package noise

import (
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

// Surface is the legacy blended terrain noise: a main stack interpolating
// between a lower and an upper limit stack.
type Surface struct {
	XZScale, YScale   float64
	XZFactor, YFactor float64

	OctMin, OctMax, OctMain Octave
	OctSurf, OctDepth       Octave
}

// NewSurface draws the surface noise of a dimension from the world seed.
// The overworld additionally draws the surface and depth stacks.
func NewSurface(dim mc.Dimension, seed uint64) (*Surface, error) {
	r := rng.NewLcg(seed)
	s := &Surface{}
	bands := []struct {
		dst          *Octave
		omin, length int
	}{
		{&s.OctMin, -15, 16},
		{&s.OctMax, -15, 16},
		{&s.OctMain, -7, 8},
	}
	for _, b := range bands {
		o, err := NewOctave(&r, b.omin, b.length)
		if err != nil {
			return nil, err
		}
		*b.dst = o
	}
	s.XZFactor, s.YFactor = 80, 160
	if dim == mc.End {
		s.XZScale, s.YScale = 2.0, 1.0
		return s, nil
	}

	var err error
	if s.OctSurf, err = NewOctave(&r, -3, 4); err != nil {
		return nil, err
	}
	r.Skip(262 * 10)
	if s.OctDepth, err = NewOctave(&r, -15, 16); err != nil {
		return nil, err
	}
	s.XZScale, s.YScale = 0.9999999814507745, 0.9999999814507745
	return s, nil
}

// surfaceBlend maps the main stack onto the weight of the upper limit
// stack. Weights outside [0, 1] select one limit stack alone.
func surfaceBlend(mainNoise float64) float64 {
	return 0.5 + float64(0.05*mainNoise)
}

// Sample evaluates the blended density at noise cell (x, y, z). The main
// stack picks the blend weight; limit stacks that the weight fully excludes
// are not sampled.
func (s *Surface) Sample(x, y, z int) float64 {
	xzScale := 684.412 * s.XZScale
	yScale := 684.412 * s.YScale
	xzStep := xzScale / s.XZFactor
	yStep := yScale / s.YFactor

	fx, fy, fz := float64(x), float64(y), float64(z)

	mainNoise := 0.0
	persist := 1.0
	for i := 0; i < 8; i++ {
		p := &s.OctMain.Octaves[i]
		ty := fy * yStep * persist
		mainNoise += p.Sample(
			wrapCoord(fx*xzStep*persist),
			wrapCoord(ty),
			wrapCoord(fz*xzStep*persist),
			yStep*persist, ty) / persist
		persist /= 2.0
	}

	blend := surfaceBlend(mainNoise)
	needMin := blend < 1.0
	needMax := blend > 0.0

	minNoise, maxNoise := 0.0, 0.0
	persist = 1.0
	for i := 0; i < 16; i++ {
		dx := wrapCoord(fx * xzScale * persist)
		ty := fy * yScale * persist
		dy := wrapCoord(ty)
		dz := wrapCoord(fz * xzScale * persist)
		sy := yScale * persist
		if needMin {
			minNoise += s.OctMin.Octaves[i].Sample(dx, dy, dz, sy, ty) / persist
		}
		if needMax {
			maxNoise += s.OctMax.Octaves[i].Sample(dx, dy, dz, sy, ty) / persist
		}
		persist /= 2.0
	}

	return clampedLerp(blend, minNoise/512.0, maxNoise/512.0)
}
