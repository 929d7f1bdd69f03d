package noise

import (
	"errors"
	"fmt"

	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

// ErrOctaveRange is returned for a legacy band that is empty or reaches
// above octave 0.
var ErrOctaveRange = errors.New("noise: octave band outside legacy range")

// Octave is a stack of Perlin octaves whose contributions are summed.
type Octave struct {
	Octaves []Perlin
}

// NewOctave draws a legacy stack covering octaves omin .. omin+length-1. The
// stack is stored highest frequency first. Octaves above 0 are not part of
// the legacy scheme; when the band ends below octave 0 the register skips
// the 262 draws each missing octave would have consumed, so callers sharing
// the register stay in step with the game.
func NewOctave(r *rng.Lcg, omin, length int) (Octave, error) {
	end := omin + length - 1
	if length < 1 || end > 0 {
		return Octave{}, fmt.Errorf("%w: [%d, %d]", ErrOctaveRange, omin, end)
	}
	persist := 1.0 / (float64(int64(1)<<length) - 1.0)
	lacuna := pow2(end)

	o := Octave{Octaves: make([]Perlin, length)}
	i := 0
	if end == 0 {
		o.Octaves[0] = NewPerlin(r)
		o.Octaves[0].Amplitude = persist
		o.Octaves[0].Lacunarity = lacuna
		persist *= 2.0
		lacuna *= 0.5
		i = 1
	} else {
		r.Skip(-end * 262)
	}
	for ; i < length; i++ {
		o.Octaves[i] = NewPerlin(r)
		o.Octaves[i].Amplitude = persist
		o.Octaves[i].Lacunarity = lacuna
		persist *= 2.0
		lacuna *= 0.5
	}
	return o, nil
}

// NewOctaveX draws a Xoroshiro stack. Octave omin+i is active when
// amplitudes[i] is non-zero; each active octave is seeded independently
// from the hash of its name, so inactive octaves consume nothing. At most
// nmax octaves are built when nmax is non-negative.
func NewOctaveX(x *rng.Xoroshiro, amplitudes []float64, omin, nmax int) Octave {
	length := len(amplitudes)
	lacuna := pow2(omin)
	persist := pow2(length-1) / (pow2(length) - 1.0)
	base := x.Fork()

	var o Octave
	for i := 0; i < length && len(o.Octaves) != nmax; i, lacuna, persist = i+1, lacuna*2.0, persist*0.5 {
		if amplitudes[i] == 0 {
			continue
		}
		pr := base.FromHashOf(fmt.Sprintf("octave_%d", omin+i))
		p := NewPerlinX(&pr)
		p.Amplitude = amplitudes[i] * persist
		p.Lacunarity = lacuna
		o.Octaves = append(o.Octaves, p)
	}
	return o
}

// Sample sums every octave at its own frequency.
func (o *Octave) Sample(x, y, z float64) float64 {
	v := 0.0
	for i := range o.Octaves {
		p := &o.Octaves[i]
		lf := p.Lacunarity
		v += p.Amplitude * p.Sample(wrapCoord(x*lf), wrapCoord(y*lf), wrapCoord(z*lf), 0, 0)
	}
	return v
}

func pow2(e int) float64 {
	if e >= 0 {
		return float64(int64(1) << e)
	}
	return 1.0 / float64(int64(1)<<-e)
}
