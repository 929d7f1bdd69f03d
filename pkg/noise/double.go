package noise

import (
	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

// ampIni is the normalising factor for a double noise whose active octave
// band spans the index.
var ampIni = [...]float64{
	0, 5.0 / 6, 10.0 / 9, 15.0 / 12, 20.0 / 15, 25.0 / 18, 30.0 / 21, 35.0 / 24, 40.0 / 27, 45.0 / 30,
}

// inputFactor stretches the second stack's coordinates so the two stacks
// never share lattice points.
const inputFactor = 337.0 / 331.0

// DoublePerlin combines two octave stacks drawn one after the other from
// the same register.
type DoublePerlin struct {
	Amplitude float64
	A, B      Octave
}

// NewDoublePerlin draws both stacks from a legacy register.
func NewDoublePerlin(r *rng.Lcg, omin, length int) (DoublePerlin, error) {
	a, err := NewOctave(r, omin, length)
	if err != nil {
		return DoublePerlin{}, err
	}
	b, err := NewOctave(r, omin, length)
	if err != nil {
		return DoublePerlin{}, err
	}
	return DoublePerlin{
		A:         a,
		B:         b,
		Amplitude: (10.0 / 6.0) * float64(length) / float64(length+1),
	}, nil
}

// NewDoublePerlinX draws both stacks from a Xoroshiro register. The
// amplitude depends on the band between the first and last non-zero
// amplitude. A positive nmax caps the total octave count, with the first
// stack taking the larger half.
func NewDoublePerlinX(x *rng.Xoroshiro, amplitudes []float64, omin, nmax int) DoublePerlin {
	na, nb := -1, -1
	if nmax > 0 {
		na = (nmax + 1) >> 1
		nb = nmax - na
	}
	dp := DoublePerlin{
		A: NewOctaveX(x, amplitudes, omin, na),
		B: NewOctaveX(x, amplitudes, omin, nb),
	}

	length := len(amplitudes)
	for i := length - 1; i >= 0 && amplitudes[i] == 0; i-- {
		length--
	}
	for i := 0; i < len(amplitudes) && amplitudes[i] == 0; i++ {
		length--
	}
	if length < 0 {
		length = 0
	}
	dp.Amplitude = ampIni[length]
	return dp
}

// Sample evaluates the combined field at (x, y, z).
func (d *DoublePerlin) Sample(x, y, z float64) float64 {
	v := d.A.Sample(x, y, z) + d.B.Sample(x*inputFactor, y*inputFactor, z*inputFactor)
	return v * d.Amplitude
}
