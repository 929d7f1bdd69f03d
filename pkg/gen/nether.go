package gen

import (
	"math"

	"github.com/OCharnyshevich/biomefinder/pkg/biome"
	"github.com/OCharnyshevich/biomefinder/pkg/noise"
	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

type netherPoint struct {
	temperature, humidity, offset float32
	id                            biome.ID
}

var netherPoints = func() [5]netherPoint {
	basalt := 0.175
	return [5]netherPoint{
		{0, 0, 0, biome.NetherWastes},
		{0, -0.5, 0, biome.SoulSandValley},
		{0.4, 0, 0, biome.CrimsonForest},
		{0, 0.5, 0.375 * 0.375, biome.WarpedForest},
		{-0.5, 0, float32(basalt * basalt), biome.BasaltDeltas},
	}
}()

// netherSource is the two-parameter nether biome source. The climate is
// sampled on the y=0 plane only.
type netherSource struct {
	temperature noise.DoublePerlin
	humidity    noise.DoublePerlin
}

func newNetherSource(seed uint64) (*netherSource, error) {
	r := rng.NewLcg(seed)
	temp, err := noise.NewDoublePerlin(&r, -7, 2)
	if err != nil {
		return nil, err
	}
	r.SetSeed(seed + 1)
	hum, err := noise.NewDoublePerlin(&r, -7, 2)
	if err != nil {
		return nil, err
	}
	return &netherSource{temperature: temp, humidity: hum}, nil
}

func (n *netherSource) biomeAt(x, z int) biome.ID {
	temp := float32(n.temperature.Sample(float64(x), 0, float64(z)))
	hum := float32(n.humidity.Sample(float64(x), 0, float64(z)))

	id := biome.NetherWastes
	dmin := float32(math.MaxFloat32)
	for _, p := range netherPoints {
		dx := p.temperature - temp
		dy := p.humidity - hum
		d := float32(float32(dx*dx)+float32(dy*dy)) + p.offset
		if d < dmin {
			dmin, id = d, p.id
		}
	}
	return id
}
