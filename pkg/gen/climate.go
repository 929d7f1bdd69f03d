package gen

import (
	"math"

	"github.com/OCharnyshevich/biomefinder/pkg/noise"
	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

// Climate parameter indices. A ClimatePoint stores each parameter scaled by
// 10000 and truncated, the resolution the biome table is defined at.
const (
	Temperature = iota
	Humidity
	Continentalness
	Erosion
	Depth
	Weirdness
	numClimate
)

// ClimatePoint is one sample of the six climate parameters.
type ClimatePoint [numClimate]int64

type climateNoise struct {
	shift           noise.DoublePerlin
	temperature     noise.DoublePerlin
	humidity        noise.DoublePerlin
	continentalness noise.DoublePerlin
	erosion         noise.DoublePerlin
	weirdness       noise.DoublePerlin
}

type climateDef struct {
	name, large string
	amplitudes  []float64
	omin, lomin int
}

var (
	shiftDef    = climateDef{"minecraft:offset", "minecraft:offset", []float64{1, 1, 1, 0}, -3, -3}
	tempDef     = climateDef{"minecraft:temperature", "minecraft:temperature_large", []float64{1.5, 0, 1, 0, 0, 0}, -10, -12}
	humidityDef = climateDef{"minecraft:vegetation", "minecraft:vegetation_large", []float64{1, 1, 0, 0, 0, 0}, -8, -10}
	contDef     = climateDef{"minecraft:continentalness", "minecraft:continentalness_large", []float64{1, 1, 2, 2, 2, 1, 1, 1, 1}, -9, -11}
	erosionDef  = climateDef{"minecraft:erosion", "minecraft:erosion_large", []float64{1, 1, 0, 1, 1}, -9, -11}
	weirdDef    = climateDef{"minecraft:ridge", "minecraft:ridge", []float64{1, 2, 1, 0, 0, 0}, -7, -7}
)

func newClimateNoise(seed uint64, large bool) *climateNoise {
	x := rng.NewXoroshiro(seed)
	base := x.Fork()

	build := func(d climateDef) noise.DoublePerlin {
		name, omin := d.name, d.omin
		if large {
			name, omin = d.large, d.lomin
		}
		pr := base.FromHashOf(name)
		return noise.NewDoublePerlinX(&pr, d.amplitudes, omin, -1)
	}
	return &climateNoise{
		shift:           build(shiftDef),
		temperature:     build(tempDef),
		humidity:        build(humidityDef),
		continentalness: build(contDef),
		erosion:         build(erosionDef),
		weirdness:       build(weirdDef),
	}
}

func quantize(v float32) int64 {
	return int64(float32(10000 * v))
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// sample evaluates the climate at quart coordinates.
func (c *climateNoise) sample(x, y, z int) ClimatePoint {
	fx, fz := float64(x), float64(z)

	px := fx + c.shift.Sample(fx, 0, fz)*4.0
	pz := fz + c.shift.Sample(fz, fx, 0)*4.0

	cont := float32(c.continentalness.Sample(px, 0, pz))
	ero := float32(c.erosion.Sample(px, 0, pz))
	weird := float32(c.weirdness.Sample(px, 0, pz))

	vals := [4]float32{
		byContinentalness: cont,
		byErosion:         ero,
		byRidges:          -3.0 * float32(abs32(abs32(weird)-0.6666667)-0.33333334),
		byWeirdness:       weird,
	}
	off := float64(terrainSpline.eval(&vals) + 0.015)
	depth := float32(1.0 - float64(y*4)/128.0 - 83.0/160.0 + off)

	temp := float32(c.temperature.Sample(px, 0, pz))
	hum := float32(c.humidity.Sample(px, 0, pz))

	return ClimatePoint{
		Temperature:     quantize(temp),
		Humidity:        quantize(hum),
		Continentalness: quantize(cont),
		Erosion:         quantize(ero),
		Depth:           quantize(depth),
		Weirdness:       quantize(weird),
	}
}
