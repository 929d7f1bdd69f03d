package gen

import (
	"sync"

	"github.com/OCharnyshevich/biomefinder/pkg/biome"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
)

// paramRange is a closed interval of one quantized climate parameter.
type paramRange struct {
	min, max int64
}

func span(a, b float32) paramRange { return paramRange{quantize(a), quantize(b)} }
func point(v float32) paramRange   { return span(v, v) }
func join(a, b paramRange) paramRange {
	return paramRange{a.min, b.max}
}

// climateEntry is one biome region of the overworld climate space: the six
// climate intervals plus the offset interval, which is always zero.
type climateEntry struct {
	p  [numClimate + 1]paramRange
	id biome.ID
}

type paramTier int

const (
	tier1_18 paramTier = iota
	tier1_19           // swamp split, deep dark
	tier1_20           // cherry grove
	tier1_21           // pale garden
	numTiers
)

func tierOf(v mc.Version) paramTier {
	switch {
	case v >= mc.V1_21_WD:
		return tier1_21
	case v >= mc.V1_20:
		return tier1_20
	case v >= mc.V1_19_2:
		return tier1_19
	}
	return tier1_18
}

var paramLists [numTiers]func() []climateEntry

func init() {
	for t := range paramLists {
		tier := paramTier(t)
		paramLists[t] = sync.OnceValue(func() []climateEntry {
			return newParamBuilder(tier).build()
		})
	}
}

// climateParams returns the immutable biome table for a version.
func climateParams(v mc.Version) []climateEntry {
	return paramLists[tierOf(v)]()
}

var (
	fullRange = span(-1, 1)

	temperatures = [5]paramRange{
		span(-1, -0.45), span(-0.45, -0.15), span(-0.15, 0.2), span(0.2, 0.55), span(0.55, 1),
	}
	humidities = [5]paramRange{
		span(-1, -0.35), span(-0.35, -0.1), span(-0.1, 0.1), span(0.1, 0.3), span(0.3, 1),
	}
	erosions = [7]paramRange{
		span(-1, -0.78), span(-0.78, -0.375), span(-0.375, -0.2225), span(-0.2225, 0.05),
		span(0.05, 0.45), span(0.45, 0.55), span(0.55, 1),
	}

	frozenRange   = temperatures[0]
	unfrozenRange = join(temperatures[1], temperatures[4])

	mushroomFieldsCont = span(-1.2, -1.05)
	deepOceanCont      = span(-1.05, -0.455)
	oceanCont          = span(-0.455, -0.19)
	coastCont          = span(-0.19, -0.11)
	inlandCont         = span(-0.11, 0.55)
	nearInlandCont     = span(-0.11, 0.03)
	midInlandCont      = span(0.03, 0.3)
	farInlandCont      = span(0.3, 1.0)
)

type paramBuilder struct {
	tier paramTier
	out  []climateEntry

	oceans        [2][5]biome.ID
	middle        [5][5]biome.ID
	middleVariant [5][5]biome.ID
	plateau       [5][5]biome.ID
	plateauVar    [5][5]biome.ID
	shattered     [5][5]biome.ID
}

func newParamBuilder(tier paramTier) *paramBuilder {
	const n = biome.None
	b := &paramBuilder{tier: tier}
	b.oceans = [2][5]biome.ID{
		{biome.DeepFrozenOcean, biome.DeepColdOcean, biome.DeepOcean, biome.DeepLukewarmOcean, biome.WarmOcean},
		{biome.FrozenOcean, biome.ColdOcean, biome.Ocean, biome.LukewarmOcean, biome.WarmOcean},
	}
	b.middle = [5][5]biome.ID{
		{biome.SnowyPlains, biome.SnowyPlains, biome.SnowyPlains, biome.SnowyTaiga, biome.Taiga},
		{biome.Plains, biome.Plains, biome.Forest, biome.Taiga, biome.OldGrowthSpruceTaiga},
		{biome.FlowerForest, biome.Plains, biome.Forest, biome.BirchForest, biome.DarkForest},
		{biome.Savanna, biome.Savanna, biome.Forest, biome.Jungle, biome.Jungle},
		{biome.Desert, biome.Desert, biome.Desert, biome.Desert, biome.Desert},
	}
	b.middleVariant = [5][5]biome.ID{
		{biome.IceSpikes, n, biome.SnowyTaiga, n, n},
		{n, n, n, n, biome.OldGrowthPineTaiga},
		{biome.SunflowerPlains, n, n, biome.OldGrowthBirchForest, n},
		{n, n, biome.Plains, biome.SparseJungle, biome.BambooJungle},
		{n, n, n, n, n},
	}
	b.plateau = [5][5]biome.ID{
		{biome.SnowyPlains, biome.SnowyPlains, biome.SnowyPlains, biome.SnowyTaiga, biome.SnowyTaiga},
		{biome.Meadow, biome.Meadow, biome.Forest, biome.Taiga, biome.OldGrowthSpruceTaiga},
		{biome.Meadow, biome.Meadow, biome.Meadow, biome.Meadow, biome.DarkForest},
		{biome.SavannaPlateau, biome.SavannaPlateau, biome.Forest, biome.Forest, biome.Jungle},
		{biome.Badlands, biome.Badlands, biome.Badlands, biome.WoodedBadlands, biome.WoodedBadlands},
	}
	cherry, pale := n, n
	if tier >= tier1_20 {
		cherry = biome.CherryGrove
	}
	if tier >= tier1_21 {
		pale = biome.PaleGarden
	}
	b.plateauVar = [5][5]biome.ID{
		{biome.IceSpikes, n, n, n, n},
		{cherry, n, biome.Meadow, biome.Meadow, biome.OldGrowthPineTaiga},
		{cherry, cherry, biome.Forest, biome.BirchForest, pale},
		{n, n, n, n, n},
		{biome.ErodedBadlands, biome.ErodedBadlands, n, n, n},
	}
	gravelly := [5]biome.ID{biome.WindsweptGravelly, biome.WindsweptGravelly, biome.WindsweptHills, biome.WindsweptForest, biome.WindsweptForest}
	b.shattered = [5][5]biome.ID{
		gravelly,
		gravelly,
		{biome.WindsweptHills, biome.WindsweptHills, biome.WindsweptHills, biome.WindsweptForest, biome.WindsweptForest},
		{n, n, n, n, n},
		{n, n, n, n, n},
	}
	return b
}

func (b *paramBuilder) add(t, h, c, e, d, w paramRange, id biome.ID) {
	b.out = append(b.out, climateEntry{
		p:  [numClimate + 1]paramRange{t, h, c, e, d, w, {}},
		id: id,
	})
}

// surface biomes are registered at both ends of the surface depth band.
func (b *paramBuilder) surface(t, h, c, e, w paramRange, id biome.ID) {
	b.add(t, h, c, e, point(0), w, id)
	b.add(t, h, c, e, point(1), w, id)
}

func (b *paramBuilder) underground(t, h, c, e, w paramRange, id biome.ID) {
	b.add(t, h, c, e, span(0.2, 0.9), w, id)
}

func (b *paramBuilder) bottom(t, h, c, e, w paramRange, id biome.ID) {
	b.add(t, h, c, e, point(1.1), w, id)
}

func negative(w paramRange) bool { return w.max < 0 }

func (b *paramBuilder) pickMiddle(i, j int, w paramRange) biome.ID {
	if negative(w) {
		return b.middle[i][j]
	}
	if v := b.middleVariant[i][j]; v != biome.None {
		return v
	}
	return b.middle[i][j]
}

func pickBadlands(j int, w paramRange) biome.ID {
	switch {
	case j < 2:
		if negative(w) {
			return biome.Badlands
		}
		return biome.ErodedBadlands
	case j < 3:
		return biome.Badlands
	}
	return biome.WoodedBadlands
}

func (b *paramBuilder) pickMiddleOrBadlands(i, j int, w paramRange) biome.ID {
	if i == 4 {
		return pickBadlands(j, w)
	}
	return b.pickMiddle(i, j, w)
}

func (b *paramBuilder) pickPlateau(i, j int, w paramRange) biome.ID {
	if negative(w) {
		return b.plateau[i][j]
	}
	if v := b.plateauVar[i][j]; v != biome.None {
		return v
	}
	return b.plateau[i][j]
}

func (b *paramBuilder) pickSlope(i, j int, w paramRange) biome.ID {
	if i >= 3 {
		return b.pickPlateau(i, j, w)
	}
	if j <= 1 {
		return biome.SnowySlopes
	}
	return biome.Grove
}

func (b *paramBuilder) pickMiddleBadlandsOrSlope(i, j int, w paramRange) biome.ID {
	if i == 0 {
		return b.pickSlope(i, j, w)
	}
	return b.pickMiddleOrBadlands(i, j, w)
}

func maybeWindsweptSavanna(i, j int, w paramRange, other biome.ID) biome.ID {
	if i > 1 && j < 4 && !negative(w) {
		return biome.WindsweptSavanna
	}
	return other
}

func pickBeach(i int) biome.ID {
	switch i {
	case 0:
		return biome.SnowyBeach
	case 4:
		return biome.Desert
	}
	return biome.Beach
}

func (b *paramBuilder) pickShatteredCoast(i, j int, w paramRange) biome.ID {
	other := pickBeach(i)
	if !negative(w) {
		other = b.pickMiddle(i, j, w)
	}
	return maybeWindsweptSavanna(i, j, w, other)
}

func pickPeak(i, j int, w paramRange) biome.ID {
	switch {
	case i <= 2:
		if negative(w) {
			return biome.JaggedPeaks
		}
		return biome.FrozenPeaks
	case i == 3:
		return biome.StonyPeaks
	}
	return pickBadlands(j, w)
}

func (b *paramBuilder) pickShattered(i, j int, w paramRange) biome.ID {
	if v := b.shattered[i][j]; v != biome.None {
		return v
	}
	return b.pickMiddle(i, j, w)
}

func (b *paramBuilder) peaks(w paramRange) {
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			t, h := temperatures[i], humidities[j]
			mid := b.pickMiddle(i, j, w)
			midBad := b.pickMiddleOrBadlands(i, j, w)
			midBadSlope := b.pickMiddleBadlandsOrSlope(i, j, w)
			plat := b.pickPlateau(i, j, w)
			shat := b.pickShattered(i, j, w)
			shatSav := maybeWindsweptSavanna(i, j, w, shat)
			peak := pickPeak(i, j, w)

			b.surface(t, h, join(coastCont, farInlandCont), erosions[0], w, peak)
			b.surface(t, h, join(coastCont, nearInlandCont), erosions[1], w, midBadSlope)
			b.surface(t, h, join(midInlandCont, farInlandCont), erosions[1], w, peak)
			b.surface(t, h, join(coastCont, nearInlandCont), join(erosions[2], erosions[3]), w, mid)
			b.surface(t, h, join(midInlandCont, farInlandCont), erosions[2], w, plat)
			b.surface(t, h, midInlandCont, erosions[3], w, midBad)
			b.surface(t, h, farInlandCont, erosions[3], w, plat)
			b.surface(t, h, join(coastCont, farInlandCont), erosions[4], w, mid)
			b.surface(t, h, join(coastCont, nearInlandCont), erosions[5], w, shatSav)
			b.surface(t, h, join(midInlandCont, farInlandCont), erosions[5], w, shat)
			b.surface(t, h, join(coastCont, farInlandCont), erosions[6], w, mid)
		}
	}
}

func (b *paramBuilder) high(w paramRange) {
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			t, h := temperatures[i], humidities[j]
			mid := b.pickMiddle(i, j, w)
			midBad := b.pickMiddleOrBadlands(i, j, w)
			midBadSlope := b.pickMiddleBadlandsOrSlope(i, j, w)
			plat := b.pickPlateau(i, j, w)
			shat := b.pickShattered(i, j, w)
			midSav := maybeWindsweptSavanna(i, j, w, mid)
			slope := b.pickSlope(i, j, w)
			peak := pickPeak(i, j, w)

			b.surface(t, h, coastCont, join(erosions[0], erosions[1]), w, mid)
			b.surface(t, h, nearInlandCont, erosions[0], w, slope)
			b.surface(t, h, join(midInlandCont, farInlandCont), erosions[0], w, peak)
			b.surface(t, h, nearInlandCont, erosions[1], w, midBadSlope)
			b.surface(t, h, join(midInlandCont, farInlandCont), erosions[1], w, slope)
			b.surface(t, h, join(coastCont, nearInlandCont), join(erosions[2], erosions[3]), w, mid)
			b.surface(t, h, join(midInlandCont, farInlandCont), erosions[2], w, plat)
			b.surface(t, h, midInlandCont, erosions[3], w, midBad)
			b.surface(t, h, farInlandCont, erosions[3], w, plat)
			b.surface(t, h, join(coastCont, farInlandCont), erosions[4], w, mid)
			b.surface(t, h, join(coastCont, nearInlandCont), erosions[5], w, midSav)
			b.surface(t, h, join(midInlandCont, farInlandCont), erosions[5], w, shat)
			b.surface(t, h, join(coastCont, farInlandCont), erosions[6], w, mid)
		}
	}
}

func (b *paramBuilder) middleSlice(w paramRange) {
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			t, h := temperatures[i], humidities[j]
			mid := b.pickMiddle(i, j, w)
			midBad := b.pickMiddleOrBadlands(i, j, w)
			midBadSlope := b.pickMiddleBadlandsOrSlope(i, j, w)
			shat := b.pickShattered(i, j, w)
			plat := b.pickPlateau(i, j, w)
			beach := pickBeach(i)
			midSav := maybeWindsweptSavanna(i, j, w, mid)
			shatCoast := b.pickShatteredCoast(i, j, w)
			slope := b.pickSlope(i, j, w)

			b.surface(t, h, join(nearInlandCont, farInlandCont), erosions[0], w, slope)
			b.surface(t, h, join(nearInlandCont, midInlandCont), erosions[1], w, midBadSlope)
			farSlope := plat
			if i == 0 {
				farSlope = slope
			}
			b.surface(t, h, farInlandCont, erosions[1], w, farSlope)
			b.surface(t, h, nearInlandCont, erosions[2], w, mid)
			b.surface(t, h, midInlandCont, erosions[2], w, midBad)
			b.surface(t, h, farInlandCont, erosions[2], w, plat)
			b.surface(t, h, join(coastCont, nearInlandCont), erosions[3], w, mid)
			b.surface(t, h, join(midInlandCont, farInlandCont), erosions[3], w, midBad)
			if negative(w) {
				b.surface(t, h, coastCont, erosions[4], w, beach)
				b.surface(t, h, join(nearInlandCont, farInlandCont), erosions[4], w, mid)
			} else {
				b.surface(t, h, join(coastCont, farInlandCont), erosions[4], w, mid)
			}
			b.surface(t, h, coastCont, erosions[5], w, shatCoast)
			b.surface(t, h, nearInlandCont, erosions[5], w, midSav)
			b.surface(t, h, join(midInlandCont, farInlandCont), erosions[5], w, shat)
			if negative(w) {
				b.surface(t, h, coastCont, erosions[6], w, beach)
			} else {
				b.surface(t, h, coastCont, erosions[6], w, mid)
			}
			if i == 0 {
				b.surface(t, h, join(nearInlandCont, farInlandCont), erosions[6], w, mid)
			}
		}
	}
}

func (b *paramBuilder) low(w paramRange) {
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			t, h := temperatures[i], humidities[j]
			mid := b.pickMiddle(i, j, w)
			midBad := b.pickMiddleOrBadlands(i, j, w)
			midBadSlope := b.pickMiddleBadlandsOrSlope(i, j, w)
			beach := pickBeach(i)
			midSav := maybeWindsweptSavanna(i, j, w, mid)
			shatCoast := b.pickShatteredCoast(i, j, w)

			b.surface(t, h, nearInlandCont, join(erosions[0], erosions[1]), w, midBad)
			b.surface(t, h, join(midInlandCont, farInlandCont), join(erosions[0], erosions[1]), w, midBadSlope)
			b.surface(t, h, nearInlandCont, join(erosions[2], erosions[3]), w, mid)
			b.surface(t, h, join(midInlandCont, farInlandCont), join(erosions[2], erosions[3]), w, midBad)
			b.surface(t, h, coastCont, join(erosions[3], erosions[4]), w, beach)
			b.surface(t, h, join(nearInlandCont, farInlandCont), erosions[4], w, mid)
			b.surface(t, h, coastCont, erosions[5], w, shatCoast)
			b.surface(t, h, nearInlandCont, erosions[5], w, midSav)
			b.surface(t, h, join(midInlandCont, farInlandCont), erosions[5], w, mid)
			b.surface(t, h, coastCont, erosions[6], w, beach)
			if i == 0 {
				b.surface(t, h, join(nearInlandCont, farInlandCont), erosions[6], w, mid)
			}
		}
	}
}

func (b *paramBuilder) valleys(w paramRange) {
	shore := func(river biome.ID) biome.ID {
		if negative(w) {
			return biome.StonyShore
		}
		return river
	}
	b.surface(frozenRange, fullRange, coastCont, join(erosions[0], erosions[1]), w, shore(biome.FrozenRiver))
	b.surface(unfrozenRange, fullRange, coastCont, join(erosions[0], erosions[1]), w, shore(biome.River))
	b.surface(frozenRange, fullRange, nearInlandCont, join(erosions[0], erosions[1]), w, biome.FrozenRiver)
	b.surface(unfrozenRange, fullRange, nearInlandCont, join(erosions[0], erosions[1]), w, biome.River)
	b.surface(frozenRange, fullRange, join(coastCont, farInlandCont), join(erosions[2], erosions[5]), w, biome.FrozenRiver)
	b.surface(unfrozenRange, fullRange, join(coastCont, farInlandCont), join(erosions[2], erosions[5]), w, biome.River)
	b.surface(frozenRange, fullRange, coastCont, erosions[6], w, biome.FrozenRiver)
	b.surface(unfrozenRange, fullRange, coastCont, erosions[6], w, biome.River)
	if b.tier >= tier1_19 {
		b.surface(join(temperatures[1], temperatures[2]), fullRange, join(inlandCont, farInlandCont), erosions[6], w, biome.Swamp)
		b.surface(join(temperatures[3], temperatures[4]), fullRange, join(inlandCont, farInlandCont), erosions[6], w, biome.MangroveSwamp)
	} else {
		b.surface(unfrozenRange, fullRange, join(inlandCont, farInlandCont), erosions[6], w, biome.Swamp)
	}
	b.surface(frozenRange, fullRange, join(inlandCont, farInlandCont), erosions[6], w, biome.FrozenRiver)

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			b.surface(temperatures[i], humidities[j], join(midInlandCont, farInlandCont),
				join(erosions[0], erosions[1]), w, b.pickMiddleOrBadlands(i, j, w))
		}
	}
}

func (b *paramBuilder) build() []climateEntry {
	b.surface(fullRange, fullRange, mushroomFieldsCont, fullRange, fullRange, biome.MushroomFields)
	for i := 0; i < 5; i++ {
		b.surface(temperatures[i], fullRange, deepOceanCont, fullRange, fullRange, b.oceans[0][i])
		b.surface(temperatures[i], fullRange, oceanCont, fullRange, fullRange, b.oceans[1][i])
	}

	slices := []struct {
		lo, hi float32
		fill   func(paramRange)
	}{
		{-1.0, -0.93333334, b.middleSlice},
		{-0.93333334, -0.7666667, b.high},
		{-0.7666667, -0.56666666, b.peaks},
		{-0.56666666, -0.4, b.high},
		{-0.4, -0.26666668, b.middleSlice},
		{-0.26666668, -0.05, b.low},
		{-0.05, 0.05, b.valleys},
		{0.05, 0.26666668, b.low},
		{0.26666668, 0.4, b.middleSlice},
		{0.4, 0.56666666, b.high},
		{0.56666666, 0.7666667, b.peaks},
		{0.7666667, 0.93333334, b.high},
		{0.93333334, 1.0, b.middleSlice},
	}
	for _, s := range slices {
		s.fill(span(s.lo, s.hi))
	}

	b.underground(fullRange, fullRange, span(0.8, 1.0), fullRange, fullRange, biome.DripstoneCaves)
	b.underground(fullRange, span(0.7, 1.0), fullRange, fullRange, fullRange, biome.LushCaves)
	if b.tier >= tier1_19 {
		b.bottom(fullRange, fullRange, fullRange, join(erosions[0], erosions[1]), fullRange, biome.DeepDark)
	}
	return b.out
}

func (r paramRange) dist(v int64) int64 {
	switch {
	case v > r.max:
		return v - r.max
	case v < r.min:
		return r.min - v
	}
	return 0
}

// lookupBiome returns the entry nearest to np by summed squared interval
// distance; the first of several equally near entries wins.
func lookupBiome(list []climateEntry, np *ClimatePoint) biome.ID {
	best := biome.None
	var bestDist int64 = -1
	for i := range list {
		e := &list[i]
		var d int64
		for k := 0; k < numClimate; k++ {
			dk := e.p[k].dist(np[k])
			d += dk * dk
		}
		// offset target is zero
		dk := e.p[numClimate].dist(0)
		d += dk * dk
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.id, d
		}
	}
	return best
}
