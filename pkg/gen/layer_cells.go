package gen

import (
	"github.com/OCharnyshevich/biomefinder/pkg/biome"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
)

// Climate values of the early land layers. Ocean is 0; the special layer
// stores a variant in specialBits of land cells.
const (
	warmLand   biome.ID = 1
	mediumLand biome.ID = 2
	coldLand   biome.ID = 3
	iceLand    biome.ID = 4

	specialBits biome.ID = 0xf00
)

var (
	warmBiomes   = [...]biome.ID{biome.Desert, biome.Desert, biome.Desert, biome.Savanna, biome.Savanna, biome.Plains}
	mediumBiomes = [...]biome.ID{biome.Forest, biome.DarkForest, biome.WindsweptHills, biome.Plains, biome.BirchForest, biome.Swamp}
	coldBiomes   = [...]biome.ID{biome.Forest, biome.WindsweptHills, biome.Taiga, biome.Plains}
	iceBiomes    = [...]biome.ID{biome.SnowyPlains, biome.SnowyPlains, biome.SnowyPlains, biome.SnowyTaiga}
)

// neighbours returns the four orthogonal neighbours of (x, z) in the order
// north, east, west, south.
func neighbours(p *grid, x, z int) [4]biome.ID {
	return [4]biome.ID{p.at(x, z-1), p.at(x+1, z), p.at(x-1, z), p.at(x, z+1)}
}

// corners returns the four diagonal neighbours of (x, z) in the order
// north-west, north-east, south-west, south-east.
func corners(p *grid, x, z int) [4]biome.ID {
	return [4]biome.ID{p.at(x-1, z-1), p.at(x+1, z-1), p.at(x-1, z+1), p.at(x+1, z+1)}
}

func anyOf(ids [4]biome.ID, match func(biome.ID) bool) bool {
	for _, id := range ids {
		if match(id) {
			return true
		}
	}
	return false
}

func allOf(ids [4]biome.ID, match func(biome.ID) bool) bool {
	for _, id := range ids {
		if !match(id) {
			return false
		}
	}
	return true
}

func is(ids ...biome.ID) func(biome.ID) bool {
	return func(id biome.ID) bool {
		for _, v := range ids {
			if id == v {
				return true
			}
		}
		return false
	}
}

func continentCell(l *layer, _, _ *grid, x, z int) biome.ID {
	if x == 0 && z == 0 {
		return 1
	}
	r := l.rand(x, z)
	if r.next(10) == 0 {
		return 1
	}
	return 0
}

func pick2(r *cellRand, a, b biome.ID) biome.ID {
	if r.next(2) == 0 {
		return a
	}
	return b
}

func pick4(r *cellRand, a, b, c, d biome.ID) biome.ID {
	switch r.next(4) {
	case 0:
		return a
	case 1:
		return b
	case 2:
		return c
	}
	return d
}

// modeOrRandom picks the value shared by most of the four, falling back to
// a random one.
func modeOrRandom(r *cellRand, a, b, c, d biome.ID) biome.ID {
	switch {
	case b == c && c == d:
		return b
	case a == b && a == c:
		return a
	case a == b && a == d:
		return a
	case a == c && a == d:
		return a
	case a == b && c != d:
		return a
	case a == c && b != d:
		return a
	case a == d && b != c:
		return a
	case b == c && a != d:
		return b
	case b == d && a != c:
		return b
	case c == d && a != b:
		return c
	}
	return pick4(r, a, b, c, d)
}

func zoomed(l *layer, p *grid, x, z int, fuzzy bool) biome.ID {
	px, pz := x>>1, z>>1
	v00 := p.at(px, pz)
	if x&1 == 0 && z&1 == 0 {
		return v00
	}
	r := l.rand(px<<1, pz<<1)
	if x&1 == 0 {
		return pick2(&r, v00, p.at(px, pz+1))
	}
	r.next(2)
	if z&1 == 0 {
		return pick2(&r, v00, p.at(px+1, pz))
	}
	r.next(2)
	v10, v01, v11 := p.at(px+1, pz), p.at(px, pz+1), p.at(px+1, pz+1)
	if fuzzy {
		return pick4(&r, v00, v10, v01, v11)
	}
	return modeOrRandom(&r, v00, v10, v01, v11)
}

func zoomCell(l *layer, p, _ *grid, x, z int) biome.ID {
	return zoomed(l, p, x, z, false)
}

func fuzzyZoomCell(l *layer, p, _ *grid, x, z int) biome.ID {
	return zoomed(l, p, x, z, true)
}

func isLandOcean(id biome.ID) bool { return id == biome.Ocean }

// landCell grows land into ocean from diagonal neighbours and erodes coast.
func landCell(l *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	c := corners(p, x, z)
	r := l.rand(x, z)
	if !isLandOcean(v) || allOf(c, isLandOcean) {
		if !isLandOcean(v) && anyOf(c, isLandOcean) && r.next(5) == 0 {
			if v == iceLand {
				return iceLand
			}
			return biome.Ocean
		}
		return v
	}

	n, grown := 1, biome.ID(1)
	for _, id := range c {
		if isLandOcean(id) {
			continue
		}
		if r.next(n) == 0 {
			grown = id
		}
		n++
	}
	if r.next(3) == 0 {
		return grown
	}
	if grown == iceLand {
		return iceLand
	}
	return v
}

func islandCell(l *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	if v == biome.Ocean && allOf(neighbours(p, x, z), isLandOcean) {
		r := l.rand(x, z)
		if r.next(2) == 0 {
			return 1
		}
	}
	return v
}

func snowCell(l *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	if isLandOcean(v) {
		return v
	}
	r := l.rand(x, z)
	switch r.next(6) {
	case 0:
		return iceLand
	case 1:
		return coldLand
	}
	return warmLand
}

func coolCell(_ *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	if v == warmLand && anyOf(neighbours(p, x, z), is(coldLand, iceLand)) {
		return mediumLand
	}
	return v
}

func heatCell(_ *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	if v == iceLand && anyOf(neighbours(p, x, z), is(warmLand, mediumLand)) {
		return coldLand
	}
	return v
}

func specialCell(l *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	if isLandOcean(v) {
		return v
	}
	r := l.rand(x, z)
	if r.next(13) == 0 {
		v |= biome.ID((1+r.next(15))<<8) & specialBits
	}
	return v
}

func mushroomCell(l *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	if isLandOcean(v) && allOf(corners(p, x, z), isLandOcean) {
		r := l.rand(x, z)
		if r.next(100) == 0 {
			return biome.MushroomFields
		}
	}
	return v
}

func deepOceanCell(_ *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	if isLandOcean(v) && allOf(neighbours(p, x, z), isLandOcean) {
		return biome.DeepOcean
	}
	return v
}

func biomeCell(l *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	special := v&specialBits != 0
	v &^= specialBits
	if biome.IsOceanic(v) || v == biome.MushroomFields {
		return v
	}

	r := l.rand(x, z)
	switch v {
	case warmLand:
		if special {
			if r.next(3) == 0 {
				return biome.BadlandsPlateau
			}
			return biome.WoodedBadlands
		}
		return warmBiomes[r.next(len(warmBiomes))]
	case mediumLand:
		if special {
			return biome.Jungle
		}
		return mediumBiomes[r.next(len(mediumBiomes))]
	case coldLand:
		if special {
			return biome.OldGrowthPineTaiga
		}
		return coldBiomes[r.next(len(coldBiomes))]
	case iceLand:
		return iceBiomes[r.next(len(iceBiomes))]
	}
	return biome.MushroomFields
}

func bambooCell(l *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	r := l.rand(x, z)
	if r.next(10) == 0 && v == biome.Jungle {
		return biome.BambooJungle
	}
	return v
}

// edgeOf borders base with edge wherever a neighbour is not similar to it.
func edgeOf(v mc.Version, n [4]biome.ID, id, base, edge biome.ID) (biome.ID, bool) {
	if id != base {
		return 0, false
	}
	if allOf(n, func(o biome.ID) bool { return biome.AreSimilar(v, o, base) }) {
		return id, true
	}
	return edge, true
}

func biomeEdgeCell(l *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	n := neighbours(p, x, z)
	// Mountains are medium temperature, which borders anything, so they
	// never get an edge here.
	for _, e := range [...][2]biome.ID{
		{biome.WoodedBadlands, biome.Badlands},
		{biome.BadlandsPlateau, biome.Badlands},
		{biome.OldGrowthPineTaiga, biome.Taiga},
	} {
		if id, ok := edgeOf(l.version, n, v, e[0], e[1]); ok {
			return id
		}
	}

	switch v {
	case biome.Desert:
		if anyOf(n, is(biome.SnowyPlains)) {
			return biome.WindsweptForest
		}
	case biome.Swamp:
		if anyOf(n, is(biome.Desert, biome.SnowyTaiga, biome.SnowyPlains)) {
			return biome.Plains
		}
		jungle := is(biome.Jungle)
		if l.version >= mc.V1_14 {
			jungle = is(biome.Jungle, biome.BambooJungle)
		}
		if anyOf(n, jungle) {
			return biome.SparseJungle
		}
	}
	return v
}

func riverInitCell(l *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	if isLandOcean(v) {
		return v
	}
	r := l.rand(x, z)
	return biome.ID(2 + r.next(299999))
}

// hillsFor returns the hills variant the hills layer may raise id into.
func hillsFor(v mc.Version, r *cellRand, id biome.ID) biome.ID {
	switch id {
	case biome.Desert:
		return biome.DesertHills
	case biome.Forest:
		return biome.WoodedHills
	case biome.BirchForest:
		return biome.BirchForestHills
	case biome.DarkForest:
		return biome.Plains
	case biome.Taiga:
		return biome.TaigaHills
	case biome.OldGrowthPineTaiga:
		return biome.GiantTreeTaigaHills
	case biome.SnowyTaiga:
		return biome.SnowyTaigaHills
	case biome.Plains:
		if r.next(3) == 0 {
			return biome.WoodedHills
		}
		return biome.Forest
	case biome.SnowyPlains:
		return biome.SnowyMountains
	case biome.Jungle:
		return biome.JungleHills
	case biome.BambooJungle:
		if v >= mc.V1_14 {
			return biome.BambooJungleHills
		}
	case biome.Ocean:
		return biome.DeepOcean
	case biome.WindsweptHills:
		return biome.WindsweptForest
	case biome.Savanna:
		return biome.SavannaPlateau
	}
	switch {
	case biome.AreSimilar(v, id, biome.WoodedBadlands):
		return biome.Badlands
	case id == biome.DeepOcean && r.next(3) == 0:
		return pick2(r, biome.Plains, biome.Forest)
	}
	return id
}

// hillsCell raises hills and rare variants, keyed by the river noise in q.
func hillsCell(l *layer, p, q *grid, x, z int) biome.ID {
	v := p.at(x, z)
	noise := q.at(x, z)
	variant := (noise - 2) % 29
	r := l.rand(x, z)

	if v != biome.Ocean && noise >= 2 && variant == 1 && !biome.IsMutation(v) {
		if m := biome.Mutated(l.version, v); m != biome.None {
			return m
		}
		return v
	}
	if r.next(3) != 0 && variant != 0 {
		return v
	}

	hill := hillsFor(l.version, &r, v)
	if variant == 0 && hill != v {
		hill = biome.Mutated(l.version, hill)
		if hill == biome.None {
			hill = v
		}
	}
	if hill == v {
		return v
	}
	similar := 0
	for _, o := range neighbours(p, x, z) {
		if biome.AreSimilar(l.version, o, v) {
			similar++
		}
	}
	if similar >= 3 {
		return hill
	}
	return v
}

func rareBiomeCell(l *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	r := l.rand(x, z)
	if r.next(57) == 0 && v == biome.Plains {
		return biome.SunflowerPlains
	}
	return v
}

func isJungleNeighbour(v mc.Version, id biome.ID) bool {
	return biome.Category(v, id) == biome.Jungle || id == biome.Forest ||
		id == biome.Taiga || biome.IsOceanic(id)
}

// coastOf returns replace when a neighbour is ocean and id itself is not.
func coastOf(n [4]biome.ID, id, replace biome.ID) biome.ID {
	if !biome.IsOceanic(id) && anyOf(n, biome.IsOceanic) {
		return replace
	}
	return id
}

func shoreCell(l *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	n := neighbours(p, x, z)

	switch {
	case v == biome.MushroomFields:
		if anyOf(n, isLandOcean) {
			return biome.MushroomFieldShore
		}
		return v
	case biome.Category(l.version, v) == biome.Jungle:
		if !allOf(n, func(id biome.ID) bool { return isJungleNeighbour(l.version, id) }) {
			return biome.SparseJungle
		}
		return coastOf(n, v, biome.Beach)
	case v == biome.WindsweptHills || v == biome.WindsweptForest || v == biome.MountainEdge:
		return coastOf(n, v, biome.StonyShore)
	case biome.IsSnowy(v):
		return coastOf(n, v, biome.SnowyBeach)
	case v == biome.Badlands || v == biome.WoodedBadlands:
		if !anyOf(n, biome.IsOceanic) && !allOf(n, biome.IsMesa) {
			return biome.Desert
		}
		return v
	case v == biome.Ocean || v == biome.DeepOcean || v == biome.River || v == biome.Swamp:
		return v
	}
	return coastOf(n, v, biome.Beach)
}

func smoothCell(l *layer, p, _ *grid, x, z int) biome.ID {
	v := p.at(x, z)
	north, east, west, south := p.at(x, z-1), p.at(x+1, z), p.at(x-1, z), p.at(x, z+1)
	switch {
	case west == east && north == south:
		r := l.rand(x, z)
		return pick2(&r, west, north)
	case west == east:
		return west
	case north == south:
		return north
	}
	return v
}

func riverFilter(v biome.ID) biome.ID {
	if v >= 2 {
		return 2 + v&1
	}
	return v
}

// riverCell marks the borders between differing river noise cells.
func riverCell(_ *layer, p, _ *grid, x, z int) biome.ID {
	v := riverFilter(p.at(x, z))
	for _, o := range neighbours(p, x, z) {
		if riverFilter(o) != v {
			return biome.River
		}
	}
	return biome.None
}

func riverMixCell(_ *layer, p, q *grid, x, z int) biome.ID {
	v := p.at(x, z)
	if biome.IsOceanic(v) || q.at(x, z) != biome.River {
		return v
	}
	switch v {
	case biome.SnowyPlains:
		return biome.FrozenRiver
	case biome.MushroomFields, biome.MushroomFieldShore:
		return biome.MushroomFieldShore
	}
	return biome.River
}

func oceanTempCell(l *layer, _, _ *grid, x, z int) biome.ID {
	t := l.ocean.Sample(float64(x)/8.0, float64(z)/8.0, 0, 0, 0)
	switch {
	case t > 0.4:
		return biome.WarmOcean
	case t > 0.2:
		return biome.LukewarmOcean
	case t < -0.4:
		return biome.FrozenOcean
	case t < -0.2:
		return biome.ColdOcean
	}
	return biome.Ocean
}

// oceanMixCell paints land oceans with the temperature in q, tempering
// extremes near coasts.
func oceanMixCell(_ *layer, p, q *grid, x, z int) biome.ID {
	v := p.at(x, z)
	if !biome.IsOceanic(v) {
		return v
	}
	temp := q.at(x, z)

	var coast biome.ID = biome.None
	switch temp {
	case biome.WarmOcean:
		coast = biome.LukewarmOcean
	case biome.FrozenOcean:
		coast = biome.ColdOcean
	}
	if coast != biome.None {
		for i := -8; i <= 8; i += 4 {
			for j := -8; j <= 8; j += 4 {
				if !biome.IsOceanic(p.at(x+i, z+j)) {
					return coast
				}
			}
		}
	}

	if v == biome.DeepOcean {
		switch temp {
		case biome.LukewarmOcean:
			return biome.DeepLukewarmOcean
		case biome.Ocean:
			return biome.DeepOcean
		case biome.ColdOcean:
			return biome.DeepColdOcean
		case biome.FrozenOcean:
			return biome.DeepFrozenOcean
		}
	}
	return temp
}

// voronoiCell114 is the block zoom of 1.14 and earlier: each quart corner
// gets a jittered centre and a block takes the nearest one.
func voronoiCell114(l *layer, p, _ *grid, x, z int) biome.ID {
	x, z = x-2, z-2
	px, pz := x>>2, z>>2
	fx, fz := float64(x&3), float64(z&3)

	var d [4]float64
	for k := range d {
		cx, cz := k&1, k>>1
		r := l.rand((px+cx)<<2, (pz+cz)<<2)
		jx := float64((float64(r.next(1024))/1024.0-0.5)*3.6) + float64(cx*4)
		jz := float64((float64(r.next(1024))/1024.0-0.5)*3.6) + float64(cz*4)
		d[k] = float64((fz-jz)*(fz-jz)) + float64((fx-jx)*(fx-jx))
	}
	switch {
	case d[0] < d[1] && d[0] < d[2] && d[0] < d[3]:
		return p.at(px, pz)
	case d[1] < d[0] && d[1] < d[2] && d[1] < d[3]:
		return p.at(px+1, pz)
	case d[2] < d[0] && d[2] < d[1] && d[2] < d[3]:
		return p.at(px, pz+1)
	}
	return p.at(px+1, pz+1)
}
