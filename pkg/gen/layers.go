package gen

import (
	"github.com/OCharnyshevich/biomefinder/pkg/biome"
	"github.com/OCharnyshevich/biomefinder/pkg/mc"
	"github.com/OCharnyshevich/biomefinder/pkg/noise"
	"github.com/OCharnyshevich/biomefinder/pkg/rng"
)

// area is a rectangle of layer cells.
type area struct {
	x, z, w, h int
}

func (a area) size() int { return a.w * a.h }

// grid is the output of a layer over an area.
type grid struct {
	v []biome.ID
	area
}

func (g *grid) at(x, z int) biome.ID {
	return g.v[(z-g.z)*g.w+(x-g.x)]
}

// layer is one stage of the legacy biome pipeline. Each output cell depends
// only on a neighbourhood of its parents' cells and a random register
// seeded from the world seed, the layer salt and the cell position.
type layer struct {
	salt  uint64 // derived from the base salt at build time
	start uint64 // salt mixed with the world seed
	seed0 uint64 // start seed for per-cell registers

	version mc.Version
	cell    func(l *layer, p, q *grid, x, z int) biome.ID
	parent  func(area) area // area read from p
	second  func(area) area // area read from q, nil for single parent layers
	p, q    *layer
	ocean   *noise.Perlin
}

func layerSalt(base uint64) uint64 {
	ls := rng.LcgNext(base, base)
	ls = rng.LcgNext(ls, base)
	return rng.LcgNext(ls, base)
}

func (l *layer) applySeed(seed uint64) {
	st := rng.LcgNext(seed, l.salt)
	st = rng.LcgNext(st, l.salt)
	st = rng.LcgNext(st, l.salt)
	l.start = st
	l.seed0 = rng.LcgNext(st, 0)
	if l.ocean != nil {
		r := rng.NewLcg(seed)
		*l.ocean = noise.NewPerlin(&r)
	}
}

// cellRand is the register of one cell.
type cellRand struct {
	cs, st uint64
}

func (l *layer) rand(x, z int) cellRand {
	ux, uz := uint64(int64(x)), uint64(int64(z))
	cs := l.seed0 + ux
	cs = rng.LcgNext(cs, uz)
	cs = rng.LcgNext(cs, ux)
	cs = rng.LcgNext(cs, uz)
	return cellRand{cs: cs, st: l.start}
}

func (r *cellRand) next(n int) int {
	v := int((int64(r.cs) >> 24) % int64(n))
	if v < 0 {
		v += n
	}
	r.cs = rng.LcgNext(r.cs, r.st)
	return v
}

// gen fills out with the layer's cells over a. buf is scratch for the
// parents and must hold scratch(a) entries.
func (l *layer) gen(out, buf []biome.ID, a area) {
	var p, q grid
	if l.p != nil {
		pa := l.parent(a)
		p = grid{v: buf[:pa.size()], area: pa}
		l.p.gen(p.v, buf[pa.size():], pa)
		if l.q != nil {
			qa := l.second(a)
			off := pa.size()
			q = grid{v: buf[off : off+qa.size()], area: qa}
			l.q.gen(q.v, buf[off+qa.size():], qa)
		}
	}
	i := 0
	for z := a.z; z < a.z+a.h; z++ {
		for x := a.x; x < a.x+a.w; x++ {
			out[i] = l.cell(l, &p, &q, x, z)
			i++
		}
	}
}

// scratch is the buffer gen needs below the output for area a.
func (l *layer) scratch(a area) int {
	if l.p == nil {
		return 0
	}
	pa := l.parent(a)
	n := pa.size() + l.p.scratch(pa)
	if l.q != nil {
		qa := l.second(a)
		n = max(n, pa.size()+qa.size()+l.q.scratch(qa))
	}
	return n
}

func sameArea(a area) area { return a }

func borderArea(a area) area { return area{a.x - 1, a.z - 1, a.w + 2, a.h + 2} }

func oceanMixArea(a area) area { return area{a.x - 8, a.z - 8, a.w + 16, a.h + 16} }

func zoomArea(a area) area {
	px, pz := a.x>>1, a.z>>1
	return area{px, pz, ((a.x + a.w) >> 1) - px + 1, ((a.z + a.h) >> 1) - pz + 1}
}

func voronoiArea(a area) area {
	px, pz := (a.x-2)>>2, (a.z-2)>>2
	return area{px, pz, ((a.x + a.w - 3) >> 2) - px + 2, ((a.z + a.h - 3) >> 2) - pz + 2}
}

// layerStack is the legacy pipeline with one entry per output scale.
type layerStack struct {
	all                    []*layer
	e1, e4, e16, e64, e256 *layer
}

// legacyLayers reports whether v generates the overworld from layers.
func legacyLayers(v mc.Version) bool {
	return v >= mc.V1_7 && v <= mc.V1_17
}

func newLayerStack(v mc.Version, large bool) *layerStack {
	s := &layerStack{}
	add := func(salt uint64, cell func(*layer, *grid, *grid, int, int) biome.ID, parent func(area) area, p *layer) *layer {
		l := &layer{salt: layerSalt(salt), version: v, cell: cell, parent: parent, p: p}
		s.all = append(s.all, l)
		return l
	}
	zoom := func(salt uint64, p *layer) *layer { return add(salt, zoomCell, zoomArea, p) }
	mix := func(salt uint64, cell func(*layer, *grid, *grid, int, int) biome.ID, parent, second func(area) area, p, q *layer) *layer {
		l := add(salt, cell, parent, p)
		l.second, l.q = second, q
		return l
	}

	l := add(1, continentCell, nil, nil)
	l = add(2000, fuzzyZoomCell, zoomArea, l)
	l = add(1, landCell, borderArea, l)
	l = zoom(2001, l)
	l = add(2, landCell, borderArea, l)
	l = add(50, landCell, borderArea, l)
	l = add(70, landCell, borderArea, l)
	l = add(2, islandCell, borderArea, l)
	l = add(2, snowCell, sameArea, l)
	l = add(3, landCell, borderArea, l)
	l = add(2, coolCell, borderArea, l)
	l = add(2, heatCell, borderArea, l)
	l = add(3, specialCell, sameArea, l)
	l = zoom(2002, l)
	l = zoom(2003, l)
	l = add(4, landCell, borderArea, l)
	l = add(5, mushroomCell, borderArea, l)
	deep := add(4, deepOceanCell, borderArea, l)

	b := add(200, biomeCell, sameArea, deep)
	if v >= mc.V1_14 {
		b = add(1001, bambooCell, sameArea, b)
	}
	biome256 := b
	b = zoom(1000, b)
	b = zoom(1001, b)
	edge := add(1000, biomeEdgeCell, borderArea, b)

	riverInit := add(100, riverInitCell, sameArea, deep)
	h := zoom(1000, riverInit)
	h = zoom(1001, h)
	hills := mix(1000, hillsCell, borderArea, borderArea, edge, h)
	rare := add(1001, rareBiomeCell, sameArea, hills)

	b = zoom(1000, rare)
	b = add(3, landCell, borderArea, b)
	b = zoom(1001, b)
	shore := add(1000, shoreCell, borderArea, b)
	b = zoom(1002, shore)
	zoom4 := zoom(1003, b)
	b = zoom4
	if large {
		b = zoom(1004, b)
		b = zoom(1005, b)
	}
	smooth := add(1000, smoothCell, borderArea, b)

	r := zoom(1000, riverInit)
	r = zoom(1001, r)
	n := uint64(4)
	if large && v == mc.V1_7 {
		// Later versions keep the river width of normal worlds.
		n = 6
	}
	for i := uint64(0); i < n; i++ {
		r = zoom(1000+i, r)
	}
	r = add(1, riverCell, borderArea, r)
	r = add(1000, smoothCell, borderArea, r)
	riverMix := mix(100, riverMixCell, sameArea, sameArea, smooth, r)

	top := riverMix
	if v >= mc.V1_13 {
		ot := add(2, oceanTempCell, nil, nil)
		ot.ocean = new(noise.Perlin)
		for i := uint64(0); i < 6; i++ {
			ot = zoom(2001+i, ot)
		}
		top = mix(100, oceanMixCell, oceanMixArea, sameArea, riverMix, ot)
	}
	s.e4 = top
	if v <= mc.V1_14 {
		s.e1 = add(10, voronoiCell114, voronoiArea, top)
	}

	if large {
		s.e16, s.e64, s.e256 = zoom4, shore, rare
	} else {
		s.e16, s.e64, s.e256 = shore, rare, biome256
	}
	return s
}
