package gen

import "github.com/OCharnyshevich/biomefinder/pkg/rng"

func fiddle(h uint64) float64 {
	d := float64((int64(h)>>24)&1023) / 1024.0
	return (d - 0.5) * 0.9
}

func fiddledDistance(sha uint64, x, y, z int, dx, dy, dz float64) float64 {
	h := rng.LcgNext(sha, uint64(x))
	h = rng.LcgNext(h, uint64(y))
	h = rng.LcgNext(h, uint64(z))
	h = rng.LcgNext(h, uint64(x))
	h = rng.LcgNext(h, uint64(y))
	h = rng.LcgNext(h, uint64(z))
	fx := fiddle(h)
	h = rng.LcgNext(h, sha)
	fy := fiddle(h)
	h = rng.LcgNext(h, sha)
	fz := fiddle(h)

	dz += fz
	dy += fy
	dx += fx
	return float64(dz*dz) + float64(dy*dy) + float64(dx*dx)
}

// voronoiCell returns the quart cell whose jittered centre is nearest to
// block (x, y, z). Ties keep the lowest corner index.
func voronoiCell(sha uint64, x, y, z int) (int, int, int) {
	x -= 2
	y -= 2
	z -= 2
	qx, qy, qz := x>>2, y>>2, z>>2
	fx := float64(x&3) / 4.0
	fy := float64(y&3) / 4.0
	fz := float64(z&3) / 4.0

	best := 0
	bestDist := 0.0
	for i := 0; i < 8; i++ {
		cx, cy, cz := qx, qy, qz
		dx, dy, dz := fx, fy, fz
		if i&4 != 0 {
			cx++
			dx -= 1.0
		}
		if i&2 != 0 {
			cy++
			dy -= 1.0
		}
		if i&1 != 0 {
			cz++
			dz -= 1.0
		}
		d := fiddledDistance(sha, cx, cy, cz, dx, dy, dz)
		if i == 0 || d < bestDist {
			best, bestDist = i, d
		}
	}

	if best&4 != 0 {
		qx++
	}
	if best&2 != 0 {
		qy++
	}
	if best&1 != 0 {
		qz++
	}
	return qx, qy, qz
}
