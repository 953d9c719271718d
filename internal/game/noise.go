package game

import "math"

// terrainNoiseSeed keys the height-field lattice. A build-time constant:
// the terrain must be identical for identical virtual coordinates across
// runs, independent of the simulation seed.
const terrainNoiseSeed = 0x7E55A1DC0FFEE

// noise2D is smooth value noise in [-1,1]: lattice values from hash2D,
// smoothstep-interpolated between the four surrounding lattice points.
func noise2D(x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	v00 := hashUnit(terrainNoiseSeed, x0, y0)
	v10 := hashUnit(terrainNoiseSeed, x0+1, y0)
	v01 := hashUnit(terrainNoiseSeed, x0, y0+1)
	v11 := hashUnit(terrainNoiseSeed, x0+1, y0+1)

	tx := fx * fx * (3 - 2*fx)
	ty := fy * fy * (3 - 2*fy)

	a := lerpF(v00, v10, tx)
	b := lerpF(v01, v11, tx)
	return lerpF(a, b, ty)*2 - 1
}
