package terrain

import "math"

// SlopeAspect derives slope (degrees from horizontal) and aspect
// (degrees clockwise from north, the compass direction of steepest
// ascent) from an elevation Grid using a central finite difference,
// the same rounded-index convention as the ETOPO1-style sampler in
// the retrieved pack. Edge rows/columns clamp to the nearest interior
// neighbor rather than wrapping. A cell with zero gradient in both
// axes (no uphill direction) gets aspect 0, the sentinel the engine
// samples as "undefined, stop tracing here".
func SlopeAspect(elev *Grid) (slope, aspect *Grid) {
	slope = NewGrid(elev.Rows, elev.Cols, elev.XMin, elev.YMin, elev.Dx, elev.Dy)
	aspect = NewGrid(elev.Rows, elev.Cols, elev.XMin, elev.YMin, elev.Dx, elev.Dy)

	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}

	for row := 0; row < elev.Rows; row++ {
		r0 := clamp(row-1, 0, elev.Rows-1)
		r1 := clamp(row+1, 0, elev.Rows-1)
		for col := 0; col < elev.Cols; col++ {
			c0 := clamp(col-1, 0, elev.Cols-1)
			c1 := clamp(col+1, 0, elev.Cols-1)

			dzdx := (elev.At(row, c1) - elev.At(row, c0)) / (float64(c1-c0) * elev.Dx)
			// row increases downward (south), so -dz/drow is dz/dy.
			dzdy := (elev.At(r0, col) - elev.At(r1, col)) / (float64(r1-r0) * elev.Dy)
			if c1 == c0 {
				dzdx = 0
			}
			if r1 == r0 {
				dzdy = 0
			}

			slope.Set(row, col, math.Atan(math.Hypot(dzdx, dzdy))*180/math.Pi)

			if dzdx == 0 && dzdy == 0 {
				aspect.Set(row, col, 0)
				continue
			}
			bearing := math.Atan2(dzdx, dzdy) * 180 / math.Pi
			if bearing < 0 {
				bearing += 360
			}
			aspect.Set(row, col, bearing)
		}
	}
	return slope, aspect
}
