package terrain

import "math"

// defaultCell is the pixel size used by every built-in scenario unless
// a caller-supplied one overrides it.
const defaultCell = 1.0

// NewFlat returns a Grid of uniform elevation: the "flat plate"
// scenario, which must produce zero hachures since every cell's slope
// is zero.
func NewFlat(rows, cols int, elev float64) *Grid {
	g := NewGrid(rows, cols, 0, 0, defaultCell, defaultCell)
	for i := range g.Data {
		g.Data[i] = elev
	}
	return g
}

// planarTiltSkew is the fraction of slopeRatio also applied along x,
// so the tilt's down-slope direction never lands exactly on a grid
// cardinal. A pure dz/dy tilt gives every cell an aspect of exactly
// 0 (due north), which SampleAspect also uses as its "no direction"
// sentinel (terrain/slopeaspect.go, engine.Sampler.SampleAspect); the
// tracer would then stop at every seed (engine/tracer.go) and the
// scenario would trace no hachures at all.
const planarTiltSkew = 0.15

// NewPlanarTilt returns a Grid sloping uniformly in one direction:
// elevation rises linearly with y (northward, so it falls as row
// increases) and, skewed off-cardinal by planarTiltSkew, with x
// (column), at the given rise per map unit
// (slopeRatio = dz/dy). Contours are evenly spaced straight lines and
// hachure spacing should be uniform end to end.
func NewPlanarTilt(rows, cols int, slopeRatio float64) *Grid {
	g := NewGrid(rows, cols, 0, 0, defaultCell, defaultCell)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := g.centerXY(row, col)
			elev := slopeRatio*y + planarTiltSkew*slopeRatio*x
			g.Set(row, col, elev)
		}
	}
	return g
}

// NewCone returns a Grid shaped like a single radially symmetric peak
// centered in the grid, elevation = peak * max(0, 1 - r/radius).
// Hachures should radiate outward from the summit and terminate once
// the slack-slope stop rule fires near the rim.
func NewCone(rows, cols int, peak, radius float64) *Grid {
	g := NewGrid(rows, cols, 0, 0, defaultCell, defaultCell)
	cx := float64(cols) * defaultCell / 2
	cy := float64(rows) * defaultCell / 2
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := g.centerXY(row, col)
			r := math.Hypot(x-cx, y-cy)
			elev := peak * math.Max(0, 1-r/radius)
			g.Set(row, col, elev)
		}
	}
	return g
}

// NewRidge returns a Grid with two symmetric peaks separated along the
// x axis, the sum of two cones. Exercises a contour stack whose
// topology splits a single region into two as elevation increases,
// then the two merge back into a saddle below the peaks.
func NewRidge(rows, cols int, peak, radius, separation float64) *Grid {
	g := NewGrid(rows, cols, 0, 0, defaultCell, defaultCell)
	cx := float64(cols) * defaultCell / 2
	cy := float64(rows) * defaultCell / 2
	x0, x1 := cx-separation/2, cx+separation/2
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := g.centerXY(row, col)
			r0 := math.Hypot(x-x0, y-cy)
			r1 := math.Hypot(x-x1, y-cy)
			e0 := peak * math.Max(0, 1-r0/radius)
			e1 := peak * math.Max(0, 1-r1/radius)
			g.Set(row, col, e0+e1)
		}
	}
	return g
}

// NewSpike returns a Grid that is flat except for a single pixel
// raised above the surrounding plateau. It should contribute no
// hachures of its own: a region one pixel wide never passes the
// minimum-length or minimum-slope classification thresholds before
// the tracer's bounds stop rule ends any streamline that reaches it.
func NewSpike(rows, cols int, base, peak float64) *Grid {
	g := NewFlat(rows, cols, base)
	g.Set(rows/2, cols/2, peak)
	return g
}
