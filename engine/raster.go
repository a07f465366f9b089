package engine

import "math"

// GridLike is satisfied by any co-registered scalar raster a host can
// supply to Sampler without depending on the terrain package (spec
// §1: raster I/O and the slope/aspect primitives are external
// collaborators). terrain.Grid implements it.
type GridLike interface {
	Extent() Extent
	CellSize() (dx, dy float64)
	Dims() (rows, cols int)
	At(row, col int) float64
}

// Sampler provides O(1) slope/aspect lookup by map coordinate (spec
// §4.A). Out-of-bounds coordinates return 0, the sentinel the engine
// treats everywhere as "undefined, stop tracing here" (spec §3/§9).
type Sampler struct {
	slope, aspect GridLike
}

// NewSampler returns a Sampler backed by the given co-registered
// slope (degrees) and aspect (degrees clockwise from north) grids.
func NewSampler(slope, aspect GridLike) *Sampler {
	return &Sampler{slope: slope, aspect: aspect}
}

// rowCol maps a map coordinate to the nearest pixel center, per spec
// §3: col = floor((x-xmin)/dx - 0.5 + 0.5), row = floor((ymax-y)/dy -
// 0.5 + 0.5) — i.e. round-to-nearest, matching the indexing
// convention also used by the ETOPO1-style elevation sampler in the
// retrieved pack (round(lat/lon) to the nearest grid index).
func rowCol(g GridLike, x, y float64) (row, col int, inBounds bool) {
	ext := g.Extent()
	dx, dy := g.CellSize()
	rows, cols := g.Dims()
	col = int(math.Floor((x-ext.XMin)/dx - 0.5 + 0.5))
	row = int(math.Floor((ext.YMax-y)/dy - 0.5 + 0.5))
	if row < 0 || col < 0 || row >= rows || col >= cols {
		return row, col, false
	}
	return row, col, true
}

// SampleSlope returns the slope in degrees at (x,y), or 0 if out of
// bounds.
func (s *Sampler) SampleSlope(x, y float64) float64 {
	row, col, ok := rowCol(s.slope, x, y)
	if !ok {
		return 0
	}
	return s.slope.At(row, col)
}

// SampleAspect returns the aspect in degrees clockwise from north at
// (x,y), or 0 if out of bounds. A sample of exactly 0 is also used by
// terrain as the flat-cell sentinel (spec §9), which the tracer's
// bounds stop rule subsumes correctly either way.
func (s *Sampler) SampleAspect(x, y float64) float64 {
	row, col, ok := rowCol(s.aspect, x, y)
	if !ok {
		return 0
	}
	return s.aspect.At(row, col)
}
