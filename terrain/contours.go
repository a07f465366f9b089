package terrain

import (
	"math"

	clipper "github.com/go-clipper/clipper2/port"

	"github.com/arl/hachure/engine"
)

// contourFixedPrecision mirrors engine's fixed-point bridge into
// Clipper2's integer domain; kept local since the conversion helpers
// in engine/geometry.go are unexported.
const contourFixedPrecision = 1e4

func toPoint64(x, y float64) clipper.Point64 {
	return clipper.Point64{
		X: int64(math.Round(x * contourFixedPrecision)),
		Y: int64(math.Round(y * contourFixedPrecision)),
	}
}

func fromPoint64(p clipper.Point64) engine.Point {
	return engine.Point{X: float64(p.X) / contourFixedPrecision, Y: float64(p.Y) / contourFixedPrecision}
}

// cellRing returns the closed unit-cell square, in map units, for
// (row, col) of g.
func cellRing(g *Grid, row, col int) clipper.Path64 {
	x0 := g.XMin + float64(col)*g.Dx
	y1 := g.Extent().YMax - float64(row)*g.Dy
	x1 := x0 + g.Dx
	y0 := y1 - g.Dy
	return clipper.Path64{
		toPoint64(x0, y0), toPoint64(x1, y0), toPoint64(x1, y1), toPoint64(x0, y1), toPoint64(x0, y0),
	}
}

// Contours extracts, for every level in levels, the filled
// higher-than-level region and the iso-line at that level (spec
// §4.C's two input layers). Filled regions are built by unioning the
// unit cell square of every grid cell whose value exceeds the level
// (a coarse, pixel-resolution polygon, unioned with Clipper2's Vatti
// backend rather than swept by hand); iso-lines are extracted by
// marching squares over the grid's cell centers, treated as the
// corners of a square mesh one cell smaller in each dimension.
func Contours(elev *Grid, levels []float64) (filled []engine.FilledPolygon, lines []engine.IsoLine) {
	for _, lvl := range levels {
		if rings, ok := filledRegion(elev, lvl); ok {
			filled = append(filled, engine.FilledPolygon{ElevMin: lvl, Rings: rings})
		}
		if parts := isoLine(elev, lvl); len(parts) > 0 {
			lines = append(lines, engine.IsoLine{Elev: lvl, Parts: parts})
		}
	}
	return filled, lines
}

func filledRegion(elev *Grid, level float64) ([]engine.Ring, bool) {
	var cells clipper.Paths64
	for row := 0; row < elev.Rows; row++ {
		for col := 0; col < elev.Cols; col++ {
			if elev.At(row, col) > level {
				cells = append(cells, cellRing(elev, row, col))
			}
		}
	}
	if len(cells) == 0 {
		return nil, false
	}
	merged, err := clipper.Union64(cells, nil, clipper.NonZero)
	if err != nil || len(merged) == 0 {
		return nil, false
	}
	rings := make([]engine.Ring, len(merged))
	for i, path := range merged {
		ring := make(engine.Ring, len(path))
		for j, p := range path {
			ring[j] = fromPoint64(p)
		}
		rings[i] = ring
	}
	return rings, true
}

// msEdge is one marching-squares crossing segment, before chaining
// into polylines.
type msEdge struct{ a, b engine.Point }

// isoLine runs marching squares over elev's cell centers, treating
// every 2x2 block of cells as a square with corners at the cell
// centers, and chains the resulting crossing segments into polylines.
func isoLine(elev *Grid, level float64) []engine.Polyline {
	var segs []msEdge

	for row := 0; row+1 < elev.Rows; row++ {
		for col := 0; col+1 < elev.Cols; col++ {
			x0, y0 := elev.centerXY(row+1, col)   // bottom-left (south)
			x1, y1 := elev.centerXY(row+1, col+1) // bottom-right
			x2, y2 := elev.centerXY(row, col+1)   // top-right (north)
			x3, y3 := elev.centerXY(row, col)     // top-left

			v0 := elev.At(row+1, col)
			v1 := elev.At(row+1, col+1)
			v2 := elev.At(row, col+1)
			v3 := elev.At(row, col)

			idx := 0
			if v0 > level {
				idx |= 1
			}
			if v1 > level {
				idx |= 2
			}
			if v2 > level {
				idx |= 4
			}
			if v3 > level {
				idx |= 8
			}
			if idx == 0 || idx == 15 {
				continue
			}

			lerp := func(xa, ya, va, xb, yb, vb float64) engine.Point {
				t := (level - va) / (vb - va)
				return engine.Point{X: xa + t*(xb-xa), Y: ya + t*(yb-ya)}
			}
			eBottom := lerp(x0, y0, v0, x1, y1, v1)
			eRight := lerp(x1, y1, v1, x2, y2, v2)
			eTop := lerp(x2, y2, v2, x3, y3, v3)
			eLeft := lerp(x3, y3, v3, x0, y0, v0)

			// Standard marching-squares case table (saddle cases 5 and
			// 10 are resolved using the cell's average, the common
			// disambiguation when no higher-order interpolant is
			// available).
			switch idx {
			case 1, 14:
				segs = append(segs, msEdge{eLeft, eBottom})
			case 2, 13:
				segs = append(segs, msEdge{eBottom, eRight})
			case 3, 12:
				segs = append(segs, msEdge{eLeft, eRight})
			case 4, 11:
				segs = append(segs, msEdge{eRight, eTop})
			case 6, 9:
				segs = append(segs, msEdge{eBottom, eTop})
			case 7, 8:
				segs = append(segs, msEdge{eLeft, eTop})
			case 5:
				if (v0+v1+v2+v3)/4 > level {
					segs = append(segs, msEdge{eLeft, eTop}, msEdge{eBottom, eRight})
				} else {
					segs = append(segs, msEdge{eLeft, eBottom}, msEdge{eRight, eTop})
				}
			case 10:
				if (v0+v1+v2+v3)/4 > level {
					segs = append(segs, msEdge{eLeft, eBottom}, msEdge{eRight, eTop})
				} else {
					segs = append(segs, msEdge{eLeft, eTop}, msEdge{eBottom, eRight})
				}
			}
		}
	}
	return chainSegments(segs)
}

const chainTolerance = 1e-6

func samePoint(a, b engine.Point) bool {
	return math.Abs(a.X-b.X) < chainTolerance && math.Abs(a.Y-b.Y) < chainTolerance
}

// chainSegments links marching-squares crossing segments sharing an
// endpoint into connected polylines, greedily extending each chain at
// both ends until no unused segment attaches. A single grid cell
// contributes at most two segments (the saddle cases), so chains
// never branch.
func chainSegments(segs []msEdge) []engine.Polyline {
	used := make([]bool, len(segs))
	var out []engine.Polyline

	for i := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		chain := engine.Polyline{segs[i].a, segs[i].b}

		for {
			extended := false
			for j := range segs {
				if used[j] {
					continue
				}
				head, tail := chain[0], chain[len(chain)-1]
				switch {
				case samePoint(tail, segs[j].a):
					chain = append(chain, segs[j].b)
				case samePoint(tail, segs[j].b):
					chain = append(chain, segs[j].a)
				case samePoint(head, segs[j].a):
					chain = append(engine.Polyline{segs[j].b}, chain...)
				case samePoint(head, segs[j].b):
					chain = append(engine.Polyline{segs[j].a}, chain...)
				default:
					continue
				}
				used[j] = true
				extended = true
				break
			}
			if !extended {
				break
			}
		}
		out = append(out, chain)
	}
	return out
}
