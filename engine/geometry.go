package engine

import (
	"math"

	clipper "github.com/go-clipper/clipper2/port"
)

// fixedPrecision scales float64 map-unit coordinates into Clipper2's
// integer domain. 1e4 keeps sub-millimetre precision for typical DEM
// map units (metres) while staying well inside int64 range for any
// sane extent.
const fixedPrecision = 1e4

// Point is a single planar coordinate in map units.
type Point struct{ X, Y float64 }

// Polyline is an ordered, open list of vertices in map units.
type Polyline []Point

// Ring is a closed polyline: a single part of a multi-part contour or
// hachure geometry. The spec's "multi-part" polylines (§4.B) decompose
// into a slice of Rings (for closed geometry) or Polylines (for open
// geometry, like traced hachures or dash segments).
type Ring = Polyline

// Extent is an axis-aligned bounding rectangle in map units.
type Extent struct{ XMin, YMin, XMax, YMax float64 }

func toFixed(p Point) clipper.Point64 {
	return clipper.Point64{
		X: int64(math.Round(p.X * fixedPrecision)),
		Y: int64(math.Round(p.Y * fixedPrecision)),
	}
}

func fromFixed(p clipper.Point64) Point {
	return Point{X: float64(p.X) / fixedPrecision, Y: float64(p.Y) / fixedPrecision}
}

func toPath64(pl Polyline) clipper.Path64 {
	path := make(clipper.Path64, len(pl))
	for i, p := range pl {
		path[i] = toFixed(p)
	}
	return path
}

func fromPath64(path clipper.Path64) Polyline {
	pl := make(Polyline, len(path))
	for i, p := range path {
		pl[i] = fromFixed(p)
	}
	return pl
}

func fromPaths64(paths clipper.Paths64) []Polyline {
	out := make([]Polyline, len(paths))
	for i, p := range paths {
		out[i] = fromPath64(p)
	}
	return out
}

// fromRect builds the bounding rectangle ring for extent, per spec
// §4.B's from_rect(extent).
func fromRect(extent Extent) Ring {
	return Ring{
		{X: extent.XMin, Y: extent.YMin},
		{X: extent.XMax, Y: extent.YMin},
		{X: extent.XMax, Y: extent.YMax},
		{X: extent.XMin, Y: extent.YMax},
		{X: extent.XMin, Y: extent.YMin},
	}
}

// polyDifference returns the portion of subject rings outside clip,
// implementing spec §4.B's difference(L, Poly) via Clipper2's Vatti
// boolean-op backend.
func polyDifference(subject []Ring, clip []Ring) ([]Ring, error) {
	subj := make(clipper.Paths64, len(subject))
	for i, r := range subject {
		subj[i] = toPath64(r)
	}
	clp := make(clipper.Paths64, len(clip))
	for i, r := range clip {
		clp[i] = toPath64(r)
	}
	result, err := clipper.Difference64(subj, clp, clipper.NonZero)
	if err != nil {
		return nil, err
	}
	return fromPaths64(result), nil
}

// polylineDifference subtracts region (a set of rings describing possibly
// disjoint/holed polygons) from an open polyline, per §4.B's
// difference(L, Poly), preserving the parts of L that lie outside
// region. Clipper2's rectangle-clip family does not apply to an
// arbitrary polygon, so the line is walked vertex by vertex, split
// into runs at every point where it crosses a region boundary (found
// via SegmentIntersection). Only the first vertex is tested with
// PointInPolygon; from there the inside/outside state flips at each
// crossing, and only the outside runs are kept. This mirrors how gdal/geos clip
// an arbitrary line by an arbitrary polygon when no dedicated
// line-vs-polygon primitive is available.
func polylineDifference(line Polyline, region []Ring) []Polyline {
	if len(line) < 2 {
		return nil
	}
	var run Polyline
	var runs []Polyline
	flush := func() {
		if len(run) >= 2 {
			runs = append(runs, run)
		}
		run = nil
	}

	keep := !pointInRings(line[0], region)
	if keep {
		run = append(run, line[0])
	}
	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		for _, cp := range segmentRegionCrossings(a, b, region) {
			if keep {
				run = append(run, cp)
				flush()
			} else {
				run = append(run, cp)
			}
			keep = !keep
		}
		if keep {
			run = append(run, b)
		}
	}
	flush()
	return runs
}

// pointInRings reports whether p lies inside (or on the boundary of)
// any ring of region, treating region as a NonZero-filled polygon
// set.
func pointInRings(p Point, region []Ring) bool {
	for _, r := range region {
		if len(r) < 3 {
			continue
		}
		loc := clipper.PointInPolygon(toFixed(p), toPath64(r), clipper.NonZero)
		if loc != clipper.Outside {
			return true
		}
	}
	return false
}

// segmentRegionCrossings returns the points where segment a->b crosses
// any edge of region's rings, ordered by distance from a.
func segmentRegionCrossings(a, b Point, region []Ring) []Point {
	var pts []Point
	fa, fb := toFixed(a), toFixed(b)
	for _, r := range region {
		for i := 0; i+1 < len(r); i++ {
			e0, e1 := toFixed(r[i]), toFixed(r[i+1])
			pt, kind, err := clipper.SegmentIntersection(fa, fb, e0, e1)
			if err != nil || kind != clipper.PointIntersection {
				continue
			}
			pts = append(pts, fromFixed(pt))
		}
	}
	sortByDistanceFrom(a, pts)
	return pts
}

func sortByDistanceFrom(origin Point, pts []Point) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && sqDist(origin, pts[j]) < sqDist(origin, pts[j-1]); j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}

func sqDist(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// length returns the arclength of pl (spec §4.B length(L)). There is
// no arclength API in the retrieved pack's polygon libraries, so this
// is implemented directly (see DESIGN.md).
func length(pl Polyline) float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += math.Hypot(pl[i].X-pl[i-1].X, pl[i].Y-pl[i-1].Y)
	}
	return total
}

// densify inserts vertices so consecutive vertices are at most step
// apart (spec §4.B densify(L, step)).
func densify(pl Polyline, step float64) Polyline {
	if len(pl) < 2 || step <= 0 {
		return pl
	}
	out := Polyline{pl[0]}
	for i := 1; i < len(pl); i++ {
		a, b := pl[i-1], pl[i]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		n := int(math.Ceil(segLen / step))
		for k := 1; k < n; k++ {
			t := float64(k) / float64(n)
			out = append(out, Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)})
		}
		out = append(out, b)
	}
	return out
}

// interpolate returns the point at arclength s along pl (spec §4.B
// interpolate(L, s)).
func interpolate(pl Polyline, s float64) Point {
	if len(pl) == 0 {
		return Point{}
	}
	if s <= 0 {
		return pl[0]
	}
	var acc float64
	for i := 1; i < len(pl); i++ {
		a, b := pl[i-1], pl[i]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		if acc+segLen >= s {
			t := 0.0
			if segLen > 0 {
				t = (s - acc) / segLen
			}
			return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
		}
		acc += segLen
	}
	return pl[len(pl)-1]
}

// substring returns the sub-arc of pl between arclengths s0 and s1
// (spec §4.B substring(L, s0, s1), 0 <= s0 < s1 <= length(L)).
func substring(pl Polyline, s0, s1 float64) Polyline {
	if s1 <= s0 || len(pl) < 2 {
		return nil
	}
	out := Polyline{interpolate(pl, s0)}
	var acc float64
	for i := 1; i < len(pl); i++ {
		a, b := pl[i-1], pl[i]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		next := acc + segLen
		if next > s0 && next < s1 {
			out = append(out, b)
		}
		acc = next
		if acc >= s1 {
			break
		}
	}
	out = append(out, interpolate(pl, s1))
	return dedupConsecutive(out)
}

func dedupConsecutive(pl Polyline) Polyline {
	if len(pl) < 2 {
		return pl
	}
	out := Polyline{pl[0]}
	for _, p := range pl[1:] {
		last := out[len(out)-1]
		if p.X != last.X || p.Y != last.Y {
			out = append(out, p)
		}
	}
	return out
}

// locatePoint returns the arclength of the orthogonal projection of p
// onto pl (spec §4.B locate_point(L, P)).
func locatePoint(pl Polyline, p Point) float64 {
	if len(pl) < 2 {
		return 0
	}
	var acc, best float64
	bestDist := math.Inf(1)
	for i := 1; i < len(pl); i++ {
		a, b := pl[i-1], pl[i]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		t := 0.0
		if segLen > 0 {
			t = ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / (segLen * segLen)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}
		proj := Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
		d := sqDist(p, proj)
		if d < bestDist {
			bestDist = d
			best = acc + t*segLen
		}
		acc += segLen
	}
	return best
}

// intersectionPoints returns every point where ring a crosses ring b
// (spec §4.B intersection(L, L')). Geometry-collection results (when
// two segments overlap collinearly) are skipped, per spec's tolerance
// for that anomaly.
func intersectionPoints(a, b Polyline) []Point {
	var pts []Point
	for i := 0; i+1 < len(a); i++ {
		fa0, fa1 := toFixed(a[i]), toFixed(a[i+1])
		for j := 0; j+1 < len(b); j++ {
			fb0, fb1 := toFixed(b[j]), toFixed(b[j+1])
			pt, kind, err := clipper.SegmentIntersection(fa0, fa1, fb0, fb1)
			if err != nil || kind != clipper.PointIntersection {
				continue
			}
			pts = append(pts, fromFixed(pt))
		}
	}
	return pts
}
