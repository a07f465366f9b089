package engine

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestLength(t *testing.T) {
	pl := Polyline{{0, 0}, {3, 0}, {3, 4}}
	got := length(pl)
	if !approxEqual(got, 7, 1e-9) {
		t.Fatalf("length() = %v, want 7", got)
	}
}

func TestDensify(t *testing.T) {
	pl := Polyline{{0, 0}, {10, 0}}
	out := densify(pl, 3)
	if len(out) < 4 {
		t.Fatalf("densify produced %d vertices, want at least 4", len(out))
	}
	for i := 1; i < len(out); i++ {
		d := math.Hypot(out[i].X-out[i-1].X, out[i].Y-out[i-1].Y)
		if d > 3+1e-9 {
			t.Fatalf("densify left a gap of %v > step 3", d)
		}
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	pl := Polyline{{0, 0}, {10, 0}}
	if p := interpolate(pl, 0); p.X != 0 {
		t.Fatalf("interpolate(0) = %v, want (0,0)", p)
	}
	if p := interpolate(pl, 10); p.X != 10 {
		t.Fatalf("interpolate(length) = %v, want (10,0)", p)
	}
	if p := interpolate(pl, 5); p.X != 5 {
		t.Fatalf("interpolate(5) = %v, want (5,0)", p)
	}
}

func TestSubstringIsPartitionOfLength(t *testing.T) {
	pl := Polyline{{0, 0}, {10, 0}, {10, 10}}
	sub := substring(pl, 2, 15)
	if sub == nil {
		t.Fatalf("substring returned nil")
	}
	got := length(sub)
	want := 15.0 - 2.0
	if !approxEqual(got, want, 1e-9) {
		t.Fatalf("length(substring(pl,2,15)) = %v, want %v", got, want)
	}
}

func TestLocatePointRoundTrip(t *testing.T) {
	pl := Polyline{{0, 0}, {10, 0}}
	p := interpolate(pl, 4)
	got := locatePoint(pl, p)
	if !approxEqual(got, 4, 1e-9) {
		t.Fatalf("locatePoint(interpolate(4)) = %v, want 4", got)
	}
}

func TestIntersectionPointsCross(t *testing.T) {
	a := Polyline{{0, 0}, {10, 10}}
	b := Polyline{{0, 10}, {10, 0}}
	pts := intersectionPoints(a, b)
	if len(pts) != 1 {
		t.Fatalf("intersectionPoints: got %d points, want 1", len(pts))
	}
	if !approxEqual(pts[0].X, 5, 1e-3) || !approxEqual(pts[0].Y, 5, 1e-3) {
		t.Fatalf("intersectionPoints: got %v, want (5,5)", pts[0])
	}
}

func TestIntersectionPointsParallelNoCross(t *testing.T) {
	a := Polyline{{0, 0}, {10, 0}}
	b := Polyline{{0, 1}, {10, 1}}
	if pts := intersectionPoints(a, b); len(pts) != 0 {
		t.Fatalf("intersectionPoints of parallel lines = %v, want none", pts)
	}
}

func TestPolylineDifferencePassthroughWithNoRegion(t *testing.T) {
	line := Polyline{{0, 0}, {10, 0}}
	out := polylineDifference(line, nil)
	if len(out) != 1 {
		t.Fatalf("polylineDifference with no region: got %d runs, want 1", len(out))
	}
	if !approxEqual(length(out[0]), 10, 1e-9) {
		t.Fatalf("polylineDifference with no region changed length: got %v, want 10", length(out[0]))
	}
}

func TestPolylineDifferenceClipsMiddle(t *testing.T) {
	line := Polyline{{0, 5}, {20, 5}}
	square := Ring{{8, 0}, {12, 0}, {12, 10}, {8, 10}, {8, 0}}

	out := polylineDifference(line, []Ring{square})
	if len(out) != 2 {
		t.Fatalf("polylineDifference through a square: got %d runs, want 2", len(out))
	}
	total := 0.0
	for _, run := range out {
		total += length(run)
	}
	if total >= 20 {
		t.Fatalf("polylineDifference should remove the portion inside the region: total %v >= 20", total)
	}
}

func TestFromRectIsClosed(t *testing.T) {
	ext := Extent{XMin: 0, YMin: 0, XMax: 10, YMax: 5}
	r := fromRect(ext)
	if r[0] != r[len(r)-1] {
		t.Fatalf("fromRect ring is not closed: first %v last %v", r[0], r[len(r)-1])
	}
}
