package engine

import "testing"

func TestEvenSplitRespectsMaxLength(t *testing.T) {
	ring := Polyline{{0, 0}, {100, 0}}
	segs := evenSplit(ring, 9)
	if len(segs) == 0 {
		t.Fatalf("evenSplit produced no segments")
	}
	total := 0.0
	for _, s := range segs {
		if s.length() > 9+1e-9 {
			t.Fatalf("evenSplit produced a segment of length %v > spacing 9", s.length())
		}
		total += s.length()
	}
	if !approxEqual(total, 100, 1e-6) {
		t.Fatalf("evenSplit segments sum to %v, want 100", total)
	}
}

func TestCutpointSplitPartitionsRing(t *testing.T) {
	ring := Polyline{{0, 0}, {100, 0}}
	cuts := []CutPoint{
		{Point: Point{30, 0}, Hachure: 1, Location: 30},
		{Point: Point{70, 0}, Hachure: 2, Location: 70},
	}
	segs := cutpointSplit(ring, cuts)
	if len(segs) != 3 {
		t.Fatalf("cutpointSplit: got %d segments, want 3", len(segs))
	}
	total := 0.0
	for _, s := range segs {
		total += s.length()
	}
	if !approxEqual(total, 100, 1e-6) {
		t.Fatalf("cutpointSplit segments sum to %v, want 100", total)
	}

	if segs[0].Hachures[0] != 0 || segs[0].Hachures[1] != 0 {
		t.Fatalf("first segment should inherit no hachures, got %v", segs[0].Hachures)
	}
	if segs[len(segs)-1].Hachures[0] != 0 || segs[len(segs)-1].Hachures[1] != 0 {
		t.Fatalf("last segment should inherit no hachures, got %v", segs[len(segs)-1].Hachures)
	}
	if segs[1].Hachures[0] != 1 || segs[1].Hachures[1] != 2 {
		t.Fatalf("middle segment should inherit cuts[0] and cuts[1], got %v", segs[1].Hachures)
	}
}

func TestCutpointSplitSingleCut(t *testing.T) {
	ring := Polyline{{0, 0}, {100, 0}}
	cuts := []CutPoint{{Point: Point{50, 0}, Hachure: 7, Location: 50}}
	segs := cutpointSplit(ring, cuts)
	if len(segs) != 2 {
		t.Fatalf("cutpointSplit with one cut: got %d segments, want 2", len(segs))
	}
	for _, s := range segs {
		if s.Hachures[0] != 0 || s.Hachures[1] != 0 {
			t.Fatalf("with a single cut, every segment is an endpoint segment and should inherit nothing, got %v", s.Hachures)
		}
	}
}
