package engine

import (
	"sort"

	assert "github.com/arl/assertgo"
)

// Status classifies a contour segment (spec §3/§4.E).
type Status int

const (
	StatusClipAll  Status = iota // slope below min_slope: clip every bounding hachure
	StatusTooShort               // length < 0.9 * ideal_spacing(slope)
	StatusTooLong                // length > 2.2 * ideal_spacing(slope)
	StatusOK                     // neither too short nor too long
)

// Segment is a sub-arc of a contour line (spec §3). It is created
// during a single contour sweep step and discarded at the end of it.
type Segment struct {
	Line     Polyline
	Arc0     float64 // starting arclength along the ring it was cut from
	Arc1     float64
	Hachures [2]HachureRef // up to two bounding hachures; 0 means "none"

	slope    float64
	slopeSet bool
	status   Status
}

func (s *Segment) length() float64 { return length(s.Line) }

// CutPoint is an intersection between a hachure and a contour ring
// (spec §3).
type CutPoint struct {
	Point    Point
	Hachure  HachureRef
	Location float64 // arclength along the ring where the cut occurs
}

// evenSplit implements spec §4.D: split ring at arclengths spacing,
// 2*spacing, ... up to length(ring); the remainder becomes the final
// segment.
func evenSplit(ring Polyline, spacing float64) []*Segment {
	total := length(ring)
	if total <= 0 || spacing <= 0 {
		return []*Segment{{Line: ring, Arc0: 0, Arc1: total}}
	}
	var segs []*Segment
	s0 := 0.0
	for s0 < total {
		s1 := s0 + spacing
		if s1 > total {
			s1 = total
		}
		if s1-s0 > 1e-9 {
			segs = append(segs, &Segment{Line: substring(ring, s0, s1), Arc0: s0, Arc1: s1})
		}
		s0 = s1
	}
	return segs
}

// cutpointSplit implements spec §4.D: sort cuts ascending by
// location, emit segments [0,s0], [s0,s1], ..., [sk-1,length]. Each
// interior segment inherits the pair of hachures bounding it; the
// first and last inherit none.
func cutpointSplit(ring Polyline, cuts []CutPoint) []*Segment {
	total := length(ring)
	sortCutPoints(cuts)
	assert.True(sort.IsSorted(byLocation(cuts)), "cutpointSplit: cuts must be sorted ascending by location")

	bounds := make([]float64, 0, len(cuts)+2)
	bounds = append(bounds, 0)
	for _, c := range cuts {
		bounds = append(bounds, c.Location)
	}
	bounds = append(bounds, total)

	segs := make([]*Segment, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		s0, s1 := bounds[i], bounds[i+1]
		if s1-s0 <= 1e-9 {
			continue
		}
		seg := &Segment{Line: substring(ring, s0, s1), Arc0: s0, Arc1: s1}
		// Interior segments (not the first, not the last) are
		// bounded by cuts[i-1] and cuts[i]; the first and last lie
		// past an endpoint cut and inherit none (spec §4.D).
		if i >= 1 && i < len(cuts) {
			seg.Hachures[0] = cuts[i-1].Hachure
			seg.Hachures[1] = cuts[i].Hachure
		}
		segs = append(segs, seg)
	}
	return segs
}

// sortCutPoints sorts cuts ascending by arclength, stable (spec §5:
// downstream sort is stable on arclength).
func sortCutPoints(cuts []CutPoint) {
	for i := 1; i < len(cuts); i++ {
		for j := i; j > 0 && cuts[j].Location < cuts[j-1].Location; j-- {
			cuts[j], cuts[j-1] = cuts[j-1], cuts[j]
		}
	}
}

type byLocation []CutPoint

func (b byLocation) Len() int           { return len(b) }
func (b byLocation) Less(i, j int) bool { return b[i].Location < b[j].Location }
func (b byLocation) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
