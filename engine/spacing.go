package engine

import "math"

// DashSegment is one seed interval produced by the dash planner (spec
// §4.E "Produce seed list" / §4.G "first_contour"): a sub-arc of a
// too-long contour segment whose midpoint becomes a tracer seed.
type DashSegment struct {
	Line Polyline
}

// splitByHachures implements spec §4.E's "Split-by-hachures" step for
// a single ring: intersect it with every live hachure, collect cut
// points, and split. A ring with no cuts is emitted verbatim as one
// Segment.
func splitByHachures(ring Polyline, hachures []*Hachure, stats *BuildStats) []*Segment {
	var cuts []CutPoint
	for _, h := range hachures {
		pts := intersectionPoints(ring, h.Line)
		if pts == nil {
			continue
		}
		for _, p := range pts {
			cuts = append(cuts, CutPoint{
				Point:    p,
				Hachure:  h.Ref,
				Location: locatePoint(ring, p),
			})
		}
	}
	if len(cuts) == 0 {
		return []*Segment{{Line: ring, Arc0: 0, Arc1: length(ring)}}
	}
	return cutpointSplit(ring, cuts)
}

// subdivide implements spec §4.E's "Subdivision" step: segments
// longer than 3*max_spacing are further even_split to keep slope
// sampling local; short segments (from cuts) pass through unchanged.
func subdivide(segs []*Segment, maxSpacing float64) []*Segment {
	limit := 3 * maxSpacing
	out := make([]*Segment, 0, len(segs))
	for _, s := range segs {
		if s.length() > limit {
			sub := evenSplit(s.Line, limit)
			for _, ss := range sub {
				ss.Hachures = s.Hachures
			}
			out = append(out, sub...)
		} else {
			out = append(out, s)
		}
	}
	return out
}

// classify implements spec §4.E's "Classification" step: mean slope
// along a densified sampling of the segment, then bucket it against
// the clip-all/too-short/too-long/ok thresholds.
func classify(s *Segment, sampler *Sampler, avgPixel float64, p Params) {
	s.slope = meanSlope(s.Line, sampler, avgPixel)
	s.slopeSet = true

	if s.slope < p.MinSlope {
		s.status = StatusClipAll
		return
	}
	spacing, ok := p.idealSpacing(s.slope)
	if !ok {
		s.status = StatusClipAll
		return
	}
	l := s.length()
	switch {
	case l < p.TooShortFactor*spacing:
		s.status = StatusTooShort
	case l > p.TooLongFactor*spacing:
		s.status = StatusTooLong
	default:
		s.status = StatusOK
	}
}

// meanSlope samples slope along a densified copy of line and returns
// the mean, or 0 if there are no samples (spec §4.E: "empty/NaN →
// 0").
func meanSlope(line Polyline, sampler *Sampler, avgPixel float64) float64 {
	if len(line) == 0 || sampler == nil {
		return 0
	}
	pts := densify(line, avgPixel)
	var sum float64
	var n int
	for _, pt := range pts {
		v := sampler.SampleSlope(pt.X, pt.Y)
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// produceClipList implements spec §4.E's "Produce clip list": every
// hachure bounding a clip-all segment is clipped outright; for each
// too-short segment with exactly two bounding hachures, the shorter
// of the two is marked (deterministic tie-break, spec §9/§4.E —
// ties broken by the lower HachureRef). The result is deduplicated.
func produceClipList(segs []*Segment, hachures *arena) []HachureRef {
	seen := make(map[HachureRef]bool)
	var out []HachureRef
	mark := func(ref HachureRef) {
		if ref == 0 || seen[ref] {
			return
		}
		seen[ref] = true
		out = append(out, ref)
	}

	for _, s := range segs {
		switch s.status {
		case StatusClipAll:
			mark(s.Hachures[0])
			mark(s.Hachures[1])
		case StatusTooShort:
			a, b := s.Hachures[0], s.Hachures[1]
			if a == 0 || b == 0 {
				continue
			}
			ha, hb := hachures.get(a), hachures.get(b)
			if ha == nil || hb == nil {
				continue
			}
			if shorterOf(ha, hb) == ha.Ref {
				mark(ha.Ref)
			} else {
				mark(hb.Ref)
			}
		}
	}
	return out
}

func shorterOf(a, b *Hachure) HachureRef {
	la, lb := a.Length(), b.Length()
	switch {
	case la < lb:
		return a.Ref
	case lb < la:
		return b.Ref
	default:
		if a.Ref < b.Ref {
			return a.Ref
		}
		return b.Ref
	}
}

// dashPlanner implements spec §4.E's "Produce seed list" sub-procedure
// for a single segment: subdivide its length into evenly spaced dash
// intervals, aligned like the dash/gap idiom of vector-drawing
// editors. Returns nil (and increments stats.ZeroUnitDashes) when the
// rounded unit count is zero.
func dashPlanner(seg *Segment, p Params, stats *BuildStats) []DashSegment {
	spacing, ok := p.idealSpacing(s2(seg))
	if !ok {
		return nil
	}
	l := seg.length()
	units := int(math.Round(l / (2 * spacing)))
	if units == 0 {
		if stats != nil {
			stats.ZeroUnitDashes++
		}
		return nil
	}
	dashGap := l / float64(units)
	dash := dashGap / 2
	gap := dash / 2

	var dashes []DashSegment
	for start := gap; start+dash <= l+1e-9; start += dashGap {
		end := start + dash
		if end > l {
			end = l
		}
		dashes = append(dashes, DashSegment{Line: substring(seg.Line, start, end)})
	}
	return dashes
}

func s2(seg *Segment) float64 {
	if seg.slopeSet {
		return seg.slope
	}
	return 0
}

// dashMidpoint returns the seed point for a dash: the midpoint of its
// line, by arclength.
func dashMidpoint(d DashSegment) Point {
	return interpolate(d.Line, length(d.Line)/2)
}
