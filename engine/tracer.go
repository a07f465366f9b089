package engine

import "math"

// Tracer walks aspect-field vectors from a seed point until a stop
// rule fires (spec §4.F). It mirrors the teacher's raycast-stepping
// loop in detour/query.go: advance by a fixed step, test the stop
// conditions in order, and truncate the trace on the first one that
// fires.
type Tracer struct {
	sampler *Sampler
	p       Params
}

// NewTracer returns a Tracer sampling the given field with the given
// parameters.
func NewTracer(sampler *Sampler, p Params) *Tracer {
	return &Tracer{sampler: sampler, p: p}
}

// Trace runs a single streamline from seed, returning the resulting
// polyline and true if it has at least two vertices (spec §4.F:
// "Emit the polyline if it has >= 2 vertices; else discard"). stats,
// if non-nil, is updated for rejected seeds and capped traces.
func (t *Tracer) Trace(seed Point, stats *BuildStats) (Polyline, bool) {
	aspect0 := t.sampler.SampleAspect(seed.X, seed.Y)
	if aspect0 == 0 {
		if stats != nil {
			stats.RejectedSeeds++
		}
		return nil, false
	}

	line := Polyline{seed}
	for step := 0; step < t.p.MaxTracerSteps; step++ {
		cur := line[len(line)-1]
		aspect := t.sampler.SampleAspect(cur.X, cur.Y)
		if aspect == 0 {
			// Bounds stop rule: drop the last vertex and stop.
			line = line[:len(line)-1]
			break
		}
		slope := t.sampler.SampleSlope(cur.X, cur.Y)
		if slope < t.p.MinSlope {
			// Slack-slope stop rule: drop the last vertex and stop.
			line = line[:len(line)-1]
			break
		}

		// Down-slope step direction is aspect+180 degrees (spec
		// §4.F): the aspect field gives steepest-ascent compass
		// direction, the hachure walks the opposite way.
		rad := (aspect + 180) * math.Pi / 180
		next := Point{
			X: cur.X + math.Sin(rad)*t.p.JumpDistance,
			Y: cur.Y + math.Cos(rad)*t.p.JumpDistance,
		}
		line = append(line, next)

		if len(line) >= 3 {
			vn, vn2 := line[len(line)-1], line[len(line)-3]
			threshold := 1.5 * t.p.JumpDistance
			if sqDist(vn, vn2) < threshold*threshold {
				// Oscillation stop rule: drop the last two
				// vertices and stop.
				line = line[:len(line)-2]
				break
			}
		}

		if step == t.p.MaxTracerSteps-1 && stats != nil {
			stats.TracerCapped++
		}
	}

	if len(line) < 2 {
		return nil, false
	}
	return line, true
}
