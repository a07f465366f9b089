package engine

import "testing"

// constGrid is a GridLike of uniform value, for tracer unit tests that
// don't need real terrain.
type constGrid struct {
	rows, cols int
	dx, dy     float64
	v          float64
}

func (g *constGrid) Extent() Extent {
	return Extent{XMin: 0, YMin: 0, XMax: float64(g.cols) * g.dx, YMax: float64(g.rows) * g.dy}
}
func (g *constGrid) CellSize() (float64, float64) { return g.dx, g.dy }
func (g *constGrid) Dims() (int, int)              { return g.rows, g.cols }
func (g *constGrid) At(row, col int) float64       { return g.v }

func TestTraceRejectsZeroAspectSeed(t *testing.T) {
	aspect := &constGrid{rows: 20, cols: 20, dx: 1, dy: 1, v: 0}
	slope := &constGrid{rows: 20, cols: 20, dx: 1, dy: 1, v: 30}
	sampler := NewSampler(slope, aspect)
	tracer := NewTracer(sampler, Params{MinSlope: 2, JumpDistance: 1, MaxTracerSteps: 10})

	stats := &BuildStats{}
	line, ok := tracer.Trace(Point{10, 10}, stats)
	if ok || line != nil {
		t.Fatalf("Trace with aspect 0 everywhere should be rejected, got %v, %v", line, ok)
	}
	if stats.RejectedSeeds != 1 {
		t.Fatalf("RejectedSeeds = %d, want 1", stats.RejectedSeeds)
	}
}

func TestTraceStopsOnSlackSlope(t *testing.T) {
	aspect := &constGrid{rows: 20, cols: 20, dx: 1, dy: 1, v: 90}
	slope := &constGrid{rows: 20, cols: 20, dx: 1, dy: 1, v: 1}
	sampler := NewSampler(slope, aspect)
	tracer := NewTracer(sampler, Params{MinSlope: 2, JumpDistance: 1, MaxTracerSteps: 50})

	line, ok := tracer.Trace(Point{10, 10}, nil)
	if ok || line != nil {
		t.Fatalf("Trace on a sub-threshold slope everywhere should stop immediately, got %v, %v", line, ok)
	}
}

func TestTraceTerminatesWithinStepBudget(t *testing.T) {
	aspect := &constGrid{rows: 400, cols: 400, dx: 1, dy: 1, v: 90}
	slope := &constGrid{rows: 400, cols: 400, dx: 1, dy: 1, v: 30}
	sampler := NewSampler(slope, aspect)
	steps := 25
	tracer := NewTracer(sampler, Params{MinSlope: 2, JumpDistance: 1, MaxTracerSteps: steps})

	line, ok := tracer.Trace(Point{200, 200}, nil)
	if !ok {
		t.Fatalf("Trace should succeed on a constant downhill field")
	}
	if len(line) > steps+1 {
		t.Fatalf("Trace produced %d vertices, want at most %d (max_tracer_steps+1)", len(line), steps+1)
	}
}

func TestTraceStepsOppositeAspect(t *testing.T) {
	// Aspect 180 means uphill is south; down-slope direction is
	// aspect+180 = north, i.e. increasing Y. (Aspect 0 is the sentinel
	// that rejects the seed, so it cannot stand for north here.)
	aspect := &constGrid{rows: 400, cols: 400, dx: 1, dy: 1, v: 180}
	slope := &constGrid{rows: 400, cols: 400, dx: 1, dy: 1, v: 30}
	sampler := NewSampler(slope, aspect)
	tracer := NewTracer(sampler, Params{MinSlope: 2, JumpDistance: 2, MaxTracerSteps: 3})

	line, ok := tracer.Trace(Point{200, 200}, nil)
	if !ok || len(line) < 2 {
		t.Fatalf("Trace should step at least once, got %v, %v", line, ok)
	}
	if line[1].Y <= line[0].Y {
		t.Fatalf("down-slope step should increase Y when aspect is south, got %v -> %v", line[0], line[1])
	}
}
