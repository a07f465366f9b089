package engine

import (
	"runtime"
	"sync"
)

// Engine sweeps a contour stack low to high, maintaining the live
// hachure set and dispatching to the spacing controller and tracer
// (spec §4.G). It is grounded on the teacher's SoloMesh.Build(): a
// numbered-step method that logs progress between stages and times
// the whole run.
type Engine struct {
	params  Params
	sampler *Sampler
	ctx     *Context
	stats   *BuildStats

	hachures *arena
}

// New returns an Engine ready to Run against model, validating params
// first (spec §7: configuration errors fail fast, before the sweep
// begins).
func New(params Params, sampler *Sampler, ctx *Context) (*Engine, error) {
	p := params.withDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var bc *BuildContext
	if ctx != nil {
		bc, _ = ctx.Contexter.(*BuildContext)
	}
	var stats *BuildStats
	if bc != nil {
		stats = &bc.Stats
	} else {
		stats = &BuildStats{}
	}
	return &Engine{params: p, sampler: sampler, ctx: ctx, stats: stats, hachures: newArena()}, nil
}

func (e *Engine) avgPixel() float64 {
	if e.params.CellSize > 0 {
		return e.params.CellSize
	}
	return e.params.JumpDistance / 3
}

// Run sweeps every contour in model low to high and returns the final
// deduplicated set of hachure polylines (spec §4.G).
func (e *Engine) Run(model *ContourModel) []Polyline {
	e.ctx.StartTimer(TimerTotal)
	defer e.ctx.StopTimer(TimerTotal)

	e.ctx.Progressf("sweeping %d contour levels", len(model.Contours))
	for i, k := range model.Contours {
		if e.hachures.len() == 0 {
			e.firstContour(k)
		} else {
			e.subsequentContour(k)
		}
		e.ctx.Progressf("contour %d/%d (elev %.3f): %d live hachures", i+1, len(model.Contours), k.Elev, e.hachures.len())
	}

	out := make([]Polyline, 0, e.hachures.len())
	for _, h := range e.hachures.all() {
		out = append(out, h.Line)
	}
	return out
}

// firstContour implements spec §4.G: split the first contour evenly,
// run the dash planner on every segment (each one's mean slope is
// measured by classify, but its status does not filter it: every
// segment is a candidate seed line), and trace from each dash
// midpoint.
func (e *Engine) firstContour(k Contour) {
	e.ctx.StartTimer(TimerContourBuild)
	defer e.ctx.StopTimer(TimerContourBuild)

	tracer := NewTracer(e.sampler, e.params)
	limit := 3 * e.params.MaxSpacing
	for _, ring := range k.Line {
		segs := evenSplit(ring, limit)
		for _, seg := range segs {
			classify(seg, e.sampler, e.avgPixel(), e.params)
			dashes := dashPlanner(seg, e.params, e.stats)
			for _, d := range dashes {
				e.ctx.StartTimer(TimerTrace)
				line, ok := tracer.Trace(dashMidpoint(d), e.stats)
				e.ctx.StopTimer(TimerTrace)
				if ok {
					e.hachures.add(line)
				}
			}
		}
	}
}

// subsequentContour implements spec §4.G's per-step pipeline: split
// and classify against the live hachure set, clip what must be
// clipped, and trace new hachures from too-long segments.
func (e *Engine) subsequentContour(k Contour) {
	segs := e.splitAndClassify(k.Line)

	clipRefs := produceClipList(segs, e.hachures)

	e.ctx.StartTimer(TimerClip)
	for _, ref := range clipRefs {
		h := e.hachures.get(ref)
		if h == nil {
			continue
		}
		e.hachures.remove(ref)
		for _, kept := range polylineDifference(h.Line, k.Region) {
			e.hachures.add(kept)
		}
	}
	e.ctx.StopTimer(TimerClip)

	tracer := NewTracer(e.sampler, e.params)
	e.ctx.StartTimer(TimerTrace)
	for _, s := range segs {
		if s.status != StatusTooLong {
			continue
		}
		for _, d := range dashPlanner(s, e.params, e.stats) {
			line, ok := tracer.Trace(dashMidpoint(d), e.stats)
			if ok {
				e.hachures.add(line)
			}
		}
	}
	e.ctx.StopTimer(TimerTrace)
}

// splitAndClassify runs spec §4.E's split/subdivide/classify pipeline
// over every ring of line. Per-ring work is independent (spec §5:
// "natural candidates for data-parallel execution over the segment
// list"), so rings are processed concurrently, bounded by
// GOMAXPROCS, with results merged before any further mutation.
func (e *Engine) splitAndClassify(lines []Polyline) []*Segment {
	e.ctx.StartTimer(TimerSplit)
	defer e.ctx.StopTimer(TimerSplit)

	if len(lines) == 0 {
		return nil
	}
	hachures := e.hachures.all()

	results := make([][]*Segment, len(lines))
	workers := runtime.GOMAXPROCS(0)
	if workers > len(lines) {
		workers = len(lines)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	jobs := make(chan int)
	worker := func() {
		defer wg.Done()
		for i := range jobs {
			segs := splitByHachures(lines[i], hachures, e.stats)
			segs = subdivide(segs, e.params.MaxSpacing)
			for _, s := range segs {
				classify(s, e.sampler, e.avgPixel(), e.params)
			}
			results[i] = segs
		}
	}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go worker()
	}
	for i := range lines {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var all []*Segment
	for _, segs := range results {
		all = append(all, segs...)
	}
	return all
}
