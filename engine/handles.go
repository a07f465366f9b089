package engine

// HachureRef is a stable handle identifying a live hachure across a
// sweep step, independent of its current geometry (spec §9: "the
// source's reliance on object identity is an implementation
// accident, not a requirement"). It plays the same role here that a
// DtPolyRef plays in the teacher's navmesh runtime: callers pass the
// ref around, never the geometry, so replacing a hachure's geometry
// after a clip cannot invalidate a reference held by a Segment or
// CutPoint created earlier in the same step.
type HachureRef uint32

// Hachure is a polyline produced by the tracer, vertices ordered from
// seed outward (spec §3).
type Hachure struct {
	Ref  HachureRef
	Line Polyline
}

// Length returns the hachure's arclength.
func (h *Hachure) Length() float64 { return length(h.Line) }

// arena owns the live hachure set exclusively on behalf of the
// orchestrator (spec §5).
type arena struct {
	next    HachureRef
	byRef   map[HachureRef]*Hachure
}

func newArena() *arena {
	return &arena{next: 1, byRef: make(map[HachureRef]*Hachure)}
}

// add installs line as a new live hachure and returns its ref.
func (a *arena) add(line Polyline) HachureRef {
	ref := a.next
	a.next++
	a.byRef[ref] = &Hachure{Ref: ref, Line: line}
	return ref
}

// get returns the hachure for ref, or nil if it is not live.
func (a *arena) get(ref HachureRef) *Hachure {
	return a.byRef[ref]
}

// remove drops ref from the live set.
func (a *arena) remove(ref HachureRef) {
	delete(a.byRef, ref)
}

// replace swaps ref's geometry for line in place, preserving identity.
func (a *arena) replace(ref HachureRef, line Polyline) {
	if h, ok := a.byRef[ref]; ok {
		h.Line = line
	}
}

// all returns every currently live hachure, in no particular order.
func (a *arena) all() []*Hachure {
	out := make([]*Hachure, 0, len(a.byRef))
	for _, h := range a.byRef {
		out = append(out, h)
	}
	return out
}

func (a *arena) len() int { return len(a.byRef) }
