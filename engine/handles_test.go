package engine

import "testing"

func TestArenaAddGetRemove(t *testing.T) {
	a := newArena()
	ref := a.add(Polyline{{0, 0}, {1, 1}})
	if ref == 0 {
		t.Fatalf("a.add returned the zero ref, which must mean \"none\"")
	}
	h := a.get(ref)
	if h == nil || h.Ref != ref {
		t.Fatalf("a.get(%v) = %v, want a hachure with that ref", ref, h)
	}
	if a.len() != 1 {
		t.Fatalf("a.len() = %d, want 1", a.len())
	}

	a.remove(ref)
	if a.get(ref) != nil {
		t.Fatalf("a.get after remove should be nil")
	}
	if a.len() != 0 {
		t.Fatalf("a.len() after remove = %d, want 0", a.len())
	}
}

func TestArenaRefsStableAcrossReplace(t *testing.T) {
	a := newArena()
	ref := a.add(Polyline{{0, 0}, {1, 1}})
	a.replace(ref, Polyline{{0, 0}, {5, 5}})
	h := a.get(ref)
	if h == nil {
		t.Fatalf("replace should preserve the ref")
	}
	if h.Length() != length(Polyline{{0, 0}, {5, 5}}) {
		t.Fatalf("replace did not update the geometry")
	}
}

func TestArenaRefsAreUnique(t *testing.T) {
	a := newArena()
	seen := make(map[HachureRef]bool)
	for i := 0; i < 100; i++ {
		ref := a.add(Polyline{{0, 0}, {float64(i), 0}})
		if seen[ref] {
			t.Fatalf("arena produced a duplicate ref %v", ref)
		}
		seen[ref] = true
	}
}
