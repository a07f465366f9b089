package cmd

import "testing"

func TestFindScenarioKnownNames(t *testing.T) {
	for _, name := range []string{"planar-tilt", "cone", "ridge", "flat", "spike"} {
		s := findScenario(name)
		if s == nil {
			t.Fatalf("findScenario(%q) = nil, want a built-in scenario", name)
		}
		if s.name != name {
			t.Fatalf("findScenario(%q).name = %q", name, s.name)
		}
		g := s.build()
		rows, cols := g.Dims()
		if rows <= 0 || cols <= 0 {
			t.Fatalf("scenario %q built an empty grid (%d x %d)", name, rows, cols)
		}
	}
}

func TestFindScenarioUnknownName(t *testing.T) {
	if s := findScenario("not-a-scenario"); s != nil {
		t.Fatalf("findScenario on an unknown name = %v, want nil", s)
	}
}

func TestScenariosHaveUniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range scenarios {
		if seen[s.name] {
			t.Fatalf("duplicate scenario name %q", s.name)
		}
		seen[s.name] = true
		if s.about == "" {
			t.Fatalf("scenario %q has no description", s.name)
		}
	}
}
