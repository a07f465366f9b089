package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arl/hachure/engine"
)

func TestContoursFlatHasNoIsoLines(t *testing.T) {
	g := NewFlat(20, 20, 10)
	filled, lines := Contours(g, []float64{5, 15})
	assert.Len(t, filled, 1, "a flat plateau at 10 lies wholly above level 5 (one whole-grid region) and nowhere above level 15")
	assert.Empty(t, lines, "a flat plateau has no crossing of any level that isn't exactly its own elevation")
}

func TestContoursConeProducesNestedRegions(t *testing.T) {
	g := NewCone(61, 61, 100, 25)
	filled, lines := Contours(g, []float64{10, 30, 60})

	assert.NotEmpty(t, filled, "a cone should have cells above the lower levels")
	assert.NotEmpty(t, lines, "a cone should cross each of these levels somewhere")

	var areas []float64
	for _, fp := range filled {
		areas = append(areas, ringsArea(fp.Rings))
	}
	for i := 1; i < len(areas); i++ {
		assert.LessOrEqual(t, areas[i], areas[i-1], "higher levels should cover no more area than lower ones")
	}
}

// ringsArea approximates the area of a set of rings via the shoelace
// formula, ignoring hole/outer orientation (adequate for ordering
// comparisons in this test, since our rings never overlap).
func ringsArea(rings []engine.Ring) float64 {
	var total float64
	for _, r := range rings {
		var a float64
		for i := 0; i+1 < len(r); i++ {
			a += r[i].X*r[i+1].Y - r[i+1].X*r[i].Y
		}
		if a < 0 {
			a = -a
		}
		total += a / 2
	}
	return total
}
