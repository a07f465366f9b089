package engine

import "sort"

// FilledPolygon is an externally-produced filled iso-contour: the
// region {(x,y) : elevation(x,y) > ElevMin} (spec §4.C), as a set of
// rings (outer boundary plus any holes).
type FilledPolygon struct {
	ElevMin float64
	Rings   []Ring
}

// IsoLine is an externally-produced iso-contour polyline at a single
// elevation (spec §4.C), possibly multi-part.
type IsoLine struct {
	Elev  float64
	Parts []Polyline
}

// Contour is one level of the contour stack: its 1-D boundary
// (line), used for spacing measurement, and its higher-than-E region
// (region), used as a clipping mask (spec §3/§9: "a two-layer object
// ... is mandatory").
type Contour struct {
	Elev   float64
	Line   []Polyline // possibly multi-part (spec §3)
	Region []Ring
}

// ContourModel builds the ordered family of Contours consumed by the
// orchestrator (spec §4.C).
type ContourModel struct {
	Contours []Contour
}

// BuildContourModel implements spec §4.C steps 1-5: sort filled
// polygons ascending by ElevMin, clip each level's higher-than-E
// polygon to the extent (the extent minus the part of the extent
// outside it) to get that level's mask, and pair it with the
// iso-line at the same elevation. The highest level is dropped.
func BuildContourModel(extent Extent, filled []FilledPolygon, lines []IsoLine) (*ContourModel, error) {
	if len(filled) == 0 {
		return &ContourModel{}, nil
	}

	sorted := make([]FilledPolygon, len(filled))
	copy(sorted, filled)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ElevMin < sorted[j].ElevMin })

	lineByElev := make(map[float64][]Polyline)
	for _, l := range lines {
		lineByElev[l.Elev] = append(lineByElev[l.Elev], l.Parts...)
	}

	world := []Ring{fromRect(extent)}
	n := len(sorted)
	model := &ContourModel{Contours: make([]Contour, 0, n-1)}

	for i := 0; i < n-1; i++ {
		below, err := polyDifference(world, sorted[i].Rings)
		if err != nil {
			return nil, err
		}
		region, err := polyDifference(world, below)
		if err != nil {
			return nil, err
		}

		c := Contour{
			Elev:   sorted[i].ElevMin,
			Line:   lineByElev[sorted[i].ElevMin],
			Region: region,
		}
		model.Contours = append(model.Contours, c)
	}
	return model, nil
}
