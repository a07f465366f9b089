package engine

import "testing"

func TestBuildContourModelLevelCount(t *testing.T) {
	extent := Extent{XMin: 0, YMin: 0, XMax: 20, YMax: 20}
	big := Ring{{2, 2}, {18, 2}, {18, 18}, {2, 18}, {2, 2}}
	mid := Ring{{6, 6}, {14, 6}, {14, 14}, {6, 14}, {6, 6}}
	small := Ring{{9, 9}, {11, 9}, {11, 11}, {9, 11}, {9, 9}}

	filled := []FilledPolygon{
		{ElevMin: 10, Rings: []Ring{mid}},
		{ElevMin: 0, Rings: []Ring{big}},
		{ElevMin: 20, Rings: []Ring{small}},
	}

	model, err := BuildContourModel(extent, filled, nil)
	if err != nil {
		t.Fatalf("BuildContourModel: %v", err)
	}
	if len(model.Contours) != len(filled)-1 {
		t.Fatalf("len(Contours) = %d, want %d", len(model.Contours), len(filled)-1)
	}
	for i := 1; i < len(model.Contours); i++ {
		if model.Contours[i].Elev <= model.Contours[i-1].Elev {
			t.Fatalf("contour elevations not strictly ascending at index %d: %v <= %v",
				i, model.Contours[i].Elev, model.Contours[i-1].Elev)
		}
	}
	if model.Contours[0].Elev != 0 {
		t.Fatalf("first contour elevation = %v, want 0 (the lowest ElevMin)", model.Contours[0].Elev)
	}
}

func TestBuildContourModelEmptyInput(t *testing.T) {
	model, err := BuildContourModel(Extent{}, nil, nil)
	if err != nil {
		t.Fatalf("BuildContourModel with no input: %v", err)
	}
	if len(model.Contours) != 0 {
		t.Fatalf("expected no contours from empty input, got %d", len(model.Contours))
	}
}

func TestBuildContourModelPairsLinesByElevation(t *testing.T) {
	extent := Extent{XMin: 0, YMin: 0, XMax: 20, YMax: 20}
	low := Ring{{2, 2}, {18, 2}, {18, 18}, {2, 18}, {2, 2}}
	high := Ring{{6, 6}, {14, 6}, {14, 14}, {6, 14}, {6, 6}}

	filled := []FilledPolygon{
		{ElevMin: 0, Rings: []Ring{low}},
		{ElevMin: 10, Rings: []Ring{high}},
	}
	line0 := Polyline{{2, 2}, {18, 2}}
	lines := []IsoLine{{Elev: 0, Parts: []Polyline{line0}}}

	model, err := BuildContourModel(extent, filled, lines)
	if err != nil {
		t.Fatalf("BuildContourModel: %v", err)
	}
	if len(model.Contours) != 1 {
		t.Fatalf("len(Contours) = %d, want 1", len(model.Contours))
	}
	if len(model.Contours[0].Line) != 1 {
		t.Fatalf("expected the elevation-0 contour to be paired with its iso-line, got %d parts", len(model.Contours[0].Line))
	}
}
