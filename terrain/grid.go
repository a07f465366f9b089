// Package terrain supplies synthetic elevation rasters, the
// slope/aspect derivation from them, and marching-squares contour
// extraction. It plays the role of the "external collaborator" the
// engine package expects to be handed (spec §1/§6): a GIS host would
// provide equivalent data instead.
package terrain

import "github.com/arl/hachure/engine"

// Grid is a row-major scalar raster, co-registered the same way
// across elevation, slope and aspect bands so a single (row, col)
// indexes all three. It satisfies engine.GridLike.
type Grid struct {
	Rows, Cols int
	Dx, Dy     float64
	XMin, YMin float64
	Data       []float64
}

// NewGrid allocates a Grid of the given shape, zero-filled.
func NewGrid(rows, cols int, xmin, ymin, dx, dy float64) *Grid {
	return &Grid{
		Rows: rows, Cols: cols,
		Dx: dx, Dy: dy,
		XMin: xmin, YMin: ymin,
		Data: make([]float64, rows*cols),
	}
}

// At returns the value at (row, col).
func (g *Grid) At(row, col int) float64 {
	return g.Data[row*g.Cols+col]
}

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v float64) {
	g.Data[row*g.Cols+col] = v
}

// Extent returns the grid's bounding box in map units.
func (g *Grid) Extent() engine.Extent {
	return engine.Extent{
		XMin: g.XMin,
		YMin: g.YMin,
		XMax: g.XMin + float64(g.Cols)*g.Dx,
		YMax: g.YMin + float64(g.Rows)*g.Dy,
	}
}

// CellSize returns the grid's (dx, dy) pixel size.
func (g *Grid) CellSize() (dx, dy float64) { return g.Dx, g.Dy }

// Dims returns the grid's (rows, cols).
func (g *Grid) Dims() (rows, cols int) { return g.Rows, g.Cols }

// centerXY returns the map coordinate of the center of pixel (row,
// col), the inverse of engine's rowCol rounding convention.
func (g *Grid) centerXY(row, col int) (x, y float64) {
	x = g.XMin + (float64(col)+0.5)*g.Dx
	y = g.Extent().YMax - (float64(row)+0.5)*g.Dy
	return x, y
}
