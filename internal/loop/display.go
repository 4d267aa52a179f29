package loop

import (
	"image/color"

	"snake/internal/core"
)

// Display cell values written by Cells.
const (
	CellEmpty uint8 = iota
	CellBody
	CellHead
	CellShrinking
	CellApple
)

var palette = []color.RGBA{
	CellEmpty:     {R: 0, G: 0, B: 0, A: 255},
	CellBody:      {R: 0, G: 200, B: 0, A: 255},
	CellHead:      {R: 255, G: 230, B: 0, A: 255},
	CellShrinking: {R: 128, G: 128, B: 128, A: 255},
	CellApple:     {R: 220, G: 0, B: 0, A: 255},
}

// Palette maps display cell values to colours.
func (l *Loop) Palette() []color.RGBA {
	return palette
}

// paintCells rasterises s. Later objects overwrite earlier ones, so the
// snake covers an apple sitting under its body.
func paintCells(g *core.ByteGrid, s Snapshot) {
	g.Clear()
	for _, obj := range s.Objects() {
		g.Set(obj.Pos.X, obj.Pos.Y, cellFor(obj.Kind, s.Shrinking))
	}
}

func cellFor(kind ObjectKind, shrinking bool) uint8 {
	switch {
	case kind == ObjectApple:
		return CellApple
	case shrinking:
		return CellShrinking
	case kind == ObjectHead:
		return CellHead
	default:
		return CellBody
	}
}
