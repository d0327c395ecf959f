package tui

import (
	"github.com/vovakirdan/brick-breaker/internal/breakout"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Screen rows reserved outside the playfield.
const (
	hudRows    = 1 // Status line above the playfield
	borderSize = 1
)

// Minimum screen the playfield can be drawn into.
const (
	minScreenW = 24
	minScreenH = 10
)

// Layout maps playfield pixels to screen cells and back.
type Layout struct {
	Field breakout.Bounds
	Frame core.Rect // Playfield border
	Area  core.Rect // Cells inside the border
}

// NewLayout fits the playfield into a screen of w x h cells, below the HUD.
// The playfield is stretched to the available area.
func NewLayout(field breakout.Bounds, w, h int) Layout {
	frame := core.NewRect(0, hudRows, w, h-hudRows)
	area := core.NewRect(
		frame.X+borderSize,
		frame.Y+borderSize,
		max(1, frame.W-2*borderSize),
		max(1, frame.H-2*borderSize),
	)
	return Layout{Field: field, Frame: frame, Area: area}
}

// TooSmall reports whether the screen cannot show a usable playfield.
func (l Layout) TooSmall() bool {
	return l.Frame.W < minScreenW || l.Frame.H+hudRows < minScreenH
}

// CellX maps a playfield x to a screen column inside the area.
func (l Layout) CellX(px float64) int {
	col := int((px - l.Field.XMin) / l.Field.Width() * float64(l.Area.W))
	return l.Area.X + core.Clamp(col, 0, l.Area.W-1)
}

// CellY maps a playfield y to a screen row inside the area.
func (l Layout) CellY(py float64) int {
	row := int((py - l.Field.YMin) / l.Field.Height() * float64(l.Area.H))
	return l.Area.Y + core.Clamp(row, 0, l.Area.H-1)
}

// Span maps a playfield interval [lo, hi) to an inclusive range of cells.
// A span narrower than one cell still covers one cell.
func (l Layout) Span(lo, hi float64, cell func(float64) int) (int, int) {
	first := cell(lo)
	last := cell(hi - 1e-9)
	return first, max(first, last)
}

// FieldX maps a screen column to the playfield x at the cell center.
func (l Layout) FieldX(col int) float64 {
	rel := (float64(col-l.Area.X) + 0.5) / float64(l.Area.W)
	return core.ClampF(l.Field.XMin+rel*l.Field.Width(), l.Field.XMin, l.Field.XMax)
}
