// Package core provides geometry, input and screen primitives shared by the
// simulation and the terminal host. It has no terminal dependencies so the
// simulation stays pure and testable.
package core

import "math"

// Box is an axis-aligned bounding box described by its center and half extents.
// All simulation entities (ball, paddle, bricks, bonuses) collide as boxes.
type Box struct {
	CX, CY       float64 // Center
	HalfW, HalfH float64 // Half extents
}

// NewBox creates a box centered at (cx, cy).
func NewBox(cx, cy, halfW, halfH float64) Box {
	return Box{CX: cx, CY: cy, HalfW: halfW, HalfH: halfH}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.HalfW }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.HalfW }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.CY - b.HalfH }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.CY + b.HalfH }

// Overlaps reports whether two boxes overlap.
// Touching edges do not count as an overlap.
func (b Box) Overlaps(other Box) bool {
	horizontal := math.Abs(b.CX-other.CX) < b.HalfW+other.HalfW
	vertical := math.Abs(b.CY-other.CY) < b.HalfH+other.HalfH
	return horizontal && vertical
}

// Penetration returns how deep the two boxes overlap along each axis.
// ok is false (and both depths zero) when they do not overlap.
//
// The axis with the smaller depth is the one the boxes most recently crossed,
// which is the axis a bouncing body should reflect on.
func (b Box) Penetration(other Box) (px, py float64, ok bool) {
	if !b.Overlaps(other) {
		return 0, 0, false
	}
	px = b.HalfW + other.HalfW - math.Abs(b.CX-other.CX)
	py = b.HalfH + other.HalfH - math.Abs(b.CY-other.CY)
	return px, py, true
}

// Rect represents an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
