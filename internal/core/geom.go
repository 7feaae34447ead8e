// Package core provides fundamental types and utilities for the breakout game.
// It contains no external dependencies (especially no Bubble Tea or ebiten) to
// keep game logic pure and testable.
package core

// Rect is an axis-aligned box of screen cells (y grows downward).
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

// Shape is a positioned extent in world coordinates.
// X, Y is the center; the world origin is bottom-left and y grows upward.
type Shape struct {
	X, Y float64
	W, H float64
}

// NewShape creates a shape centered at (x, y).
func NewShape(x, y, w, h float64) Shape {
	return Shape{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (s Shape) Left() float64 { return s.X - s.W/2 }

// Right returns the x-coordinate of the right edge.
func (s Shape) Right() float64 { return s.X + s.W/2 }

// Top returns the y-coordinate of the top edge.
func (s Shape) Top() float64 { return s.Y + s.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (s Shape) Bottom() float64 { return s.Y - s.H/2 }

// Contains reports whether (x, y) lies within the shape's rectangular extent.
// Edges are inclusive.
func (s Shape) Contains(x, y float64) bool {
	return x >= s.Left() && x <= s.Right() && y >= s.Bottom() && y <= s.Top()
}

// Point is a world-space coordinate pair.
type Point struct {
	X, Y float64
}

// Corners returns the four corners of the shape's bounding box:
// top-left, top-right, bottom-left, bottom-right.
func (s Shape) Corners() [4]Point {
	return [4]Point{
		{s.Left(), s.Top()},
		{s.Right(), s.Top()},
		{s.Left(), s.Bottom()},
		{s.Right(), s.Bottom()},
	}
}

// CornerInside reports whether any bounding-box corner of probe lies inside target.
// This is the corner-sampling approximation used for ball collisions: a probe
// that fully straddles a thin target without any corner landing in it does not hit.
func CornerInside(probe, target Shape) bool {
	for _, c := range probe.Corners() {
		if target.Contains(c.X, c.Y) {
			return true
		}
	}
	return false
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
