// Package core provides the platform primitives shared by the game packages:
// geometry, input frames and a colored character screen. It has no Bubble Tea
// dependency so game logic stays pure and testable.
package core

// Rect is an axis-aligned box in world units.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles share a non-empty area.
// Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Moved returns a copy of r offset by (dx, dy).
func (r Rect) Moved(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Viewport projects a fixed-size world onto a character screen.
type Viewport struct {
	WorldW, WorldH   int
	ScreenW, ScreenH int
	OffsetY          int // rows reserved above the projected area (HUD)
}

// Project maps a world rectangle to screen cells. Non-empty rectangles
// always cover at least one cell.
func (v Viewport) Project(r Rect) Rect {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return Rect{}
	}
	rows := v.ScreenH - v.OffsetY
	x0 := r.X * v.ScreenW / v.WorldW
	y0 := r.Y * rows / v.WorldH
	x1 := r.Right() * v.ScreenW / v.WorldW
	y1 := r.Bottom() * rows / v.WorldH
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0 + v.OffsetY, W: x1 - x0, H: y1 - y0}
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
