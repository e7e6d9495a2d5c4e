package model

import "image"

// Point represents a 2D point in pixel coordinates
type Point struct {
	X, Y int
}

// Rect represents an axis-aligned rectangle in pixel coordinates
type Rect struct {
	X      int // Left
	Y      int // Top (image coordinate system, Y grows downward)
	Width  int
	Height int
}

// NewRect creates a rectangle from coordinates
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromPoints creates the smallest rectangle containing both points
func RectFromPoints(p1, p2 Point) Rect {
	x := min(p1.X, p2.X)
	y := min(p1.Y, p2.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(p1.X, p2.X) - x,
		Height: max(p1.Y, p2.Y) - y,
	}
}

// Left returns the left edge X coordinate
func (r Rect) Left() int {
	return r.X
}

// Right returns the exclusive right edge X coordinate
func (r Rect) Right() int {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate
func (r Rect) Top() int {
	return r.Y
}

// Bottom returns the exclusive bottom edge Y coordinate
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// CenterX returns the horizontal center
func (r Rect) CenterX() int {
	return r.X + r.Width/2
}

// CenterY returns the vertical center
func (r Rect) CenterY() int {
	return r.Y + r.Height/2
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{X: r.CenterX(), Y: r.CenterY()}
}

// Area returns the rectangle's area in square pixels
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Empty reports whether the rectangle has no interior
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() &&
		p.Y >= r.Top() && p.Y < r.Bottom()
}

// ContainsRect checks if other lies entirely within the rectangle
func (r Rect) ContainsRect(other Rect) bool {
	return other.Left() >= r.Left() && other.Right() <= r.Right() &&
		other.Top() >= r.Top() && other.Bottom() <= r.Bottom()
}

// Intersects checks if two rectangles overlap
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() && other.Left() < r.Right() &&
		r.Top() < other.Bottom() && other.Top() < r.Bottom()
}

// Clip returns the rectangle clipped to bounds. The result may be empty.
func (r Rect) Clip(bounds Rect) Rect {
	x1 := max(r.Left(), bounds.Left())
	y1 := max(r.Top(), bounds.Top())
	x2 := min(r.Right(), bounds.Right())
	y2 := min(r.Bottom(), bounds.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Expand grows the rectangle by margin pixels on all four sides
func (r Rect) Expand(margin int) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// ToImageRect converts to the standard library's image.Rectangle
func (r Rect) ToImageRect() image.Rectangle {
	return image.Rect(r.Left(), r.Top(), r.Right(), r.Bottom())
}

// FromImageRect converts from the standard library's image.Rectangle
func FromImageRect(r image.Rectangle) Rect {
	c := r.Canon()
	return Rect{X: c.Min.X, Y: c.Min.Y, Width: c.Dx(), Height: c.Dy()}
}

// MaxByArea returns the rectangle with the largest area. The boolean is
// false when rects is empty; callers must not use the returned rectangle
// in that case. Ties keep the earliest rectangle.
func MaxByArea(rects []Rect) (Rect, bool) {
	if len(rects) == 0 {
		return Rect{}, false
	}
	best := rects[0]
	for _, r := range rects[1:] {
		if r.Area() > best.Area() {
			best = r
		}
	}
	return best, true
}
