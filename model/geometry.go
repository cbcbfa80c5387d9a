package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents an axis-aligned rectangle in a bottom-left-origin,
// Y-up coordinate space.
type Rect struct {
	X      float64 // Left
	Y      float64 // Bottom
	Width  float64
	Height float64
}

// NewRect creates a rectangle from coordinates
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() float64 {
	return r.Y
}

// Top returns the top edge Y coordinate
func (r Rect) Top() float64 {
	return r.Y + r.Height
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Intersects checks if two rectangles intersect
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right() < other.Left() ||
		r.Left() > other.Right() ||
		r.Top() < other.Bottom() ||
		r.Bottom() > other.Top())
}

// Union returns the smallest rectangle containing both rectangles
func (r Rect) Union(other Rect) Rect {
	x := math.Min(r.Left(), other.Left())
	y := math.Min(r.Bottom(), other.Bottom())
	right := math.Max(r.Right(), other.Right())
	top := math.Max(r.Top(), other.Top())

	return Rect{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: top - y,
	}
}

// ContainsRect checks if the rectangle fully contains another rectangle
func (r Rect) ContainsRect(other Rect) bool {
	return other.Left() >= r.Left() && other.Right() <= r.Right() &&
		other.Bottom() >= r.Bottom() && other.Top() <= r.Top()
}

// IsEmpty returns true if the rectangle has zero area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// HorizontalOverlap returns the length of the overlap of the two rectangles'
// X intervals. Zero or negative means no overlap.
func (r Rect) HorizontalOverlap(other Rect) float64 {
	return math.Min(r.Right(), other.Right()) - math.Max(r.Left(), other.Left())
}

// VerticalOverlap returns the length of the overlap of the two rectangles'
// Y intervals. Zero or negative means no overlap.
func (r Rect) VerticalOverlap(other Rect) float64 {
	return math.Min(r.Top(), other.Top()) - math.Max(r.Bottom(), other.Bottom())
}

// HorizontalOverlapRatio returns the horizontal overlap as a fraction of the
// narrower rectangle's width. Returns a value between 0 and 1.
func (r Rect) HorizontalOverlapRatio(other Rect) float64 {
	overlap := r.HorizontalOverlap(other)
	if overlap <= 0 {
		return 0
	}
	minWidth := math.Min(r.Width, other.Width)
	if minWidth <= 0 {
		return 0
	}
	ratio := overlap / minWidth
	if ratio > 1 {
		return 1
	}
	return ratio
}

// VerticalOverlapRatio returns the vertical overlap as a fraction of the
// shorter rectangle's height. Returns a value between 0 and 1.
func (r Rect) VerticalOverlapRatio(other Rect) float64 {
	overlap := r.VerticalOverlap(other)
	if overlap <= 0 {
		return 0
	}
	minHeight := math.Min(r.Height, other.Height)
	if minHeight <= 0 {
		return 0
	}
	ratio := overlap / minHeight
	if ratio > 1 {
		return 1
	}
	return ratio
}
