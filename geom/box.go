package geom

import "math"

// Box is anything with axis-aligned edges. Y grows downwards.
type Box interface {
	TopY() float64
	BottomY() float64
	LeftX() float64
	RightX() float64
}

// AABB is a box stored as a center point plus half extents
type AABB struct {
	Center     Vector2
	HalfWidth  float64
	HalfHeight float64
}

// NewAABB creates a box centered on (cx, cy) with the given full size
func NewAABB(cx, cy, width, height float64) AABB {
	return AABB{
		Center:     Vector2{cx, cy},
		HalfWidth:  width / 2,
		HalfHeight: height / 2,
	}
}

// FromEdges builds an AABB spanning the given edges
func FromEdges(left, top, right, bottom float64) AABB {
	return AABB{
		Center:     Vector2{(left + right) / 2, (top + bottom) / 2},
		HalfWidth:  (right - left) / 2,
		HalfHeight: (bottom - top) / 2,
	}
}

// BoundsOf copies any Box into an AABB
func BoundsOf(b Box) AABB {
	return FromEdges(b.LeftX(), b.TopY(), b.RightX(), b.BottomY())
}

func (a AABB) TopY() float64    { return a.Center.Y - a.HalfHeight }
func (a AABB) BottomY() float64 { return a.Center.Y + a.HalfHeight }
func (a AABB) LeftX() float64   { return a.Center.X - a.HalfWidth }
func (a AABB) RightX() float64  { return a.Center.X + a.HalfWidth }

// Width returns the full width of the box
func (a AABB) Width() float64 { return a.HalfWidth * 2 }

// Height returns the full height of the box
func (a AABB) Height() float64 { return a.HalfHeight * 2 }

// Union returns the smallest box holding both a and b
func Union(a, b Box) AABB {
	return FromEdges(
		math.Min(a.LeftX(), b.LeftX()),
		math.Min(a.TopY(), b.TopY()),
		math.Max(a.RightX(), b.RightX()),
		math.Max(a.BottomY(), b.BottomY()),
	)
}

// Center returns the midpoint of any box
func Center(b Box) Vector2 {
	return Vector2{(b.LeftX() + b.RightX()) / 2, (b.TopY() + b.BottomY()) / 2}
}

// Overlaps reports whether a and b share interior area. Boxes that only share
// an edge do not overlap.
func Overlaps(a, b Box) bool {
	return a.RightX() > b.LeftX() && a.LeftX() < b.RightX() &&
		a.BottomY() > b.TopY() && a.TopY() < b.BottomY()
}

// Touches is the inclusive form of Overlaps, used for broad-phase pruning
func Touches(a, b Box) bool {
	return a.RightX() >= b.LeftX() && a.LeftX() <= b.RightX() &&
		a.BottomY() >= b.TopY() && a.TopY() <= b.BottomY()
}

// Contains reports whether inner lies fully inside outer (edges inclusive)
func Contains(outer, inner Box) bool {
	return inner.LeftX() >= outer.LeftX() && inner.RightX() <= outer.RightX() &&
		inner.TopY() >= outer.TopY() && inner.BottomY() <= outer.BottomY()
}
