package geom

import "math"

// XSide describes from which horizontal side one box meets another
type XSide uint8

const (
	XNone  XSide = iota
	XLeft        // meets the other box from its left (negative) side
	XRight       // meets the other box from its right (positive) side
	XBoth        // one box spans the other horizontally
)

// YSide describes from which vertical side one box meets another
type YSide uint8

const (
	YNone   YSide = iota
	YTop          // meets the other box from above
	YBottom       // meets the other box from below
	YBoth         // one box spans the other vertically
)

func (s XSide) String() string {
	switch s {
	case XLeft:
		return "left"
	case XRight:
		return "right"
	case XBoth:
		return "both"
	}
	return "none"
}

func (s YSide) String() string {
	switch s {
	case YTop:
		return "top"
	case YBottom:
		return "bottom"
	case YBoth:
		return "both"
	}
	return "none"
}

// Mirror returns the side as seen from the other box
func (s XSide) Mirror() XSide {
	switch s {
	case XLeft:
		return XRight
	case XRight:
		return XLeft
	}
	return s
}

// Mirror returns the side as seen from the other box
func (s YSide) Mirror() YSide {
	switch s {
	case YTop:
		return YBottom
	case YBottom:
		return YTop
	}
	return s
}

// Intersection is the result of testing box A against box B
type Intersection struct {
	X XSide
	Y YSide
	// Overlap is the penetration depth on each axis (never negative)
	Overlap Vector2
}

// NoIntersection is returned when the boxes are apart on either axis
var NoIntersection = Intersection{}

// Hit reports whether the boxes intersect
func (i Intersection) Hit() bool {
	return i.X != XNone && i.Y != YNone
}

// Area is the overlapping area of the two boxes
func (i Intersection) Area() float64 {
	return i.Overlap.X * i.Overlap.Y
}

// Vertical reports whether the contact is on a top or bottom face, i.e. the
// boxes overlap more horizontally than vertically.
func (i Intersection) Vertical() bool {
	return i.Overlap.X > i.Overlap.Y
}

// Mirror returns the intersection as seen from the other box
func (i Intersection) Mirror() Intersection {
	return Intersection{X: i.X.Mirror(), Y: i.Y.Mirror(), Overlap: i.Overlap}
}

// Intersect returns the direction from which a meets b.
//
// Sides are reported as Both when either box fully spans the other on that
// axis. NoIntersection is returned unless both axes overlap.
func Intersect(a, b Box) Intersection {
	aL, aR, aT, aB := a.LeftX(), a.RightX(), a.TopY(), a.BottomY()
	bL, bR, bT, bB := b.LeftX(), b.RightX(), b.TopY(), b.BottomY()

	if !(aR > bL && aL < bR) || !(aB > bT && aT < bB) {
		return NoIntersection
	}

	res := Intersection{X: XBoth, Y: YBoth}

	switch {
	case aL < bL && aR < bR:
		res.X = XLeft
	case aL > bL && aR > bR:
		res.X = XRight
	}
	switch {
	case aT < bT && aB < bB:
		res.Y = YTop
	case aT > bT && aB > bB:
		res.Y = YBottom
	}

	res.Overlap = Vector2{
		X: math.Min(aR, bR) - math.Max(aL, bL),
		Y: math.Min(aB, bB) - math.Max(aT, bT),
	}
	return res
}
