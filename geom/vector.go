package geom

import "math"

// Vector2 is a 2D vector. Equality is exact component equality.
type Vector2 struct {
	X, Y float64
}

// Canonical directions. Normalizing any of them yields the same bits.
var (
	DirNone  = Vector2{0, 0}
	DirLeft  = Vector2{-1, 0}
	DirRight = Vector2{1, 0}
	DirUp    = Vector2{0, -1}
	DirDown  = Vector2{0, 1}
)

// Vec is shorthand for Vector2{x, y}
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * k
func (v Vector2) Scale(k float64) Vector2 {
	return Vector2{v.X * k, v.Y * k}
}

// Len returns the magnitude of v
func (v Vector2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns the unit vector pointing along v.
// The zero vector normalizes to DirNone.
func (v Vector2) Normalized() Vector2 {
	mag := v.Len()
	if mag == 0 {
		return DirNone
	}
	return Vector2{v.X / mag, v.Y / mag}
}

// IsZero reports whether both components are zero
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
