package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalized(t *testing.T) {
	v := Vec(3, 4).Normalized()
	assert.InDelta(t, 0.6, v.X, 1e-12)
	assert.InDelta(t, 0.8, v.Y, 1e-12)
	assert.InDelta(t, 1.0, v.Len(), 1e-12)
}

func TestNormalizedZeroIsNone(t *testing.T) {
	assert.Equal(t, DirNone, Vec(0, 0).Normalized())
	assert.False(t, math.IsNaN(Vec(0, 0).Normalized().X))
}

func TestCanonicalDirectionsAreExact(t *testing.T) {
	for _, d := range []Vector2{DirLeft, DirRight, DirUp, DirDown} {
		assert.True(t, d.Normalized() == d, "direction %v changed when normalized", d)
	}
	// Scaled canonical directions land back on the exact constant
	assert.True(t, Vec(-7, 0).Normalized() == DirLeft)
	assert.True(t, Vec(0, 0.25).Normalized() == DirDown)
}

func TestIntersectNone(t *testing.T) {
	a := NewAABB(0, 0, 10, 10)
	b := NewAABB(20, 0, 10, 10)
	assert.False(t, Intersect(a, b).Hit())

	// Sharing an edge is not an intersection
	c := NewAABB(10, 0, 10, 10)
	assert.False(t, Intersect(a, c).Hit())

	// Overlap on X only
	d := NewAABB(2, 30, 10, 10)
	assert.Equal(t, NoIntersection, Intersect(a, d))
}

func TestIntersectSides(t *testing.T) {
	tile := FromEdges(0, 0, 32, 32)

	// Falling onto the tile from above, horizontally inside it
	landing := FromEdges(6, -38, 26, 2)
	hit := Intersect(landing, tile)
	assert.True(t, hit.Hit())
	assert.Equal(t, XBoth, hit.X)
	assert.Equal(t, YTop, hit.Y)
	assert.InDelta(t, 20, hit.Overlap.X, 1e-9)
	assert.InDelta(t, 2, hit.Overlap.Y, 1e-9)
	assert.True(t, hit.Vertical())

	// Walking into the tile's left side
	wall := FromEdges(-18, 4, 2, 28)
	hit = Intersect(wall, tile)
	assert.Equal(t, XLeft, hit.X)
	assert.Equal(t, YBoth, hit.Y)
	assert.False(t, hit.Vertical())

	// Hitting the ceiling from below, overlapping the right edge
	head := FromEdges(20, 30, 40, 70)
	hit = Intersect(head, tile)
	assert.Equal(t, XRight, hit.X)
	assert.Equal(t, YBottom, hit.Y)
}

func TestIntersectSymmetry(t *testing.T) {
	boxes := []AABB{
		FromEdges(0, 0, 32, 32),
		FromEdges(6, -38, 26, 2),
		FromEdges(-18, 4, 2, 28),
		FromEdges(20, 30, 40, 70),
		FromEdges(-100, -100, 100, 100),
		FromEdges(0, 0, 32, 16),
		FromEdges(31, 31, 33, 33),
		FromEdges(50, 50, 60, 60),
	}
	for i, a := range boxes {
		for j, b := range boxes {
			ab := Intersect(a, b)
			ba := Intersect(b, a)
			assert.Equal(t, ab.Hit(), ba.Hit(), "hit mismatch for %d,%d", i, j)
			if ab.Hit() {
				assert.Equal(t, ab.Mirror(), ba, "sides not mirrored for %d,%d", i, j)
			}
			assert.Equal(t, Overlaps(a, b), ab.Hit())
		}
	}
}

func TestContainsAndTouches(t *testing.T) {
	outer := FromEdges(0, 0, 100, 100)
	assert.True(t, Contains(outer, FromEdges(0, 0, 50, 50)))
	assert.False(t, Contains(outer, FromEdges(-1, 0, 50, 50)))
	assert.True(t, Touches(outer, FromEdges(100, 0, 120, 10)))
	assert.False(t, Overlaps(outer, FromEdges(100, 0, 120, 10)))
}

func TestUnion(t *testing.T) {
	u := Union(FromEdges(0, 0, 10, 10), FromEdges(-5, 20, 3, 30))
	assert.Equal(t, -5.0, u.LeftX())
	assert.Equal(t, 0.0, u.TopY())
	assert.Equal(t, 10.0, u.RightX())
	assert.Equal(t, 30.0, u.BottomY())
}
