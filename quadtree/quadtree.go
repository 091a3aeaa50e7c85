// Package quadtree implements a bucket quadtree over axis-aligned boxes.
//
// Trees borrow their items: they never copy or own the boxes they index, and
// are meant to be cleared and rebuilt whenever the indexed boxes move.
package quadtree

import "github.com/gabenesienh/2d-physics-game/geom"

const (
	BucketCapacity = 4  // items held by a leaf before it subdivides
	MaxLevels      = 10 // depth at which nodes stop subdividing
)

// Quadrant indices
const (
	NW = iota
	NE
	SW
	SE
)

// Tree is the root node of a quadtree or one of its quadrants
type Tree[T geom.Box] struct {
	level  int
	bounds geom.AABB
	items  []T
	quads  [4]*Tree[T]
}

// New creates an empty node at the given depth covering bounds
func New[T geom.Box](level int, bounds geom.AABB) *Tree[T] {
	return &Tree[T]{level: level, bounds: bounds}
}

// Level returns the depth of this node (the root is 0)
func (t *Tree[T]) Level() int { return t.level }

// Bounds returns the region covered by this node
func (t *Tree[T]) Bounds() geom.AABB { return t.bounds }

// Items returns the items stored directly at this node
func (t *Tree[T]) Items() []T { return t.items }

// Quadrants returns the NW, NE, SW and SE children, all nil for a leaf
func (t *Tree[T]) Quadrants() [4]*Tree[T] { return t.quads }

// Subdivided reports whether this node has children
func (t *Tree[T]) Subdivided() bool { return t.quads[NW] != nil }

// Len returns the number of items stored in this node and its descendants
func (t *Tree[T]) Len() int {
	n := len(t.items)
	for _, q := range t.quads {
		if q != nil {
			n += q.Len()
		}
	}
	return n
}

// Clear drops every item and child, leaving an empty leaf
func (t *Tree[T]) Clear() {
	for i, q := range t.quads {
		if q != nil {
			q.Clear()
			t.quads[i] = nil
		}
	}
	t.items = nil
}

// subdivide generates the four quadrants of this node
func (t *Tree[T]) subdivide() {
	hw := t.bounds.HalfWidth / 2
	hh := t.bounds.HalfHeight / 2
	cx, cy := t.bounds.Center.X, t.bounds.Center.Y

	t.quads[NW] = New[T](t.level+1, geom.AABB{Center: geom.Vec(cx-hw, cy-hh), HalfWidth: hw, HalfHeight: hh})
	t.quads[NE] = New[T](t.level+1, geom.AABB{Center: geom.Vec(cx+hw, cy-hh), HalfWidth: hw, HalfHeight: hh})
	t.quads[SW] = New[T](t.level+1, geom.AABB{Center: geom.Vec(cx-hw, cy+hh), HalfWidth: hw, HalfHeight: hh})
	t.quads[SE] = New[T](t.level+1, geom.AABB{Center: geom.Vec(cx+hw, cy+hh), HalfWidth: hw, HalfHeight: hh})
}

// fittingQuadrant returns the quadrant that fully contains box, or -1 if the
// box straddles a split line. Does not check that the quadrants exist.
func (t *Tree[T]) fittingQuadrant(box geom.Box) int {
	midX, midY := t.bounds.Center.X, t.bounds.Center.Y

	top := box.TopY() >= t.bounds.TopY() && box.BottomY() <= midY
	bottom := box.TopY() >= midY && box.BottomY() <= t.bounds.BottomY()
	left := box.LeftX() >= t.bounds.LeftX() && box.RightX() <= midX
	right := box.LeftX() >= midX && box.RightX() <= t.bounds.RightX()

	switch {
	case top && left:
		return NW
	case top && right:
		return NE
	case bottom && left:
		return SW
	case bottom && right:
		return SE
	}
	return -1
}

// Insert adds an item, subdividing this node once its bucket is full.
// On subdivision the items already held here are pushed down into whichever
// quadrant fully contains them; items straddling a split stay at this node.
func (t *Tree[T]) Insert(item T) {
	if !t.Subdivided() {
		if len(t.items) < BucketCapacity || t.level >= MaxLevels {
			t.items = append(t.items, item)
			return
		}

		t.subdivide()

		kept := t.items[:0]
		for _, it := range t.items {
			if q := t.fittingQuadrant(it); q >= 0 {
				t.quads[q].Insert(it)
			} else {
				kept = append(kept, it)
			}
		}
		clear(t.items[len(kept):])
		t.items = kept
	}

	if q := t.fittingQuadrant(item); q >= 0 {
		t.quads[q].Insert(item)
		return
	}
	t.items = append(t.items, item)
}

// FindPossibleCollisions returns every item that could intersect box: all
// items held by this node plus those of every quadrant the box touches.
// Callers still need an exact intersection test.
func (t *Tree[T]) FindPossibleCollisions(box geom.Box) []T {
	return t.collect(box, nil)
}

func (t *Tree[T]) collect(box geom.Box, acc []T) []T {
	acc = append(acc, t.items...)
	for _, q := range t.quads {
		if q != nil && geom.Touches(q.bounds, box) {
			acc = q.collect(box, acc)
		}
	}
	return acc
}

// Walk calls fn for this node and every descendant, parents first
func (t *Tree[T]) Walk(fn func(node *Tree[T])) {
	fn(t)
	for _, q := range t.quads {
		if q != nil {
			q.Walk(fn)
		}
	}
}
