// Package objects implements the game's dynamic entities and the arena that
// owns them.
package objects

import (
	"math"

	"github.com/gabenesienh/2d-physics-game/geom"
	"github.com/gabenesienh/2d-physics-game/tiles"
)

// Object is any entity living in a Store
type Object interface {
	geom.Box
	Kind() Kind
	// Body exposes the shared state every object carries
	Body() *GameObject
	// Tick runs the object's own logic once per frame
	Tick()
	// OnCollideTile resolves an intersection with a level tile
	OnCollideTile(tile *tiles.Tile, hit geom.Intersection)
}

// GameObject holds the state common to every entity.
//
// The bounding box is stored by its center, while X and Y refer to the
// object's anchor (see SetAnchor). Always move objects through Teleport or
// TryMove rather than writing the box center.
type GameObject struct {
	handle Handle

	bounds         geom.AABB
	pivotX, pivotY float64 // anchor within the box, each in [-1, 1]
	aimPX, aimPY   float64 // aim origin within the box, each in [-1, 1]

	speedX, speedY float64
	moveSpeed      float64
	weight         float64 // gravity multiplier, 0 = unaffected

	direction     geom.Vector2
	directionType DirectionType
	walkType      WalkType
	aimDirection  geom.Vector2

	state    State
	health   int
	grounded bool
}

func newGameObject() GameObject {
	return GameObject{
		weight:       1,
		health:       1,
		direction:    geom.DirNone,
		aimDirection: geom.DirNone,
	}
}

// Body returns g itself; embedding types inherit it to satisfy Object
func (g *GameObject) Body() *GameObject { return g }

// Handle returns the object's handle in its Store, zero if never stored
func (g *GameObject) Handle() Handle { return g.handle }

func (g *GameObject) TopY() float64    { return g.bounds.TopY() }
func (g *GameObject) BottomY() float64 { return g.bounds.BottomY() }
func (g *GameObject) LeftX() float64   { return g.bounds.LeftX() }
func (g *GameObject) RightX() float64  { return g.bounds.RightX() }

// Bounds returns a copy of the object's bounding box
func (g *GameObject) Bounds() geom.AABB { return g.bounds }

// X returns the horizontal position of the object's anchor
func (g *GameObject) X() float64 {
	return g.bounds.Center.X + g.bounds.HalfWidth*g.pivotX
}

// Y returns the vertical position of the object's anchor
func (g *GameObject) Y() float64 {
	return g.bounds.Center.Y + g.bounds.HalfHeight*g.pivotY
}

// Position returns (X, Y)
func (g *GameObject) Position() geom.Vector2 {
	return geom.Vec(g.X(), g.Y())
}

// ScreenX returns X in screen space. There is no camera yet.
func (g *GameObject) ScreenX() float64 { return g.X() }

// ScreenY returns Y in screen space. There is no camera yet.
func (g *GameObject) ScreenY() float64 { return g.Y() }

func (g *GameObject) Width() float64  { return g.bounds.Width() }
func (g *GameObject) Height() float64 { return g.bounds.Height() }

// SetWidth resizes the box around the current anchor position
func (g *GameObject) SetWidth(width float64) {
	x, y := g.X(), g.Y()
	g.bounds.HalfWidth = width / 2
	g.Teleport(x, y)
}

// SetHeight resizes the box around the current anchor position
func (g *GameObject) SetHeight(height float64) {
	x, y := g.X(), g.Y()
	g.bounds.HalfHeight = height / 2
	g.Teleport(x, y)
}

// Pivot returns the anchor as pivots in [-1, 1]
func (g *GameObject) Pivot() (float64, float64) { return g.pivotX, g.pivotY }

// SetPivot moves the anchor without moving the box. Values are clamped to [-1, 1].
func (g *GameObject) SetPivot(px, py float64) {
	g.pivotX = clampPivot(px)
	g.pivotY = clampPivot(py)
}

// SetAnchor is SetPivot for the discrete anchor positions
func (g *GameObject) SetAnchor(ax AnchorX, ay AnchorY) {
	g.SetPivot(ax.Pivot(), ay.Pivot())
}

// SetAimPivot sets the point of the box that aiming is measured from
func (g *GameObject) SetAimPivot(px, py float64) {
	g.aimPX = clampPivot(px)
	g.aimPY = clampPivot(py)
}

// SetAimAnchor is SetAimPivot for the discrete anchor positions
func (g *GameObject) SetAimAnchor(ax AnchorX, ay AnchorY) {
	g.SetAimPivot(ax.Pivot(), ay.Pivot())
}

// AimOrigin returns the world position aiming is measured from
func (g *GameObject) AimOrigin() geom.Vector2 {
	return geom.Vec(
		g.bounds.Center.X+g.bounds.HalfWidth*g.aimPX,
		g.bounds.Center.Y+g.bounds.HalfHeight*g.aimPY,
	)
}

func (g *GameObject) SpeedX() float64        { return g.speedX }
func (g *GameObject) SpeedY() float64        { return g.speedY }
func (g *GameObject) Speed() geom.Vector2    { return geom.Vec(g.speedX, g.speedY) }
func (g *GameObject) SetSpeedX(v float64)    { g.speedX = v }
func (g *GameObject) SetSpeedY(v float64)    { g.speedY = v }
func (g *GameObject) MoveSpeed() float64     { return g.moveSpeed }
func (g *GameObject) SetMoveSpeed(v float64) { g.moveSpeed = v }
func (g *GameObject) Weight() float64        { return g.weight }
func (g *GameObject) SetWeight(w float64)    { g.weight = w }
func (g *GameObject) State() State           { return g.state }
func (g *GameObject) SetState(s State)       { g.state = s }
func (g *GameObject) WalkType() WalkType     { return g.walkType }
func (g *GameObject) SetWalkType(w WalkType) { g.walkType = w }
func (g *GameObject) Grounded() bool         { return g.grounded }
func (g *GameObject) Health() int            { return g.health }
func (g *GameObject) SetHealth(hp int)       { g.health = hp }

// Direction returns the unit vector the object faces
func (g *GameObject) Direction() geom.Vector2 { return g.direction }

// DirectionType returns the constraint applied by SetDirection
func (g *GameObject) DirectionType() DirectionType { return g.directionType }

// AimDirection returns the unit vector set by the last AimAt call
func (g *GameObject) AimDirection() geom.Vector2 { return g.aimDirection }

// Damage subtracts amount from the object's health
func (g *GameObject) Damage(amount int) { g.health -= amount }

// Dead reports whether the object is out of health
func (g *GameObject) Dead() bool { return g.health <= 0 }

// Teleport places the object's anchor at (x, y)
func (g *GameObject) Teleport(x, y float64) {
	g.bounds.Center.X = x - g.bounds.HalfWidth*g.pivotX
	g.bounds.Center.Y = y - g.bounds.HalfHeight*g.pivotY
}

// TryMove attempts to move the object's anchor to (x, y). Movement is not
// validated yet, so this always succeeds.
func (g *GameObject) TryMove(x, y float64) bool {
	g.Teleport(x, y)
	return true
}

// Thrust adds to the object's speed
func (g *GameObject) Thrust(addX, addY float64) {
	g.speedX += addX
	g.speedY += addY
}

// SetDirection normalizes direction and commits it if it satisfies the
// object's direction type. It reports whether the direction was accepted.
func (g *GameObject) SetDirection(direction geom.Vector2) bool {
	direction = direction.Normalized()

	switch g.directionType {
	case DirTypeNone:
		if direction != geom.DirNone {
			return false
		}
	case DirTypeHorizontal:
		if direction != geom.DirLeft && direction != geom.DirRight {
			return false
		}
	case DirTypeOrthogonal:
		if direction != geom.DirLeft && direction != geom.DirRight &&
			direction != geom.DirUp && direction != geom.DirDown {
			return false
		}
	case DirTypeOmni:
	default:
		return false
	}

	g.direction = direction
	return true
}

// Walk sets the object's speed from its move speed along its facing direction
func (g *GameObject) Walk() {
	g.walk(g.direction)
}

// WalkToward is Walk along an explicit direction, which is normalized first
func (g *GameObject) WalkToward(direction geom.Vector2) {
	g.walk(direction.Normalized())
}

func (g *GameObject) walk(direction geom.Vector2) {
	g.speedX = direction.X * g.moveSpeed
	if g.walkType == WalkAerial {
		g.speedY = direction.Y * g.moveSpeed
	}
}

// AimAt points the aim direction from the aim origin towards target.
// Aiming at the aim origin itself yields DirNone.
func (g *GameObject) AimAt(target geom.Vector2) {
	g.aimDirection = target.Sub(g.AimOrigin()).Normalized()
}

// Tick clears the grounded flag; collisions set it again this frame
func (g *GameObject) Tick() {
	g.grounded = false
}

// OnCollideTile pushes the object out of tile.
//
// The contact is treated as vertical when the boxes overlap more horizontally
// than vertically. Landing on a tile grounds the object and stops its fall;
// hitting a ceiling stops vertical movement; hitting a wall only moves the
// object beside it.
func (g *GameObject) OnCollideTile(tile *tiles.Tile, hit geom.Intersection) {
	if hit.Vertical() {
		above := hit.Y == geom.YTop ||
			(hit.Y == geom.YBoth && g.bounds.Center.Y <= geom.Center(tile).Y)

		g.speedY = 0
		if above {
			g.grounded = true
			g.placeCenterY(tile.TopY() - g.bounds.HalfHeight)
		} else {
			g.placeCenterY(tile.BottomY() + g.bounds.HalfHeight)
		}
		return
	}

	left := hit.X == geom.XLeft ||
		(hit.X == geom.XBoth && g.bounds.Center.X <= geom.Center(tile).X)

	if left {
		g.placeCenterX(tile.LeftX() - g.bounds.HalfWidth)
	} else {
		g.placeCenterX(tile.RightX() + g.bounds.HalfWidth)
	}
}

// placeCenterX teleports so the box center lands on cx, honouring the anchor
func (g *GameObject) placeCenterX(cx float64) {
	g.Teleport(cx+g.bounds.HalfWidth*g.pivotX, g.Y())
}

// placeCenterY teleports so the box center lands on cy, honouring the anchor
func (g *GameObject) placeCenterY(cy float64) {
	g.Teleport(g.X(), cy+g.bounds.HalfHeight*g.pivotY)
}

func clampPivot(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(-1, math.Min(1, p))
}
