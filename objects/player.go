package objects

import "github.com/gabenesienh/2d-physics-game/geom"

const (
	PlayerWidth     = 20.0
	PlayerHeight    = 40.0
	PlayerMoveSpeed = 3.0 // pixels per tick
	PlayerMaxHP     = 100
)

// Player is the object driven by user input
type Player struct {
	GameObject
}

// NewPlayer creates a player standing with its feet at (x, y)
func NewPlayer(x, y float64) *Player {
	p := &Player{GameObject: newGameObject()}
	p.bounds = geom.NewAABB(0, 0, PlayerWidth, PlayerHeight)
	p.SetAnchor(AnchorCenter, AnchorBottom)
	p.SetAimAnchor(AnchorCenter, AnchorMiddle)
	p.moveSpeed = PlayerMoveSpeed
	p.health = PlayerMaxHP
	p.state = StateStand
	p.directionType = DirTypeHorizontal
	p.direction = geom.DirRight
	p.Teleport(x, y)
	return p
}

// Kind implements Object
func (p *Player) Kind() Kind { return KindPlayer }
