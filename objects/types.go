package objects

// Kind identifies the concrete type behind an Object
type Kind uint8

const (
	KindPlayer Kind = iota
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// AnchorX selects which point along the box's width an object's X refers to
type AnchorX uint8

const (
	AnchorLeft AnchorX = iota
	AnchorCenter
	AnchorRight
)

// Pivot maps the anchor onto [-1, 1]
func (a AnchorX) Pivot() float64 {
	switch a {
	case AnchorLeft:
		return -1
	case AnchorRight:
		return 1
	}
	return 0
}

// AnchorY selects which point along the box's height an object's Y refers to
type AnchorY uint8

const (
	AnchorTop AnchorY = iota
	AnchorMiddle
	AnchorBottom
)

// Pivot maps the anchor onto [-1, 1]
func (a AnchorY) Pivot() float64 {
	switch a {
	case AnchorTop:
		return -1
	case AnchorBottom:
		return 1
	}
	return 0
}

// DirectionType constrains which directions an object may face
type DirectionType uint8

const (
	DirTypeNone       DirectionType = iota // only DirNone
	DirTypeHorizontal                      // left or right
	DirTypeOrthogonal                      // left, right, up or down
	DirTypeOmni                            // anything
)

func (d DirectionType) String() string {
	switch d {
	case DirTypeNone:
		return "none"
	case DirTypeHorizontal:
		return "horizontal"
	case DirTypeOrthogonal:
		return "orthogonal"
	case DirTypeOmni:
		return "omni"
	}
	return "unknown"
}

// WalkType decides whether walking also drives vertical speed
type WalkType uint8

const (
	WalkGround WalkType = iota // vertical speed is left to gravity and collisions
	WalkAerial                 // walking sets vertical speed too
)

// State is an object's current behaviour, mostly for animation
type State uint8

const (
	StateStand State = iota
	StateWalk
)

func (s State) String() string {
	switch s {
	case StateStand:
		return "stand"
	case StateWalk:
		return "walk"
	}
	return "unknown"
}
