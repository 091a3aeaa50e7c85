package objects

import (
	"math"

	"github.com/gabenesienh/2d-physics-game/geom"
)

const (
	ProjectileFrictionAdd  = 0.05 // flat speed loss per grounded tick
	ProjectileFrictionMult = 0.1  // proportional speed loss per grounded tick
)

// Projectile is a short-lived object fired by another object
type Projectile struct {
	GameObject

	owner        Handle // weak; may no longer resolve
	lifespan     int    // ticks left, negative = infinite
	expired      bool
	frictionAdd  float64
	frictionMult float64
}

// NewProjectile creates a weightless projectile of the given size. If the
// owner resolves in store, the projectile starts on the owner's position.
// A negative lifespan never expires.
func NewProjectile(store *Store, owner Handle, lifespan int, width, height float64) *Projectile {
	p := &Projectile{
		GameObject:   newGameObject(),
		owner:        owner,
		lifespan:     lifespan,
		frictionAdd:  ProjectileFrictionAdd,
		frictionMult: ProjectileFrictionMult,
	}
	p.bounds = geom.NewAABB(0, 0, width, height)
	p.SetAnchor(AnchorCenter, AnchorMiddle)
	p.SetAimAnchor(AnchorCenter, AnchorMiddle)
	p.directionType = DirTypeOmni
	p.weight = 0

	if store != nil {
		if o, ok := store.Get(owner); ok {
			p.Teleport(o.Body().X(), o.Body().Y())
		}
	}
	return p
}

// Kind implements Object
func (p *Projectile) Kind() Kind { return KindProjectile }

// Owner returns the handle of the object that fired p
func (p *Projectile) Owner() Handle { return p.owner }

// Lifespan returns the remaining ticks, negative if infinite
func (p *Projectile) Lifespan() int { return p.lifespan }

// Friction returns the flat and proportional friction coefficients
func (p *Projectile) Friction() (add, mult float64) {
	return p.frictionAdd, p.frictionMult
}

// SetFriction sets the coefficients applied to horizontal speed while grounded
func (p *Projectile) SetFriction(add, mult float64) {
	p.frictionAdd = add
	p.frictionMult = mult
}

// Tick counts down the lifespan, killing the projectile once when it runs
// out, and applies ground friction.
func (p *Projectile) Tick() {
	if p.lifespan > 0 {
		p.lifespan--
	}
	if p.lifespan == 0 && !p.expired {
		p.expired = true
		p.health = 0
	}

	if p.grounded && p.speedX != 0 {
		reduction := math.Abs(p.speedX)*p.frictionMult + p.frictionAdd
		// Friction never pushes the projectile backwards
		reduction = math.Min(reduction, math.Abs(p.speedX))
		if p.speedX > 0 {
			p.speedX -= reduction
		} else {
			p.speedX += reduction
		}
	}

	p.GameObject.Tick()
}
