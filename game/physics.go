package game

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/gabenesienh/2d-physics-game/diag"
	"github.com/gabenesienh/2d-physics-game/geom"
	"github.com/gabenesienh/2d-physics-game/objects"
	"github.com/gabenesienh/2d-physics-game/tiles"
)

// integrate applies gravity and velocity to every object, runs their own
// logic and removes the ones that died
func (g *Game) integrate() {
	for i := 0; i < g.objects.Len(); {
		obj := g.objects.At(i)
		body := obj.Body()

		g.applyGravity(body)
		body.TryMove(body.X()+body.SpeedX(), body.Y()+body.SpeedY())
		obj.Tick()

		if body.Dead() {
			// RemoveAt moves another object into slot i
			g.remove(i)
			continue
		}
		i++
	}
}

// applyGravity accelerates body downwards in proportion to its weight
func (g *Game) applyGravity(body *objects.GameObject) {
	weight := body.Weight()
	if weight <= 0 {
		return
	}
	ph := g.cfg.Physics
	body.Thrust(0, (math.Abs(body.SpeedY())*ph.GravMult+ph.GravAdd)*weight)
	body.SetSpeedY(math.Min(body.SpeedY(), ph.GravCap*weight))
}

func (g *Game) remove(i int) {
	obj := g.objects.RemoveAt(i)
	if obj.Body().Handle() == g.player {
		g.log.WithField("tick", g.tick).Info("player died")
		return
	}
	g.log.WithFields(logrus.Fields{
		"tick": g.tick,
		"kind": obj.Kind().String(),
	}).Debug("object removed")
}

func (g *Game) rebuildObjectsTree() {
	g.objectsTree.Clear()
	for i := 0; i < g.objects.Len(); i++ {
		g.objectsTree.Insert(g.objects.At(i))
	}

	if g.cfg.OnSubtick != nil && g.cfg.Debug.Has(diag.SubtickRenders) {
		g.cfg.OnSubtick(g)
	}
}

// resolveCollisions pushes every object out of the tiles it overlaps.
//
// Each response handles the deepest overlap first, then the object is
// queried again, since moving out of one tile can settle or create others.
func (g *Game) resolveCollisions() {
	limit := g.cfg.Physics.MaxResolveIterations

	for i := 0; i < g.objects.Len(); i++ {
		obj := g.objects.At(i)

		settled := false
		for n := 0; n < limit; n++ {
			tile, hit, ok := g.deepestTileHit(obj)
			if !ok {
				settled = true
				break
			}
			obj.OnCollideTile(tile, hit)
			g.rebuildObjectsTree()
		}

		if !settled {
			if _, _, ok := g.deepestTileHit(obj); ok {
				g.log.WithFields(logrus.Fields{
					"tick":       g.tick,
					"kind":       obj.Kind().String(),
					"iterations": limit,
				}).Warn("collision resolution did not settle")
			}
		}
	}
}

// deepestTileHit returns the tile obj penetrates the most
func (g *Game) deepestTileHit(obj objects.Object) (*tiles.Tile, geom.Intersection, bool) {
	var (
		best    *tiles.Tile
		bestHit geom.Intersection
	)
	for _, tile := range g.tilesTree.FindPossibleCollisions(obj) {
		hit := geom.Intersect(obj, tile)
		if !hit.Hit() || math.Min(hit.Overlap.X, hit.Overlap.Y) < contactEpsilon {
			continue
		}
		if best == nil || hit.Area() > bestHit.Area() {
			best, bestHit = tile, hit
		}
	}
	return best, bestHit, best != nil
}
