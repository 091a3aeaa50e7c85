package main

import (
	"github.com/sirupsen/logrus"

	"github.com/gabenesienh/2d-physics-game/diag"
	"github.com/gabenesienh/2d-physics-game/game"
	"github.com/gabenesienh/2d-physics-game/objects"
	"github.com/gabenesienh/2d-physics-game/quadtree"
	"github.com/gabenesienh/2d-physics-game/tiles"
)

// logRenderer is the headless stand-in for drawing hitboxes and quadtree
// nodes: once per second it logs them at debug level
type logRenderer struct {
	log   logrus.FieldLogger
	flags diag.Flags
}

func newLogRenderer(log logrus.FieldLogger, flags diag.Flags) game.Renderer {
	if !flags.Has(diag.ShowHitboxes) && !flags.Has(diag.ShowQuads) {
		return nil
	}
	return &logRenderer{log: log, flags: flags}
}

func (r *logRenderer) Render(g *game.Game) {
	if g.Tick() == 0 || g.Tick()%game.TickRate != 0 {
		return
	}

	if r.flags.Has(diag.ShowHitboxes) {
		for _, obj := range g.Objects() {
			r.log.WithFields(logrus.Fields{
				"tick":   g.Tick(),
				"kind":   obj.Kind().String(),
				"left":   obj.LeftX(),
				"top":    obj.TopY(),
				"right":  obj.RightX(),
				"bottom": obj.BottomY(),
			}).Debug("hitbox")
		}
	}

	if r.flags.Has(diag.ShowQuads) {
		tileNodes := 0
		g.TilesTree().Walk(func(*quadtree.Tree[*tiles.Tile]) { tileNodes++ })
		objectNodes := 0
		g.ObjectsTree().Walk(func(*quadtree.Tree[objects.Object]) { objectNodes++ })

		r.log.WithFields(logrus.Fields{
			"tick":         g.Tick(),
			"tile_nodes":   tileNodes,
			"object_nodes": objectNodes,
		}).Debug("quadtrees")
	}
}
