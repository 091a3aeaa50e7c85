// Package game runs the simulation: it owns the level, the objects and the
// spatial indexes over both, and advances them one tick at a time.
package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/gabenesienh/2d-physics-game/diag"
	"github.com/gabenesienh/2d-physics-game/geom"
	"github.com/gabenesienh/2d-physics-game/internal/logger"
	"github.com/gabenesienh/2d-physics-game/objects"
	"github.com/gabenesienh/2d-physics-game/quadtree"
	"github.com/gabenesienh/2d-physics-game/tiles"
)

// Phase is the lifecycle stage of a Game
type Phase uint8

const (
	PhaseLaunched Phase = iota // nothing loaded yet
	PhaseStarted               // level loaded, ticking
)

func (p Phase) String() string {
	switch p {
	case PhaseLaunched:
		return "launched"
	case PhaseStarted:
		return "started"
	}
	return "unknown"
}

// Game holds the whole simulation state. It is not safe for concurrent use;
// a Runner drives it from a single goroutine.
type Game struct {
	cfg Config
	log logrus.FieldLogger

	phase Phase
	tick  uint64
	level *tiles.Level

	objects *objects.Store
	player  objects.Handle

	tilesTree   *quadtree.Tree[*tiles.Tile]
	objectsTree *quadtree.Tree[objects.Object]

	prevInput  Input
	debugTimer float64 // seconds since the last diagnostics report
}

// New creates a game in the launched phase. The first call to Advance loads
// the start level and spawns the player.
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Component("game")
	}

	world := worldBounds(nil)
	return &Game{
		cfg:         *cfg,
		log:         log,
		objects:     objects.NewStore(),
		tilesTree:   quadtree.New[*tiles.Tile](0, world),
		objectsTree: quadtree.New[objects.Object](0, world),
	}, nil
}

// Advance moves the game forward by one tick. dt is the time elapsed since the
// previous tick in 60ths of a second and only feeds diagnostics; physics runs
// per tick. In the launched phase Advance performs startup instead and fails
// if the start level cannot be loaded.
func (g *Game) Advance(in Input, dt float64) error {
	switch g.phase {
	case PhaseLaunched:
		return g.launch()
	case PhaseStarted:
		g.step(in, clampDT(dt))
	}
	return nil
}

func (g *Game) launch() error {
	if err := g.LoadLevel(g.cfg.StartLevel); err != nil {
		return fmt.Errorf("launch: %w", err)
	}

	g.player = g.objects.Add(objects.NewPlayer(g.cfg.SpawnX, g.cfg.SpawnY))
	g.rebuildObjectsTree()

	if g.cfg.Debug.Has(diag.Configs) {
		g.log.WithFields(logrus.Fields{
			"level":     g.cfg.StartLevel,
			"grav_add":  g.cfg.Physics.GravAdd,
			"grav_mult": g.cfg.Physics.GravMult,
			"grav_cap":  g.cfg.Physics.GravCap,
			"debug":     g.cfg.Debug.String(),
		}).Info("configuration")
	}

	g.phase = PhaseStarted
	g.log.WithField("level", g.level.DisplayName).Info("game started")
	return nil
}

// LoadLevel replaces the current level with a fresh copy of the named one and
// rebuilds the tile index. On failure the current level is kept.
func (g *Game) LoadLevel(name string) error {
	lvl, err := g.cfg.Levels.Load(name)
	if err != nil {
		g.log.WithError(err).WithField("level", name).Error("cannot load level")
		return err
	}

	g.level = lvl
	g.tilesTree = quadtree.New[*tiles.Tile](0, worldBounds(lvl))
	for i := range lvl.Tiles {
		g.tilesTree.Insert(&lvl.Tiles[i])
	}
	g.objectsTree = quadtree.New[objects.Object](0, g.tilesTree.Bounds())
	g.rebuildObjectsTree()

	g.log.WithFields(logrus.Fields{
		"level": name,
		"tiles": len(lvl.Tiles),
	}).Debug("level loaded")
	return nil
}

// worldBounds covers the window and every tile of lvl
func worldBounds(lvl *tiles.Level) geom.AABB {
	world := geom.FromEdges(0, 0, WindowWidth, WindowHeight)
	if lvl == nil {
		return world
	}
	if b, ok := lvl.Bounds(); ok {
		world = geom.Union(world, b)
	}
	return world
}

func clampDT(dt float64) float64 {
	if math.IsNaN(dt) || dt <= 0 || dt > 1 {
		return 1
	}
	return dt
}

func (g *Game) step(in Input, dt float64) {
	g.tick++

	g.handleInput(in)
	g.integrate()
	g.rebuildObjectsTree()
	g.resolveCollisions()

	g.prevInput = in
	g.updateDiagnostics(dt)
}

func (g *Game) handleInput(in Input) {
	p, ok := g.Player()
	if !ok {
		return
	}

	left, right := in.Held(ButtonLeft), in.Held(ButtonRight)
	switch {
	case left && !right:
		p.SetState(objects.StateWalk)
		p.WalkToward(geom.DirLeft)
	case right && !left:
		p.SetState(objects.StateWalk)
		p.WalkToward(geom.DirRight)
	default:
		p.SetSpeedX(0)
		p.SetState(objects.StateStand)
	}

	// The player faces the pointer
	p.AimAt(in.Pointer)
	switch {
	case in.Pointer.X < p.ScreenX():
		p.SetDirection(geom.DirLeft)
	case in.Pointer.X > p.ScreenX():
		p.SetDirection(geom.DirRight)
	}

	if in.Pressed(ButtonFire, g.prevInput) {
		g.Fire(p)
	}
}

// Fire spawns a projectile at the shooter's aim origin travelling along its
// aim direction, and returns it
func (g *Game) Fire(shooter objects.Object) *objects.Projectile {
	body := shooter.Body()
	w := g.cfg.Weapon

	proj := objects.NewProjectile(g.objects, body.Handle(), w.Lifespan, w.Size, w.Size)
	origin := body.AimOrigin()
	proj.Teleport(origin.X, origin.Y)

	aim := body.AimDirection()
	proj.SetDirection(aim)
	proj.Thrust(aim.X*w.MuzzleSpeed, aim.Y*w.MuzzleSpeed)

	g.objects.Add(proj)
	g.objectsTree.Insert(proj)
	return proj
}

// Spawn adds obj to the game and returns its handle
func (g *Game) Spawn(obj objects.Object) objects.Handle {
	h := g.objects.Add(obj)
	g.objectsTree.Insert(obj)
	return h
}

// Phase returns the lifecycle phase
func (g *Game) Phase() Phase { return g.phase }

// Tick returns the number of ticks simulated since the game started
func (g *Game) Tick() uint64 { return g.tick }

// Level returns the loaded level, nil before launch
func (g *Game) Level() *tiles.Level { return g.level }

// Config returns a copy of the game's configuration
func (g *Game) Config() Config { return g.cfg }

// Objects returns the live objects in iteration order
func (g *Game) Objects() []objects.Object { return g.objects.All() }

// Lookup resolves a handle to a live object
func (g *Game) Lookup(h objects.Handle) (objects.Object, bool) {
	return g.objects.Get(h)
}

// Player returns the player while it is alive
func (g *Game) Player() (*objects.Player, bool) {
	obj, ok := g.objects.Get(g.player)
	if !ok {
		return nil, false
	}
	p, ok := obj.(*objects.Player)
	return p, ok
}

// TilesTree returns the spatial index over the level's tiles
func (g *Game) TilesTree() *quadtree.Tree[*tiles.Tile] { return g.tilesTree }

// ObjectsTree returns the spatial index over the objects, as of the last rebuild
func (g *Game) ObjectsTree() *quadtree.Tree[objects.Object] { return g.objectsTree }

// QueryObjects returns the objects overlapping box
func (g *Game) QueryObjects(box geom.Box) []objects.Object {
	var out []objects.Object
	for _, obj := range g.objectsTree.FindPossibleCollisions(box) {
		if geom.Overlaps(obj, box) {
			out = append(out, obj)
		}
	}
	return out
}
