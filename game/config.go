package game

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gabenesienh/2d-physics-game/diag"
	"github.com/gabenesienh/2d-physics-game/tiles"
)

const (
	TickRate     = 60 // simulation ticks per second
	TickDuration = time.Second / TickRate

	WindowWidth  = 960
	WindowHeight = 540
)

// Gravity: speedY += (|speedY|*GravMult + GravAdd) * weight, capped at GravCap * weight
const (
	GravAdd  = 0.15
	GravMult = 0.05
	GravCap  = 10.0
)

const (
	MuzzleSpeed        = 8.0 // projectile speed in pixels per tick
	ProjectileLifespan = 40  // ticks
	ProjectileSize     = 15.0

	// MaxResolveIterations bounds the collision responses per object per tick
	MaxResolveIterations = 16
)

// contactEpsilon is the smallest penetration depth treated as a collision
const contactEpsilon = 1e-9

// LevelSource provides level templates by name
type LevelSource interface {
	Load(name string) (*tiles.Level, error)
}

// Physics holds the tunable physics constants
type Physics struct {
	GravAdd              float64 `yaml:"grav_add"`
	GravMult             float64 `yaml:"grav_mult"`
	GravCap              float64 `yaml:"grav_cap"`
	MaxResolveIterations int     `yaml:"max_resolve_iterations"`
}

// Weapon describes the projectiles fired by the player
type Weapon struct {
	MuzzleSpeed float64 `yaml:"muzzle_speed"`
	Lifespan    int     `yaml:"lifespan"`
	Size        float64 `yaml:"size"`
}

// Config configures a Game
type Config struct {
	StartLevel string     `yaml:"start_level"`
	SpawnX     float64    `yaml:"spawn_x"`
	SpawnY     float64    `yaml:"spawn_y"`
	Physics    Physics    `yaml:"physics"`
	Weapon     Weapon     `yaml:"weapon"`
	Debug      diag.Flags `yaml:"debug"`

	// Levels is required
	Levels      LevelSource        `yaml:"-"`
	Logger      logrus.FieldLogger `yaml:"-"`
	Diagnostics diag.Sink          `yaml:"-"`
	// OnSubtick runs after every spatial index rebuild when Debug has
	// diag.SubtickRenders set
	OnSubtick func(g *Game) `yaml:"-"`
}

// DefaultConfig returns the stock configuration using the built-in levels
func DefaultConfig() *Config {
	return &Config{
		StartLevel: "test",
		SpawnX:     WindowWidth / 2,
		SpawnY:     WindowHeight / 2,
		Physics: Physics{
			GravAdd:              GravAdd,
			GravMult:             GravMult,
			GravCap:              GravCap,
			MaxResolveIterations: MaxResolveIterations,
		},
		Weapon: Weapon{
			MuzzleSpeed: MuzzleSpeed,
			Lifespan:    ProjectileLifespan,
			Size:        ProjectileSize,
		},
		Levels: tiles.DefaultCatalog(),
	}
}

// Validate checks the configuration for values the simulation cannot run with
func (c *Config) Validate() error {
	if c.Levels == nil {
		return errors.New("level source is required")
	}
	if c.StartLevel == "" {
		return errors.New("start level is required")
	}
	if c.Physics.GravCap < 0 {
		return errors.New("gravity cap must not be negative")
	}
	if c.Physics.MaxResolveIterations <= 0 {
		return errors.New("max resolve iterations must be positive")
	}
	if c.Weapon.Size <= 0 {
		return errors.New("projectile size must be positive")
	}
	return nil
}
