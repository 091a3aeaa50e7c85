package tiles

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gabenesienh/2d-physics-game/geom"
)

// ErrLevelNotFound is returned when loading a level name the catalog lacks
var ErrLevelNotFound = errors.New("level not found")

// Level is a named set of tiles
type Level struct {
	DisplayName string
	Tiles       []Tile
}

// Clone returns a copy of the level that shares no tile storage with l
func (l *Level) Clone() *Level {
	cp := &Level{
		DisplayName: l.DisplayName,
		Tiles:       make([]Tile, len(l.Tiles)),
	}
	copy(cp.Tiles, l.Tiles)
	return cp
}

// Bounds returns the smallest box containing every tile, false if there are none
func (l *Level) Bounds() (geom.AABB, bool) {
	if len(l.Tiles) == 0 {
		return geom.AABB{}, false
	}
	b := geom.BoundsOf(&l.Tiles[0])
	for i := 1; i < len(l.Tiles); i++ {
		b = geom.Union(b, &l.Tiles[i])
	}
	return b, true
}

// Catalog maps level names to level templates. Templates are never handed out
// directly; Load returns an independent copy.
type Catalog struct {
	mu     sync.RWMutex
	levels map[string]*Level
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{levels: make(map[string]*Level)}
}

// DefaultCatalog returns a catalog holding the built-in levels
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.Register("test", testLevel())
	return c
}

// Register stores a copy of lvl under name, replacing any previous template
func (c *Catalog) Register(name string, lvl *Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.levels[name] = lvl.Clone()
}

// Names returns the registered level names in sorted order
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.levels))
	for name := range c.levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns a fresh copy of the named level template
func (c *Catalog) Load(name string) (*Level, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tmpl, ok := c.levels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLevelNotFound, name)
	}
	return tmpl.Clone(), nil
}

func testLevel() *Level {
	lvl := &Level{DisplayName: "Test"}
	for x := 10; x <= 20; x++ {
		lvl.Tiles = append(lvl.Tiles, MustTile(1, x, 10))
	}
	return lvl
}
