package tiles

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoLevels is returned when a level file defines no levels
var ErrNoLevels = errors.New("no levels defined")

// levelFile is the on-disk layout of a level catalog:
//
//	levels:
//	  test:
//	    name: Test
//	    tiles:
//	      - {type: 1, x: 10, y: 10}
type levelFile struct {
	Levels map[string]levelDoc `yaml:"levels"`
}

type levelDoc struct {
	Name  string    `yaml:"name"`
	Tiles []tileDoc `yaml:"tiles"`
}

type tileDoc struct {
	Type int `yaml:"type"`
	X    int `yaml:"x"`
	Y    int `yaml:"y"`
}

// ParseCatalog reads level templates from YAML. Every tile must reference a
// known tile type.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	var doc levelFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoLevels
		}
		return nil, fmt.Errorf("decode levels: %w", err)
	}
	if len(doc.Levels) == 0 {
		return nil, ErrNoLevels
	}

	c := NewCatalog()
	for key, ld := range doc.Levels {
		lvl := &Level{DisplayName: ld.Name, Tiles: make([]Tile, 0, len(ld.Tiles))}
		if lvl.DisplayName == "" {
			lvl.DisplayName = key
		}
		for _, td := range ld.Tiles {
			t, err := NewTile(td.Type, td.X, td.Y)
			if err != nil {
				return nil, fmt.Errorf("level %q: %w", key, err)
			}
			lvl.Tiles = append(lvl.Tiles, t)
		}
		c.Register(key, lvl)
	}
	return c, nil
}

// LoadCatalogFile reads level templates from a YAML file
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCatalog(f)
}

// Merge copies every template of other into c, overriding same-named ones
func (c *Catalog) Merge(other *Catalog) {
	if other == c {
		return
	}

	other.mu.RLock()
	levels := make(map[string]*Level, len(other.levels))
	for name, lvl := range other.levels {
		levels[name] = lvl
	}
	other.mu.RUnlock()

	for name, lvl := range levels {
		c.Register(name, lvl)
	}
}
