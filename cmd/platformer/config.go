package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gabenesienh/2d-physics-game/game"
	"github.com/gabenesienh/2d-physics-game/tiles"
)

// loadConfig returns the default configuration overlaid with the YAML file at
// path, if any. Unknown keys are rejected.
func loadConfig(path string) (*game.Config, error) {
	cfg := game.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// loadCatalog returns the built-in levels plus those defined in the YAML file
// at path, if any
func loadCatalog(path string) (*tiles.Catalog, error) {
	cat := tiles.DefaultCatalog()
	if path == "" {
		return cat, nil
	}

	extra, err := tiles.LoadCatalogFile(path)
	if err != nil {
		return nil, err
	}
	cat.Merge(extra)
	return cat, nil
}
