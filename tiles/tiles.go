// Package tiles holds level tiles, the tile type table and level templates.
//
// "grid" attributes are measured in grid cells; everything else is in pixels.
package tiles

import (
	"errors"
	"fmt"
	"sort"
)

const CellSize = 32

// ErrUnknownTileType is returned when a tile references a type id missing
// from the type table
var ErrUnknownTileType = errors.New("unknown tile type")

// TileType defines the properties shared by every tile of the same type
type TileType struct {
	GridWidth  int
	GridHeight int
}

// typeTable holds all TileType definitions keyed by id. Read-only.
var typeTable = map[int]*TileType{
	1: {GridWidth: 1, GridHeight: 1}, // block
	2: {GridWidth: 2, GridHeight: 1}, // ledge
	3: {GridWidth: 1, GridHeight: 2}, // pillar
	4: {GridWidth: 4, GridHeight: 1}, // slab
}

// LookupType returns the tile type registered under id
func LookupType(id int) (*TileType, bool) {
	tt, ok := typeTable[id]
	return tt, ok
}

// TypeIDs returns every known tile type id in ascending order
func TypeIDs() []int {
	ids := make([]int, 0, len(typeTable))
	for id := range typeTable {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// TileBox is the bounding box of a tile. Its edges are derived from the grid
// position and the tile's type, so it never changes after construction.
type TileBox struct {
	GridX int
	GridY int
	typ   *TileType
}

func (b TileBox) TopY() float64    { return float64(b.GridY * CellSize) }
func (b TileBox) BottomY() float64 { return float64((b.GridY + b.typ.GridHeight) * CellSize) }
func (b TileBox) LeftX() float64   { return float64(b.GridX * CellSize) }
func (b TileBox) RightX() float64  { return float64((b.GridX + b.typ.GridWidth) * CellSize) }

// Tile is a single static tile in a level
type Tile struct {
	typeID int
	bounds TileBox
}

// NewTile creates a tile of the given type at a grid position
func NewTile(typeID, gridX, gridY int) (Tile, error) {
	tt, ok := LookupType(typeID)
	if !ok {
		return Tile{}, fmt.Errorf("tile at (%d,%d): %w %d", gridX, gridY, ErrUnknownTileType, typeID)
	}
	return Tile{
		typeID: typeID,
		bounds: TileBox{GridX: gridX, GridY: gridY, typ: tt},
	}, nil
}

// MustTile is NewTile for static tables; it panics on an unknown type
func MustTile(typeID, gridX, gridY int) Tile {
	t, err := NewTile(typeID, gridX, gridY)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tile) TypeID() int      { return t.typeID }
func (t *Tile) Bounds() TileBox  { return t.bounds }
func (t *Tile) Type() *TileType  { return t.bounds.typ }
func (t *Tile) TopY() float64    { return t.bounds.TopY() }
func (t *Tile) BottomY() float64 { return t.bounds.BottomY() }
func (t *Tile) LeftX() float64   { return t.bounds.LeftX() }
func (t *Tile) RightX() float64  { return t.bounds.RightX() }

// X returns the tile's left edge in pixels
func (t *Tile) X() int { return t.bounds.GridX * CellSize }

// Y returns the tile's top edge in pixels
func (t *Tile) Y() int { return t.bounds.GridY * CellSize }

// Width returns the tile's width in pixels
func (t *Tile) Width() int { return t.bounds.typ.GridWidth * CellSize }

// Height returns the tile's height in pixels
func (t *Tile) Height() int { return t.bounds.typ.GridHeight * CellSize }
