package tiles

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileEdges(t *testing.T) {
	tile := MustTile(1, 10, 10)
	assert.Equal(t, 320.0, tile.TopY())
	assert.Equal(t, 352.0, tile.BottomY())
	assert.Equal(t, 320.0, tile.LeftX())
	assert.Equal(t, 352.0, tile.RightX())
	assert.Equal(t, 320, tile.X())
	assert.Equal(t, 32, tile.Width())

	ledge := MustTile(2, 3, 4)
	assert.Equal(t, 96.0, ledge.LeftX())
	assert.Equal(t, 160.0, ledge.RightX())
	assert.Equal(t, 128.0, ledge.TopY())
	assert.Equal(t, 160.0, ledge.BottomY())
	assert.Equal(t, 64, ledge.Width())
	assert.Equal(t, 32, ledge.Height())
}

func TestNewTileUnknownType(t *testing.T) {
	_, err := NewTile(999, 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTileType))
}

func TestTypeIDsSorted(t *testing.T) {
	ids := TypeIDs()
	require.NotEmpty(t, ids)
	assert.Equal(t, 1, ids[0])
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestDefaultCatalogTestLevel(t *testing.T) {
	lvl, err := DefaultCatalog().Load("test")
	require.NoError(t, err)
	assert.Equal(t, "Test", lvl.DisplayName)
	assert.Len(t, lvl.Tiles, 11)

	b, ok := lvl.Bounds()
	require.True(t, ok)
	assert.Equal(t, 320.0, b.LeftX())
	assert.Equal(t, 672.0, b.RightX())
	assert.Equal(t, 320.0, b.TopY())
	assert.Equal(t, 352.0, b.BottomY())
}

func TestLoadMissingLevel(t *testing.T) {
	lvl, err := DefaultCatalog().Load("nope")
	assert.Nil(t, lvl)
	assert.True(t, errors.Is(err, ErrLevelNotFound))
}

func TestLoadReturnsIndependentCopy(t *testing.T) {
	c := DefaultCatalog()
	first, err := c.Load("test")
	require.NoError(t, err)

	first.DisplayName = "changed"
	first.Tiles[0] = MustTile(4, 0, 0)
	first.Tiles = first.Tiles[:1]

	second, err := c.Load("test")
	require.NoError(t, err)
	assert.Equal(t, "Test", second.DisplayName)
	assert.Len(t, second.Tiles, 11)
	assert.Equal(t, 1, second.Tiles[0].TypeID())
}

func TestEmptyLevelHasNoBounds(t *testing.T) {
	_, ok := (&Level{}).Bounds()
	assert.False(t, ok)
}

func TestParseCatalog(t *testing.T) {
	src := `
levels:
  cave:
    name: The Cave
    tiles:
      - {type: 1, x: 0, y: 5}
      - {type: 4, x: 1, y: 5}
  bare:
    tiles:
      - {type: 3, x: 2, y: 2}
`
	c, err := ParseCatalog(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"bare", "cave"}, c.Names())

	cave, err := c.Load("cave")
	require.NoError(t, err)
	assert.Equal(t, "The Cave", cave.DisplayName)
	require.Len(t, cave.Tiles, 2)
	assert.Equal(t, 160.0, cave.Tiles[1].RightX())

	bare, err := c.Load("bare")
	require.NoError(t, err)
	assert.Equal(t, "bare", bare.DisplayName)
}

func TestParseCatalogRejectsUnknownType(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader("levels:\n  x:\n    tiles:\n      - {type: 42, x: 0, y: 0}\n"))
	assert.True(t, errors.Is(err, ErrUnknownTileType))
}

func TestParseCatalogEmpty(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrNoLevels))

	_, err = ParseCatalog(strings.NewReader("levels: {}\n"))
	assert.True(t, errors.Is(err, ErrNoLevels))
}

func TestLoadCatalogFileAndMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	require.NoError(t, os.WriteFile(path, []byte("levels:\n  test:\n    name: Override\n    tiles:\n      - {type: 1, x: 10, y: 10}\n"), 0o644))

	file, err := LoadCatalogFile(path)
	require.NoError(t, err)

	c := DefaultCatalog()
	c.Merge(file)
	lvl, err := c.Load("test")
	require.NoError(t, err)
	assert.Equal(t, "Override", lvl.DisplayName)
	assert.Len(t, lvl.Tiles, 1)
}

func TestMergeWithItself(t *testing.T) {
	c := DefaultCatalog()

	done := make(chan struct{})
	go func() {
		c.Merge(c)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("merging a catalog into itself did not return")
	}
	assert.Equal(t, []string{"test"}, c.Names())
}
