package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAddGet(t *testing.T) {
	s := NewStore()
	p := NewPlayer(1, 2)
	h := s.Add(p)

	assert.False(t, h.IsZero())
	assert.Equal(t, h, p.Handle())

	got, ok := s.Get(h)
	require.True(t, ok)
	assert.Same(t, p, got)

	_, ok = s.Get(Handle{})
	assert.False(t, ok)
}

func TestStoreRemoveAtSwapsLastIn(t *testing.T) {
	s := NewStore()
	a, b, c := NewPlayer(0, 0), NewPlayer(1, 0), NewPlayer(2, 0)
	ha := s.Add(a)
	hb := s.Add(b)
	hc := s.Add(c)

	removed := s.RemoveAt(0)
	assert.Same(t, a, removed)
	assert.Equal(t, 2, s.Len())
	assert.Same(t, c, s.At(0), "last object fills the freed index")
	assert.Same(t, b, s.At(1))

	_, ok := s.Get(ha)
	assert.False(t, ok)
	got, ok := s.Get(hc)
	require.True(t, ok)
	assert.Same(t, c, got)
	got, ok = s.Get(hb)
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestStoreStaleHandleAfterReuse(t *testing.T) {
	s := NewStore()
	old := s.Add(NewPlayer(0, 0))
	require.True(t, s.Remove(old))
	assert.False(t, s.Remove(old))

	fresh := s.Add(NewPlayer(5, 5))
	assert.NotEqual(t, old, fresh)

	_, ok := s.Get(old)
	assert.False(t, ok)
	_, ok = s.Get(fresh)
	assert.True(t, ok)
}

func TestStoreAllIsACopy(t *testing.T) {
	s := NewStore()
	s.Add(NewPlayer(0, 0))
	all := s.All()
	all[0] = nil
	assert.NotNil(t, s.At(0))
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	hs := []Handle{s.Add(NewPlayer(0, 0)), s.Add(NewPlayer(0, 0)), s.Add(NewPlayer(0, 0))}
	s.Clear()
	assert.Equal(t, 0, s.Len())
	for _, h := range hs {
		_, ok := s.Get(h)
		assert.False(t, ok)
	}
}
