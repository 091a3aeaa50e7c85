package objects

// Handle refers to an object in a Store. Handles of removed objects never
// resolve again, even after their slot is reused. The zero Handle is invalid.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h was never issued
func (h Handle) IsZero() bool { return h.gen == 0 }

type slot struct {
	gen   uint32
	dense int // index into Store.live, -1 when free
}

// Store owns the live objects. Objects are kept densely so they can be
// iterated by index; RemoveAt moves the last object into the freed index.
type Store struct {
	slots    []slot
	free     []uint32
	live     []Object
	liveSlot []uint32 // slot index of each live object
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of live objects
func (s *Store) Len() int { return len(s.live) }

// At returns the live object at dense index i
func (s *Store) At(i int) Object { return s.live[i] }

// All returns a copy of the live objects in iteration order
func (s *Store) All() []Object {
	out := make([]Object, len(s.live))
	copy(out, s.live)
	return out
}

// Add takes ownership of obj and returns its handle
func (s *Store) Add(obj Object) Handle {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{gen: 1})
	}

	s.slots[idx].dense = len(s.live)
	s.live = append(s.live, obj)
	s.liveSlot = append(s.liveSlot, idx)

	h := Handle{index: idx, gen: s.slots[idx].gen}
	obj.Body().handle = h
	return h
}

// Get resolves h, returning false if the object has been removed
func (s *Store) Get(h Handle) (Object, bool) {
	if h.IsZero() || int(h.index) >= len(s.slots) {
		return nil, false
	}
	sl := s.slots[h.index]
	if sl.gen != h.gen || sl.dense < 0 {
		return nil, false
	}
	return s.live[sl.dense], true
}

// RemoveAt removes the object at dense index i and returns it. The last live
// object takes its place, so callers iterating by index must revisit i.
func (s *Store) RemoveAt(i int) Object {
	obj := s.live[i]
	removed := s.liveSlot[i]
	last := len(s.live) - 1

	if i != last {
		s.live[i] = s.live[last]
		s.liveSlot[i] = s.liveSlot[last]
		s.slots[s.liveSlot[i]].dense = i
	}
	s.live[last] = nil
	s.live = s.live[:last]
	s.liveSlot = s.liveSlot[:last]

	s.slots[removed].dense = -1
	s.slots[removed].gen++
	s.free = append(s.free, removed)
	return obj
}

// Remove removes the object behind h, reporting whether it was live
func (s *Store) Remove(h Handle) bool {
	if _, ok := s.Get(h); !ok {
		return false
	}
	s.RemoveAt(s.slots[h.index].dense)
	return true
}

// Clear removes every object, invalidating all handles
func (s *Store) Clear() {
	for s.Len() > 0 {
		s.RemoveAt(s.Len() - 1)
	}
}
