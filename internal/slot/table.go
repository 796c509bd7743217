// Package slot provides a growable table of values addressed by generational
// handles. A handle records the slot index and the generation the slot had when
// the value was stored; once the slot is vacated or overwritten its generation
// moves on and every older handle stops resolving.
package slot

import (
	"fmt"
	"math"
)

// Handle is a weak reference into a Table[T]. The type parameter only tags the
// handle so that handles of different tables cannot be mixed up.
type Handle[T any] struct {
	index      uint32
	generation uint32
}

// NewHandle builds a handle from raw parts. Hosts use it when a reference
// arrives from outside the process (scripts, picks); Get decides whether it is
// still valid. Indexes that do not fit a slot index become the highest index,
// which no table reaches.
func NewHandle[T any](index int, generation uint32) Handle[T] {
	if index < 0 || uint64(index) > math.MaxUint32 {
		return Handle[T]{index: math.MaxUint32, generation: generation}
	}
	return Handle[T]{index: uint32(index), generation: generation}
}

func (h Handle[T]) Index() int         { return int(h.index) }
func (h Handle[T]) Generation() uint32 { return h.generation }

func (h Handle[T]) String() string {
	return fmt.Sprintf("%d@%d", h.index, h.generation)
}

type entry[T any] struct {
	generation uint32
	occupied   bool
	value      T
}

// Table stores optional values in slots that are never removed, only vacated.
// It is not safe for concurrent use.
type Table[T any] struct {
	slots []entry[T]
}

func New[T any]() *Table[T] {
	return &Table[T]{}
}

// Push stores v in the lowest vacant slot, or appends a new slot at generation
// 0 when none is vacant.
func (t *Table[T]) Push(v T) Handle[T] {
	for i := range t.slots {
		s := &t.slots[i]
		if s.occupied {
			continue
		}
		s.occupied = true
		s.value = v
		return Handle[T]{index: uint32(i), generation: s.generation}
	}
	t.slots = append(t.slots, entry[T]{occupied: true, value: v})
	return Handle[T]{index: uint32(len(t.slots) - 1)}
}

// Get returns the occupant h refers to. An out of range index, a vacant slot
// and a generation mismatch all look the same to the caller.
func (t *Table[T]) Get(h Handle[T]) (*T, bool) {
	s, ok := t.live(h)
	if !ok {
		return nil, false
	}
	return &s.value, true
}

// Contains reports whether h is currently valid.
func (t *Table[T]) Contains(h Handle[T]) bool {
	_, ok := t.live(h)
	return ok
}

// Remove vacates the slot h refers to, provided h is still valid.
func (t *Table[T]) Remove(h Handle[T]) (T, bool) {
	if _, ok := t.live(h); !ok {
		var zero T
		return zero, false
	}
	return t.RemoveAt(int(h.index))
}

// RemoveAt vacates slot i without looking at generations. Callers are expected
// to have validated their handle with Get first.
func (t *Table[T]) RemoveAt(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(t.slots) || !t.slots[i].occupied {
		return zero, false
	}
	s := &t.slots[i]
	v := s.value
	s.value = zero
	s.occupied = false
	s.generation++
	return v, true
}

// Replace overwrites the occupant of a valid handle. The slot moves to the next
// generation, so h stops resolving and the returned handle takes its place.
func (t *Table[T]) Replace(h Handle[T], v T) (Handle[T], bool) {
	s, ok := t.live(h)
	if !ok {
		return Handle[T]{}, false
	}
	s.generation++
	s.value = v
	return Handle[T]{index: h.index, generation: s.generation}, true
}

// Len is the number of slots, occupied or not.
func (t *Table[T]) Len() int { return len(t.slots) }

// Count is the number of occupied slots.
func (t *Table[T]) Count() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].occupied {
			n++
		}
	}
	return n
}

// Generation reports the current generation of slot i.
func (t *Table[T]) Generation(i int) (uint32, bool) {
	if i < 0 || i >= len(t.slots) {
		return 0, false
	}
	return t.slots[i].generation, true
}

// Each calls fn for every occupant in index order until fn returns false.
func (t *Table[T]) Each(fn func(Handle[T], *T) bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if !s.occupied {
			continue
		}
		if !fn(Handle[T]{index: uint32(i), generation: s.generation}, &s.value) {
			return
		}
	}
}

func (t *Table[T]) live(h Handle[T]) (*entry[T], bool) {
	if uint64(h.index) >= uint64(len(t.slots)) {
		return nil, false
	}
	s := &t.slots[h.index]
	if !s.occupied || s.generation != h.generation {
		return nil, false
	}
	return s, true
}
