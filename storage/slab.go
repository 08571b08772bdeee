package storage

import (
	"iter"
	"unsafe"
)

var _ Storage[int, any] = &Slab[any]{}

// Slab is a dense, append-only slot allocator. Keys are slot indices starting at zero
// and are never reused.
type Slab[V any] struct {
	slots []V
}

// NewSlab returns an empty Slab.
func NewSlab[V any]() *Slab[V] {
	return &Slab[V]{}
}

// NewSlabWithCapacity returns an empty Slab with room for n values before it reallocates.
func NewSlabWithCapacity[V any](n int) *Slab[V] {
	return &Slab[V]{slots: make([]V, 0, max(n, 0))}
}

// SlabFactory adapts NewSlabWithCapacity to a Factory.
func SlabFactory[V any]() Factory[int, V] {
	return func(capacity int) Storage[int, V] {
		return NewSlabWithCapacity[V](capacity)
	}
}

func (s *Slab[V]) Insert(v V) int {
	s.slots = append(s.slots, v)
	return len(s.slots) - 1
}

func (s *Slab[V]) Get(k int) (V, bool) {
	if !s.Has(k) {
		var zero V
		return zero, false
	}
	return s.slots[k], true
}

func (s *Slab[V]) GetMut(k int) (*V, bool) {
	if !s.Has(k) {
		return nil, false
	}
	return &s.slots[k], true
}

// KeyOf scans the current backing array for v. Pointers taken before the Slab last
// grew refer to the old array and are not found. Slots of a zero-sized V share one
// address, so KeyOf never resolves them; wrap the Slab with Boxed when that matters.
func (s *Slab[V]) KeyOf(v *V) (int, bool) {
	if v == nil || unsafe.Sizeof(*v) == 0 {
		return 0, false
	}
	for i := range s.slots {
		if &s.slots[i] == v {
			return i, true
		}
	}
	return 0, false
}

func (s *Slab[V]) Has(k int) bool {
	return k >= 0 && k < len(s.slots)
}

func (s *Slab[V]) Len() int {
	return len(s.slots)
}

func (s *Slab[V]) IsEmpty() bool {
	return len(s.slots) == 0
}

// All yields slots in key order.
func (s *Slab[V]) All() iter.Seq2[int, *V] {
	return func(yield func(int, *V) bool) {
		for i := range s.slots {
			if !yield(i, &s.slots[i]) {
				return
			}
		}
	}
}
