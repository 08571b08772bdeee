/*
Package storage defines the keyed slot container that backs both the entity table and
every component table of a depot world.

Any type satisfying Storage may be plugged in. Slab is the reference implementation: a
dense, append-only slot allocator keyed by int.

	s := storage.NewSlab[Position]()
	k := s.Insert(Position{X: 1})
	p, _ := s.GetMut(k)
	p.X++

Keys returned by Insert are never in use at the time they are returned. The contract has
no removal operation, so a key stays valid for the life of its Storage.
*/
package storage

import "iter"

// Storage is a keyed slot container.
type Storage[K comparable, V any] interface {
	// Insert stores v and returns a key that was not in use.
	Insert(v V) K
	// Get returns a copy of the value stored at k.
	Get(k K) (V, bool)
	// GetMut returns a pointer to the value stored at k.
	GetMut(k K) (*V, bool)
	// KeyOf maps a pointer obtained from this Storage back to its key. It reports false
	// when v cannot be attributed to exactly one key, and never returns another slot's key.
	KeyOf(v *V) (K, bool)
	Has(k K) bool
	Len() int
	IsEmpty() bool
	// All yields (key, value) pairs in a backend-defined, stable order.
	All() iter.Seq2[K, *V]
}

// Factory creates an empty Storage. A capacity of zero asks for the backend default;
// anything larger is a hint and the Storage still grows past it.
type Factory[K comparable, V any] func(capacity int) Storage[K, V]
