package storage

import (
	"iter"

	"github.com/rotisserie/eris"
)

// Boxed adapts an untyped slot pool into a typed Storage. Each value lives in its own
// allocation inside inner, so pointers handed out by GetMut stay valid when inner grows
// and stay distinct even for zero-sized T.
func Boxed[K comparable, T any](inner Storage[K, any]) Storage[K, T] {
	return &boxed[K, T]{inner: inner}
}

type boxed[K comparable, T any] struct {
	inner Storage[K, any]
}

// cell gives every boxed value a non-zero size, so no two cells share an address.
type cell[T any] struct {
	value T
	_     byte
}

func (b *boxed[K, T]) Insert(v T) K {
	return b.inner.Insert(&cell[T]{value: v})
}

func (b *boxed[K, T]) Get(k K) (T, bool) {
	ptr, ok := b.GetMut(k)
	if !ok {
		var zero T
		return zero, false
	}
	return *ptr, true
}

func (b *boxed[K, T]) GetMut(k K) (*T, bool) {
	slot, ok := b.inner.GetMut(k)
	if !ok {
		return nil, false
	}
	return &unbox[T](*slot).value, true
}

func (b *boxed[K, T]) KeyOf(v *T) (K, bool) {
	if v != nil {
		for k, slot := range b.inner.All() {
			if &unbox[T](*slot).value == v {
				return k, true
			}
		}
	}
	var zero K
	return zero, false
}

func (b *boxed[K, T]) Has(k K) bool {
	return b.inner.Has(k)
}

func (b *boxed[K, T]) Len() int {
	return b.inner.Len()
}

func (b *boxed[K, T]) IsEmpty() bool {
	return b.inner.IsEmpty()
}

func (b *boxed[K, T]) All() iter.Seq2[K, *T] {
	return func(yield func(K, *T) bool) {
		for k, slot := range b.inner.All() {
			if !yield(k, &unbox[T](*slot).value) {
				return
			}
		}
	}
}

// unbox panics when a slot holds something other than a cell of T.
func unbox[T any](slot any) *cell[T] {
	c, ok := slot.(*cell[T])
	if !ok {
		var want T
		panic(eris.Errorf("boxed storage slot holds %T, expected %T", slot, want))
	}
	return c
}
