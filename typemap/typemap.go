/*
Package typemap provides a heterogeneous container keyed by type identity.

A Map holds at most one value per type. Values go in and come out through the generic
helpers in this package, so a lookup always yields the exact type that was requested:

	m := typemap.New()
	typemap.Insert(m, Health{Current: 10})
	hp, ok := typemap.GetMut[Health](m)

Maps are not safe for concurrent use.
*/
package typemap

import (
	"fmt"
	"iter"
	"maps"
	"reflect"

	"github.com/rotisserie/eris"
)

// Map maps types to the single value stored for each of them.
type Map struct {
	entries map[reflect.Type]any
}

// New returns an empty Map.
func New() *Map {
	return &Map{entries: make(map[reflect.Type]any)}
}

// WithCapacity returns an empty Map sized for n types. It still grows past n.
func WithCapacity(n int) *Map {
	return &Map{entries: make(map[reflect.Type]any, n)}
}

// Insert stores v under T, replacing any previous T value.
func Insert[T any](m *Map, v T) {
	if m.entries == nil {
		m.entries = make(map[reflect.Type]any)
	}
	m.entries[reflect.TypeFor[T]()] = &v
}

// Get returns a copy of the stored T value.
func Get[T any](m *Map) (T, bool) {
	ptr, ok := GetMut[T](m)
	if !ok {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// GetMut returns a pointer to the stored T value. Writes through it are visible to
// later lookups.
func GetMut[T any](m *Map) (*T, bool) {
	want := reflect.TypeFor[T]()
	entry, ok := m.entries[want]
	if !ok {
		return nil, false
	}
	ptr, ok := entry.(*T)
	if !ok {
		panic(eris.Wrap(TypeMismatchError{Want: want, Got: reflect.TypeOf(entry)}, "typemap lookup"))
	}
	return ptr, true
}

// Has reports whether a T value is stored.
func Has[T any](m *Map) bool {
	return HasType(m, reflect.TypeFor[T]())
}

// HasType reports whether a value is stored for t.
func HasType(m *Map, t reflect.Type) bool {
	_, ok := m.entries[t]
	return ok
}

func (m *Map) Len() int {
	return len(m.entries)
}

func (m *Map) IsEmpty() bool {
	return len(m.entries) == 0
}

// Clear removes every entry.
func (m *Map) Clear() {
	clear(m.entries)
}

// Types yields the stored types in no particular order.
func (m *Map) Types() iter.Seq[reflect.Type] {
	return maps.Keys(m.entries)
}

// TypeMismatchError reports a stored value whose type differs from its key.
// It only surfaces through a panic.
type TypeMismatchError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("stored value has type %v, expected *%v", e.Got, e.Want)
}
