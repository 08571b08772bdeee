package depot

import (
	"reflect"

	"github.com/rotisserie/eris"

	"github.com/TheBitDrifter/depot/typemap"
)

// ID returns the entity the builder is bound to.
func (b *EntityBuilder[K]) ID() K {
	return b.id
}

// World returns the world the entity lives in.
func (b *EntityBuilder[K]) World() *World[K] {
	return b.world
}

// Insert attaches v to the builder's entity and returns the builder.
//
// The table for T is created on first use. When the entity already holds a T, v is
// written into the slot the entity's handle points at, so the table does not grow.
// Insert panics if the entity is missing from the entity table.
func Insert[T any, K comparable](b *EntityBuilder[K], v T) *EntityBuilder[K] {
	w := b.world
	components, ok := w.entities.Get(b.id)
	if !ok {
		panic(eris.Wrap(EntityNotFoundError{Entity: b.id}, "insert component"))
	}
	tbl := tableFor[T](w)

	if h, ok := typemap.Get[handle[T, K]](components); ok {
		if slot, ok := tbl.slots.GetMut(h.slot); ok {
			*slot = v
			return b
		}
	}
	typemap.Insert(components, handle[T, K]{slot: tbl.slots.Insert(v)})

	sig, ok := typemap.GetMut[signature](components)
	if !ok {
		typemap.Insert(components, signature{})
		sig, _ = typemap.GetMut[signature](components)
	}
	if tbl.tracked() {
		sig.Mark(tbl.bit)
	}
	return b
}

// HandleOf returns the handle e holds for its T component.
func HandleOf[T any, K comparable](w *World[K], e K) (Handle[K], bool) {
	components, ok := w.entities.Get(e)
	if !ok {
		return Handle[K]{}, false
	}
	h, ok := typemap.Get[handle[T, K]](components)
	if !ok {
		return Handle[K]{}, false
	}
	return Handle[K]{Slot: h.slot, Type: reflect.TypeFor[T]()}, true
}
