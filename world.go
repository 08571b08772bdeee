package depot

import (
	"iter"
	"reflect"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
	"github.com/rs/zerolog"

	"github.com/TheBitDrifter/depot/storage"
	"github.com/TheBitDrifter/depot/typemap"
)

// Spawn allocates a new entity with no components.
func (w *World[K]) Spawn() *EntityBuilder[K] {
	id := w.entities.Insert(typemap.New())
	w.logger.Trace().Interface("entity", id).Msg("entity spawned")
	return &EntityBuilder[K]{id: id, world: w}
}

// Builder returns a builder for an entity spawned earlier.
func (w *World[K]) Builder(e K) (*EntityBuilder[K], error) {
	if !w.entities.Has(e) {
		return nil, EntityNotFoundError{Entity: e}
	}
	return &EntityBuilder[K]{id: e, world: w}, nil
}

// Query returns an empty query over w.
func (w *World[K]) Query() *Query[K] {
	return &Query[K]{world: w, freq: make(map[K]int)}
}

// Len returns the number of live entities.
func (w *World[K]) Len() int {
	return w.entities.Len()
}

func (w *World[K]) Has(e K) bool {
	return w.entities.Has(e)
}

// Entities yields entity keys in entity-table order.
func (w *World[K]) Entities() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range w.entities.All() {
			if !yield(e) {
				return
			}
		}
	}
}

func (w *World[K]) EntityKeys() []K {
	return iter_util.Collect(w.Entities())
}

// Signature returns the mask of component bits e holds. Only the first signatureBits
// component tables of a world have a bit.
func (w *World[K]) Signature(e K) (mask.Mask, bool) {
	components, ok := w.entities.Get(e)
	if !ok {
		return mask.Mask{}, false
	}
	sig, _ := typemap.Get[signature](components)
	return sig.Mask, true
}

// Components lists the component types e holds, in table creation order.
func (w *World[K]) Components(e K) ([]reflect.Type, bool) {
	components, ok := w.entities.Get(e)
	if !ok {
		return nil, false
	}
	var types []reflect.Type
	for _, col := range w.columns {
		if col.holds(components) {
			types = append(types, col.ComponentType())
		}
	}
	return types, true
}

// Log writes one event describing the entity table and every component table.
func (w *World[K]) Log(level zerolog.Level) {
	tables := zerolog.Arr()
	for _, col := range w.columns {
		tables = tables.Dict(zerolog.Dict().
			Stringer("component", col.ComponentType()).
			Uint32("bit", col.Bit()).
			Int("len", col.Len()))
	}
	w.logger.WithLevel(level).
		Int("entities", w.entities.Len()).
		Int("total_components", len(w.columns)).
		Array("components", tables).
		Send()
}

// ComponentMut returns a pointer to e's T component. Under the default boxed slot pools
// the pointer stays valid for the life of the world; a RegisterStorage backend may move
// values when it grows.
func ComponentMut[T any, K comparable](w *World[K], e K) (*T, bool) {
	components, ok := w.entities.Get(e)
	if !ok {
		return nil, false
	}
	h, ok := typemap.Get[handle[T, K]](components)
	if !ok {
		return nil, false
	}
	tbl, ok := lookupTable[T](w)
	if !ok {
		return nil, false
	}
	return tbl.slots.GetMut(h.slot)
}

// Component returns a copy of e's T component.
func Component[T any, K comparable](w *World[K], e K) (T, bool) {
	ptr, ok := ComponentMut[T](w, e)
	if !ok {
		var zero T
		return zero, false
	}
	return *ptr, true
}

func HasComponent[T any, K comparable](w *World[K], e K) bool {
	_, ok := ComponentMut[T](w, e)
	return ok
}

// RegisterStorage makes the table for T use storages built by f instead of the world
// backend's slot pool. It must run before the first T is inserted.
func RegisterStorage[T any, K comparable](w *World[K], f storage.Factory[K, T]) error {
	if f == nil {
		return NilFactoryError{Type: reflect.TypeFor[T]()}
	}
	if typemap.Has[*componentTable[T, K]](w.tables) {
		return TableExistsError{Type: reflect.TypeFor[T]()}
	}
	typemap.Insert(w.factories, f)
	return nil
}
