package depot

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"

	"github.com/TheBitDrifter/depot/storage"
	"github.com/TheBitDrifter/depot/typemap"
)

// signatureBits is how many component tables per world get a signature bit. Tables past
// it are matched through their handles alone.
const signatureBits = uint32(unsafe.Sizeof(mask.Mask{}) * 8)

// column is the type-independent view of a componentTable.
type column interface {
	ComponentType() reflect.Type
	Bit() uint32
	Len() int
	holds(components *typemap.Map) bool
}

var _ column = &componentTable[struct{}, int]{}

// elementTypes hands out one table.ElementType per Go type for the whole process, shared
// by every world.
var elementTypes = struct {
	sync.Mutex
	registry *typemap.Map
}{registry: typemap.New()}

type elementType[T any] struct {
	table.ElementType
}

func elementTypeFor[T any]() table.ElementType {
	elementTypes.Lock()
	defer elementTypes.Unlock()
	if elem, ok := typemap.Get[elementType[T]](elementTypes.registry); ok {
		return elem.ElementType
	}
	elem := elementType[T]{table.FactoryNewElementType[T]()}
	typemap.Insert(elementTypes.registry, elem)
	return elem.ElementType
}

func newComponentTable[T any, K comparable](w *World[K]) *componentTable[T, K] {
	var slots storage.Storage[K, T]
	if f, ok := typemap.Get[storage.Factory[K, T]](w.factories); ok {
		slots = f(w.capacity)
	} else {
		slots = storage.Boxed[K, T](w.backend.Slots(w.capacity))
	}
	tbl := &componentTable[T, K]{
		slots: slots,
		elem:  elementTypeFor[T](),
		bit:   uint32(len(w.columns)),
	}
	if tbl.tracked() {
		tbl.clause.Mark(tbl.bit)
	}
	return tbl
}

// lookupTable returns the table for T if one was created.
func lookupTable[T any, K comparable](w *World[K]) (*componentTable[T, K], bool) {
	return typemap.Get[*componentTable[T, K]](w.tables)
}

// tableFor returns the table for T, creating it on first use.
func tableFor[T any, K comparable](w *World[K]) *componentTable[T, K] {
	if tbl, ok := lookupTable[T](w); ok {
		return tbl
	}
	tbl := newComponentTable[T](w)
	typemap.Insert(w.tables, tbl)
	w.columns = append(w.columns, tbl)
	w.logger.Debug().
		Stringer("component", tbl.ComponentType()).
		Uint32("bit", tbl.bit).
		Bool("signature", tbl.tracked()).
		Msg("component table created")
	return tbl
}

func (t *componentTable[T, K]) ComponentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (t *componentTable[T, K]) Bit() uint32 {
	return t.bit
}

func (t *componentTable[T, K]) Len() int {
	return t.slots.Len()
}

// tracked reports whether the table's bit fits in an entity signature.
func (t *componentTable[T, K]) tracked() bool {
	return t.bit < signatureBits
}

// holds reports whether components carries a live handle into t. The signature rules
// entities out early when the table has a bit.
func (t *componentTable[T, K]) holds(components *typemap.Map) bool {
	if t.tracked() {
		sig, ok := typemap.Get[signature](components)
		if !ok || !sig.ContainsAll(t.clause) {
			return false
		}
	}
	h, ok := typemap.Get[handle[T, K]](components)
	return ok && t.slots.Has(h.slot)
}
