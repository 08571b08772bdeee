package depot

import (
	"reflect"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	"github.com/rs/zerolog"

	"github.com/TheBitDrifter/depot/storage"
	"github.com/TheBitDrifter/depot/typemap"
)

// Backend supplies the storages a World is built from: one entity table, and one untyped
// slot pool per component table that has no typed override.
type Backend[K comparable] interface {
	Entities(capacity int) storage.Storage[K, *typemap.Map]
	Slots(capacity int) storage.Storage[K, any]
}

// World owns every entity and component. Each entity key maps to a typemap.Map holding
// the handles of its components; each component type maps to one table.
type World[K comparable] struct {
	backend   Backend[K]
	entities  storage.Storage[K, *typemap.Map]
	tables    *typemap.Map // *componentTable[T, K] per component type
	factories *typemap.Map // storage.Factory[K, T] overrides
	columns   []column
	capacity  int
	logger    zerolog.Logger
}

// EntityBuilder is bound to one live entity of a World.
type EntityBuilder[K comparable] struct {
	id    K
	world *World[K]
}

// Query accumulates With clauses until Get resolves them.
type Query[K comparable] struct {
	world   *World[K]
	clauses int
	freq    map[K]int
}

// Handle records where an entity's component of Type lives in that type's table.
type Handle[K comparable] struct {
	Slot K
	Type reflect.Type
}

type handle[T any, K comparable] struct {
	slot K
}

type signature struct {
	mask.Mask
}

type componentTable[T any, K comparable] struct {
	slots storage.Storage[K, T]
	elem  table.ElementType
	bit   uint32
	// empty when bit is past signatureBits
	clause mask.Mask
}
