package depot

import (
	"github.com/rotisserie/eris"

	"github.com/TheBitDrifter/depot/storage"
	"github.com/TheBitDrifter/depot/typemap"
)

type factory struct{}

var Factory factory

// NewWorld returns a World keyed by int and backed by slabs.
func (f factory) NewWorld(opts ...WorldOption) *World[int] {
	return FactoryNewWorld[int](SlabBackend{}, opts...)
}

// FactoryNewWorld returns a World whose entity table and component slot pools come from
// backend.
func FactoryNewWorld[K comparable](backend Backend[K], opts ...WorldOption) *World[K] {
	if backend == nil {
		panic(eris.Wrap(NilBackendError{}, "new world"))
	}
	o := resolveOptions(opts)
	return &World[K]{
		backend:   backend,
		entities:  backend.Entities(o.capacity),
		tables:    typemap.New(),
		factories: typemap.New(),
		capacity:  o.capacity,
		logger:    o.logger,
	}
}

// SlabBackend backs worlds with storage.Slab.
type SlabBackend struct{}

var _ Backend[int] = SlabBackend{}

func (SlabBackend) Entities(capacity int) storage.Storage[int, *typemap.Map] {
	return storage.NewSlabWithCapacity[*typemap.Map](capacity)
}

func (SlabBackend) Slots(capacity int) storage.Storage[int, any] {
	return storage.NewSlabWithCapacity[any](capacity)
}
