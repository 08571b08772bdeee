package storagetest

import (
	"fmt"
	"iter"

	"github.com/TheBitDrifter/depot/storage"
)

// MapPool is an untyped, map-backed slot pool with string keys. Keys are prefix-N in
// insertion order. It stands in for a third-party pool in tests.
type MapPool struct {
	prefix string
	order  []string
	slots  map[string]*any
}

var _ storage.Storage[string, any] = &MapPool{}

// NewMapPool returns an empty MapPool whose keys start with prefix.
func NewMapPool(prefix string, capacity int) *MapPool {
	return &MapPool{prefix: prefix, slots: make(map[string]*any, max(capacity, 0))}
}

// NewMapStorage returns a typed Storage over a fresh MapPool.
func NewMapStorage[V any](prefix string, capacity int) storage.Storage[string, V] {
	return storage.Boxed[string, V](NewMapPool(prefix, capacity))
}

// MapStorageFactory adapts NewMapStorage to a storage.Factory.
func MapStorageFactory[V any](prefix string) storage.Factory[string, V] {
	return func(capacity int) storage.Storage[string, V] {
		return NewMapStorage[V](prefix, capacity)
	}
}

func (p *MapPool) Insert(v any) string {
	k := fmt.Sprintf("%s-%d", p.prefix, len(p.order))
	p.slots[k] = &v
	p.order = append(p.order, k)
	return k
}

func (p *MapPool) Get(k string) (any, bool) {
	ptr, ok := p.slots[k]
	if !ok {
		return nil, false
	}
	return *ptr, true
}

func (p *MapPool) GetMut(k string) (*any, bool) {
	ptr, ok := p.slots[k]
	return ptr, ok
}

func (p *MapPool) KeyOf(v *any) (string, bool) {
	if v != nil {
		for k, ptr := range p.slots {
			if ptr == v {
				return k, true
			}
		}
	}
	return "", false
}

func (p *MapPool) Has(k string) bool {
	_, ok := p.slots[k]
	return ok
}

func (p *MapPool) Len() int      { return len(p.slots) }
func (p *MapPool) IsEmpty() bool { return len(p.slots) == 0 }

// All yields slots in insertion order.
func (p *MapPool) All() iter.Seq2[string, *any] {
	return func(yield func(string, *any) bool) {
		for _, k := range p.order {
			if !yield(k, p.slots[k]) {
				return
			}
		}
	}
}
