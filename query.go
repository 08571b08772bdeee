package depot

import (
	"iter"

	iter_util "github.com/TheBitDrifter/util/iter"

	"github.com/TheBitDrifter/depot/typemap"
)

// With narrows q to entities holding a live T component and returns q.
//
// A type that has no table yet is a no-op: the call adds no clause and leaves q as it was.
func With[T any, K comparable](q *Query[K]) *Query[K] {
	tbl, ok := lookupTable[T](q.world)
	if !ok {
		return q
	}
	for e, components := range q.world.entities.All() {
		if tbl.holds(*components) {
			q.freq[e]++
		}
	}
	q.clauses++
	return q
}

// Get resolves q: it yields (entity, component) for every entity that satisfied all
// clauses and holds a T, in entity-table order. The second result is false when no T
// was ever inserted.
//
// Get consumes the accumulated clauses; q starts over empty afterwards. A query with no
// clauses matches nothing.
func Get[T any, K comparable](q *Query[K]) (iter.Seq2[K, *T], bool) {
	defer q.Reset()
	tbl, ok := lookupTable[T](q.world)
	if !ok {
		return func(func(K, *T) bool) {}, false
	}

	var matches []match[K]
	for e := range q.matched() {
		components, _ := q.world.entities.Get(e)
		if h, ok := typemap.Get[handle[T, K]](components); ok {
			matches = append(matches, match[K]{entity: e, slot: h.slot})
		}
	}
	q.world.logger.Debug().
		Stringer("component", tbl.ComponentType()).
		Int("clauses", q.clauses).
		Int("matches", len(matches)).
		Msg("query resolved")

	return func(yield func(K, *T) bool) {
		for _, m := range matches {
			v, ok := tbl.slots.GetMut(m.slot)
			if !ok {
				continue
			}
			if !yield(m.entity, v) {
				return
			}
		}
	}, true
}

type match[K comparable] struct {
	entity K
	slot   K
}

// Reset drops every clause.
func (q *Query[K]) Reset() {
	q.clauses = 0
	clear(q.freq)
}

func (q *Query[K]) Clauses() int {
	return q.clauses
}

// Matches returns the entities that satisfy every clause so far, without resolving q.
func (q *Query[K]) Matches() []K {
	return iter_util.Collect(q.matched())
}

func (q *Query[K]) matched() iter.Seq[K] {
	return func(yield func(K) bool) {
		if q.clauses == 0 {
			return
		}
		for e := range q.world.entities.All() {
			if q.freq[e] != q.clauses {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}
