// Package storagetest checks that a storage.Storage implementation honours the contract.
package storagetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheBitDrifter/depot/storage"
)

// Run exercises a backend produced by factory. sample must return distinct values for
// distinct i; zero-sized types go through RunZeroSized instead.
func Run[K comparable, V any](t *testing.T, factory storage.Factory[K, V], sample func(i int) V) {
	t.Helper()

	t.Run("empty", func(t *testing.T) {
		s := factory(0)
		assert.True(t, s.IsEmpty())
		assert.Equal(t, 0, s.Len())
		var zero K
		assert.False(t, s.Has(zero))
		_, ok := s.Get(zero)
		assert.False(t, ok)
	})

	t.Run("insert get key of", func(t *testing.T) {
		s := factory(4)
		keys := make([]K, 0, 16)
		for i := range 16 {
			k := s.Insert(sample(i))
			require.NotContains(t, keys, k, "key %v handed out twice", k)
			keys = append(keys, k)
		}
		require.Equal(t, 16, s.Len())
		assert.False(t, s.IsEmpty())

		for i, k := range keys {
			assert.True(t, s.Has(k))
			v, ok := s.Get(k)
			require.True(t, ok)
			assert.Equal(t, sample(i), v)

			ptr, ok := s.GetMut(k)
			require.True(t, ok)
			back, ok := s.KeyOf(ptr)
			require.True(t, ok)
			assert.Equal(t, k, back)
		}
	})

	t.Run("get mut writes through", func(t *testing.T) {
		s := factory(0)
		k := s.Insert(sample(0))
		ptr, ok := s.GetMut(k)
		require.True(t, ok)
		*ptr = sample(1)
		v, _ := s.Get(k)
		assert.Equal(t, sample(1), v)
	})

	t.Run("all is stable", func(t *testing.T) {
		s := factory(0)
		want := make(map[K]V)
		for i := range 8 {
			want[s.Insert(sample(i))] = sample(i)
		}

		var first, second []K
		for k, v := range s.All() {
			assert.Equal(t, want[k], *v)
			first = append(first, k)
		}
		for k := range s.All() {
			second = append(second, k)
		}
		assert.Len(t, first, len(want))
		assert.Equal(t, first, second)
	})

	t.Run("all stops early", func(t *testing.T) {
		s := factory(0)
		for i := range 4 {
			s.Insert(sample(i))
		}
		n := 0
		for range s.All() {
			n++
			if n == 2 {
				break
			}
		}
		assert.Equal(t, 2, n)
	})

	t.Run("foreign pointer", func(t *testing.T) {
		s := factory(0)
		s.Insert(sample(0))
		v := sample(0)
		_, ok := s.KeyOf(&v)
		assert.False(t, ok)
		_, ok = s.KeyOf(nil)
		assert.False(t, ok)
	})
}

// Marker is a zero-sized component, the shape of tag types.
type Marker struct{}

// RunZeroSized checks a backend holding zero-sized values. Such values all look alike, so
// KeyOf may decline to resolve them, but it must never report another slot's key.
func RunZeroSized[K comparable](t *testing.T, factory storage.Factory[K, Marker]) {
	t.Helper()

	t.Run("keys stay distinct", func(t *testing.T) {
		s := factory(0)
		keys := make([]K, 0, 8)
		for range 8 {
			k := s.Insert(Marker{})
			require.NotContains(t, keys, k, "key %v handed out twice", k)
			keys = append(keys, k)
		}
		assert.Equal(t, 8, s.Len())

		for _, k := range keys {
			assert.True(t, s.Has(k))
			_, ok := s.Get(k)
			assert.True(t, ok)
			ptr, ok := s.GetMut(k)
			require.True(t, ok)
			if back, ok := s.KeyOf(ptr); ok {
				assert.Equal(t, k, back)
			}
		}
	})

	t.Run("foreign pointer", func(t *testing.T) {
		s := factory(0)
		s.Insert(Marker{})
		s.Insert(Marker{})
		foreign := new(Marker)
		_, ok := s.KeyOf(foreign)
		assert.False(t, ok)
	})
}
