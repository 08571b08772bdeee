package storage_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheBitDrifter/depot/storage"
	"github.com/TheBitDrifter/depot/storage/storagetest"
)

type position struct {
	X, Y float64
}

func samplePosition(i int) position {
	return position{X: float64(i), Y: float64(i) * 2}
}

func TestSlabContract(t *testing.T) {
	storagetest.Run(t, storage.SlabFactory[position](), samplePosition)
}

func TestBoxedContract(t *testing.T) {
	factory := func(capacity int) storage.Storage[int, position] {
		return storage.Boxed[int, position](storage.NewSlabWithCapacity[any](capacity))
	}
	storagetest.Run(t, factory, samplePosition)
}

func TestMapStorageContract(t *testing.T) {
	storagetest.Run(t, storagetest.MapStorageFactory[position]("slot"), samplePosition)
}

func TestZeroSizedContract(t *testing.T) {
	tests := []struct {
		name    string
		factory storage.Factory[int, storagetest.Marker]
	}{
		{"slab", storage.SlabFactory[storagetest.Marker]()},
		{"boxed", func(capacity int) storage.Storage[int, storagetest.Marker] {
			return storage.Boxed[int, storagetest.Marker](storage.NewSlabWithCapacity[any](capacity))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storagetest.RunZeroSized(t, tt.factory)
		})
	}
	t.Run("map", func(t *testing.T) {
		storagetest.RunZeroSized(t, storagetest.MapStorageFactory[storagetest.Marker]("slot"))
	})
}

func TestSlabZeroSizedKeyOf(t *testing.T) {
	s := storage.NewSlab[storagetest.Marker]()
	s.Insert(storagetest.Marker{})
	k := s.Insert(storagetest.Marker{})

	ptr, ok := s.GetMut(k)
	require.True(t, ok)
	_, ok = s.KeyOf(ptr)
	assert.False(t, ok)
}

func TestBoxedZeroSizedKeyOf(t *testing.T) {
	s := storage.Boxed[int, storagetest.Marker](storage.NewSlab[any]())
	keys := []int{
		s.Insert(storagetest.Marker{}),
		s.Insert(storagetest.Marker{}),
		s.Insert(storagetest.Marker{}),
	}

	for _, k := range keys {
		ptr, ok := s.GetMut(k)
		require.True(t, ok)
		got, ok := s.KeyOf(ptr)
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
}

func TestMapStorageKeys(t *testing.T) {
	s := storagetest.NewMapStorage[position]("slot", 0)
	assert.Equal(t, "slot-0", s.Insert(samplePosition(0)))
	assert.Equal(t, "slot-1", s.Insert(samplePosition(1)))

	var keys []string
	for k := range s.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"slot-0", "slot-1"}, keys)
}

func TestSlabKeys(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		inserts  int
	}{
		{"no capacity", 0, 3},
		{"exact capacity", 3, 3},
		{"grows past capacity", 2, 10},
		{"negative capacity", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := storage.NewSlabWithCapacity[string](tt.capacity)
			for i := range tt.inserts {
				assert.Equal(t, i, s.Insert(fmt.Sprint(i)))
			}
			assert.Equal(t, tt.inserts, s.Len())
			assert.False(t, s.Has(-1))
			assert.False(t, s.Has(tt.inserts))

			var keys []int
			for k := range s.All() {
				keys = append(keys, k)
			}
			assert.True(t, slices.IsSorted(keys))
			assert.Len(t, keys, tt.inserts)
		})
	}
}

func TestSlabStalePointer(t *testing.T) {
	s := storage.NewSlabWithCapacity[position](1)
	k := s.Insert(samplePosition(1))
	ptr, ok := s.GetMut(k)
	require.True(t, ok)

	for i := range 64 {
		s.Insert(samplePosition(i))
	}
	_, ok = s.KeyOf(ptr)
	assert.False(t, ok, "pointer into the old backing array should not resolve")

	ptr, _ = s.GetMut(k)
	got, ok := s.KeyOf(ptr)
	require.True(t, ok)
	assert.Equal(t, k, got)
}

func TestBoxedPointersSurviveGrowth(t *testing.T) {
	s := storage.Boxed[int, position](storage.NewSlabWithCapacity[any](1))
	k := s.Insert(samplePosition(1))
	ptr, ok := s.GetMut(k)
	require.True(t, ok)

	for i := range 64 {
		s.Insert(samplePosition(i))
	}
	ptr.X = 99
	v, _ := s.Get(k)
	assert.Equal(t, 99.0, v.X)

	got, ok := s.KeyOf(ptr)
	require.True(t, ok)
	assert.Equal(t, k, got)
}

func TestBoxedForeignSlotPanics(t *testing.T) {
	inner := storage.NewSlab[any]()
	s := storage.Boxed[int, position](inner)
	k := inner.Insert("not a position")

	assert.Panics(t, func() {
		s.GetMut(k)
	})
}
