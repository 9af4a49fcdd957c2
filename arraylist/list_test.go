package arraylist_test

import (
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motoki317/seq"
	"github.com/motoki317/seq/arraylist"
)

func fromSlice[T comparable](values []T, options ...arraylist.Option) *arraylist.List[T] {
	l := arraylist.New[T](options...)
	for _, v := range values {
		l.Add(v)
	}
	return l
}

// requireContents checks the list invariants and that its elements equal want.
func requireContents[T comparable](t *testing.T, l *arraylist.List[T], want []T) {
	t.Helper()

	require.Equal(t, len(want), l.Len())
	require.LessOrEqual(t, l.Len(), l.Capacity())
	got := make([]T, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		v, err := l.Get(i)
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, want, got)
}

func TestNew(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		l := arraylist.New[int]()
		assert.Equal(t, 0, l.Len())
		assert.Equal(t, arraylist.DefaultCapacity, l.Capacity())
	})
	t.Run("with capacity", func(t *testing.T) {
		l := arraylist.New[int](arraylist.WithCapacity(3))
		assert.Equal(t, 3, l.Capacity())
	})
	t.Run("zero capacity", func(t *testing.T) {
		l := arraylist.New[int](arraylist.WithCapacity(0))
		assert.Equal(t, 0, l.Capacity())

		l.Add(1)
		assert.Equal(t, 1, l.Capacity())
		l.Add(2)
		assert.Equal(t, 2, l.Capacity())
		requireContents(t, l, []int{1, 2})
	})
	t.Run("negative capacity", func(t *testing.T) {
		assert.Panics(t, func() { arraylist.WithCapacity(-1) })
	})
	t.Run("zero value", func(t *testing.T) {
		var l arraylist.List[int]
		l.Add(1)
		requireContents(t, &l, []int{1})
	})
}

func TestList_Add(t *testing.T) {
	t.Run("growth", func(t *testing.T) {
		l := arraylist.New[int]()
		for i := 0; i < 8; i++ {
			l.Add(10)
		}
		require.Equal(t, 8, l.Capacity())

		l.Add(10)

		require.Equal(t, 16, l.Capacity())
		require.Equal(t, 9, l.Len())
	})

	capacities := []int{1, 8, 100}
	for _, c := range capacities {
		t.Run("growth law "+strconv.Itoa(c), func(t *testing.T) {
			values := lo.Range(c + 1)
			l := arraylist.New[int](arraylist.WithCapacity(c))

			for _, v := range values[:c] {
				l.Add(v)
			}
			require.Equal(t, c, l.Capacity(), "no preemptive growth")
			l.Add(values[c])

			require.Equal(t, 2*c, l.Capacity())
			require.Equal(t, uint64(1), l.Stats().Grows)
			requireContents(t, l, values)
		})
	}
}

func TestList_GetSet(t *testing.T) {
	l := fromSlice([]string{"a", "b", "c"})

	v, err := l.Get(1)
	require.NoError(t, err)
	require.Equal(t, "b", v)

	require.NoError(t, l.Set(1, "x"))
	requireContents(t, l, []string{"a", "x", "c"})

	for _, index := range []int{-1, 3, 8} {
		_, err := l.Get(index)
		assert.ErrorIs(t, err, seq.ErrOutOfRange)
		assert.ErrorIs(t, l.Set(index, "y"), seq.ErrOutOfRange)
	}
	requireContents(t, l, []string{"a", "x", "c"})
}

func TestList_RemoveAt(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"first", 0, []int{6, 7}},
		{"middle", 1, []int{5, 7}},
		{"last", 2, []int{5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := fromSlice([]int{5, 6, 7})

			require.NoError(t, l.RemoveAt(tt.index))

			requireContents(t, l, tt.want)
			assert.Equal(t, arraylist.DefaultCapacity, l.Capacity())
		})
	}

	t.Run("out of range", func(t *testing.T) {
		l := fromSlice([]int{5, 6, 7})

		assert.ErrorIs(t, l.RemoveAt(-1), seq.ErrOutOfRange)
		assert.ErrorIs(t, l.RemoveAt(3), seq.ErrOutOfRange)
		requireContents(t, l, []int{5, 6, 7})
	})
}

func TestList_Remove(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		l := fromSlice([]int{1, 2, 1})

		require.True(t, l.Remove(1))

		requireContents(t, l, []int{2, 1})
	})
	t.Run("absent", func(t *testing.T) {
		values := lo.Range(9)
		l := fromSlice(values)
		capacity := l.Capacity()

		require.False(t, l.Remove(100))

		requireContents(t, l, values)
		require.Equal(t, capacity, l.Capacity())
	})
}

func TestList_IndexOf(t *testing.T) {
	l := fromSlice([]int{0, 3, 4, 3})

	assert.Equal(t, 0, l.IndexOf(0))
	assert.Equal(t, 1, l.IndexOf(3))
	assert.Equal(t, -1, l.IndexOf(5))
	assert.True(t, l.Contains(4))
	assert.False(t, l.Contains(5))

	require.NoError(t, l.RemoveAt(0))
	// slots past Len must never match
	assert.Equal(t, -1, l.IndexOf(0))
}

func TestList_Find(t *testing.T) {
	l := fromSlice([]int{1, 2, 3, 4, 5, 6})
	even := func(v int) bool { return v%2 == 0 }
	large := func(v int) bool { return v > 10 }

	t.Run("Find", func(t *testing.T) {
		v, ok, err := l.Find(even)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 2, v)

		_, ok, err = l.Find(large)
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("FindLast", func(t *testing.T) {
		v, ok, err := l.FindLast(even)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 6, v)

		_, ok, err = l.FindLast(large)
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("FindIndex", func(t *testing.T) {
		i, err := l.FindIndex(even)
		require.NoError(t, err)
		assert.Equal(t, 1, i)

		i, err = l.FindIndex(large)
		require.NoError(t, err)
		assert.Equal(t, -1, i)
	})
	t.Run("FindLastIndex", func(t *testing.T) {
		i, err := l.FindLastIndex(even)
		require.NoError(t, err)
		assert.Equal(t, 5, i)

		i, err = l.FindLastIndex(large)
		require.NoError(t, err)
		assert.Equal(t, -1, i)
	})
	t.Run("zero value match", func(t *testing.T) {
		l := fromSlice([]int{3, 0, 5})

		v, ok, err := l.Find(func(v int) bool { return v < 1 })
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 0, v)
	})
	t.Run("nil predicate", func(t *testing.T) {
		_, _, err := l.Find(nil)
		assert.ErrorIs(t, err, seq.ErrNilArgument)
		_, _, err = l.FindLast(nil)
		assert.ErrorIs(t, err, seq.ErrNilArgument)
		_, err = l.FindIndex(nil)
		assert.ErrorIs(t, err, seq.ErrNilArgument)
		_, err = l.FindLastIndex(nil)
		assert.ErrorIs(t, err, seq.ErrNilArgument)
	})
	t.Run("empty", func(t *testing.T) {
		l := arraylist.New[int]()

		_, ok, err := l.FindLast(even)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestList_Clear(t *testing.T) {
	t.Run("shrinks to default", func(t *testing.T) {
		l := fromSlice(lo.Range(20))
		require.Equal(t, 32, l.Capacity())

		l.Clear()

		requireContents(t, l, []int{})
		assert.Equal(t, arraylist.DefaultCapacity, l.Capacity())
	})
	t.Run("shrinks to configured capacity", func(t *testing.T) {
		l := fromSlice(lo.Range(20), arraylist.WithCapacity(2))

		l.Clear()

		assert.Equal(t, 2, l.Capacity())
		l.Add(1)
		requireContents(t, l, []int{1})
	})
}

// TestList_Random applies random operations to a list and to a plain slice, and checks they agree.
func TestList_Random(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(1))
	l := arraylist.New[int]()
	var model []int

	for i := 0; i < 5000; i++ {
		v := rnd.Intn(50)
		switch op := rnd.Intn(10); {
		case op < 5:
			l.Add(v)
			model = append(model, v)
		case op < 7:
			idx := slices.Index(model, v)
			require.Equal(t, idx >= 0, l.Remove(v))
			if idx >= 0 {
				model = slices.Delete(model, idx, idx+1)
			}
		case op < 9 && len(model) > 0:
			idx := rnd.Intn(len(model))
			require.NoError(t, l.RemoveAt(idx))
			model = slices.Delete(model, idx, idx+1)
		case op == 9 && len(model) > 0:
			idx := rnd.Intn(len(model))
			require.NoError(t, l.Set(idx, v))
			model[idx] = v
		}
		if model == nil {
			model = []int{}
		}
		requireContents(t, l, model)
	}
}
