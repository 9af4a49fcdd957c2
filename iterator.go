package seq

import (
	"iter"
)

// Iterator is a forward-only cursor over the elements of a container.
// Iterator implementations does NOT need to be goroutine-safe.
type Iterator[T any] interface {
	// Next advances the cursor. It returns false once there are no more elements.
	Next() bool
	// Value returns the element the cursor currently points at,
	// or the zero value of T before the first Next and after exhaustion.
	Value() T
	// Reset moves the cursor back to the start of the container.
	Reset()
}

// Collect resets it and drains all remaining elements into a slice.
func Collect[T any](it Iterator[T]) []T {
	it.Reset()
	var s []T
	for it.Next() {
		s = append(s, it.Value())
	}
	return s
}

// Values adapts it to a range-over-func sequence.
// The cursor is reset every time the sequence is ranged over.
func Values[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it.Reset()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
