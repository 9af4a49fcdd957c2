package arraylist

import (
	"github.com/motoki317/seq"
)

var _ seq.Iterator[int] = (*Iterator[int])(nil)

// Iterator walks a List by index.
//
// Each step reads the list's length and contents at the time of the step, so elements added during
// iteration are visited and elements removed ahead of the cursor are skipped.
type Iterator[T comparable] struct {
	list    *List[T]
	index   int // index of the next element to visit
	current T
}

// Next advances the cursor to the next element.
func (it *Iterator[T]) Next() bool {
	if it.index < it.list.size {
		it.current = it.list.items[it.index]
		it.index++
		return true
	}
	var zero T
	it.current = zero
	it.index = it.list.size
	return false
}

// Value returns the element last visited by Next.
func (it *Iterator[T]) Value() T {
	return it.current
}

// Reset moves the cursor back to index 0.
func (it *Iterator[T]) Reset() {
	var zero T
	it.current = zero
	it.index = 0
}
