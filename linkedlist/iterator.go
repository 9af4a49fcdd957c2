package linkedlist

import (
	"github.com/motoki317/seq"
)

var _ seq.Iterator[int] = (*Iterator[int])(nil)

// Iterator walks the node links of a List from front to back.
//
// The starting node is fixed when the iterator is created or Reset; every later step follows the links
// as they are at that moment. If the node the cursor is about to visit has been removed, iteration ends.
type Iterator[T comparable] struct {
	list    *List[T]
	node    Node[T] // next node to visit
	current T
}

// Next advances the cursor to the next node.
func (it *Iterator[T]) Next() bool {
	if !it.node.attached() {
		var zero T
		it.current = zero
		it.node = Node[T]{}
		return false
	}
	it.current = it.node.Value()
	it.node = it.node.Next()
	return true
}

// Value returns the value of the node last visited by Next.
func (it *Iterator[T]) Value() T {
	return it.current
}

// Reset moves the cursor back to the list's current first node.
func (it *Iterator[T]) Reset() {
	var zero T
	it.current = zero
	it.node = it.list.First()
}
