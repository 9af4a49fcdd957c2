package linkedlist

import (
	"github.com/motoki317/seq/linkedlist/internal"
)

// Node is a handle to an element of a List.
//
// The zero value is the nil handle. A handle returned by one of the Add methods stays attached to its list
// until it is passed to Remove (or the list is cleared), after which it is detached for good:
// List returns nil, Value returns the zero value, and every List method rejects it.
type Node[T comparable] struct {
	list  *List[T]
	index int
	gen   uint32
}

func newNode[T comparable](l *List[T], index int) Node[T] {
	if index == internal.Root {
		return Node[T]{}
	}
	return Node[T]{list: l, index: index, gen: l.nodes.Gen(index)}
}

// IsNil reports whether n is the nil handle.
func (n Node[T]) IsNil() bool {
	return n.list == nil
}

// List returns the list n belongs to, or nil if n is nil or detached.
func (n Node[T]) List() *List[T] {
	if !n.attached() {
		return nil
	}
	return n.list
}

// Value returns the value held by n.
func (n Node[T]) Value() T {
	if !n.attached() {
		var zero T
		return zero
	}
	return n.list.nodes.Value(n.index)
}

// SetValue replaces the value held by n.
// It reports false and does nothing if n is nil or detached.
func (n Node[T]) SetValue(value T) bool {
	if !n.attached() {
		return false
	}
	n.list.nodes.SetValue(n.index, value)
	return true
}

// Next returns the node after n, or the nil handle if n is the last node.
func (n Node[T]) Next() Node[T] {
	if !n.attached() {
		return Node[T]{}
	}
	return newNode(n.list, n.list.nodes.Next(n.index))
}

// Prev returns the node before n, or the nil handle if n is the first node.
func (n Node[T]) Prev() Node[T] {
	if !n.attached() {
		return Node[T]{}
	}
	return newNode(n.list, n.list.nodes.Prev(n.index))
}

func (n Node[T]) attached() bool {
	return n.list != nil && n.list.nodes.Valid(n.index, n.gen)
}
