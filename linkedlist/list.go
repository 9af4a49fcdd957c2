// Package linkedlist provides a generic doubly linked list addressed through Node handles.
package linkedlist

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/motoki317/seq"
	"github.com/motoki317/seq/linkedlist/internal"
)

// List is a doubly linked list.
// All nodes are owned by the list itself; callers hold Node handles, never the nodes.
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	nodes internal.List[T]
}

// New creates an empty list.
func New[T comparable]() *List[T] {
	l := &List[T]{}
	l.nodes.Init()
	return l
}

func (l *List[T]) lazyInit() {
	if !l.nodes.Initialized() {
		l.nodes.Init()
	}
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.nodes.Len()
}

// First returns the first node, or the nil handle if the list is empty.
func (l *List[T]) First() Node[T] {
	if l.nodes.Len() == 0 {
		return Node[T]{}
	}
	return newNode(l, l.nodes.Front())
}

// Last returns the last node, or the nil handle if the list is empty.
func (l *List[T]) Last() Node[T] {
	if l.nodes.Len() == 0 {
		return Node[T]{}
	}
	return newNode(l, l.nodes.Back())
}

// AddFirst inserts value at the front of the list.
func (l *List[T]) AddFirst(value T) Node[T] {
	l.lazyInit()
	return newNode(l, l.nodes.PushFront(value))
}

// AddLast inserts value at the back of the list.
func (l *List[T]) AddLast(value T) Node[T] {
	l.lazyInit()
	return newNode(l, l.nodes.PushBack(value))
}

// AddBefore inserts value right before target.
// If target is the first node, the new node becomes the first node.
func (l *List[T]) AddBefore(target Node[T], value T) (Node[T], error) {
	if err := l.check(target); err != nil {
		return Node[T]{}, err
	}
	return newNode(l, l.nodes.InsertBefore(value, target.index)), nil
}

// AddAfter inserts value right after target.
// If target is the last node, the new node becomes the last node.
func (l *List[T]) AddAfter(target Node[T], value T) (Node[T], error) {
	if err := l.check(target); err != nil {
		return Node[T]{}, err
	}
	return newNode(l, l.nodes.InsertAfter(value, target.index)), nil
}

// Find returns the first node whose value equals value.
// A nil pointer, map, channel or interface value never matches.
func (l *List[T]) Find(value T) (Node[T], bool) {
	if l.nodes.Len() == 0 || isNil(value) {
		return Node[T]{}, false
	}
	for i := l.nodes.Front(); i != internal.Root; i = l.nodes.Next(i) {
		if l.nodes.Value(i) == value {
			return newNode(l, i), true
		}
	}
	return Node[T]{}, false
}

// Contains reports whether any node holds value.
func (l *List[T]) Contains(value T) bool {
	_, ok := l.Find(value)
	return ok
}

// Remove detaches node from the list.
// The handle is unusable afterwards.
func (l *List[T]) Remove(node Node[T]) error {
	if err := l.check(node); err != nil {
		return err
	}
	l.nodes.Remove(node.index)
	return nil
}

// RemoveValue removes the first node holding value.
// Returns true if a node was removed.
func (l *List[T]) RemoveValue(value T) bool {
	node, ok := l.Find(value)
	if !ok {
		return false
	}
	l.nodes.Remove(node.index)
	return true
}

// Clear removes all nodes. Handles obtained before Clear are detached.
func (l *List[T]) Clear() {
	l.nodes.Init()
}

// Iterator returns a cursor starting at the current first node.
func (l *List[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{list: l}
	it.Reset()
	return it
}

// All iterates over the values from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return seq.Values[T](l.Iterator())
}

// Backward iterates over the values from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.Last(); !n.IsNil(); n = n.Prev() {
			if !yield(n.Value()) {
				return
			}
		}
	}
}

// check validates node before anything is read through it.
func (l *List[T]) check(node Node[T]) error {
	if node.IsNil() {
		return fmt.Errorf("%w: node is nil", seq.ErrNilArgument)
	}
	if node.list != l {
		return fmt.Errorf("%w: node belongs to another list", seq.ErrInvalidOperation)
	}
	if !node.attached() {
		return fmt.Errorf("%w: node has been removed from the list", seq.ErrInvalidOperation)
	}
	return nil
}

func isNil[T any](value T) bool {
	v := reflect.ValueOf(&value).Elem()
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
