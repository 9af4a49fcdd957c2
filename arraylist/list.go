// Package arraylist provides a generic list backed by a contiguous buffer that doubles when full.
package arraylist

import (
	"fmt"
	"iter"

	"github.com/motoki317/seq"
)

// List is a growable array list.
//
// Elements occupy items[0:size]. len(items) is the capacity; it doubles when an Add would overflow it
// and only ever shrinks through Clear.
type List[T comparable] struct {
	items           []T
	size            int
	defaultCapacity int
	grows           uint64
}

// New creates an empty list with DefaultCapacity, or the capacity given by WithCapacity.
func New[T comparable](options ...Option) *List[T] {
	config := defaultConfig()
	for _, option := range options {
		option(&config)
	}
	return &List[T]{
		items:           make([]T, config.capacity),
		defaultCapacity: config.capacity,
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Capacity returns the length of the backing buffer, which may exceed Len.
func (l *List[T]) Capacity() int {
	return len(l.items)
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.items[index], nil
}

// Set replaces the element at index.
func (l *List[T]) Set(index int, value T) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.items[index] = value
	return nil
}

// Add appends value to the end of the list.
func (l *List[T]) Add(value T) {
	if l.size == len(l.items) {
		l.grow()
	}
	l.items[l.size] = value
	l.size++
}

// Remove removes the first element equal to value.
// Returns true if an element was removed.
func (l *List[T]) Remove(value T) bool {
	index := l.IndexOf(value)
	if index < 0 {
		return false
	}
	l.removeAt(index)
	return true
}

// RemoveAt removes the element at index, shifting all following elements one slot to the left.
func (l *List[T]) RemoveAt(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.removeAt(index)
	return nil
}

// IndexOf returns the index of the first element equal to value, or -1 if there is none.
func (l *List[T]) IndexOf(value T) int {
	for i := 0; i < l.size; i++ {
		if l.items[i] == value {
			return i
		}
	}
	return -1
}

// Contains reports whether any element equals value.
func (l *List[T]) Contains(value T) bool {
	return l.IndexOf(value) >= 0
}

// Find returns the first element satisfying match.
// ok is false if no element matches.
func (l *List[T]) Find(match func(T) bool) (value T, ok bool, err error) {
	i, err := l.FindIndex(match)
	if err != nil || i < 0 {
		return
	}
	return l.items[i], true, nil
}

// FindLast returns the last element satisfying match.
// ok is false if no element matches.
func (l *List[T]) FindLast(match func(T) bool) (value T, ok bool, err error) {
	i, err := l.FindLastIndex(match)
	if err != nil || i < 0 {
		return
	}
	return l.items[i], true, nil
}

// FindIndex returns the index of the first element satisfying match, or -1 if there is none.
func (l *List[T]) FindIndex(match func(T) bool) (int, error) {
	if match == nil {
		return -1, fmt.Errorf("%w: match is nil", seq.ErrNilArgument)
	}
	for i := 0; i < l.size; i++ {
		if match(l.items[i]) {
			return i, nil
		}
	}
	return -1, nil
}

// FindLastIndex returns the index of the last element satisfying match, or -1 if there is none.
func (l *List[T]) FindLastIndex(match func(T) bool) (int, error) {
	if match == nil {
		return -1, fmt.Errorf("%w: match is nil", seq.ErrNilArgument)
	}
	for i := l.size - 1; i >= 0; i-- {
		if match(l.items[i]) {
			return i, nil
		}
	}
	return -1, nil
}

// Clear removes all elements.
// The backing buffer is dropped and reallocated at the initial capacity, so a grown list shrinks back.
func (l *List[T]) Clear() {
	l.items = make([]T, l.defaultCapacity)
	l.size = 0
}

// Iterator returns a cursor over the list.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l}
}

// All iterates over the elements in index order.
func (l *List[T]) All() iter.Seq[T] {
	return seq.Values[T](l.Iterator())
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index %d, length %d", seq.ErrOutOfRange, index, l.size)
	}
	return nil
}

func (l *List[T]) removeAt(index int) {
	copy(l.items[index:l.size], l.items[index+1:l.size])
	l.size--
	var zero T
	l.items[l.size] = zero // avoid memory leaks
}

func (l *List[T]) grow() {
	capacity := len(l.items) * 2
	if capacity == 0 {
		capacity = max(l.defaultCapacity, 1) // lists created with WithCapacity(0) or as a zero value
	}
	items := make([]T, capacity)
	copy(items, l.items[:l.size])
	l.items = items
	l.grows++
}
